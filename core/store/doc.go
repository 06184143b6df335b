// Package store provides the minimal statement-execution surface the resource
// services depend on.
//
// Statements use positional ? placeholders and bound parameters; callers never
// interpolate untrusted values into statement text. Reads come back as an
// ordered slice of column-name -> value maps, writes as an affected-row count
// plus the generated insert id.
//
// The concrete adapter runs on top of the GORM MySQL connection established by
// core/database. The query path goes through GORM's raw SQL interface; the
// exec path uses the pooled database/sql connection so MySQL's last-insert-id
// is available.
//
// # Usage
//
//	rows, err := st.Query(ctx, "select * from posts where id = ?", id)
//	res, err := st.Exec(ctx, "delete from posts where id = ?", id)
package store
