// Package backup exports JSON snapshots of the resource tables to object
// storage.
//
// A snapshot is a single JSON object holding every row of the posts, comments
// and users tables, keyed by table name, plus the capture timestamp. Snapshots
// are written to the configured bucket under backups/<timestamp>.json.
//
// Table names are a fixed internal list; only bound parameters ever reach the
// store from user input, and backup takes none.
package backup
