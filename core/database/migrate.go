package database

import (
	"context"
	"fmt"

	"blog-api/core/store"
)

// Schema statements for the three resource tables. Timestamps use DATETIME(3)
// to keep the millisecond precision the API writes.
var migrations = []struct {
	Table     string
	Statement string
}{
	{
		Table: "posts",
		Statement: `create table if not exists posts (
			id bigint auto_increment primary key,
			title text not null,
			content text not null,
			category varchar(255) not null,
			tags text not null,
			createdAt datetime(3) not null,
			updatedAt datetime(3) not null
		)`,
	},
	{
		Table: "comments",
		Statement: `create table if not exists comments (
			id bigint auto_increment primary key,
			postID bigint not null,
			author varchar(255) not null,
			content text not null,
			createdAt datetime(3) not null,
			updatedAt datetime(3) not null,
			index idx_comments_postID (postID)
		)`,
	},
	{
		Table: "users",
		Statement: `create table if not exists users (
			id bigint auto_increment primary key,
			username varchar(255) not null unique,
			email varchar(255) not null unique,
			password varchar(255) not null,
			createdAt datetime(3) not null,
			updatedAt datetime(3) not null
		)`,
	},
}

// Migrate creates the resource tables if they do not exist yet. It returns
// the list of tables it ensured, in creation order.
func Migrate(ctx context.Context, st store.Adapter) ([]string, error) {
	tables := make([]string, 0, len(migrations))
	for _, m := range migrations {
		if _, err := st.Exec(ctx, m.Statement); err != nil {
			return tables, fmt.Errorf("failed to create table %s: %w", m.Table, err)
		}
		tables = append(tables, m.Table)
	}
	return tables, nil
}
