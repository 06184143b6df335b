package comments

import "blog-api/core/reconcile"

// schema declares the client-writable comment fields. postID is not listed:
// it comes from the path and is immutable after creation.
var schema = &reconcile.Schema{
	Resource: "comment",
	Fields: []reconcile.Field{
		{Name: "author", Required: true, Check: reconcile.NonEmptyText},
		{Name: "content", Required: true, Check: reconcile.NonEmptyText},
	},
}
