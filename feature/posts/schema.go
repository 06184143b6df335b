package posts

import "blog-api/core/reconcile"

// schema declares the client-writable post fields for the reconciliation
// engine. Tags are shape-checked as a string list and flattened for storage.
var schema = &reconcile.Schema{
	Resource: "post",
	Fields: []reconcile.Field{
		{Name: "title", Required: true, Check: reconcile.NonEmptyText},
		{Name: "content", Required: true, Check: reconcile.NonEmptyText},
		{Name: "category", Required: true, Check: reconcile.NonEmptyText},
		{Name: "tags", Required: true, Check: reconcile.TextList, Encode: encodeTagList},
	},
}

// encodeTagList joins an incoming JSON tag array for storage. TextList has
// already verified the shape.
func encodeTagList(v any) (any, error) {
	list := v.([]any)
	tags := make([]string, len(list))
	for i, e := range list {
		tags[i] = e.(string)
	}
	return EncodeTags(tags), nil
}
