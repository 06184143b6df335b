// Package posts implements the blog post resource.
//
// A post carries a title, content, a category and an ordered tag list. Tags
// are stored flattened through the tag codec (comma-delimited) and always
// surface as a JSON array, never as the raw stored string.
//
// # Components
//
//   - Service: Sequences store calls around the reconciliation engine.
//   - Handler: Exposes the HTTP endpoints and maps errors to status codes.
//   - Feature: Registers the package with the application loader.
//
// # HTTP Endpoints
//
//   - GET    /posts            : List all posts.
//   - GET    /posts/search     : Substring search over title/content/category/tags.
//   - GET    /posts/:postID    : Fetch one post.
//   - POST   /posts            : Create a post.
//   - PUT    /posts/:postID    : Full replace.
//   - PATCH  /posts/:postID    : Partial merge.
//   - DELETE /posts/:postID    : Delete.
package posts
