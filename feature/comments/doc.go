// Package comments implements the comment resource, a child of posts.
//
// Comments are always addressed through their parent post
// (/posts/:postID/comments). A comment's postID is immutable: any request
// addressing a comment under a post it does not belong to is rejected, never
// silently reassigned.
//
// # Components
//
//   - Service: Sequences store calls and enforces the parentage rules.
//   - Handler: Exposes the HTTP endpoints and maps errors to status codes.
//   - Feature: Registers the package with the application loader.
//
// # HTTP Endpoints
//
//   - GET    /posts/:postID/comments            : List comments of a post.
//   - GET    /posts/:postID/comments/:commentID : Fetch one comment.
//   - POST   /posts/:postID/comments            : Create a comment.
//   - PUT    /posts/:postID/comments/:commentID : Full replace.
//   - PATCH  /posts/:postID/comments/:commentID : Partial merge.
//   - DELETE /posts/:postID/comments/:commentID : Delete.
package comments
