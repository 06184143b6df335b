// Package apierr defines the error taxonomy shared by all resource features.
//
// Every failure the API can report falls into one of four kinds:
//   - Validation: malformed identifiers, missing/invalid fields, empty PATCH payloads (400)
//   - NotFound: the addressed resource does not exist (404)
//   - Conflict: duplicate username/email, or a comment addressed under the wrong post
//   - Store: an unexpected database failure (500, cause logged, message kept generic)
//
// Validation, not-found and conflict conditions are expected control flow; they
// are constructed directly by services and carried as ordinary error values.
// Only Store errors wrap an underlying cause.
//
// # Usage
//
//	if len(rows) == 0 {
//	    return nil, apierr.NotFound("Post wasn't found!")
//	}
//
//	// In a handler:
//	return apierr.Respond(c, l, err)
package apierr
