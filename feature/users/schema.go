package users

import (
	"blog-api/core/reconcile"

	"golang.org/x/crypto/bcrypt"
)

// schema declares the client-writable user fields. Incoming passwords are
// hashed on the way in; on a merge that omits the password the stored hash is
// carried over untouched, so the encoder only ever sees plaintext.
var schema = &reconcile.Schema{
	Resource: "user",
	Fields: []reconcile.Field{
		{Name: "username", Required: true, Check: reconcile.NonEmptyText},
		{Name: "email", Required: true, Check: reconcile.NonEmptyText},
		{Name: "password", Required: true, Check: reconcile.NonEmptyText, Encode: hashPassword},
	},
}

func hashPassword(v any) (any, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(v.(string)), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return string(hash), nil
}
