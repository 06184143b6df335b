// Package users implements account CRUD keyed by username. Passwords are
// bcrypt-hashed before storage and never appear in responses; username and
// email uniqueness is enforced against every other row before any write.
package users
