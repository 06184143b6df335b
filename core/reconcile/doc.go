// Package reconcile implements the mutation reconciliation engine shared by
// all resource kinds.
//
// Given an operation kind (create, replace, merge), a declarative field schema
// and the currently stored row, the engine computes the complete final field
// set to persist, or rejects the mutation. The decision logic for PUT vs PATCH
// lives entirely here; resource services only sequence store calls around it.
//
// # Field-presence semantics
//
//   - Replace (PUT): every required field must be present, non-null and valid.
//     Nothing ever falls back to the stored value.
//   - Merge (PATCH): each field is independently optional. Present, non-null
//     values override; absent or null values fall back to the stored row.
//     A payload with zero recognized non-null fields is rejected.
//   - Create (POST): the required-field rules of Replace, with no stored row.
//
// Unrecognized payload fields are ignored in all operations. Generated fields
// (id, createdAt, updatedAt) are owned by the calling service, not the engine.
//
// # Schemas
//
// Rather than one reconciler per resource, each resource declares a Schema: an
// ordered table of Fields with a validity predicate and an optional storage
// encoder (tag joining, password hashing). One engine serves all three
// resource kinds.
//
//	fields, err := postSchema.Reconcile(reconcile.OpMerge, payload, stored)
//
// The engine never issues store calls and holds no state: each reconciliation
// is a pure function of (operation, payload, stored row).
package reconcile
