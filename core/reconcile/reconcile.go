package reconcile

import (
	"blog-api/core/apierr"
)

// Op identifies the mutation kind being reconciled.
type Op int

const (
	// OpCreate inserts a new resource; all required fields must be supplied.
	OpCreate Op = iota
	// OpReplace fully replaces an existing resource (PUT semantics).
	OpReplace
	// OpMerge partially updates an existing resource (PATCH semantics).
	OpMerge
)

// Field describes a single client-writable field of a resource.
type Field struct {
	// Name is the payload and column name.
	Name string
	// Required marks fields that must be present on create and replace.
	Required bool
	// Check validates a present, non-null payload value. A nil Check accepts
	// any value.
	Check func(v any) bool
	// Encode converts a validated payload value into its storage form, e.g.
	// joining a tag list or hashing a password. A nil Encode stores the value
	// as-is. Encode failures are internal errors, not client rejections.
	Encode func(v any) (any, error)
}

// Schema is the declarative field table for one resource kind.
type Schema struct {
	// Resource names the resource kind, for diagnostics.
	Resource string
	// Fields lists the client-writable fields in column order.
	Fields []Field
}

// Reconcile computes the final storage values for a mutation. For OpMerge,
// stored must hold the current row; fields absent from (or null in) the
// payload fall back to it. The returned map contains a value for every schema
// field, so the caller can issue a single complete statement, or an error and
// no partial result.
func (s *Schema) Reconcile(op Op, payload, stored map[string]any) (map[string]any, error) {
	if op == OpMerge && !s.anyRecognized(payload) {
		return nil, apierr.Validation("PATCH request must contain at least one field!")
	}

	out := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		v, present := payload[f.Name]
		if !present || v == nil {
			if op == OpMerge {
				out[f.Name] = stored[f.Name]
				continue
			}
			if f.Required {
				return nil, missingFields(op)
			}
			continue
		}
		if f.Check != nil && !f.Check(v) {
			return nil, apierr.Validation("Missing fields or invalid format!")
		}
		if f.Encode != nil {
			enc, err := f.Encode(v)
			if err != nil {
				return nil, err
			}
			v = enc
		}
		out[f.Name] = v
	}
	return out, nil
}

// anyRecognized reports whether the payload contains at least one non-null
// value for a schema field.
func (s *Schema) anyRecognized(payload map[string]any) bool {
	for _, f := range s.Fields {
		if v, ok := payload[f.Name]; ok && v != nil {
			return true
		}
	}
	return false
}

func missingFields(op Op) error {
	if op == OpReplace {
		return apierr.Validation("PUT request missing required fields!")
	}
	return apierr.Validation("Missing fields or invalid format!")
}

// NonEmptyText accepts non-empty string values.
func NonEmptyText(v any) bool {
	s, ok := v.(string)
	return ok && s != ""
}

// TextList accepts JSON arrays whose elements are all strings. The empty list
// is valid.
func TextList(v any) bool {
	list, ok := v.([]any)
	if !ok {
		return false
	}
	for _, e := range list {
		if _, ok := e.(string); !ok {
			return false
		}
	}
	return true
}
