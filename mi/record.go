// Copyright © 2024 The DDB authors

// Package mi defines the typed boundary over parsed GDB/MI result
// records. The MI text parser itself lives in the session transport;
// this package only fixes the record shape that parser hands over and
// the field conversions the variable layer depends on.
package mi

import (
	"fmt"
	"strconv"
)

// Record is one parsed MI result record: a string-keyed tree whose
// leaves are strings. MI tuples and lists nest as further Records and
// []any values, but the variable layer only ever reads string leaves.
type Record map[string]any

// Field returns the string leaf stored under key. The second return is
// false when the key is absent or holds a non-string node; callers must
// not conflate that with a present empty string.
func (r Record) Field(key string) (string, bool) {
	v, ok := r[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Flag interprets a boolean-like MI field. The backend reports these as
// untyped strings, so the rule is truthiness, not a strict parse:
// absent, empty, and "0" are false; anything else (including the
// literal "false") is true.
func (r Record) Flag(key string) bool {
	s, ok := r.Field(key)
	if !ok {
		return false
	}
	return s != "" && s != "0"
}

// ChildCount parses a decimal child count. The count feeds directly
// into compound classification, so a missing or malformed field is an
// explicit error rather than a silent zero.
func (r Record) ChildCount(key string) (int, error) {
	s, ok := r.Field(key)
	if !ok {
		return 0, fmt.Errorf("mi: record has no %q field", key)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("mi: field %q is not a child count: %q", key, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("mi: field %q is a negative child count: %q", key, s)
	}
	return n, nil
}

// Int leniently parses a decimal field, returning 0 when the field is
// absent or malformed. Used for fields like thread-id whose omission
// the variable layer tolerates.
func (r Record) Int(key string) int {
	s, ok := r.Field(key)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
