package querybuilder

import "fmt"

// Match comparison kind of a filter column
type Match int

const (
	// Equal exact match (ids, foreign keys, flags)
	Equal Match = iota
	// Contains case-sensitive substring match, value wrapped as %v%
	Contains
)

// Filter one (column, comparison, value) tuple. A nil Value is an absent filter.
type Filter struct {
	Column string
	Match  Match
	Value  any
}

// Present reports whether the filter contributes a predicate
func (f Filter) Present() bool {
	return f.Value != nil
}

func (f Filter) stringValue() string {
	if s, ok := f.Value.(string); ok {
		return s
	}
	return fmt.Sprint(f.Value)
}

// String filter from an optional string
func String(column string, match Match, v *string) Filter {
	f := Filter{Column: column, Match: match}
	if v != nil {
		f.Value = *v
	}
	return f
}

// Int equality filter from an optional integer
func Int(column string, v *int64) Filter {
	f := Filter{Column: column, Match: Equal}
	if v != nil {
		f.Value = *v
	}
	return f
}

// Bool equality filter from an optional flag
func Bool(column string, v *bool) Filter {
	f := Filter{Column: column, Match: Equal}
	if v != nil {
		f.Value = *v
	}
	return f
}
