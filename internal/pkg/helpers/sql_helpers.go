package helpers

import "database/sql"

// NullableArg turns an optional value into a query argument.
// A nil pointer becomes an untyped nil so the column is written as NULL.
func NullableArg[T any](v *T) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// StringPtr returns nil for an invalid NullString, otherwise a pointer to its value.
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// IntPtr returns nil for an invalid NullInt64, otherwise a pointer to its value as int.
func IntPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	i := int(ni.Int64)
	return &i
}

// Float64Ptr returns nil for an invalid NullFloat64, otherwise a pointer to its value.
func Float64Ptr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	f := nf.Float64
	return &f
}
