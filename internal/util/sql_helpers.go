package util

import (
	"database/sql"
)

// NullStringToString returns the string value, or "" for NULL.
// Oracle stores empty strings as NULL.
func NullStringToString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}
