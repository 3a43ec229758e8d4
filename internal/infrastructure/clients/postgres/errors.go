package postgres

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// SQLSTATE codes that mean the schema has not been provisioned yet.
const (
	codeUndefinedTable    = "42P01"
	codeInvalidSchemaName = "3F000"
)

// IsUndefinedTable reports whether err was raised because the target
// relation (or its schema) does not exist.
func IsUndefinedTable(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == codeUndefinedTable || pqErr.Code == codeInvalidSchemaName
	}

	// Some poolers flatten driver errors into plain text.
	msg := err.Error()
	return strings.Contains(msg, "relation") && strings.Contains(msg, "does not exist")
}
