package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/zatekoja/clinicsite/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/clinicsite/pkg/errors"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// queryError wraps a driver error, marking missing tables as not provisioned
// so callers can tell an empty deployment from a broken one.
func queryError(message, table string, err error) error {
	if postgres.IsUndefinedTable(err) {
		return apperrors.NewNotProvisionedError(fmt.Sprintf("table %s does not exist", table), err)
	}
	return apperrors.NewInternalError(message, err)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func affected(result sql.Result) (bool, error) {
	rows, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.NewInternalError("failed to get rows affected", err)
	}
	return rows > 0, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// setString copies a patch field into record when it was supplied
func setString(record goqu.Record, column string, value *string) {
	if value != nil {
		record[column] = *value
	}
}

// setNullString is setString for nullable columns; an empty value clears
// the column.
func setNullString(record goqu.Record, column string, value *string) {
	if value != nil {
		record[column] = nullString(*value)
	}
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
