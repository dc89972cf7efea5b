package database

import "database/sql"

// requireRowAffected turns a zero-row UPDATE/DELETE into sql.ErrNoRows so
// callers can distinguish "id does not exist" from success.
func requireRowAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
