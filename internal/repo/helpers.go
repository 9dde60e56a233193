package repo

import (
	"database/sql"

	"github.com/mistveil/backoffice-next/internal/pkg/mverr"
)

// requireAffected converts a zero-row write into mverr.ErrNotFound.
func requireAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return mverr.ErrNotFound
	}
	return nil
}
