package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// timestampLayout is how audit timestamps are stored in TEXT columns.
const timestampLayout = time.RFC3339Nano

// dateLayout is how calendar dates are stored in TEXT columns.
const dateLayout = "2006-01-02"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(column, value string) (time.Time, error) {
	t, err := time.Parse(timestampLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: %w", column, value, err)
	}
	return t, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
