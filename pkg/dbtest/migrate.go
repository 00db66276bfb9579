package dbtest

import (
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
)

// MigrateFromFile executes all SQL statements from the files over a database
// connection.
func MigrateFromFile(db *sqlx.DB, fileNames ...string) error {
	for _, fileName := range fileNames {
		fileBytes, err := os.ReadFile(fileName)
		if err != nil {
			return fmt.Errorf("os.ReadFile: %w", err)
		}

		if _, err = db.Exec(string(fileBytes)); err != nil {
			return fmt.Errorf("db.Exec(%s): %w", fileName, err)
		}
	}

	return nil
}

// Truncate empties the given tables between test cases.
func Truncate(db *sqlx.DB, tables ...string) error {
	for _, table := range tables {
		if _, err := db.Exec("TRUNCATE TABLE " + table); err != nil {
			return fmt.Errorf("db.Exec(truncate %s): %w", table, err)
		}
	}

	return nil
}
