package questions

import (
	"context"
	"database/sql"
	"fmt"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Schema is the table layout read by LoadSQLite. Rows are served in
// position order.
const Schema = `CREATE TABLE IF NOT EXISTS questions (
	position    INTEGER PRIMARY KEY,
	text        TEXT    NOT NULL,
	answer      INTEGER NOT NULL CHECK (answer IN (0, 1)),
	explanation TEXT    NOT NULL DEFAULT ''
)`

// LoadSQLite reads a question set from the questions table of the SQLite
// database at dsn. The database is opened read-only.
func LoadSQLite(dsn string) (*Set, error) {
	db, err := sql.Open("sqlite", "file:"+dsn+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	return QuerySQLite(context.Background(), db)
}

// QuerySQLite reads a question set from an open database handle. The
// explanation column is optional so plain questions(position, text,
// answer) tables load too.
func QuerySQLite(ctx context.Context, db *sql.DB) (*Set, error) {
	explained, err := hasColumn(ctx, db, "questions", "explanation")
	if err != nil {
		return nil, fmt.Errorf("inspect questions table: %w", err)
	}
	query := `SELECT text, answer, '' FROM questions ORDER BY position`
	if explained {
		query = `SELECT text, answer, explanation FROM questions ORDER BY position`
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	set := &Set{}
	for rows.Next() {
		var q Question
		var answer int
		if err := rows.Scan(&q.Text, &answer, &q.Explanation); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		q.Answer = answer == 1
		set.Questions = append(set.Questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}
	return set, nil
}

func hasColumn(ctx context.Context, db *sql.DB, table, column string) (bool, error) {
	var n int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`, table, column,
	).Scan(&n)
	return n > 0, err
}

// WriteSQLite creates the questions table in db if needed and replaces its
// contents with set.
func WriteSQLite(ctx context.Context, db *sql.DB, set *Set) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM questions`); err != nil {
		return fmt.Errorf("clear table: %w", err)
	}
	for i, q := range set.Questions {
		answer := 0
		if q.Answer {
			answer = 1
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO questions (position, text, answer, explanation) VALUES (?, ?, ?, ?)`,
			i, q.Text, answer, q.Explanation,
		); err != nil {
			return fmt.Errorf("insert question %d: %w", i, err)
		}
	}
	return tx.Commit()
}
