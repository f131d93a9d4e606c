package questions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
)

// Save writes set to path in the format implied by its extension. The
// text format cannot hold explanations and is rejected.
func Save(ctx context.Context, path string, set *Set) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	switch format {
	case FormatSQLite:
		db, err := sql.Open("sqlite", path)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		err = WriteSQLite(ctx, db, set)
		return errors.Join(err, db.Close())
	case FormatText:
		return fmt.Errorf("cannot save to %s: text files cannot hold explanations", path)
	}

	data, err := Marshal(set, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write question file: %w", err)
	}
	return nil
}
