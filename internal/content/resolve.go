package content

import (
	"errors"
	"fmt"
	"os"
)

// Source describes where a resolved pack came from.
type Source struct {
	Kind string // "embedded", "file" or "sqlite"
	Path string
}

func (s Source) String() string {
	if s.Path == "" {
		return s.Kind
	}
	return s.Kind + ":" + s.Path
}

// Resolve picks the content pack for this process: a YAML file, a SQLite
// content database, or the embedded default when neither is set. The
// database must already exist; Resolve never creates one.
func Resolve(file, db string) (*Pack, Source, error) {
	switch {
	case file != "" && db != "":
		return nil, Source{}, errors.New("content file and content database are mutually exclusive")

	case file != "":
		p, err := LoadFile(file)
		return p, Source{Kind: "file", Path: file}, err

	case db != "":
		// Opening creates the file, so a missing database is caught first.
		if _, err := os.Stat(db); err != nil {
			return nil, Source{}, fmt.Errorf("content database %s: %w", db, err)
		}
		store, err := OpenSQLite(db)
		if err != nil {
			return nil, Source{}, err
		}
		defer store.Close()

		p, err := store.Load()
		if err != nil {
			return nil, Source{}, fmt.Errorf("loading %s: %w", db, err)
		}
		return p, Source{Kind: "sqlite", Path: db}, nil

	default:
		p, err := Default()
		return p, Source{Kind: "embedded"}, err
	}
}
