package content

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/HendryAvila/careerfit/internal/quiz"

	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// ErrNoContent is returned by Load when the database holds no pack.
var ErrNoContent = errors.New("content database is empty")

// SQLiteStore keeps one authored content pack in a SQLite database so
// content editors can version wording apart from the binary. It stores
// content only; quiz results are never written anywhere.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) a content database at path and
// runs migrations.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("content: create data dir: %w", err)
		}
	}

	db, err := openDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("content: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("content: pragma %q: %w", p, err)
		}
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("content: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ─── Migrations ──────────────────────────────────────────────────────────────

func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS meta (
			id      INTEGER PRIMARY KEY CHECK (id = 1),
			version TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS traits (
			trait      TEXT PRIMARY KEY,
			position   INTEGER NOT NULL,
			definition TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS scale (
			value INTEGER PRIMARY KEY,
			label TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS questions (
			id    INTEGER PRIMARY KEY,
			trait TEXT NOT NULL,
			text  TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS profiles (
			key         TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			description TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS development_areas (
			profile_key TEXT NOT NULL REFERENCES profiles(key) ON DELETE CASCADE,
			trait       TEXT NOT NULL,
			description TEXT NOT NULL,
			tip         TEXT NOT NULL,
			PRIMARY KEY (profile_key, trait)
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// ─── Save / Load ─────────────────────────────────────────────────────────────

// Save validates p and replaces whatever pack the database held, in a
// single transaction.
func (s *SQLiteStore) Save(p *Pack) error {
	if err := p.Validate(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("content: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"development_areas", "profiles", "questions", "scale", "traits", "meta"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("content: clear %s: %w", table, err)
		}
	}

	if _, err := tx.Exec(`INSERT INTO meta (id, version) VALUES (1, ?)`, p.Version); err != nil {
		return fmt.Errorf("content: save version: %w", err)
	}
	for i, ti := range p.Traits {
		if _, err := tx.Exec(`INSERT INTO traits (trait, position, definition) VALUES (?, ?, ?)`,
			string(ti.Trait), i, ti.Definition); err != nil {
			return fmt.Errorf("content: save trait %s: %w", ti.Trait, err)
		}
	}
	for _, sp := range p.Scale {
		if _, err := tx.Exec(`INSERT INTO scale (value, label) VALUES (?, ?)`, sp.Value, sp.Label); err != nil {
			return fmt.Errorf("content: save scale %d: %w", sp.Value, err)
		}
	}
	for _, q := range p.Questions {
		if _, err := tx.Exec(`INSERT INTO questions (id, trait, text) VALUES (?, ?, ?)`,
			q.ID, string(q.Trait), q.Text); err != nil {
			return fmt.Errorf("content: save question %d: %w", q.ID, err)
		}
	}
	for key, prof := range p.Profiles {
		if _, err := tx.Exec(`INSERT INTO profiles (key, title, description) VALUES (?, ?, ?)`,
			string(key), prof.Title, prof.Description); err != nil {
			return fmt.Errorf("content: save profile %s: %w", key, err)
		}
		for trait, area := range prof.DevelopmentAreas {
			if _, err := tx.Exec(`INSERT INTO development_areas (profile_key, trait, description, tip) VALUES (?, ?, ?, ?)`,
				string(key), string(trait), area.Description, area.Tip); err != nil {
				return fmt.Errorf("content: save development area %s/%s: %w", key, trait, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("content: commit: %w", err)
	}
	return nil
}

// Load reads the stored pack and validates it.
func (s *SQLiteStore) Load() (*Pack, error) {
	p := &Pack{Profiles: make(map[quiz.ProfileKey]quiz.Profile)}

	err := s.db.QueryRow(`SELECT version FROM meta WHERE id = 1`).Scan(&p.Version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoContent
	}
	if err != nil {
		return nil, fmt.Errorf("content: load version: %w", err)
	}

	if err := s.loadTraits(p); err != nil {
		return nil, err
	}
	if err := s.loadScale(p); err != nil {
		return nil, err
	}
	if err := s.loadQuestions(p); err != nil {
		return nil, err
	}
	if err := s.loadProfiles(p); err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("content database: %w", err)
	}
	return p, nil
}

func (s *SQLiteStore) loadTraits(p *Pack) error {
	rows, err := s.db.Query(`SELECT trait, definition FROM traits ORDER BY position`)
	if err != nil {
		return fmt.Errorf("content: load traits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ti TraitInfo
		var trait string
		if err := rows.Scan(&trait, &ti.Definition); err != nil {
			return fmt.Errorf("content: scan trait: %w", err)
		}
		ti.Trait = quiz.Trait(trait)
		p.Traits = append(p.Traits, ti)
	}
	return rows.Err()
}

func (s *SQLiteStore) loadScale(p *Pack) error {
	rows, err := s.db.Query(`SELECT value, label FROM scale ORDER BY value`)
	if err != nil {
		return fmt.Errorf("content: load scale: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sp ScalePoint
		if err := rows.Scan(&sp.Value, &sp.Label); err != nil {
			return fmt.Errorf("content: scan scale: %w", err)
		}
		p.Scale = append(p.Scale, sp)
	}
	return rows.Err()
}

func (s *SQLiteStore) loadQuestions(p *Pack) error {
	rows, err := s.db.Query(`SELECT id, trait, text FROM questions ORDER BY id`)
	if err != nil {
		return fmt.Errorf("content: load questions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var q quiz.Question
		var trait string
		if err := rows.Scan(&q.ID, &trait, &q.Text); err != nil {
			return fmt.Errorf("content: scan question: %w", err)
		}
		q.Trait = quiz.Trait(trait)
		p.Questions = append(p.Questions, q)
	}
	return rows.Err()
}

func (s *SQLiteStore) loadProfiles(p *Pack) error {
	rows, err := s.db.Query(`SELECT key, title, description FROM profiles`)
	if err != nil {
		return fmt.Errorf("content: load profiles: %w", err)
	}
	for rows.Next() {
		var key string
		var prof quiz.Profile
		if err := rows.Scan(&key, &prof.Title, &prof.Description); err != nil {
			rows.Close()
			return fmt.Errorf("content: scan profile: %w", err)
		}
		p.Profiles[quiz.ProfileKey(key)] = prof
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("content: load profiles: %w", err)
	}
	rows.Close()

	areas, err := s.db.Query(`SELECT profile_key, trait, description, tip FROM development_areas`)
	if err != nil {
		return fmt.Errorf("content: load development areas: %w", err)
	}
	defer areas.Close()

	for areas.Next() {
		var key, trait string
		var area quiz.DevelopmentArea
		if err := areas.Scan(&key, &trait, &area.Description, &area.Tip); err != nil {
			return fmt.Errorf("content: scan development area: %w", err)
		}
		prof, ok := p.Profiles[quiz.ProfileKey(key)]
		if !ok {
			continue
		}
		if prof.DevelopmentAreas == nil {
			prof.DevelopmentAreas = make(map[quiz.Trait]quiz.DevelopmentArea, len(quiz.TraitOrder))
		}
		prof.DevelopmentAreas[quiz.Trait(trait)] = area
		p.Profiles[quiz.ProfileKey(key)] = prof
	}
	return areas.Err()
}
