// Package store persists extracted frameworks in a SQLite database so
// runs can be inspected and re-queried without re-analyzing ad dumps.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mhailey/copyscope/internal/framework"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id     INTEGER PRIMARY KEY AUTOINCREMENT,
	source     TEXT NOT NULL,
	started_at TEXT NOT NULL,
	finished_at TEXT,
	ads_total  INTEGER DEFAULT 0,
	ads_failed INTEGER DEFAULT 0
);

CREATE TABLE IF NOT EXISTS frameworks (
	ad_id          TEXT NOT NULL,
	run_id         INTEGER NOT NULL,
	ad_name        TEXT,
	ad_type        TEXT,
	word_count     INTEGER DEFAULT 0,
	primary_desire TEXT,
	awareness      TEXT,
	sophistication INTEGER DEFAULT 0,
	framework_json TEXT NOT NULL,
	created_at     TEXT NOT NULL,
	PRIMARY KEY (ad_id, run_id),
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);
`

// Store wraps the SQLite database. Single-writer CLI usage; no pooling
// discipline beyond database/sql's own.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// BeginRun records the start of an analysis run and returns its ID.
func (s *Store) BeginRun(source string) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (source, started_at) VALUES (?, ?)`,
		source, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("begin run: %w", err)
	}
	return res.LastInsertId()
}

// FinishRun records run completion counters.
func (s *Store) FinishRun(runID int64, total, failed int) error {
	_, err := s.db.Exec(
		`UPDATE runs SET finished_at = ?, ads_total = ?, ads_failed = ? WHERE run_id = ?`,
		time.Now().UTC().Format(time.RFC3339), total, failed, runID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

// SaveFramework persists one extracted framework under a run. The full
// record is stored as JSON; a few columns are denormalized for querying.
func (s *Store) SaveFramework(runID int64, fw framework.Framework) error {
	blob, err := json.Marshal(fw)
	if err != nil {
		return fmt.Errorf("marshal framework %s: %w", fw.ID, err)
	}

	primaryDesire := ""
	if fw.MassDesire.Primary != nil {
		primaryDesire = *fw.MassDesire.Primary
	}

	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO frameworks
		 (ad_id, run_id, ad_name, ad_type, word_count, primary_desire, awareness, sophistication, framework_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		fw.ID, runID, fw.Name, fw.Type, fw.WordCount,
		primaryDesire, fw.AwarenessStage.Primary, fw.Sophistication.LikelyStage,
		string(blob), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save framework %s: %w", fw.ID, err)
	}
	return nil
}

// ListFrameworks returns all frameworks for a run in ad-ID order.
func (s *Store) ListFrameworks(runID int64) ([]framework.Framework, error) {
	rows, err := s.db.Query(
		`SELECT framework_json FROM frameworks WHERE run_id = ? ORDER BY ad_id`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list frameworks: %w", err)
	}
	defer rows.Close()

	var frameworks []framework.Framework
	for rows.Next() {
		var blob string
		if err := rows.Scan(&blob); err != nil {
			return nil, fmt.Errorf("scan framework: %w", err)
		}
		var fw framework.Framework
		if err := json.Unmarshal([]byte(blob), &fw); err != nil {
			return nil, fmt.Errorf("unmarshal framework: %w", err)
		}
		frameworks = append(frameworks, fw)
	}
	return frameworks, rows.Err()
}
