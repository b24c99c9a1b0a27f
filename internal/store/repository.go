package store

import (
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"

	"stylometer/internal/features"
	"stylometer/internal/metrics"
)

// Store persists feature vectors keyed by text fingerprint and schema version,
// so a text that was already analyzed under the current schema is never
// recomputed.
type Store struct {
	conn *sql.DB
}

type Run struct {
	ID        string
	StartedAt time.Time
}

type Record struct {
	Fingerprint   string
	SchemaVersion int
	DocumentID    string
	Source        string
	RunID         string
	Vector        features.Vector
	Legacy        features.LegacyVector
	CreatedAt     time.Time
}

func Open(path string) (*Store, error) {
	conn, err := open(path)
	if err != nil {
		return nil, err
	}
	return &Store{conn: conn}, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) BeginRun(ctx context.Context) (Run, error) {
	run := Run{ID: uuid.NewString(), StartedAt: time.Now().UTC()}
	if _, err := s.conn.ExecContext(ctx,
		`INSERT INTO runs(id, started_at, schema_version) VALUES(?,?,?)`,
		run.ID, run.StartedAt.Format(time.RFC3339Nano), features.SchemaVersion,
	); err != nil {
		return Run{}, fmt.Errorf("insert run: %w", err)
	}
	return run, nil
}

func (s *Store) FinishRun(ctx context.Context, runID string, documents, failures int) error {
	res, err := s.conn.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, documents = ?, failures = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano), documents, failures, runID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("finish run: unknown run %s", runID)
	}
	return nil
}

// Lookup returns the stored vector of a fingerprint under the current schema.
func (s *Store) Lookup(ctx context.Context, fingerprint string) (Record, bool, error) {
	row := s.conn.QueryRowContext(ctx, selectRecord+` WHERE fingerprint = ? AND schema_version = ?`,
		fingerprint, features.SchemaVersion)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, err
	}
	metrics.CacheLookups.WithLabelValues("hit").Inc()
	return rec, true, nil
}

// Save upserts records in a single transaction.
func (s *Store) Save(ctx context.Context, records ...Record) error {
	if len(records) == 0 {
		return nil
	}
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, r := range records {
		vec, err := json.Marshal(r.Vector)
		if err != nil {
			return fmt.Errorf("marshal vector: %w", err)
		}
		legacy, err := json.Marshal(r.Legacy)
		if err != nil {
			return fmt.Errorf("marshal legacy vector: %w", err)
		}
		created := r.CreatedAt
		if created.IsZero() {
			created = time.Now().UTC()
		}
		version := r.SchemaVersion
		if version == 0 {
			version = features.SchemaVersion
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO vectors(fingerprint, schema_version, document_id, source, run_id, vector, legacy, created_at)
			 VALUES(?,?,?,?,?,?,?,?)`,
			r.Fingerprint, version, r.DocumentID, r.Source, r.RunID, string(vec), string(legacy), created.Format(time.RFC3339Nano),
		); err != nil {
			return fmt.Errorf("insert vector: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Records lists stored vectors of the current schema, oldest first. An empty
// runID lists every run.
func (s *Store) Records(ctx context.Context, runID string) ([]Record, error) {
	query := selectRecord + ` WHERE schema_version = ?`
	args := []any{features.SchemaVersion}
	if runID != "" {
		query += ` AND run_id = ?`
		args = append(args, runID)
	}
	query += ` ORDER BY created_at, document_id`

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query vectors: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vectors: %w", err)
	}
	return out, nil
}

// ExportCSV writes one row per stored vector with the feature names as header,
// the layout classifier training jobs read.
func (s *Store) ExportCSV(ctx context.Context, w io.Writer, runID string) (int, error) {
	records, err := s.Records(ctx, runID)
	if err != nil {
		return 0, err
	}
	cw := csv.NewWriter(w)
	header := append([]string{"document_id", "fingerprint", "source", "run_id"}, features.Names()...)
	if err := cw.Write(header); err != nil {
		return 0, fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		row := make([]string, 0, len(header))
		row = append(row, r.DocumentID, r.Fingerprint, r.Source, r.RunID)
		for _, v := range r.Vector {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return 0, fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flush csv: %w", err)
	}
	return len(records), nil
}

func (s *Store) CountRows(ctx context.Context, table string) (int, error) {
	switch table {
	case "runs", "vectors":
	default:
		return 0, fmt.Errorf("unknown table %q", table)
	}
	row := s.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return count, nil
}

const selectRecord = `SELECT fingerprint, schema_version, document_id, source, run_id, vector, legacy, created_at FROM vectors`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var (
		rec             Record
		vec, legacy, ts string
	)
	if err := row.Scan(&rec.Fingerprint, &rec.SchemaVersion, &rec.DocumentID, &rec.Source, &rec.RunID, &vec, &legacy, &ts); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, err
		}
		return Record{}, fmt.Errorf("scan vector: %w", err)
	}
	if err := json.Unmarshal([]byte(vec), &rec.Vector); err != nil {
		return Record{}, fmt.Errorf("decode vector %s: %w", rec.Fingerprint, err)
	}
	if err := json.Unmarshal([]byte(legacy), &rec.Legacy); err != nil {
		return Record{}, fmt.Errorf("decode legacy vector %s: %w", rec.Fingerprint, err)
	}
	created, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return Record{}, fmt.Errorf("parse created_at: %w", err)
	}
	rec.CreatedAt = created
	return rec, nil
}
