package docstore

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"meetingBooker/internal/config"
)

// PostgresStore keeps documents in a single table with a revision column.
// The conditional UPDATE makes Save a compare-and-swap, which is what makes
// this backend safe across multiple service instances.
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(dbCfg *config.Database) (*PostgresStore, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS documents (
			key            TEXT PRIMARY KEY,
			schema_version INTEGER NOT NULL,
			revision       BIGINT NOT NULL,
			body           JSONB NOT NULL
		)`

	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create documents table: %w", err)
	}

	return &PostgresStore{DB: db}, nil
}

func (s *PostgresStore) Close() error {
	return s.DB.Close()
}

func (s *PostgresStore) Load(ctx context.Context, key string) (Document, bool, error) {
	query := `
		SELECT schema_version, revision, body
		FROM documents
		WHERE key = $1`

	var doc Document
	err := s.DB.QueryRowContext(ctx, query, key).Scan(
		&doc.SchemaVersion,
		&doc.Revision,
		(*[]byte)(&doc.Records),
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return Document{SchemaVersion: SchemaVersion}, false, nil
		}
		return Document{}, false, fmt.Errorf("failed to load document %q: %w", key, err)
	}

	return doc, true, nil
}

func (s *PostgresStore) Save(ctx context.Context, key string, doc Document) error {
	if doc.Revision == 0 {
		insert := `
			INSERT INTO documents (key, schema_version, revision, body)
			VALUES ($1, $2, 1, $3)
			ON CONFLICT (key) DO NOTHING`

		res, err := s.DB.ExecContext(ctx, insert, key, SchemaVersion, []byte(doc.Records))
		if err != nil {
			return fmt.Errorf("failed to insert document %q: %w", key, err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to insert document %q: %w", key, err)
		}
		if rows == 0 {
			return ErrRevisionConflict
		}

		return nil
	}

	update := `
		UPDATE documents
		SET schema_version = $2, revision = revision + 1, body = $3
		WHERE key = $1 AND revision = $4`

	res, err := s.DB.ExecContext(ctx, update, key, SchemaVersion, []byte(doc.Records), doc.Revision)
	if err != nil {
		return fmt.Errorf("failed to update document %q: %w", key, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update document %q: %w", key, err)
	}
	if rows == 0 {
		return ErrRevisionConflict
	}

	return nil
}
