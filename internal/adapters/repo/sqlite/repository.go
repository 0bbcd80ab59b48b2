package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/splitcalc/internal/domain"
	"github.com/bnema/splitcalc/internal/ports"
	"github.com/spf13/viper"

	_ "modernc.org/sqlite"
)

const (
	driverName        = "sqlite"
	sessionPathKey    = "store.path"
	sessionDirMode    = 0o700
	sessionConfigDir  = ".splitcalc"
	sessionConfigFile = "session.db"
	defaultSessionKey = "default"
)

// Repository stores the session across four tables keyed by session key.
// Every Save rewrites the session's rows inside one transaction.
type Repository struct {
	db   *sql.DB
	key  string
	path string
}

var _ ports.SessionRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	dbPath := cfg.GetString(sessionPathKey)
	if dbPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, sessionConfigDir, sessionConfigFile)
	}

	return Open(dbPath)
}

// Open creates the database file and its directory if needed and applies the
// embedded migrations.
func Open(dbPath string) (*Repository, error) {
	absPath, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, fmt.Errorf("resolve session database path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(absPath), sessionDirMode); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open(driverName, absPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(absPath); err != nil {
		db.Close()
		return nil, err
	}

	return &Repository{db: db, key: defaultSessionKey, path: absPath}, nil
}

func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *Repository) Load(ctx context.Context) (domain.Session, bool, error) {
	var (
		session    domain.Session
		taxApplied int64
		updatedAt  string
	)

	err := r.db.QueryRowContext(ctx,
		`SELECT country, tax_applied, updated_at FROM sessions WHERE session_key = ?`, r.key,
	).Scan(&session.CountryCode, &taxApplied, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, fmt.Errorf("select session: %w", err)
	}

	session.TaxApplied = taxApplied != 0
	session.UpdatedAt = parseTime(updatedAt)
	if session.CountryCode == "" {
		session.CountryCode = domain.DefaultCountryCode
	}

	if session.Participants, err = r.loadParticipants(ctx); err != nil {
		return domain.Session{}, false, err
	}
	if session.Items, err = r.loadItems(ctx); err != nil {
		return domain.Session{}, false, err
	}

	return session, true, nil
}

func (r *Repository) loadParticipants(ctx context.Context) ([]domain.Participant, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name FROM participants WHERE session_key = ? ORDER BY position`, r.key)
	if err != nil {
		return nil, fmt.Errorf("select participants: %w", err)
	}
	defer rows.Close()

	participants := []domain.Participant{}
	for rows.Next() {
		var participant domain.Participant
		if err := rows.Scan(&participant.ID, &participant.Name); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		participants = append(participants, participant)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate participants: %w", err)
	}

	return participants, nil
}

func (r *Repository) loadItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, cost, quantity FROM items WHERE session_key = ? ORDER BY position`, r.key)
	if err != nil {
		return nil, fmt.Errorf("select items: %w", err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		var (
			item domain.Item
			cost string
		)
		if err := rows.Scan(&item.ID, &item.Name, &cost, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		item.UnitCost = domain.ParseAmount(cost)
		item.Participants = []domain.ParticipantID{}
		items = append(items, item.Normalize())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}

	refs, err := r.db.QueryContext(ctx,
		`SELECT item_position, participant_id FROM item_participants WHERE session_key = ? ORDER BY item_position, position`, r.key)
	if err != nil {
		return nil, fmt.Errorf("select item participants: %w", err)
	}
	defer refs.Close()

	for refs.Next() {
		var (
			position int
			ref      domain.ParticipantID
		)
		if err := refs.Scan(&position, &ref); err != nil {
			return nil, fmt.Errorf("scan item participant: %w", err)
		}
		if position < 0 || position >= len(items) {
			continue
		}
		items[position].Participants = append(items[position].Participants, ref)
	}

	if err := refs.Err(); err != nil {
		return nil, fmt.Errorf("iterate item participants: %w", err)
	}

	return items, nil
}

func (r *Repository) Save(ctx context.Context, session domain.Session) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin session transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("rollback session transaction: %w", rollbackErr))
			}
		}
	}()

	taxApplied := 0
	if session.TaxApplied {
		taxApplied = 1
	}

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO sessions (session_key, country, tax_applied, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(session_key) DO UPDATE SET
			country = excluded.country,
			tax_applied = excluded.tax_applied,
			updated_at = excluded.updated_at`,
		r.key, session.CountryCode, taxApplied, formatTime(session.UpdatedAt),
	); err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}

	for _, table := range []string{"item_participants", "items", "participants"} {
		if _, err = tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE session_key = ?`, r.key); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for position, participant := range session.Participants {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO participants (session_key, position, id, name) VALUES (?, ?, ?, ?)`,
			r.key, position, string(participant.ID), participant.Name,
		); err != nil {
			return fmt.Errorf("insert participant: %w", err)
		}
	}

	for position, item := range session.Items {
		item = item.Normalize()
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO items (session_key, position, id, name, cost, quantity) VALUES (?, ?, ?, ?, ?, ?)`,
			r.key, position, string(item.ID), item.Name, item.UnitCost.String(), item.Quantity,
		); err != nil {
			return fmt.Errorf("insert item: %w", err)
		}

		for refPosition, ref := range item.Participants {
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO item_participants (session_key, item_position, position, participant_id) VALUES (?, ?, ?, ?)`,
				r.key, position, refPosition, string(ref),
			); err != nil {
				return fmt.Errorf("insert item participant: %w", err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit session transaction: %w", err)
	}

	return nil
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339Nano)
}
