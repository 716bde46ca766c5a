package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"formvalidator/internal/core/domain/account"
	postgresPlatform "formvalidator/internal/platform/database/postgres"
)

const uniqueViolation = "23505"

var ErrNotConnected = errors.New("database connection is not initialized")

// Connector hands out the current pool. *database.Lifecycle implements it.
type Connector interface {
	Connection() *postgresPlatform.DB
}

type Repository struct {
	db Connector
}

func NewRepository(db Connector) *Repository {
	return &Repository{db: db}
}

func (r *Repository) conn() (*postgresPlatform.DB, error) {
	db := r.db.Connection()
	if db == nil {
		return nil, ErrNotConnected
	}
	return db, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	query := `SELECT id, email, password_hash, created_at FROM accounts WHERE lower(email) = $1`

	var acc account.Account
	err = db.QueryRowContext(ctx, query, account.NormalizeEmail(email)).Scan(
		&acc.ID,
		&acc.Email,
		&acc.PasswordHash,
		&acc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}
		return nil, err
	}

	return &acc, nil
}

func (r *Repository) Save(ctx context.Context, acc *account.Account) error {
	db, err := r.conn()
	if err != nil {
		return err
	}

	query := `INSERT INTO accounts (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4)`
	_, err = db.ExecContext(ctx, query, acc.ID, acc.Email, acc.PasswordHash, acc.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return &account.AlreadyExistsError{Email: acc.Email}
		}
		return err
	}
	return nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	db, err := r.conn()
	if err != nil {
		return 0, err
	}

	var count int
	if err := db.QueryRowContext(ctx, `SELECT count(*) FROM accounts`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) CreateTable(ctx context.Context) error {
	db, err := r.conn()
	if err != nil {
		return err
	}

	table := `
		CREATE TABLE IF NOT EXISTS accounts (
			id UUID PRIMARY KEY,
			email VARCHAR(254) NOT NULL,
			password_hash BYTEA NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	index := `CREATE UNIQUE INDEX IF NOT EXISTS accounts_email_lower_key ON accounts (lower(email))`

	return db.InTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, table); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, index)
		return err
	})
}
