package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"

	"formvalidator/internal/core/domain/account"
	postgresPlatform "formvalidator/internal/platform/database/postgres"
)

type stubConnector struct {
	db *postgresPlatform.DB
}

func (c *stubConnector) Connection() *postgresPlatform.DB {
	return c.db
}

type RepositoryUnitTestSuite struct {
	suite.Suite
	mock sqlmock.Sqlmock
	sql  *sql.DB
	repo *Repository
}

func (s *RepositoryUnitTestSuite) SetupTest() {
	db, mock, err := sqlmock.New()
	s.Require().NoError(err)
	s.sql = db
	s.mock = mock
	s.repo = NewRepository(&stubConnector{db: &postgresPlatform.DB{DB: db}})
}

func (s *RepositoryUnitTestSuite) TearDownTest() {
	s.Assert().NoError(s.mock.ExpectationsWereMet())
	s.Require().NoError(s.sql.Close())
}

func (s *RepositoryUnitTestSuite) TestSave_Success() {
	acc := &account.Account{ID: "id-1", Email: "c@example.com", PasswordHash: []byte("hash"), CreatedAt: time.Now()}
	s.mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO accounts`)).
		WithArgs(acc.ID, acc.Email, acc.PasswordHash, acc.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s.Assert().NoError(s.repo.Save(context.Background(), acc))
}

func (s *RepositoryUnitTestSuite) TestSave_UniqueViolation() {
	acc := &account.Account{ID: "id-1", Email: "c@example.com"}
	s.mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO accounts`)).
		WillReturnError(&pq.Error{Code: uniqueViolation})

	err := s.repo.Save(context.Background(), acc)

	var existsErr *account.AlreadyExistsError
	s.Require().ErrorAs(err, &existsErr)
	s.Assert().Equal("c@example.com", existsErr.Email)
}

func (s *RepositoryUnitTestSuite) TestSave_OtherError() {
	boom := errors.New("connection reset")
	s.mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO accounts`)).WillReturnError(boom)

	err := s.repo.Save(context.Background(), &account.Account{ID: "id-1", Email: "c@example.com"})

	s.Assert().ErrorIs(err, boom)
}

func (s *RepositoryUnitTestSuite) TestGetByEmail_NormalizesLookup() {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
		AddRow("id-1", "C@example.com", []byte("hash"), created)
	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, password_hash, created_at FROM accounts WHERE lower(email) = $1`)).
		WithArgs("c@example.com").
		WillReturnRows(rows)

	acc, err := s.repo.GetByEmail(context.Background(), " C@Example.com ")

	s.Require().NoError(err)
	s.Assert().Equal("id-1", acc.ID)
	s.Assert().Equal("C@example.com", acc.Email)
	s.Assert().Equal([]byte("hash"), acc.PasswordHash)
	s.Assert().Equal(created, acc.CreatedAt)
}

func (s *RepositoryUnitTestSuite) TestGetByEmail_NotFound() {
	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email`)).WillReturnError(sql.ErrNoRows)

	acc, err := s.repo.GetByEmail(context.Background(), "nobody@example.com")

	s.Assert().ErrorIs(err, account.ErrAccountNotFound)
	s.Assert().Nil(acc)
}

func (s *RepositoryUnitTestSuite) TestCount() {
	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM accounts`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := s.repo.Count(context.Background())

	s.Assert().NoError(err)
	s.Assert().Equal(3, count)
}

func (s *RepositoryUnitTestSuite) TestCreateTable() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS accounts`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectExec(regexp.QuoteMeta(`CREATE UNIQUE INDEX IF NOT EXISTS accounts_email_lower_key`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectCommit()

	s.Assert().NoError(s.repo.CreateTable(context.Background()))
}

func (s *RepositoryUnitTestSuite) TestCreateTable_RollsBackOnIndexFailure() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS accounts`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectExec(regexp.QuoteMeta(`CREATE UNIQUE INDEX`)).
		WillReturnError(errors.New("permission denied"))
	s.mock.ExpectRollback()

	s.Assert().EqualError(s.repo.CreateTable(context.Background()), "permission denied")
}

func TestRepositoryUnitTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryUnitTestSuite))
}

func TestRepository_NotConnected(t *testing.T) {
	repo := NewRepository(&stubConnector{})
	ctx := context.Background()

	if err := repo.Save(ctx, &account.Account{}); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Save: expected ErrNotConnected, got %v", err)
	}
	if _, err := repo.GetByEmail(ctx, "c@example.com"); !errors.Is(err, ErrNotConnected) {
		t.Errorf("GetByEmail: expected ErrNotConnected, got %v", err)
	}
	if _, err := repo.Count(ctx); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Count: expected ErrNotConnected, got %v", err)
	}
	if err := repo.CreateTable(ctx); !errors.Is(err, ErrNotConnected) {
		t.Errorf("CreateTable: expected ErrNotConnected, got %v", err)
	}
}
