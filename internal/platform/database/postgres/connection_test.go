package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
)

type stubConfig struct {
	dsn string
}

func (c *stubConfig) DSN() string { return c.dsn }

func (c *stubConfig) PoolSettings() Pool {
	return Pool{MaxOpenConns: 10, MaxIdleConns: 2, ConnMaxLifetime: time.Minute, ConnMaxIdleTime: 30 * time.Second}
}

func (c *stubConfig) PingDeadline() time.Duration { return 0 }

type PostgresConnectionTestSuite struct {
	suite.Suite
	mock sqlmock.Sqlmock
	db   *DB
}

func (s *PostgresConnectionTestSuite) SetupTest() {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	s.Require().NoError(err)
	s.mock = mock
	s.db = &DB{DB: sqlDB}
}

func (s *PostgresConnectionTestSuite) TearDownTest() {
	s.mock.ExpectClose()
	s.Require().NoError(s.db.Close())
	s.Assert().NoError(s.mock.ExpectationsWereMet())
}

func (s *PostgresConnectionTestSuite) TestNew_AppliesPoolSettings() {
	cfg := &stubConfig{dsn: "host=localhost port=5432 user=postgres dbname=formvalidator sslmode=disable"}

	db, err := New(cfg)

	s.Require().NoError(err)
	s.Equal(defaultPingTimeout, db.pingTimeout)
	s.Equal(10, db.Stats().MaxOpenConnections)
	s.Require().NoError(db.Close())
}

func (s *PostgresConnectionTestSuite) TestPing() {
	s.mock.ExpectPing()
	s.NoError(s.db.Ping(context.Background()))

	s.mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	s.EqualError(s.db.Ping(context.Background()), "connection refused")
}

func (s *PostgresConnectionTestSuite) TestPing_CancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.Error(s.db.Ping(ctx))
}

func (s *PostgresConnectionTestSuite) TestInTx_Commit() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec("CREATE TABLE").WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectCommit()

	err := s.db.InTx(context.Background(), func(tx *sql.Tx) error {
		_, err := tx.Exec("CREATE TABLE accounts (id UUID)")
		return err
	})

	s.NoError(err)
}

func (s *PostgresConnectionTestSuite) TestInTx_RollbackOnError() {
	boom := errors.New("boom")
	s.mock.ExpectBegin()
	s.mock.ExpectRollback()

	err := s.db.InTx(context.Background(), func(*sql.Tx) error { return boom })

	s.ErrorIs(err, boom)
}

func (s *PostgresConnectionTestSuite) TestInTx_RollbackFailureIsJoined() {
	boom := errors.New("boom")
	s.mock.ExpectBegin()
	s.mock.ExpectRollback().WillReturnError(errors.New("rollback failed"))

	err := s.db.InTx(context.Background(), func(*sql.Tx) error { return boom })

	s.ErrorIs(err, boom)
	s.ErrorContains(err, "rollback failed")
}

func (s *PostgresConnectionTestSuite) TestInTx_BeginAndCommitFailures() {
	s.mock.ExpectBegin().WillReturnError(errors.New("no connection"))
	s.ErrorContains(s.db.InTx(context.Background(), func(*sql.Tx) error { return nil }), "begin transaction")

	s.mock.ExpectBegin()
	s.mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))
	s.ErrorContains(s.db.InTx(context.Background(), func(*sql.Tx) error { return nil }), "commit transaction")
}

func TestPostgresConnectionTestSuite(t *testing.T) {
	suite.Run(t, new(PostgresConnectionTestSuite))
}
