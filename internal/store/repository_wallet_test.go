package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestRepo(t *testing.T, dialect string) (*walletRepository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	var classifier ErrorClassificator = NewPostgresErrorClassifier()
	if dialect == DialectSQLite {
		classifier = NewSQLiteErrorClassifier()
	}
	db := newDB(conn, dialect, classifier, logger.Nop())
	db.retryDelays = []time.Duration{time.Millisecond, time.Millisecond}

	repo := NewWalletRepository(db, logger.Nop()).(*walletRepository)
	repo.now = func() time.Time { return fixedNow }
	return repo, mock
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func sampleWallet() models.EncryptedWallet {
	return models.EncryptedWallet{
		Identifier:     "user-1",
		Network:        "regtest",
		ReceiveAddress: "bcrt1qexample",
		Salt:           []byte{1, 2, 3},
		Ciphertext:     []byte{4, 5, 6},
		Birthday:       fixedNow.Add(-time.Hour),
	}
}

func TestExists(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		want    bool
		wantErr error
	}{
		{
			name: "present",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM wallets WHERE identifier = \$1`).
					WithArgs("user-1").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			},
			want: true,
		},
		{
			name: "absent",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT COUNT`).
					WithArgs("user-1").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
			},
			want: false,
		},
		{
			name: "db failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT COUNT`).
					WithArgs("user-1").
					WillReturnError(errors.New("network down"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRepo(t, DialectPostgres)
			tt.setup(mock)

			got, err := repo.Exists(testContext(), "user-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock := newTestRepo(t, DialectPostgres)
	w := sampleWallet()

	mock.ExpectExec(`INSERT INTO wallets \(identifier,network,receive_address,salt,ciphertext,birthday,created_at,updated_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8\)`).
		WithArgs(w.Identifier, w.Network, w.ReceiveAddress, w.Salt, w.Ciphertext, w.Birthday, fixedNow, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(testContext(), w))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock := newTestRepo(t, DialectPostgres)

	mock.ExpectExec(`INSERT INTO wallets`).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.Create(testContext(), sampleWallet())
	assert.ErrorIs(t, err, ErrWalletAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_NoRowsAffected(t *testing.T) {
	repo, mock := newTestRepo(t, DialectPostgres)

	mock.ExpectExec(`INSERT INTO wallets`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Create(testContext(), sampleWallet()), ErrWalletNotSaved)
}

// TestCreate_RetriesTransientErrors verifies that a serialization failure is
// retried and the following success is returned.
func TestCreate_RetriesTransientErrors(t *testing.T) {
	repo, mock := newTestRepo(t, DialectPostgres)

	mock.ExpectExec(`INSERT INTO wallets`).
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectExec(`INSERT INTO wallets`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(testContext(), sampleWallet()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_GivesUpAfterRetries(t *testing.T) {
	repo, mock := newTestRepo(t, DialectPostgres)

	for i := 0; i < 3; i++ {
		mock.ExpectExec(`INSERT INTO wallets`).
			WillReturnError(pgError(pgerrcode.DeadlockDetected))
	}

	err := repo.Create(testContext(), sampleWallet())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_UsesUpsertWithQuestionPlaceholders(t *testing.T) {
	repo, mock := newTestRepo(t, DialectSQLite)
	w := sampleWallet()

	mock.ExpectExec(`INSERT INTO wallets \(.+\) VALUES \(\?,\?,\?,\?,\?,\?,\?,\?\) ON CONFLICT \(identifier\) DO UPDATE SET`).
		WithArgs(w.Identifier, w.Network, w.ReceiveAddress, w.Salt, w.Ciphertext, w.Birthday, fixedNow, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(testContext(), w))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoad(t *testing.T) {
	columns := []string{"identifier", "network", "receive_address", "salt", "ciphertext", "birthday", "created_at", "updated_at"}

	t.Run("found", func(t *testing.T) {
		repo, mock := newTestRepo(t, DialectPostgres)
		w := sampleWallet()

		mock.ExpectQuery(`SELECT identifier, network, receive_address, salt, ciphertext, birthday, created_at, updated_at FROM wallets WHERE identifier = \$1`).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(w.Identifier, w.Network, w.ReceiveAddress, w.Salt, w.Ciphertext, w.Birthday, fixedNow, fixedNow))

		got, err := repo.Load(testContext(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, w.ReceiveAddress, got.ReceiveAddress)
		assert.Equal(t, w.Ciphertext, got.Ciphertext)
		assert.Equal(t, w.Salt, got.Salt)
		assert.True(t, w.Birthday.Equal(got.Birthday))
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestRepo(t, DialectPostgres)
		mock.ExpectQuery(`SELECT .+ FROM wallets`).
			WithArgs("user-1").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Load(testContext(), "user-1")
		assert.ErrorIs(t, err, ErrWalletNotFound)
	})

	t.Run("scan failure", func(t *testing.T) {
		repo, mock := newTestRepo(t, DialectPostgres)
		mock.ExpectQuery(`SELECT .+ FROM wallets`).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{"identifier"}).AddRow("user-1"))

		_, err := repo.Load(testContext(), "user-1")
		assert.ErrorIs(t, err, ErrScanningRow)
	})
}

func TestDelete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock := newTestRepo(t, DialectPostgres)
		mock.ExpectExec(`DELETE FROM wallets WHERE identifier = \$1`).
			WithArgs("user-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(testContext(), "user-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestRepo(t, DialectPostgres)
		mock.ExpectExec(`DELETE FROM wallets`).
			WithArgs("user-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(testContext(), "user-1"), ErrWalletNotFound)
	})
}

// TestSQLite_RoundTrip exercises the repository against a real in-memory
// sqlite database with migrations applied.
func TestSQLite_RoundTrip(t *testing.T) {
	ctx := testContext()

	db, err := NewConnect(ctx, config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.Equal(t, DialectSQLite, db.Dialect())
	require.NoError(t, db.Migrate())

	repo := NewWalletRepository(db, logger.Nop())
	w := sampleWallet()

	ok, err := repo.Exists(ctx, w.Identifier)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Create(ctx, w))
	assert.ErrorIs(t, repo.Create(ctx, w), ErrWalletAlreadyExists)

	ok, err = repo.Exists(ctx, w.Identifier)
	require.NoError(t, err)
	assert.True(t, ok)

	w.ReceiveAddress = "bcrt1qrestored"
	w.Ciphertext = []byte{9, 9}
	require.NoError(t, repo.Save(ctx, w))

	loaded, err := repo.Load(ctx, w.Identifier)
	require.NoError(t, err)
	assert.Equal(t, "bcrt1qrestored", loaded.ReceiveAddress)
	assert.Equal(t, []byte{9, 9}, loaded.Ciphertext)

	require.NoError(t, repo.Delete(ctx, w.Identifier))
	_, err = repo.Load(ctx, w.Identifier)
	assert.ErrorIs(t, err, ErrWalletNotFound)
}

func TestNewConnect_EmptyDSN(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestNewDB_PlaceholderByDialect(t *testing.T) {
	tests := []struct {
		dialect string
		want    string
	}{
		{dialect: DialectPostgres, want: "SELECT identifier FROM wallets WHERE identifier = $1"},
		{dialect: DialectSQLite, want: "SELECT identifier FROM wallets WHERE identifier = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			db := newDB(nil, tt.dialect, nil, logger.Nop())

			query, args, err := db.builder.Select("identifier").From("wallets").Where("identifier = ?", "alice").ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{"alice"}, args)
		})
	}
}
