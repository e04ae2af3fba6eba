package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// walletRepository is the SQL implementation of [WalletRepository] over the
// "wallets" table. Queries are built with squirrel in the dialect of db.
type walletRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewWalletRepository constructs a [WalletRepository] backed by db.
func NewWalletRepository(db *DB, logger *logger.Logger) WalletRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating wallet repository")
	return &walletRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Exists implements [WalletRepository].
func (r *walletRepository) Exists(ctx context.Context, identifier string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildExistsQuery(r.db.builder, identifier)
	if err != nil {
		return false, wrapf(ErrBuildingSQLQuery, err)
	}

	var count int
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	})
	if err != nil {
		log.Err(err).Str("func", "walletRepository.Exists").Msg("failed to check wallet existence")
		return false, wrapf(ErrExecutingQuery, err)
	}

	return count > 0, nil
}

// Create implements [WalletRepository].
func (r *walletRepository) Create(ctx context.Context, wallet models.EncryptedWallet) error {
	log := logger.FromContext(ctx)

	now := r.now().UTC()
	wallet.CreatedAt, wallet.UpdatedAt = now, now

	query, args, err := buildInsertQuery(r.db.builder, wallet)
	if err != nil {
		return wrapf(ErrBuildingSQLQuery, err)
	}

	var res sql.Result
	err = r.db.withRetry(ctx, func() error {
		var execErr error
		res, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if r.db.isUniqueViolation(err) {
			return ErrWalletAlreadyExists
		}
		log.Err(err).Str("func", "walletRepository.Create").Msg("failed to insert wallet")
		return wrapf(ErrExecutingStatement, err)
	}

	return checkAffected(res)
}

// Save implements [WalletRepository].
func (r *walletRepository) Save(ctx context.Context, wallet models.EncryptedWallet) error {
	log := logger.FromContext(ctx)

	now := r.now().UTC()
	if wallet.CreatedAt.IsZero() {
		wallet.CreatedAt = now
	}
	wallet.UpdatedAt = now

	query, args, err := buildUpsertQuery(r.db.builder, wallet)
	if err != nil {
		return wrapf(ErrBuildingSQLQuery, err)
	}

	var res sql.Result
	err = r.db.withRetry(ctx, func() error {
		var execErr error
		res, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "walletRepository.Save").Msg("failed to upsert wallet")
		return wrapf(ErrExecutingStatement, err)
	}

	return checkAffected(res)
}

// Load implements [WalletRepository].
func (r *walletRepository) Load(ctx context.Context, identifier string) (models.EncryptedWallet, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectQuery(r.db.builder, identifier)
	if err != nil {
		return models.EncryptedWallet{}, wrapf(ErrBuildingSQLQuery, err)
	}

	var w models.EncryptedWallet
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(
			&w.Identifier,
			&w.Network,
			&w.ReceiveAddress,
			&w.Salt,
			&w.Ciphertext,
			&w.Birthday,
			&w.CreatedAt,
			&w.UpdatedAt,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.EncryptedWallet{}, ErrWalletNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "walletRepository.Load").Msg("failed to load wallet")
		return models.EncryptedWallet{}, wrapf(ErrScanningRow, err)
	}

	return w, nil
}

// Delete implements [WalletRepository].
func (r *walletRepository) Delete(ctx context.Context, identifier string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuery(r.db.builder, identifier)
	if err != nil {
		return wrapf(ErrBuildingSQLQuery, err)
	}

	var res sql.Result
	err = r.db.withRetry(ctx, func() error {
		var execErr error
		res, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "walletRepository.Delete").Msg("failed to delete wallet")
		return wrapf(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return wrapf(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrWalletNotFound
	}

	return nil
}

func checkAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return wrapf(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrWalletNotSaved
	}
	return nil
}
