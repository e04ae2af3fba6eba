// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

const walletsTable = "wallets"

var walletColumns = []string{
	"identifier",
	"network",
	"receive_address",
	"salt",
	"ciphertext",
	"birthday",
	"created_at",
	"updated_at",
}

// upsertSuffix works for PostgreSQL and SQLite >= 3.24. created_at of the
// first row is kept.
const upsertSuffix = `ON CONFLICT (identifier) DO UPDATE SET ` +
	`network = excluded.network, ` +
	`receive_address = excluded.receive_address, ` +
	`salt = excluded.salt, ` +
	`ciphertext = excluded.ciphertext, ` +
	`birthday = excluded.birthday, ` +
	`updated_at = excluded.updated_at`

func buildExistsQuery(b sq.StatementBuilderType, identifier string) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(walletsTable).
		Where(sq.Eq{"identifier": identifier}).
		ToSql()
}

func buildInsertQuery(b sq.StatementBuilderType, w models.EncryptedWallet) (string, []any, error) {
	return b.Insert(walletsTable).
		Columns(walletColumns...).
		Values(walletValues(w)...).
		ToSql()
}

func buildUpsertQuery(b sq.StatementBuilderType, w models.EncryptedWallet) (string, []any, error) {
	return b.Insert(walletsTable).
		Columns(walletColumns...).
		Values(walletValues(w)...).
		Suffix(upsertSuffix).
		ToSql()
}

func buildSelectQuery(b sq.StatementBuilderType, identifier string) (string, []any, error) {
	return b.Select(walletColumns...).
		From(walletsTable).
		Where(sq.Eq{"identifier": identifier}).
		ToSql()
}

func buildDeleteQuery(b sq.StatementBuilderType, identifier string) (string, []any, error) {
	return b.Delete(walletsTable).
		Where(sq.Eq{"identifier": identifier}).
		ToSql()
}

func walletValues(w models.EncryptedWallet) []any {
	return []any{
		w.Identifier,
		w.Network,
		w.ReceiveAddress,
		w.Salt,
		w.Ciphertext,
		w.Birthday.UTC(),
		w.CreatedAt.UTC(),
		w.UpdatedAt.UTC(),
	}
}
