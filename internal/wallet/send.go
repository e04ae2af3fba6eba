package wallet

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/MKhiriev/go-wallet-keeper/internal/secret"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// Send pays outputs from the wallet, signing with the seed unlocked by sec.
//
// Cancelling ctx stops the payment before broadcast. A transaction that was
// already handed to the node stays broadcast. Pipeline failures are
// returned as *TransactionError; a wrong secret as ErrDecryptionFailed.
func (w *Wallet) Send(ctx context.Context, outputs []models.Output, sec *secret.Secret, progress ProgressFunc) (models.TransactionSummary, []string, error) {
	if w.Closed() {
		return models.TransactionSummary{}, nil, ErrWalletClosed
	}
	if len(outputs) == 0 {
		return models.TransactionSummary{}, nil, ErrNoOutputs
	}

	scripts := make([][]byte, 0, len(outputs))
	var target int64
	for _, out := range outputs {
		if out.Amount < dustLimit {
			return models.TransactionSummary{}, nil, fmt.Errorf("%w: %d", ErrDustOutput, out.Amount)
		}
		addr, err := DecodeAddress(out.Address, w.params)
		if err != nil {
			return models.TransactionSummary{}, nil, err
		}
		script, err := txscript.PayToAddrScript(addr)
		if err != nil {
			return models.TransactionSummary{}, nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
		}
		scripts = append(scripts, script)
		target += out.Amount
	}

	entropy, err := w.lib.unseal(w.material, sec)
	if err != nil {
		return models.TransactionSummary{}, nil, err
	}
	priv, err := receivePrivKey(entropy, w.params)
	secret.Wipe(entropy)
	if err != nil {
		return models.TransactionSummary{}, nil, txError("derive key", err)
	}
	defer priv.Zero()

	dispatcher := newProgressDispatcher(progress)
	defer dispatcher.close()

	dispatcher.emit(models.SendStageSelectingInputs, "")

	coins, err := w.unspent(ctx)
	if err != nil {
		return models.TransactionSummary{}, nil, txError("scan", err)
	}

	feeRate := w.feeRate(ctx)
	sel, err := selectCoins(coins, target, feeRate, scripts, w.pkScript)
	if err != nil {
		return models.TransactionSummary{}, nil, txError("select inputs", err)
	}

	dispatcher.emit(models.SendStageBuilding, "")

	tx := wire.NewMsgTx(wire.TxVersion)
	fetcher := txscript.NewMultiPrevOutFetcher(nil)
	for _, c := range sel.coins {
		op := c.outpoint
		tx.AddTxIn(wire.NewTxIn(&op, nil, nil))
		fetcher.AddPrevOut(op, wire.NewTxOut(c.value, w.pkScript))
	}
	for i, out := range outputs {
		tx.AddTxOut(wire.NewTxOut(out.Amount, scripts[i]))
	}
	if sel.change > 0 {
		tx.AddTxOut(wire.NewTxOut(sel.change, w.pkScript))
	}

	if err := w.sign(tx, sel.coins, fetcher, priv); err != nil {
		return models.TransactionSummary{}, nil, txError("sign", err)
	}
	dispatcher.emit(models.SendStageSigned, tx.TxHash().String())

	var buf bytes.Buffer
	buf.Grow(tx.SerializeSize())
	if err := tx.Serialize(&buf); err != nil {
		return models.TransactionSummary{}, nil, txError("serialize", err)
	}

	if err := ctx.Err(); err != nil {
		return models.TransactionSummary{}, nil, txError("submit", err)
	}

	txid, err := w.node.SendRawTransaction(ctx, hex.EncodeToString(buf.Bytes()))
	if err != nil {
		return models.TransactionSummary{}, nil, txError("submit", err)
	}
	dispatcher.emit(models.SendStageSubmitted, txid)

	w.logger.Info().
		Str("txid", txid).
		Int64("amount", target).
		Int64("fee", sel.fee).
		Int("inputs", len(sel.coins)).
		Msg("transaction submitted")

	summary := models.TransactionSummary{
		Recipient: outputs[0].Address,
		Amount:    target,
		Fee:       sel.fee,
		Change:    sel.change,
		Inputs:    len(sel.coins),
		Network:   w.Network(),
	}
	return summary, []string{txid}, nil
}

func (w *Wallet) unspent(ctx context.Context) ([]coin, error) {
	res, err := w.node.ScanUnspent(ctx, w.ReceiveAddress())
	if err != nil {
		return nil, err
	}

	coins := make([]coin, 0, len(res.Unspents))
	for _, u := range res.Unspents {
		hash, err := chainhash.NewHashFromStr(u.TxID)
		if err != nil {
			return nil, fmt.Errorf("utxo %s: %w", u.TxID, err)
		}
		value, err := u.Value()
		if err != nil {
			return nil, fmt.Errorf("utxo %s: %w", u.TxID, err)
		}
		coins = append(coins, coin{
			outpoint: *wire.NewOutPoint(hash, u.Vout),
			value:    int64(value),
		})
	}
	return coins, nil
}

// feeRate asks the node for an estimate and falls back to the configured
// rate.
func (w *Wallet) feeRate(ctx context.Context) int64 {
	fallback := w.lib.opts.FeeRate
	if w.lib.opts.ConfTarget <= 0 {
		return fallback
	}

	rate, err := w.node.EstimateFeeRate(ctx, w.lib.opts.ConfTarget)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			w.logger.Debug().Err(err).Int64("fallback", fallback).Msg("fee estimate unavailable")
		}
		return fallback
	}
	return rate
}

func (w *Wallet) sign(tx *wire.MsgTx, coins []coin, fetcher txscript.PrevOutputFetcher, priv *btcec.PrivateKey) error {
	sigHashes := txscript.NewTxSigHashes(tx, fetcher)
	for i, c := range coins {
		witness, err := txscript.WitnessSignature(
			tx, sigHashes, i, c.value, w.pkScript, txscript.SigHashAll, priv, true,
		)
		if err != nil {
			return fmt.Errorf("input %d: %w", i, err)
		}
		tx.TxIn[i].Witness = witness
	}
	return nil
}
