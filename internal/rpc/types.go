package rpc

import (
	"encoding/json"

	"github.com/btcsuite/btcd/btcutil"
)

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type response struct {
	Result json.RawMessage `json:"result"`
	Error  *Error          `json:"error"`
	ID     uint64          `json:"id"`
}

// BlockchainInfo is the relevant part of getblockchaininfo.
type BlockchainInfo struct {
	Chain                string `json:"chain"`
	Blocks               int64  `json:"blocks"`
	BestBlockHash        string `json:"bestblockhash"`
	InitialBlockDownload bool   `json:"initialblockdownload"`
}

// UTXO is one unspent output found by scantxoutset.
type UTXO struct {
	TxID         string  `json:"txid"`
	Vout         uint32  `json:"vout"`
	ScriptPubKey string  `json:"scriptPubKey"`
	Amount       float64 `json:"amount"`
	Height       int64   `json:"height"`
}

// Value returns the output value in subunits.
func (u UTXO) Value() (btcutil.Amount, error) {
	return btcutil.NewAmount(u.Amount)
}

// ScanResult is the result of scantxoutset.
type ScanResult struct {
	Success     bool    `json:"success"`
	Height      int64   `json:"height"`
	Unspents    []UTXO  `json:"unspents"`
	TotalAmount float64 `json:"total_amount"`
}

// Total returns the sum of all unspent outputs in subunits.
func (s ScanResult) Total() (btcutil.Amount, error) {
	return btcutil.NewAmount(s.TotalAmount)
}

type feeEstimate struct {
	FeeRate float64  `json:"feerate"`
	Errors  []string `json:"errors"`
	Blocks  int      `json:"blocks"`
}

// chainNames maps network ids to the chain reported by getblockchaininfo.
var chainNames = map[string]string{
	"mainnet":  "main",
	"testnet3": "test",
	"regtest":  "regtest",
	"signet":   "signet",
	"simnet":   "simnet",
}
