package rpc

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/rpc_mock.go -package=mock

// NodeClient is the subset of the node API the wallet library needs.
type NodeClient interface {
	// BlockchainInfo returns the node's view of the chain.
	BlockchainInfo(ctx context.Context) (BlockchainInfo, error)

	// ScanUnspent returns the unspent outputs paying to address.
	ScanUnspent(ctx context.Context, address string) (ScanResult, error)

	// EstimateFeeRate returns a fee rate in subunits per virtual byte for
	// confirmation within targetBlocks.
	EstimateFeeRate(ctx context.Context, targetBlocks int) (int64, error)

	// SendRawTransaction broadcasts a hex-encoded transaction and returns
	// its id.
	SendRawTransaction(ctx context.Context, rawTx string) (string, error)
}
