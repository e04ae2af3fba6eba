package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
)

// Client is a JSON-RPC client with node failover. It implements
// [NodeClient].
type Client struct {
	http     *utils.HTTPClient
	resolver *Resolver
	logger   *logger.Logger
	ids      atomic.Uint64
}

// NewClient builds a client for the configured network.
func NewClient(cfg config.Network, resolver *Resolver, log *logger.Logger) *Client {
	c := utils.NewHTTPClient(cfg.Timeout)
	if cfg.RPCUser != "" || cfg.RPCPassword != "" {
		c.SetBasicAuth(cfg.RPCUser, cfg.RPCPassword)
	}

	return &Client{
		http:     c,
		resolver: resolver,
		logger:   log,
	}
}

// Resolver returns the resolver the client walks.
func (c *Client) Resolver() *Resolver {
	return c.resolver
}

// Connect verifies that a node is reachable and serves networkID. A
// failure here is fatal for the server.
func (c *Client) Connect(ctx context.Context, networkID string) (BlockchainInfo, error) {
	info, err := c.BlockchainInfo(ctx)
	if err != nil {
		return BlockchainInfo{}, err
	}

	if want, ok := chainNames[networkID]; !ok || info.Chain != want {
		return BlockchainInfo{}, fmt.Errorf("%w: node serves %q, configured %q", ErrNetworkMismatch, info.Chain, networkID)
	}

	c.logger.Info().
		Str("chain", info.Chain).
		Int64("blocks", info.Blocks).
		Bool("initial_block_download", info.InitialBlockDownload).
		Msg("connected to node")

	return info, nil
}

// BlockchainInfo implements [NodeClient].
func (c *Client) BlockchainInfo(ctx context.Context) (BlockchainInfo, error) {
	var info BlockchainInfo
	if err := c.call(ctx, "getblockchaininfo", nil, &info); err != nil {
		return BlockchainInfo{}, err
	}
	return info, nil
}

// ScanUnspent implements [NodeClient].
func (c *Client) ScanUnspent(ctx context.Context, address string) (ScanResult, error) {
	var res ScanResult
	params := []any{"start", []string{"addr(" + address + ")"}}
	if err := c.call(ctx, "scantxoutset", params, &res); err != nil {
		return ScanResult{}, err
	}
	if !res.Success {
		return ScanResult{}, fmt.Errorf("%w: scantxoutset did not complete", ErrMalformedResponse)
	}
	return res, nil
}

// EstimateFeeRate implements [NodeClient]. The node reports coins per
// kilo-vbyte; the result is subunits per vbyte, at least 1.
func (c *Client) EstimateFeeRate(ctx context.Context, targetBlocks int) (int64, error) {
	var est feeEstimate
	if err := c.call(ctx, "estimatesmartfee", []any{targetBlocks}, &est); err != nil {
		return 0, err
	}
	if est.FeeRate <= 0 {
		return 0, ErrFeeEstimateUnavailable
	}

	perKvB, err := btcutil.NewAmount(est.FeeRate)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return max(int64(perKvB)/1000, 1), nil
}

// SendRawTransaction implements [NodeClient].
func (c *Client) SendRawTransaction(ctx context.Context, rawTx string) (string, error) {
	var txid string
	if err := c.call(ctx, "sendrawtransaction", []any{rawTx}, &txid); err != nil {
		return "", err
	}
	return txid, nil
}

// call tries each candidate until one answers. Node-reported errors stop
// the walk.
func (c *Client) call(ctx context.Context, method string, params []any, out any) error {
	candidates := c.resolver.Candidates()
	if len(candidates) == 0 {
		return ErrNoNodes
	}
	if params == nil {
		params = []any{}
	}

	var errs []error
	for _, url := range candidates {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := c.callNode(ctx, url, method, params, out)
		if err == nil {
			c.resolver.MarkHealthy(url)
			return nil
		}

		var rpcErr *Error
		if errors.As(err, &rpcErr) || errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrMalformedResponse) {
			return err
		}

		c.logger.Warn().Err(err).Str("method", method).Str("node", url).Msg("node request failed")
		errs = append(errs, err)
	}

	return fmt.Errorf("%w: %w", ErrNodeUnreachable, errors.Join(errs...))
}

func (c *Client) callNode(ctx context.Context, url, method string, params []any, out any) error {
	started := time.Now()

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(request{
			JSONRPC: "1.0",
			ID:      c.ids.Add(1),
			Method:  method,
			Params:  params,
		}).
		Post(url)
	if err != nil {
		return fmt.Errorf("%s request: %w", method, err)
	}

	c.logger.Debug().
		Str("method", method).
		Int("status", resp.StatusCode()).
		Dur("took", time.Since(started)).
		Msg("rpc call")

	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		return ErrUnauthorized
	}

	var body response
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		if resp.StatusCode() >= http.StatusInternalServerError {
			return fmt.Errorf("%s: node returned %d", method, resp.StatusCode())
		}
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if body.Error != nil {
		return body.Error
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body.Result, out); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}
