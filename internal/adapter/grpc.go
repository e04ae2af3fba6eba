package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	walletgrpc "github.com/MKhiriev/go-wallet-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

const errorCodeTrailer = "error-code"

type grpcServerAdapter struct {
	conn    *grpc.ClientConn
	client  *walletgrpc.WalletClient
	timeout time.Duration

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewGRPCServerAdapter dials cfg.GRPCAddress lazily and returns the gRPC
// implementation of [ServerAdapter].
func NewGRPCServerAdapter(cfg config.ClientAdapter, logger *logger.Logger, opts ...grpc.DialOption) (ServerAdapter, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(walletgrpc.Codec{})),
	}, opts...)

	conn, err := grpc.NewClient(cfg.GRPCAddress, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter grpc address: %w", err)
	}

	a := &grpcServerAdapter{
		conn:    conn,
		client:  walletgrpc.NewWalletClient(conn),
		timeout: cfg.RequestTimeout,
		logger:  logger,
	}
	a.SetToken(cfg.Token)
	return a, nil
}

func (g *grpcServerAdapter) SetToken(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.token = strings.TrimSpace(token)
}

func (g *grpcServerAdapter) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

func (g *grpcServerAdapter) Create(ctx context.Context, req models.CreateRequest) (models.CreateResponse, error) {
	return call(ctx, g, func(ctx context.Context, opts ...grpc.CallOption) (*models.CreateResponse, error) {
		return g.client.Create(ctx, &req, opts...)
	})
}

func (g *grpcServerAdapter) Open(ctx context.Context, req models.OpenRequest) (models.OpenResponse, error) {
	return call(ctx, g, func(ctx context.Context, opts ...grpc.CallOption) (*models.OpenResponse, error) {
		return g.client.Open(ctx, &req, opts...)
	})
}

func (g *grpcServerAdapter) Restore(ctx context.Context, req models.RestoreRequest) (models.OpenResponse, error) {
	return call(ctx, g, func(ctx context.Context, opts ...grpc.CallOption) (*models.OpenResponse, error) {
		return g.client.Restore(ctx, &req, opts...)
	})
}

func (g *grpcServerAdapter) Close(ctx context.Context) (models.CloseResponse, error) {
	return call(ctx, g, g.client.Close)
}

func (g *grpcServerAdapter) Destroy(ctx context.Context, req models.DestroyRequest) (models.DestroyResponse, error) {
	return call(ctx, g, func(ctx context.Context, opts ...grpc.CallOption) (*models.DestroyResponse, error) {
		return g.client.Destroy(ctx, &req, opts...)
	})
}

func (g *grpcServerAdapter) Send(ctx context.Context, req models.SendRequest) (models.SendResponse, error) {
	return call(ctx, g, func(ctx context.Context, opts ...grpc.CallOption) (*models.SendResponse, error) {
		return g.client.Send(ctx, &req, opts...)
	})
}

func (g *grpcServerAdapter) Status(ctx context.Context) (models.StatusResponse, error) {
	return call(ctx, g, g.client.Status)
}

func (g *grpcServerAdapter) Accounts(ctx context.Context) (models.AccountsResponse, error) {
	return call(ctx, g, g.client.Accounts)
}

func (g *grpcServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	return call(ctx, g, g.client.Version)
}

func (g *grpcServerAdapter) Shutdown() error {
	return g.conn.Close()
}

// call attaches the bearer token and the request timeout and maps a failed
// status with its error-code trailer.
func call[T any](ctx context.Context, g *grpcServerAdapter, rpc func(context.Context, ...grpc.CallOption) (*T, error)) (T, error) {
	var zero T

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	if token := g.Token(); token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
	}

	var trailer metadata.MD
	resp, err := rpc(ctx, grpc.Trailer(&trailer))
	if err != nil {
		return zero, mapGRPCError(err, trailer)
	}
	return *resp, nil
}
