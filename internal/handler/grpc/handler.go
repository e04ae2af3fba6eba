package grpc

import (
	"google.golang.org/grpc"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
)

// Handler is the root gRPC transport handler. It implements [WalletServer]
// on top of the service layer.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

var _ WalletServer = (*Handler)(nil)

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// ServerOptions returns the codec and the interceptor chain the server must
// be created with.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ForceServerCodec(Codec{}),
		grpc.ChainUnaryInterceptor(
			h.traceInterceptor,
			h.errorInterceptor,
			h.authInterceptor,
		),
	}
}

// Register attaches wallet.v1.Wallet to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	s.RegisterService(&WalletServiceDesc, h)
}
