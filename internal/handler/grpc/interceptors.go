package grpc

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
)

const (
	authorizationKey = "authorization"
	traceIDKey       = "x-trace-id"
	errorCodeKey     = "error-code"
)

// publicMethods are served without a bearer token.
var publicMethods = map[string]struct{}{
	MethodVersion: {},
}

var traceIDs = utils.NewUUIDGenerator()

// traceInterceptor attaches a request logger carrying trace_id and logs the
// outcome of every call. A trace id sent by the client is kept.
func (h *Handler) traceInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := firstValue(ctx, traceIDKey)
	if traceID == "" {
		traceID = traceIDs.Generate()
	}
	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = l.WithContext(ctx)

	start := time.Now()
	resp, err := handler(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Dur("duration", time.Since(start)).
		Bool("ok", err == nil).
		Msg("gRPC call")

	return resp, err
}

// errorInterceptor turns service errors into gRPC status errors. The error
// code is sent in the error-code trailer.
func (h *Handler) errorInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	resp, err := handler(ctx, req)
	if err == nil {
		return resp, nil
	}

	st, code := statusFromError(err)

	log := logger.FromContext(ctx)
	if isServerFault(st.Code()) {
		log.Err(err).Str("code", code).Msg("command failed")
	} else {
		log.Info().Err(err).Str("code", code).Msg("command rejected")
	}

	_ = grpc.SetTrailer(ctx, metadata.Pairs(errorCodeKey, code))
	return nil, st.Err()
}

// authInterceptor resolves the bearer token in the authorization metadata
// to the wallet owner identifier.
func (h *Handler) authInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if _, ok := publicMethods[info.FullMethod]; ok {
		return handler(ctx, req)
	}

	log := logger.FromContext(ctx)

	header := firstValue(ctx, authorizationKey)
	if header == "" {
		log.Err(ErrEmptyAuthorization).Send()
		return nil, service.ErrTokenIsExpiredOrInvalid
	}

	tokenString, err := utils.ParseBearerToken(header)
	if err != nil {
		log.Err(err).Send()
		return nil, service.ErrTokenIsExpiredOrInvalid
	}

	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		log.Err(err).Msg("error occurred during parsing token")
		return nil, service.ErrTokenIsExpiredOrInvalid
	}

	ctx = utils.WithIdentifier(ctx, token.Identifier)
	ctx = log.ForIdentifier(token.Identifier).WithContext(ctx)

	return handler(ctx, req)
}

func firstValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}
