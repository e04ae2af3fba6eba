package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

const ServiceName = "wallet.v1.Wallet"

const (
	MethodCreate   = "/" + ServiceName + "/Create"
	MethodOpen     = "/" + ServiceName + "/Open"
	MethodRestore  = "/" + ServiceName + "/Restore"
	MethodClose    = "/" + ServiceName + "/Close"
	MethodDestroy  = "/" + ServiceName + "/Destroy"
	MethodSend     = "/" + ServiceName + "/Send"
	MethodStatus   = "/" + ServiceName + "/Status"
	MethodAccounts = "/" + ServiceName + "/Accounts"
	MethodVersion  = "/" + ServiceName + "/Version"
)

// Empty is the request of commands that take only the caller identity.
type Empty struct{}

// WalletServer is the server side of wallet.v1.Wallet.
type WalletServer interface {
	Create(context.Context, *models.CreateRequest) (*models.CreateResponse, error)
	Open(context.Context, *models.OpenRequest) (*models.OpenResponse, error)
	Restore(context.Context, *models.RestoreRequest) (*models.OpenResponse, error)
	Close(context.Context, *Empty) (*models.CloseResponse, error)
	Destroy(context.Context, *models.DestroyRequest) (*models.DestroyResponse, error)
	Send(context.Context, *models.SendRequest) (*models.SendResponse, error)
	Status(context.Context, *Empty) (*models.StatusResponse, error)
	Accounts(context.Context, *Empty) (*models.AccountsResponse, error)
	Version(context.Context, *Empty) (*models.VersionResponse, error)
}

// WalletServiceDesc describes wallet.v1.Wallet for grpc.Server.RegisterService.
var WalletServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*WalletServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Create", Handler: unary(MethodCreate, WalletServer.Create)},
		{MethodName: "Open", Handler: unary(MethodOpen, WalletServer.Open)},
		{MethodName: "Restore", Handler: unary(MethodRestore, WalletServer.Restore)},
		{MethodName: "Close", Handler: unary(MethodClose, WalletServer.Close)},
		{MethodName: "Destroy", Handler: unary(MethodDestroy, WalletServer.Destroy)},
		{MethodName: "Send", Handler: unary(MethodSend, WalletServer.Send)},
		{MethodName: "Status", Handler: unary(MethodStatus, WalletServer.Status)},
		{MethodName: "Accounts", Handler: unary(MethodAccounts, WalletServer.Accounts)},
		{MethodName: "Version", Handler: unary(MethodVersion, WalletServer.Version)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "wallet/v1/wallet.proto",
}

// unary adapts a typed server method to grpc.MethodHandler, running the
// server interceptor chain when one is installed.
func unary[Req, Resp any](fullMethod string, call func(WalletServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(WalletServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(WalletServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// WalletClient is the client side of wallet.v1.Wallet.
type WalletClient struct {
	cc grpc.ClientConnInterface
}

// NewWalletClient returns a client for conn. The connection must use
// [Codec], e.g. through grpc.WithDefaultCallOptions(grpc.ForceCodec(Codec{})).
func NewWalletClient(cc grpc.ClientConnInterface) *WalletClient {
	return &WalletClient{cc: cc}
}

func (c *WalletClient) Create(ctx context.Context, in *models.CreateRequest, opts ...grpc.CallOption) (*models.CreateResponse, error) {
	return invoke[models.CreateResponse](ctx, c.cc, MethodCreate, in, opts)
}

func (c *WalletClient) Open(ctx context.Context, in *models.OpenRequest, opts ...grpc.CallOption) (*models.OpenResponse, error) {
	return invoke[models.OpenResponse](ctx, c.cc, MethodOpen, in, opts)
}

func (c *WalletClient) Restore(ctx context.Context, in *models.RestoreRequest, opts ...grpc.CallOption) (*models.OpenResponse, error) {
	return invoke[models.OpenResponse](ctx, c.cc, MethodRestore, in, opts)
}

func (c *WalletClient) Close(ctx context.Context, opts ...grpc.CallOption) (*models.CloseResponse, error) {
	return invoke[models.CloseResponse](ctx, c.cc, MethodClose, &Empty{}, opts)
}

func (c *WalletClient) Destroy(ctx context.Context, in *models.DestroyRequest, opts ...grpc.CallOption) (*models.DestroyResponse, error) {
	return invoke[models.DestroyResponse](ctx, c.cc, MethodDestroy, in, opts)
}

func (c *WalletClient) Send(ctx context.Context, in *models.SendRequest, opts ...grpc.CallOption) (*models.SendResponse, error) {
	return invoke[models.SendResponse](ctx, c.cc, MethodSend, in, opts)
}

func (c *WalletClient) Status(ctx context.Context, opts ...grpc.CallOption) (*models.StatusResponse, error) {
	return invoke[models.StatusResponse](ctx, c.cc, MethodStatus, &Empty{}, opts)
}

func (c *WalletClient) Accounts(ctx context.Context, opts ...grpc.CallOption) (*models.AccountsResponse, error) {
	return invoke[models.AccountsResponse](ctx, c.cc, MethodAccounts, &Empty{}, opts)
}

func (c *WalletClient) Version(ctx context.Context, opts ...grpc.CallOption) (*models.VersionResponse, error) {
	return invoke[models.VersionResponse](ctx, c.cc, MethodVersion, &Empty{}, opts)
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
