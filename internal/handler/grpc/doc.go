// Package grpc serves the wallet command API over gRPC.
//
// The service is wallet.v1.Wallet. Messages are the JSON types of package
// models carried by a JSON codec, so no generated protobuf code is needed.
// The bearer token travels in the "authorization" metadata key; failed
// commands carry their error code in the "error-code" trailer.
package grpc
