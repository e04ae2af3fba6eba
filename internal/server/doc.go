// Package server runs the transport servers of the wallet keeper.
//
// [Server.Run] starts every configured transport, waits for a termination
// signal or a transport failure, and shuts the transports down within
// [ShutdownTimeout].
package server
