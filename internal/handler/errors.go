package handler

import "errors"

// errNoHandlersAreCreated means neither an HTTP nor a gRPC listen address
// is configured. The server refuses to start without a transport.
var errNoHandlersAreCreated = errors.New("no handlers are created")
