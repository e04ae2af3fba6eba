package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-wallet-keeper/internal/app"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// mapHTTPError returns nil for 2xx responses and a *CommandError otherwise.
// Bodies that are not an ErrorResponse are reported by status only.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	cmdErr := &CommandError{Status: resp.StatusCode()}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Code != "" {
		cmdErr.Code = body.Code
		cmdErr.Message = body.Message
		return cmdErr
	}

	cmdErr.Message = strings.TrimSpace(string(resp.Body()))
	if cmdErr.Message == "" {
		cmdErr.Message = http.StatusText(resp.StatusCode())
	}
	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		cmdErr.Code = app.CodeUnauthorized
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		cmdErr.Code = app.CodeNodeUnavailable
	}
	return cmdErr
}

// mapGRPCError converts a gRPC status error. The error code comes from the
// error-code trailer; without it only transport failures are classified.
func mapGRPCError(err error, trailer metadata.MD) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	cmdErr := &CommandError{Status: int(st.Code()), Message: st.Message()}
	if values := trailer.Get(errorCodeTrailer); len(values) > 0 {
		cmdErr.Code = values[0]
		return cmdErr
	}

	switch st.Code() {
	case codes.Unauthenticated:
		cmdErr.Code = app.CodeUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		cmdErr.Code = app.CodeNodeUnavailable
	}
	return cmdErr
}
