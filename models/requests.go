package models

// Request payloads of the command API. Secrets arrive as plain strings and
// are moved into secret.Secret by the transport before reaching the
// lifecycle service.

// CreateRequest is the body of POST /api/wallet/create.
type CreateRequest struct {
	Secret string `json:"secret"`
}

// OpenRequest is the body of POST /api/wallet/open.
type OpenRequest struct {
	Secret string `json:"secret"`
}

// RestoreRequest is the body of POST /api/wallet/restore.
type RestoreRequest struct {
	Mnemonic string `json:"mnemonic"`
	Secret   string `json:"secret"`
}

// DestroyRequest is the body of POST /api/wallet/destroy. Confirmation
// must be exactly "destroy".
type DestroyRequest struct {
	Confirmation string `json:"confirmation"`
}

// SendRequest is the body of POST /api/wallet/send. Amount is a decimal
// string in whole coins. Recipient is an address or another owner's
// identifier.
type SendRequest struct {
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
	Secret    string `json:"secret"`
}
