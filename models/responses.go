package models

// CreateResponse is returned exactly once; the mnemonic is never stored
// or shown again.
type CreateResponse struct {
	Mnemonic       []string `json:"mnemonic"`
	ReceiveAddress string   `json:"receive_address"`
}

// OpenResponse answers open and restore.
type OpenResponse struct {
	ReceiveAddress string `json:"receive_address"`
}

type CloseResponse struct {
	Closed bool `json:"closed"`
}

// StatusResponse is a pure query result.
type StatusResponse struct {
	IsOpened    bool `json:"is_opened"`
	IsInitiated bool `json:"is_initiated"`
}

// DestroyResponse answers destroy. An aborted destroy is not a failure of
// the command: Destroyed is false and Code says why.
type DestroyResponse struct {
	Destroyed bool   `json:"destroyed"`
	Code      string `json:"code,omitempty"`
	Message   string `json:"message,omitempty"`
}

// SendResponse carries the summary of the payment and the identifiers of
// every transaction the wallet submitted.
type SendResponse struct {
	Summary TransactionSummary `json:"summary"`
	TxIDs   []string           `json:"tx_ids"`
}

type AccountsResponse struct {
	Accounts []Account `json:"accounts"`
}

// ErrorResponse is the JSON body of every failed command.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
