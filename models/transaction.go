package models

// SendStage is a point a payment passes through while being built and
// submitted. Observers receive stages in order; some may be skipped.
type SendStage string

const (
	SendStageSelectingInputs SendStage = "selecting_inputs"
	SendStageBuilding        SendStage = "building"
	SendStageSigned          SendStage = "signed"
	SendStageSubmitted       SendStage = "submitted"
)

// SendProgress is delivered to a progress observer.
type SendProgress struct {
	Stage SendStage `json:"stage"`
	TxID  string    `json:"tx_id,omitempty"`
}

// Output is a single payment output in subunits.
type Output struct {
	Address string `json:"address"`
	Amount  int64  `json:"amount"`
}

// TransactionSummary describes a submitted payment. All amounts are in
// subunits.
type TransactionSummary struct {
	Recipient string `json:"recipient"`
	Amount    int64  `json:"amount"`
	Fee       int64  `json:"fee"`
	Change    int64  `json:"change"`
	Inputs    int    `json:"inputs"`
	Network   string `json:"network"`
}

// Account describes one account of an open wallet.
type Account struct {
	Index          uint32 `json:"index"`
	DerivationPath string `json:"derivation_path"`
	ReceiveAddress string `json:"receive_address"`
	Balance        int64  `json:"balance"`
	Network        string `json:"network"`
}
