package app

// Error codes carried in models.ErrorResponse.Code. They are stable and
// shared by the server transports and the client.
const (
	CodeInvalidData       = "invalid_data"
	CodeUnauthorized      = "unauthorized"
	CodeWeakSecret        = "weak_secret"
	CodeInvalidMnemonic   = "invalid_mnemonic"
	CodeInvalidAmount     = "invalid_amount"
	CodeInvalidAddress    = "invalid_address"
	CodeDecryptionFailed  = "decryption_failed"
	CodeAlreadyInitiated  = "already_initiated"
	CodeNotInitiated      = "not_initiated"
	CodeWalletNotOpen     = "wallet_not_open"
	CodeWalletOpen        = "wallet_open"
	CodeSessionBusy       = "session_busy"
	CodeAbortedByUser     = "aborted_by_user"
	CodeInsufficientFunds = "insufficient_funds"
	CodeTransactionFailed = "transaction_failed"
	CodeNodeUnavailable   = "node_unavailable"
	CodeInternal          = "internal"
)
