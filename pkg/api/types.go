package api

import "time"

const (
	checkStatusOK    = "OK"
	checkStatusError = "error"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// LivenessResponse is returned by the liveness probe.
type LivenessResponse struct {
	Status string `json:"status"`
}

// ReadinessResponse lists the outcome of every dependency check.
type ReadinessResponse struct {
	Status    string        `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Checks    []CheckResult `json:"checks"`
}

// CheckResult is the outcome of one dependency check.
type CheckResult struct {
	Name      string `json:"name"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	LatencyMS int64  `json:"latency_ms"`
}

// ContractResponse is the trust record of one address.
type ContractResponse struct {
	Address   string    `json:"address"`
	Status    string    `json:"status"`
	TxHash    string    `json:"tx_hash,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProgressResponse is the processing cursor.
type ProgressResponse struct {
	BlockNumber     uint64 `json:"block_number"`
	TransactionHash string `json:"transaction_hash"`
	LogIndex        uint64 `json:"log_index"`
}

// AutoWhitelistResponse is the remaining back-scan range.
type AutoWhitelistResponse struct {
	Start    uint64 `json:"start"`
	Stop     *int64 `json:"stop"`
	Complete bool   `json:"complete"`
}
