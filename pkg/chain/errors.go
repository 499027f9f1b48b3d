package chain

import (
	"errors"
	"fmt"
)

// BlockchainConnectionError wraps any transport level failure of a chain call.
type BlockchainConnectionError struct {
	Method string
	Err    error
}

func (e *BlockchainConnectionError) Error() string {
	return fmt.Sprintf("blockchain connection error calling %s: %v", e.Method, e.Err)
}

func (e *BlockchainConnectionError) Unwrap() error {
	return e.Err
}

// QuorumRequestError is returned when the node answers a private payload
// request with an invalid response.
type QuorumRequestError struct {
	Reference string
	Reason    string
}

func (e *QuorumRequestError) Error() string {
	return fmt.Sprintf("invalid eth_getQuorumPayload response for %s: %s", e.Reference, e.Reason)
}

// LogRangeTooLargeError is returned when the node refuses a log query because
// it matches too many logs. Suggested bounds come from the node's message.
type LogRangeTooLargeError struct {
	FromBlock     uint64
	ToBlock       uint64
	SuggestedFrom uint64
	SuggestedTo   uint64
	Err           error
}

func (e *LogRangeTooLargeError) Error() string {
	return fmt.Sprintf("log range [%d, %d] too large, node suggests [%d, %d]",
		e.FromBlock, e.ToBlock, e.SuggestedFrom, e.SuggestedTo)
}

func (e *LogRangeTooLargeError) Unwrap() error {
	return e.Err
}

// IsConnectionError reports whether err is a BlockchainConnectionError.
func IsConnectionError(err error) bool {
	var connErr *BlockchainConnectionError
	return errors.As(err, &connErr)
}
