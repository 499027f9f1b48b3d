package rpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"regexp"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/goran-ethernal/QuorumEventGate/internal/common"
	"github.com/goran-ethernal/QuorumEventGate/pkg/chain"
)

var (
	tooManyResultsRe = regexp.MustCompile(`Query returned more than \d+ results`)
	blockRangeRe     = regexp.MustCompile(`\[(0x[0-9a-fA-F]+),\s*(0x[0-9a-fA-F]+)\]`)
)

// IsTooManyResultsError checks if the error is an RPC "too many results" error (DataError with message in ErrorData).
func IsTooManyResultsError(err error) (bool, string) {
	if err == nil {
		return false, ""
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		errData := fmt.Sprintf("%v", dataErr.ErrorData())
		return tooManyResultsRe.MatchString(errData), errData
	}

	return false, ""
}

// ParseSuggestedBlockRange extracts the block range a node suggests after refusing a log query.
// Expected format: "Query returned more than 20000 results. Try with this block range [0x7dfd25, 0x7e0fcc]."
func ParseSuggestedBlockRange(err string) (fromBlock, toBlock uint64, ok bool) {
	if err == "" {
		return 0, 0, false
	}

	matches := blockRangeRe.FindStringSubmatch(err)

	const expectedMatches = 3 // full match + 2 groups
	if len(matches) != expectedMatches {
		return 0, 0, false
	}

	from, err1 := common.ParseUint64orHex(&matches[1])
	to, err2 := common.ParseUint64orHex(&matches[2])

	if err1 != nil || err2 != nil {
		return 0, 0, false
	}

	return from, to, true
}

// logRangeError turns a refused eth_getLogs into a LogRangeTooLargeError when
// the node told us which range it would accept, and into a connection error otherwise.
func logRangeError(fromBlock, toBlock uint64, err error) error {
	if tooMany, data := IsTooManyResultsError(err); tooMany {
		if from, to, ok := ParseSuggestedBlockRange(data); ok && to >= from && to < toBlock {
			return &chain.LogRangeTooLargeError{
				FromBlock:     fromBlock,
				ToBlock:       toBlock,
				SuggestedFrom: from,
				SuggestedTo:   to,
				Err:           err,
			}
		}
	}

	return &chain.BlockchainConnectionError{Method: methodGetLogs, Err: err}
}

// classifyError labels an RPC failure for metrics.
func classifyError(err error) string {
	errStr := strings.ToLower(err.Error())

	var (
		rpcErr rpc.Error
		netErr net.Error
	)

	switch {
	case errors.Is(err, context.DeadlineExceeded),
		strings.Contains(errStr, "timeout"),
		strings.Contains(errStr, "deadline exceeded"):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	case errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.EPIPE),
		errors.As(err, &netErr):
		return "connection"
	case strings.Contains(errStr, "429"),
		strings.Contains(errStr, "too many requests"),
		strings.Contains(errStr, "rate limit"):
		return "rate_limited"
	case strings.Contains(errStr, "502"),
		strings.Contains(errStr, "503"),
		strings.Contains(errStr, "504"),
		strings.Contains(errStr, "bad gateway"),
		strings.Contains(errStr, "service unavailable"):
		return "server"
	case errors.As(err, &rpcErr):
		return "rpc"
	default:
		return "unknown"
	}
}
