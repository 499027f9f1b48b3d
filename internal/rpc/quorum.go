package rpc

import (
	"context"
	"encoding/json"
	"math/rand"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-resty/resty/v2"
	"github.com/goran-ethernal/QuorumEventGate/internal/common"
	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/internal/metrics"
	"github.com/goran-ethernal/QuorumEventGate/pkg/chain"
)

const methodQuorumPayload = "eth_getQuorumPayload"

type jsonRPCRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      int    `json:"id"`
}

type jsonRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type jsonRPCResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *jsonRPCError   `json:"error"`
}

// QuorumPayloadClient fetches decrypted private transaction payloads
// from the node's private transaction manager bridge.
type QuorumPayloadClient struct {
	http *resty.Client
	url  string
	log  *logger.Logger
}

// NewQuorumPayloadClient posts JSON-RPC requests to url.
func NewQuorumPayloadClient(url string, timeout time.Duration, log *logger.Logger) *QuorumPayloadClient {
	return &QuorumPayloadClient{
		http: resty.New().
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json"),
		url: url,
		log: log,
	}
}

// Payload returns the payload stored under reference. Transport failures and
// non 2xx answers are BlockchainConnectionError; anything else that is not a
// non-empty hex result is QuorumRequestError.
func (q *QuorumPayloadClient) Payload(ctx context.Context, reference []byte) ([]byte, error) {
	ref := hexutil.Encode(reference)

	var body jsonRPCResponse
	res, err := q.http.R().
		SetContext(ctx).
		SetBody(jsonRPCRequest{
			JSONRPC: "2.0",
			Method:  methodQuorumPayload,
			Params:  []any{ref},
			ID:      rand.Intn(1_000_000), //nolint:gosec,mnd
		}).
		SetResult(&body).
		Post(q.url)
	if err != nil {
		return nil, &chain.BlockchainConnectionError{Method: methodQuorumPayload, Err: err}
	}
	if res.IsError() {
		return nil, &chain.BlockchainConnectionError{
			Method: methodQuorumPayload,
			Err:    &httpStatusError{status: res.Status()},
		}
	}

	payload, reason := decodePayload(body)
	if reason != "" {
		qErr := &chain.QuorumRequestError{Reference: ref, Reason: reason}
		metrics.ErrorsInc(common.ComponentChainClient, metrics.SeverityCritical)
		q.log.Criticalw("private transaction manager returned an invalid payload",
			"reference", ref, "reason", reason, "body", string(res.Body()))
		return nil, qErr
	}

	return payload, nil
}

func decodePayload(body jsonRPCResponse) ([]byte, string) {
	if body.Error != nil {
		return nil, "rpc error: " + body.Error.Message
	}

	var result string
	if len(body.Result) == 0 || json.Unmarshal(body.Result, &result) != nil {
		return nil, "missing result"
	}

	if strings.TrimPrefix(result, "0x") == "" {
		return nil, "empty result"
	}

	payload, err := hexutil.Decode(result)
	if err != nil {
		return nil, "result is not hex: " + err.Error()
	}

	return payload, ""
}

type httpStatusError struct {
	status string
}

func (e *httpStatusError) Error() string {
	return "unexpected HTTP status " + e.status
}
