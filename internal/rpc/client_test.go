package rpc

import (
	"context"
	"encoding/json"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	internalcommon "github.com/goran-ethernal/QuorumEventGate/internal/common"
	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/pkg/chain"
	"github.com/goran-ethernal/QuorumEventGate/pkg/config"
	"github.com/stretchr/testify/require"
)

const (
	testTxHash   = "0x8e7f6b1e5d7c4b3a29180706f5e4d3c2b1a09f8e7d6c5b4a3928170605f4e3d2"
	testContract = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	testTopic    = "0x1111111111111111111111111111111111111111111111111111111111111111"
)

type rpcCall struct {
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
	ID     json.RawMessage   `json:"id"`
}

// fakeNode answers JSON-RPC calls from a method -> raw result table.
type fakeNode struct {
	mu      sync.Mutex
	results map[string]string
	errors  map[string]string
	calls   []rpcCall
}

func (f *fakeNode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	var call rpcCall
	if err := json.Unmarshal(body, &call); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.calls = append(f.calls, call)
	result, ok := f.results[call.Method]
	rpcErr := f.errors[call.Method]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case rpcErr != "":
		_, _ = io.WriteString(w, `{"jsonrpc":"2.0","id":`+string(call.ID)+`,"error":`+rpcErr+`}`)
	case ok:
		_, _ = io.WriteString(w, `{"jsonrpc":"2.0","id":`+string(call.ID)+`,"result":`+result+`}`)
	default:
		_, _ = io.WriteString(w, `{"jsonrpc":"2.0","id":`+string(call.ID)+`,"error":{"code":-32601,"message":"method not found"}}`)
	}
}

func (f *fakeNode) lastCall() rpcCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

func newTestClient(t *testing.T, node http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(node)
	t.Cleanup(srv.Close)

	cfg := config.ChainConfig{RPCURL: srv.URL, RequestTimeout: internalcommon.NewDuration(2 * time.Second)}
	cfg.ApplyDefaults()
	cfg.MaxRequestsPerSecond = 1000

	client, err := NewClient(context.Background(), cfg, logger.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(client.Close)

	return client
}

func TestClientImplementsInterface(t *testing.T) {
	var _ chain.Client = (*Client)(nil)
}

func TestClient_BlockNumber(t *testing.T) {
	node := &fakeNode{results: map[string]string{methodBlockNumber: `"0x2a"`}}
	client := newTestClient(t, node)

	head, err := client.BlockNumber(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(42), head)
}

func TestClient_BlockByNumber(t *testing.T) {
	node := &fakeNode{results: map[string]string{
		methodGetBlockByNumber: `{"number":"0x5","hash":"` + testTopic + `","transactions":["` + testTxHash + `"]}`,
	}}
	client := newTestClient(t, node)

	block, err := client.BlockByNumber(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, uint64(5), block.Number)
	require.Equal(t, []common.Hash{common.HexToHash(testTxHash)}, block.Transactions)

	call := node.lastCall()
	require.Len(t, call.Params, 2)
	require.JSONEq(t, `"0x5"`, string(call.Params[0]))
	require.JSONEq(t, `false`, string(call.Params[1]))
}

func TestClient_BlockByNumber_NotFound(t *testing.T) {
	node := &fakeNode{results: map[string]string{methodGetBlockByNumber: `null`}}
	client := newTestClient(t, node)

	_, err := client.BlockByNumber(context.Background(), 99)
	require.True(t, chain.IsConnectionError(err))
	require.ErrorIs(t, err, ethereum.NotFound)
}

func TestClient_TransactionByHash(t *testing.T) {
	node := &fakeNode{results: map[string]string{
		methodGetTxByHash: `{"hash":"` + testTxHash + `","blockNumber":"0x3","from":"` + testContract +
			`","to":null,"input":"0x6080","v":"0x25"}`,
	}}
	client := newTestClient(t, node)

	tx, err := client.TransactionByHash(context.Background(), common.HexToHash(testTxHash))
	require.NoError(t, err)
	require.Equal(t, []byte{0x60, 0x80}, tx.Input)
	require.Nil(t, tx.To)
	require.Equal(t, uint64(3), *tx.BlockNumber)
	require.Equal(t, big.NewInt(37), tx.V)
	require.True(t, tx.IsPrivate())
}

func TestClient_TransactionReceipt(t *testing.T) {
	logJSON := `{"address":"` + testContract + `","topics":["` + testTopic + `"],"data":"0x",` +
		`"blockNumber":"0x3","transactionHash":"` + testTxHash + `","transactionIndex":"0x0",` +
		`"blockHash":"` + testTopic + `","logIndex":"0x7","removed":false}`
	node := &fakeNode{results: map[string]string{
		methodGetTxReceipt: `{"transactionHash":"` + testTxHash + `","transactionIndex":"0x1","blockNumber":"0x3",` +
			`"contractAddress":null,"logs":[` + logJSON + `]}`,
	}}
	client := newTestClient(t, node)

	receipt, err := client.TransactionReceipt(context.Background(), common.HexToHash(testTxHash))
	require.NoError(t, err)
	require.Equal(t, uint(1), receipt.TransactionIndex)
	require.Len(t, receipt.Logs, 1)
	require.Equal(t, common.HexToAddress(testContract), receipt.Logs[0].Address)
	require.Equal(t, uint(7), receipt.Logs[0].Index)
}

func TestClient_PastLogs(t *testing.T) {
	node := &fakeNode{results: map[string]string{methodGetLogs: `[]`}}
	client := newTestClient(t, node)

	logs, err := client.PastLogs(context.Background(), 16, 31)
	require.NoError(t, err)
	require.Empty(t, logs)

	var filter map[string]any
	require.NoError(t, json.Unmarshal(node.lastCall().Params[0], &filter))
	require.Equal(t, "0x10", filter["fromBlock"])
	require.Equal(t, "0x1f", filter["toBlock"])

	_, err = client.PastLogs(context.Background(), 10, 9)
	require.Error(t, err)
}

func TestClient_PastLogs_TooManyResults(t *testing.T) {
	node := &fakeNode{errors: map[string]string{
		methodGetLogs: `{"code":-32005,"message":"query returned more than 10000 results",` +
			`"data":"Query returned more than 10000 results. Try with this block range [0x0, 0x63]."}`,
	}}
	client := newTestClient(t, node)

	_, err := client.PastLogs(context.Background(), 0, 999)

	var tooLarge *chain.LogRangeTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	require.Equal(t, uint64(99), tooLarge.SuggestedTo)
}

func TestClient_RPCErrorIsConnectionError(t *testing.T) {
	node := &fakeNode{errors: map[string]string{methodBlockNumber: `{"code":-32000,"message":"node is syncing"}`}}
	client := newTestClient(t, node)

	_, err := client.BlockNumber(context.Background())

	var connErr *chain.BlockchainConnectionError
	require.ErrorAs(t, err, &connErr)
	require.Equal(t, methodBlockNumber, connErr.Method)
	require.Contains(t, err.Error(), "node is syncing")
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	cfg := config.ChainConfig{RPCURL: url}
	cfg.ApplyDefaults()

	client, err := NewClient(context.Background(), cfg, logger.NewNopLogger())
	require.NoError(t, err) // HTTP dial is lazy
	defer client.Close()

	_, err = client.BlockNumber(context.Background())
	require.True(t, chain.IsConnectionError(err))
}

func TestToBlockNumArg(t *testing.T) {
	tests := []struct {
		blockNum uint64
		want     string
	}{
		{blockNum: 0, want: "0x0"},
		{blockNum: 100, want: "0x64"},
		{blockNum: 18000000, want: "0x112a880"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, toBlockNumArg(tt.blockNum))
		})
	}
}

func TestToFilterArg(t *testing.T) {
	addr := common.HexToAddress(testContract)
	topic := common.HexToHash(testTopic)

	arg := toFilterArg(ethereum.FilterQuery{
		FromBlock: big.NewInt(100),
		ToBlock:   big.NewInt(200),
		Addresses: []common.Address{addr},
		Topics:    [][]common.Hash{{topic}},
	}).(map[string]any)

	require.Equal(t, "0x64", arg["fromBlock"])
	require.Equal(t, "0xc8", arg["toBlock"])
	require.Equal(t, addr, arg["address"])
	require.Equal(t, [][]common.Hash{{topic}}, arg["topics"])

	blockHash := common.HexToHash("0xdeadbeef")
	arg = toFilterArg(ethereum.FilterQuery{BlockHash: &blockHash, FromBlock: big.NewInt(1)}).(map[string]any)
	require.Equal(t, blockHash, arg["blockHash"])
	require.NotContains(t, arg, "fromBlock")
}
