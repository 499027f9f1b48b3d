package rpc

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/pkg/chain"
	"github.com/goran-ethernal/QuorumEventGate/pkg/config"
)

const (
	methodBlockNumber       = "eth_blockNumber"
	methodGetBlockByNumber  = "eth_getBlockByNumber"
	methodGetTxByHash       = "eth_getTransactionByHash"
	methodGetTxReceipt      = "eth_getTransactionReceipt"
	methodGetLogs           = "eth_getLogs"
	includeFullTransactions = false
)

// Compile-time check to ensure Client implements chain.Client interface.
var _ chain.Client = (*Client)(nil)

// Client talks JSON-RPC to a Quorum node. Every call, including the private
// payload side channel, goes through one shared RateLimiter and is bounded by
// the configured request timeout.
//
// Blocks, transactions and receipts are decoded into local structs rather than
// go-ethereum core types, which reject some Quorum specific fields.
type Client struct {
	rpc     *rpc.Client
	quorum  *QuorumPayloadClient
	limiter chain.RateLimitedExecutor
	timeout time.Duration
	log     *logger.Logger
}

// NewClient creates a new RPC client connected to cfg.RPCURL.
func NewClient(ctx context.Context, cfg config.ChainConfig, log *logger.Logger) (*Client, error) {
	rpcClient, err := rpc.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, &chain.BlockchainConnectionError{Method: "dial", Err: err}
	}

	return &Client{
		rpc:     rpcClient,
		quorum:  NewQuorumPayloadClient(cfg.QuorumPayloadURL, cfg.RequestTimeout.Duration, log),
		limiter: NewRateLimiter(cfg.MaxRequestsPerSecond),
		timeout: cfg.RequestTimeout.Duration,
		log:     log,
	}, nil
}

// Close closes the RPC client connection.
func (c *Client) Close() {
	c.rpc.Close()
}

// call runs one rate limited JSON-RPC call and wraps any failure.
func (c *Client) call(ctx context.Context, result any, method string, args ...any) error {
	RPCMethodInc(method)

	err := c.limiter.Run(ctx, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		start := time.Now()
		defer func() { RPCMethodDuration(method, time.Since(start)) }()

		return c.rpc.CallContext(ctx, result, method, args...)
	})
	if err != nil {
		RPCMethodError(method, classifyError(err))
		return err
	}

	return nil
}

func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	var head hexutil.Uint64
	if err := c.call(ctx, &head, methodBlockNumber); err != nil {
		return 0, &chain.BlockchainConnectionError{Method: methodBlockNumber, Err: err}
	}

	return uint64(head), nil
}

type rpcBlock struct {
	Number       hexutil.Uint64 `json:"number"`
	Hash         common.Hash    `json:"hash"`
	Transactions []common.Hash  `json:"transactions"`
}

func (c *Client) BlockByNumber(ctx context.Context, number uint64) (*chain.Block, error) {
	var block *rpcBlock
	err := c.call(ctx, &block, methodGetBlockByNumber, toBlockNumArg(number), includeFullTransactions)
	if err == nil && block == nil {
		err = fmt.Errorf("block %d: %w", number, ethereum.NotFound)
	}
	if err != nil {
		return nil, &chain.BlockchainConnectionError{Method: methodGetBlockByNumber, Err: err}
	}

	return &chain.Block{
		Number:       uint64(block.Number),
		Hash:         block.Hash,
		Transactions: block.Transactions,
	}, nil
}

type rpcTransaction struct {
	Hash        common.Hash     `json:"hash"`
	BlockNumber *hexutil.Uint64 `json:"blockNumber"`
	From        common.Address  `json:"from"`
	To          *common.Address `json:"to"`
	Input       hexutil.Bytes   `json:"input"`
	V           *hexutil.Big    `json:"v"`
}

func (c *Client) TransactionByHash(ctx context.Context, hash common.Hash) (*chain.Transaction, error) {
	var tx *rpcTransaction
	err := c.call(ctx, &tx, methodGetTxByHash, hash)
	if err == nil && tx == nil {
		err = fmt.Errorf("transaction %s: %w", hash.Hex(), ethereum.NotFound)
	}
	if err != nil {
		return nil, &chain.BlockchainConnectionError{Method: methodGetTxByHash, Err: err}
	}

	result := &chain.Transaction{
		Hash:  tx.Hash,
		From:  tx.From,
		To:    tx.To,
		Input: tx.Input,
		V:     tx.V.ToInt(),
	}
	if tx.BlockNumber != nil {
		n := uint64(*tx.BlockNumber)
		result.BlockNumber = &n
	}

	return result, nil
}

type rpcReceipt struct {
	TransactionHash  common.Hash     `json:"transactionHash"`
	TransactionIndex hexutil.Uint    `json:"transactionIndex"`
	BlockNumber      hexutil.Uint64  `json:"blockNumber"`
	ContractAddress  *common.Address `json:"contractAddress"`
	Logs             []types.Log     `json:"logs"`
}

func (c *Client) TransactionReceipt(ctx context.Context, hash common.Hash) (*chain.Receipt, error) {
	var receipt *rpcReceipt
	err := c.call(ctx, &receipt, methodGetTxReceipt, hash)
	if err == nil && receipt == nil {
		err = fmt.Errorf("receipt %s: %w", hash.Hex(), ethereum.NotFound)
	}
	if err != nil {
		return nil, &chain.BlockchainConnectionError{Method: methodGetTxReceipt, Err: err}
	}

	return &chain.Receipt{
		TransactionHash:  receipt.TransactionHash,
		TransactionIndex: uint(receipt.TransactionIndex),
		BlockNumber:      uint64(receipt.BlockNumber),
		ContractAddress:  receipt.ContractAddress,
		Logs:             receipt.Logs,
	}, nil
}

func (c *Client) PastLogs(ctx context.Context, fromBlock, toBlock uint64) ([]types.Log, error) {
	if fromBlock > toBlock {
		return nil, fmt.Errorf("invalid log range [%d, %d]", fromBlock, toBlock)
	}

	var logs []types.Log
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
	}
	if err := c.call(ctx, &logs, methodGetLogs, toFilterArg(query)); err != nil {
		return nil, logRangeError(fromBlock, toBlock, err)
	}

	return logs, nil
}

func (c *Client) QuorumPayload(ctx context.Context, reference []byte) ([]byte, error) {
	RPCMethodInc(methodQuorumPayload)

	payload, err := Do(ctx, c.limiter, func(ctx context.Context) ([]byte, error) {
		start := time.Now()
		defer func() { RPCMethodDuration(methodQuorumPayload, time.Since(start)) }()

		return c.quorum.Payload(ctx, reference)
	})
	if err != nil {
		var qErr *chain.QuorumRequestError
		if errors.As(err, &qErr) {
			RPCMethodError(methodQuorumPayload, "invalid_response")
			return nil, err
		}

		RPCMethodError(methodQuorumPayload, classifyError(err))
		if chain.IsConnectionError(err) {
			return nil, err
		}
		return nil, &chain.BlockchainConnectionError{Method: methodQuorumPayload, Err: err}
	}

	return payload, nil
}

// toFilterArg converts ethereum.FilterQuery to the format expected by eth_getLogs.
func toFilterArg(q ethereum.FilterQuery) any {
	arg := map[string]any{
		"topics": q.Topics,
	}

	if q.BlockHash != nil {
		arg["blockHash"] = *q.BlockHash
	} else {
		if q.FromBlock != nil {
			arg["fromBlock"] = toBlockNumArg(q.FromBlock.Uint64())
		}
		if q.ToBlock != nil {
			arg["toBlock"] = toBlockNumArg(q.ToBlock.Uint64())
		}
	}

	if len(q.Addresses) > 0 {
		if len(q.Addresses) == 1 {
			arg["address"] = q.Addresses[0]
		} else {
			arg["address"] = q.Addresses
		}
	}

	return arg
}

// toBlockNumArg converts a block number to hex format.
func toBlockNumArg(blockNum uint64) string {
	return hexutil.EncodeUint64(blockNum)
}
