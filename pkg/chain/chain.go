package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Signature recovery values Quorum assigns to private transactions.
const (
	PrivateTxV1 = 37
	PrivateTxV2 = 38
)

// Block is a block with transaction hashes only.
type Block struct {
	Number       uint64
	Hash         common.Hash
	Transactions []common.Hash
}

// Transaction carries the fields needed to verify a contract creation.
type Transaction struct {
	Hash        common.Hash
	BlockNumber *uint64
	From        common.Address
	To          *common.Address
	// Input is the init code for public creations and the payload
	// reference for private transactions.
	Input []byte
	V     *big.Int
}

// IsPrivate reports whether the payload of t lives in the private transaction manager.
func (t *Transaction) IsPrivate() bool {
	if t.V == nil || !t.V.IsUint64() {
		return false
	}

	v := t.V.Uint64()
	return v == PrivateTxV1 || v == PrivateTxV2
}

// Receipt is a transaction receipt. Logs keep the node's order.
type Receipt struct {
	TransactionHash  common.Hash
	TransactionIndex uint
	BlockNumber      uint64
	ContractAddress  *common.Address
	Logs             []types.Log
}

// Client is the rate limited access to the Quorum node.
// Every failure is a *BlockchainConnectionError, except malformed private payload
// responses (*QuorumRequestError) and oversized log ranges (*LogRangeTooLargeError).
type Client interface {
	// BlockNumber returns the current head.
	BlockNumber(ctx context.Context) (uint64, error)

	// BlockByNumber returns the block with transaction hashes only.
	BlockByNumber(ctx context.Context, number uint64) (*Block, error)

	TransactionByHash(ctx context.Context, hash common.Hash) (*Transaction, error)

	TransactionReceipt(ctx context.Context, hash common.Hash) (*Receipt, error)

	// PastLogs returns every log emitted in [fromBlock, toBlock].
	PastLogs(ctx context.Context, fromBlock, toBlock uint64) ([]types.Log, error)

	// QuorumPayload resolves a private transaction reference to its payload.
	QuorumPayload(ctx context.Context, reference []byte) ([]byte, error)

	Close()
}

// RateLimitedExecutor runs calls one at a time, spaced by the configured rate.
type RateLimitedExecutor interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}
