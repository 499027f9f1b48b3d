// Package validation decides whether a log comes from a trustworthy contract.
package validation

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// BytecodeVerifier checks the init code of a contract creation transaction.
type BytecodeVerifier interface {
	// VerifyContractCreation reports whether the deployed code is a catalogued,
	// activated contract version. Unknown code fails with *library.ContractNotFoundError.
	VerifyContractCreation(ctx context.Context, txHash common.Hash) (bool, error)
}

// CastVerifier checks a contract cast event.
type CastVerifier interface {
	// Verify reports whether the address a cast event points to is whitelisted.
	// A log that does not decode as a cast event fails with *ContractCastVerifierError.
	Verify(ctx context.Context, log types.Log) (bool, error)
}

// Validator decides whether a log may be published, updating trust as a side effect.
type Validator interface {
	Validate(ctx context.Context, log types.Log) (bool, error)
}

// ContractCastVerifierError is returned when a log with the cast signature
// cannot be decoded or has no target address.
type ContractCastVerifierError struct {
	Address common.Address
	TxHash  common.Hash
	Err     error
}

func (e *ContractCastVerifierError) Error() string {
	return fmt.Sprintf("malformed cast event from %s in tx %s: %v", e.Address.Hex(), e.TxHash.Hex(), e.Err)
}

func (e *ContractCastVerifierError) Unwrap() error {
	return e.Err
}
