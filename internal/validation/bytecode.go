package validation

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	internallibrary "github.com/goran-ethernal/QuorumEventGate/internal/library"
	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/pkg/chain"
	"github.com/goran-ethernal/QuorumEventGate/pkg/library"
)

// Compile-time check to ensure ChainBytecodeVerifier implements BytecodeVerifier interface.
var _ BytecodeVerifier = (*ChainBytecodeVerifier)(nil)

// ChainBytecodeVerifier matches creation transactions against the contract library.
type ChainBytecodeVerifier struct {
	chain   chain.Client
	library library.Library
	log     *logger.Logger
}

func NewBytecodeVerifier(client chain.Client, lib library.Library, log *logger.Logger) *ChainBytecodeVerifier {
	return &ChainBytecodeVerifier{chain: client, library: lib, log: log}
}

func (v *ChainBytecodeVerifier) VerifyContractCreation(ctx context.Context, txHash common.Hash) (bool, error) {
	tx, err := v.chain.TransactionByHash(ctx, txHash)
	if err != nil {
		return false, err
	}

	input := tx.Input
	if tx.IsPrivate() {
		input, err = v.chain.QuorumPayload(ctx, tx.Input)
		if err != nil {
			return false, err
		}
	}

	hash := internallibrary.BytecodeHash(input)

	info, err := v.library.ContractInfo(hash)
	if err != nil {
		return false, err
	}

	v.log.Debugw("creation bytecode matched",
		"txHash", txHash.Hex(),
		"private", tx.IsPrivate(),
		"contract", info.Name,
		"version", info.Version,
		"activated", info.Activated)

	return info.Activated, nil
}
