package validation

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/pkg/library"
	"github.com/goran-ethernal/QuorumEventGate/pkg/store"
)

// Compile-time check to ensure TrustCastVerifier implements CastVerifier interface.
var _ CastVerifier = (*TrustCastVerifier)(nil)

// TrustCastVerifier accepts a cast event when its target is whitelisted.
// The target is the first address argument of the cast event.
type TrustCastVerifier struct {
	trust   store.TrustStore
	library library.Library
	log     *logger.Logger
}

func NewCastVerifier(trust store.TrustStore, lib library.Library, log *logger.Logger) *TrustCastVerifier {
	return &TrustCastVerifier{trust: trust, library: lib, log: log}
}

func (v *TrustCastVerifier) Verify(ctx context.Context, log types.Log) (bool, error) {
	target, err := decodeCastTarget(v.library.CastEvent(), log)
	if err != nil {
		return false, &ContractCastVerifierError{Address: log.Address, TxHash: log.TxHash, Err: err}
	}

	status, err := v.trust.GetStatus(ctx, target.Hex())
	if err != nil {
		return false, err
	}

	v.log.Debugw("cast event checked",
		"address", log.Address.Hex(),
		"target", target.Hex(),
		"targetStatus", status.String())

	return status == store.StatusWhitelisted, nil
}

func decodeCastTarget(event abi.Event, log types.Log) (common.Address, error) {
	field := ""
	for _, input := range event.Inputs {
		if input.Type.T == abi.AddressTy {
			field = input.Name
			break
		}
	}
	if field == "" {
		return common.Address{}, fmt.Errorf("cast event %s has no address argument", event.Sig)
	}

	values := make(map[string]any, len(event.Inputs))
	if err := event.Inputs.UnpackIntoMap(values, log.Data); err != nil {
		return common.Address{}, fmt.Errorf("decode data: %w", err)
	}

	var indexed abi.Arguments
	for _, input := range event.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}
	if len(indexed) > 0 {
		if len(log.Topics) < len(indexed)+1 {
			return common.Address{}, errors.New("missing indexed topics")
		}
		if err := abi.ParseTopicsIntoMap(values, indexed, log.Topics[1:len(indexed)+1]); err != nil {
			return common.Address{}, fmt.Errorf("decode topics: %w", err)
		}
	}

	target, ok := values[field].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("missing %q argument", field)
	}

	return target, nil
}
