package validation

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/pkg/library"
	"github.com/goran-ethernal/QuorumEventGate/pkg/store"
)

// Compile-time check to ensure EventValidator implements Validator interface.
var _ Validator = (*EventValidator)(nil)

// Transition is a trust change decided for the emitting address.
type Transition struct {
	Address common.Address
	To      store.TrustStatus
	TxHash  common.Hash
	Reason  string
}

// Decision is the outcome of one status handler.
type Decision struct {
	Valid      bool
	Transition *Transition
}

// EventValidator dispatches on the emitter's current trust status.
//
//	Blacklisted  invalid, nothing else is looked at
//	Whitelisted  valid unless it is a cast event pointing at an untrusted
//	             address, which blacklists the emitter
//	Unknown      cast check, then creation check; only a verified, activated
//	             creation whitelists, a recognised creation that fails
//	             verification blacklists, and so does an event that is neither
//	             a valid cast nor a creation
type EventValidator struct {
	trust    store.TrustStore
	library  library.Library
	cast     CastVerifier
	bytecode BytecodeVerifier
	log      *logger.Logger
}

func NewEventValidator(
	trust store.TrustStore,
	lib library.Library,
	cast CastVerifier,
	bytecode BytecodeVerifier,
	log *logger.Logger,
) *EventValidator {
	return &EventValidator{
		trust:    trust,
		library:  lib,
		cast:     cast,
		bytecode: bytecode,
		log:      log,
	}
}

func (v *EventValidator) Validate(ctx context.Context, log types.Log) (bool, error) {
	status, err := v.trust.GetStatus(ctx, log.Address.Hex())
	if err != nil {
		return false, err
	}

	var decision Decision
	switch status {
	case store.StatusBlacklisted:
		decision = Decision{Valid: false}
	case store.StatusWhitelisted:
		decision, err = v.validateWhitelisted(ctx, log)
	default:
		decision, err = v.validateUnknown(ctx, log)
	}

	var castErr *ContractCastVerifierError
	if errors.As(err, &castErr) {
		v.log.Warnw("malformed cast event", "address", log.Address.Hex(), "txHash", log.TxHash.Hex(), "error", err)
		decision = Decision{Valid: false, Transition: blacklist(log, "malformed cast event")}
		err = nil
	}
	if err != nil {
		return false, err
	}

	if err := v.applyTransition(ctx, decision.Transition); err != nil {
		return false, err
	}

	ValidationInc(status.String(), decision.Valid)

	return decision.Valid, nil
}

func (v *EventValidator) validateWhitelisted(ctx context.Context, log types.Log) (Decision, error) {
	if !v.isCastEvent(log) {
		return Decision{Valid: true}, nil
	}

	ok, err := v.cast.Verify(ctx, log)
	if err != nil {
		return Decision{}, err
	}
	if ok {
		return Decision{Valid: true}, nil
	}

	return Decision{Valid: false, Transition: blacklist(log, "cast to untrusted address")}, nil
}

func (v *EventValidator) validateUnknown(ctx context.Context, log types.Log) (Decision, error) {
	var (
		castValid          bool
		creationRecognised bool
		creationValid      bool
		err                error
	)

	if v.isCastEvent(log) {
		castValid, err = v.cast.Verify(ctx, log)
		if err != nil {
			return Decision{}, err
		}
	}

	if v.isCreationEvent(log) {
		creationRecognised = true

		creationValid, err = v.bytecode.VerifyContractCreation(ctx, log.TxHash)
		if err != nil {
			var notFound *library.ContractNotFoundError
			if !errors.As(err, &notFound) {
				return Decision{}, err
			}
			creationValid = false
		}
	}

	decision := Decision{Valid: castValid || creationValid}

	switch {
	case creationValid:
		decision.Transition = &Transition{
			Address: log.Address,
			To:      store.StatusWhitelisted,
			TxHash:  log.TxHash,
			Reason:  "verified contract creation",
		}
	case creationRecognised:
		decision.Transition = blacklist(log, "unknown or deactivated bytecode")
	case !castValid:
		decision.Transition = blacklist(log, "neither valid cast nor creation")
	}

	return decision, nil
}

func (v *EventValidator) applyTransition(ctx context.Context, t *Transition) error {
	if t == nil {
		return nil
	}

	var err error
	switch t.To {
	case store.StatusWhitelisted:
		err = v.trust.Whitelist(ctx, t.Address.Hex(), t.TxHash.Hex())
	case store.StatusBlacklisted:
		err = v.trust.Blacklist(ctx, t.Address.Hex(), t.TxHash.Hex())
	default:
		err = fmt.Errorf("invalid transition target %q", t.To)
	}
	if err != nil {
		return err
	}

	TrustTransitionInc(string(t.To))
	v.log.Infow("trust status changed",
		"address", t.Address.Hex(),
		"status", t.To.String(),
		"txHash", t.TxHash.Hex(),
		"reason", t.Reason)

	return nil
}

func (v *EventValidator) isCastEvent(log types.Log) bool {
	return len(log.Topics) > 0 && log.Topics[0] == v.library.CastEventSigHash()
}

func (v *EventValidator) isCreationEvent(log types.Log) bool {
	return len(log.Topics) > 0 && v.library.IsKnownCreationSigHash(log.Topics[0])
}

func blacklist(log types.Log, reason string) *Transition {
	return &Transition{
		Address: log.Address,
		To:      store.StatusBlacklisted,
		TxHash:  log.TxHash,
		Reason:  reason,
	}
}
