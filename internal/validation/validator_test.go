package validation

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	librarymocks "github.com/goran-ethernal/QuorumEventGate/internal/library/mocks"
	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	storemocks "github.com/goran-ethernal/QuorumEventGate/internal/store/mocks"
	"github.com/goran-ethernal/QuorumEventGate/internal/validation/mocks"
	"github.com/goran-ethernal/QuorumEventGate/pkg/library"
	"github.com/goran-ethernal/QuorumEventGate/pkg/store"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	emitter      = common.HexToAddress("0x36eFb40A6a5bA83461682066FD81fE85a01E5491")
	castSig      = common.HexToHash("0xca57")
	creationSig  = common.HexToHash("0xc0ffee")
	otherSig     = common.HexToHash("0x0123")
	creationTx   = common.HexToHash("0x35f8622742fb09b0c8ff1743a36c627fc04783596c2bb95c567260eb93028135")
	errDBDown    = errors.New("database down")
	errChainDown = errors.New("node unreachable")
)

type validatorMocks struct {
	trust    *storemocks.TrustStore
	library  *librarymocks.Library
	cast     *mocks.CastVerifier
	bytecode *mocks.BytecodeVerifier
}

func newTestValidator(t *testing.T) (*EventValidator, *validatorMocks) {
	t.Helper()

	m := &validatorMocks{
		trust:    storemocks.NewTrustStore(t),
		library:  librarymocks.NewLibrary(t),
		cast:     mocks.NewCastVerifier(t),
		bytecode: mocks.NewBytecodeVerifier(t),
	}

	m.library.EXPECT().CastEventSigHash().Return(castSig).Maybe()
	m.library.EXPECT().IsKnownCreationSigHash(creationSig).Return(true).Maybe()
	m.library.EXPECT().IsKnownCreationSigHash(mock.Anything).Return(false).Maybe()

	return NewEventValidator(m.trust, m.library, m.cast, m.bytecode, logger.NewNopLogger()), m
}

func logWithTopic(topic common.Hash) types.Log {
	return types.Log{Address: emitter, Topics: []common.Hash{topic}, TxHash: creationTx}
}

func TestEventValidator_Validate(t *testing.T) {
	ctx := context.Background()
	addr := emitter.Hex()
	tx := creationTx.Hex()

	tests := []struct {
		name    string
		log     types.Log
		setup   func(m *validatorMocks)
		want    bool
		wantErr error
	}{
		{
			name: "blacklisted short circuits",
			log:  logWithTopic(creationSig),
			setup: func(m *validatorMocks) {
				m.trust.EXPECT().GetStatus(ctx, addr).Return(store.StatusBlacklisted, nil)
			},
			want: false,
		},
		{
			name: "status lookup fails",
			log:  logWithTopic(otherSig),
			setup: func(m *validatorMocks) {
				m.trust.EXPECT().GetStatus(ctx, addr).Return(store.StatusUnknown, errDBDown)
			},
			wantErr: errDBDown,
		},
		{
			name: "whitelisted regular event",
			log:  logWithTopic(otherSig),
			setup: func(m *validatorMocks) {
				m.trust.EXPECT().GetStatus(ctx, addr).Return(store.StatusWhitelisted, nil)
			},
			want: true,
		},
		{
			name: "whitelisted valid cast",
			log:  logWithTopic(castSig),
			setup: func(m *validatorMocks) {
				m.trust.EXPECT().GetStatus(ctx, addr).Return(store.StatusWhitelisted, nil)
				m.cast.EXPECT().Verify(ctx, logWithTopic(castSig)).Return(true, nil).Once()
			},
			want: true,
		},
		{
			name: "whitelisted cast to untrusted target is demoted",
			log:  logWithTopic(castSig),
			setup: func(m *validatorMocks) {
				m.trust.EXPECT().GetStatus(ctx, addr).Return(store.StatusWhitelisted, nil)
				m.cast.EXPECT().Verify(ctx, logWithTopic(castSig)).Return(false, nil).Once()
				m.trust.EXPECT().Blacklist(ctx, addr, tx).Return(nil).Once()
			},
			want: false,
		},
		{
			name: "whitelisted malformed cast is demoted",
			log:  logWithTopic(castSig),
			setup: func(m *validatorMocks) {
				m.trust.EXPECT().GetStatus(ctx, addr).Return(store.StatusWhitelisted, nil)
				m.cast.EXPECT().Verify(ctx, logWithTopic(castSig)).
					Return(false, &ContractCastVerifierError{Address: emitter, Err: errors.New("short data")}).Once()
				m.trust.EXPECT().Blacklist(ctx, addr, tx).Return(nil).Once()
			},
			want: false,
		},
		{
			name: "whitelisted cast verification store failure",
			log:  logWithTopic(castSig),
			setup: func(m *validatorMocks) {
				m.trust.EXPECT().GetStatus(ctx, addr).Return(store.StatusWhitelisted, nil)
				m.cast.EXPECT().Verify(ctx, logWithTopic(castSig)).Return(false, errDBDown).Once()
			},
			wantErr: errDBDown,
		},
		{
			name: "unknown valid cast passes without whitelisting",
			log:  logWithTopic(castSig),
			setup: func(m *validatorMocks) {
				m.trust.EXPECT().GetStatus(ctx, addr).Return(store.StatusUnknown, nil)
				m.cast.EXPECT().Verify(ctx, logWithTopic(castSig)).Return(true, nil).Once()
			},
			want: true,
		},
		{
			name: "unknown invalid cast is blacklisted",
			log:  logWithTopic(castSig),
			setup: func(m *validatorMocks) {
				m.trust.EXPECT().GetStatus(ctx, addr).Return(store.StatusUnknown, nil)
				m.cast.EXPECT().Verify(ctx, logWithTopic(castSig)).Return(false, nil).Once()
				m.trust.EXPECT().Blacklist(ctx, addr, tx).Return(nil).Once()
			},
			want: false,
		},
		{
			name: "unknown neither cast nor creation is blacklisted",
			log:  logWithTopic(otherSig),
			setup: func(m *validatorMocks) {
				m.trust.EXPECT().GetStatus(ctx, addr).Return(store.StatusUnknown, nil)
				m.trust.EXPECT().Blacklist(ctx, addr, tx).Return(nil).Once()
			},
			want: false,
		},
		{
			name: "unknown anonymous event is blacklisted",
			log:  types.Log{Address: emitter, TxHash: creationTx},
			setup: func(m *validatorMocks) {
				m.trust.EXPECT().GetStatus(ctx, addr).Return(store.StatusUnknown, nil)
				m.trust.EXPECT().Blacklist(ctx, addr, tx).Return(nil).Once()
			},
			want: false,
		},
		{
			name: "unknown verified creation is whitelisted",
			log:  logWithTopic(creationSig),
			setup: func(m *validatorMocks) {
				m.trust.EXPECT().GetStatus(ctx, addr).Return(store.StatusUnknown, nil)
				m.bytecode.EXPECT().VerifyContractCreation(ctx, creationTx).Return(true, nil).Once()
				m.trust.EXPECT().Whitelist(ctx, addr, tx).Return(nil).Once()
			},
			want: true,
		},
		{
			name: "unknown deactivated creation is blacklisted",
			log:  logWithTopic(creationSig),
			setup: func(m *validatorMocks) {
				m.trust.EXPECT().GetStatus(ctx, addr).Return(store.StatusUnknown, nil)
				m.bytecode.EXPECT().VerifyContractCreation(ctx, creationTx).Return(false, nil).Once()
				m.trust.EXPECT().Blacklist(ctx, addr, tx).Return(nil).Once()
			},
			want: false,
		},
		{
			name: "unknown creation with uncatalogued bytecode is blacklisted",
			log:  logWithTopic(creationSig),
			setup: func(m *validatorMocks) {
				m.trust.EXPECT().GetStatus(ctx, addr).Return(store.StatusUnknown, nil)
				m.bytecode.EXPECT().VerifyContractCreation(ctx, creationTx).
					Return(false, &library.ContractNotFoundError{BytecodeHash: common.HexToHash("0x01")}).Once()
				m.trust.EXPECT().Blacklist(ctx, addr, tx).Return(nil).Once()
			},
			want: false,
		},
		{
			name: "unknown creation verification fails",
			log:  logWithTopic(creationSig),
			setup: func(m *validatorMocks) {
				m.trust.EXPECT().GetStatus(ctx, addr).Return(store.StatusUnknown, nil)
				m.bytecode.EXPECT().VerifyContractCreation(ctx, creationTx).Return(false, errChainDown).Once()
			},
			wantErr: errChainDown,
		},
		{
			name: "transition write fails",
			log:  logWithTopic(creationSig),
			setup: func(m *validatorMocks) {
				m.trust.EXPECT().GetStatus(ctx, addr).Return(store.StatusUnknown, nil)
				m.bytecode.EXPECT().VerifyContractCreation(ctx, creationTx).Return(true, nil).Once()
				m.trust.EXPECT().Whitelist(ctx, addr, tx).Return(errDBDown).Once()
			},
			wantErr: errDBDown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator, m := newTestValidator(t)
			tt.setup(m)

			got, err := validator.Validate(ctx, tt.log)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.False(t, got)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestEventValidator_CastCheckedBeforeCreation(t *testing.T) {
	ctx := context.Background()

	trust := storemocks.NewTrustStore(t)
	lib := librarymocks.NewLibrary(t)
	cast := mocks.NewCastVerifier(t)
	bytecode := mocks.NewBytecodeVerifier(t)

	// a topic that is both the cast and a creation signature exercises the ordering
	log := logWithTopic(castSig)
	lib.EXPECT().CastEventSigHash().Return(castSig)
	lib.EXPECT().IsKnownCreationSigHash(castSig).Return(true)

	var order []string
	trust.EXPECT().GetStatus(ctx, emitter.Hex()).Return(store.StatusUnknown, nil)
	cast.EXPECT().Verify(ctx, log).Run(func(context.Context, types.Log) {
		order = append(order, "cast")
	}).Return(false, nil)
	bytecode.EXPECT().VerifyContractCreation(ctx, creationTx).Run(func(context.Context, common.Hash) {
		order = append(order, "creation")
	}).Return(true, nil)
	trust.EXPECT().Whitelist(ctx, emitter.Hex(), creationTx.Hex()).Return(nil)

	validator := NewEventValidator(trust, lib, cast, bytecode, logger.NewNopLogger())

	valid, err := validator.Validate(ctx, log)
	require.NoError(t, err)
	require.True(t, valid)
	require.Equal(t, []string{"cast", "creation"}, order)
}
