package validation

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	storemocks "github.com/goran-ethernal/QuorumEventGate/internal/store/mocks"
	"github.com/goran-ethernal/QuorumEventGate/pkg/store"
	"github.com/stretchr/testify/require"
)

func TestTrustCastVerifier_Verify(t *testing.T) {
	ctx := context.Background()
	lib := newCatalogLibrary(t)
	event := lib.CastEvent()

	target := common.HexToAddress("0xA1B2c3D4e5F60718293a4B5c6D7e8F9012345678")
	data, err := event.Inputs.NonIndexed().Pack("DocumentRegistry", target, int8(1))
	require.NoError(t, err)

	castLog := types.Log{
		Address: emitter,
		Topics:  []common.Hash{event.ID},
		Data:    data,
		TxHash:  creationTx,
	}

	tests := []struct {
		name      string
		log       types.Log
		status    store.TrustStatus
		statusErr error
		want      bool
		malformed bool
	}{
		{name: "whitelisted target", log: castLog, status: store.StatusWhitelisted, want: true},
		{name: "unknown target", log: castLog, status: store.StatusUnknown, want: false},
		{name: "blacklisted target", log: castLog, status: store.StatusBlacklisted, want: false},
		{name: "store failure", log: castLog, statusErr: errDBDown},
		{
			name:      "truncated data",
			log:       types.Log{Address: emitter, Topics: []common.Hash{event.ID}, Data: data[:40], TxHash: creationTx},
			malformed: true,
		},
		{
			name:      "no data",
			log:       types.Log{Address: emitter, Topics: []common.Hash{event.ID}, TxHash: creationTx},
			malformed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trust := storemocks.NewTrustStore(t)
			if !tt.malformed {
				trust.EXPECT().GetStatus(ctx, target.Hex()).Return(tt.status, tt.statusErr)
			}

			verifier := NewCastVerifier(trust, lib, logger.NewNopLogger())

			got, err := verifier.Verify(ctx, tt.log)
			switch {
			case tt.malformed:
				var castErr *ContractCastVerifierError
				require.ErrorAs(t, err, &castErr)
				require.Equal(t, emitter, castErr.Address)
			case tt.statusErr != nil:
				require.ErrorIs(t, err, tt.statusErr)
			default:
				require.NoError(t, err)
				require.Equal(t, tt.want, got)
			}
		})
	}
}
