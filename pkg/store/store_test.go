package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeAddress(t *testing.T) {
	const checksummed = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

	tests := []struct {
		name        string
		input       string
		want        string
		badChecksum bool
		wantErr     bool
	}{
		{name: "checksummed", input: checksummed, want: checksummed},
		{name: "lower case", input: "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", want: checksummed},
		{name: "upper case body", input: "0x5AAEB6053F3E94C9B9A09F33669435E7EF1BEAED", want: checksummed},
		{name: "without prefix", input: "5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", want: checksummed},
		{name: "bad checksum", input: "0x5AAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", wantErr: true, badChecksum: true},
		{name: "too short", input: "0x1234", wantErr: true},
		{name: "not hex", input: "0xzzzeb6053f3e94c9b9a09f33669435e7ef1beaed", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeAddress(tt.input)
			if tt.wantErr {
				var invalid *InvalidAddressError
				require.ErrorAs(t, err, &invalid)
				require.Equal(t, tt.input, invalid.Address)
				require.Equal(t, tt.badChecksum, invalid.BadChecksum)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got.Hex())
		})
	}
}

func TestTrustStatus_String(t *testing.T) {
	require.Equal(t, "Unknown", StatusUnknown.String())
	require.Equal(t, "Whitelisted", StatusWhitelisted.String())
	require.Equal(t, "Blacklisted", StatusBlacklisted.String())
}

func TestDatabaseError(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := NewDatabaseError("save progress", KindConnection, cause)

	require.ErrorIs(t, err, cause)
	require.True(t, IsConnectionError(err))
	require.Contains(t, err.Error(), "save progress")

	// already classified errors keep their kind
	wrapped := NewDatabaseError("outer", KindUnknown, fmt.Errorf("ctx: %w", err))
	require.True(t, IsConnectionError(wrapped))

	require.False(t, IsConnectionError(NewDatabaseError("x", KindDuplicate, cause)))
}
