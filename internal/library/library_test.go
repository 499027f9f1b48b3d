package library

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	pkglibrary "github.com/goran-ethernal/QuorumEventGate/pkg/library"
	"github.com/stretchr/testify/require"
)

func newDefaultLibrary(t *testing.T) *Library {
	t.Helper()

	catalog, err := LoadCatalog("")
	require.NoError(t, err)

	lib, err := New(catalog, logger.NewNopLogger())
	require.NoError(t, err)

	return lib
}

func TestLibrary_DefaultVersion(t *testing.T) {
	lib := newDefaultLibrary(t)

	latest, err := lib.Bytecode("DocumentRegistry", "")
	require.NoError(t, err)

	explicit, err := lib.Bytecode("DocumentRegistry", "1.1.0")
	require.NoError(t, err)
	require.Equal(t, explicit, latest)

	old, err := lib.Bytecode("DocumentRegistry", "1.0.0")
	require.NoError(t, err)
	require.NotEqual(t, old, latest)
}

func TestLibrary_ContractInfo(t *testing.T) {
	lib := newDefaultLibrary(t)

	tests := []struct {
		name      string
		contract  string
		version   string
		activated bool
	}{
		{name: "activated", contract: "DocumentRegistry", version: "1.1.0", activated: true},
		{name: "deactivated", contract: "DocumentRegistry", version: "1.0.0", activated: false},
		{name: "other contract", contract: "LetterOfCredit", version: "1.0.0", activated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := lib.Bytecode(tt.contract, tt.version)
			require.NoError(t, err)

			// deployment input carries constructor arguments after the metadata
			deployed := append(code, common.LeftPadBytes([]byte{0x01}, 32)...)

			info, err := lib.ContractInfo(BytecodeHash(deployed))
			require.NoError(t, err)
			require.Equal(t, &pkglibrary.ContractInfo{
				Name:      tt.contract,
				Version:   tt.version,
				Activated: tt.activated,
			}, info)
		})
	}

	_, err := lib.ContractInfo(common.HexToHash("0x01"))
	var notFound *pkglibrary.ContractNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestLibrary_Signatures(t *testing.T) {
	lib := newDefaultLibrary(t)

	require.Equal(t, crypto.Keccak256Hash([]byte("CastEvent(string,address,int8)")), lib.CastEventSigHash())
	require.Equal(t, "CastEvent", lib.CastEvent().Name)

	lcCreated := crypto.Keccak256Hash([]byte("LetterOfCreditCreated(address,address,string)"))
	sig, err := lib.CreationEventSigHash("LetterOfCredit", "")
	require.NoError(t, err)
	require.Equal(t, lcCreated, sig)

	require.True(t, lib.IsKnownCreationSigHash(lcCreated))
	require.False(t, lib.IsKnownCreationSigHash(lib.CastEventSigHash()))

	contractABI, err := lib.ABI("LetterOfCredit", "1.0.0")
	require.NoError(t, err)
	require.Contains(t, contractABI.Events, "Transition")
}

func TestLibrary_NotFound(t *testing.T) {
	lib := newDefaultLibrary(t)

	tests := []struct {
		name    string
		call    func() error
		wantMsg string
	}{
		{
			name:    "unknown contract",
			call:    func() error { _, err := lib.Bytecode("Nope", ""); return err },
			wantMsg: "contract Nope not found",
		},
		{
			name:    "unknown version",
			call:    func() error { _, err := lib.ABI("LetterOfCredit", "9.9.9"); return err },
			wantMsg: "contract LetterOfCredit version 9.9.9 not found",
		},
		{
			name:    "unknown creation sig version",
			call:    func() error { _, err := lib.CreationEventSigHash("KomgoOnboarder", "0.1.0"); return err },
			wantMsg: "version 0.1.0 not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()

			var notFound *pkglibrary.ContractNotFoundError
			require.ErrorAs(t, err, &notFound)
			require.ErrorContains(t, err, tt.wantMsg)
		})
	}
}

func TestNew_InvalidCatalog(t *testing.T) {
	castEvent := json.RawMessage(`{"type":"event","name":"CastEvent","inputs":[{"name":"at","type":"address"}]}`)
	abiJSON := json.RawMessage(`[{"type":"event","name":"Created","inputs":[]}]`)

	version := func(v string, code string) CatalogVersion {
		return CatalogVersion{Version: v, CreationEvent: "Created", ABI: abiJSON, Bytecode: common.FromHex(code)}
	}

	tests := []struct {
		name    string
		catalog Catalog
		wantErr string
	}{
		{
			name:    "missing cast event",
			catalog: Catalog{},
			wantErr: "cast event",
		},
		{
			name: "bad version",
			catalog: Catalog{CastEvent: castEvent, Contracts: []CatalogContract{
				{Name: "A", Versions: []CatalogVersion{version("latest", "0x01")}},
			}},
			wantErr: "invalid version",
		},
		{
			name: "unknown creation event",
			catalog: Catalog{CastEvent: castEvent, Contracts: []CatalogContract{
				{Name: "A", Versions: []CatalogVersion{{Version: "1.0.0", CreationEvent: "Nope", ABI: abiJSON, Bytecode: []byte{1}}}},
			}},
			wantErr: "creation event",
		},
		{
			name: "duplicate bytecode",
			catalog: Catalog{CastEvent: castEvent, Contracts: []CatalogContract{
				{Name: "A", Versions: []CatalogVersion{version("1.0.0", "0x01")}},
				{Name: "B", Versions: []CatalogVersion{version("1.0.0", "0x01")}},
			}},
			wantErr: "same bytecode",
		},
		{
			name: "no versions",
			catalog: Catalog{CastEvent: castEvent, Contracts: []CatalogContract{
				{Name: "A"},
			}},
			wantErr: "no versions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(&tt.catalog, logger.NewNopLogger())
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadCatalog_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, defaultCatalog, 0o600))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, catalog.Contracts, 3)

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestLibrary_SemverOrdering(t *testing.T) {
	castEvent := json.RawMessage(`{"type":"event","name":"CastEvent","inputs":[{"name":"at","type":"address"}]}`)
	abiJSON := json.RawMessage(`[{"type":"event","name":"Created","inputs":[]}]`)

	catalog := &Catalog{CastEvent: castEvent, Contracts: []CatalogContract{{
		Name: "A",
		Versions: []CatalogVersion{
			{Version: "1.10.0", CreationEvent: "Created", ABI: abiJSON, Bytecode: []byte{0x10}},
			{Version: "1.9.0", CreationEvent: "Created", ABI: abiJSON, Bytecode: []byte{0x09}},
		},
	}}}

	lib, err := New(catalog, logger.NewNopLogger())
	require.NoError(t, err)

	code, err := lib.Bytecode("A", "")
	require.NoError(t, err)
	require.Equal(t, []byte{0x10}, code)
}
