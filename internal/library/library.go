// Package library builds the in-memory contract reference library.
package library

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	pkglibrary "github.com/goran-ethernal/QuorumEventGate/pkg/library"
	"golang.org/x/mod/semver"
)

// Compile-time check to ensure Library implements pkglibrary.Library interface.
var _ pkglibrary.Library = (*Library)(nil)

type versionEntry struct {
	info         pkglibrary.ContractInfo
	abi          *abi.ABI
	bytecode     []byte
	bytecodeHash common.Hash
	creationSig  common.Hash
}

type contractEntry struct {
	defaultVersion string
	versions       map[string]*versionEntry
}

// Library is immutable once built and safe for concurrent use.
type Library struct {
	contracts    map[string]*contractEntry
	byHash       map[common.Hash]*versionEntry
	creationSigs map[common.Hash]struct{}
	castEvent    abi.Event
}

// New indexes catalog. Versions must be semantic versions; the highest one is the default.
func New(catalog *Catalog, log *logger.Logger) (*Library, error) {
	castEvent, err := parseEvent(catalog.CastEvent)
	if err != nil {
		return nil, fmt.Errorf("cast event: %w", err)
	}

	lib := &Library{
		contracts:    make(map[string]*contractEntry, len(catalog.Contracts)),
		byHash:       make(map[common.Hash]*versionEntry),
		creationSigs: make(map[common.Hash]struct{}),
		castEvent:    castEvent,
	}

	for _, contract := range catalog.Contracts {
		if contract.Name == "" {
			return nil, errors.New("contract without name in catalog")
		}
		if _, dup := lib.contracts[contract.Name]; dup {
			return nil, fmt.Errorf("contract %s listed twice", contract.Name)
		}

		entry := &contractEntry{versions: make(map[string]*versionEntry, len(contract.Versions))}

		for _, version := range contract.Versions {
			v, err := newVersionEntry(contract.Name, version)
			if err != nil {
				return nil, err
			}

			if other, dup := lib.byHash[v.bytecodeHash]; dup {
				return nil, fmt.Errorf("%s %s has the same bytecode as %s %s",
					contract.Name, version.Version, other.info.Name, other.info.Version)
			}

			entry.versions[version.Version] = v
			lib.byHash[v.bytecodeHash] = v
			lib.creationSigs[v.creationSig] = struct{}{}

			if entry.defaultVersion == "" ||
				semver.Compare(canonical(version.Version), canonical(entry.defaultVersion)) > 0 {
				entry.defaultVersion = version.Version
			}
		}

		if entry.defaultVersion == "" {
			return nil, fmt.Errorf("contract %s has no versions", contract.Name)
		}

		lib.contracts[contract.Name] = entry
	}

	log.Infow("contract library loaded",
		"contracts", len(lib.contracts),
		"versions", len(lib.byHash),
		"castEvent", castEvent.Sig)

	return lib, nil
}

func newVersionEntry(name string, version CatalogVersion) (*versionEntry, error) {
	if !semver.IsValid(canonical(version.Version)) {
		return nil, fmt.Errorf("contract %s: invalid version %q", name, version.Version)
	}
	if len(version.Bytecode) == 0 {
		return nil, fmt.Errorf("contract %s %s: empty bytecode", name, version.Version)
	}

	parsed, err := abi.JSON(bytes.NewReader(version.ABI))
	if err != nil {
		return nil, fmt.Errorf("contract %s %s: invalid abi: %w", name, version.Version, err)
	}

	creation, ok := parsed.Events[version.CreationEvent]
	if !ok {
		return nil, fmt.Errorf("contract %s %s: creation event %q not in abi", name, version.Version, version.CreationEvent)
	}

	return &versionEntry{
		info:         pkglibrary.ContractInfo{Name: name, Version: version.Version, Activated: version.Activated},
		abi:          &parsed,
		bytecode:     version.Bytecode,
		bytecodeHash: BytecodeHash(version.Bytecode),
		creationSig:  creation.ID,
	}, nil
}

func parseEvent(fragment []byte) (abi.Event, error) {
	if len(bytes.TrimSpace(fragment)) == 0 {
		return abi.Event{}, errors.New("missing")
	}

	parsed, err := abi.JSON(bytes.NewReader(append(append([]byte("["), fragment...), ']')))
	if err != nil {
		return abi.Event{}, err
	}
	if len(parsed.Events) != 1 {
		return abi.Event{}, fmt.Errorf("expected exactly one event, got %d", len(parsed.Events))
	}

	for _, event := range parsed.Events {
		return event, nil
	}

	return abi.Event{}, nil
}

// canonical adds the "v" prefix semver expects.
func canonical(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

func (l *Library) lookup(name, version string) (*versionEntry, error) {
	contract, ok := l.contracts[name]
	if !ok {
		return nil, &pkglibrary.ContractNotFoundError{Name: name, Version: version}
	}

	if version == "" {
		version = contract.defaultVersion
	}

	entry, ok := contract.versions[version]
	if !ok {
		return nil, &pkglibrary.ContractNotFoundError{Name: name, Version: version}
	}

	return entry, nil
}

func (l *Library) Bytecode(name, version string) ([]byte, error) {
	entry, err := l.lookup(name, version)
	if err != nil {
		return nil, err
	}

	return bytes.Clone(entry.bytecode), nil
}

func (l *Library) ABI(name, version string) (*abi.ABI, error) {
	entry, err := l.lookup(name, version)
	if err != nil {
		return nil, err
	}

	return entry.abi, nil
}

func (l *Library) CreationEventSigHash(name, version string) (common.Hash, error) {
	entry, err := l.lookup(name, version)
	if err != nil {
		return common.Hash{}, err
	}

	return entry.creationSig, nil
}

func (l *Library) IsKnownCreationSigHash(hash common.Hash) bool {
	_, ok := l.creationSigs[hash]
	return ok
}

func (l *Library) ContractInfo(bytecodeHash common.Hash) (*pkglibrary.ContractInfo, error) {
	entry, ok := l.byHash[bytecodeHash]
	if !ok {
		return nil, &pkglibrary.ContractNotFoundError{BytecodeHash: bytecodeHash}
	}

	info := entry.info
	return &info, nil
}

func (l *Library) CastEventSigHash() common.Hash {
	return l.castEvent.ID
}

func (l *Library) CastEvent() abi.Event {
	return l.castEvent
}
