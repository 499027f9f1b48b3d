package library

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ContractInfo identifies a catalogued contract version.
type ContractInfo struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Activated bool   `json:"activated"`
}

// Library is the read-only contract reference library.
// An empty version selects the contract's default (highest) version.
type Library interface {
	Bytecode(name, version string) ([]byte, error)
	ABI(name, version string) (*abi.ABI, error)
	CreationEventSigHash(name, version string) (common.Hash, error)

	// IsKnownCreationSigHash reports whether hash is the creation event of any catalogued version.
	IsKnownCreationSigHash(hash common.Hash) bool

	// ContractInfo looks a version up by the keccak256 of its metadata-stripped init code.
	ContractInfo(bytecodeHash common.Hash) (*ContractInfo, error)

	CastEventSigHash() common.Hash
	CastEvent() abi.Event
}

// ContractNotFoundError is returned for unknown names, versions or bytecode hashes.
type ContractNotFoundError struct {
	Name         string
	Version      string
	BytecodeHash common.Hash
}

func (e *ContractNotFoundError) Error() string {
	switch {
	case e.BytecodeHash != (common.Hash{}):
		return fmt.Sprintf("no contract with bytecode hash %s", e.BytecodeHash.Hex())
	case e.Version != "":
		return fmt.Sprintf("contract %s version %s not found", e.Name, e.Version)
	default:
		return fmt.Sprintf("contract %s not found", e.Name)
	}
}
