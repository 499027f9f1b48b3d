package library

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Solidity appends a CBOR encoded swarm hash to compiled code. The map header
// differs when the experimental ABI encoder v2 flag is present.
var metadataMarkers = [][]byte{
	common.FromHex("a165627a7a72305820"),
	common.FromHex("a265627a7a72305820"),
}

// StripMetadata cuts code at the last metadata marker, dropping the swarm
// hash and anything appended after it such as constructor arguments. Earlier
// markers belong to embedded child contracts and are part of the code.
func StripMetadata(code []byte) []byte {
	cut := -1
	for _, marker := range metadataMarkers {
		if idx := bytes.LastIndex(code, marker); idx > cut {
			cut = idx
		}
	}
	if cut < 0 {
		return code
	}

	return code[:cut]
}

// BytecodeHash is the catalogue key of init code.
func BytecodeHash(code []byte) common.Hash {
	return crypto.Keccak256Hash(StripMetadata(code))
}
