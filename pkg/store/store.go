package store

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// TrustStatus is the classification of a chain address.
// The zero value is Unknown: the address has never been classified.
type TrustStatus string

const (
	StatusUnknown     TrustStatus = ""
	StatusWhitelisted TrustStatus = "Whitelisted"
	StatusBlacklisted TrustStatus = "Blacklisted"
)

func (s TrustStatus) String() string {
	if s == StatusUnknown {
		return "Unknown"
	}
	return string(s)
}

// Cursor markers stored in place of a transaction hash.
const (
	// EmptyBlockMarker marks a block that held no transactions.
	EmptyBlockMarker = "empty"
	// SeedMarker is the transaction hash of the first-boot cursor.
	SeedMarker = "hash"
)

// TrustRecord is the persisted classification of one address.
type TrustRecord struct {
	Address common.Address `json:"address"`
	Status  TrustStatus    `json:"status"`
	// TxHash is the transaction that caused the classification, empty for
	// addresses trusted during the public bootstrap.
	TxHash    string `json:"txHash,omitempty"`
	UpdatedAt int64  `json:"updatedAt"`
}

// Cursor is the durable position of the last processed log.
type Cursor struct {
	BlockNumber     uint64 `json:"blockNumber"`
	TransactionHash string `json:"transactionHash"`
	LogIndex        uint64 `json:"logIndex"`
}

// TrustStore keeps the trust classification of addresses.
// Addresses are accepted in any case and normalised to their checksum form;
// an invalid address fails with InvalidAddressError before any I/O.
type TrustStore interface {
	// GetStatus returns StatusUnknown for addresses never classified.
	GetStatus(ctx context.Context, address string) (TrustStatus, error)
	// GetRecord returns nil for addresses never classified.
	GetRecord(ctx context.Context, address string) (*TrustRecord, error)
	// Whitelist upserts the record; txHash may be empty.
	Whitelist(ctx context.Context, address string, txHash string) error
	// Blacklist upserts the record; txHash may be empty.
	Blacklist(ctx context.Context, address string, txHash string) error
}

// ProgressStore keeps the single processing cursor.
type ProgressStore interface {
	// GetLast returns nil when no cursor was ever saved.
	GetLast(ctx context.Context) (*Cursor, error)
	Save(ctx context.Context, blockNumber uint64, txHash string, logIndex uint64) error
}

// RangeStore keeps the block range the private auto-whitelister still has to scan.
type RangeStore interface {
	// GetStart returns 0 when never set.
	GetStart(ctx context.Context) (uint64, error)
	// GetStop returns nil when never set. A negative stop means there is nothing to scan.
	GetStop(ctx context.Context) (*int64, error)
	SetStart(ctx context.Context, start uint64) error
	// SetStop fails with StopAlreadySetError if a stop is already stored.
	SetStop(ctx context.Context, stop int64) error
}

// Store is a persistence backend serving all three documents.
type Store interface {
	TrustStore
	ProgressStore
	RangeStore

	Ping(ctx context.Context) error
	Close() error
}

// NormalizeAddress returns the EIP-55 checksummed form of address.
// All lower case and all upper case hex are accepted as is; mixed case must be a valid checksum.
func NormalizeAddress(address string) (common.Address, error) {
	if !common.IsHexAddress(address) {
		return common.Address{}, &InvalidAddressError{Address: address}
	}

	addr := common.HexToAddress(address)

	body := address
	if len(body) >= 2 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X') {
		body = body[2:]
	}
	if isMixedCase(body) && addr.Hex()[2:] != body {
		return common.Address{}, &InvalidAddressError{Address: address, BadChecksum: true}
	}

	return addr, nil
}

func isMixedCase(s string) bool {
	var lower, upper bool
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'f':
			lower = true
		case c >= 'A' && c <= 'F':
			upper = true
		}
	}
	return lower && upper
}
