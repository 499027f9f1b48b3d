package library

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

//go:embed catalog/contracts.json
var defaultCatalog []byte

// Catalog is the static description the library is built from.
type Catalog struct {
	// CastEvent is a single ABI event fragment.
	CastEvent json.RawMessage   `json:"castEvent"`
	Contracts []CatalogContract `json:"contracts"`
}

type CatalogContract struct {
	Name     string           `json:"name"`
	Versions []CatalogVersion `json:"versions"`
}

type CatalogVersion struct {
	Version   string `json:"version"`
	Activated bool   `json:"activated"`
	// CreationEvent names the ABI event emitted from the constructor.
	CreationEvent string          `json:"creationEvent"`
	ABI           json.RawMessage `json:"abi"`
	Bytecode      hexutil.Bytes   `json:"bytecode"`
}

// LoadCatalog reads the catalog at path, or the embedded one when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	data := defaultCatalog
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read contract catalog: %w", err)
		}
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse contract catalog: %w", err)
	}

	return &catalog, nil
}
