package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-resty/resty/v2"
	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/pkg/config"
)

const cachePath = "/v0/registry/cache"

// Resolver maps an ENS node to the address it currently resolves to.
type Resolver interface {
	ResolveAddress(ctx context.Context, node common.Hash) (common.Address, error)
	Ping(ctx context.Context) error
}

// CompanyRegistryError is returned when the registry cannot resolve a node.
type CompanyRegistryError struct {
	Node   common.Hash
	Reason string
	Err    error
}

func (e *CompanyRegistryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("company registry lookup of %s failed: %s: %v", e.Node.Hex(), e.Reason, e.Err)
	}
	return fmt.Sprintf("company registry lookup of %s failed: %s", e.Node.Hex(), e.Reason)
}

func (e *CompanyRegistryError) Unwrap() error {
	return e.Err
}

type cacheEntry struct {
	Address string `json:"address"`
}

// Compile-time check to ensure Client implements Resolver interface.
var _ Resolver = (*Client)(nil)

// Client queries the company registry cache over HTTP.
type Client struct {
	http       *resty.Client
	healthPath string
	log        *logger.Logger
}

func NewClient(cfg config.RegistryConfig, log *logger.Logger) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
			SetTimeout(cfg.Timeout.Duration).
			SetHeader("Accept", "application/json"),
		healthPath: cfg.HealthPath,
		log:        log,
	}
}

func (c *Client) ResolveAddress(ctx context.Context, node common.Hash) (common.Address, error) {
	var entries []cacheEntry

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("companyData", companyData(node)).
		SetResult(&entries).
		Get(cachePath)
	if err != nil {
		return common.Address{}, &CompanyRegistryError{Node: node, Reason: "request failed", Err: err}
	}
	if res.IsError() {
		return common.Address{}, &CompanyRegistryError{Node: node, Reason: "unexpected status " + res.Status()}
	}

	if len(entries) == 0 {
		return common.Address{}, &CompanyRegistryError{Node: node, Reason: "no registry entry"}
	}
	if entries[0].Address == "" {
		return common.Address{}, &CompanyRegistryError{Node: node, Reason: "registry entry has no address"}
	}
	if !common.IsHexAddress(entries[0].Address) {
		return common.Address{}, &CompanyRegistryError{
			Node:   node,
			Reason: fmt.Sprintf("registry entry address %q is invalid", entries[0].Address),
		}
	}

	address := common.HexToAddress(entries[0].Address)
	c.log.Debugw("node resolved", "node", node.Hex(), "address", address.Hex())

	return address, nil
}

func (c *Client) Ping(ctx context.Context) error {
	res, err := c.http.R().SetContext(ctx).Get(c.healthPath)
	if err != nil {
		return err
	}
	if res.IsError() {
		return fmt.Errorf("registry health check returned %s", res.Status())
	}

	return nil
}

func companyData(node common.Hash) string {
	return fmt.Sprintf(`{"node" : %q }`, node.Hex())
}
