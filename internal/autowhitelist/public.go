package autowhitelist

import (
	"context"
	"fmt"

	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/internal/registry"
	"github.com/goran-ethernal/QuorumEventGate/pkg/store"
)

// PublicWhitelister trusts the infrastructure contracts behind a fixed list
// of ENS domains, plus the ENS registry contract itself.
type PublicWhitelister struct {
	resolver         registry.Resolver
	trust            store.TrustStore
	domains          []string
	registryContract string
	log              *logger.Logger
}

func NewPublicWhitelister(
	resolver registry.Resolver,
	trust store.TrustStore,
	domains []string,
	registryContract string,
	log *logger.Logger,
) *PublicWhitelister {
	return &PublicWhitelister{
		resolver:         resolver,
		trust:            trust,
		domains:          domains,
		registryContract: registryContract,
		log:              log,
	}
}

// Run stops at the first failure; every write is an idempotent upsert so a rerun is safe.
func (p *PublicWhitelister) Run(ctx context.Context) error {
	for _, domain := range p.domains {
		node := registry.Namehash(domain)

		address, err := p.resolver.ResolveAddress(ctx, node)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", domain, err)
		}

		if err := p.trust.Whitelist(ctx, address.Hex(), ""); err != nil {
			return fmt.Errorf("whitelist %s (%s): %w", domain, address.Hex(), err)
		}

		WhitelistedInc(sourcePublic)
		p.log.Infow("public contract whitelisted", "domain", domain, "address", address.Hex())
	}

	if p.registryContract != "" {
		if err := p.trust.Whitelist(ctx, p.registryContract, ""); err != nil {
			return fmt.Errorf("whitelist registry contract %s: %w", p.registryContract, err)
		}

		WhitelistedInc(sourcePublic)
		p.log.Infow("registry contract whitelisted", "address", p.registryContract)
	}

	return nil
}
