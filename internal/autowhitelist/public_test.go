package autowhitelist

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goran-ethernal/QuorumEventGate/internal/logger"
	"github.com/goran-ethernal/QuorumEventGate/internal/registry"
	registrymocks "github.com/goran-ethernal/QuorumEventGate/internal/registry/mocks"
	storemocks "github.com/goran-ethernal/QuorumEventGate/internal/store/mocks"
	"github.com/stretchr/testify/require"
)

func TestPublicWhitelister_Run(t *testing.T) {
	ctx := context.Background()

	resolverAddr := common.HexToAddress("0x1111111111111111111111111111111111111111")
	docAddr := common.HexToAddress("0x2222222222222222222222222222222222222222")
	registryContract := "0x3333333333333333333333333333333333333333"
	errRegistry := errors.New("registry down")

	domains := []string{"resolver.eth", "documents.eth"}

	t.Run("whitelists every domain then the registry contract", func(t *testing.T) {
		resolver := registrymocks.NewResolver(t)
		trust := storemocks.NewTrustStore(t)

		var order []string
		resolver.EXPECT().ResolveAddress(ctx, registry.Namehash("resolver.eth")).Return(resolverAddr, nil)
		resolver.EXPECT().ResolveAddress(ctx, registry.Namehash("documents.eth")).Return(docAddr, nil)
		for _, addr := range []string{resolverAddr.Hex(), docAddr.Hex(), registryContract} {
			trust.EXPECT().Whitelist(ctx, addr, "").Run(func(_ context.Context, address string, _ string) {
				order = append(order, address)
			}).Return(nil).Once()
		}

		p := NewPublicWhitelister(resolver, trust, domains, registryContract, logger.NewNopLogger())
		require.NoError(t, p.Run(ctx))
		require.Equal(t, []string{resolverAddr.Hex(), docAddr.Hex(), registryContract}, order)
	})

	t.Run("no registry contract configured", func(t *testing.T) {
		resolver := registrymocks.NewResolver(t)
		trust := storemocks.NewTrustStore(t)

		resolver.EXPECT().ResolveAddress(ctx, registry.Namehash("resolver.eth")).Return(resolverAddr, nil)
		trust.EXPECT().Whitelist(ctx, resolverAddr.Hex(), "").Return(nil).Once()

		p := NewPublicWhitelister(resolver, trust, []string{"resolver.eth"}, "", logger.NewNopLogger())
		require.NoError(t, p.Run(ctx))
	})

	t.Run("resolution failure aborts the pass", func(t *testing.T) {
		resolver := registrymocks.NewResolver(t)
		trust := storemocks.NewTrustStore(t)

		resolver.EXPECT().ResolveAddress(ctx, registry.Namehash("resolver.eth")).Return(common.Address{}, errRegistry)

		p := NewPublicWhitelister(resolver, trust, domains, registryContract, logger.NewNopLogger())
		err := p.Run(ctx)
		require.ErrorIs(t, err, errRegistry)
		require.ErrorContains(t, err, "resolver.eth")
	})

	t.Run("store failure aborts the pass", func(t *testing.T) {
		resolver := registrymocks.NewResolver(t)
		trust := storemocks.NewTrustStore(t)

		resolver.EXPECT().ResolveAddress(ctx, registry.Namehash("resolver.eth")).Return(resolverAddr, nil)
		trust.EXPECT().Whitelist(ctx, resolverAddr.Hex(), "").Return(errDBWrite).Once()

		p := NewPublicWhitelister(resolver, trust, domains, registryContract, logger.NewNopLogger())
		require.ErrorIs(t, p.Run(ctx), errDBWrite)
	})
}
