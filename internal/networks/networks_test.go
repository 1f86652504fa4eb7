package networks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry(map[string]string{
		"solana-devnet": "https://api.devnet.solana.com",
	})

	n := r.Lookup("solana-devnet")
	assert.True(t, n.OnChain)
	assert.Equal(t, "https://api.devnet.solana.com", n.RPCEndpoint)

	// Case-insensitive match
	assert.True(t, r.IsOnChain("Solana-Devnet"))

	// Unknown codes are valid off-chain networks
	n = r.Lookup("internal-eur")
	assert.False(t, n.OnChain)
	assert.False(t, r.IsOnChain("internal-eur"))
}

func TestRegistryRPCEndpoint(t *testing.T) {
	r := NewRegistry(map[string]string{"solana-mainnet": "https://api.mainnet-beta.solana.com"})

	url, err := r.RPCEndpoint("solana-mainnet")
	assert.NoError(t, err)
	assert.Equal(t, "https://api.mainnet-beta.solana.com", url)

	_, err = r.RPCEndpoint("bitcoin")
	assert.Error(t, err)
}

func TestParseEndpoints(t *testing.T) {
	endpoints, err := ParseEndpoints("solana-devnet=https://api.devnet.solana.com, solana-mainnet=https://api.mainnet-beta.solana.com")
	assert.NoError(t, err)
	assert.Len(t, endpoints, 2)
	assert.Equal(t, "https://api.devnet.solana.com", endpoints["solana-devnet"])

	endpoints, err = ParseEndpoints("")
	assert.NoError(t, err)
	assert.Empty(t, endpoints)

	_, err = ParseEndpoints("solana-devnet")
	assert.Error(t, err)

	_, err = ParseEndpoints("=https://api.devnet.solana.com")
	assert.Error(t, err)
}
