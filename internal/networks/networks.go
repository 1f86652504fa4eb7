package networks

import (
	"fmt"
	"strings"
)

// Network describes one settlement network known to the service. Networks
// with an RPC endpoint settle on chain; all other networks settle purely in
// the internal ledger.
type Network struct {
	Code        string
	OnChain     bool
	RPCEndpoint string
}

// Registry is the closed network-capability lookup, built once at startup.
type Registry struct {
	byCode map[string]Network
}

// NewRegistry builds a registry from a network-code → RPC-endpoint mapping.
// Codes are matched case-insensitively.
func NewRegistry(rpcEndpoints map[string]string) *Registry {
	byCode := make(map[string]Network, len(rpcEndpoints))
	for code, endpoint := range rpcEndpoints {
		key := strings.ToLower(strings.TrimSpace(code))
		byCode[key] = Network{
			Code:        key,
			OnChain:     true,
			RPCEndpoint: strings.TrimSpace(endpoint),
		}
	}
	return &Registry{byCode: byCode}
}

// Lookup returns the network capabilities for a code. Unknown codes are
// valid off-chain networks.
func (r *Registry) Lookup(code string) Network {
	key := strings.ToLower(strings.TrimSpace(code))
	if n, ok := r.byCode[key]; ok {
		return n
	}
	return Network{Code: key}
}

// IsOnChain reports whether withdrawals on this network go through the
// blockchain gateway.
func (r *Registry) IsOnChain(code string) bool {
	return r.Lookup(code).OnChain
}

// RPCEndpoint returns the chain RPC endpoint for an on-chain network.
func (r *Registry) RPCEndpoint(code string) (string, error) {
	n := r.Lookup(code)
	if !n.OnChain {
		return "", fmt.Errorf("unknown on-chain network %q", code)
	}
	return n.RPCEndpoint, nil
}

// ParseEndpoints parses a "code=url,code=url" env value into a mapping
// usable by NewRegistry. Empty input yields an empty map.
func ParseEndpoints(raw string) (map[string]string, error) {
	endpoints := make(map[string]string)
	if strings.TrimSpace(raw) == "" {
		return endpoints, nil
	}
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
			return nil, fmt.Errorf("invalid network endpoint pair %q", pair)
		}
		endpoints[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return endpoints, nil
}
