package chain

import (
	"crypto/ecdsa"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// KeyResolver turns a network's opaque signing-key reference into a usable
// private key. The faucet never stores keys in its own config.
type KeyResolver interface {
	Resolve(ref string) (*ecdsa.PrivateKey, error)
}

const defaultKeyEnvPrefix = "FAUCET_PRIVATE_KEY_"

// EnvKeyResolver reads hex-encoded keys from FAUCET_PRIVATE_KEY_<REF>
// environment variables.
type EnvKeyResolver struct {
	prefix string
}

func NewEnvKeyResolver() *EnvKeyResolver {
	return &EnvKeyResolver{prefix: defaultKeyEnvPrefix}
}

// NewEnvKeyResolverWithPrefix is for tests that need an isolated namespace.
func NewEnvKeyResolverWithPrefix(prefix string) *EnvKeyResolver {
	return &EnvKeyResolver{prefix: prefix}
}

func (r *EnvKeyResolver) Resolve(ref string) (*ecdsa.PrivateKey, error) {
	if ref == "" {
		return nil, fmt.Errorf("%w: network has no signing key reference", ErrSigningKeyMissing)
	}
	raw := os.Getenv(r.prefix + ref)
	if raw == "" {
		return nil, fmt.Errorf("%w: %s%s not set", ErrSigningKeyMissing, r.prefix, ref)
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(raw), "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s%s is not a valid private key", ErrSigningKeyMissing, r.prefix, ref)
	}
	return key, nil
}
