package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"meetspace/internal/domain"
)

// API key shape: <namespace><KeySecretLen symbols from KeyAlphabet>.
const (
	KeyPrefixLen = 8
	KeySecretLen = 32
	KeyAlphabet  = "abcdefghijklmnopqrstuvwxyz0123456789"
)

type keyGenerator struct {
	namespace string
}

// NewKeyGenerator returns a KeyGenerator whose keys start with namespace
// (e.g. "ms_live_"). The lookup prefix is the namespace plus the first
// KeyPrefixLen secret symbols.
func NewKeyGenerator(namespace string) domain.KeyGenerator {
	return &keyGenerator{namespace: namespace}
}

func (g *keyGenerator) Generate() (string, string, error) {
	secret, err := randomString(KeySecretLen)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate api key: %w", err)
	}
	key := g.namespace + secret
	prefix, _ := g.Prefix(key)
	return key, prefix, nil
}

func (g *keyGenerator) Prefix(key string) (string, bool) {
	n := len(g.namespace) + KeyPrefixLen
	if len(key) < n {
		return "", false
	}
	return key[:n], true
}

// randomString draws n symbols uniformly from KeyAlphabet using crypto/rand.
func randomString(n int) (string, error) {
	max := big.NewInt(int64(len(KeyAlphabet)))
	b := make([]byte, n)
	for i := range b {
		v, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = KeyAlphabet[v.Int64()]
	}
	return string(b), nil
}
