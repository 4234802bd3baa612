package identity

import (
	"crypto/ed25519"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/hkdf"

	"github.com/ChaosChain/fin-studio-sub002/internal/provenance"
)

// #region constants

const (
	// minSeedSize is the minimum acceptable module seed length.
	minSeedSize = 32

	// addressVersion prefixes every settlement address before encoding.
	addressVersion = 0x17

	keyDerivationInfo = "fin-studio/contributor-signing-key/v1"
)

// ErrSeedTooShort is returned when the module seed is under 32 bytes.
var ErrSeedTooShort = errors.New("signer seed must be at least 32 bytes")

// #endregion constants

// #region signer

// Signer derives per-contributor ed25519 keys from a module seed via
// HKDF-SHA256 and signs contribution nodes with them. Derived keys and
// settlement addresses are cached; derivation for a given contributor is
// deterministic for the lifetime of the seed.
type Signer struct {
	seed []byte

	mu    sync.RWMutex
	keys  map[string]ed25519.PrivateKey
	addrs map[string]string
}

// NewSigner creates a signer over a securely stored module seed. The seed
// is the only secret; everything else is derived.
func NewSigner(seed []byte) (*Signer, error) {
	if len(seed) < minSeedSize {
		return nil, ErrSeedTooShort
	}
	s := &Signer{
		seed:  append([]byte(nil), seed...),
		keys:  make(map[string]ed25519.PrivateKey),
		addrs: make(map[string]string),
	}
	return s, nil
}

// #endregion signer

// #region key-derivation

// key returns the contributor's signing key, deriving and caching it on
// first use.
func (s *Signer) key(contributorID string) (ed25519.PrivateKey, error) {
	s.mu.RLock()
	k, ok := s.keys[contributorID]
	s.mu.RUnlock()
	if ok {
		return k, nil
	}

	kdf := hkdf.New(sha256.New, s.seed, nil, []byte(keyDerivationInfo+"\x00"+contributorID))
	kseed := make([]byte, ed25519.SeedSize)
	if _, err := io.ReadFull(kdf, kseed); err != nil {
		return nil, fmt.Errorf("derive key for %s: %w", contributorID, err)
	}
	k = ed25519.NewKeyFromSeed(kseed)

	s.mu.Lock()
	s.keys[contributorID] = k
	s.mu.Unlock()
	return k, nil
}

// PublicKey returns the contributor's signature-verification key.
func (s *Signer) PublicKey(contributorID string) (ed25519.PublicKey, error) {
	k, err := s.key(contributorID)
	if err != nil {
		return nil, err
	}
	return k.Public().(ed25519.PublicKey), nil
}

// #endregion key-derivation

// #region sign

// SignNode signs the node's canonical byte surface with the contributor's
// derived key and returns the signature.
func (s *Signer) SignNode(node provenance.ContributionNode) ([]byte, error) {
	if node.ContributorID == "" {
		return nil, errors.New("sign node: contributor id is required")
	}
	k, err := s.key(node.ContributorID)
	if err != nil {
		return nil, err
	}
	return ed25519.Sign(k, node.SigningBytes()), nil
}

// #endregion sign

// #region resolve-address

// ResolveAddress returns the contributor's stable settlement address:
// a base58-encoded, checksummed hash of the derived public key. The
// address is derived once and cached.
func (s *Signer) ResolveAddress(contributorID string) (string, error) {
	s.mu.RLock()
	addr, ok := s.addrs[contributorID]
	s.mu.RUnlock()
	if ok {
		return addr, nil
	}

	pub, err := s.PublicKey(contributorID)
	if err != nil {
		return "", err
	}

	h := sha256.Sum256(pub)
	payload := make([]byte, 0, 25)
	payload = append(payload, addressVersion)
	payload = append(payload, h[:20]...)
	payload = append(payload, checksum(payload)...)
	addr = base58.Encode(payload)

	s.mu.Lock()
	s.addrs[contributorID] = addr
	s.mu.Unlock()
	return addr, nil
}

// checksum is the first four bytes of a double SHA-256 over the payload.
func checksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:4]
}

// #endregion resolve-address
