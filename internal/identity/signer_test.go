package identity

import (
	"bytes"
	"testing"
	"time"

	"github.com/mr-tron/base58"

	"github.com/ChaosChain/fin-studio-sub002/internal/provenance"
)

func testSeed() []byte {
	return bytes.Repeat([]byte{0x42}, 32)
}

func testNode() provenance.ContributionNode {
	return provenance.ContributionNode{
		ID:             "n1",
		ContributorID:  "alice",
		TaskID:         "task-a",
		Timestamp:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		ResultPayload:  "BTC momentum: bearish divergence on 4h",
		DataSourceRefs: []string{"coingecko:btc", "binance:btcusdt"},
	}
}

func TestNewSigner_ShortSeedRejected(t *testing.T) {
	if _, err := NewSigner([]byte("short")); err != ErrSeedTooShort {
		t.Errorf("got %v, want ErrSeedTooShort", err)
	}
}

func TestSignNode_Deterministic(t *testing.T) {
	s, err := NewSigner(testSeed())
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}

	node := testNode()
	sig1, err := s.SignNode(node)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	sig2, err := s.SignNode(node)
	if err != nil {
		t.Fatalf("sign again: %v", err)
	}
	if !bytes.Equal(sig1, sig2) {
		t.Error("signing the same node twice must yield the same signature")
	}
}

func TestVerifySignature_TamperedFieldInvalidates(t *testing.T) {
	s, err := NewSigner(testSeed())
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}
	ledger := provenance.NewLedger()

	node := testNode()
	node.Signature, err = s.SignNode(node)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	pub, err := s.PublicKey("alice")
	if err != nil {
		t.Fatalf("public key: %v", err)
	}

	if !ledger.VerifySignature(node, pub) {
		t.Fatal("untampered node must verify")
	}

	tests := []struct {
		name   string
		mutate func(n *provenance.ContributionNode)
	}{
		{"payload", func(n *provenance.ContributionNode) { n.ResultPayload = "BTC momentum: bullish" }},
		{"contributor", func(n *provenance.ContributionNode) { n.ContributorID = "mallory" }},
		{"timestamp", func(n *provenance.ContributionNode) { n.Timestamp = n.Timestamp.Add(time.Second) }},
		{"refs", func(n *provenance.ContributionNode) { n.DataSourceRefs = []string{"coingecko:btc"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tampered := node
			tt.mutate(&tampered)
			if ledger.VerifySignature(tampered, pub) {
				t.Error("tampered node must not verify")
			}
		})
	}
}

func TestVerifySignature_WrongKey(t *testing.T) {
	s, _ := NewSigner(testSeed())
	ledger := provenance.NewLedger()

	node := testNode()
	node.Signature, _ = s.SignNode(node)

	bobPub, err := s.PublicKey("bob")
	if err != nil {
		t.Fatalf("public key: %v", err)
	}
	if ledger.VerifySignature(node, bobPub) {
		t.Error("another contributor's key must not verify alice's node")
	}
}

func TestResolveAddress_StableAndDecodable(t *testing.T) {
	s, _ := NewSigner(testSeed())

	addr1, err := s.ResolveAddress("alice")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	addr2, err := s.ResolveAddress("alice")
	if err != nil {
		t.Fatalf("resolve again: %v", err)
	}
	if addr1 != addr2 {
		t.Errorf("address not stable: %s vs %s", addr1, addr2)
	}

	raw, err := base58.Decode(addr1)
	if err != nil {
		t.Fatalf("address is not valid base58: %v", err)
	}
	if len(raw) != 25 {
		t.Errorf("decoded address length: got %d, want 25", len(raw))
	}
	if raw[0] != addressVersion {
		t.Errorf("version byte: got %#x, want %#x", raw[0], addressVersion)
	}
	if !bytes.Equal(raw[21:], checksum(raw[:21])) {
		t.Error("checksum mismatch")
	}

	bob, _ := s.ResolveAddress("bob")
	if bob == addr1 {
		t.Error("distinct contributors must get distinct addresses")
	}
}

func TestSeedIsolation(t *testing.T) {
	s1, _ := NewSigner(testSeed())
	s2, _ := NewSigner(bytes.Repeat([]byte{0x43}, 32))

	a1, _ := s1.ResolveAddress("alice")
	a2, _ := s2.ResolveAddress("alice")
	if a1 == a2 {
		t.Error("different seeds must derive different addresses")
	}
}
