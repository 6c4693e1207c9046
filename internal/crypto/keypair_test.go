package crypto

import (
	"errors"
	"strings"
	"testing"
)

func TestKeyPair_PublicKeyEncodeDecode(t *testing.T) {
	svc := NewKeyPairService()

	priv, err := svc.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair error: %v", err)
	}

	pemData, err := svc.EncodePublicKey(&priv.PublicKey)
	if err != nil {
		t.Fatalf("EncodePublicKey error: %v", err)
	}
	if !strings.Contains(pemData, "BEGIN PUBLIC KEY") {
		t.Fatalf("expected PEM public key block, got %q", pemData[:40])
	}

	pub, err := svc.DecodePublicKey(pemData)
	if err != nil {
		t.Fatalf("DecodePublicKey error: %v", err)
	}
	if pub.N.Cmp(priv.PublicKey.N) != 0 || pub.E != priv.PublicKey.E {
		t.Fatalf("decoded public key does not match original")
	}
}

func TestKeyPair_PrivateKeyMarshalParse(t *testing.T) {
	svc := NewKeyPairService()

	priv, err := svc.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair error: %v", err)
	}

	der, err := svc.MarshalPrivateKey(priv)
	if err != nil {
		t.Fatalf("MarshalPrivateKey error: %v", err)
	}

	parsed, err := svc.ParsePrivateKey(der)
	if err != nil {
		t.Fatalf("ParsePrivateKey error: %v", err)
	}
	if parsed.D.Cmp(priv.D) != 0 {
		t.Fatalf("parsed private key does not match original")
	}
}

func TestKeyPair_DecodeInvalidInput(t *testing.T) {
	svc := NewKeyPairService()

	if _, err := svc.DecodePublicKey("not a pem block"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.ParsePrivateKey([]byte{0x01, 0x02}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
