package crypto

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/tyler-smith/go-bip39"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChainService()

	s1, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := svc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != SaltSize {
		t.Fatalf("salt length = %d, want %d", len(s1), SaltSize)
	}
	if len(s2) != SaltSize {
		t.Fatalf("salt length = %d, want %d", len(s2), SaltSize)
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestGenerateVaultKey_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChainService()

	k1, err := svc.GenerateVaultKey()
	if err != nil {
		t.Fatalf("GenerateVaultKey error: %v", err)
	}
	k2, err := svc.GenerateVaultKey()
	if err != nil {
		t.Fatalf("GenerateVaultKey error: %v", err)
	}

	if len(k1) != KeySize {
		t.Fatalf("vault key length = %d, want %d", len(k1), KeySize)
	}
	if bytes.Equal(k1, k2) {
		t.Fatalf("expected vault keys to differ, but they are equal")
	}
}

func TestGenerateItemKey_Length(t *testing.T) {
	svc := NewKeyChainService()

	key, err := svc.GenerateItemKey()
	if err != nil {
		t.Fatalf("GenerateItemKey error: %v", err)
	}
	if len(key) != KeySize {
		t.Fatalf("item key length = %d, want %d", len(key), KeySize)
	}
}

// Derivation must be deterministic: re-running setup with the same phrase
// and salt has to reproduce the exact same master key and verifier.
func TestDeriveMasterKey_Deterministic(t *testing.T) {
	svc := newFastKeyChain()

	passphrase := "legal winner thank year wave sausage worth useful legal winner thank yellow"
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)

	umk1, ver1, err := svc.DeriveMasterKey(passphrase, salt)
	if err != nil {
		t.Fatalf("DeriveMasterKey error: %v", err)
	}
	umk2, ver2, err := svc.DeriveMasterKey(passphrase, salt)
	if err != nil {
		t.Fatalf("DeriveMasterKey error: %v", err)
	}

	if len(umk1) != KeySize {
		t.Fatalf("UMK length = %d, want %d", len(umk1), KeySize)
	}
	if !bytes.Equal(umk1, umk2) {
		t.Fatalf("expected identical UMKs for same passphrase+salt")
	}
	if !bytes.Equal(ver1, ver2) {
		t.Fatalf("expected identical verifiers for same passphrase+salt")
	}
}

func TestDeriveMasterKey_DifferentSaltProducesDifferentKey(t *testing.T) {
	svc := newFastKeyChain()

	passphrase := "same passphrase"
	salt1 := bytes.Repeat([]byte{0x01}, SaltSize)
	salt2 := bytes.Repeat([]byte{0x02}, SaltSize)

	umk1, ver1, err := svc.DeriveMasterKey(passphrase, salt1)
	if err != nil {
		t.Fatalf("DeriveMasterKey error: %v", err)
	}
	umk2, ver2, err := svc.DeriveMasterKey(passphrase, salt2)
	if err != nil {
		t.Fatalf("DeriveMasterKey error: %v", err)
	}

	if bytes.Equal(umk1, umk2) {
		t.Fatalf("expected different UMKs for different salts")
	}
	if bytes.Equal(ver1, ver2) {
		t.Fatalf("expected different verifiers for different salts")
	}
}

// The verifier must not equal the UMK or any obvious transform of it:
// the server stores the verifier, so it lives on the other side of the
// trust boundary.
func TestDeriveMasterKey_VerifierSeparatedFromKey(t *testing.T) {
	svc := newFastKeyChain()

	salt := bytes.Repeat([]byte{0x0F}, SaltSize)
	umk, verifier, err := svc.DeriveMasterKey("some passphrase", salt)
	if err != nil {
		t.Fatalf("DeriveMasterKey error: %v", err)
	}

	if bytes.Equal(umk, verifier) {
		t.Fatalf("verifier must differ from UMK")
	}
}

func TestDeriveMasterKey_InvalidInput(t *testing.T) {
	svc := newFastKeyChain()

	tests := []struct {
		name       string
		passphrase string
		salt       []byte
	}{
		{name: "empty passphrase", passphrase: "", salt: bytes.Repeat([]byte{0x01}, SaltSize)},
		{name: "nil salt", passphrase: "phrase", salt: nil},
		{name: "short salt", passphrase: "phrase", salt: bytes.Repeat([]byte{0x01}, 16)},
		{name: "long salt", passphrase: "phrase", salt: bytes.Repeat([]byte{0x01}, 64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.DeriveMasterKey(tt.passphrase, tt.salt)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestGenerateMnemonic_24WordsWithChecksum(t *testing.T) {
	svc := NewKeyChainService()

	mnemonic, err := svc.GenerateMnemonic()
	if err != nil {
		t.Fatalf("GenerateMnemonic error: %v", err)
	}

	words := strings.Fields(mnemonic)
	if len(words) != 24 {
		t.Fatalf("mnemonic word count = %d, want 24", len(words))
	}
	if !bip39.IsMnemonicValid(mnemonic) {
		t.Fatalf("generated mnemonic fails checksum validation")
	}

	other, err := svc.GenerateMnemonic()
	if err != nil {
		t.Fatalf("GenerateMnemonic error: %v", err)
	}
	if mnemonic == other {
		t.Fatalf("expected two generated mnemonics to differ")
	}
}

// newFastKeyChain lowers Argon2id memory cost so derivation-heavy tests
// stay fast. Determinism properties are parameter-independent.
func newFastKeyChain() KeyChainService {
	return NewKeyChainServiceWithParams(1, 1024, 1)
}
