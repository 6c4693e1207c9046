// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The passvault Authors

package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

const rsaKeyBits = 2048

// keyPairService is the private implementation of [KeyPairService].
type keyPairService struct{}

// NewKeyPairService constructs a [KeyPairService] producing RSA-2048
// keypairs, PKIX PEM public keys, and PKCS#8 private key bytes.
func NewKeyPairService() KeyPairService {
	return &keyPairService{}
}

// GenerateKeyPair implements [KeyPairService].
func (s *keyPairService) GenerateKeyPair() (*rsa.PrivateKey, error) {
	priv, err := rsa.GenerateKey(rand.Reader, rsaKeyBits)
	if err != nil {
		return nil, fmt.Errorf("generate rsa keypair: %w", err)
	}
	return priv, nil
}

// EncodePublicKey implements [KeyPairService]. The output is a standard
// "PUBLIC KEY" PEM block (PKIX), safe to store and transmit in cleartext.
func (s *keyPairService) EncodePublicKey(pub *rsa.PublicKey) (string, error) {
	if pub == nil {
		return "", fmt.Errorf("%w: nil public key", ErrInvalidInput)
	}

	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", fmt.Errorf("marshal public key: %w", err)
	}

	block := &pem.Block{Type: "PUBLIC KEY", Bytes: der}
	return string(pem.EncodeToMemory(block)), nil
}

// DecodePublicKey implements [KeyPairService].
func (s *keyPairService) DecodePublicKey(pemData string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(pemData))
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrInvalidInput)
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: parse public key: %v", ErrInvalidInput, err)
	}

	pub, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA public key", ErrInvalidInput)
	}
	return pub, nil
}

// MarshalPrivateKey implements [KeyPairService]. The PKCS#8 bytes are raw
// key material; the caller must wrap them under the master key immediately
// and Zero the slice afterwards.
func (s *keyPairService) MarshalPrivateKey(priv *rsa.PrivateKey) ([]byte, error) {
	if priv == nil {
		return nil, fmt.Errorf("%w: nil private key", ErrInvalidInput)
	}

	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("marshal private key: %w", err)
	}
	return der, nil
}

// ParsePrivateKey implements [KeyPairService].
func (s *keyPairService) ParsePrivateKey(der []byte) (*rsa.PrivateKey, error) {
	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: parse private key: %v", ErrInvalidInput, err)
	}

	priv, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA private key", ErrInvalidInput)
	}
	return priv, nil
}
