package secrets

import (
	"crypto/rand"
	"fmt"
	"io"

	kerrors "github.com/PolarWolf314/passage/internal/errors"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/secretbox"
)

// SecretboxCodecName is the config name of the secretbox codec.
const SecretboxCodecName = "secretbox"

const (
	secretboxHeader = "passage-secretbox/v1\n"
	saltSize        = 16
	nonceSize       = 24
	keySize         = 32

	argonTime    = 3
	argonMemory  = 64 * 1024
	argonThreads = 4
)

// SecretboxCodec seals the store with NaCl secretbox under an Argon2id key.
//
// Envelope layout:
//
//	"passage-secretbox/v1\n" | salt (16) | nonce (24) | sealed box
type SecretboxCodec struct{}

func NewSecretboxCodec() *SecretboxCodec {
	return &SecretboxCodec{}
}

func (c *SecretboxCodec) Name() string { return SecretboxCodecName }

func (c *SecretboxCodec) Encrypt(plaintext []byte, p *Passphrase) ([]byte, error) {
	if p.Empty() {
		return nil, kerrors.ErrEmptyPassphrase
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	key := deriveKey(p, salt)
	defer wipeKey(key)

	out := make([]byte, 0, len(secretboxHeader)+saltSize+nonceSize+len(plaintext)+secretbox.Overhead)
	out = append(out, secretboxHeader...)
	out = append(out, salt...)
	out = append(out, nonce[:]...)
	return secretbox.Seal(out, plaintext, &nonce, key), nil
}

func (c *SecretboxCodec) Decrypt(ciphertext []byte, p *Passphrase) ([]byte, error) {
	if p.Empty() {
		return nil, kerrors.ErrEmptyPassphrase
	}

	body, ok := cutPrefix(ciphertext, secretboxHeader)
	if !ok {
		return nil, fmt.Errorf("missing secretbox header: %w", kerrors.ErrMalformedEnvelope)
	}
	if len(body) < saltSize+nonceSize+secretbox.Overhead {
		return nil, fmt.Errorf("truncated secretbox envelope: %w", kerrors.ErrMalformedEnvelope)
	}

	salt := body[:saltSize]
	var nonce [nonceSize]byte
	copy(nonce[:], body[saltSize:saltSize+nonceSize])

	key := deriveKey(p, salt)
	defer wipeKey(key)

	plaintext, ok := secretbox.Open(nil, body[saltSize+nonceSize:], &nonce, key)
	if !ok {
		return nil, kerrors.ErrDecryptionFailed
	}

	return plaintext, nil
}

func deriveKey(p *Passphrase, salt []byte) *[keySize]byte {
	var key [keySize]byte
	derived := argon2.IDKey(p.Bytes(), salt, argonTime, argonMemory, argonThreads, keySize)
	copy(key[:], derived)
	for i := range derived {
		derived[i] = 0
	}
	return &key
}

func wipeKey(key *[keySize]byte) {
	for i := range key {
		key[i] = 0
	}
}

func cutPrefix(b []byte, prefix string) ([]byte, bool) {
	if len(b) < len(prefix) || string(b[:len(prefix)]) != prefix {
		return nil, false
	}
	return b[len(prefix):], true
}
