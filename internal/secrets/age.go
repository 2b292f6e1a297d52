package secrets

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"filippo.io/age"
	kerrors "github.com/PolarWolf314/passage/internal/errors"
)

const (
	// AgeCodecName is the config name of the age codec.
	AgeCodecName = "age"

	// DefaultAgeWorkFactor matches age's own default scrypt cost.
	DefaultAgeWorkFactor = 18

	// MaxAgeWorkFactor bounds the scrypt cost accepted when decrypting.
	MaxAgeWorkFactor = 22

	ageHeader = "age-encryption.org/v1\n"
)

// AgeCodec encrypts the store as an age file with a scrypt recipient.
type AgeCodec struct {
	workFactor int
}

// NewAgeCodec returns an age codec using scrypt cost 2^workFactor.
// A zero workFactor selects DefaultAgeWorkFactor.
func NewAgeCodec(workFactor int) *AgeCodec {
	if workFactor <= 0 {
		workFactor = DefaultAgeWorkFactor
	}
	return &AgeCodec{workFactor: workFactor}
}

func (c *AgeCodec) Name() string { return AgeCodecName }

// WorkFactor returns the scrypt cost exponent used when encrypting.
func (c *AgeCodec) WorkFactor() int { return c.workFactor }

func (c *AgeCodec) Encrypt(plaintext []byte, p *Passphrase) ([]byte, error) {
	if p.Empty() {
		return nil, kerrors.ErrEmptyPassphrase
	}

	recipient, err := age.NewScryptRecipient(string(p.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("failed to create scrypt recipient: %w", err)
	}
	recipient.SetWorkFactor(c.workFactor)

	var buf bytes.Buffer
	w, err := age.Encrypt(&buf, recipient)
	if err != nil {
		return nil, fmt.Errorf("failed to start encryption: %w", err)
	}
	if _, err := w.Write(plaintext); err != nil {
		return nil, fmt.Errorf("failed to encrypt storage: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish encryption: %w", err)
	}

	return buf.Bytes(), nil
}

func (c *AgeCodec) Decrypt(ciphertext []byte, p *Passphrase) ([]byte, error) {
	if p.Empty() {
		return nil, kerrors.ErrEmptyPassphrase
	}

	identity, err := age.NewScryptIdentity(string(p.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("failed to create scrypt identity: %w", err)
	}
	identity.SetMaxWorkFactor(max(c.workFactor, MaxAgeWorkFactor))

	tracked := &unwrapTracker{Identity: identity}
	r, err := age.Decrypt(bytes.NewReader(ciphertext), tracked)
	if err != nil {
		var noMatch *age.NoIdentityMatchError
		if errors.As(err, &noMatch) || tracked.unwrapped {
			// Once the file key is unwrapped the header parsed, so any later
			// failure (header MAC, payload nonce) means altered data.
			return nil, kerrors.ErrDecryptionFailed
		}
		return nil, fmt.Errorf("%w: %v", kerrors.ErrMalformedEnvelope, err)
	}

	plaintext, err := io.ReadAll(r)
	if err != nil {
		return nil, kerrors.ErrDecryptionFailed
	}

	return plaintext, nil
}

// unwrapTracker records whether the wrapped identity produced a file key.
type unwrapTracker struct {
	age.Identity
	unwrapped bool
}

func (t *unwrapTracker) Unwrap(stanzas []*age.Stanza) ([]byte, error) {
	fileKey, err := t.Identity.Unwrap(stanzas)
	t.unwrapped = err == nil
	return fileKey, err
}
