package secrets

import (
	"bytes"
	"crypto/subtle"
	"fmt"

	kerrors "github.com/PolarWolf314/passage/internal/errors"
)

// Codec encrypts and decrypts the serialized store.
type Codec interface {
	Encrypt(plaintext []byte, p *Passphrase) ([]byte, error)
	Decrypt(ciphertext []byte, p *Passphrase) ([]byte, error)
	Name() string
}

// DetectCodec returns a codec able to decrypt blob, based on its header.
// fallback supplies codec settings (such as the age work factor) when it
// matches the detected format.
func DetectCodec(blob []byte, fallback Codec) (Codec, error) {
	switch {
	case bytes.HasPrefix(blob, []byte(ageHeader)):
		if c, ok := fallback.(*AgeCodec); ok {
			return c, nil
		}
		return NewAgeCodec(0), nil
	case bytes.HasPrefix(blob, []byte(secretboxHeader)):
		if c, ok := fallback.(*SecretboxCodec); ok {
			return c, nil
		}
		return NewSecretboxCodec(), nil
	default:
		return nil, fmt.Errorf("unknown header: %w", kerrors.ErrMalformedEnvelope)
	}
}

// CodecByName returns the codec configured as name.
func CodecByName(name string, workFactor int) (Codec, error) {
	switch name {
	case "", AgeCodecName:
		return NewAgeCodec(workFactor), nil
	case SecretboxCodecName:
		return NewSecretboxCodec(), nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}

func subtleEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
