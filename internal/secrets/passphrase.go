package secrets

const redacted = "[REDACTED]"

// Passphrase holds the secret used to encrypt the store.
type Passphrase struct {
	b []byte
}

// NewPassphrase takes ownership of b. The caller must not reuse b.
func NewPassphrase(b []byte) *Passphrase {
	return &Passphrase{b: b}
}

// Bytes returns the underlying bytes. They are zeroed by Wipe.
func (p *Passphrase) Bytes() []byte {
	if p == nil {
		return nil
	}
	return p.b
}

// Empty reports whether the passphrase has no content.
func (p *Passphrase) Empty() bool {
	return p == nil || len(p.b) == 0
}

// Equal compares two passphrases in constant time.
func (p *Passphrase) Equal(other *Passphrase) bool {
	return subtleEqual(p.Bytes(), other.Bytes())
}

// Wipe zeroes the passphrase. It is safe to call more than once.
func (p *Passphrase) Wipe() {
	if p == nil {
		return
	}
	for i := range p.b {
		p.b[i] = 0
	}
	p.b = nil
}

func (Passphrase) String() string   { return redacted }
func (Passphrase) GoString() string { return redacted }
