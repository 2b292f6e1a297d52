// Package secrets provides the cryptographic envelope for the passage store.
//
// # Encryption Architecture
//
// The whole store is serialized to a single TOML document and encrypted as
// one blob with a passphrase. Two codecs are available:
//
//  1. age (default): an age v1 file with a single scrypt recipient
//  2. secretbox: an Argon2id-derived key sealing the document with NaCl secretbox
//
// Both codecs are self-describing. DetectCodec inspects the header of a blob
// so a store written by one codec can still be opened after the configured
// codec changes; the next save re-encrypts with the configured one.
//
// # Passphrases
//
// Passphrase wraps the raw bytes so they never end up in logs or error
// messages by accident. Formatting a Passphrase prints [REDACTED]. Callers
// Wipe it once the store has been saved or read.
//
// # Errors
//
// A wrong passphrase and a tampered blob both surface as ErrDecryptionFailed.
// A blob with an unknown header or a truncated envelope is
// ErrMalformedEnvelope.
package secrets
