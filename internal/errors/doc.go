// Package errors provides typed error values for passage.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Storage errors: ErrStorageUninitialized, ErrCorruptStorage, ErrStorageLocked
//   - Crypto errors: ErrDecryptionFailed, ErrMalformedEnvelope, passphrase input errors
//   - Entry errors: ErrEntryNotFound, ErrEntryAlreadyExists, ErrInvalidEntryName
//   - Hook errors: ErrHookFailed, ErrHookNotExecutable
//   - Environment errors: keyring, clipboard, interactivity and config problems
//
// # Usage
//
// Wrap errors with the entry or hook involved:
//
//	return fmt.Errorf("entry %q: %w", name, errors.ErrEntryNotFound)
//
// Handle errors in the CLI layer:
//
//	if errors.Is(err, kerrors.ErrStorageUninitialized) {
//	    // Show a hint to run `passage init`
//	}
package errors
