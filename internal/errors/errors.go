package errors

import "errors"

// Storage errors indicate problems with the encrypted store itself.
var (
	// ErrStorageUninitialized indicates an operation ran before `passage init`.
	ErrStorageUninitialized = errors.New("storage not initialized, run `passage init`")

	// ErrCorruptStorage indicates the store decrypted but its contents are not a valid entry document.
	ErrCorruptStorage = errors.New("storage is corrupt")

	// ErrStorageLocked indicates another passage process holds the store lock.
	ErrStorageLocked = errors.New("storage is locked by another process")
)

// Cryptographic errors indicate failures of the encryption envelope.
var (
	// ErrDecryptionFailed indicates a wrong passphrase or tampered ciphertext.
	// The two cases are deliberately indistinguishable.
	ErrDecryptionFailed = errors.New("failed to decrypt storage (wrong passphrase or tampered file)")

	// ErrMalformedEnvelope indicates the storage file is not a recognised encryption envelope.
	ErrMalformedEnvelope = errors.New("storage file is not a valid encrypted envelope")

	// ErrEmptyPassphrase indicates the user entered an empty passphrase.
	ErrEmptyPassphrase = errors.New("passphrase must not be empty")

	// ErrPassphraseMismatch indicates the passphrase confirmation did not match.
	ErrPassphraseMismatch = errors.New("passphrases do not match")
)

// Entry errors indicate problems with a named entry.
var (
	// ErrEntryNotFound indicates the named entry does not exist.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrEntryAlreadyExists indicates the named entry exists and overwrite was not confirmed.
	ErrEntryAlreadyExists = errors.New("entry already exists")

	// ErrInvalidEntryName indicates an empty or otherwise unusable entry name.
	ErrInvalidEntryName = errors.New("invalid entry name")
)

// Hook errors indicate problems running user hooks.
var (
	// ErrHookFailed indicates a hook exited with a non-zero status.
	ErrHookFailed = errors.New("hook failed")

	// ErrHookNotExecutable indicates a hook path exists but cannot be executed.
	ErrHookNotExecutable = errors.New("hook is not executable")
)

// Environment errors indicate an OS capability is missing or misbehaving.
var (
	// ErrSecretCacheUnavailable indicates the OS keyring could not be used.
	ErrSecretCacheUnavailable = errors.New("secret cache unavailable")

	// ErrSecretNotCached indicates the keyring holds no passphrase for this user.
	ErrSecretNotCached = errors.New("passphrase not cached")

	// ErrClipboardUnavailable indicates the clipboard could not be written.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")

	// ErrClipboardClearNotScheduled indicates the background clipboard clear could not be started.
	ErrClipboardClearNotScheduled = errors.New("could not schedule clipboard clearing")

	// ErrNotInteractive indicates a confirmation was required but stdin is not a terminal.
	ErrNotInteractive = errors.New("confirmation required but input is not interactive")

	// ErrInvalidConfig indicates config.toml holds invalid values.
	ErrInvalidConfig = errors.New("configuration is invalid")
)
