// Package clipboard hands a decrypted secret to the user, either on screen
// or through the system clipboard for a limited time.
//
// Copying to the clipboard starts a detached `passage clipboard-clear`
// process that outlives the command. It receives the SHA-256 digest of the
// secret on stdin, waits for the timeout and clears the clipboard only if
// it still holds that secret, so anything the user copied in the meantime
// is left alone. The secret itself never appears in a process argument.
package clipboard
