// Package store holds the entry model and the encrypted storage file.
//
// Storage is the plaintext view: a set of named entries, each holding a
// password. It serializes to a TOML document whose top-level tables are the
// entry names:
//
//	[email]
//	password = "hunter2"
//
// Repository moves Storage to and from disk. The file is encrypted with a
// secrets.Codec and always rewritten whole, via a temp file and rename, so a
// crash never leaves a half-written store. Commands that modify the store
// hold Repository.Lock between Load and Save.
package store
