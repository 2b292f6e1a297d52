// Package configs resolves where a passage store lives and how it behaves.
//
// # Settings
//
// Settings holds every path a command needs:
//
//   - BaseDir: $PASSAGE_DIR, $XDG_DATA_HOME/passage or ~/.local/share/passage
//   - StorageFile: <base>/entries.toml.age
//   - HooksDir: <base>/hooks
//   - ConfigFile: <base>/config.toml
//
// Settings are resolved once by the root command and passed explicitly to
// the components; nothing reads paths from package state.
//
// # Configuration
//
// config.toml is optional. Missing keys keep their defaults:
//
//	[clipboard]
//	timeout = "10s"
//
//	[keyring]
//	enabled = true
//
//	[crypto]
//	codec = "age"      # or "secretbox"
//	work_factor = 0    # age scrypt log2(N), 0 = library default
//
// Validate reports all invalid fields together.
package configs
