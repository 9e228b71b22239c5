// Package settings loads one local configuration file and exposes its
// values through dotted keys.
//
// # Resolution
//
// A Settings instance is built from a single file. The path is either
// passed explicitly to New, or, when New is called with an empty path,
// taken from the DEFAULT_GLOBAL_CONFIG environment variable. The file
// format (TOML, YAML, JSON, ...) is detected from the extension by the
// underlying viper store.
//
// The directory containing the resolved file is canonicalized (symlinks
// and relative segments resolved) and kept as ConfigDir. Relative path
// values read through GetPath resolve against ConfigDir rather than the
// process working directory, so a configuration file can name sibling
// data files no matter where the process was launched from.
//
// # Usage Pattern
//
//	// Load an explicit file.
//	s, err := settings.New("./examples/test.toml")
//	if err != nil {
//		return err
//	}
//	name, err := s.GetString("section.name")
//	dbFile, err := s.GetPath("delist.delist_db_file")
//
//	// Or use the process-wide instance, loaded once from the file
//	// named by DEFAULT_GLOBAL_CONFIG. A first-load failure is fatal.
//	s := settings.Global()
//
// Settings values are immutable once constructed and safe for
// concurrent readers without locking.
package settings
