package settings

import "errors"

// Sentinel errors returned by New and the accessors. Call sites wrap
// them with context via oops.Errorf, so match with errors.Is.
var (
	// ErrEnvNotDefined is returned by New("") when DEFAULT_GLOBAL_CONFIG
	// is unset or empty.
	ErrEnvNotDefined = errors.New("environment variable empty or not defined")
	// ErrConfigNotFound is returned when the resolved config path does
	// not exist on the filesystem.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrKeyNotFound is returned by the typed accessors when the dotted
	// key is absent from the store.
	ErrKeyNotFound = errors.New("key not found")
	// ErrEmptyValue is returned by GetPath when the key exists but holds
	// an empty string.
	ErrEmptyValue = errors.New("empty value")
)
