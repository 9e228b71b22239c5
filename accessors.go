package settings

import "github.com/samber/oops"

// The read accessors below forward to the wrapped viper store. The
// delegation is explicit rather than by embedding so the contract is
// visible at the call site: typed getters report a missing key as
// ErrKeyNotFound instead of viper's silent zero value.

// GetString returns the string value at the dotted key.
func (s *Settings) GetString(key string) (string, error) {
	if !s.v.IsSet(key) {
		return "", oops.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return s.v.GetString(key), nil
}

// GetInt returns the int value at the dotted key.
func (s *Settings) GetInt(key string) (int, error) {
	if !s.v.IsSet(key) {
		return 0, oops.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return s.v.GetInt(key), nil
}

// GetInt64 returns the int64 value at the dotted key.
func (s *Settings) GetInt64(key string) (int64, error) {
	if !s.v.IsSet(key) {
		return 0, oops.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return s.v.GetInt64(key), nil
}

// GetFloat64 returns the float64 value at the dotted key.
func (s *Settings) GetFloat64(key string) (float64, error) {
	if !s.v.IsSet(key) {
		return 0, oops.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return s.v.GetFloat64(key), nil
}

// GetBool returns the bool value at the dotted key.
func (s *Settings) GetBool(key string) (bool, error) {
	if !s.v.IsSet(key) {
		return false, oops.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return s.v.GetBool(key), nil
}

// Get returns the raw value at the dotted key, or nil when absent.
func (s *Settings) Get(key string) any {
	return s.v.Get(key)
}

// IsSet reports whether the dotted key is present in the store.
func (s *Settings) IsSet(key string) bool {
	return s.v.IsSet(key)
}

// AllKeys returns every dotted key present in the store.
func (s *Settings) AllKeys() []string {
	return s.v.AllKeys()
}

// AllSettings returns the entire store as nested maps.
func (s *Settings) AllSettings() map[string]any {
	return s.v.AllSettings()
}

// UnmarshalKey decodes the value at the dotted key into rawVal.
func (s *Settings) UnmarshalKey(key string, rawVal any) error {
	return s.v.UnmarshalKey(key, rawVal)
}
