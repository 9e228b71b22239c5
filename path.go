package settings

import (
	"path/filepath"

	"github.com/samber/oops"
)

// GetPath reads the dotted key as a string and interprets it as a
// filesystem path:
//
//   - a missing key fails with ErrKeyNotFound
//   - an empty string fails with ErrEmptyValue
//   - an absolute value is returned unchanged
//   - a relative value resolves against ConfigDir, not the process
//     working directory
//
// Configuration files commonly name sibling data files by relative
// path; resolving against the CWD would break whenever the process is
// launched from somewhere other than the config file's directory.
func (s *Settings) GetPath(key string) (string, error) {
	value, err := s.GetString(key)
	if err != nil {
		return "", err
	}
	if value == "" {
		// Only the exact empty string is rejected. "." and "./" are
		// valid relative paths naming ConfigDir itself.
		return "", oops.Errorf("%w: %s", ErrEmptyValue, key)
	}
	if filepath.IsAbs(value) {
		return value, nil
	}
	return filepath.Join(s.ConfigDir, value), nil
}
