package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/oops"
	"github.com/spf13/viper"
)

// EnvDefaultGlobalConfig names the environment variable consulted when
// New is called without an explicit path.
const EnvDefaultGlobalConfig = "DEFAULT_GLOBAL_CONFIG"

// Settings wraps one parsed configuration file together with the
// directory it was loaded from. Instances are immutable after
// construction and safe for concurrent readers.
type Settings struct {
	// ConfigDir is the absolute, canonicalized directory containing the
	// resolved configuration file. GetPath resolves relative values
	// against it.
	ConfigDir string
	// ConfigFilename is the final component of the path the file was
	// loaded from, without any directory part.
	ConfigFilename string

	v *viper.Viper
}

// New loads the configuration file at configFile. An empty configFile
// means "use the file named by DEFAULT_GLOBAL_CONFIG". The file format
// is detected from the extension (TOML, YAML, JSON, ...).
func New(configFile string) (*Settings, error) {
	path := configFile
	if path == "" {
		path = os.Getenv(EnvDefaultGlobalConfig)
		if path == "" {
			return nil, oops.Errorf("%w: %s", ErrEnvNotDefined, EnvDefaultGlobalConfig)
		}
		log.Debugf("using default global config from %s: %s", EnvDefaultGlobalConfig, path)
	}

	if !fileExists(path) {
		return nil, oops.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	// Each Settings gets its own viper instance. The package-global
	// viper would make independently loaded files stomp on each other.
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, oops.Errorf("reading config file %s: %w", path, err)
	}

	dir, err := canonicalDir(path)
	if err != nil {
		return nil, oops.Errorf("resolving config dir for %s: %w", path, err)
	}

	s := &Settings{
		ConfigDir:      dir,
		ConfigFilename: filepath.Base(path),
		v:              v,
	}
	log.Debugf("configuration loaded from %s", filepath.Join(s.ConfigDir, s.ConfigFilename))
	return s, nil
}

// Dir returns the directory containing the loaded configuration file.
func (s *Settings) Dir() string {
	return s.ConfigDir
}

func (s *Settings) String() string {
	return fmt.Sprintf("Settings{dir: %s, file: %s}", s.ConfigDir, s.ConfigFilename)
}

// canonicalDir resolves path to its canonical absolute form (relative
// segments and symlinks resolved) and returns the parent directory.
func canonicalDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	return filepath.Dir(resolved), nil
}

// fileExists checks if a file exists and is readable etc
// returns false if not
func fileExists(fpath string) bool {
	_, e := os.Stat(fpath)
	return e == nil
}
