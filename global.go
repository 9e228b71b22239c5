package settings

import (
	"fmt"
	"sync"
)

var (
	globalOnce     sync.Once
	globalSettings *Settings
)

// Global returns the process-wide Settings, loaded on first call from
// the file named by DEFAULT_GLOBAL_CONFIG. Initialization happens at
// most once: concurrent first callers block until the load completes
// and then observe the same instance. The file and environment are
// never re-read.
//
// A process whose mandatory default configuration cannot be loaded has
// nothing meaningful to do, so a first-call load failure panics rather
// than returning an error.
func Global() *Settings {
	globalOnce.Do(func() {
		s, err := New("")
		if err != nil {
			log.WithError(err).Error("load global config failed")
			panic(fmt.Sprintf("settings: load global config failed: %v", err))
		}
		globalSettings = s
	})
	return globalSettings
}
