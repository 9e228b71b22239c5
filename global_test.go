package settings

import (
	"sync"
	"testing"
)

// TestGlobalConcurrentInit is the only test allowed to touch Global:
// the cell is process-wide and write-once, so a second test would
// observe this one's instance.
func TestGlobalConcurrentInit(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "test.toml", testConfig)
	t.Setenv(EnvDefaultGlobalConfig, path)

	const callers = 16
	results := make([]*Settings, callers)

	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer done.Done()
			start.Wait()
			results[i] = Global()
		}(i)
	}
	start.Done()
	done.Wait()

	first := results[0]
	if first == nil {
		t.Fatal("Global() returned nil")
	}
	for i, s := range results {
		if s != first {
			t.Fatalf("caller %d observed a different instance: %p vs %p", i, s, first)
		}
	}

	if first.ConfigDir != canonical(t, dir) {
		t.Errorf("ConfigDir = %q, want %q", first.ConfigDir, canonical(t, dir))
	}
	if first.ConfigFilename != "test.toml" {
		t.Errorf("ConfigFilename = %q, want %q", first.ConfigFilename, "test.toml")
	}

	// Re-reading must hit the cache, not the environment.
	t.Setenv(EnvDefaultGlobalConfig, "/nonexistent/other.toml")
	if again := Global(); again != first {
		t.Errorf("second access returned a different instance")
	}

	name, err := first.GetString("section.name")
	if err != nil {
		t.Fatalf("GetString: %v", err)
	}
	if name != "hello" {
		t.Errorf("section.name = %q, want %q", name, "hello")
	}
}
