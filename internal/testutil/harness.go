// Package testutil provides shared helpers for host-level tests: a
// thread-safe output buffer, a temp-dir graph harness, and stub node
// implementations.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/seedgridgo/internal/app"
	"github.com/vk/seedgridgo/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of a host test run.
type HarnessResult struct {
	Output string
	Err    error
	App    *app.App
}

// RunHostTest writes the given graph files into a temp directory, builds
// an App around them, and executes the graph the requested number of
// times. Passing no modules registers the compiled-in core modules; tests
// exercising custom nodes pass their own. Logging runs at error level so
// Output contains essentially just the per-instance report lines.
func RunHostTest(t *testing.T, files map[string]string, runs int, modules ...registry.Module) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	cfg, err := app.NewConfig(app.Config{
		GraphPath: tmpDir,
		Runs:      runs,
		LogFormat: "text",
		LogLevel:  "error",
	})
	require.NoError(t, err)

	out := &SafeBuffer{}
	result := &HarnessResult{}

	func() {
		defer func() {
			if r := recover(); r != nil {
				result.Err = fmt.Errorf("application startup panicked: %v", r)
			}
		}()
		hostApp := app.NewApp(out, cfg, modules...)
		result.App = hostApp
		result.Err = hostApp.Run(context.Background(), cfg)
	}()

	result.Output = out.String()
	return result
}
