package logger

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, v bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(v)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebug_WhenVerbose(t *testing.T) {
	buf := capture(t, true)

	Debug("fetching page %s", "123")

	assert.Equal(t, "[DEBUG] fetching page 123\n", buf.String())
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("fetching page")

	assert.Zero(t, buf.Len())
}

func TestSection(t *testing.T) {
	buf := capture(t, true)

	Section("Fetch Root")

	assert.Equal(t, "\n=== Fetch Root ===\n", buf.String())
}

func TestInfo(t *testing.T) {
	buf := capture(t, true)

	Info("wrote %d pages", 42)

	assert.Equal(t, "[INFO] wrote 42 pages\n", buf.String())
}

func TestInfo_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Info("wrote %d pages", 42)

	assert.Empty(t, buf.String())
}

func TestWarn_AlwaysWritten(t *testing.T) {
	for _, v := range []bool{true, false} {
		buf := capture(t, v)

		Warn("skipping attachment %s", "a.png")

		assert.Equal(t, "[WARN] skipping attachment a.png\n", buf.String())
	}
}

func TestConcurrentAccess(t *testing.T) {
	buf := capture(t, true)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Debug("concurrent %d", i)
			Warn("concurrent %d", i)
			IsVerbose()
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, bytes.Count(buf.Bytes(), []byte("\n")))
}
