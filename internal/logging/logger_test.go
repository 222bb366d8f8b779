package logging

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldOut, oldFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(oldOut)
		log.SetFlags(oldFlags)
	})
	return &buf
}

func TestInfoPrefixesSubsystem(t *testing.T) {
	buf := captureLog(t)

	Info("store", "saved %d tasks", 3)

	assert.Equal(t, "[store] saved 3 tasks\n", buf.String())
}

func TestDebugRespectsToggle(t *testing.T) {
	buf := captureLog(t)
	old := DebugEnabled()
	defer SetDebug(old)

	SetDebug(false)
	Debug("store", "hidden")
	assert.Empty(t, buf.String())

	SetDebug(true)
	Debug("store", "shown")
	assert.Equal(t, "[store] shown\n", buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("  short \n", 10))
	assert.Equal(t, "line one line two", Truncate("line one\nline two", 40))
	assert.Equal(t, "abcde...", Truncate("abcdefghij", 5))
}
