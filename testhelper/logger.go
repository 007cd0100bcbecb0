// Package testhelper provides shared test doubles for package tests.
package testhelper

import (
	"sync"
)

// LogEntry represents a captured log entry
type LogEntry struct {
	Message string
	Fields  map[string]interface{}
}

// TestLogger is an in-memory logger.Logger implementation that captures
// entries for assertions
type TestLogger struct {
	mu            sync.RWMutex
	InfoMessages  []LogEntry
	ErrorMessages []LogEntry
	WarnMessages  []LogEntry
	DebugMessages []LogEntry
}

// NewTestLogger creates a new test logger instance
func NewTestLogger() *TestLogger {
	return &TestLogger{}
}

// LogInfo implements logger.Logger
func (t *TestLogger) LogInfo(msg string, fields map[string]interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.InfoMessages = append(t.InfoMessages, LogEntry{Message: msg, Fields: fields})
}

// LogError implements logger.Logger
func (t *TestLogger) LogError(err error, msg string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ErrorMessages = append(t.ErrorMessages, LogEntry{Message: msg})
	return err
}

// LogErrorf implements logger.Logger
func (t *TestLogger) LogErrorf(err error, format string, args ...interface{}) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ErrorMessages = append(t.ErrorMessages, LogEntry{Message: format})
	return err
}

// LogFatal implements logger.Logger; it records instead of exiting
func (t *TestLogger) LogFatal(err error, context string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ErrorMessages = append(t.ErrorMessages, LogEntry{Message: context})
}

// LogDebug implements logger.Logger
func (t *TestLogger) LogDebug(msg string, fields map[string]interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.DebugMessages = append(t.DebugMessages, LogEntry{Message: msg, Fields: fields})
}

// LogWarn implements logger.Logger
func (t *TestLogger) LogWarn(msg string, fields map[string]interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.WarnMessages = append(t.WarnMessages, LogEntry{Message: msg, Fields: fields})
}

// ErrorCount returns the number of captured error entries
func (t *TestLogger) ErrorCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.ErrorMessages)
}
