// Package lessonlog appends processed exchanges to a plain-text
// transcript file. The file is write-only from the service's point of
// view; the /logs routes serve it back verbatim.
package lessonlog

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	questionDelimiter = "----------------------------------------"
	answerDelimiter   = "============================================================"
)

// Logger serializes appends to one process-wide transcript file.
type Logger struct {
	mu   sync.Mutex
	path string
}

// New creates a transcript logger writing to path. The file is created
// on first record.
func New(path string) *Logger {
	return &Logger{path: path}
}

// Path returns the transcript file location.
func (l *Logger) Path() string { return l.path }

// Record appends one exchange block to the transcript.
func (l *Logger) Record(sessionID, question, answer string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s session=%s\n", time.Now().UTC().Format(time.RFC3339), sessionID)
	fmt.Fprintf(&b, "QUESTION:\n%s\n%s\n", question, questionDelimiter)
	fmt.Fprintf(&b, "ANSWER:\n%s\n%s\n\n", answer, answerDelimiter)

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open transcript: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("failed to append transcript: %w", err)
	}
	return nil
}
