// Package feedback provides leveled progress messages for long-running
// operations such as imports.
//
// A Feedback value forwards every message to a single Sender, which is the
// only extension point. The default sender writes each line to an io.Writer
// the moment it is emitted; nothing is buffered, so the operator sees
// progress while a batch loop is still running. Sending never fails and
// never panics — feedback runs on the success path of partially-failed
// operations and must not introduce failures of its own.
package feedback

import (
	"fmt"
	"io"
	"os"
)

// Level classifies a feedback message for the reader.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Sender receives every emitted message. Implementations must not fail.
type Sender interface {
	Send(level Level, message string)
}

// Feedback emits leveled messages to a Sender.
type Feedback struct {
	sender Sender
}

// New creates a Feedback that forwards messages to the given sender.
func New(sender Sender) *Feedback {
	return &Feedback{sender: sender}
}

// NewConsole creates a Feedback that writes to stdout.
func NewConsole() *Feedback {
	return New(&WriterSender{W: os.Stdout})
}

// Info reports progress that isn't covered by the other levels.
func (f *Feedback) Info(message string) {
	f.send(LevelInfo, message)
}

// Success reports that a unit of work completed.
func (f *Feedback) Success(message string) {
	f.send(LevelSuccess, message)
}

// Warning reports something unexpected that did not stop the run.
func (f *Feedback) Warning(message string) {
	f.send(LevelWarning, message)
}

// Error reports that a requested unit of work produced no result.
// It is a severity distinction for the reader, not a control-flow one.
func (f *Feedback) Error(message string) {
	f.send(LevelError, message)
}

func (f *Feedback) send(level Level, message string) {
	if f.sender == nil {
		return
	}
	f.sender.Send(level, message)
}

// WriterSender writes each message as a "[level] message" line.
// Write errors are ignored: emission must never fail.
type WriterSender struct {
	W io.Writer
}

// Send implements Sender.
func (s *WriterSender) Send(level Level, message string) {
	if s.W == nil {
		return
	}
	fmt.Fprintf(s.W, "[%s] %s\n", level, message)
}

// Message is a recorded (level, message) pair.
type Message struct {
	Level   Level
	Message string
}

// Recorder is a Sender that records messages in emission order.
// It is intended for tests that assert on feedback output.
type Recorder struct {
	Messages []Message
}

// Send implements Sender.
func (r *Recorder) Send(level Level, message string) {
	r.Messages = append(r.Messages, Message{Level: level, Message: message})
}

// ByLevel returns the recorded messages with the given level, in order.
func (r *Recorder) ByLevel(level Level) []string {
	var out []string
	for _, m := range r.Messages {
		if m.Level == level {
			out = append(out, m.Message)
		}
	}
	return out
}

// Count returns how many messages with the given level were recorded.
func (r *Recorder) Count(level Level) int {
	return len(r.ByLevel(level))
}

var _ Sender = (*WriterSender)(nil)
var _ Sender = (*Recorder)(nil)
