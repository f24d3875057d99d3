package ai

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyReply = errors.New("model returned an empty reply")
	ErrNoPersonas = errors.New("no personas supplied")
)

// GatewayError wraps a failed model call with the dispatch mode it belonged to.
type GatewayError struct {
	Mode string
	Err  error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s model call: %v", e.Mode, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// Reply is the outcome of one model call. When Err is set, Text holds the
// sentinel shown in place of an answer.
type Reply struct {
	Text string
	Err  error
}

// Failed reports whether the reply carries sentinel text.
func (r Reply) Failed() bool {
	return r.Err != nil
}

func failedReply(mode string, err error) Reply {
	gwErr := &GatewayError{Mode: mode, Err: err}
	return Reply{
		Text: "Error: " + describe(err),
		Err:  gwErr,
	}
}

// describe reduces err to its root cause on a single line. Chain errors carry
// node paths and type tags that only belong in logs.
func describe(err error) string {
	root := err
	for next := errors.Unwrap(root); next != nil; next = errors.Unwrap(root) {
		root = next
	}
	msg := strings.TrimSpace(root.Error())
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = strings.TrimSpace(msg[:i])
	}
	if msg == "" {
		return "model call failed"
	}
	return msg
}
