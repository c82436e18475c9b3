package rdfa

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeTokenizeError indicates malformed markup at the tokenizer level.
	ErrCodeTokenizeError ErrorCode = "TOKENIZE_ERROR"
	// ErrCodeUnbalancedClose indicates a tag-close event without an open tag.
	ErrCodeUnbalancedClose ErrorCode = "UNBALANCED_CLOSE"
	// ErrCodeUnknownProfile indicates an unrecognized profile name.
	ErrCodeUnknownProfile ErrorCode = "UNKNOWN_PROFILE"
	// ErrCodeContextCanceled indicates the context was canceled.
	ErrCodeContextCanceled ErrorCode = "CONTEXT_CANCELED"
	// ErrCodeHandlerError indicates a host-supplied hook failed.
	ErrCodeHandlerError ErrorCode = "HANDLER_ERROR"
)

var (
	// ErrUnknownProfile indicates an unrecognized profile name.
	ErrUnknownProfile = errors.New("rdfa: unknown profile")
	// ErrUnbalancedClose indicates a tag-close event with no matching open tag.
	ErrUnbalancedClose = errors.New("rdfa: tag close without matching open")
)

// Code returns the error code for an error, or ErrCodeHandlerError if unknown.
// Returns empty string for nil errors or io.EOF (which is not an error condition).
func Code(err error) ErrorCode {
	if err == nil || err == io.EOF {
		return ""
	}

	switch {
	case errors.Is(err, ErrUnknownProfile):
		return ErrCodeUnknownProfile
	case errors.Is(err, ErrUnbalancedClose):
		return ErrCodeUnbalancedClose
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrCodeContextCanceled
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		underlying := Code(parseErr.Err)
		if underlying != "" && underlying != ErrCodeHandlerError {
			return underlying
		}
		return ErrCodeTokenizeError
	}

	// Anything else originated in a host-supplied hook.
	return ErrCodeHandlerError
}

// ParseError provides structured context for tokenizer-level failures.
type ParseError struct {
	Format string // Format name (e.g., "rdfa")
	Line   int    // 1-based line number (0 if unknown)
	Column int    // 1-based column number (0 if unknown)
	Offset int    // Byte offset in input (0 if unknown)
	Err    error  // Underlying error
}

func (e *ParseError) Error() string {
	var msg strings.Builder
	msg.WriteString(e.Format)
	if e.Line > 0 {
		if e.Column > 0 {
			fmt.Fprintf(&msg, ":%d:%d", e.Line, e.Column)
		} else {
			fmt.Fprintf(&msg, ":%d", e.Line)
		}
	} else if e.Offset > 0 {
		fmt.Fprintf(&msg, " (offset %d)", e.Offset)
	}
	msg.WriteString(": ")
	msg.WriteString(e.Err.Error())
	return msg.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// wrapTokenizeError adds format/position context to a tokenizer error.
func wrapTokenizeError(offset int, err error) error {
	if err == nil {
		return nil
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return err
	}
	return &ParseError{Format: "rdfa", Offset: offset, Err: err}
}
