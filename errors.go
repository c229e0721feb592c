package zodgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/zodgen/i18n"
)

// Kind classifies translation errors.
type Kind string

// Error kinds.
const (
	// KindInvalidSchema: the IR violates an assumed invariant.
	KindInvalidSchema Kind = "invalid_schema"
	// KindUnimplemented: a recognized but unsupported IR shape.
	KindUnimplemented Kind = "unimplemented"
	// KindPreconditionViolated: a rule was called on a node that does not
	// satisfy its precondition. Signals a caller bug, not a data problem.
	KindPreconditionViolated Kind = "precondition_violated"
	KindEncodingFailed       Kind = "encoding_failed"
	KindFormattingFailed     Kind = "formatting_failed"
	KindDepthExceeded        Kind = "depth_exceeded"
)

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrInvalidSchema        = &Error{Kind: KindInvalidSchema}
	ErrUnimplemented        = &Error{Kind: KindUnimplemented}
	ErrPreconditionViolated = &Error{Kind: KindPreconditionViolated}
	ErrEncodingFailed       = &Error{Kind: KindEncodingFailed}
	ErrFormattingFailed     = &Error{Kind: KindFormattingFailed}
	ErrDepthExceeded        = &Error{Kind: KindDepthExceeded}
)

// Error is returned by every failing translation. Translation is
// all-or-nothing, so there is never partial output alongside an Error.
type Error struct {
	Kind    Kind
	Path    string // JSON Pointer of the offending IR node (for example: /properties/tags/items).
	Facet   string // Facet that triggered the error (for example: array.contains).
	Message string
	Cause   error // Optional: underlying error.
	// Params carries structured values (e.g., {"limit": 256}) for
	// i18n and observability.
	Params map[string]any
}

// Error renders "<kind message> at <path>: <facet>: <detail>".
func (e *Error) Error() string {
	b := &strings.Builder{}
	var data map[string]string
	if lim, ok := e.Params["limit"]; ok {
		data = map[string]string{"limit": fmt.Sprintf("max %v", lim)}
	}
	b.WriteString(i18n.T(string(e.Kind), data))
	if e.Path != "" {
		fmt.Fprintf(b, " at %s", e.Path)
	}
	if e.Facet != "" {
		fmt.Fprintf(b, ": %s", e.Facet)
	}
	if e.Message != "" {
		fmt.Fprintf(b, ": %s", e.Message)
	}
	if e.Cause != nil {
		fmt.Fprintf(b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches sentinel errors by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Path == "" && t.Facet == "" && t.Message == ""
}

// AsError extracts an *Error using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func newError(kind Kind, path, facet, msg string) *Error {
	return &Error{Kind: kind, Path: pointerOrRoot(path), Facet: facet, Message: msg}
}

func pointerOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
