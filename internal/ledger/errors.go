package ledger

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindNotFound              ErrorKind = "NOT_FOUND"
	KindInvalidInput          ErrorKind = "INVALID_INPUT"
	KindInsufficientStock     ErrorKind = "INSUFFICIENT_STOCK"
	KindInternalInconsistency ErrorKind = "INTERNAL_INCONSISTENCY"
)

// Error is the semantic error returned by the ledger and the processors built on it.
// OutletID and ProductID point at the offending item when there is one.
type Error struct {
	Kind      ErrorKind `json:"code"`
	Message   string    `json:"message"`
	OutletID  string    `json:"outlet_id,omitempty"`
	ProductID int       `json:"product_id,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches on Kind, so errors.Is(err, ErrInsufficientStock) holds for any detailed stock error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrNotFound              = &Error{Kind: KindNotFound, Message: "resource not found"}
	ErrInvalidInput          = &Error{Kind: KindInvalidInput, Message: "invalid input provided"}
	ErrInsufficientStock     = &Error{Kind: KindInsufficientStock, Message: "insufficient stock available"}
	ErrInternalInconsistency = &Error{Kind: KindInternalInconsistency, Message: "ledger invariant broken"}
)

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidInput(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind carried by err, or "" when err is not a ledger error.
func KindOf(err error) ErrorKind {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind
	}
	return ""
}
