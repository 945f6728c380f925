// Package apperr defines the closed set of error kinds the API can surface.
// Every failure a resolver or handler reports is one of these kinds; the kind
// determines the HTTP-equivalent code attached to the GraphQL error.
package apperr

import "errors"

type Kind int

const (
	Invalid         Kind = iota + 1 // 422, carries field messages
	Unauthenticated                 // 401
	Forbidden                       // 403
	NotFound                        // 404
	Conflict                        // 409
	Internal                        // 500
)

func (k Kind) Code() int {
	switch k {
	case Invalid:
		return 422
	case Unauthenticated:
		return 401
	case Forbidden:
		return 403
	case NotFound:
		return 404
	case Conflict:
		return 409
	default:
		return 500
	}
}

// Message is one entry of a validation failure list.
type Message struct {
	Message string `json:"message"`
}

type Error struct {
	Kind    Kind
	Message string
	Data    []Message // non-empty only for Invalid
	Err     error     // underlying cause, for Internal
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Extensions surfaces code and validation data in the GraphQL error response.
func (e *Error) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.Kind.Code()}
	if len(e.Data) > 0 {
		ext["data"] = e.Data
	}
	return ext
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// InvalidInput builds the single 422 error carrying all collected messages.
func InvalidInput(data []Message) *Error {
	return &Error{Kind: Invalid, Message: "Invalid input!", Data: data}
}

// Wrap marks an unexpected collaborator failure as fatal to the operation.
func Wrap(err error, msg string) *Error {
	return &Error{Kind: Internal, Message: msg, Err: err}
}

// KindOf reports the kind of err, or Internal for anything outside the taxonomy.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}
