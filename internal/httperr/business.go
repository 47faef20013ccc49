package httperr

import "fmt"

type Kind int

const (
	KindBusiness Kind = iota
	KindNotFound
	KindConflict
	KindBadRequest
)

// BusinessError is an expected failure that maps to a 4xx response.
type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Kind: KindBusiness, Code: code}
}

// ErrNotFound builds the "<Entity> with ID <id> not found." error.
func ErrNotFound(entity, id string) error {
	return BusinessError{
		Kind:    KindNotFound,
		Code:    fmt.Sprintf("%s_not_found", lowerFirst(entity)),
		Message: fmt.Sprintf("%s with ID %s not found.", entity, id),
	}
}

func ErrConflict(code, message string) error {
	return BusinessError{Kind: KindConflict, Code: code, Message: message}
}

func ErrBadRequest(code, message string) error {
	return BusinessError{Kind: KindBadRequest, Code: code, Message: message}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
