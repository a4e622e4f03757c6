package animals

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAttribute  = errors.New("invalid attribute")
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("animal not found")
	ErrImmutable         = errors.New("attribute is immutable")
	ErrUnsupportedAction = errors.New("unsupported action")
	ErrUnknownKind       = errors.New("unknown kind")
)

// ConstructionError se devuelve cuando un constructor o setter recibe un
// atributo inválido. Siempre envuelve ErrInvalidAttribute.
type ConstructionError struct {
	Kind  Kind
	Field string
	Value any
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s: %s %q=%v", e.Kind, ErrInvalidAttribute, e.Field, e.Value)
}

func (e *ConstructionError) Unwrap() error { return ErrInvalidAttribute }
