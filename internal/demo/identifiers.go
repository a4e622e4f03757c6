package demo

import (
	"fmt"
	"go/token"
	"go/types"
)

type IdentifierClass string

const (
	IdentKeyword     IdentifierClass = "keyword"
	IdentPredeclared IdentifierClass = "predeclared"
	IdentOrdinary    IdentifierClass = "ordinary"
	IdentInvalid     IdentifierClass = "invalid"
)

// ClassifyIdentifier aplica las reglas de identificadores de Go.
// Los predeclarados (len, string, nil...) se pueden redeclarar; las keywords no.
func ClassifyIdentifier(name string) IdentifierClass {
	switch {
	case token.IsKeyword(name):
		return IdentKeyword
	case !token.IsIdentifier(name):
		return IdentInvalid
	case types.Universe.Lookup(name) != nil:
		return IdentPredeclared
	default:
		return IdentOrdinary
	}
}

func describeIdentifier(name string, value int) string {
	switch ClassifyIdentifier(name) {
	case IdentKeyword:
		return fmt.Sprintf("%s: keyword, cannot be used as an identifier", name)
	case IdentInvalid:
		return fmt.Sprintf("%s: not a valid identifier", name)
	case IdentPredeclared:
		return fmt.Sprintf("%s: %d (shadows a predeclared identifier)", name, value)
	default:
		return fmt.Sprintf("%s: %d", name, value)
	}
}
