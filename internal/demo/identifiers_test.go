package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIdentifier(t *testing.T) {
	cases := map[string]IdentifierClass{
		"goto":   IdentKeyword,
		"var":    IdentKeyword,
		"func":   IdentKeyword,
		"len":    IdentPredeclared,
		"string": IdentPredeclared,
		"nil":    IdentPredeclared,
		"value":  IdentOrdinary,
		"public": IdentOrdinary,
		"_x1":    IdentOrdinary,
		"2fast":  IdentInvalid,
		"":       IdentInvalid,
	}
	for name, want := range cases {
		assert.Equal(t, want, ClassifyIdentifier(name), name)
	}
}

func TestDescribeIdentifier(t *testing.T) {
	assert.Equal(t, "value: 5", describeIdentifier("value", 5))
	assert.Equal(t, "2fast: not a valid identifier", describeIdentifier("2fast", 5))
}
