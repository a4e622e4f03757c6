package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-behavior-demo/internal/domain/animals"
)

func TestDefaultRoster_Scenes(t *testing.T) {
	roster, err := DefaultRoster()
	require.NoError(t, err)

	names := make([]string, 0, len(roster.Scenes))
	for _, sc := range roster.Scenes {
		names = append(names, sc.Name)
	}
	assert.Equal(t, []string{"hello", "constructors", "inheritance", "identifiers"}, names)

	first := roster.Scenes[1].Steps[0]
	require.NotNil(t, first.Entity)
	assert.Nil(t, first.Entity.Name)
	assert.Nil(t, first.Entity.Age)
}

func TestLoadRoster_Rejects(t *testing.T) {
	cases := map[string]string{
		"empty":         `scenes: []`,
		"not yaml":      `scenes: [`,
		"unnamed scene": "scenes:\n  - steps:\n      - say: hi\n",
		"two forms": `
scenes:
  - name: x
    steps:
      - say: hi
        identifiers: [a]
`,
		"no form": `
scenes:
  - name: x
    steps:
      - actions: [eat]
`,
		"unknown kind": `
scenes:
  - name: x
    steps:
      - entity: {kind: dragon, name: Smaug, age: 1}
`,
		"negative age": `
scenes:
  - name: x
    steps:
      - entity: {kind: animal, name: Rex, age: -1}
        actions: [eat]
`,
		"unsupported action": `
scenes:
  - name: x
    steps:
      - entity: {kind: animal, name: Rex, age: 1}
        actions: [meow]
`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadRoster([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalidRoster)
		})
	}
}

func TestLoadRoster_WrapsDomainErrors(t *testing.T) {
	_, err := LoadRoster([]byte(`
scenes:
  - name: x
    steps:
      - entity: {kind: cat, name: Tom, age: -2, fur_color: orange}
`))
	assert.ErrorIs(t, err, ErrInvalidRoster)
	assert.ErrorIs(t, err, animals.ErrInvalidAttribute)
	assert.Contains(t, err.Error(), `scene "x" step #0`)
}
