package demo

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"pet-behavior-demo/internal/domain/animals"
)

var (
	ErrInvalidRoster = errors.New("invalid roster")
)

//go:embed roster.yaml
var defaultRoster []byte

type Roster struct {
	Scenes []Scene `yaml:"scenes"`
}

type Scene struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step es exactamente uno de: say, entity (+actions) o identifiers (+value).
type Step struct {
	Say string `yaml:"say,omitempty"`

	Entity  *EntitySpec `yaml:"entity,omitempty"`
	Actions []string    `yaml:"actions,omitempty"`

	Identifiers []string `yaml:"identifiers,omitempty"`
	Value       int      `yaml:"value,omitempty"`
}

// EntitySpec describe qué constructor usar. Sin name ni age, un smart_dog
// usa el constructor por defecto.
type EntitySpec struct {
	Kind     string  `yaml:"kind"`
	Name     *string `yaml:"name,omitempty"`
	Age      *int    `yaml:"age,omitempty"`
	FurColor string  `yaml:"fur_color,omitempty"`
	Color    string  `yaml:"color,omitempty"`
}

func (s EntitySpec) input() animals.CreateInput {
	return animals.CreateInput{
		Kind:     s.Kind,
		Name:     s.Name,
		Age:      s.Age,
		FurColor: s.FurColor,
		Color:    s.Color,
	}
}

// DefaultRoster devuelve la secuencia embebida en el binario.
func DefaultRoster() (Roster, error) {
	return LoadRoster(defaultRoster)
}

// LoadRoster parsea y valida un roster YAML. Las entidades se construyen
// una vez acá para fallar antes de imprimir nada.
func LoadRoster(data []byte) (Roster, error) {
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Roster{}, fmt.Errorf("%w: %v", ErrInvalidRoster, err)
	}
	if err := r.Validate(); err != nil {
		return Roster{}, err
	}
	return r, nil
}

func (r Roster) Validate() error {
	if len(r.Scenes) == 0 {
		return fmt.Errorf("%w: no scenes", ErrInvalidRoster)
	}
	for i, sc := range r.Scenes {
		if strings.TrimSpace(sc.Name) == "" {
			return fmt.Errorf("%w: scene #%d has no name", ErrInvalidRoster, i)
		}
		for j, st := range sc.Steps {
			if err := st.validate(); err != nil {
				return fmt.Errorf("scene %q step #%d: %w", sc.Name, j, err)
			}
		}
	}
	return nil
}

func (s Step) validate() error {
	forms := 0
	if s.Say != "" {
		forms++
	}
	if s.Entity != nil {
		forms++
	}
	if len(s.Identifiers) > 0 {
		forms++
	}
	if forms != 1 {
		return fmt.Errorf("%w: step must have exactly one of say, entity, identifiers", ErrInvalidRoster)
	}

	if s.Entity == nil {
		if len(s.Actions) > 0 {
			return fmt.Errorf("%w: actions require an entity", ErrInvalidRoster)
		}
		return nil
	}

	e, err := animals.Build(s.Entity.input())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRoster, err)
	}
	for _, raw := range s.Actions {
		a, err := animals.ParseAction(raw)
		if err != nil {
			return fmt.Errorf("%w: action %q: %w", ErrInvalidRoster, raw, err)
		}
		if !animals.Supports(e, a) {
			return fmt.Errorf("%w: %s does not support %q: %w", ErrInvalidRoster, e.Kind(), a, animals.ErrUnsupportedAction)
		}
	}
	return nil
}
