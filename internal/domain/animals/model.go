package animals

import "strings"

// Kind identifica la variante concreta de una entidad.
// @Enum animal, cat, smart_dog
type Kind string

const (
	KindAnimal   Kind = "animal"
	KindCat      Kind = "cat"
	KindSmartDog Kind = "smart_dog"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindAnimal, KindCat, KindSmartDog:
		return k, nil
	default:
		return "", ErrUnknownKind
	}
}

// Entity es lo mínimo que expone cualquier variante.
type Entity interface {
	Kind() Kind
	Name() string
	Age() int
}

// Behavior es el conjunto de capacidades {eat, sleep}.
// Cada variante puede redefinir cualquiera de las dos.
type Behavior interface {
	Entity
	Eat() string
	Sleep() string
}

type Meower interface {
	Meow() string
}

type Barker interface {
	Bark() string
}

// Animal es la entidad base mutable (name, age con accessors).
type Animal struct {
	kind Kind
	name string
	age  int
}

func NewAnimal(name string, age int) (*Animal, error) {
	a := &Animal{}
	if err := a.init(KindAnimal, name, age); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Animal) init(kind Kind, name string, age int) error {
	if err := validateName(kind, name); err != nil {
		return err
	}
	if err := validateAge(kind, age); err != nil {
		return err
	}
	a.kind = kind
	a.name = name
	a.age = age
	return nil
}

func (a *Animal) Kind() Kind   { return a.kind }
func (a *Animal) Name() string { return a.name }
func (a *Animal) Age() int     { return a.age }

func (a *Animal) SetName(name string) error {
	if err := validateName(a.kind, name); err != nil {
		return err
	}
	a.name = name
	return nil
}

func (a *Animal) SetAge(age int) error {
	if err := validateAge(a.kind, age); err != nil {
		return err
	}
	a.age = age
	return nil
}

func (a *Animal) Eat() string   { return a.name + " is eating..." }
func (a *Animal) Sleep() string { return a.name + " is sleeping..." }

// Cat especializa Animal: agrega furColor, redefine Eat y suma Meow.
// Sleep se hereda tal cual del Animal embebido.
type Cat struct {
	*Animal
	furColor string
}

func NewCat(name string, age int, furColor string) (*Cat, error) {
	base := &Animal{}
	if err := base.init(KindCat, name, age); err != nil {
		return nil, err
	}
	return &Cat{Animal: base, furColor: furColor}, nil
}

// Eat no deja espacio entre el nombre y "is".
func (c *Cat) Eat() string  { return c.Name() + "is eating silently..." }
func (c *Cat) Meow() string { return c.Name() + " says meow..." }

func (c *Cat) FurColor() string            { return c.furColor }
func (c *Cat) SetFurColor(furColor string) { c.furColor = furColor }

func validateName(kind Kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return &ConstructionError{Kind: kind, Field: "name", Value: name}
	}
	return nil
}

func validateAge(kind Kind, age int) error {
	if age < 0 {
		return &ConstructionError{Kind: kind, Field: "age", Value: age}
	}
	return nil
}
