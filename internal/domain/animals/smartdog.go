package animals

import "strconv"

const (
	DefaultSmartDogName = "Xiaoming"
	DefaultSmartDogAge  = 0
)

// SmartDog solo se configura al construirse: name y age no tienen setters.
// color sí es mutable.
type SmartDog struct {
	name  string
	age   int
	color string
}

// NewDefaultSmartDog es la forma sin argumentos; nunca falla.
func NewDefaultSmartDog() *SmartDog {
	return &SmartDog{name: DefaultSmartDogName, age: DefaultSmartDogAge}
}

func NewSmartDog(name string, age int) (*SmartDog, error) {
	if err := validateName(KindSmartDog, name); err != nil {
		return nil, err
	}
	if err := validateAge(KindSmartDog, age); err != nil {
		return nil, err
	}
	return &SmartDog{name: name, age: age}, nil
}

func (d *SmartDog) Kind() Kind   { return KindSmartDog }
func (d *SmartDog) Name() string { return d.name }
func (d *SmartDog) Age() int     { return d.age }

func (d *SmartDog) Color() string         { return d.color }
func (d *SmartDog) SetColor(color string) { d.color = color }

func (d *SmartDog) Bark() string {
	return d.name + " aged " + strconv.Itoa(d.age) + " says Woof!"
}
