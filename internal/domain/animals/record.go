package animals

import "time"

// Record es la forma persistida de una entidad en el catálogo.
type Record struct {
	ID   string
	Kind Kind

	Name     string
	Age      int
	FurColor string // solo cat
	Color    string // solo smart_dog

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Entity reconstruye la variante concreta a partir del record.
// Pasa por los mismos constructores, así que un record corrupto falla igual.
func (r Record) Entity() (Entity, error) {
	switch r.Kind {
	case KindAnimal:
		a, err := NewAnimal(r.Name, r.Age)
		if err != nil {
			return nil, err
		}
		return a, nil
	case KindCat:
		c, err := NewCat(r.Name, r.Age, r.FurColor)
		if err != nil {
			return nil, err
		}
		return c, nil
	case KindSmartDog:
		d, err := NewSmartDog(r.Name, r.Age)
		if err != nil {
			return nil, err
		}
		d.SetColor(r.Color)
		return d, nil
	default:
		return nil, ErrUnknownKind
	}
}

// RecordOf toma un snapshot de los atributos de e.
func RecordOf(e Entity) Record {
	r := Record{
		Kind: e.Kind(),
		Name: e.Name(),
		Age:  e.Age(),
	}
	switch v := e.(type) {
	case *Cat:
		r.FurColor = v.FurColor()
	case *SmartDog:
		r.Color = v.Color()
	}
	return r
}
