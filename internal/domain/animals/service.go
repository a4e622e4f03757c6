package animals

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// CreateInput: Name y Age son punteros para distinguir "no enviado".
// Un smart_dog sin name ni age usa el constructor por defecto.
type CreateInput struct {
	Kind     string
	Name     *string
	Age      *int
	FurColor string
	Color    string
}

// Build construye la entidad eligiendo el constructor según la variante.
func Build(in CreateInput) (Entity, error) {
	kind, err := ParseKind(in.Kind)
	if err != nil {
		return nil, err
	}

	if kind == KindSmartDog && in.Name == nil && in.Age == nil {
		d := NewDefaultSmartDog()
		d.SetColor(strings.TrimSpace(in.Color))
		return d, nil
	}
	if in.Name == nil || in.Age == nil {
		return nil, ErrInvalidInput
	}

	name := strings.TrimSpace(*in.Name)
	switch kind {
	case KindAnimal:
		a, err := NewAnimal(name, *in.Age)
		if err != nil {
			return nil, err
		}
		return a, nil
	case KindCat:
		c, err := NewCat(name, *in.Age, strings.TrimSpace(in.FurColor))
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		d, err := NewSmartDog(name, *in.Age)
		if err != nil {
			return nil, err
		}
		d.SetColor(strings.TrimSpace(in.Color))
		return d, nil
	}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Record, error) {
	e, err := Build(in)
	if err != nil {
		return Record{}, err
	}

	now := s.now()
	r := RecordOf(e)
	r.ID = uuid.NewString()
	r.CreatedAt = now
	r.UpdatedAt = now

	if err := s.repo.Create(ctx, r); err != nil {
		return Record{}, err
	}
	return r, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.repo.List(ctx)
}

// UpdateProfileInput sigue semántica PATCH: nil = no tocar.
type UpdateProfileInput struct {
	Name     *string
	Age      *int
	FurColor *string
	Color    *string
}

// UpdateProfile aplica los cambios a través de los setters de la variante,
// de modo que valen las mismas reglas que en construcción.
func (s *Service) UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (Record, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Record{}, err
	}

	e, err := current.Entity()
	if err != nil {
		return Record{}, err
	}

	switch v := e.(type) {
	case *SmartDog:
		if in.Name != nil || in.Age != nil {
			return Record{}, ErrImmutable
		}
		if in.FurColor != nil {
			return Record{}, ErrInvalidInput
		}
		if in.Color != nil {
			v.SetColor(strings.TrimSpace(*in.Color))
		}
	case *Cat:
		if in.Color != nil {
			return Record{}, ErrInvalidInput
		}
		if err := applyProfile(v.Animal, in); err != nil {
			return Record{}, err
		}
		if in.FurColor != nil {
			v.SetFurColor(strings.TrimSpace(*in.FurColor))
		}
	case *Animal:
		if in.Color != nil || in.FurColor != nil {
			return Record{}, ErrInvalidInput
		}
		if err := applyProfile(v, in); err != nil {
			return Record{}, err
		}
	default:
		return Record{}, ErrUnknownKind
	}

	updated := RecordOf(e)
	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, updated); err != nil {
		return Record{}, err
	}
	return updated, nil
}

func applyProfile(a *Animal, in UpdateProfileInput) error {
	if in.Name != nil {
		if err := a.SetName(strings.TrimSpace(*in.Name)); err != nil {
			return err
		}
	}
	if in.Age != nil {
		if err := a.SetAge(*in.Age); err != nil {
			return err
		}
	}
	return nil
}

// Perform ejecuta una acción sobre la entidad guardada y devuelve la línea de salida.
// No modifica el record.
func (s *Service) Perform(ctx context.Context, id string, action Action) (string, error) {
	r, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	e, err := r.Entity()
	if err != nil {
		return "", err
	}
	return Perform(e, action)
}
