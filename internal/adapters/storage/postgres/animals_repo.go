package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-behavior-demo/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

const animalColumns = `
	id, kind,
	name, age, fur_color, color,
	created_at, updated_at
`

func (r *AnimalsRepo) Create(ctx context.Context, rec animals.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (`+animalColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		rec.ID,
		string(rec.Kind),
		rec.Name,
		rec.Age,
		rec.FurColor,
		rec.Color,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return err
}

func (r *AnimalsRepo) Update(ctx context.Context, rec animals.Record) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animals
		SET
			name = $2,
			age = $3,
			fur_color = $4,
			color = $5,
			updated_at = $6
		WHERE id = $1
	`,
		rec.ID,
		rec.Name,
		rec.Age,
		rec.FurColor,
		rec.Color,
		rec.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Record{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+animalColumns+`
		FROM animals
		WHERE id = $1
	`, id)

	rec, err := scanAnimal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return animals.Record{}, ErrNotFound
		}
		return animals.Record{}, err
	}
	return rec, nil
}

func (r *AnimalsRepo) List(ctx context.Context) ([]animals.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+animalColumns+`
		FROM animals
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Record, 0)
	for rows.Next() {
		rec, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnimal(s rowScanner) (animals.Record, error) {
	var rec animals.Record
	var kind string
	if err := s.Scan(
		&rec.ID,
		&kind,
		&rec.Name,
		&rec.Age,
		&rec.FurColor,
		&rec.Color,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return animals.Record{}, err
	}
	rec.Kind = animals.Kind(kind)
	return rec, nil
}
