package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/julesc00/planetaryApi/types"
)

// PlanetRepository handles persistence for planets.
type PlanetRepository struct {
	db *sql.DB
}

func NewPlanetRepository(db *sql.DB) *PlanetRepository {
	return &PlanetRepository{db: db}
}

func (r *PlanetRepository) List(ctx context.Context) ([]types.Planet, error) {
	const query = `
		SELECT planet_id, planet_name, planet_type, home_star, mass, radius, distance
		FROM planets`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	planets := make([]types.Planet, 0)
	for rows.Next() {
		var planet types.Planet
		if err := rows.Scan(
			&planet.ID,
			&planet.Name,
			&planet.Type,
			&planet.HomeStar,
			&planet.Mass,
			&planet.Radius,
			&planet.Distance,
		); err != nil {
			return nil, err
		}
		planets = append(planets, planet)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return planets, nil
}

func (r *PlanetRepository) GetByID(ctx context.Context, id int) (types.Planet, error) {
	const query = `
		SELECT planet_id, planet_name, planet_type, home_star, mass, radius, distance
		FROM planets
		WHERE planet_id = $1`
	return r.getPlanet(ctx, query, id)
}

func (r *PlanetRepository) GetByName(ctx context.Context, name string) (types.Planet, error) {
	const query = `
		SELECT planet_id, planet_name, planet_type, home_star, mass, radius, distance
		FROM planets
		WHERE planet_name = $1`
	return r.getPlanet(ctx, query, name)
}

func (r *PlanetRepository) getPlanet(ctx context.Context, query string, arg any) (types.Planet, error) {
	var planet types.Planet
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&planet.ID,
		&planet.Name,
		&planet.Type,
		&planet.HomeStar,
		&planet.Mass,
		&planet.Radius,
		&planet.Distance,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Planet{}, ErrNotFound
		}
		return types.Planet{}, err
	}
	return planet, nil
}

func (r *PlanetRepository) Create(ctx context.Context, planet types.Planet) (types.Planet, error) {
	const query = `
		INSERT INTO planets (planet_name, planet_type, home_star, mass, radius, distance)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING planet_id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		planet.Name,
		planet.Type,
		planet.HomeStar,
		planet.Mass,
		planet.Radius,
		planet.Distance,
	).Scan(&planet.ID); err != nil {
		if isUniqueViolation(err) {
			return types.Planet{}, ErrConflict
		}
		return types.Planet{}, err
	}
	return planet, nil
}

// Update replaces every mutable field of the row identified by planet_id.
func (r *PlanetRepository) Update(ctx context.Context, planet types.Planet) (types.Planet, error) {
	const query = `
		UPDATE planets
		SET planet_name = $1,
			planet_type = $2,
			home_star = $3,
			mass = $4,
			radius = $5,
			distance = $6
		WHERE planet_id = $7`
	result, err := r.db.ExecContext(
		ctx,
		query,
		planet.Name,
		planet.Type,
		planet.HomeStar,
		planet.Mass,
		planet.Radius,
		planet.Distance,
		planet.ID,
	)
	if err != nil {
		return types.Planet{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.Planet{}, err
	}
	if affected == 0 {
		return types.Planet{}, ErrNotFound
	}
	return planet, nil
}

func (r *PlanetRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM planets WHERE planet_id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
