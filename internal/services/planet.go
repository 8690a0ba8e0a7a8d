package services

import (
	"context"

	"github.com/julesc00/planetaryApi/types"
)

// PlanetRepository defines persistence operations for planets.
type PlanetRepository interface {
	List(ctx context.Context) ([]types.Planet, error)
	GetByID(ctx context.Context, id int) (types.Planet, error)
	GetByName(ctx context.Context, name string) (types.Planet, error)
	Create(ctx context.Context, planet types.Planet) (types.Planet, error)
	Update(ctx context.Context, planet types.Planet) (types.Planet, error)
	Delete(ctx context.Context, id int) error
}

// PlanetService encapsulates planet use-cases.
type PlanetService struct {
	repo PlanetRepository
}

func NewPlanetService(repo PlanetRepository) *PlanetService {
	return &PlanetService{repo: repo}
}

func (s *PlanetService) List(ctx context.Context) ([]types.Planet, error) {
	return s.repo.List(ctx)
}

func (s *PlanetService) GetByID(ctx context.Context, id int) (types.Planet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PlanetService) GetByName(ctx context.Context, name string) (types.Planet, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *PlanetService) Create(ctx context.Context, planet types.Planet) (types.Planet, error) {
	return s.repo.Create(ctx, planet)
}

func (s *PlanetService) Update(ctx context.Context, planet types.Planet) (types.Planet, error) {
	return s.repo.Update(ctx, planet)
}

func (s *PlanetService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
