package store

import (
	"context"
	"testing"

	"github.com/julesc00/planetaryApi/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mercury() types.Planet {
	return types.Planet{
		Name:     "Mercury",
		Type:     "Class D",
		HomeStar: "Sol",
		Mass:     3.258e23,
		Radius:   1516,
		Distance: 35.98e6,
	}
}

func TestPlanetRepositoryCreateAndGetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanetRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, mercury())
	require.NoError(t, err)
	assert.Greater(t, created.ID, 0)

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestPlanetRepositoryGetByName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanetRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, mercury())
	require.NoError(t, err)

	found, err := repo.GetByName(ctx, "Mercury")
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = repo.GetByName(ctx, "Vulcan")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlanetRepositoryList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanetRepository(db)
	ctx := context.Background()

	planets, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, planets)
	assert.Empty(t, planets)

	_, err = repo.Create(ctx, mercury())
	require.NoError(t, err)

	venus := mercury()
	venus.Name = "Venus"
	venus.Type = "Class K"
	_, err = repo.Create(ctx, venus)
	require.NoError(t, err)

	planets, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, planets, 2)
}

func TestPlanetRepositoryUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanetRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, mercury())
	require.NoError(t, err)

	updated := created
	updated.Mass = 9.999e23

	_, err = repo.Update(ctx, updated)
	require.NoError(t, err)

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 9.999e23, found.Mass)
	assert.Equal(t, created.Name, found.Name)
	assert.Equal(t, created.Type, found.Type)
	assert.Equal(t, created.HomeStar, found.HomeStar)
	assert.Equal(t, created.Radius, found.Radius)
	assert.Equal(t, created.Distance, found.Distance)
}

func TestPlanetRepositoryUpdateNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanetRepository(db)

	missing := mercury()
	missing.ID = 9999

	_, err := repo.Update(context.Background(), missing)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlanetRepositoryDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanetRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, mercury())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlanetRepositoryDeleteNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanetRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, mercury())
	require.NoError(t, err)

	err = repo.Delete(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM planets").Scan(&count))
	assert.Equal(t, 1, count)
}
