package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/KOFI-GYIMAH/uc-orb/internal/github"
	"github.com/KOFI-GYIMAH/uc-orb/internal/models"
	"github.com/KOFI-GYIMAH/uc-orb/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGitHubClient struct {
	mock.Mock
}

func (m *MockGitHubClient) GetRepository(ctx context.Context, owner, name string) (*github.Repository, error) {
	args := m.Called(ctx, owner, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*github.Repository), args.Error(1)
}

type MockDatabase struct {
	MockSource
}

func (m *MockDatabase) WithTransaction(ctx context.Context, fn func(tx *sql.Tx) error) error {
	args := m.Called(ctx, fn)
	if err := fn(&sql.Tx{}); err != nil {
		return err
	}
	return args.Error(0)
}

func (m *MockDatabase) ReplaceRepositoriesTx(ctx context.Context, tx *sql.Tx, repos []models.Repository) error {
	args := m.Called(ctx, tx, repos)
	return args.Error(0)
}

func importFixture() []models.Repository {
	return []models.Repository{
		{ID: 1, Name: "ray", URL: "https://github.com/ray-project/ray", Stars: 1, Forks: 1, Topics: []string{}, LastUpdated: "2020-01-01"},
		{ID: 2, Name: "kent", URL: "https://genome.ucsc.edu/kent", Stars: 5, Forks: 2, Topics: []string{}, LastUpdated: "2021-01-01"},
		{ID: 3, Name: "gone", URL: "https://github.com/ucd/gone", Stars: 7, Forks: 3, Topics: []string{}, LastUpdated: "2022-01-01"},
	}
}

func TestImport_WithoutGitHub(t *testing.T) {
	src := new(MockSource)
	db := new(MockDatabase)
	src.On("LoadRepositories", mock.Anything).Return(importFixture(), nil)
	db.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	db.On("ReplaceRepositoriesTx", mock.Anything, mock.Anything, importFixture()).Return(nil)

	n, err := NewCatalogImporter(src, db, nil).Import(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	src.AssertExpectations(t)
	db.AssertExpectations(t)
}

func TestImport_EnrichesFromGitHub(t *testing.T) {
	src := new(MockSource)
	db := new(MockDatabase)
	gh := new(MockGitHubClient)

	src.On("LoadRepositories", mock.Anything).Return(importFixture(), nil)
	gh.On("GetRepository", mock.Anything, "ray-project", "ray").Return(&github.Repository{
		StargazersCount: 35000,
		ForksCount:      6000,
		PushedAt:        time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC),
	}, nil)
	gh.On("GetRepository", mock.Anything, "ucd", "gone").
		Return(nil, errors.New("GITHUB_REPOSITORY_NOT_FOUND", "Repository not found on GitHub", "", nil, errors.LevelInfo))

	want := importFixture()
	want[0].Stars, want[0].Forks, want[0].LastUpdated = 35000, 6000, "2024-05-01"

	db.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	db.On("ReplaceRepositoriesTx", mock.Anything, mock.Anything, want).Return(nil)

	n, err := NewCatalogImporter(src, db, gh).Import(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	gh.AssertExpectations(t)
	gh.AssertNotCalled(t, "GetRepository", mock.Anything, mock.Anything, "kent")
	db.AssertExpectations(t)
}

func TestImport_SourceFails(t *testing.T) {
	src := new(MockSource)
	db := new(MockDatabase)
	src.On("LoadRepositories", mock.Anything).Return(nil, errors.DataUnavailable("bad json", nil))

	n, err := NewCatalogImporter(src, db, nil).Import(context.Background())
	require.Error(t, err)
	assert.Zero(t, n)
	assert.True(t, errors.IsDataUnavailable(err))
	db.AssertNotCalled(t, "WithTransaction", mock.Anything, mock.Anything)
}

func TestImport_SaveFails(t *testing.T) {
	src := new(MockSource)
	db := new(MockDatabase)
	src.On("LoadRepositories", mock.Anything).Return(importFixture(), nil)
	db.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	db.On("ReplaceRepositoriesTx", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	n, err := NewCatalogImporter(src, db, nil).Import(context.Background())
	require.Error(t, err)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, assert.AnError)
}
