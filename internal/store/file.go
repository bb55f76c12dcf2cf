package store

import (
	"context"
	"fmt"
	"os"

	"github.com/KOFI-GYIMAH/uc-orb/internal/models"
	"github.com/KOFI-GYIMAH/uc-orb/pkg/errors"
	"github.com/KOFI-GYIMAH/uc-orb/pkg/logger"
)

var _ models.Source = (*FileStore)(nil)

type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) LoadRepositories(ctx context.Context) ([]models.Repository, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, errors.DataUnavailable(
			fmt.Sprintf("Could not open repository data file %s", s.path),
			err,
		)
	}
	defer f.Close()

	repos, err := decodeRepositories(f, s.path)
	if err != nil {
		return nil, err
	}

	logger.Debug("Loaded %d repositories from %s", len(repos), s.path)
	return repos, nil
}
