// Package store loads the repository catalog from its backing document.
// Sources never cache: every LoadRepositories call reads the document again,
// so edits on disk (or in the bucket) show up on the next request.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/KOFI-GYIMAH/uc-orb/internal/models"
	"github.com/KOFI-GYIMAH/uc-orb/pkg/errors"
)

// * decodeRepositories parses a JSON array of repositories and checks id uniqueness
func decodeRepositories(r io.Reader, origin string) ([]models.Repository, error) {
	dec := json.NewDecoder(r)

	var repos []models.Repository
	if err := dec.Decode(&repos); err != nil {
		return nil, errors.DataUnavailable(
			fmt.Sprintf("Could not parse repository data from %s", origin),
			err,
		)
	}

	// * the document must hold exactly one value
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("unexpected data after the repository list")
		}
		return nil, errors.DataUnavailable(
			fmt.Sprintf("Could not parse repository data from %s", origin),
			err,
		)
	}

	// * a literal `null` document is not a catalog
	if repos == nil {
		return nil, errors.DataUnavailable(
			fmt.Sprintf("Repository data in %s is not a list", origin),
			nil,
		)
	}

	seen := make(map[int]struct{}, len(repos))
	for _, repo := range repos {
		if _, dup := seen[repo.ID]; dup {
			return nil, errors.DataUnavailable(
				fmt.Sprintf("Duplicate repository id %d in %s", repo.ID, origin),
				nil,
			)
		}
		seen[repo.ID] = struct{}{}
	}

	return repos, nil
}

// * New picks a source from the DATA_SOURCE value: an s3:// URI or a file path.
// * The postgres source is built by the caller since it owns a connection.
func New(ctx context.Context, dataSource string) (models.Source, error) {
	if strings.HasPrefix(dataSource, "s3://") {
		return NewS3StoreFromURI(ctx, dataSource)
	}
	return NewFileStore(dataSource), nil
}
