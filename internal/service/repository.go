package service

import (
	"context"
	"sort"
	"strings"

	"github.com/KOFI-GYIMAH/uc-orb/internal/models"
	"github.com/KOFI-GYIMAH/uc-orb/pkg/logger"
	"github.com/montanaflynn/stats"
)

// * RepositoryService answers catalog queries. It holds no records itself: every
// * call reloads the source so that edits to the backing store are seen at once.
type RepositoryService struct {
	source models.Source
}

func NewRepositoryService(source models.Source) *RepositoryService {
	return &RepositoryService{
		source: source,
	}
}

func (s *RepositoryService) ListAll(ctx context.Context) ([]models.Repository, error) {
	return s.source.LoadRepositories(ctx)
}

// * GetByID returns nil, nil when no record carries id
func (s *RepositoryService) GetByID(ctx context.Context, id int) (*models.Repository, error) {
	repos, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range repos {
		if repos[i].ID == id {
			return &repos[i], nil
		}
	}
	return nil, nil
}

// * Search narrows the catalog with each criterion that is set, in the order
// * query, campus, language, topic. Relative order is preserved.
func (s *RepositoryService) Search(ctx context.Context, criteria models.FilterCriteria) ([]models.Repository, error) {
	repos, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if criteria.IsEmpty() {
		return repos, nil
	}

	if criteria.Query != "" {
		q := strings.ToLower(criteria.Query)
		repos = filter(repos, func(r *models.Repository) bool {
			return strings.Contains(strings.ToLower(r.Name), q) ||
				strings.Contains(strings.ToLower(r.Description), q)
		})
	}

	if criteria.Campus != "" {
		campus := strings.ToLower(criteria.Campus)
		repos = filter(repos, func(r *models.Repository) bool {
			return strings.Contains(strings.ToLower(r.Campus), campus)
		})
	}

	// * language is an exact match, unlike campus and topic
	if criteria.Language != "" {
		language := strings.ToLower(criteria.Language)
		repos = filter(repos, func(r *models.Repository) bool {
			return strings.ToLower(r.Language) == language
		})
	}

	if criteria.Topic != "" {
		topic := strings.ToLower(criteria.Topic)
		repos = filter(repos, func(r *models.Repository) bool {
			for _, t := range r.Topics {
				if strings.Contains(strings.ToLower(t), topic) {
					return true
				}
			}
			return false
		})
	}

	logger.Debug("Search %+v matched %d repositories", criteria, len(repos))
	return repos, nil
}

func (s *RepositoryService) DistinctCampuses(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, func(r *models.Repository) []string { return []string{r.Campus} })
}

func (s *RepositoryService) DistinctLanguages(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, func(r *models.Repository) []string { return []string{r.Language} })
}

func (s *RepositoryService) DistinctTopics(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, func(r *models.Repository) []string { return r.Topics })
}

// * Stats summarises stars and forks across the catalog
func (s *RepositoryService) Stats(ctx context.Context) (*models.CatalogStats, error) {
	repos, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := &models.CatalogStats{Repositories: len(repos)}
	if len(repos) == 0 {
		return result, nil
	}

	starData := make(stats.Float64Data, len(repos))
	forkData := make(stats.Float64Data, len(repos))
	for i, r := range repos {
		starData[i] = float64(r.Stars)
		forkData[i] = float64(r.Forks)
		result.TotalStars += r.Stars
		result.TotalForks += r.Forks
		result.MaxStars = max(result.MaxStars, r.Stars)
	}

	// * errors only occur on empty input, which is handled above
	result.MeanStars, _ = stats.Mean(starData)
	result.MedianStars, _ = stats.Median(starData)
	result.MeanForks, _ = stats.Mean(forkData)

	result.MeanStars, _ = stats.Round(result.MeanStars, 2)
	result.MeanForks, _ = stats.Round(result.MeanForks, 2)

	return result, nil
}

func (s *RepositoryService) distinct(ctx context.Context, values func(r *models.Repository) []string) ([]string, error) {
	repos, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	out := []string{}
	for i := range repos {
		for _, v := range values(&repos[i]) {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}

	sort.Strings(out)
	return out, nil
}

func filter(repos []models.Repository, keep func(r *models.Repository) bool) []models.Repository {
	out := make([]models.Repository, 0, len(repos))
	for i := range repos {
		if keep(&repos[i]) {
			out = append(out, repos[i])
		}
	}
	return out
}
