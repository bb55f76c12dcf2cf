package models

import (
	"encoding/json"
	"fmt"
	"slices"
)

// * Repository is one catalog entry, shaped exactly like the backing file
type Repository struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Stars       int      `json:"stars"`
	Forks       int      `json:"forks"`
	Language    string   `json:"language"`
	Campus      string   `json:"campus"`
	Topics      []string `json:"topics"`
	LastUpdated string   `json:"last_updated"`
}

var requiredKeys = []string{
	"id", "name", "description", "url", "stars", "forks",
	"language", "campus", "topics", "last_updated",
}

// * UnmarshalJSON rejects objects missing any required key, so a half-filled
// * record never surfaces as a zero value
func (r *Repository) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for _, key := range requiredKeys {
		v, ok := raw[key]
		if !ok || string(v) == "null" {
			return fmt.Errorf("missing required field %q", key)
		}
	}

	var topics []*string
	if err := json.Unmarshal(raw["topics"], &topics); err != nil {
		return fmt.Errorf("field \"topics\": %w", err)
	}
	if slices.Contains(topics, nil) {
		return fmt.Errorf("field \"topics\": null entry")
	}

	type plain Repository
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Repository(p)

	return r.Validate()
}

func (r *Repository) Validate() error {
	if r.Stars < 0 {
		return fmt.Errorf("repository %d: stars must be non-negative", r.ID)
	}
	if r.Forks < 0 {
		return fmt.Errorf("repository %d: forks must be non-negative", r.ID)
	}
	if r.Topics == nil {
		return fmt.Errorf("repository %d: topics must be a list", r.ID)
	}
	return nil
}

// * FilterCriteria holds the optional search values, an empty field means absent
type FilterCriteria struct {
	Query    string `json:"query,omitempty"`
	Campus   string `json:"campus,omitempty"`
	Language string `json:"language,omitempty"`
	Topic    string `json:"topic,omitempty"`
}

func (c FilterCriteria) IsEmpty() bool {
	return c.Query == "" && c.Campus == "" && c.Language == "" && c.Topic == ""
}

type CatalogStats struct {
	Repositories int     `json:"repositories"`
	TotalStars   int     `json:"total_stars"`
	MeanStars    float64 `json:"mean_stars"`
	MedianStars  float64 `json:"median_stars"`
	MaxStars     int     `json:"max_stars"`
	TotalForks   int     `json:"total_forks"`
	MeanForks    float64 `json:"mean_forks"`
}
