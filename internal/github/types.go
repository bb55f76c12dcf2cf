package github

import "time"

type Repository struct {
	FullName        string    `json:"full_name"`
	Description     string    `json:"description"`
	HTMLURL         string    `json:"html_url"`
	Language        string    `json:"language"`
	ForksCount      int       `json:"forks_count"`
	StargazersCount int       `json:"stargazers_count"`
	Topics          []string  `json:"topics"`
	PushedAt        time.Time `json:"pushed_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// * LastActivity is the most recent of the push and metadata update times
func (r *Repository) LastActivity() time.Time {
	if r.PushedAt.After(r.UpdatedAt) {
		return r.PushedAt
	}
	return r.UpdatedAt
}
