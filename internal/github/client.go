package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KOFI-GYIMAH/uc-orb/pkg/errors"
)

var (
	baseURL = "https://api.github.com"
)

type Client struct {
	httpClient *http.Client
	token      string
}

func NewClient(token string) *Client {
	rl := NewRateLimiter()

	client := &http.Client{
		Timeout:   30 * time.Second,
		Transport: rl.Middleware(http.DefaultTransport),
	}

	return &Client{
		httpClient: client,
		token:      token,
	}
}

func (c *Client) makeRequest(ctx context.Context, method, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute HTTP request: %w", err)
	}
	return resp, nil
}

func (c *Client) GetRepository(ctx context.Context, owner, repo string) (*Repository, error) {
	resp, err := c.makeRequest(ctx, "GET", fmt.Sprintf("/repos/%s/%s", owner, repo))
	if err != nil {
		return nil, errors.New(
			"GITHUB_API_ERROR",
			"Failed to fetch repository from GitHub",
			fmt.Sprintf("Could not retrieve repository %s/%s from GitHub API", owner, repo),
			err,
			errors.LevelError,
		)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.New(
			"GITHUB_REPOSITORY_NOT_FOUND",
			"Repository not found on GitHub",
			fmt.Sprintf("The repository %s/%s does not exist or you don't have access to it", owner, repo),
			nil,
			errors.LevelInfo,
		)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(
			"GITHUB_API_ERROR",
			"Unexpected response from GitHub API",
			fmt.Sprintf("GitHub API returned status %d when fetching repository %s/%s", resp.StatusCode, owner, repo),
			nil,
			errors.LevelError,
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.New(
			"GITHUB_API_ERROR",
			"Failed to read GitHub API response",
			"Could not read the response body from GitHub API",
			err,
			errors.LevelError,
		)
	}

	var repository Repository
	if err := json.Unmarshal(body, &repository); err != nil {
		return nil, errors.New(
			"GITHUB_API_ERROR",
			"Failed to parse GitHub API response",
			"Could not understand the response from GitHub API",
			err,
			errors.LevelError,
		)
	}

	return &repository, nil
}

// * ParseRepositoryURL extracts owner and name from a github.com repository URL
func ParseRepositoryURL(raw string) (owner, name string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("invalid repository url %q: %w", raw, err)
	}

	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	if host != "github.com" {
		return "", "", fmt.Errorf("repository url %q is not hosted on github.com", raw)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("repository url should be in format https://github.com/owner/name")
	}

	return parts[0], strings.TrimSuffix(parts[1], ".git"), nil
}
