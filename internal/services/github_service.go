package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/devlink/server/internal/apperr"
	"github.com/devlink/server/internal/cache"
)

const githubCacheTTL = 10 * time.Minute

// GithubService proxies a user's public repository list from the
// GitHub API, with a cache-aside layer so repeated profile views don't
// burn through the upstream rate limit.
type GithubService struct {
	baseURL string
	token   string
	client  *http.Client
	cache   *cache.Cache
}

func NewGithubService(baseURL, token string, c *cache.Cache) *GithubService {
	if baseURL == "" {
		baseURL = "https://api.github.com"
	}
	return &GithubService{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   c,
	}
}

// Repos returns the five most recent repositories for the username as
// raw JSON, passed through untouched.
func (gs *GithubService) Repos(ctx context.Context, username string) (json.RawMessage, error) {
	key := "github:repos:" + username

	var repos json.RawMessage
	err := gs.cache.Aside(ctx, key, &repos, githubCacheTTL, func() error {
		fetched, err := gs.fetch(ctx, username)
		if err != nil {
			return err
		}
		repos = fetched
		return nil
	})
	if err != nil {
		return nil, err
	}

	return repos, nil
}

func (gs *GithubService) fetch(ctx context.Context, username string) (json.RawMessage, error) {
	uri := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc", gs.baseURL, username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("building github request: %v", err)
	}
	req.Header.Set("user-agent", "devlink-api")
	if gs.token != "" {
		req.Header.Set("Authorization", "token "+gs.token)
	}

	resp, err := gs.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperr.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: github returned %d", apperr.ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading github response: %v", apperr.ErrUpstream, err)
	}

	return json.RawMessage(body), nil
}
