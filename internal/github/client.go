// Package github provides a small client for verifying GitHub repositories.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// RepoInfo identifies a GitHub repository
type RepoInfo struct {
	Owner string
	Name  string
}

// ParseRepo parses an "owner/name" repository reference
func ParseRepo(ref string) (RepoInfo, error) {
	parts := strings.Split(strings.TrimSpace(ref), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return RepoInfo{}, fmt.Errorf("invalid repository %q: expected owner/name", ref)
	}
	return RepoInfo{
		Owner: parts[0],
		Name:  strings.TrimSuffix(parts[1], ".git"),
	}, nil
}

// RemoteURL returns the https clone URL for the repository
func (r RepoInfo) RemoteURL() string {
	return fmt.Sprintf("https://github.com/%s/%s.git", r.Owner, r.Name)
}

// String returns the owner/name form
func (r RepoInfo) String() string {
	return r.Owner + "/" + r.Name
}

// TokenFromEnv returns the GitHub token from the environment, if any.
// GITHUB_TOKEN takes precedence over GH_TOKEN.
func TokenFromEnv() string {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token
	}
	return os.Getenv("GH_TOKEN")
}

// Client wraps the GitHub API client
type Client struct {
	client *github.Client
}

// NewClient creates an authenticated GitHub client
func NewClient(ctx context.Context, token string) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	return &Client{client: github.NewClient(tc)}
}

// SetBaseURL points the client at an alternate API endpoint
func (c *Client) SetBaseURL(rawURL string) error {
	if !strings.HasSuffix(rawURL, "/") {
		rawURL += "/"
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("failed to parse base URL %s: %w", rawURL, err)
	}
	c.client.BaseURL = parsed
	return nil
}

// RepoExists reports whether the repository exists and is reachable
// with the client's credentials. A 404 is not an error.
func (c *Client) RepoExists(ctx context.Context, repo RepoInfo) (bool, error) {
	_, resp, err := c.client.Repositories.Get(ctx, repo.Owner, repo.Name)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to query repository %s: %w", repo, err)
	}
	return true, nil
}
