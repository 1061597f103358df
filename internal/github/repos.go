package github

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

// repositoryListOptions is the query for GET /repositories.
type repositoryListOptions struct {
	Page    int    `url:"page,omitempty"`
	PerPage int    `url:"per_page,omitempty"`
	Sort    string `url:"sort,omitempty"`
}

// ListRepositories fetches one page of public repositories, most recently updated first.
func (c *realClient) ListRepositories(ctx context.Context, page, perPage int) ([]*RepositoryRecord, error) {
	if page < 1 {
		page = 1
	}
	path, err := addOptions("repositories", repositoryListOptions{Page: page, PerPage: perPage, Sort: "updated"})
	if err != nil {
		return nil, c.fail("list repositories", InvalidURL, 0, err)
	}
	var repos []*RepositoryRecord
	if err := c.get(ctx, "list repositories", path, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// GetRepository fetches a single repository by owner and name.
func (c *realClient) GetRepository(ctx context.Context, owner, name string) (*RepositoryRecord, error) {
	if owner == "" || name == "" {
		return nil, c.fail("get repository", InvalidURL, 0, fmt.Errorf("owner and name are required"))
	}
	path := fmt.Sprintf("repos/%s/%s", url.PathEscape(owner), url.PathEscape(name))
	repo := new(RepositoryRecord)
	if err := c.get(ctx, "get repository", path, repo); err != nil {
		return nil, err
	}
	return repo, nil
}

// addOptions adds the parameters in opts as URL query parameters to s.
func addOptions(s string, opts any) (string, error) {
	u, err := url.Parse(s)
	if err != nil {
		return s, err
	}
	qs, err := query.Values(opts)
	if err != nil {
		return s, err
	}
	u.RawQuery = qs.Encode()
	return u.String(), nil
}
