package github

import (
	"context"
	"fmt"
	"net/url"
)

// userListOptions is the query for GET /users. The endpoint is offset based:
// since is the id after which listing starts.
type userListOptions struct {
	Since   int `url:"since"`
	PerPage int `url:"per_page,omitempty"`
}

// ListUsers fetches one page of users. Pages are mapped onto the since
// offset as (page-1)*perPage.
func (c *realClient) ListUsers(ctx context.Context, page, perPage int) ([]*UserRecord, error) {
	if page < 1 {
		page = 1
	}
	path, err := addOptions("users", userListOptions{Since: (page - 1) * perPage, PerPage: perPage})
	if err != nil {
		return nil, c.fail("list users", InvalidURL, 0, err)
	}
	var users []*UserRecord
	if err := c.get(ctx, "list users", path, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches a single user by login.
func (c *realClient) GetUser(ctx context.Context, login string) (*UserRecord, error) {
	if login == "" {
		return nil, c.fail("get user", InvalidURL, 0, fmt.Errorf("login is required"))
	}
	user := new(UserRecord)
	if err := c.get(ctx, "get user", "users/"+url.PathEscape(login), user); err != nil {
		return nil, err
	}
	return user, nil
}
