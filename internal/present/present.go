// Package present turns GitHub records into display-ready items. Defaults for
// missing optional fields are filled in one place, here, so every surface
// (TUI, tables, JSON export) shows the same placeholders.
package present

import (
	"net/url"

	ghub "github.com/stahnma/gh-explore/internal/github"
)

// Placeholders substituted for absent optional fields.
const (
	NoDescription     = "No description"
	NoLanguage        = "No language"
	NoName            = "No name"
	NoBio             = "No bio"
	PlaceholderAvatar = "placeholder:avatar"
)

// Item is a display record: either a *Repository or a *User.
type Item interface {
	// Key identifies the item for rendering; it is not used for de-duplication.
	Key() string
}

// Repository is the display form of a RepositoryRecord.
type Repository struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Owner       string `json:"owner"`
	AvatarURL   string `json:"avatar_url"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Private     bool   `json:"private"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	HTMLURL     string `json:"html_url"`
}

func (r *Repository) Key() string { return r.FullName }

// User is the display form of a UserRecord.
type User struct {
	ID          int64  `json:"id"`
	Login       string `json:"login"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatar_url"`
	Bio         string `json:"bio"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	HTMLURL     string `json:"html_url"`
}

func (u *User) Key() string { return u.Login }

// FromRepository fills defaults for r.
func FromRepository(r *ghub.RepositoryRecord) *Repository {
	owner := r.GetOwner()
	view := &Repository{
		ID:          r.ID,
		Name:        r.Name,
		FullName:    r.FullName,
		AvatarURL:   avatar(owner.GetAvatarURL()),
		Description: text(r.Description, NoDescription),
		Language:    text(r.Language, NoLanguage),
		Private:     r.GetPrivate(),
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		HTMLURL:     r.HTMLURL,
	}
	if owner != nil {
		view.Owner = owner.Login
	}
	if view.FullName == "" && view.Owner != "" {
		view.FullName = view.Owner + "/" + view.Name
	}
	return view
}

// FromUser fills defaults for u.
func FromUser(u *ghub.UserRecord) *User {
	return &User{
		ID:          u.ID,
		Login:       u.Login,
		Name:        text(u.Name, NoName),
		AvatarURL:   avatar(u.GetAvatarURL()),
		Bio:         text(u.Bio, NoBio),
		PublicRepos: count(u.PublicRepos),
		Followers:   count(u.Followers),
		Following:   count(u.Following),
		HTMLURL:     u.HTMLURL,
	}
}

// Repositories maps a page of records, preserving API order.
func Repositories(records []*ghub.RepositoryRecord) []Item {
	items := make([]Item, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		items = append(items, FromRepository(r))
	}
	return items
}

// Users maps a page of records, preserving API order.
func Users(records []*ghub.UserRecord) []Item {
	items := make([]Item, 0, len(records))
	for _, u := range records {
		if u == nil {
			continue
		}
		items = append(items, FromUser(u))
	}
	return items
}

func text(s *string, placeholder string) string {
	if s == nil || *s == "" {
		return placeholder
	}
	return *s
}

func count(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}

// avatar returns raw if it is an absolute http(s) URL, the placeholder otherwise.
func avatar(raw string) string {
	if raw == "" {
		return PlaceholderAvatar
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return PlaceholderAvatar
	}
	return raw
}
