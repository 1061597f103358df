package github

// Owner is the account that owns a repository.
type Owner struct {
	Login     string  `json:"login"`
	ID        int64   `json:"id"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	HTMLURL   *string `json:"html_url,omitempty"`
	Type      *string `json:"type,omitempty"`
}

// GetAvatarURL returns the AvatarURL field if it's non-nil, zero value otherwise.
func (o *Owner) GetAvatarURL() string {
	if o == nil || o.AvatarURL == nil {
		return ""
	}
	return *o.AvatarURL
}

// RepositoryRecord is a repository as returned by /repositories and
// /repos/{owner}/{repo}. The list endpoint omits most counters, so they
// are pointers.
type RepositoryRecord struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	FullName        string  `json:"full_name"`
	Description     *string `json:"description,omitempty"`
	Private         *bool   `json:"private,omitempty"`
	Language        *string `json:"language,omitempty"`
	StargazersCount *int    `json:"stargazers_count,omitempty"`
	ForksCount      *int    `json:"forks_count,omitempty"`
	Owner           *Owner  `json:"owner,omitempty"`
	HTMLURL         string  `json:"html_url"`
}

// GetOwner returns the Owner field.
func (r *RepositoryRecord) GetOwner() *Owner {
	if r == nil {
		return nil
	}
	return r.Owner
}

// GetStargazersCount returns the StargazersCount field if it's non-nil, zero value otherwise.
func (r *RepositoryRecord) GetStargazersCount() int {
	if r == nil || r.StargazersCount == nil {
		return 0
	}
	return *r.StargazersCount
}

// GetForksCount returns the ForksCount field if it's non-nil, zero value otherwise.
func (r *RepositoryRecord) GetForksCount() int {
	if r == nil || r.ForksCount == nil {
		return 0
	}
	return *r.ForksCount
}

// GetPrivate returns the Private field if it's non-nil, zero value otherwise.
func (r *RepositoryRecord) GetPrivate() bool {
	if r == nil || r.Private == nil {
		return false
	}
	return *r.Private
}

// UserRecord is a user as returned by /users and /users/{login}.
type UserRecord struct {
	ID          int64   `json:"id"`
	Login       string  `json:"login"`
	Name        *string `json:"name,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	PublicRepos *int    `json:"public_repos,omitempty"`
	Following   *int    `json:"following,omitempty"`
	Followers   *int    `json:"followers,omitempty"`
	HTMLURL     string  `json:"html_url"`
	Type        *string `json:"type,omitempty"`
}

// GetAvatarURL returns the AvatarURL field if it's non-nil, zero value otherwise.
func (u *UserRecord) GetAvatarURL() string {
	if u == nil || u.AvatarURL == nil {
		return ""
	}
	return *u.AvatarURL
}
