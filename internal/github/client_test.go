package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListRepositories_QueryAndHeaders(t *testing.T) {
	client, mux := newTestClient(t, "ghp_test")
	mux.HandleFunc("GET /repositories", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("page"); got != "2" {
			t.Errorf("page = %q, want 2", got)
		}
		if got := q.Get("per_page"); got != "5" {
			t.Errorf("per_page = %q, want 5", got)
		}
		if got := q.Get("sort"); got != "updated" {
			t.Errorf("sort = %q, want updated", got)
		}
		if got := r.Header.Get("Accept"); got != "application/vnd.github+json" {
			t.Errorf("Accept = %q", got)
		}
		if got := r.Header.Get("X-GitHub-Api-Version"); got != "2022-11-28" {
			t.Errorf("X-GitHub-Api-Version = %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer ghp_test" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		writeJSON(w, `[
			{"id": 1, "name": "grit", "full_name": "mojombo/grit", "html_url": "https://github.com/mojombo/grit",
			 "owner": {"login": "mojombo", "id": 1, "avatar_url": "https://avatars.githubusercontent.com/u/1?v=4"}},
			{"id": 26, "name": "merb-core", "full_name": "wycats/merb-core", "description": "Merb Core",
			 "html_url": "https://github.com/wycats/merb-core", "owner": {"login": "wycats", "id": 4}}
		]`)
	})

	repos, err := client.ListRepositories(context.Background(), 2, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(repos) != 2 {
		t.Fatalf("got %d repos, want 2", len(repos))
	}
	if repos[0].FullName != "mojombo/grit" {
		t.Errorf("first repo = %q, want mojombo/grit", repos[0].FullName)
	}
	if repos[0].Description != nil {
		t.Errorf("expected nil description, got %q", *repos[0].Description)
	}
	if repos[1].Description == nil || *repos[1].Description != "Merb Core" {
		t.Errorf("second repo description = %v", repos[1].Description)
	}
	if repos[0].GetOwner().GetAvatarURL() == "" {
		t.Error("expected owner avatar URL")
	}
}

func TestListRepositories_Unauthenticated(t *testing.T) {
	client, mux := newTestClient(t, "")
	mux.HandleFunc("GET /repositories", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("expected no Authorization header, got %q", got)
		}
		writeJSON(w, `[]`)
	})

	repos, err := client.ListRepositories(context.Background(), 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(repos) != 0 {
		t.Errorf("got %d repos, want 0", len(repos))
	}
}

func TestListUsers_SinceOffset(t *testing.T) {
	tests := []struct {
		page, perPage int
		wantSince     string
	}{
		{1, 5, "0"},
		{2, 5, "5"},
		{4, 10, "30"},
		{0, 5, "0"},
	}
	for _, tt := range tests {
		client, mux := newTestClient(t, "")
		var gotSince, gotPerPage string
		mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
			gotSince = r.URL.Query().Get("since")
			gotPerPage = r.URL.Query().Get("per_page")
			writeJSON(w, `[{"login": "octocat", "id": 583231, "html_url": "https://github.com/octocat"}]`)
		})

		users, err := client.ListUsers(context.Background(), tt.page, tt.perPage)
		if err != nil {
			t.Fatal(err)
		}
		if gotSince != tt.wantSince {
			t.Errorf("page %d: since = %q, want %q", tt.page, gotSince, tt.wantSince)
		}
		if gotPerPage == "" {
			t.Errorf("page %d: expected per_page", tt.page)
		}
		if len(users) != 1 || users[0].Login != "octocat" {
			t.Errorf("page %d: unexpected users %+v", tt.page, users)
		}
	}
}

func TestGetUser(t *testing.T) {
	client, mux := newTestClient(t, "")
	mux.HandleFunc("GET /users/{login}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("login") != "testUser" {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, `{"login": "testUser", "id": 7, "name": "Test User", "bio": null,
			"public_repos": 3, "followers": 10, "following": 2, "html_url": "https://github.com/testUser"}`)
	})

	user, err := client.GetUser(context.Background(), "testUser")
	if err != nil {
		t.Fatal(err)
	}
	if user.Login != "testUser" {
		t.Errorf("login = %q, want testUser", user.Login)
	}
	if user.Name == nil || *user.Name != "Test User" {
		t.Errorf("name = %v", user.Name)
	}
	if user.Bio != nil {
		t.Errorf("expected nil bio, got %q", *user.Bio)
	}
	if user.Followers == nil || *user.Followers != 10 {
		t.Errorf("followers = %v", user.Followers)
	}
}

func TestGetRepository(t *testing.T) {
	client, mux := newTestClient(t, "")
	mux.HandleFunc("GET /repos/{owner}/{repo}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("owner") != "testOwner" || r.PathValue("repo") != "testRepo" {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, `{"id": 9, "name": "testRepo", "full_name": "testOwner/testRepo", "private": false,
			"stargazers_count": 12, "forks_count": 3, "language": "Go",
			"owner": {"login": "testOwner", "id": 1}, "html_url": "https://github.com/testOwner/testRepo"}`)
	})

	repo, err := client.GetRepository(context.Background(), "testOwner", "testRepo")
	if err != nil {
		t.Fatal(err)
	}
	if repo.FullName != "testOwner/testRepo" {
		t.Errorf("full name = %q", repo.FullName)
	}
	if repo.GetStargazersCount() != 12 || repo.GetForksCount() != 3 {
		t.Errorf("counts = %d/%d, want 12/3", repo.GetStargazersCount(), repo.GetForksCount())
	}
	if repo.GetPrivate() {
		t.Error("expected public repository")
	}
}

func TestFetchErrors(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		want     Kind
		sentinel error
	}{
		{
			name: "404 is not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
			},
			want:     NotFound,
			sentinel: ErrNotFound,
		},
		{
			name:     "500 is invalid response",
			handler:  func(w http.ResponseWriter, r *http.Request) { http.Error(w, "boom", http.StatusInternalServerError) },
			want:     InvalidResponse,
			sentinel: ErrInvalidResponse,
		},
		{
			name: "401 is invalid response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"message":"Bad credentials"}`, http.StatusUnauthorized)
			},
			want:     InvalidResponse,
			sentinel: ErrInvalidResponse,
		},
		{
			name:     "empty body is no data",
			handler:  func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) },
			want:     NoData,
			sentinel: ErrNoData,
		},
		{
			name:     "shape mismatch is decoding error",
			handler:  func(w http.ResponseWriter, r *http.Request) { writeJSON(w, `{"login": 42}`) },
			want:     DecodingError,
			sentinel: ErrDecoding,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mux := newTestClient(t, "")
			mux.HandleFunc("GET /users/{login}", tt.handler)

			_, err := client.GetUser(context.Background(), "someone")
			if err == nil {
				t.Fatal("expected error")
			}
			if got := KindOf(err); got != tt.want {
				t.Errorf("kind = %v, want %v (err: %v)", got, tt.want, err)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.sentinel)
			}
		})
	}
}

func TestFetchErrors_ListShapeMismatch(t *testing.T) {
	client, mux := newTestClient(t, "")
	mux.HandleFunc("GET /repositories", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"message": "not a list"}`)
	})

	_, err := client.ListRepositories(context.Background(), 1, 5)
	if KindOf(err) != DecodingError {
		t.Errorf("kind = %v, want decoding error", KindOf(err))
	}
}

func TestFetchErrors_RequestFailed(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	client, err := NewClient("", WithBaseURL(base))
	if err != nil {
		t.Fatal(err)
	}
	_, err = client.GetRepository(context.Background(), "o", "r")
	if KindOf(err) != RequestFailed {
		t.Errorf("kind = %v, want request failed (err: %v)", KindOf(err), err)
	}
	var fe *FetchError
	if errors.As(err, &fe) && fe.Status != 0 {
		t.Errorf("status = %d, want 0", fe.Status)
	}
}

func TestFetchErrors_InvalidURL(t *testing.T) {
	client, _ := newTestClient(t, "")

	if _, err := client.GetUser(context.Background(), ""); KindOf(err) != InvalidURL {
		t.Errorf("empty login: kind = %v, want invalid url", KindOf(err))
	}
	if _, err := client.GetRepository(context.Background(), "owner", ""); KindOf(err) != InvalidURL {
		t.Errorf("empty name: kind = %v, want invalid url", KindOf(err))
	}
}

func TestNewClient_BadBaseURL(t *testing.T) {
	_, err := NewClient("", WithBaseURL("not a url"))
	if KindOf(err) != InvalidURL {
		t.Errorf("kind = %v, want invalid url", KindOf(err))
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(&FetchError{Kind: NotFound, Op: "get user", Status: 404}) {
		t.Error("expected IsNotFound for NotFound kind")
	}
	if IsNotFound(&FetchError{Kind: InvalidResponse, Op: "get user", Status: 500}) {
		t.Error("unexpected IsNotFound for InvalidResponse kind")
	}
	if IsNotFound(errors.New("plain")) {
		t.Error("unexpected IsNotFound for plain error")
	}
}
