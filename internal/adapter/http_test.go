package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hacksnooze/snooze-client/internal/config"
	"github.com/hacksnooze/snooze-client/internal/logger"
	"github.com/hacksnooze/snooze-client/models"
)

func newTestAdapter(t *testing.T, serverURL string) ServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		BaseURL:        serverURL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a
}

func apiStory(id string) models.Story {
	return models.Story{
		StoryID:   id,
		Title:     "Title " + id,
		Author:    "Author",
		URL:       "http://x.com/" + id,
		Username:  "alice",
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestNewHTTPServerAdapter_InvalidBaseURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{BaseURL: "   "}, logger.Nop())
	require.Error(t, err)
}

// ── ListStories ─────────────────────────────────────────────────────────────

func TestListStories_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/stories", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		_ = json.NewEncoder(w).Encode(models.StoriesResponse{
			Stories: []models.Story{apiStory("s1"), apiStory("s2")},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	stories, err := a.ListStories(context.Background())

	require.NoError(t, err)
	require.Len(t, stories, 2)
	assert.Equal(t, "s1", stories[0].StoryID)
	assert.Equal(t, "s2", stories[1].StoryID)
}

func TestListStories_MalformedRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// second record has no storyId
		_, _ = w.Write([]byte(`{"stories":[
			{"storyId":"s1","title":"T","author":"A","url":"http://x.com","username":"u"},
			{"title":"broken","author":"A","url":"http://x.com","username":"u"}
		]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ListStories(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestListStories_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ListStories(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── CreateStory ─────────────────────────────────────────────────────────────

func TestCreateStory_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/stories", r.URL.Path)

		var req models.CreateStoryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "tok-1", req.Token)
		assert.Equal(t, "A", req.Story.Title)

		_ = json.NewEncoder(w).Encode(models.StoryResponse{Story: apiStory("new")})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	story, err := a.CreateStory(context.Background(), "tok-1", models.StoryDraft{
		Title: "A", Author: "B", URL: "http://x.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "new", story.StoryID)
	assert.Equal(t, "alice", story.Username)
}

func TestCreateStory_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid token"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateStory(context.Background(), "bad", models.StoryDraft{Title: "A", Author: "B", URL: "http://x.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── DeleteStory ─────────────────────────────────────────────────────────────

func TestDeleteStory_TokenInBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/stories/s1", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		var req models.TokenRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "tok-1", req.Token)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.DeleteStory(context.Background(), "tok-1", "s1"))
}

func TestDeleteStory_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no such story"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.DeleteStory(context.Background(), "tok-1", "gone")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Signup / Login ──────────────────────────────────────────────────────────

func authBody(t *testing.T) []byte {
	t.Helper()
	raw, err := json.Marshal(models.AuthResponse{
		User: models.UserRecord{
			Username: "alice",
			Name:     "Alice",
			Stories:  []models.Story{apiStory("o1")},
		},
		Token: "tok-issued",
	})
	require.NoError(t, err)
	return raw
}

func TestSignup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/signup", r.URL.Path)

		var req models.SignupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.User.Username)
		assert.Equal(t, "Alice", req.User.Name)

		_, _ = w.Write(authBody(t))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	record, token, err := a.Signup(context.Background(), models.Credentials{
		Username: "alice", Password: "pw", Name: "Alice",
	})

	require.NoError(t, err)
	assert.Equal(t, "tok-issued", token)
	assert.Equal(t, "alice", record.Username)
	require.Len(t, record.Stories, 1)
}

func TestSignup_DuplicateUsername(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("username taken"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, _, err := a.Signup(context.Background(), models.Credentials{Username: "alice", Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		_, _ = w.Write(authBody(t))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	record, token, err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "tok-issued", token)
	assert.Equal(t, "alice", record.Username)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("bad credentials"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, _, err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user":{"username":"alice"}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, _, err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

// ── FetchUser ───────────────────────────────────────────────────────────────

func TestFetchUser_TokenAsQueryParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/alice", r.URL.Path)
		assert.Equal(t, "tok-1", r.URL.Query().Get("token"))

		_ = json.NewEncoder(w).Encode(models.UserResponse{
			User: models.UserRecord{Username: "alice", Favorites: []models.Story{apiStory("f1")}},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	record, err := a.FetchUser(context.Background(), "tok-1", "alice")

	require.NoError(t, err)
	assert.Equal(t, "alice", record.Username)
	require.Len(t, record.Favorites, 1)
}

func TestFetchUser_ExpiredToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.FetchUser(context.Background(), "stale", "alice")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Favorites ───────────────────────────────────────────────────────────────

func TestAddFavorite(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/alice/favorites/s1", r.URL.Path)

		var req models.TokenRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "tok-1", req.Token)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.AddFavorite(context.Background(), "tok-1", "alice", "s1"))
}

func TestRemoveFavorite(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/users/alice/favorites/s1", r.URL.Path)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.RemoveFavorite(context.Background(), "tok-1", "alice", "s1"))
}

func TestAddFavorite_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("unknown story"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.AddFavorite(context.Background(), "tok-1", "alice", "nope")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
}
