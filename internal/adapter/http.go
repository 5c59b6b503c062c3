package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/hacksnooze/snooze-client/internal/config"
	"github.com/hacksnooze/snooze-client/internal/logger"
	"github.com/hacksnooze/snooze-client/internal/utils"
	"github.com/hacksnooze/snooze-client/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{
		client: client,
		ids:    utils.NewUUIDGenerator(),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request builds a resty request with the calling context and a fresh
// correlation ID for log matching.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", h.ids.Generate())
}

// ListStories implements [ServerAdapter]. It GETs /stories, decodes the
// envelope, and validates every record so a malformed story fails here
// instead of at render time.
func (h *httpServerAdapter) ListStories(ctx context.Context) ([]models.Story, error) {
	resp, err := h.request(ctx).Get("/stories")
	if err != nil {
		return nil, fmt.Errorf("list stories request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelope models.StoriesResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decode stories response: %w", err)
	}

	for i, story := range envelope.Stories {
		if err = story.Validate(); err != nil {
			return nil, fmt.Errorf("%w: story %d: %v", ErrInvalidResponse, i, err)
		}
	}

	h.logger.Debug().Int("count", len(envelope.Stories)).Msg("fetched story feed")
	return envelope.Stories, nil
}

// CreateStory implements [ServerAdapter]. It POSTs the draft to /stories
// with the token in the request body and returns the server-populated story.
func (h *httpServerAdapter) CreateStory(ctx context.Context, token string, draft models.StoryDraft) (models.Story, error) {
	body := models.CreateStoryRequest{Token: token, Story: draft}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/stories")
	if err != nil {
		return models.Story{}, fmt.Errorf("create story request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Story{}, err
	}

	var envelope models.StoryResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.Story{}, fmt.Errorf("decode create story response: %w", err)
	}
	if err = envelope.Story.Validate(); err != nil {
		return models.Story{}, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return envelope.Story, nil
}

// DeleteStory implements [ServerAdapter]. The token travels in the DELETE
// request body, as the upstream contract demands.
func (h *httpServerAdapter) DeleteStory(ctx context.Context, token, storyID string) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.TokenRequest{Token: token}).
		Delete("/stories/" + url.PathEscape(storyID))
	if err != nil {
		return fmt.Errorf("delete story request: %w", err)
	}

	return mapHTTPError(resp)
}

// Signup implements [ServerAdapter]. Returns ErrConflict (wrapped) when the
// username is already taken.
func (h *httpServerAdapter) Signup(ctx context.Context, creds models.Credentials) (models.UserRecord, string, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SignupRequest{User: creds}).
		Post("/signup")
	if err != nil {
		return models.UserRecord{}, "", fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserRecord{}, "", err
	}

	return decodeAuthResponse(resp.Body())
}

// Login implements [ServerAdapter]. Returns ErrUnauthorized (wrapped) on
// invalid credentials.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.UserRecord, string, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{User: creds}).
		Post("/login")
	if err != nil {
		return models.UserRecord{}, "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserRecord{}, "", err
	}

	return decodeAuthResponse(resp.Body())
}

// FetchUser implements [ServerAdapter]. The token is passed as a query
// parameter; this is the only endpoint where the contract places it there.
func (h *httpServerAdapter) FetchUser(ctx context.Context, token, username string) (models.UserRecord, error) {
	resp, err := h.request(ctx).
		SetQueryParam("token", token).
		Get("/users/" + url.PathEscape(username))
	if err != nil {
		return models.UserRecord{}, fmt.Errorf("fetch user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserRecord{}, err
	}

	var envelope models.UserResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.UserRecord{}, fmt.Errorf("decode user response: %w", err)
	}
	if envelope.User.Username == "" {
		return models.UserRecord{}, fmt.Errorf("%w: user record without username", ErrInvalidResponse)
	}

	return envelope.User, nil
}

// AddFavorite implements [ServerAdapter].
func (h *httpServerAdapter) AddFavorite(ctx context.Context, token, username, storyID string) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.TokenRequest{Token: token}).
		Post(favoritePath(username, storyID))
	if err != nil {
		return fmt.Errorf("add favorite request: %w", err)
	}

	return mapHTTPError(resp)
}

// RemoveFavorite implements [ServerAdapter].
func (h *httpServerAdapter) RemoveFavorite(ctx context.Context, token, username, storyID string) error {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.TokenRequest{Token: token}).
		Delete(favoritePath(username, storyID))
	if err != nil {
		return fmt.Errorf("remove favorite request: %w", err)
	}

	return mapHTTPError(resp)
}

func favoritePath(username, storyID string) string {
	return "/users/" + url.PathEscape(username) + "/favorites/" + url.PathEscape(storyID)
}

func decodeAuthResponse(body []byte) (models.UserRecord, string, error) {
	var envelope models.AuthResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return models.UserRecord{}, "", fmt.Errorf("decode auth response: %w", err)
	}

	if envelope.Token == "" {
		return models.UserRecord{}, "", fmt.Errorf("%w: auth response without token", ErrInvalidResponse)
	}
	if envelope.User.Username == "" {
		return models.UserRecord{}, "", fmt.Errorf("%w: auth response without username", ErrInvalidResponse)
	}

	return envelope.User, envelope.Token, nil
}
