package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-bookmarks/internal/config"
	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/internal/utils"
	"github.com/MKhiriev/go-bookmarks/models"
)

const (
	bookmarksPath = "/api/bookmarks"
	versionPath   = "/api/version"
)

type httpBookmarkAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPBookmarkAdapter constructs an HTTP/REST implementation of
// [BookmarkAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the client with the request timeout
// and appCfg.APIToken as bearer token.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPBookmarkAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (BookmarkAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, appCfg.APIToken, adapterCfg.RequestTimeout)

	return &httpBookmarkAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
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

func bookmarkPath(id int64) string {
	return bookmarksPath + "/" + strconv.FormatInt(id, 10)
}

// List implements [BookmarkAdapter]: GET /api/bookmarks.
func (h *httpBookmarkAdapter) List(ctx context.Context) ([]models.Bookmark, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(bookmarksPath)
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	bookmarks := make([]models.Bookmark, 0)
	if err = json.Unmarshal(resp.Body(), &bookmarks); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}

	h.logger.Debug().Int("count", len(bookmarks)).Msg("bookmarks listed")
	return bookmarks, nil
}

// Get implements [BookmarkAdapter]: GET /api/bookmarks/{id}.
func (h *httpBookmarkAdapter) Get(ctx context.Context, id int64) (models.Bookmark, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(bookmarkPath(id))
	if err != nil {
		return models.Bookmark{}, fmt.Errorf("get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Bookmark{}, err
	}

	var bookmark models.Bookmark
	if err = json.Unmarshal(resp.Body(), &bookmark); err != nil {
		return models.Bookmark{}, fmt.Errorf("decode get response: %w", err)
	}

	return bookmark, nil
}

// Create implements [BookmarkAdapter]: POST /api/bookmarks.
func (h *httpBookmarkAdapter) Create(ctx context.Context, request models.CreateBookmarkRequest) (models.Bookmark, string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post(bookmarksPath)
	if err != nil {
		return models.Bookmark{}, "", fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Bookmark{}, "", err
	}

	var created models.Bookmark
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Bookmark{}, "", fmt.Errorf("decode create response: %w", err)
	}

	location := resp.Header().Get("Location")
	h.logger.Debug().Int64("id", created.ID).Str("location", location).Msg("bookmark created")
	return created, location, nil
}

// Update implements [BookmarkAdapter]: PATCH /api/bookmarks/{id}.
func (h *httpBookmarkAdapter) Update(ctx context.Context, id int64, request models.UpdateBookmarkRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Patch(bookmarkPath(id))
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}

	return mapHTTPError(resp)
}

// Delete implements [BookmarkAdapter]: DELETE /api/bookmarks/{id}.
func (h *httpBookmarkAdapter) Delete(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(bookmarkPath(id))
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version implements [BookmarkAdapter]: GET /api/version.
func (h *httpBookmarkAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
