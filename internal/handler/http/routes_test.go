package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-bookmarks/internal/service"
	"github.com/MKhiriev/go-bookmarks/internal/store"
	"github.com/MKhiriev/go-bookmarks/internal/validators"
	"github.com/MKhiriev/go-bookmarks/models"
)

func request(method, path, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	return authorize(req)
}

// ─────────────────────────────────────────────
// Authorization
// ─────────────────────────────────────────────

func TestInit_UnauthorizedEverywhere(t *testing.T) {
	cases := []struct{ method, path string }{
		{http.MethodGet, "/api/bookmarks"},
		{http.MethodPost, "/api/bookmarks"},
		{http.MethodGet, "/api/bookmarks/1"},
		{http.MethodPatch, "/api/bookmarks/1"},
		{http.MethodDelete, "/api/bookmarks/1"},
		{http.MethodGet, "/api/version"},
		{http.MethodGet, "/does/not/exist"},
		{http.MethodPut, "/api/bookmarks"},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			deps := newTestDeps(t)
			router := deps.handler.Init()

			rec := serve(router, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"Unauthorized request"}`, rec.Body.String())
			assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
		})
	}
}

// ─────────────────────────────────────────────
// Unknown routes and methods
// ─────────────────────────────────────────────

func TestInit_UnknownPathReturnsJSON404(t *testing.T) {
	router := newTestDeps(t).handler.Init()

	rec := serve(router, request(http.MethodGet, "/api/nonexistent", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Not found"}}`, rec.Body.String())
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router := newTestDeps(t).handler.Init()

	for _, method := range []string{http.MethodPut, http.MethodDelete, http.MethodPatch} {
		rec := serve(router, request(method, "/api/bookmarks", ""))

		assert.Equal(t, http.StatusNotFound, rec.Code, method)
		assert.JSONEq(t, `{"error":{"message":"Not found"}}`, rec.Body.String(), method)
	}
}

func TestInit_Version(t *testing.T) {
	deps := newTestDeps(t)
	deps.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	rec := serve(deps.handler.Init(), request(http.MethodGet, "/api/version", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.0.0", rec.Body.String())
}

// ─────────────────────────────────────────────
// GET /api/bookmarks
// ─────────────────────────────────────────────

func TestInit_ListBookmarks(t *testing.T) {
	deps := newTestDeps(t)
	deps.bookmarks.EXPECT().ListBookmarks(gomock.Any()).Return([]models.Bookmark{
		{ID: 1, Title: "&lt;script&gt;", URL: "https://www.google.com", Description: "", Rating: 3},
	}, nil)

	rec := serve(deps.handler.Init(), request(http.MethodGet, "/api/bookmarks", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[{"id":1,"title":"&lt;script&gt;","url":"https://www.google.com","description":"","rating":3}]`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), `&amp;`, "already escaped values must not be escaped again")
}

func TestInit_ListBookmarks_Empty(t *testing.T) {
	deps := newTestDeps(t)
	deps.bookmarks.EXPECT().ListBookmarks(gomock.Any()).Return([]models.Bookmark{}, nil)

	rec := serve(deps.handler.Init(), request(http.MethodGet, "/api/bookmarks", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
}

func TestInit_ListBookmarks_StorageError(t *testing.T) {
	deps := newTestDeps(t)
	deps.bookmarks.EXPECT().ListBookmarks(gomock.Any()).Return(nil, fmt.Errorf("%w: boom", store.ErrExecutingQuery))

	rec := serve(deps.handler.Init(), request(http.MethodGet, "/api/bookmarks", ""))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Internal Server Error"}}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// POST /api/bookmarks
// ─────────────────────────────────────────────

func TestInit_CreateBookmark(t *testing.T) {
	deps := newTestDeps(t)
	deps.bookmarks.EXPECT().CreateBookmark(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.CreateBookmarkRequest) (models.Bookmark, error) {
			assert.Equal(t, "Firefox", req.Title)
			assert.JSONEq(t, `4`, string(req.Rating))
			return models.Bookmark{ID: 4, Title: req.Title, URL: req.URL, Description: req.Description, Rating: 4}, nil
		})

	body := `{"title":"Firefox","url":"https://www.mozilla.org/en-US/firefox/","description":"Browser","rating":4}`
	rec := serve(deps.handler.Init(), request(http.MethodPost, "/api/bookmarks", body))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, testBaseURL+"/api/bookmarks/4", rec.Header().Get("Location"))

	var got models.Bookmark
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.Bookmark{ID: 4, Title: "Firefox", URL: "https://www.mozilla.org/en-US/firefox/", Description: "Browser", Rating: 4}, got)
}

func TestInit_CreateBookmark_InvalidJSON(t *testing.T) {
	deps := newTestDeps(t)

	rec := serve(deps.handler.Init(), request(http.MethodPost, "/api/bookmarks", `{"title":`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Invalid JSON was passed"}}`, rec.Body.String())
}

func TestInit_CreateBookmark_ValidationErrors(t *testing.T) {
	tests := []struct {
		err     error
		message string
	}{
		{validators.ErrMissingTitle, "Missing title in request body"},
		{validators.ErrMissingURL, "Missing url in request body"},
		{validators.ErrMissingRating, "Missing rating in request body"},
		{validators.ErrInvalidURL, "'url' must be a valid URL"},
		{validators.ErrInvalidRating, "'rating' must be a number between 1 and 5"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			deps := newTestDeps(t)
			deps.bookmarks.EXPECT().CreateBookmark(gomock.Any(), gomock.Any()).
				Return(models.Bookmark{}, fmt.Errorf("error during bookmark validation before saving: %w", tt.err))

			rec := serve(deps.handler.Init(), request(http.MethodPost, "/api/bookmarks", `{}`))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error":{"message":%q}}`, tt.message), rec.Body.String())
			assert.Empty(t, rec.Header().Get("Location"))
		})
	}
}

// ─────────────────────────────────────────────
// /api/bookmarks/{id}
// ─────────────────────────────────────────────

func TestInit_GetBookmark(t *testing.T) {
	deps := newTestDeps(t)
	deps.bookmarks.EXPECT().GetBookmark(gomock.Any(), int64(2)).
		Return(&models.Bookmark{ID: 2, Title: "Thinkful", URL: "https://www.thinkful.com", Rating: 5}, nil)

	rec := serve(deps.handler.Init(), request(http.MethodGet, "/api/bookmarks/2", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":2,"title":"Thinkful","url":"https://www.thinkful.com","description":"","rating":5}`, rec.Body.String())
}

func TestInit_GetBookmark_NotFound(t *testing.T) {
	deps := newTestDeps(t)
	deps.bookmarks.EXPECT().GetBookmark(gomock.Any(), int64(123456)).Return(nil, nil)

	rec := serve(deps.handler.Init(), request(http.MethodGet, "/api/bookmarks/123456", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Bookmark not found"}}`, rec.Body.String())
}

func TestInit_UpdateBookmark(t *testing.T) {
	deps := newTestDeps(t)
	gomock.InOrder(
		deps.bookmarks.EXPECT().GetBookmark(gomock.Any(), int64(1)).Return(&models.Bookmark{ID: 1}, nil),
		deps.bookmarks.EXPECT().UpdateBookmark(gomock.Any(), int64(1), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, req models.UpdateBookmarkRequest) error {
				require.NotNil(t, req.Title)
				assert.Equal(t, "X", *req.Title)
				assert.Nil(t, req.URL)
				assert.Nil(t, req.Description)
				assert.False(t, req.HasRating())
				return nil
			}),
	)

	rec := serve(deps.handler.Init(), request(http.MethodPatch, "/api/bookmarks/1", `{"title":"X"}`))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestInit_UpdateBookmark_NoFields(t *testing.T) {
	deps := newTestDeps(t)
	deps.bookmarks.EXPECT().GetBookmark(gomock.Any(), int64(1)).Return(&models.Bookmark{ID: 1}, nil)
	deps.bookmarks.EXPECT().UpdateBookmark(gomock.Any(), int64(1), gomock.Any()).Return(validators.ErrNoFieldsToUpdate)

	rec := serve(deps.handler.Init(), request(http.MethodPatch, "/api/bookmarks/1", `{"irrelevant":"foo"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Request body must contain either 'title', 'url', 'description', or 'rating'"}}`, rec.Body.String())
}

func TestInit_UpdateBookmark_VanishedBetweenChecks(t *testing.T) {
	deps := newTestDeps(t)
	deps.bookmarks.EXPECT().GetBookmark(gomock.Any(), int64(1)).Return(&models.Bookmark{ID: 1}, nil)
	deps.bookmarks.EXPECT().UpdateBookmark(gomock.Any(), int64(1), gomock.Any()).
		Return(fmt.Errorf("update of bookmark 1: %w", store.ErrBookmarkNotFound))

	rec := serve(deps.handler.Init(), request(http.MethodPatch, "/api/bookmarks/1", `{"title":"X"}`))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_UpdateBookmark_InvalidJSON(t *testing.T) {
	deps := newTestDeps(t)
	deps.bookmarks.EXPECT().GetBookmark(gomock.Any(), int64(1)).Return(&models.Bookmark{ID: 1}, nil)

	rec := serve(deps.handler.Init(), request(http.MethodPatch, "/api/bookmarks/1", `not json`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInit_UpdateBookmark_Missing(t *testing.T) {
	deps := newTestDeps(t)
	deps.bookmarks.EXPECT().GetBookmark(gomock.Any(), int64(9)).Return(nil, nil)

	rec := serve(deps.handler.Init(), request(http.MethodPatch, "/api/bookmarks/9", `{"title":"X"}`))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Bookmark not found"}}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// Request bodies through the real service wrappers
// ─────────────────────────────────────────────

// withServicePipeline puts the validating and sanitizing wrappers in front of
// the mocked core service, as NewServices does.
func withServicePipeline(deps testDeps) testDeps {
	validating := service.NewBookmarkValidationService().Wrap(deps.bookmarks)
	deps.handler.services.BookmarkService = service.NewBookmarkSanitizingService().Wrap(validating)
	return deps
}

func TestInit_CreateBookmark_EmptyBody(t *testing.T) {
	deps := withServicePipeline(newTestDeps(t))

	rec := serve(deps.handler.Init(), request(http.MethodPost, "/api/bookmarks", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Missing title in request body"}}`, rec.Body.String())
	assert.Empty(t, rec.Header().Get("Location"))
}

func TestInit_UpdateBookmark_EmptyBody(t *testing.T) {
	deps := withServicePipeline(newTestDeps(t))
	deps.bookmarks.EXPECT().GetBookmark(gomock.Any(), int64(1)).Return(&models.Bookmark{ID: 1}, nil)

	rec := serve(deps.handler.Init(), request(http.MethodPatch, "/api/bookmarks/1", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Request body must contain either 'title', 'url', 'description', or 'rating'"}}`, rec.Body.String())
}

func TestInit_CreateBookmark_EscapesMarkupOnly(t *testing.T) {
	deps := withServicePipeline(newTestDeps(t))
	deps.bookmarks.EXPECT().CreateBookmark(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.CreateBookmarkRequest) (models.Bookmark, error) {
			assert.Equal(t, `Ur haxxed! <script>alert("xss");</script>`, req.Title, "stored raw")
			return models.Bookmark{ID: 911, Title: req.Title, URL: req.URL, Description: req.Description, Rating: 1}, nil
		})

	body := `{"title":"Ur haxxed! <script>alert(\"xss\");</script>","url":"https://www.firefox.com/?a=1&b=2","description":"Bad image <img src=\"https://url.to.file.which/does-not.exist\">","rating":1}`
	rec := serve(deps.handler.Init(), request(http.MethodPost, "/api/bookmarks", body))

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Bookmark
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, `Ur haxxed! &lt;script&gt;alert("xss");&lt;/script&gt;`, got.Title)
	assert.Equal(t, "https://www.firefox.com/?a=1&b=2", got.URL)
	assert.Equal(t, `Bad image &lt;img src="https://url.to.file.which/does-not.exist"&gt;`, got.Description)
}

func TestInit_CreateBookmark_TrailingData(t *testing.T) {
	bodies := []string{
		`{"title":"X","url":"https://a.io","rating":1} {"title":"Y"}`,
		`{"title":"X","url":"https://a.io","rating":1} garbage`,
	}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			deps := newTestDeps(t)

			rec := serve(deps.handler.Init(), request(http.MethodPost, "/api/bookmarks", body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":{"message":"Invalid JSON was passed"}}`, rec.Body.String())
		})
	}
}

func TestInit_CreateBookmark_BodyTooLarge(t *testing.T) {
	deps := newTestDeps(t)

	body := `{"title":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	rec := serve(deps.handler.Init(), request(http.MethodPost, "/api/bookmarks", body))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Request body is too large"}}`, rec.Body.String())
}

func TestInit_UpdateBookmark_TrailingData(t *testing.T) {
	deps := newTestDeps(t)
	deps.bookmarks.EXPECT().GetBookmark(gomock.Any(), int64(1)).Return(&models.Bookmark{ID: 1}, nil)

	rec := serve(deps.handler.Init(), request(http.MethodPatch, "/api/bookmarks/1", `{"title":"X"}{}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Invalid JSON was passed"}}`, rec.Body.String())
}

func TestInit_DeleteBookmark(t *testing.T) {
	deps := newTestDeps(t)
	gomock.InOrder(
		deps.bookmarks.EXPECT().GetBookmark(gomock.Any(), int64(1)).Return(&models.Bookmark{ID: 1}, nil),
		deps.bookmarks.EXPECT().DeleteBookmark(gomock.Any(), int64(1)).Return(nil),
	)

	rec := serve(deps.handler.Init(), request(http.MethodDelete, "/api/bookmarks/1", ""))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestInit_DeleteBookmark_Missing(t *testing.T) {
	deps := newTestDeps(t)
	deps.bookmarks.EXPECT().GetBookmark(gomock.Any(), int64(123456)).Return(nil, nil)

	rec := serve(deps.handler.Init(), request(http.MethodDelete, "/api/bookmarks/123456", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Bookmark not found"}}`, rec.Body.String())
}

func TestInit_DeleteBookmark_StorageError(t *testing.T) {
	deps := newTestDeps(t)
	deps.bookmarks.EXPECT().GetBookmark(gomock.Any(), int64(1)).Return(&models.Bookmark{ID: 1}, nil)
	deps.bookmarks.EXPECT().DeleteBookmark(gomock.Any(), int64(1)).Return(errors.New("disk full"))

	rec := serve(deps.handler.Init(), request(http.MethodDelete, "/api/bookmarks/1", ""))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "disk full")
}

// ─────────────────────────────────────────────
// Panics and tracing
// ─────────────────────────────────────────────

func TestInit_PanicIsRecovered(t *testing.T) {
	deps := newTestDeps(t)
	deps.bookmarks.EXPECT().ListBookmarks(gomock.Any()).DoAndReturn(func(context.Context) ([]models.Bookmark, error) {
		panic("unexpected")
	})

	rec := serve(deps.handler.Init(), request(http.MethodGet, "/api/bookmarks", ""))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestInit_EchoesTraceID(t *testing.T) {
	deps := newTestDeps(t)
	deps.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	req := request(http.MethodGet, "/api/version", "")
	req.Header.Set(traceIDHeader, "abc-123")
	rec := serve(deps.handler.Init(), req)

	assert.Equal(t, "abc-123", rec.Header().Get(traceIDHeader))
}
