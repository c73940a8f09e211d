package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-bookmarks/internal/store"
	"github.com/MKhiriev/go-bookmarks/internal/utils"
	"github.com/MKhiriev/go-bookmarks/models"
)

// bookmarkCtxRouter mounts bookmarkCtx the way Init does, with a terminal
// handler that records what it received.
func bookmarkCtxRouter(h *Handler, got **models.Bookmark) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/bookmarks/{id}", func(r chi.Router) {
		r.Use(h.bookmarkCtx)
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			*got, _ = utils.GetBookmarkFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})
	})
	return r
}

func TestBookmarkCtx_Found_StoresInContext(t *testing.T) {
	deps := newTestDeps(t)
	want := &models.Bookmark{ID: 3, Title: "t"}
	deps.bookmarks.EXPECT().GetBookmark(gomock.Any(), int64(3)).Return(want, nil)

	var got *models.Bookmark
	rec := serve(bookmarkCtxRouter(deps.handler, &got), httptest.NewRequest(http.MethodGet, "/api/bookmarks/3", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, want, got)
}

func TestBookmarkCtx_Missing_Returns404(t *testing.T) {
	deps := newTestDeps(t)
	deps.bookmarks.EXPECT().GetBookmark(gomock.Any(), int64(99)).Return(nil, nil)

	var got *models.Bookmark
	rec := serve(bookmarkCtxRouter(deps.handler, &got), httptest.NewRequest(http.MethodGet, "/api/bookmarks/99", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Bookmark not found"}}`, rec.Body.String())
	assert.Nil(t, got)
}

func TestBookmarkCtx_NonIntegerID_Returns404WithoutLookup(t *testing.T) {
	for _, id := range []string{"abc", "1.5", "99999999999999999999"} {
		t.Run(id, func(t *testing.T) {
			deps := newTestDeps(t)

			var got *models.Bookmark
			rec := serve(bookmarkCtxRouter(deps.handler, &got), httptest.NewRequest(http.MethodGet, "/api/bookmarks/"+id, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"error":{"message":"Bookmark not found"}}`, rec.Body.String())
		})
	}
}

func TestBookmarkCtx_StorageError_Returns500(t *testing.T) {
	deps := newTestDeps(t)
	deps.bookmarks.EXPECT().GetBookmark(gomock.Any(), int64(1)).
		Return(nil, errors.Join(store.ErrExecutingQuery, errors.New("connection refused")))

	var got *models.Bookmark
	rec := serve(bookmarkCtxRouter(deps.handler, &got), httptest.NewRequest(http.MethodGet, "/api/bookmarks/1", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"Internal Server Error"}}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
