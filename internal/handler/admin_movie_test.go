package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SagarGautam07/TickBuzz/internal/model"
	"github.com/SagarGautam07/TickBuzz/internal/repository"
)

// fakeMovieStore records mutations in memory so handler behavior can be
// checked without a database.
type fakeMovieStore struct {
	movies map[string]*model.Movie
}

func newFakeMovieStore() *fakeMovieStore {
	return &fakeMovieStore{movies: make(map[string]*model.Movie)}
}

func (f *fakeMovieStore) List(_ context.Context) ([]*model.Movie, error) {
	out := make([]*model.Movie, 0, len(f.movies))
	for _, m := range f.movies {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMovieStore) Create(_ context.Context, m *model.Movie) error {
	if _, ok := f.movies[m.ID]; ok {
		return repository.ErrConflict
	}
	f.movies[m.ID] = m
	return nil
}

func (f *fakeMovieStore) Update(_ context.Context, m *model.Movie) error {
	if _, ok := f.movies[m.ID]; !ok {
		return repository.ErrMovieNotFound
	}
	f.movies[m.ID] = m
	return nil
}

func (f *fakeMovieStore) Delete(_ context.Context, id string) error {
	if _, ok := f.movies[id]; !ok {
		return repository.ErrMovieNotFound
	}
	delete(f.movies, id)
	return nil
}

const validMovieBody = `{
	"title": "Inception",
	"genre": ["Sci-Fi", "Thriller"],
	"duration": 148,
	"language": "English",
	"rating": 8.8,
	"releaseDate": "2010-07-16"
}`

func adminMovieContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAdminMovieList(t *testing.T) {
	store := newFakeMovieStore()
	store.movies["1"] = &model.Movie{ID: "1", Title: "Interstellar"}
	store.movies["2"] = &model.Movie{ID: "2", Title: "Inception"}
	h := NewAdminMovieHandler(store)

	c, rec := adminMovieContext(t, http.MethodGet, "/v1/admin/movies", "")
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":2`)
	assert.Contains(t, rec.Body.String(), "Interstellar")
}

func TestAdminMovieCreate(t *testing.T) {
	store := newFakeMovieStore()
	h := NewAdminMovieHandler(store)

	c, rec := adminMovieContext(t, http.MethodPost, "/v1/admin/movies", validMovieBody)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, store.movies, 1)
	for _, m := range store.movies {
		assert.Equal(t, "Inception", m.Title)
		assert.NotEmpty(t, m.ID)
	}
}

func TestAdminMovieCreateRejectsInvalidPayload(t *testing.T) {
	store := newFakeMovieStore()
	h := NewAdminMovieHandler(store)

	// Missing title and genres.
	c, rec := adminMovieContext(t, http.MethodPost, "/v1/admin/movies", `{"duration": 90}`)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.movies, "nothing persisted on validation failure")
}

func TestAdminMovieUpdateMissing(t *testing.T) {
	store := newFakeMovieStore()
	h := NewAdminMovieHandler(store)

	c, rec := adminMovieContext(t, http.MethodPut, "/v1/admin/movies/nope", validMovieBody)
	c.SetParamNames("id")
	c.SetParamValues("nope")
	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminMovieDeleteMissingLeavesCollection(t *testing.T) {
	store := newFakeMovieStore()
	store.movies["1"] = &model.Movie{ID: "1", Title: "Interstellar"}
	h := NewAdminMovieHandler(store)

	c, rec := adminMovieContext(t, http.MethodDelete, "/v1/admin/movies/404", "")
	c.SetParamNames("id")
	c.SetParamValues("404")
	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Len(t, store.movies, 1, "collection unchanged")
}

func TestAdminMovieDelete(t *testing.T) {
	store := newFakeMovieStore()
	store.movies["1"] = &model.Movie{ID: "1", Title: "Interstellar"}
	h := NewAdminMovieHandler(store)

	c, rec := adminMovieContext(t, http.MethodDelete, "/v1/admin/movies/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, store.movies)
}
