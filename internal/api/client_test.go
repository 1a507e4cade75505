package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookclient/internal/entity"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens struct {
	token string
}

func (s staticTokens) Token() (string, bool) {
	return s.token, s.token != ""
}

func writeData(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   map[string]any{"code": code, "message": message},
	})
}

func newClient(url string, token string) *Client {
	return New(url, staticTokens{token: token}, zerolog.Nop())
}

func TestClient_GetBook(t *testing.T) {
	t.Run("empty id returns nil without a request", func(t *testing.T) {
		requests := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
		}))
		defer srv.Close()

		book, err := newClient(srv.URL, "").GetBook(context.Background(), "")
		require.NoError(t, err)
		assert.Nil(t, book)
		assert.Equal(t, 0, requests)
	})

	t.Run("404 is a non-error nil result", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Book not found")
		}))
		defer srv.Close()

		book, err := newClient(srv.URL, "").GetBook(context.Background(), "404id")
		require.NoError(t, err)
		assert.Nil(t, book)
	})

	t.Run("200 decodes the enveloped book", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/books/book-1", r.URL.Path)
			writeData(w, entity.Book{ID: "book-1", Title: "The Test Book"})
		}))
		defer srv.Close()

		book, err := newClient(srv.URL, "").GetBook(context.Background(), "book-1")
		require.NoError(t, err)
		require.NotNil(t, book)
		assert.Equal(t, "The Test Book", book.Title)
	})

	t.Run("500 collapses into the generic error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusInternalServerError, "INTERNAL", "boom")
		}))
		defer srv.Close()

		book, err := newClient(srv.URL, "").GetBook(context.Background(), "book-1")
		assert.Nil(t, book)
		require.Error(t, err)
		assert.EqualError(t, err, "failed to fetch book")
	})
}

func TestClient_BearerHeader(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		wantHeader string
	}{
		{name: "token attached when available", token: "tok-123", wantHeader: "Bearer tok-123"},
		{name: "header omitted without a token", token: "", wantHeader: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAuth string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				writeData(w, []entity.Book{})
			}))
			defer srv.Close()

			_, err := newClient(srv.URL, tt.token).ListBooks(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeader, gotAuth)
		})
	}
}

func TestClient_RequestID(t *testing.T) {
	var gotID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-Id")
		writeData(w, []entity.Book{})
	}))
	defer srv.Close()

	_, err := newClient(srv.URL, "").ListBooks(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, gotID)
}

func TestClient_ReadingLists(t *testing.T) {
	t.Run("create posts the input and returns the created list", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/reading-lists", r.URL.Path)

			var in ReadingListInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, "Summer", in.Name)

			writeData(w, entity.ReadingList{ID: "rl-1", Name: in.Name, BookIDs: []string{}})
		}))
		defer srv.Close()

		created, err := newClient(srv.URL, "tok").CreateReadingList(context.Background(), ReadingListInput{Name: "Summer"})
		require.NoError(t, err)
		assert.Equal(t, "rl-1", created.ID)
		assert.Equal(t, "Summer", created.Name)
	})

	t.Run("update puts the full list to its path", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/reading-lists/rl-1", r.URL.Path)

			var in entity.ReadingList
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			writeData(w, in)
		}))
		defer srv.Close()

		list := entity.ReadingList{ID: "rl-1", Name: "Summer", BookIDs: []string{"book-1"}}
		updated, err := newClient(srv.URL, "tok").UpdateReadingList(context.Background(), list)
		require.NoError(t, err)
		assert.Equal(t, []string{"book-1"}, updated.BookIDs)
	})

	t.Run("delete failure collapses into the generic error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusForbidden, "FORBIDDEN", "not yours")
		}))
		defer srv.Close()

		err := newClient(srv.URL, "tok").DeleteReadingList(context.Background(), "rl-1")
		require.Error(t, err)
		assert.EqualError(t, err, "failed to delete reading list")
	})

	t.Run("network failure collapses into the same error kind", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // force a connection error

		_, err := newClient(srv.URL, "").ListReadingLists(context.Background())
		require.Error(t, err)
		assert.EqualError(t, err, "failed to fetch reading lists")
	})
}

func TestClient_Reviews(t *testing.T) {
	t.Run("create fills a missing id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var in entity.Review
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			in.ID = "" // backend does not persist reviews in this snapshot
			writeData(w, in)
		}))
		defer srv.Close()

		created, err := newClient(srv.URL, "tok").CreateReview(context.Background(), entity.Review{
			BookID:  "book-1",
			Rating:  5,
			Comment: "great",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "book-1", created.BookID)
	})

	t.Run("list decodes an empty collection", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/books/book-1/reviews", r.URL.Path)
			writeData(w, []entity.Review{})
		}))
		defer srv.Close()

		reviews, err := newClient(srv.URL, "").ListReviews(context.Background(), "book-1")
		require.NoError(t, err)
		assert.Empty(t, reviews)
	})
}

func TestClient_GetRecommendations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/recommendations", r.URL.Path)

		var req RecommendationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"Fiction"}, req.Genres)

		writeData(w, []entity.Book{{ID: "book-2", Title: "Picked For You"}})
	}))
	defer srv.Close()

	books, err := newClient(srv.URL, "tok").GetRecommendations(context.Background(), RecommendationRequest{Genres: []string{"Fiction"}})
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Picked For You", books[0].Title)
}
