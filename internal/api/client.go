package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bookclient/internal/entity"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TokenSource yields the current session token. ok is false when no session
// is available; the request then goes out without an Authorization header.
// Some endpoints are anonymous, so a missing token is not an error here.
type TokenSource interface {
	Token() (token string, ok bool)
}

// Client is a typed client for the catalog backend. Every call is
// fire-once: no retries, no backoff, no timeout beyond what the caller's
// context imposes.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        zerolog.Logger
}

func New(baseURL string, tokens TokenSource, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		tokens:     tokens,
		log:        log,
	}
}

// ReadingListInput carries the user-editable fields of a reading list.
type ReadingListInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// RecommendationRequest is the preference body for POST /recommendations.
type RecommendationRequest struct {
	Genres     []string `json:"genres,omitempty"`
	Authors    []string `json:"authors,omitempty"`
	MaxResults int      `json:"max_results,omitempty"`
}

func (c *Client) ListBooks(ctx context.Context) ([]entity.Book, error) {
	var books []entity.Book
	if err := c.do(ctx, http.MethodGet, "/books", nil, &books, "fetch", "books"); err != nil {
		return nil, err
	}
	return books, nil
}

// GetBook fetches a single book. An empty id short-circuits to nil without a
// request, and HTTP 404 is a non-error nil result: "absent" is distinct from
// "failed" for this one lookup.
func (c *Client) GetBook(ctx context.Context, id string) (*entity.Book, error) {
	if id == "" {
		return nil, nil
	}

	resp, err := c.send(ctx, http.MethodGet, "/books/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, &RequestError{Verb: "fetch", Resource: "book", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if err := checkStatus(resp); err != nil {
		return nil, &RequestError{Verb: "fetch", Resource: "book", Err: err}
	}

	var book entity.Book
	if err := decodeEnvelope(resp.Body, &book); err != nil {
		return nil, &RequestError{Verb: "fetch", Resource: "book", Err: err}
	}
	return &book, nil
}

func (c *Client) CreateBook(ctx context.Context, book entity.Book) (*entity.Book, error) {
	var created entity.Book
	if err := c.do(ctx, http.MethodPost, "/books", book, &created, "create", "book"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateBook(ctx context.Context, book entity.Book) (*entity.Book, error) {
	var updated entity.Book
	path := "/books/" + url.PathEscape(book.ID)
	if err := c.do(ctx, http.MethodPut, path, book, &updated, "update", "book"); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteBook(ctx context.Context, id string) error {
	path := "/books/" + url.PathEscape(id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, "delete", "book")
}

func (c *Client) ListReadingLists(ctx context.Context) ([]entity.ReadingList, error) {
	var lists []entity.ReadingList
	if err := c.do(ctx, http.MethodGet, "/reading-lists", nil, &lists, "fetch", "reading lists"); err != nil {
		return nil, err
	}
	return lists, nil
}

func (c *Client) CreateReadingList(ctx context.Context, input ReadingListInput) (*entity.ReadingList, error) {
	var created entity.ReadingList
	if err := c.do(ctx, http.MethodPost, "/reading-lists", input, &created, "create", "reading list"); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateReadingList(ctx context.Context, list entity.ReadingList) (*entity.ReadingList, error) {
	var updated entity.ReadingList
	path := "/reading-lists/" + url.PathEscape(list.ID)
	if err := c.do(ctx, http.MethodPut, path, list, &updated, "update", "reading list"); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteReadingList(ctx context.Context, id string) error {
	path := "/reading-lists/" + url.PathEscape(id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, "delete", "reading list")
}

func (c *Client) ListReviews(ctx context.Context, bookID string) ([]entity.Review, error) {
	var reviews []entity.Review
	path := "/books/" + url.PathEscape(bookID) + "/reviews"
	if err := c.do(ctx, http.MethodGet, path, nil, &reviews, "fetch", "reviews"); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) CreateReview(ctx context.Context, review entity.Review) (*entity.Review, error) {
	var created entity.Review
	if err := c.do(ctx, http.MethodPost, "/reviews", review, &created, "create", "review"); err != nil {
		return nil, err
	}
	// Reviews are not persisted server-side in this snapshot; when the
	// backend echoes no id, mint one so the caller can render the entry.
	if created.ID == "" {
		created.ID = uuid.New().String()
	}
	return &created, nil
}

func (c *Client) GetRecommendations(ctx context.Context, req RecommendationRequest) ([]entity.Book, error) {
	var books []entity.Book
	if err := c.do(ctx, http.MethodPost, "/recommendations", req, &books, "fetch", "recommendations"); err != nil {
		return nil, err
	}
	return books, nil
}

// do issues one request and decodes the enveloped payload into out. Any
// failure cause collapses into a RequestError for verb and resource.
func (c *Client) do(ctx context.Context, method, path string, body, out any, verb, resource string) error {
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return &RequestError{Verb: verb, Resource: resource, Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return &RequestError{Verb: verb, Resource: resource, Err: err}
	}
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := decodeEnvelope(resp.Body, out); err != nil {
		return &RequestError{Verb: verb, Resource: resource, Err: err}
	}
	return nil
}

// send builds and issues a single request: JSON body, request id, bearer
// header when a token is obtainable.
func (c *Client) send(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.New().String()
	req.Header.Set("X-Request-Id", requestID)

	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Msg("request failed")
		return nil, err
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Str("request_id", requestID).
		Msg("request done")
	return resp, nil
}

// checkStatus drains a non-2xx body for its error message (log only) and
// reports the status. The body of a 2xx response is left unread.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(resp.Body)
	if msg := errorMessage(body); msg != "" {
		return fmt.Errorf("unexpected status code: %d (%s)", resp.StatusCode, msg)
	}
	return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
}
