package book_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookshelf/internal/core/book"
)

func newTestServer(t *testing.T, knownAuthors ...int) (*httptest.Server, *fakeRepository) {
	t.Helper()

	repo := newFakeRepository()
	service := book.NewService(repo, newFakeAuthorDirectory(knownAuthors...), testLogger())
	handler := book.NewHandler(service)

	router := chi.NewRouter()
	router.Route("/api/books", handler.RegisterRoutes)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, repo
}

func doRequest(t *testing.T, method, url, body string) (*http.Response, string) {
	t.Helper()

	request, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	request.Header.Set("Content-Type", "application/json")

	response, err := http.DefaultClient.Do(request)
	require.NoError(t, err)
	t.Cleanup(func() { _ = response.Body.Close() })

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(response.Body)
	require.NoError(t, err)
	return response, buf.String()
}

func TestHandler_ListBooks(t *testing.T) {
	server, repo := newTestServer(t, 1, 2)
	seedBook(t, repo, "Kafka on the Shore", 1, true)
	seedBook(t, repo, "Kitchen", 2, false)

	response, body := doRequest(t, http.MethodGet, server.URL+"/api/books/", "")

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.JSONEq(t, `{
		"bookList": [
			{"id": 1, "title": "Kafka on the Shore", "price": 1000, "authorId": 1, "publicationStatus": true},
			{"id": 2, "title": "Kitchen", "price": 1000, "authorId": 2, "publicationStatus": false}
		]
	}`, body)
}

func TestHandler_ListBooks_Empty(t *testing.T) {
	server, _ := newTestServer(t)

	response, body := doRequest(t, http.MethodGet, server.URL+"/api/books/", "")

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.JSONEq(t, `{"bookList": []}`, body)
}

func TestHandler_ListBooksByAuthor(t *testing.T) {
	server, repo := newTestServer(t, 1, 2)
	seedBook(t, repo, "Kafka on the Shore", 1, true)
	seedBook(t, repo, "Kitchen", 2, false)
	seedBook(t, repo, "Norwegian Wood", 1, false)

	response, body := doRequest(t, http.MethodGet, server.URL+"/api/books/1", "")

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.JSONEq(t, `{
		"bookList": [
			{"id": 1, "title": "Kafka on the Shore", "price": 1000, "authorId": 1, "publicationStatus": true},
			{"id": 3, "title": "Norwegian Wood", "price": 1000, "authorId": 1, "publicationStatus": false}
		]
	}`, body)
}

// An author with no stored books yields an empty list, not an error.
func TestHandler_ListBooksByAuthor_NoBooks(t *testing.T) {
	server, _ := newTestServer(t, 1)

	response, body := doRequest(t, http.MethodGet, server.URL+"/api/books/1", "")

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.JSONEq(t, `{"bookList": []}`, body)
}

func TestHandler_ListBooksByAuthor_NonInteger(t *testing.T) {
	server, _ := newTestServer(t, 1)

	response, body := doRequest(t, http.MethodGet, server.URL+"/api/books/abc", "")

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	assert.Equal(t, "author id must be 1 or greater", body)
}

func TestHandler_AddBook(t *testing.T) {
	server, repo := newTestServer(t, 1)

	response, body := doRequest(t, http.MethodPost, server.URL+"/api/books/add",
		`{"title": "T", "price": 0, "authorId": 1, "publicationStatus": false}`)

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "post:AddBookDto(title=T, price=0, authorId=1, publicationStatus=false)", body)

	stored, err := repo.GetBook(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "T", stored.Title)
}

func TestHandler_AddBook_UnknownAuthor(t *testing.T) {
	server, _ := newTestServer(t)

	response, body := doRequest(t, http.MethodPost, server.URL+"/api/books/add",
		`{"title": "T", "price": 0, "authorId": 1, "publicationStatus": false}`)

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	assert.Equal(t, "author id does not exist", body)
}

func TestHandler_AddBook_DeclarativeViolations(t *testing.T) {
	server, _ := newTestServer(t, 1)

	response, body := doRequest(t, http.MethodPost, server.URL+"/api/books/add",
		`{"title": "", "price": -1, "authorId": 0}`)

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	assert.Equal(t, "title is required, price must be 0 or greater, author id must be 1 or greater", body)
}

func TestHandler_UpdateBook(t *testing.T) {
	server, repo := newTestServer(t, 1)
	seeded := seedBook(t, repo, "Kafka on the Shore", 1, false)

	response, body := doRequest(t, http.MethodPut, server.URL+"/api/books/update",
		`{"bookId": 1, "title": "Kafka on the Shore", "price": 1000, "authorId": 1, "publicationStatus": true}`)

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "put:UpdateBookDto(id=1, title=Kafka on the Shore, price=1000, authorId=1, publicationStatus=true)", body)

	stored, err := repo.GetBook(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.True(t, stored.PublicationStatus)
}

func TestHandler_UpdateBook_PublishedRevert(t *testing.T) {
	server, repo := newTestServer(t, 1)
	seedBook(t, repo, "Kafka on the Shore", 1, true)

	response, body := doRequest(t, http.MethodPut, server.URL+"/api/books/update",
		`{"bookId": 1, "title": "Kafka on the Shore", "price": 1000, "authorId": 1, "publicationStatus": false}`)

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	assert.Equal(t, "cannot revert published to unpublished", body)
}

func TestHandler_UpdateBook_UnknownBook(t *testing.T) {
	server, _ := newTestServer(t, 1)

	response, body := doRequest(t, http.MethodPut, server.URL+"/api/books/update",
		`{"bookId": 9, "title": "Ghost Book", "price": 0, "authorId": 1, "publicationStatus": false}`)

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	assert.Equal(t, "book id does not exist", body)
}
