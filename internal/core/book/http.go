package book

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/bookshelf/internal/platform/request"
	"github.com/taibuivan/bookshelf/internal/platform/respond"
	"github.com/taibuivan/bookshelf/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listBooks)
	router.Get("/{authorId}", handler.listBooksByAuthor)
	router.Post("/add", handler.addBook)
	router.Put("/update", handler.updateBook)
}

func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	books, err := handler.service.ListBooks(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, NewBookListDto(books))
}

func (handler *Handler) listBooksByAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, err := strconv.Atoi(requestutil.Param(request, "authorId"))
	if err != nil {
		respond.Error(writer, request, validate.Violation(MsgAuthorIDMin))
		return
	}

	books, err := handler.service.ListBooksByAuthor(request.Context(), authorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, NewBookListDto(books))
}

func (handler *Handler) addBook(writer http.ResponseWriter, request *http.Request) {
	var input AddBookDto
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Declarative tier short-circuits before any business rule runs.
	if err := input.Validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddBook(request.Context(), input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Text(writer, http.StatusOK, "post:"+input.String())
}

func (handler *Handler) updateBook(writer http.ResponseWriter, request *http.Request) {
	var input UpdateBookDto
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := input.Validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateBook(request.Context(), input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Text(writer, http.StatusOK, "put:"+input.String())
}
