package author

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/bookshelf/internal/platform/request"
	"github.com/taibuivan/bookshelf/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listAuthors)
	router.Post("/add", handler.addAuthor)
	router.Put("/update", handler.updateAuthor)
}

func (handler *Handler) listAuthors(writer http.ResponseWriter, request *http.Request) {
	authors, err := handler.service.ListAuthors(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, NewAuthorListDto(authors))
}

func (handler *Handler) addAuthor(writer http.ResponseWriter, request *http.Request) {
	var input AddAuthorDto
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Declarative tier short-circuits before any business rule runs.
	if err := input.Validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddAuthor(request.Context(), input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Text(writer, http.StatusOK, "post:"+input.String())
}

func (handler *Handler) updateAuthor(writer http.ResponseWriter, request *http.Request) {
	var input UpdateAuthorDto
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := input.Validate(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateAuthor(request.Context(), input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Text(writer, http.StatusOK, "put:"+input.String())
}
