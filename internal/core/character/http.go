package character

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/shinobidex/fichas-api/internal/platform/request"
	"github.com/shinobidex/fichas-api/internal/platform/respond"
	"github.com/shinobidex/fichas-api/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listCharacters)
	router.Post("/", handler.createCharacter)
	router.Get("/{id}", handler.getCharacter)
	router.Put("/{id}", handler.updateCharacter)
	router.Delete("/{id}", handler.deleteCharacter)
}

func (handler *Handler) listCharacters(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	caller := requestutil.Caller(request)

	views, total, err := handler.service.ListCharacters(request.Context(), caller, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, views, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getCharacter(writer http.ResponseWriter, request *http.Request) {
	view, err := handler.service.GetCharacter(request.Context(), requestutil.Caller(request), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

func (handler *Handler) createCharacter(writer http.ResponseWriter, request *http.Request) {
	var input Character
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	caller := requestutil.Caller(request)
	if err := handler.service.CreateCharacter(request.Context(), caller, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, NewView(&input, true))
}

func (handler *Handler) updateCharacter(writer http.ResponseWriter, request *http.Request) {
	var input Character
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	caller := requestutil.Caller(request)
	if err := handler.service.UpdateCharacter(request.Context(), caller, requestutil.ID(request, "id"), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, NewView(&input, true))
}

func (handler *Handler) deleteCharacter(writer http.ResponseWriter, request *http.Request) {
	caller := requestutil.Caller(request)
	if err := handler.service.DeleteCharacter(request.Context(), caller, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
