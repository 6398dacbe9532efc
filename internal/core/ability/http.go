package ability

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
	router.Get("/", handler.listAbilities)
	router.Post("/", handler.createAbility)
	router.Get("/{id}", handler.getAbility)
	router.Put("/{id}", handler.updateAbility)
	router.Delete("/{id}", handler.deleteAbility)
}

func (handler *Handler) listAbilities(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query: request.URL.Query().Get("q"),
	}

	abilities, total, err := handler.service.ListAbilities(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, abilities, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getAbility(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.service.GetAbility(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

func (handler *Handler) createAbility(writer http.ResponseWriter, request *http.Request) {
	var input Ability
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Creator token is always the resolved caller, never client-supplied.
	input.IPAddress = requestutil.Caller(request)

	if err := handler.service.CreateAbility(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateAbility(writer http.ResponseWriter, request *http.Request) {
	var input Ability
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateAbility(request.Context(), requestutil.ID(request, "id"), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteAbility(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteAbility(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
