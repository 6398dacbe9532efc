package assignment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/shinobidex/fichas-api/internal/platform/request"
	"github.com/shinobidex/fichas-api/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the link endpoints under the sheets router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/{id}/jutsus", handler.listLinked)
	router.Put("/{id}/jutsus", handler.replaceLinks)
}

func (handler *Handler) listLinked(writer http.ResponseWriter, request *http.Request) {
	abilities := handler.service.LoadLinked(request.Context(), requestutil.ID(request, "id"))
	respond.OK(writer, abilities)
}

func (handler *Handler) replaceLinks(writer http.ResponseWriter, request *http.Request) {
	var input SaveInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	caller := requestutil.Caller(request)
	if err := handler.service.Replace(request.Context(), caller, requestutil.ID(request, "id"), input.JutsuIDs); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
