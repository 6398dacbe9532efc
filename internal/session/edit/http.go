package edit

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

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.current)
	router.Post("/fichas/{id}", handler.begin)
	router.Patch("/", handler.setField)
	router.Post("/commit", handler.commit)
	router.Post("/cancel", handler.cancel)
}

func (handler *Handler) begin(writer http.ResponseWriter, request *http.Request) {
	sessionID, err := requestutil.SessionID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	caller := requestutil.Caller(request)
	session, err := handler.service.Begin(request.Context(), caller, sessionID, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, session)
}

func (handler *Handler) current(writer http.ResponseWriter, request *http.Request) {
	sessionID, err := requestutil.SessionID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Current(request.Context(), sessionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, session)
}

func (handler *Handler) setField(writer http.ResponseWriter, request *http.Request) {
	sessionID, err := requestutil.SessionID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input FieldInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.SetField(request.Context(), sessionID, input.Field, input.Value)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, session)
}

func (handler *Handler) commit(writer http.ResponseWriter, request *http.Request) {
	sessionID, err := requestutil.SessionID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.Commit(request.Context(), requestutil.Caller(request), sessionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

func (handler *Handler) cancel(writer http.ResponseWriter, request *http.Request) {
	sessionID, err := requestutil.SessionID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Cancel(request.Context(), sessionID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
