package window

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
	router.Get("/", handler.snapshot)
	router.Put("/mode", handler.setMode)

	router.Put("/{jutsuID}/open", handler.open)
	router.Put("/{jutsuID}/minimize", handler.minimize)
	router.Delete("/{jutsuID}", handler.close)
	router.Delete("/minimized/{jutsuID}", handler.closeMinimized)

	router.Post("/{jutsuID}/drag", handler.startDrag)
	router.Post("/drag/move", handler.moveDrag)
	router.Post("/drag/end", handler.endDrag)
}

// sessionOp runs one window operation for the request's session and writes
// the resulting arrangement back as the response.
func (handler *Handler) sessionOp(writer http.ResponseWriter, request *http.Request, op func(sessionID string) (*State, error)) {
	sessionID, err := requestutil.SessionID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	state, err := op(sessionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, state)
}

func (handler *Handler) snapshot(writer http.ResponseWriter, request *http.Request) {
	handler.sessionOp(writer, request, func(sessionID string) (*State, error) {
		return handler.service.Snapshot(request.Context(), sessionID)
	})
}

func (handler *Handler) setMode(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Touch bool `json:"touch"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.sessionOp(writer, request, func(sessionID string) (*State, error) {
		return handler.service.SetTouch(request.Context(), sessionID, input.Touch)
	})
}

func (handler *Handler) open(writer http.ResponseWriter, request *http.Request) {
	handler.sessionOp(writer, request, func(sessionID string) (*State, error) {
		return handler.service.Open(request.Context(), sessionID, requestutil.ID(request, "jutsuID"))
	})
}

func (handler *Handler) minimize(writer http.ResponseWriter, request *http.Request) {
	handler.sessionOp(writer, request, func(sessionID string) (*State, error) {
		return handler.service.Minimize(request.Context(), sessionID, requestutil.ID(request, "jutsuID"))
	})
}

func (handler *Handler) close(writer http.ResponseWriter, request *http.Request) {
	handler.sessionOp(writer, request, func(sessionID string) (*State, error) {
		return handler.service.Close(request.Context(), sessionID, requestutil.ID(request, "jutsuID"))
	})
}

func (handler *Handler) closeMinimized(writer http.ResponseWriter, request *http.Request) {
	handler.sessionOp(writer, request, func(sessionID string) (*State, error) {
		return handler.service.CloseMinimized(request.Context(), sessionID, requestutil.ID(request, "jutsuID"))
	})
}

func (handler *Handler) startDrag(writer http.ResponseWriter, request *http.Request) {
	var pointer Position
	if err := requestutil.DecodeJSON(request, &pointer); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.sessionOp(writer, request, func(sessionID string) (*State, error) {
		return handler.service.StartDrag(request.Context(), sessionID, requestutil.ID(request, "jutsuID"), pointer)
	})
}

func (handler *Handler) moveDrag(writer http.ResponseWriter, request *http.Request) {
	var pointer Position
	if err := requestutil.DecodeJSON(request, &pointer); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.sessionOp(writer, request, func(sessionID string) (*State, error) {
		return handler.service.MoveDrag(request.Context(), sessionID, pointer)
	})
}

func (handler *Handler) endDrag(writer http.ResponseWriter, request *http.Request) {
	handler.sessionOp(writer, request, func(sessionID string) (*State, error) {
		return handler.service.EndDrag(request.Context(), sessionID)
	})
}
