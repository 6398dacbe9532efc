package identity

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/shinobidex/fichas-api/internal/platform/request"
	"github.com/shinobidex/fichas-api/internal/platform/respond"
)

type Handler struct {
	allowlist Allowlist
}

func NewHandler(allowlist Allowlist) *Handler {
	return &Handler{allowlist: allowlist}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.whoAmI)
}

// whoAmI handles GET /identity — the SPA calls this once per session to
// learn its owner token and admin status.
func (handler *Handler) whoAmI(writer http.ResponseWriter, request *http.Request) {
	caller := requestutil.Caller(request)

	respond.OK(writer, map[string]any{
		"ip":    caller,
		"admin": handler.allowlist.IsAdmin(caller),
	})
}
