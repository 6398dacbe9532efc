package upload

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shinobidex/fichas-api/internal/platform/apperr"
	"github.com/shinobidex/fichas-api/internal/platform/constants"
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
	router.Post("/fichas", handler.uploadSheetImage)
	router.Post("/jutsus", handler.uploadJutsuImage)
}

// uploadSheetImage handles POST /uploads/fichas — a character portrait.
func (handler *Handler) uploadSheetImage(writer http.ResponseWriter, request *http.Request) {
	handler.upload(writer, request, "")
}

// uploadJutsuImage handles POST /uploads/jutsus — a jutsu illustration.
func (handler *Handler) uploadJutsuImage(writer http.ResponseWriter, request *http.Request) {
	handler.upload(writer, request, constants.JutsuObjectPrefix)
}

func (handler *Handler) upload(writer http.ResponseWriter, request *http.Request, prefix string) {
	request.Body = http.MaxBytesReader(writer, request.Body, constants.MaxUploadBytes)

	file, header, err := request.FormFile("file")
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Missing multipart 'file' field"))
		return
	}
	defer file.Close()

	caller := requestutil.Caller(request)
	result, err := handler.service.Upload(
		request.Context(),
		prefix,
		caller,
		header.Filename,
		header.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, result)
}
