package handlers

import (
	"net/http"

	"github.com/DanielPopoola/payment-gateway/internal/application"
	_ "github.com/DanielPopoola/payment-gateway/internal/docs"
	"github.com/DanielPopoola/payment-gateway/internal/interfaces/rest"
	"github.com/DanielPopoola/payment-gateway/internal/interfaces/rest/openapi"
	"github.com/swaggo/swag"
)

// SwaggerDoc serves the swagger 2.0 document registered by the docs package.
func (h *Handlers) SwaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		h.logger.Error("failed to read swagger doc", "error", err)
		rest.WriteError(w, application.NewInternalError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(doc))
}

// OpenAPIDocument serves the OpenAPI 3 document used for request validation.
func (h *Handlers) OpenAPIDocument(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(openapi.Document())
}
