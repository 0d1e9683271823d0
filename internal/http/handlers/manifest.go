package handlers

import (
	"net/http"
	"strings"

	"backoffice/internal/http/middleware"
	"backoffice/internal/metrics"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

func manifestService(c *gin.Context) services.ManifestService {
	return services.ManifestService{
		Trips:      Trips,
		Passengers: Passengers,
		Documents:  Documents,
		RequestID:  middleware.GetRequestID(c),
	}
}

// GET /api/trips/:id/manifest
func GetManifest(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	m, err := manifestService(c).Build(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	metrics.ManifestsGenerated.WithLabelValues("json").Inc()
	c.JSON(http.StatusOK, m)
}

// GET /api/trips/:id/manifest.pdf
func GetManifestPDF(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	pdf, filename, err := manifestService(c).RenderPDF(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// POST /api/trips/:id/manifest/documents
func StoreManifest(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	doc, err := manifestService(c).Store(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":         doc.ID,
		"trip_id":    doc.TripID,
		"kind":       doc.Kind,
		"file_name":  doc.FileName,
		"created_at": doc.CreatedAt,
		"url":        "/api/documents/" + doc.ID,
	})
}

// GET /api/documents/:id
func GetDocument(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	doc, err := Documents.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	contentType := doc.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", `inline; filename="`+doc.FileName+`"`)
	c.Data(http.StatusOK, contentType, doc.Data)
}
