package kiosk

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/akio-byte/aki-eduro/internal/gemini"
	"github.com/akio-byte/aki-eduro/internal/shared/server/respond"
)

// Handler wires the kiosk HTTP surface: three thin collaborator proxies for
// the wizard plus the full generation pipeline.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches kiosk routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate-elf-image", h.generateElfImage)
	rg.POST("/generate-description", h.generateDescription)
	rg.POST("/send-badge-email", h.sendBadgeEmail)
	rg.POST("/generate-certificate", h.generateCertificate)
}

func (h *Handler) generateElfImage(c *gin.Context) {
	var req generateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid request body")
		return
	}
	if strings.TrimSpace(req.ImageBase64) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "imageBase64 is required")
		return
	}
	if !h.Svc.Image.Configured() {
		respond.Error(c, http.StatusInternalServerError, "config_error", "Server misconfigured: GEMINI_API_KEY missing")
		return
	}

	prompt := req.Prompt
	if strings.TrimSpace(prompt) == "" {
		prompt = gemini.DefaultEditPrompt
	}

	imageDataURL, err := h.Svc.Image.EditImage(c.Request.Context(), StripDataURIPrefix(req.ImageBase64), prompt)
	if err != nil {
		if errors.Is(err, gemini.ErrNoImage) {
			respond.Error(c, http.StatusBadRequest, "no_image", "No image generated")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "upstream_error", "Image generation failed")
		return
	}

	respond.OK(c, generateImageResponse{Success: true, ImageDataURL: imageDataURL})
}

func (h *Handler) generateDescription(c *gin.Context) {
	var req generateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid request body")
		return
	}
	if !h.Svc.Text.Configured() {
		respond.Error(c, http.StatusInternalServerError, "config_error", "Server misconfigured: GEMINI_API_KEY missing")
		return
	}

	var (
		text string
		err  error
	)
	if strings.TrimSpace(req.Prompt) != "" {
		text, err = h.Svc.Text.GenerateText(c.Request.Context(), req.Prompt)
	} else {
		text, err = h.Svc.Text.GenerateDescription(c.Request.Context(), req.Name, req.Score, req.Level)
	}
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "upstream_error", "Text generation failed")
		return
	}

	respond.OK(c, generateDescriptionResponse{Success: true, Text: text})
}

func (h *Handler) sendBadgeEmail(c *gin.Context) {
	var req sendBadgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.FirstName) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing email or firstName")
		return
	}
	if !h.Svc.Badge.Configured() {
		respond.Error(c, http.StatusInternalServerError, "config_error", "Server misconfiguration: OBF credentials missing")
		return
	}

	if err := h.Svc.Badge.Issue(c.Request.Context(), strings.TrimSpace(req.Email), strings.TrimSpace(req.FirstName)); err != nil {
		respond.Error(c, http.StatusInternalServerError, "upstream_error", "Failed to issue badge on OBF side")
		return
	}

	respond.OK(c, sendBadgeResponse{Success: true})
}

func (h *Handler) generateCertificate(c *gin.Context) {
	var req generateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "name is required")
		return
	}

	result, err := h.Svc.Generate(c.Request.Context(), Submission{
		Name:         req.Name,
		Email:        req.Email,
		Score:        req.Score,
		PhotoDataURL: req.PhotoDataURL,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid input")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "generation_failed", "Todistuksen luonti epäonnistui")
		return
	}

	respond.OK(c, generateCertificateResponse{Success: true, Result: result})
}
