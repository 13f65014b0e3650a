// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"presskit/internal/delivery/http/response"
	"presskit/internal/domain/entity"
	"presskit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContentHandler holds dependencies for content-related handlers.
type ContentHandler struct {
	uc     usecase.ContentUsecase
	logger *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler, injected by Fx.
func NewContentHandler(uc usecase.ContentUsecase, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetContent serves the published content to both the public site and the
// admin panel.
func (h *ContentHandler) GetContent(c echo.Context) error {
	snapshot, err := h.uc.GetContent(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toContentResponse(snapshot), "")
}

// UpdateContent applies an admin save payload.
func (h *ContentHandler) UpdateContent(c echo.Context) error {
	var input *usecase.UpdateContentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Cuerpo de la solicitud inválido")
	}

	if err := h.uc.UpdateContent(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Contenido actualizado")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// --- Response DTOs ---

// ContentResponse is the wire shape of the published content.
type ContentResponse struct {
	Bio            *BioResponse            `json:"bio"`
	Visuals        []VisualResponse        `json:"visuals"`
	Sets           []LiveSetResponse       `json:"sets"`
	Collaborations []CollaborationResponse `json:"collaborations"`
	Influences     []InfluenceResponse     `json:"influences"`
	Contact        *ContactResponse        `json:"contact"`
}

// BioResponse is the wire shape of the biography singleton.
type BioResponse struct {
	ID            uint      `json:"id"`
	ShortText     string    `json:"shortText"`
	LongText      string    `json:"longText"`
	HeroImagePath *string   `json:"heroImagePath"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// VisualResponse is the wire shape of one gallery entry.
type VisualResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	ImagePath   string  `json:"imagePath"`
	Order       int     `json:"order"`
}

// LiveSetResponse is the wire shape of one embedded live set.
type LiveSetResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	EmbedURL    string  `json:"embedUrl"`
	Platform    string  `json:"platform"`
	Order       int     `json:"order"`
}

// CollaborationResponse is the wire shape of one collaboration entry.
type CollaborationResponse struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Role  *string `json:"role"`
	Year  *int    `json:"year"`
	Link  *string `json:"link"`
	Order int     `json:"order"`
}

// InfluenceResponse is the wire shape of one influence entry.
type InfluenceResponse struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Genre *string `json:"genre"`
	Note  *string `json:"note"`
	Order int     `json:"order"`
}

// ContactResponse is the wire shape of the contact singleton.
type ContactResponse struct {
	ID              uint    `json:"id"`
	WhatsappNumber  string  `json:"whatsappNumber"`
	WhatsappMessage *string `json:"whatsappMessage"`
	Instagram       *string `json:"instagram"`
	Spotify         *string `json:"spotify"`
	Youtube         *string `json:"youtube"`
	Soundcloud      *string `json:"soundcloud"`
	Email           *string `json:"email"`
	Location        *string `json:"location"`
}

func toContentResponse(snapshot *entity.ContentSnapshot) *ContentResponse {
	if snapshot == nil {
		return nil
	}

	resp := &ContentResponse{
		Visuals:        make([]VisualResponse, 0, len(snapshot.Visuals)),
		Sets:           make([]LiveSetResponse, 0, len(snapshot.Sets)),
		Collaborations: make([]CollaborationResponse, 0, len(snapshot.Collaborations)),
		Influences:     make([]InfluenceResponse, 0, len(snapshot.Influences)),
	}

	if snapshot.Bio != nil {
		resp.Bio = &BioResponse{
			ID:            snapshot.Bio.ID,
			ShortText:     snapshot.Bio.ShortText,
			LongText:      snapshot.Bio.LongText,
			HeroImagePath: snapshot.Bio.HeroImagePath,
			UpdatedAt:     snapshot.Bio.UpdatedAt,
		}
	}

	for _, visual := range snapshot.Visuals {
		resp.Visuals = append(resp.Visuals, VisualResponse{
			ID:          visual.ID,
			Title:       visual.Title,
			Description: visual.Description,
			ImagePath:   visual.ImagePath,
			Order:       visual.Order,
		})
	}

	for _, set := range snapshot.Sets {
		resp.Sets = append(resp.Sets, LiveSetResponse{
			ID:          set.ID,
			Title:       set.Title,
			Description: set.Description,
			EmbedURL:    set.EmbedURL,
			Platform:    set.Platform.String(),
			Order:       set.Order,
		})
	}

	for _, collaboration := range snapshot.Collaborations {
		resp.Collaborations = append(resp.Collaborations, CollaborationResponse{
			ID:    collaboration.ID,
			Name:  collaboration.Name,
			Role:  collaboration.Role,
			Year:  collaboration.Year,
			Link:  collaboration.Link,
			Order: collaboration.Order,
		})
	}

	for _, influence := range snapshot.Influences {
		resp.Influences = append(resp.Influences, InfluenceResponse{
			ID:    influence.ID,
			Name:  influence.Name,
			Genre: influence.Genre,
			Note:  influence.Note,
			Order: influence.Order,
		})
	}

	if snapshot.Contact != nil {
		resp.Contact = &ContactResponse{
			ID:              snapshot.Contact.ID,
			WhatsappNumber:  snapshot.Contact.WhatsappNumber,
			WhatsappMessage: snapshot.Contact.WhatsappMessage,
			Instagram:       snapshot.Contact.Instagram,
			Spotify:         snapshot.Contact.Spotify,
			Youtube:         snapshot.Contact.Youtube,
			Soundcloud:      snapshot.Contact.Soundcloud,
			Email:           snapshot.Contact.Email,
			Location:        snapshot.Contact.Location,
		}
	}

	return resp
}
