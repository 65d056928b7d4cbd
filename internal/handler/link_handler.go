package handler

import (
	"errors"
	"net/http"

	"github.com/AnthoniusHendriyanto/g8studio/internal/service"
	"github.com/AnthoniusHendriyanto/g8studio/internal/view"
	"github.com/gin-gonic/gin"
)

type linkPayload struct {
	Title      string `json:"title"`
	URL        string `json:"url"`
	IconName   string `json:"icon_name"`
	Color      string `json:"color"`
	OrderIndex *int   `json:"order_index"`
	IsActive   *bool  `json:"is_active"`
}

type linkUpdatePayload struct {
	Title      *string `json:"title"`
	URL        *string `json:"url"`
	IconName   *string `json:"icon_name"`
	Color      *string `json:"color"`
	OrderIndex *int    `json:"order_index"`
	IsActive   *bool   `json:"is_active"`
}

type linkTogglePayload struct {
	Active bool `json:"active"`
}

// ShowLinkManagement renders the admin quick-links page.
func (a *API) ShowLinkManagement(c *gin.Context) {
	links, err := a.links.ListAll()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "admin_links.html", gin.H{
			"title": "Quick Links",
			"error": "Could not load links",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "admin_links.html", gin.H{
		"title": "Quick Links",
		"links": links,
		"icons": view.LinkIconOptions(),
	})
}

// ListLinks returns every link as JSON, hidden ones included.
func (a *API) ListLinks(c *gin.Context) {
	links, err := a.links.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Could not load links")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": links})
}

// CreateLink adds a quick link.
func (a *API) CreateLink(c *gin.Context) {
	var payload linkPayload
	if !bindJSON(c, &payload, "Malformed request body") {
		return
	}

	link, err := a.links.Create(service.LinkInput{
		Title:      payload.Title,
		URL:        payload.URL,
		IconName:   payload.IconName,
		Color:      payload.Color,
		OrderIndex: payload.OrderIndex,
		IsActive:   payload.IsActive,
	})
	if err != nil {
		if service.IsValidation(err) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "Could not create the link")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Link created", "item": link})
}

// UpdateLink applies a partial update.
func (a *API) UpdateLink(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid link ID")
		return
	}

	var payload linkUpdatePayload
	if !bindJSON(c, &payload, "Malformed request body") {
		return
	}

	link, err := a.links.Update(id, service.LinkUpdate{
		Title:      payload.Title,
		URL:        payload.URL,
		IconName:   payload.IconName,
		Color:      payload.Color,
		OrderIndex: payload.OrderIndex,
		IsActive:   payload.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLinkNotFound):
			respondError(c, http.StatusNotFound, "Link not found")
		case service.IsValidation(err):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "Could not update the link")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Link updated", "item": link})
}

// ToggleLink flips only the visibility flag.
func (a *API) ToggleLink(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid link ID")
		return
	}

	var payload linkTogglePayload
	if !bindJSON(c, &payload, "Malformed request body") {
		return
	}

	link, err := a.links.ToggleActive(id, payload.Active)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLinkNotFound):
			respondError(c, http.StatusNotFound, "Link not found")
		default:
			respondError(c, http.StatusInternalServerError, "Could not update the link")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Link updated", "item": link})
}

// DeleteLink removes a quick link.
func (a *API) DeleteLink(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid link ID")
		return
	}

	if err := a.links.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrLinkNotFound):
			respondError(c, http.StatusNotFound, "Link not found")
		default:
			respondError(c, http.StatusInternalServerError, "Could not delete the link")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Link deleted"})
}
