package handler

import (
	"errors"
	"net/http"

	"github.com/AnthoniusHendriyanto/g8studio/internal/service"
	"github.com/gin-gonic/gin"
)

type partnerUpdatePayload struct {
	Name         *string `json:"name"`
	DisplayOrder *int    `json:"display_order"`
}

// ShowPartnerManagement renders the admin partner page.
func (a *API) ShowPartnerManagement(c *gin.Context) {
	partners, err := a.partners.List()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "admin_partners.html", gin.H{
			"title": "Partner Brands",
			"error": "Could not load partners",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "admin_partners.html", gin.H{
		"title":    "Partner Brands",
		"partners": partners,
	})
}

// ListPartners returns all partners as JSON.
func (a *API) ListPartners(c *gin.Context) {
	partners, err := a.partners.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Could not load partners")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": partners})
}

// CreatePartner accepts a multipart form with a name and a logo file.
func (a *API) CreatePartner(c *gin.Context) {
	name := c.PostForm("name")
	header, err := c.FormFile("logo")
	if err != nil {
		respondError(c, http.StatusBadRequest, "A logo file is required")
		return
	}

	partner, err := a.partners.Create(c.Request.Context(), name, fileUploadFromHeader(header))
	if err != nil {
		if service.IsValidation(err) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "Could not create the partner")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Partner created", "item": partner})
}

// UpdatePartner applies a partial row update; the logo is immutable.
func (a *API) UpdatePartner(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid partner ID")
		return
	}

	var payload partnerUpdatePayload
	if !bindJSON(c, &payload, "Malformed request body") {
		return
	}

	partner, err := a.partners.Update(id, service.PartnerUpdate{
		Name:         payload.Name,
		DisplayOrder: payload.DisplayOrder,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPartnerNotFound):
			respondError(c, http.StatusNotFound, "Partner not found")
		case service.IsValidation(err):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "Could not update the partner")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Partner updated", "item": partner})
}

// DeletePartner removes a partner and its stored logo.
func (a *API) DeletePartner(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid partner ID")
		return
	}

	if err := a.partners.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrPartnerNotFound):
			respondError(c, http.StatusNotFound, "Partner not found")
		default:
			respondError(c, http.StatusInternalServerError, "Could not delete the partner")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Partner deleted"})
}
