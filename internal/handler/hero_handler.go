package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AnthoniusHendriyanto/g8studio/internal/service"
	"github.com/gin-gonic/gin"
)

type slideUpdatePayload struct {
	Title        *string `json:"title"`
	Subtitle     *string `json:"subtitle"`
	OrderIndex   *int    `json:"order_index"`
	UseRandom    *bool   `json:"use_random"`
	IsGlobalText *bool   `json:"is_global_text"`
}

type slideGlobalPayload struct {
	Value bool `json:"value"`
}

// ShowHeroManagement renders the admin hero carousel page.
func (a *API) ShowHeroManagement(c *gin.Context) {
	slides, err := a.slides.List()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "admin_hero.html", gin.H{
			"title": "Hero Carousel",
			"error": "Could not load slides",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "admin_hero.html", gin.H{
		"title":  "Hero Carousel",
		"slides": slides,
	})
}

// ListSlides returns all slides as JSON.
func (a *API) ListSlides(c *gin.Context) {
	slides, err := a.slides.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Could not load slides")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": slides})
}

// CreateSlide accepts a multipart form with slide fields and an image file.
func (a *API) CreateSlide(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "A slide image is required")
		return
	}

	input := service.SlideInput{
		Title:        c.PostForm("title"),
		Subtitle:     c.PostForm("subtitle"),
		UseRandom:    parseFormBool(c.PostForm("use_random")),
		IsGlobalText: parseFormBool(c.PostForm("is_global_text")),
	}
	if raw, ok := c.GetPostForm("order_index"); ok {
		if index, err := strconv.Atoi(raw); err == nil {
			input.OrderIndex = &index
		}
	}

	slide, err := a.slides.Create(c.Request.Context(), input, fileUploadFromHeader(header))
	if err != nil {
		if service.IsValidation(err) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "Could not create the slide")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Slide created", "item": slide})
}

// UpdateSlide applies a partial row update; the image is immutable.
func (a *API) UpdateSlide(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid slide ID")
		return
	}

	var payload slideUpdatePayload
	if !bindJSON(c, &payload, "Malformed request body") {
		return
	}

	slide, err := a.slides.Update(id, service.SlideUpdate{
		Title:        payload.Title,
		Subtitle:     payload.Subtitle,
		OrderIndex:   payload.OrderIndex,
		UseRandom:    payload.UseRandom,
		IsGlobalText: payload.IsGlobalText,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlideNotFound):
			respondError(c, http.StatusNotFound, "Slide not found")
		case service.IsValidation(err):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "Could not update the slide")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Slide updated", "item": slide})
}

// SetSlideGlobalText grants or clears the shared caption flag; at most one
// slide holds it at a time.
func (a *API) SetSlideGlobalText(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid slide ID")
		return
	}

	var payload slideGlobalPayload
	if !bindJSON(c, &payload, "Malformed request body") {
		return
	}

	slide, err := a.slides.SetGlobalText(id, payload.Value)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlideNotFound):
			respondError(c, http.StatusNotFound, "Slide not found")
		default:
			respondError(c, http.StatusInternalServerError, "Could not update the slide")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Slide updated", "item": slide})
}

// DeleteSlide removes a slide and its stored image.
func (a *API) DeleteSlide(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid slide ID")
		return
	}

	if err := a.slides.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrSlideNotFound):
			respondError(c, http.StatusNotFound, "Slide not found")
		default:
			respondError(c, http.StatusInternalServerError, "Could not delete the slide")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Slide deleted"})
}

// parseFormBool accepts both checkbox ("on") and strconv forms.
func parseFormBool(raw string) bool {
	if raw == "on" {
		return true
	}
	value, err := strconv.ParseBool(raw)
	return err == nil && value
}
