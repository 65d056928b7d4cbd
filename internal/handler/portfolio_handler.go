package handler

import (
	"errors"
	"net/http"

	"github.com/AnthoniusHendriyanto/g8studio/internal/db"
	"github.com/AnthoniusHendriyanto/g8studio/internal/service"
	"github.com/gin-gonic/gin"
)

// ShowPortfolioManagement renders the admin portfolio page.
func (a *API) ShowPortfolioManagement(c *gin.Context) {
	items, err := a.portfolio.List()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "admin_portfolio.html", gin.H{
			"title": "Portfolio",
			"error": "Could not load projects",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "admin_portfolio.html", gin.H{
		"title":    "Portfolio",
		"items":    items,
		"statuses": []string{db.ProjectStatusCompleted, db.ProjectStatusInProgress, db.ProjectStatusConcept},
	})
}

// ListProjects returns all projects as JSON, newest first.
func (a *API) ListProjects(c *gin.Context) {
	items, err := a.portfolio.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Could not load projects")
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetProject returns a single project as JSON.
func (a *API) GetProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	item, err := a.portfolio.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			respondError(c, http.StatusNotFound, "Project not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Could not load the project")
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// CreateProject accepts a multipart form with project fields and one or
// more image files under "images".
func (a *API) CreateProject(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Malformed multipart form")
		return
	}

	input := service.ProjectInput{
		Title:       c.PostForm("title"),
		Category:    c.PostForm("category"),
		Year:        c.PostForm("year"),
		Description: c.PostForm("description"),
		Location:    c.PostForm("location"),
		Client:      c.PostForm("client"),
		Status:      c.PostForm("status"),
	}

	item, err := a.portfolio.Create(c.Request.Context(), input, fileUploadsFromHeaders(form.File["images"]))
	if err != nil {
		if service.IsValidation(err) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "Could not create the project")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project created", "item": item})
}

// UpdateProject accepts a multipart form. Text fields are applied only when
// present; "keep_images" lists the existing image URLs to retain and new
// files arrive under "images". Omitting "keep_images" entirely leaves the
// current images in place.
func (a *API) UpdateProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Malformed multipart form")
		return
	}

	update := service.ProjectUpdate{
		Title:       formValue(c, "title"),
		Category:    formValue(c, "category"),
		Year:        formValue(c, "year"),
		Description: formValue(c, "description"),
		Location:    formValue(c, "location"),
		Client:      formValue(c, "client"),
		Status:      formValue(c, "status"),
		NewFiles:    fileUploadsFromHeaders(form.File["images"]),
	}
	if values, ok := form.Value["keep_images"]; ok {
		keep := make([]string, 0, len(values))
		for _, value := range values {
			if value != "" {
				keep = append(keep, value)
			}
		}
		update.KeepImages = keep
	}

	item, err := a.portfolio.Update(c.Request.Context(), id, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			respondError(c, http.StatusNotFound, "Project not found")
		case service.IsValidation(err):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "Could not update the project")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project updated", "item": item})
}

// DeleteProject removes a project and all of its stored images.
func (a *API) DeleteProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid project ID")
		return
	}

	if err := a.portfolio.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			respondError(c, http.StatusNotFound, "Project not found")
		default:
			respondError(c, http.StatusInternalServerError, "Could not delete the project")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

func formValue(c *gin.Context, key string) *string {
	if value, ok := c.GetPostForm(key); ok {
		return &value
	}
	return nil
}
