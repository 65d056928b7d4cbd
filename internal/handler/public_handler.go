package handler

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/AnthoniusHendriyanto/g8studio/internal/db"
	"github.com/AnthoniusHendriyanto/g8studio/internal/locale"
	"github.com/AnthoniusHendriyanto/g8studio/internal/service"
	"github.com/AnthoniusHendriyanto/g8studio/internal/view"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

const featuredProjectCount = 3

// ShowHome renders the landing page: hero carousel, partner strip and the
// newest projects. Without slides the hero falls back to the static copy.
func (a *API) ShowHome(c *gin.Context) {
	carousel, err := a.slides.Carousel()
	if err != nil {
		c.Error(err)
	}
	partners, err := a.partners.List()
	if err != nil {
		c.Error(err)
	}
	projects, err := a.portfolio.List()
	if err != nil {
		c.Error(err)
	}
	if len(projects) > featuredProjectCount {
		projects = projects[:featuredProjectCount]
	}

	a.renderHTML(c, http.StatusOK, "home.html", gin.H{
		"title":     "G8 Studio",
		"canonical": "/",
		"carousel":  carousel,
		"partners":  partners,
		"featured":  projects,
	})
}

// ShowServices renders the services page from the static bilingual copy.
func (a *API) ShowServices(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "services.html", gin.H{
		"title":     "Services",
		"canonical": "/services",
	})
}

// ShowAbout renders the studio profile page.
func (a *API) ShowAbout(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "about.html", gin.H{
		"title":     "About Us",
		"canonical": "/about",
	})
}

type projectView struct {
	db.PortfolioItem
	DescriptionHTML template.HTML
}

// ShowPortfolio renders the full project gallery with markdown descriptions.
func (a *API) ShowPortfolio(c *gin.Context) {
	items, err := a.portfolio.List()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "portfolio.html", gin.H{
			"title": "Portfolio",
			"error": "Could not load projects, please try again later",
		})
		return
	}

	views := make([]projectView, 0, len(items))
	for _, item := range items {
		rendered, err := renderMarkdown(item.Description)
		if err != nil {
			c.Error(err)
			rendered = template.HTML(template.HTMLEscapeString(item.Description))
		}
		views = append(views, projectView{PortfolioItem: item, DescriptionHTML: rendered})
	}

	a.renderHTML(c, http.StatusOK, "portfolio.html", gin.H{
		"title":     "Portfolio",
		"canonical": "/portfolio",
		"items":     views,
	})
}

type linkView struct {
	db.QuickLink
	IconSVG template.HTML
}

// ShowLinks renders the public quick-links page; hidden links never appear.
func (a *API) ShowLinks(c *gin.Context) {
	links, err := a.links.ListActive()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "links.html", gin.H{
			"title": "Links",
			"error": "Could not load links, please try again later",
		})
		return
	}

	views := make([]linkView, 0, len(links))
	for _, link := range links {
		views = append(views, linkView{
			QuickLink: link,
			IconSVG:   template.HTML(view.LinkIconSVG(link.IconName)),
		})
	}

	a.renderHTML(c, http.StatusOK, "links.html", gin.H{
		"title":     "Links",
		"canonical": "/links",
		"links":     views,
	})
}

// ShowContact renders the contact form.
func (a *API) ShowContact(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "contact.html", gin.H{
		"title":      "Contact",
		"canonical":  "/contact",
		"configured": a.contact.Configured(),
	})
}

// SubmitContact forwards the form through the SMTP dispatcher and re-renders
// the page with the outcome.
func (a *API) SubmitContact(c *gin.Context) {
	msg := service.ContactMessage{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Phone:   c.PostForm("phone"),
		Message: c.PostForm("message"),
	}

	if err := a.contact.Send(msg); err != nil {
		if service.IsValidation(err) {
			a.renderHTML(c, http.StatusBadRequest, "contact.html", gin.H{
				"title":      "Contact",
				"canonical":  "/contact",
				"configured": a.contact.Configured(),
				"error":      err.Error(),
				"form":       msg,
			})
			return
		}
		c.Error(err)
		pref := a.requestLocale(c)
		a.renderHTML(c, http.StatusBadGateway, "contact.html", gin.H{
			"title":      "Contact",
			"canonical":  "/contact",
			"configured": a.contact.Configured(),
			"error":      locale.Content.ContactFailed.In(pref.Language),
			"form":       msg,
		})
		return
	}

	pref := a.requestLocale(c)
	a.renderHTML(c, http.StatusOK, "contact.html", gin.H{
		"title":      "Contact",
		"canonical":  "/contact",
		"configured": a.contact.Configured(),
		"success":    locale.Content.ContactSent.In(pref.Language),
	})
}

// NotFound renders the branded missing-page screen. It answers 200 so the
// page body, not an error shell, is what crawlers and visitors see.
func (a *API) NotFound(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "not_found.html", gin.H{
		"title": "Page Not Found",
	})
}

func renderMarkdown(content string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	safe := sanitizer.SanitizeBytes(buf.Bytes())
	return template.HTML(safe), nil
}
