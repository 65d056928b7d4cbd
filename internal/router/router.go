package router

import (
	"html/template"
	"net/http"

	"github.com/AnthoniusHendriyanto/g8studio/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const sessionMaxAge = 30 * 24 * 60 * 60

// Options configures the HTTP surface around the handler set.
type Options struct {
	SessionSecret string
	MediaDir      string
	MediaURLPath  string
	TemplateGlob  string
	StaticDir     string
	// SecureCookies marks the session cookie Secure; leave false when the
	// server is reached over plain HTTP, or the browser drops the cookie
	// and no login ever sticks.
	SecureCookies bool
}

// SetupRouter wires middleware, templates and all routes.
func SetupRouter(api *handler.API, opts Options) *gin.Engine {
	r := gin.Default()

	if opts.TemplateGlob == "" {
		opts.TemplateGlob = "web/template/*.html"
	}
	if opts.StaticDir == "" {
		opts.StaticDir = "./web/static"
	}

	store := cookie.NewStore([]byte(opts.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("g8studio_session", store))
	r.Use(api.LocaleMiddleware())

	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
	})
	r.LoadHTMLGlob(opts.TemplateGlob)

	r.Static("/static", opts.StaticDir)
	if opts.MediaDir != "" && opts.MediaURLPath != "" && opts.MediaURLPath != "/static" {
		r.Static(opts.MediaURLPath, opts.MediaDir)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Public pages
	r.GET("/", api.ShowHome)
	r.GET("/services", api.ShowServices)
	r.GET("/about", api.ShowAbout)
	r.GET("/portfolio", api.ShowPortfolio)
	r.GET("/links", api.ShowLinks)
	r.GET("/contact", api.ShowContact)
	r.POST("/contact", api.SubmitContact)
	r.NoRoute(api.NotFound)

	// Admin
	admin := r.Group("/admin")
	{
		admin.GET("/login", api.ShowLoginPage)
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("", api.ShowDashboard)
			auth.GET("/partners", api.ShowPartnerManagement)
			auth.GET("/portfolio", api.ShowPortfolioManagement)
			auth.GET("/hero", api.ShowHeroManagement)
			auth.GET("/links", api.ShowLinkManagement)

			adminAPI := auth.Group("/api")
			{
				adminAPI.GET("/partners", api.ListPartners)
				adminAPI.POST("/partners", api.CreatePartner)
				adminAPI.PUT("/partners/:id", api.UpdatePartner)
				adminAPI.DELETE("/partners/:id", api.DeletePartner)

				adminAPI.GET("/projects", api.ListProjects)
				adminAPI.GET("/projects/:id", api.GetProject)
				adminAPI.POST("/projects", api.CreateProject)
				adminAPI.PUT("/projects/:id", api.UpdateProject)
				adminAPI.DELETE("/projects/:id", api.DeleteProject)

				adminAPI.GET("/slides", api.ListSlides)
				adminAPI.POST("/slides", api.CreateSlide)
				adminAPI.PUT("/slides/:id", api.UpdateSlide)
				adminAPI.PUT("/slides/:id/global", api.SetSlideGlobalText)
				adminAPI.DELETE("/slides/:id", api.DeleteSlide)

				adminAPI.GET("/links", api.ListLinks)
				adminAPI.POST("/links", api.CreateLink)
				adminAPI.PUT("/links/:id", api.UpdateLink)
				adminAPI.PUT("/links/:id/toggle", api.ToggleLink)
				adminAPI.DELETE("/links/:id", api.DeleteLink)
			}
		}
	}

	return r
}
