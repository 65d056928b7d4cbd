package handler

import (
	"time"

	"github.com/AnthoniusHendriyanto/g8studio/internal/cache"
	"github.com/AnthoniusHendriyanto/g8studio/internal/locale"
	"github.com/AnthoniusHendriyanto/g8studio/internal/service"
	"github.com/AnthoniusHendriyanto/g8studio/internal/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	partners  *service.PartnerService
	portfolio *service.PortfolioService
	slides    *service.HeroService
	links     *service.LinkService
	contact   *service.ContactDispatcher
	site      SiteOptions
}

// SiteOptions carries site-wide values injected into every rendered page.
type SiteOptions struct {
	BaseURL        string
	AnalyticsID    string
	WhatsAppNumber string
}

// NewAPI constructs a handler set with shared services behind one
// mutation cache.
func NewAPI(db *gorm.DB, store storage.ObjectStorage, contact *service.ContactDispatcher, site SiteOptions) *API {
	cacheStore := cache.NewStore()

	return &API{
		db:        db,
		partners:  service.NewPartnerService(db, store, cacheStore),
		portfolio: service.NewPortfolioService(db, store, cacheStore),
		slides:    service.NewHeroService(db, store, cacheStore),
		links:     service.NewLinkService(db, cacheStore),
		contact:   contact,
		site:      site,
	}
}

// DB exposes the underlying gorm instance for maintenance paths.
func (a *API) DB() *gorm.DB {
	return a.db
}

func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	pref := a.requestLocale(c)

	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["site"]; !exists {
		payload["site"] = gin.H{
			"name":        "G8 Studio",
			"baseUrl":     a.site.BaseURL,
			"analyticsId": a.site.AnalyticsID,
			"whatsApp":    a.site.WhatsAppNumber,
		}
	}
	if _, exists := payload["lang"]; !exists {
		payload["lang"] = pref.Language
	}
	if _, exists := payload["htmlLang"]; !exists {
		payload["htmlLang"] = pref.HTMLLang
	}
	if _, exists := payload["content"]; !exists {
		payload["content"] = localizedContent(pref.Language)
	}
	if _, exists := payload["languageSwitch"]; !exists {
		payload["languageSwitch"] = buildLanguageSwitch(c)
	}
	if _, exists := payload["year"]; !exists {
		payload["year"] = time.Now().Year()
	}

	c.HTML(status, template, payload)
}

// localizedContent flattens the bilingual site copy to the request language
// so templates never branch on it.
func localizedContent(language string) gin.H {
	src := locale.Content
	services := make([]gin.H, 0, len(src.ServiceItems))
	for _, item := range src.ServiceItems {
		services = append(services, gin.H{
			"title":       item.Title.In(language),
			"description": item.Description.In(language),
		})
	}
	return gin.H{
		"navHome":     src.NavHome.In(language),
		"navServices": src.NavServices.In(language),
		"navAbout":    src.NavAbout.In(language),
		"navContact":  src.NavContact.In(language),
		"navLinks":    src.NavLinks.In(language),

		"heroHeadline":    src.HeroHeadline.In(language),
		"heroSubheadline": src.HeroSubheadline.In(language),
		"heroCtaServices": src.HeroCTAServices.In(language),
		"heroCtaContact":  src.HeroCTAContact.In(language),

		"aboutLabel":       src.AboutLabel.In(language),
		"aboutTitle":       src.AboutTitle.In(language),
		"aboutDescription": src.AboutDescription.In(language),

		"servicesLabel":       src.ServicesLabel.In(language),
		"servicesTitle":       src.ServicesTitle.In(language),
		"servicesDescription": src.ServicesDescription.In(language),
		"serviceItems":        services,

		"partnersTitle": src.PartnersTitle.In(language),

		"portfolioTitle":       src.PortfolioTitle.In(language),
		"portfolioDescription": src.PortfolioDescription.In(language),

		"contactLabel":       src.ContactLabel.In(language),
		"contactTitle":       src.ContactTitle.In(language),
		"contactDescription": src.ContactDescription.In(language),
		"contactSent":        src.ContactSent.In(language),
		"contactFailed":      src.ContactFailed.In(language),

		"linksTitle": src.LinksTitle.In(language),

		"footerDescription": src.FooterDescription.In(language),
		"footerRights":      src.FooterRights.In(language),

		"notFoundTitle":   src.NotFoundTitle.In(language),
		"notFoundMessage": src.NotFoundMessage.In(language),
	}
}
