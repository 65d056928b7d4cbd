package handler

import (
	"net/http"
	"strings"

	"github.com/AnthoniusHendriyanto/g8studio/internal/db"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionUserIDKey   = "user_id"
	sessionUsernameKey = "username"
	sessionRedirectKey = "redirect_to"
)

// ShowLoginPage renders the admin login form.
func (a *API) ShowLoginPage(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get(sessionUserIDKey) != nil {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	a.renderHTML(c, http.StatusOK, "admin_login.html", gin.H{
		"title": "Admin Login",
	})
}

// Login checks credentials, opens a session and resumes the originally
// requested admin page when the visitor was bounced to the login form.
func (a *API) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	var user db.User
	if err := a.db.Where("username = ?", username).First(&user).Error; err != nil {
		a.renderHTML(c, http.StatusUnauthorized, "admin_login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid username or password",
		})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		a.renderHTML(c, http.StatusUnauthorized, "admin_login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid username or password",
		})
		return
	}

	session := sessions.Default(c)
	target := popRedirectTarget(session)
	session.Set(sessionUserIDKey, user.ID)
	session.Set(sessionUsernameKey, user.Username)
	if err := session.Save(); err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "admin_login.html", gin.H{
			"title": "Admin Login",
			"error": "Could not save the session",
		})
		return
	}

	c.Redirect(http.StatusFound, target)
}

// Logout clears the session.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/admin/login")
}

// ShowDashboard renders the admin landing page with content counts.
func (a *API) ShowDashboard(c *gin.Context) {
	session := sessions.Default(c)
	username := session.Get(sessionUsernameKey)

	var partnerCount, projectCount, slideCount, linkCount int64
	a.db.Model(&db.Partner{}).Count(&partnerCount)
	a.db.Model(&db.PortfolioItem{}).Count(&projectCount)
	a.db.Model(&db.HeroSlide{}).Count(&slideCount)
	a.db.Model(&db.QuickLink{}).Count(&linkCount)

	a.renderHTML(c, http.StatusOK, "admin_dashboard.html", gin.H{
		"title":        "Dashboard",
		"username":     username,
		"partnerCount": partnerCount,
		"projectCount": projectCount,
		"slideCount":   slideCount,
		"linkCount":    linkCount,
	})
}

// AuthRequired gates admin pages. Unauthenticated visitors are bounced to
// the login form and the page they asked for is remembered for one resume.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionUserIDKey) == nil {
			if target := resumableTarget(c); target != "" {
				session.Set(sessionRedirectKey, target)
				session.Save()
			}
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func resumableTarget(c *gin.Context) string {
	if c.Request == nil || c.Request.Method != http.MethodGet || c.Request.URL == nil {
		return ""
	}
	path := c.Request.URL.Path
	if !strings.HasPrefix(path, "/admin") {
		return ""
	}
	if query := c.Request.URL.RawQuery; query != "" {
		path += "?" + query
	}
	return path
}

func popRedirectTarget(session sessions.Session) string {
	target := "/admin"
	if stored, ok := session.Get(sessionRedirectKey).(string); ok && strings.HasPrefix(stored, "/admin") {
		target = stored
	}
	session.Delete(sessionRedirectKey)
	return target
}
