package server

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/hero"
)

const adminCookie = "admin_token"

// AdminStats is the admin dashboard's view of the running site.
type AdminStats struct {
	Uptime        string     `json:"uptime"`
	StreamClients int        `json:"stream_clients"`
	NodeCount     int        `json:"node_count"`
	Phrases       []string   `json:"phrases"`
	Layers        []int      `json:"layers"`
	Frame         hero.Frame `json:"frame"`

	VisitorStats
}

// Hash IP address so logs never carry raw client addresses (consistent per IP)
func (s *Server) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + s.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// Middleware to check admin authentication: the login cookie, or a bearer
// token for scrapers.
func (s *Server) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(adminCookie); err == nil && equal(token, s.cfg.AdminToken) {
			c.Next()
			return
		}
		if bearer, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok && equal(bearer, s.cfg.AdminToken) {
			c.Next()
			return
		}
		c.Redirect(http.StatusFound, "/admin/login")
		c.Abort()
	}
}

func (s *Server) adminStats() AdminStats {
	return AdminStats{
		Uptime:        time.Since(s.started).Round(time.Second).String(),
		StreamClients: s.hub.Len(),
		NodeCount:     s.hero.NodeCount(),
		Phrases:       s.cfg.Hero.Phrases,
		Layers:        s.cfg.Hero.Layers,
		Frame:         s.hero.Snapshot(),
		VisitorStats:  s.visitors.stats(),
	}
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	if s.cfg.DefaultCredentials && gin.Mode() == gin.DebugMode {
		log.Println("WARNING: Using default admin credentials. Set ADMIN_USERNAME and ADMIN_PASSWORD.")
	}

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		// Evaluate both comparisons so timing does not reveal which one failed.
		userOK := equal(username, s.cfg.AdminUsername)
		passOK := equal(password, s.cfg.AdminPassword)
		if userOK && passOK {
			c.SetCookie(adminCookie, s.cfg.AdminToken, 3600*24, "/admin", "", false, true)
			log.Printf("Admin login successful from %s", s.hashIP(c.ClientIP()))
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}
		log.Printf("Failed admin login attempt from %s", s.hashIP(c.ClientIP()))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid credentials",
		})
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		log.Printf("Admin logout from %s", s.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(s.adminAuthMiddleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats": s.adminStats(),
		})
	})

	adminGroup.GET("/api/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.adminStats())
	})

	adminGroup.GET("/metrics", gin.WrapH(s.metrics.Handler()))
}
