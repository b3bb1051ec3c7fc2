package server

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	visitorRetention = 30 * 24 * time.Hour
	maxVisitors      = 10000
	recentVisitors   = 50
)

// VisitorMetric is one page view. Only the salted hash of the client address is kept.
type VisitorMetric struct {
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// VisitorStats summarizes the retained page views.
type VisitorStats struct {
	TotalVisitors    int             `json:"total_visitors"`
	UniqueVisitors   int             `json:"unique_visitors"`
	VisitorsToday    int             `json:"visitors_today"`
	VisitorsThisWeek int             `json:"visitors_this_week"`
	RecentVisitors   []VisitorMetric `json:"recent_visitors"`
}

// visitorLog holds page views in memory, oldest first.
type visitorLog struct {
	mu      sync.Mutex
	entries []VisitorMetric
	now     func() time.Time
}

func newVisitorLog() *visitorLog {
	return &visitorLog{now: time.Now}
}

func (v *visitorLog) record(m VisitorMetric) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.entries = append(v.entries, m)
	if len(v.entries) > maxVisitors {
		v.entries = append([]VisitorMetric(nil), v.entries[len(v.entries)-maxVisitors:]...)
	}
}

// cleanup drops views older than the retention window and reports how many went.
func (v *visitorLog) cleanup() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	cutoff := v.now().Add(-visitorRetention)
	i := 0
	for i < len(v.entries) && v.entries[i].Timestamp.Before(cutoff) {
		i++
	}
	if i > 0 {
		v.entries = append([]VisitorMetric(nil), v.entries[i:]...)
	}
	return i
}

func (v *visitorLog) stats() VisitorStats {
	if n := v.cleanup(); n > 0 {
		log.Printf("Privacy cleanup: Removed %d visitor records older than %s", n, visitorRetention)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	now := v.now()
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	week := now.Add(-7 * 24 * time.Hour)

	stats := VisitorStats{
		TotalVisitors:  len(v.entries),
		RecentVisitors: []VisitorMetric{},
	}
	unique := make(map[string]struct{})
	for _, e := range v.entries {
		unique[e.HashedIP] = struct{}{}
		if !e.Timestamp.Before(today) {
			stats.VisitorsToday++
		}
		if !e.Timestamp.Before(week) {
			stats.VisitorsThisWeek++
		}
	}
	stats.UniqueVisitors = len(unique)
	for i := len(v.entries) - 1; i >= 0 && len(stats.RecentVisitors) < recentVisitors; i-- {
		stats.RecentVisitors = append(stats.RecentVisitors, v.entries[i])
	}
	return stats
}

// Privacy-conscious visitor tracking middleware
func (s *Server) visitorTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip tracking for assets, the API and admin pages
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/api/") ||
			strings.HasPrefix(path, "/admin/") ||
			strings.HasPrefix(path, "/favicon") ||
			path == "/healthz" {
			c.Next()
			return
		}

		// Respect Do Not Track header
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		s.visitors.record(VisitorMetric{
			HashedIP:  s.hashIP(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
			Timestamp: s.visitors.now(),
		})
		c.Next()
	}
}
