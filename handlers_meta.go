package main

import (
	"log"
	"net/http"
	"runtime"
	"time"
)

// For goroutine monitoring - can be hooked to a grafana dashboard
func getGoroutineStats() map[string]any {
	numGoroutines := runtime.NumGoroutine()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return map[string]any{
		"goroutine_count": numGoroutines,
		"memory_alloc":    memStats.Alloc,
		"memory_total":    memStats.TotalAlloc,
		"memory_sys":      memStats.Sys,
		"num_gc":          memStats.NumGC,
		"status":          getGoroutineStatus(numGoroutines),
	}
}

func getGoroutineStatus(count int) string {
	if count < 50 {
		return "healthy"
	} else if count < 100 {
		return "warning"
	} else {
		return "critical"
	}
}

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	counts := s.store.Counts()
	goroutineStats := getGoroutineStats()
	uptime := time.Since(s.startTime).Round(time.Second)

	healthData := map[string]any{
		"status":     "healthy",
		"name":       "Lassoverse API",
		"version":    defaultAPIVersion,
		"uptime":     uptime.String(),
		"resources":  counts,
		"goroutines": goroutineStats,
		"ted_says":   "I feel like we fell out of the lucky tree and hit every branch on the way down.",
		"timestamp":  time.Now(),
	}

	log.Printf("🏥 Health Check: %d characters, %d matches, %d webhooks, %d goroutines (%s)",
		counts["characters"], counts["matches"], counts["webhooks"],
		goroutineStats["goroutine_count"], goroutineStats["status"])

	writeJSON(w, http.StatusOK, healthData)
}

// apiIndex lists the available endpoint groups so SDK demos have a
// discoverable entry point.
func (s *Server) apiIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":    "Lassoverse API",
		"version": defaultAPIVersion,
		"motto":   "Believe!",
		"endpoints": map[string]any{
			"characters":   "/api/v1/characters",
			"teams":        "/api/v1/teams",
			"matches":      "/api/v1/matches",
			"episodes":     "/api/v1/episodes",
			"quotes":       "/api/v1/quotes",
			"team_members": "/api/v1/team-members",
			"interactive": []string{
				"/api/v1/believe",
				"/api/v1/conflict/resolve",
				"/api/v1/reframe",
				"/api/v1/press-conference",
				"/api/v1/coaching/principles",
				"/api/v1/biscuits",
			},
			"data_types": "/api/v1/data-types",
			"webhooks":   "/api/v1/webhooks",
			"streaming": []string{
				"/api/v1/stream/pep-talk",
				"/api/v1/stream/match-commentary",
				"/api/v1/stream/commentary/{match_id}",
				"/api/v1/stream/test",
				"/api/v1/matches/live/stream",
			},
			"websocket": []string{
				"/api/v1/matches/live",
				"/ws/test",
			},
			"health": "/api/v1/health",
		},
	})
}
