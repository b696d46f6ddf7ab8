package main

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// Server bundles the in-memory store with the runtime configuration so
// handlers never reach for globals.
type Server struct {
	store     *Store
	demo      *demoStore
	cfg       *Config
	startTime time.Time
}

func NewServer(store *Store, cfg *Config) *Server {
	return &Server{store: store, demo: newDemoStore(), cfg: cfg, startTime: time.Now()}
}

func (s *Server) serveHomepage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	counts := s.store.Counts()
	templateData := struct {
		Version     string
		Characters  int
		Teams       int
		Matches     int
		Episodes    int
		Quotes      int
		LastUpdated string
	}{
		Version:     defaultAPIVersion,
		Characters:  counts["characters"],
		Teams:       counts["teams"],
		Matches:     counts["matches"],
		Episodes:    counts["episodes"],
		Quotes:      counts["quotes"],
		LastUpdated: time.Now().Format("2006-01-02 15:04:05"),
	}

	tmpl, err := template.New("homepage").Parse(htmlTemplate)
	if err != nil {
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}
	if err := tmpl.Execute(w, templateData); err != nil {
		log.Printf("💔 Homepage render failed: %v", err)
	}
}

func (s *Server) routes() http.Handler {
	router := mux.NewRouter()

	router.Use(loggingMiddleware)

	// Home page route
	router.HandleFunc("/", s.serveHomepage).Methods("GET")
	router.HandleFunc("/health", s.healthCheck).Methods("GET")

	// WebSocket endpoints sit outside the versioned middleware chain;
	// upgrade requests carry no version headers.
	router.HandleFunc("/api/v1/matches/live", s.handleLiveMatch).Methods("GET")
	router.HandleFunc("/ws/test", s.handleWSTest).Methods("GET")

	// API routes - RESTful structure
	apiRouter := router.PathPrefix("/api/v1").Subrouter()
	apiRouter.Use(versioningMiddleware)
	apiRouter.Use(func(next http.Handler) http.Handler {
		return authMiddleware(s.cfg.APIKey, next)
	})

	// System endpoints
	apiRouter.HandleFunc("", s.apiIndex).Methods("GET")
	apiRouter.HandleFunc("/health", s.healthCheck).Methods("GET")

	// Character endpoints
	apiRouter.HandleFunc("/characters", s.listCharacters).Methods("GET")
	apiRouter.HandleFunc("/characters", s.createCharacter).Methods("POST")
	apiRouter.HandleFunc("/characters/{id}", s.getCharacter).Methods("GET")
	apiRouter.HandleFunc("/characters/{id}", s.updateCharacter).Methods("PATCH")
	apiRouter.HandleFunc("/characters/{id}", s.deleteCharacter).Methods("DELETE")
	apiRouter.HandleFunc("/characters/{id}/quotes", s.getCharacterQuotes).Methods("GET")

	// Team endpoints
	apiRouter.HandleFunc("/teams", s.listTeams).Methods("GET")
	apiRouter.HandleFunc("/teams", s.createTeam).Methods("POST")
	apiRouter.HandleFunc("/teams/{id}", s.getTeam).Methods("GET")
	apiRouter.HandleFunc("/teams/{id}", s.updateTeam).Methods("PATCH")
	apiRouter.HandleFunc("/teams/{id}", s.deleteTeam).Methods("DELETE")
	apiRouter.HandleFunc("/teams/{id}/roster", s.getTeamRoster).Methods("GET")
	apiRouter.HandleFunc("/teams/{id}/rivals", s.getTeamRivals).Methods("GET")
	apiRouter.HandleFunc("/teams/{id}/culture", s.getTeamCulture).Methods("GET")

	// Match endpoints - live routes before the {id} matcher
	apiRouter.HandleFunc("/matches/live/stream", s.streamLiveMatch).Methods("GET")
	apiRouter.HandleFunc("/matches", s.listMatches).Methods("GET")
	apiRouter.HandleFunc("/matches", s.createMatch).Methods("POST")
	apiRouter.HandleFunc("/matches/{id}", s.getMatch).Methods("GET")
	apiRouter.HandleFunc("/matches/{id}", s.updateMatch).Methods("PATCH")
	apiRouter.HandleFunc("/matches/{id}", s.deleteMatch).Methods("DELETE")
	apiRouter.HandleFunc("/matches/{id}/turning-points", s.getMatchTurningPoints).Methods("GET")

	// Episode and quote endpoints
	apiRouter.HandleFunc("/episodes", s.listEpisodes).Methods("GET")
	apiRouter.HandleFunc("/episodes", s.createEpisode).Methods("POST")
	apiRouter.HandleFunc("/episodes/{id}", s.getEpisode).Methods("GET")
	apiRouter.HandleFunc("/episodes/{id}", s.updateEpisode).Methods("PATCH")
	apiRouter.HandleFunc("/episodes/{id}", s.deleteEpisode).Methods("DELETE")
	apiRouter.HandleFunc("/episodes/{id}/wisdom", s.getEpisodeWisdom).Methods("GET")
	apiRouter.HandleFunc("/quotes", s.listQuotes).Methods("GET")
	apiRouter.HandleFunc("/quotes", s.createQuote).Methods("POST")
	apiRouter.HandleFunc("/quotes/random", s.getRandomQuote).Methods("GET")
	apiRouter.HandleFunc("/quotes/{id}", s.getQuote).Methods("GET")
	apiRouter.HandleFunc("/quotes/{id}", s.updateQuote).Methods("PATCH")
	apiRouter.HandleFunc("/quotes/{id}", s.deleteQuote).Methods("DELETE")

	// Team member endpoints - role views before the {id} matcher
	apiRouter.HandleFunc("/team-members", s.listTeamMembers).Methods("GET")
	apiRouter.HandleFunc("/team-members", s.createTeamMember).Methods("POST")
	apiRouter.HandleFunc("/team-members/players", s.listPlayers).Methods("GET")
	apiRouter.HandleFunc("/team-members/coaches", s.listCoaches).Methods("GET")
	apiRouter.HandleFunc("/team-members/staff", s.listStaff).Methods("GET")
	apiRouter.HandleFunc("/team-members/{id}", s.getTeamMember).Methods("GET")
	apiRouter.HandleFunc("/team-members/{id}", s.updateTeamMember).Methods("PATCH")
	apiRouter.HandleFunc("/team-members/{id}", s.deleteTeamMember).Methods("DELETE")

	// Data type showcase for SDK generators
	apiRouter.HandleFunc("/data-types", s.listDataTypes).Methods("GET")
	apiRouter.HandleFunc("/data-types", s.createDataType).Methods("POST")
	apiRouter.HandleFunc("/data-types/files/upload", s.uploadFile).Methods("POST")
	apiRouter.HandleFunc("/data-types/files/{id}", s.downloadFile).Methods("GET")
	apiRouter.HandleFunc("/data-types/files/{id}", s.deleteFile).Methods("DELETE")
	apiRouter.HandleFunc("/data-types/files/{id}/metadata", s.getFileMetadata).Methods("GET")
	apiRouter.HandleFunc("/data-types/binary", s.storeBinary).Methods("POST")
	apiRouter.HandleFunc("/data-types/binary/{id}", s.getBinary).Methods("GET")
	apiRouter.HandleFunc("/data-types/content-collections", s.createContentCollection).Methods("POST")
	apiRouter.HandleFunc("/data-types/types/dates", s.demoDates).Methods("GET")
	apiRouter.HandleFunc("/data-types/types/numbers", s.demoNumbers).Methods("GET")
	apiRouter.HandleFunc("/data-types/types/strings", s.demoStrings).Methods("GET")
	apiRouter.HandleFunc("/data-types/types/collections", s.demoCollections).Methods("GET")
	apiRouter.HandleFunc("/data-types/types/special", s.demoSpecial).Methods("GET")
	apiRouter.HandleFunc("/data-types/{id}", s.getDataType).Methods("GET")
	apiRouter.HandleFunc("/data-types/{id}", s.updateDataType).Methods("PATCH")
	apiRouter.HandleFunc("/data-types/{id}", s.deleteDataType).Methods("DELETE")

	// Interactive endpoints
	apiRouter.HandleFunc("/believe", s.believeEngine).Methods("POST")
	apiRouter.HandleFunc("/conflict/resolve", s.resolveConflict).Methods("POST")
	apiRouter.HandleFunc("/reframe", s.reframeThought).Methods("POST")
	apiRouter.HandleFunc("/press-conference", s.pressConference).Methods("POST")
	apiRouter.HandleFunc("/coaching/principles", s.listCoachingPrinciples).Methods("GET")
	apiRouter.HandleFunc("/coaching/principles/random", s.getRandomPrinciple).Methods("GET")
	apiRouter.HandleFunc("/coaching/principles/{id}", s.getCoachingPrinciple).Methods("GET")
	apiRouter.HandleFunc("/biscuits", s.listBiscuits).Methods("GET")
	apiRouter.HandleFunc("/biscuits", s.orderBiscuits).Methods("POST")
	apiRouter.HandleFunc("/biscuits/order", s.orderBiscuits).Methods("POST")
	apiRouter.HandleFunc("/biscuits/fresh", s.getFreshBiscuit).Methods("GET")
	apiRouter.HandleFunc("/biscuits/{id}", s.getBiscuit).Methods("GET")

	// Webhook endpoints
	apiRouter.HandleFunc("/webhooks", s.registerWebhook).Methods("POST")
	apiRouter.HandleFunc("/webhooks", s.listWebhooks).Methods("GET")
	apiRouter.HandleFunc("/webhooks/trigger", s.triggerWebhookEvent).Methods("POST")
	apiRouter.HandleFunc("/webhooks/{id}", s.getWebhook).Methods("GET")
	apiRouter.HandleFunc("/webhooks/{id}", s.deleteWebhook).Methods("DELETE")

	// Streaming endpoints (SSE)
	apiRouter.HandleFunc("/stream/pep-talk", s.streamPepTalk).Methods("GET")
	apiRouter.HandleFunc("/stream/match-commentary", s.streamMatchCommentary).Methods("GET")
	apiRouter.HandleFunc("/stream/commentary/{id}", s.streamMatchCommentary).Methods("GET")
	apiRouter.HandleFunc("/stream/test", s.streamTest).Methods("GET")

	// CORS wraps everything so browser SDK demos work out of the box
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-API-Version", "API-Version"},
	})
	return c.Handler(router)
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("💔 Config error: %v", err)
	}

	server := NewServer(NewStore(), cfg)
	handler := server.routes()

	// Print startup information
	fmt.Printf("🚀 Lassoverse API v%s starting on port %s\n", defaultAPIVersion, cfg.Port)
	fmt.Printf("📚 API Documentation: %s/\n", cfg.BaseURL)
	fmt.Printf("🏥 Health Check: %s/api/v1/health\n", cfg.BaseURL)
	fmt.Printf("🎭 Characters: %s/api/v1/characters\n", cfg.BaseURL)
	fmt.Printf("⚽ Matches: %s/api/v1/matches\n", cfg.BaseURL)
	fmt.Printf("💬 Random Quote: %s/api/v1/quotes/random\n", cfg.BaseURL)
	fmt.Printf("🧠 Believe Engine: POST %s/api/v1/believe\n", cfg.BaseURL)
	fmt.Printf("🍪 Fresh Biscuits: %s/api/v1/biscuits/fresh\n", cfg.BaseURL)
	fmt.Printf("📺 Live Match (SSE): %s/api/v1/matches/live/stream\n", cfg.BaseURL)
	fmt.Printf("🔌 Live Match (WebSocket): ws://0.0.0.0:%s/api/v1/matches/live\n", cfg.Port)
	if cfg.APIKey != "" {
		fmt.Println("🔐 API key authentication enabled")
	}

	// Start server
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, handler))
}
