package main

import (
	"encoding/json"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// API versioning. Clients may pin a version with the X-API-Version header
// (API-Version also accepted); responses echo the version that served them.
const defaultAPIVersion = "1.0.0"

var supportedAPIVersions = []string{"1.0.0"}

var versionPattern = regexp.MustCompile(`^\d+\.\d+(\.\d+)?$`)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, errName, message string) {
	writeJSON(w, status, apiError{Error: errName, Message: message})
}

// loggingMiddleware prints one line per request with method, path, status
// and elapsed time.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("📡 %s %s -> %d (%s)", r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Microsecond))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// versioningMiddleware negotiates the API version header. A malformed
// version is a 400, an unsupported one a 406; both carry the supported list.
func versioningMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested := r.Header.Get("X-API-Version")
		if requested == "" {
			requested = r.Header.Get("API-Version")
		}

		version := defaultAPIVersion
		if requested != "" {
			if !versionPattern.MatchString(requested) {
				writeJSON(w, http.StatusBadRequest, map[string]any{
					"error":              "Invalid Version Format",
					"message":            "The API version '" + requested + "' is not a valid format. Expected format: major.minor.patch (e.g., 1.0.0) or major.minor (e.g., 1.0)",
					"ted_advice":         "Sometimes we gotta follow the rules, friend. But once you know 'em, you can really start to play!",
					"supported_versions": supportedAPIVersions,
				})
				return
			}
			match := resolveVersion(requested)
			if match == "" {
				writeJSON(w, http.StatusNotAcceptable, map[string]any{
					"error":              "Unsupported API Version",
					"message":            "The API version '" + requested + "' is not supported.",
					"ted_advice":         "We can't go backwards, only forwards. But don't worry, our supported versions are pretty great!",
					"supported_versions": supportedAPIVersions,
					"default_version":    defaultAPIVersion,
				})
				return
			}
			version = match
		}

		w.Header().Set("X-API-Version", version)
		w.Header().Set("X-API-Supported-Versions", strings.Join(supportedAPIVersions, ", "))
		next.ServeHTTP(w, r)
	})
}

// resolveVersion finds the supported version compatible with the request:
// the major version must match and the requested minor must not exceed the
// supported minor. Returns "" when nothing matches.
func resolveVersion(requested string) string {
	parts := strings.Split(requested, ".")
	if len(parts) == 2 {
		parts = append(parts, "0")
	}
	reqMajor, _ := strconv.Atoi(parts[0])
	reqMinor, _ := strconv.Atoi(parts[1])

	for _, supported := range supportedAPIVersions {
		sup := strings.Split(supported, ".")
		supMajor, _ := strconv.Atoi(sup[0])
		supMinor, _ := strconv.Atoi(sup[1])
		if reqMajor == supMajor && reqMinor <= supMinor {
			return supported
		}
	}
	return ""
}

// authMiddleware enforces the Bearer API-key check when a key is configured.
// With no key set the API stays open, which is the demo default.
func authMiddleware(apiKey string, next http.Handler) http.Handler {
	if apiKey == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token != apiKey {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeError(w, http.StatusUnauthorized, "Unauthorized",
				"Invalid API key. As Ted would say, 'Be curious, not judgmental' - but we do need the right key!")
			return
		}
		next.ServeHTTP(w, r)
	})
}
