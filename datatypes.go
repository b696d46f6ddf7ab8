package main

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// The /data-types group exists for SDK generators: every endpoint exercises
// a serialization shape (timestamps, decimals as strings, optional fields,
// binary blobs, discriminated unions) so generated clients can be checked
// against realistic payloads.

// Showcase priorities
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// ShowcaseRecord packs one of every common field shape into a single record.
type ShowcaseRecord struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description,omitempty"`
	Priority        string            `json:"priority"`
	Rating          float64           `json:"rating"`
	ViewCount       int               `json:"view_count"`
	IsVerified      bool              `json:"is_verified"`
	PriceGBP        string            `json:"price_gbp"`
	ContactEmail    string            `json:"contact_email,omitempty"`
	WebsiteURL      string            `json:"website_url,omitempty"`
	ReleaseDate     string            `json:"release_date,omitempty"`
	KickoffTime     string            `json:"kickoff_time,omitempty"`
	DurationSeconds float64           `json:"duration_seconds,omitempty"`
	Tags            []string          `json:"tags"`
	Attributes      map[string]string `json:"attributes"`
	Nickname        *string           `json:"nickname,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       *time.Time        `json:"updated_at,omitempty"`
}

// ShowcaseUpdate carries optional fields for partial showcase updates.
type ShowcaseUpdate struct {
	Name            *string           `json:"name,omitempty"`
	Description     *string           `json:"description,omitempty"`
	Priority        *string           `json:"priority,omitempty"`
	Rating          *float64          `json:"rating,omitempty"`
	ViewCount       *int              `json:"view_count,omitempty"`
	IsVerified      *bool             `json:"is_verified,omitempty"`
	PriceGBP        *string           `json:"price_gbp,omitempty"`
	ContactEmail    *string           `json:"contact_email,omitempty"`
	WebsiteURL      *string           `json:"website_url,omitempty"`
	ReleaseDate     *string           `json:"release_date,omitempty"`
	KickoffTime     *string           `json:"kickoff_time,omitempty"`
	DurationSeconds *float64          `json:"duration_seconds,omitempty"`
	Tags            []string          `json:"tags,omitempty"`
	Attributes      map[string]string `json:"attributes,omitempty"`
	Nickname        *string           `json:"nickname,omitempty"`
}

// FileMetadata describes one uploaded file.
type FileMetadata struct {
	FileID         string    `json:"file_id"`
	Filename       string    `json:"filename"`
	ContentType    string    `json:"content_type"`
	SizeBytes      int       `json:"size_bytes"`
	ChecksumSHA256 string    `json:"checksum_sha256"`
	UploadedAt     time.Time `json:"uploaded_at"`
}

// ContentItem is a discriminated union: Type selects which of the other
// fields are meaningful.
type ContentItem struct {
	Type    string `json:"type"`
	Text    string `json:"text,omitempty"`
	URL     string `json:"url,omitempty"`
	AltText string `json:"alt_text,omitempty"`
	Title   string `json:"title,omitempty"`
}

type ContentCollection struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Items      []ContentItem  `json:"items"`
	ItemCounts map[string]int `json:"item_counts"`
	CreatedAt  time.Time      `json:"created_at"`
}

type storedFile struct {
	meta FileMetadata
	data []byte
}

type storedBinary struct {
	data        []byte
	description string
}

// demoStore backs the /data-types group. Kept separate from the main Store
// so the showcase collections don't leak into the health counts.
type demoStore struct {
	mu        sync.RWMutex
	showcases map[string]*ShowcaseRecord
	files     map[string]*storedFile
	binaries  map[string]*storedBinary
}

func newDemoStore() *demoStore {
	return &demoStore{
		showcases: make(map[string]*ShowcaseRecord),
		files:     make(map[string]*storedFile),
		binaries:  make(map[string]*storedBinary),
	}
}

// sampleShowcase keeps the list endpoint useful on a fresh process.
func sampleShowcase() *ShowcaseRecord {
	nickname := "The Gaffer's Special"
	return &ShowcaseRecord{
		ID:              uuid.NewString(),
		Name:            "Nelson Road Matchday Pack",
		Description:     "One of everything, so your SDK can taste the whole menu.",
		Priority:        PriorityHigh,
		Rating:          4.8,
		ViewCount:       1337,
		IsVerified:      true,
		PriceGBP:        "19.99",
		ContactEmail:    "boxoffice@afcrichmond.co.uk",
		WebsiteURL:      "https://afcrichmond.co.uk/tickets",
		ReleaseDate:     "2020-08-14",
		KickoffTime:     "15:00:00",
		DurationSeconds: 5400,
		Tags:            []string{"matchday", "biscuits", "believe"},
		Attributes:      map[string]string{"stand": "Dogtrack End", "row": "K"},
		Nickname:        &nickname,
		CreatedAt:       time.Now().UTC(),
	}
}

func validPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

func (d *demoStore) listShowcases() []*ShowcaseRecord {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.showcases) == 0 {
		sample := sampleShowcase()
		d.showcases[sample.ID] = sample
	}
	out := make([]*ShowcaseRecord, 0, len(d.showcases))
	for _, rec := range d.showcases {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (d *demoStore) getShowcase(id string) (*ShowcaseRecord, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	rec, ok := d.showcases[id]
	return rec, ok
}

func (d *demoStore) createShowcase(rec *ShowcaseRecord) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.showcases[rec.ID] = rec
}

func (d *demoStore) updateShowcase(id string, upd *ShowcaseUpdate) (*ShowcaseRecord, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	rec, ok := d.showcases[id]
	if !ok {
		return nil, errNotFound
	}
	if upd.Name != nil {
		rec.Name = *upd.Name
	}
	if upd.Description != nil {
		rec.Description = *upd.Description
	}
	if upd.Priority != nil {
		rec.Priority = *upd.Priority
	}
	if upd.Rating != nil {
		rec.Rating = *upd.Rating
	}
	if upd.ViewCount != nil {
		rec.ViewCount = *upd.ViewCount
	}
	if upd.IsVerified != nil {
		rec.IsVerified = *upd.IsVerified
	}
	if upd.PriceGBP != nil {
		rec.PriceGBP = *upd.PriceGBP
	}
	if upd.ContactEmail != nil {
		rec.ContactEmail = *upd.ContactEmail
	}
	if upd.WebsiteURL != nil {
		rec.WebsiteURL = *upd.WebsiteURL
	}
	if upd.ReleaseDate != nil {
		rec.ReleaseDate = *upd.ReleaseDate
	}
	if upd.KickoffTime != nil {
		rec.KickoffTime = *upd.KickoffTime
	}
	if upd.DurationSeconds != nil {
		rec.DurationSeconds = *upd.DurationSeconds
	}
	if upd.Tags != nil {
		rec.Tags = upd.Tags
	}
	if upd.Attributes != nil {
		rec.Attributes = upd.Attributes
	}
	if upd.Nickname != nil {
		rec.Nickname = upd.Nickname
	}
	now := time.Now().UTC()
	rec.UpdatedAt = &now
	return rec, nil
}

func (d *demoStore) deleteShowcase(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.showcases[id]; !ok {
		return errNotFound
	}
	delete(d.showcases, id)
	return nil
}

// --- Showcase handlers ---

func (s *Server) listDataTypes(w http.ResponseWriter, r *http.Request) {
	skip, limit := pageParams(r)
	writeJSON(w, http.StatusOK, paginate(s.demo.listShowcases(), skip, limit))
}

func (s *Server) getDataType(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	rec, ok := s.demo.getShowcase(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Showcase Not Found",
			"Showcase '"+id+"' not found. It's a UUID, so double-check your copy-paste.")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) createDataType(w http.ResponseWriter, r *http.Request) {
	var rec ShowcaseRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Request Body", err.Error())
		return
	}
	if rec.Name == "" {
		writeError(w, http.StatusBadRequest, "Invalid Showcase", "A showcase record needs a name.")
		return
	}
	if rec.Priority == "" {
		rec.Priority = PriorityMedium
	}
	if !validPriority(rec.Priority) {
		writeError(w, http.StatusBadRequest, "Invalid Showcase",
			"priority must be low, medium, high, or critical.")
		return
	}
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()
	rec.UpdatedAt = nil
	s.demo.createShowcase(&rec)
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) updateDataType(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var upd ShowcaseUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Request Body", err.Error())
		return
	}
	if upd.Priority != nil && !validPriority(*upd.Priority) {
		writeError(w, http.StatusBadRequest, "Invalid Showcase",
			"priority must be low, medium, high, or critical.")
		return
	}
	rec, err := s.demo.updateShowcase(id, &upd)
	if err != nil {
		writeError(w, http.StatusNotFound, "Showcase Not Found",
			"Showcase '"+id+"' not found. It's a UUID, so double-check your copy-paste.")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) deleteDataType(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.demo.deleteShowcase(id); err != nil {
		writeError(w, http.StatusNotFound, "Showcase Not Found",
			"Showcase '"+id+"' not found. It's a UUID, so double-check your copy-paste.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- File upload/download ---

const maxUploadBytes = 10 << 20

func (s *Server) uploadFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Upload", err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Upload",
			"Send the file in a multipart field named 'file'.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Upload", err.Error())
		return
	}
	sum := sha256.Sum256(data)
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	meta := FileMetadata{
		FileID:         "file_" + uuid.NewString()[:8],
		Filename:       header.Filename,
		ContentType:    contentType,
		SizeBytes:      len(data),
		ChecksumSHA256: hex.EncodeToString(sum[:]),
		UploadedAt:     time.Now().UTC(),
	}

	s.demo.mu.Lock()
	s.demo.files[meta.FileID] = &storedFile{meta: meta, data: data}
	s.demo.mu.Unlock()

	writeJSON(w, http.StatusCreated, meta)
}

func (s *Server) downloadFile(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.demo.mu.RLock()
	f, ok := s.demo.files[id]
	s.demo.mu.RUnlock()
	if !ok {
		writeError(w, http.StatusNotFound, "File Not Found",
			"File '"+id+"' not found. It may have been eaten by the office dog.")
		return
	}
	w.Header().Set("Content-Type", f.meta.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+f.meta.Filename+`"`)
	w.Header().Set("X-Checksum-SHA256", f.meta.ChecksumSHA256)
	w.WriteHeader(http.StatusOK)
	w.Write(f.data)
}

func (s *Server) getFileMetadata(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.demo.mu.RLock()
	f, ok := s.demo.files[id]
	s.demo.mu.RUnlock()
	if !ok {
		writeError(w, http.StatusNotFound, "File Not Found",
			"File '"+id+"' not found. It may have been eaten by the office dog.")
		return
	}
	writeJSON(w, http.StatusOK, f.meta)
}

func (s *Server) deleteFile(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.demo.mu.Lock()
	_, ok := s.demo.files[id]
	delete(s.demo.files, id)
	s.demo.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "File Not Found",
			"File '"+id+"' not found. It may have been eaten by the office dog.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Base64 binary round-trip ---

type BinaryDataRequest struct {
	Data        string `json:"data"`
	Description string `json:"description,omitempty"`
}

type BinaryDataResponse struct {
	BinaryID       string `json:"binary_id"`
	SizeBytes      int    `json:"size_bytes"`
	ChecksumSHA256 string `json:"checksum_sha256"`
	Description    string `json:"description,omitempty"`
}

func (s *Server) storeBinary(w http.ResponseWriter, r *http.Request) {
	var req BinaryDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Request Body", err.Error())
		return
	}
	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Binary Payload", "Invalid base64 data.")
		return
	}
	sum := sha256.Sum256(data)
	id := "bin_" + uuid.NewString()[:8]

	s.demo.mu.Lock()
	s.demo.binaries[id] = &storedBinary{data: data, description: req.Description}
	s.demo.mu.Unlock()

	writeJSON(w, http.StatusCreated, BinaryDataResponse{
		BinaryID:       id,
		SizeBytes:      len(data),
		ChecksumSHA256: hex.EncodeToString(sum[:]),
		Description:    req.Description,
	})
}

func (s *Server) getBinary(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.demo.mu.RLock()
	b, ok := s.demo.binaries[id]
	s.demo.mu.RUnlock()
	if !ok {
		writeError(w, http.StatusNotFound, "Binary Not Found",
			"Binary '"+id+"' not found. Ones and zeroes don't grow on trees.")
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	w.Write(b.data)
}

// --- Content collections (union items) ---

func (s *Server) createContentCollection(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		title = "Untitled Collection"
	}
	var items []ContentItem
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Request Body", err.Error())
		return
	}
	counts := map[string]int{}
	for _, item := range items {
		switch item.Type {
		case "text", "image", "link":
			counts[item.Type]++
		default:
			writeError(w, http.StatusBadRequest, "Invalid Content Item",
				"Item type must be text, image, or link. '"+item.Type+"' isn't on the team sheet.")
			return
		}
	}
	writeJSON(w, http.StatusCreated, ContentCollection{
		ID:         uuid.NewString(),
		Title:      title,
		Items:      items,
		ItemCounts: counts,
		CreatedAt:  time.Now().UTC(),
	})
}

// --- Type demos ---

// The /types endpoints return fixed-shape payloads so client generators can
// eyeball how each serialization family comes over the wire.

func (s *Server) demoDates(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	writeJSON(w, http.StatusOK, map[string]any{
		"now_rfc3339":      now.Format(time.RFC3339),
		"now_rfc3339_nano": now.Format(time.RFC3339Nano),
		"date_only":        now.Format("2006-01-02"),
		"time_only":        now.Format("15:04:05"),
		"unix_seconds":     now.Unix(),
		"unix_millis":      now.UnixMilli(),
		"match_duration":   (90 * time.Minute).String(),
		"premiere":         "2020-08-14T00:00:00Z",
	})
}

func (s *Server) demoNumbers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"int_small":      42,
		"int_max_64":     int64(math.MaxInt64),
		"int_min_64":     int64(math.MinInt64),
		"float_simple":   3.14,
		"float_tiny":     math.SmallestNonzeroFloat64,
		"float_huge":     math.MaxFloat64,
		"decimal_string": "19.99",
		"big_as_string":  "340282366920938463463374607431768211456",
		"percentage":     67.5,
		"negative":       -273.15,
		"zero":           0,
		"jersey_number":  24,
	})
}

func (s *Server) demoStrings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"plain":      "Football is life!",
		"empty":      "",
		"unicode":    "Fútbol es vida / サッカーは人生だ",
		"emoji":      "⚽🫖🍪",
		"multiline":  "Be curious,\nnot judgmental.",
		"quoted":     `He said "BELIEVE" and meant it.`,
		"url":        "https://afcrichmond.co.uk",
		"email":      "ted.lasso@afcrichmond.co.uk",
		"uuid":       uuid.NewString(),
		"slug":       "afc-richmond",
		"whitespace": "  padded  ",
	})
}

func (s *Server) demoCollections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"string_list": []string{"Ted", "Beard", "Roy", "Keeley"},
		"int_list":    []int{1, 2, 3, 5, 8, 13},
		"empty_list":  []string{},
		"nested_list": [][]int{{1, 0}, {2, 2}, {4, 1}},
		"string_map":  map[string]string{"gaffer": "Ted Lasso", "captain": "Isaac McAdoo"},
		"mixed_map":   map[string]any{"season": 3, "champion": false, "motto": "Believe"},
		"pair":        []any{"AFC Richmond", 1897},
	})
}

func (s *Server) demoSpecial(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"null_value":    nil,
		"true_value":    true,
		"false_value":   false,
		"base64_bytes":  base64.StdEncoding.EncodeToString([]byte("biscuits")),
		"priority_enum": []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical},
		"optional_set":  "present",
		"bool_string":   "true",
	})
}
