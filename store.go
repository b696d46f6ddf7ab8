package main

import (
	crand "crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	errNotFound        = errors.New("not found")
	errAlreadyExists   = errors.New("already exists")
	errWrongMemberType = errors.New("detail block does not match member type")
)

// Store holds every in-memory collection the API serves. It is populated
// once from seed data at process start, mutated only through its methods,
// and passed explicitly to the handlers that need it.
type Store struct {
	mu          sync.RWMutex
	characters  map[string]*Character
	teams       map[string]*Team
	matches     map[string]*Match
	episodes    map[string]*Episode
	quotes      map[string]*Quote
	teamMembers map[string]*TeamMember
	webhooks    map[string]*WebhookEndpoint

	// Sequential ID counters for the collections that use match-NNN /
	// quote-NNN identifiers. Seeded past the highest seed record.
	matchSeq int
	quoteSeq int
}

// NewStore builds a store pre-populated with the seed collections.
func NewStore() *Store {
	s := &Store{
		characters:  make(map[string]*Character),
		teams:       make(map[string]*Team),
		matches:     make(map[string]*Match),
		episodes:    make(map[string]*Episode),
		quotes:      make(map[string]*Quote),
		teamMembers: make(map[string]*TeamMember),
		webhooks:    make(map[string]*WebhookEndpoint),
	}
	for i := range seedCharacters {
		c := seedCharacters[i]
		s.characters[c.ID] = &c
	}
	for i := range seedTeams {
		t := seedTeams[i]
		s.teams[t.ID] = &t
	}
	for i := range seedMatches {
		m := seedMatches[i]
		s.matches[m.ID] = &m
	}
	for i := range seedEpisodes {
		e := seedEpisodes[i]
		s.episodes[e.ID] = &e
	}
	for i := range seedQuotes {
		q := seedQuotes[i]
		s.quotes[q.ID] = &q
	}
	for i := range seedTeamMembers {
		m := seedTeamMembers[i]
		s.teamMembers[m.ID] = &m
	}
	s.matchSeq = len(s.matches) + 1
	s.quoteSeq = len(s.quotes) + 1
	return s
}

// --- Characters ---

func (s *Store) ListCharacters(role, teamID string) []*Character {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Character, 0, len(s.characters))
	for _, c := range s.characters {
		if role != "" && c.Role != role {
			continue
		}
		if teamID != "" && c.TeamID != teamID {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) GetCharacter(id string) (*Character, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.characters[id]
	return c, ok
}

func (s *Store) CreateCharacter(c *Character) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.characters[c.ID]; exists {
		return errAlreadyExists
	}
	s.characters[c.ID] = c
	return nil
}

func (s *Store) UpdateCharacter(id string, upd *CharacterUpdate) (*Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.characters[id]
	if !ok {
		return nil, errNotFound
	}
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Role != nil {
		c.Role = *upd.Role
	}
	if upd.TeamID != nil {
		c.TeamID = *upd.TeamID
	}
	if upd.DateOfBirth != nil {
		c.DateOfBirth = *upd.DateOfBirth
	}
	if upd.Email != nil {
		c.Email = *upd.Email
	}
	if upd.ProfileImageURL != nil {
		c.ProfileImageURL = *upd.ProfileImageURL
	}
	if upd.SalaryGBP != nil {
		c.SalaryGBP = *upd.SalaryGBP
	}
	if upd.HeightMeters != nil {
		c.HeightMeters = *upd.HeightMeters
	}
	if upd.Background != nil {
		c.Background = *upd.Background
	}
	if upd.PersonalityTraits != nil {
		c.PersonalityTraits = upd.PersonalityTraits
	}
	if upd.EmotionalStats != nil {
		c.EmotionalStats = *upd.EmotionalStats
	}
	if upd.SignatureQuotes != nil {
		c.SignatureQuotes = upd.SignatureQuotes
	}
	if upd.GrowthArcs != nil {
		c.GrowthArcs = upd.GrowthArcs
	}
	return c, nil
}

func (s *Store) DeleteCharacter(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.characters[id]; !ok {
		return errNotFound
	}
	delete(s.characters, id)
	return nil
}

// --- Teams ---

func (s *Store) ListTeams(league string) []*Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Team, 0, len(s.teams))
	for _, t := range s.teams {
		if league != "" && t.League != league {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) GetTeam(id string) (*Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teams[id]
	return t, ok
}

// CreateTeam stores a new team under an ID slugged from its name.
func (s *Store) CreateTeam(t *Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == "" {
		t.ID = slugify(t.Name)
	}
	if _, exists := s.teams[t.ID]; exists {
		return errAlreadyExists
	}
	s.teams[t.ID] = t
	return nil
}

func (s *Store) UpdateTeam(id string, upd *TeamUpdate) (*Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.teams[id]
	if !ok {
		return nil, errNotFound
	}
	if upd.Name != nil {
		t.Name = *upd.Name
	}
	if upd.Nickname != nil {
		t.Nickname = *upd.Nickname
	}
	if upd.League != nil {
		t.League = *upd.League
	}
	if upd.Stadium != nil {
		t.Stadium = *upd.Stadium
	}
	if upd.StadiumLocation != nil {
		t.StadiumLocation = upd.StadiumLocation
	}
	if upd.FoundedYear != nil {
		t.FoundedYear = *upd.FoundedYear
	}
	if upd.Website != nil {
		t.Website = *upd.Website
	}
	if upd.ContactEmail != nil {
		t.ContactEmail = *upd.ContactEmail
	}
	if upd.AnnualBudgetGBP != nil {
		t.AnnualBudgetGBP = *upd.AnnualBudgetGBP
	}
	if upd.AverageAttendance != nil {
		t.AverageAttendance = *upd.AverageAttendance
	}
	if upd.WinPercentage != nil {
		t.WinPercentage = *upd.WinPercentage
	}
	if upd.CultureScore != nil {
		t.CultureScore = *upd.CultureScore
	}
	if upd.IsActive != nil {
		t.IsActive = *upd.IsActive
	}
	if upd.Values != nil {
		t.Values = *upd.Values
	}
	if upd.RivalTeams != nil {
		t.RivalTeams = upd.RivalTeams
	}
	if upd.PrimaryColor != nil {
		t.PrimaryColor = *upd.PrimaryColor
	}
	if upd.SecondaryColor != nil {
		t.SecondaryColor = *upd.SecondaryColor
	}
	return t, nil
}

func (s *Store) DeleteTeam(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.teams[id]; !ok {
		return errNotFound
	}
	delete(s.teams, id)
	return nil
}

// TeamRoster returns every character attached to the given team.
func (s *Store) TeamRoster(teamID string) []*Character {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Character, 0)
	for _, c := range s.characters {
		if c.TeamID == teamID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// --- Matches ---

func (s *Store) ListMatches(matchType, teamID string) []*Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Match, 0, len(s.matches))
	for _, m := range s.matches {
		if matchType != "" && m.MatchType != matchType {
			continue
		}
		if teamID != "" && m.HomeTeamID != teamID && m.AwayTeamID != teamID {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) GetMatch(id string) (*Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.matches[id]
	return m, ok
}

// CreateMatch stores a new match under the next sequential match-NNN ID.
func (s *Store) CreateMatch(m *Match) *Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = fmt.Sprintf("match-%03d", s.matchSeq)
	s.matchSeq++
	s.matches[m.ID] = m
	return m
}

func (s *Store) UpdateMatch(id string, upd *MatchUpdate) (*Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.matches[id]
	if !ok {
		return nil, errNotFound
	}
	if upd.HomeTeamID != nil {
		m.HomeTeamID = *upd.HomeTeamID
	}
	if upd.AwayTeamID != nil {
		m.AwayTeamID = *upd.AwayTeamID
	}
	if upd.MatchType != nil {
		m.MatchType = *upd.MatchType
	}
	if upd.Date != nil {
		m.Date = *upd.Date
	}
	if upd.HomeScore != nil {
		m.HomeScore = *upd.HomeScore
	}
	if upd.AwayScore != nil {
		m.AwayScore = *upd.AwayScore
	}
	if upd.Result != nil {
		m.Result = *upd.Result
	}
	if upd.EpisodeID != nil {
		m.EpisodeID = *upd.EpisodeID
	}
	if upd.TurningPoints != nil {
		m.TurningPoints = upd.TurningPoints
	}
	if upd.LessonLearned != nil {
		m.LessonLearned = *upd.LessonLearned
	}
	if upd.TedHalftimeSpeech != nil {
		m.TedHalftimeSpeech = *upd.TedHalftimeSpeech
	}
	if upd.Attendance != nil {
		m.Attendance = *upd.Attendance
	}
	if upd.TicketRevenueGBP != nil {
		m.TicketRevenueGBP = *upd.TicketRevenueGBP
	}
	if upd.PossessionPercentage != nil {
		m.PossessionPercentage = *upd.PossessionPercentage
	}
	if upd.WeatherTempCelsius != nil {
		m.WeatherTempCelsius = *upd.WeatherTempCelsius
	}
	return m, nil
}

func (s *Store) DeleteMatch(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[id]; !ok {
		return errNotFound
	}
	delete(s.matches, id)
	return nil
}

// --- Episodes ---

func (s *Store) ListEpisodes(season int) []*Episode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Episode, 0, len(s.episodes))
	for _, e := range s.episodes {
		if season > 0 && e.Season != season {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) GetEpisode(id string) (*Episode, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.episodes[id]
	return e, ok
}

// CreateEpisode stores a new episode under the sNNeNN ID derived from its
// season and episode number. That pair is the identity, so re-creating an
// aired episode conflicts.
func (s *Store) CreateEpisode(e *Episode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = fmt.Sprintf("s%02de%02d", e.Season, e.EpisodeNumber)
	if _, exists := s.episodes[e.ID]; exists {
		return errAlreadyExists
	}
	s.episodes[e.ID] = e
	return nil
}

func (s *Store) UpdateEpisode(id string, upd *EpisodeUpdate) (*Episode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.episodes[id]
	if !ok {
		return nil, errNotFound
	}
	if upd.Title != nil {
		e.Title = *upd.Title
	}
	if upd.Director != nil {
		e.Director = *upd.Director
	}
	if upd.Writer != nil {
		e.Writer = *upd.Writer
	}
	if upd.AirDate != nil {
		e.AirDate = *upd.AirDate
	}
	if upd.RuntimeMinutes != nil {
		e.RuntimeMinutes = *upd.RuntimeMinutes
	}
	if upd.ViewerRating != nil {
		e.ViewerRating = *upd.ViewerRating
	}
	if upd.USViewersMillions != nil {
		e.USViewersMillions = *upd.USViewersMillions
	}
	if upd.Synopsis != nil {
		e.Synopsis = *upd.Synopsis
	}
	if upd.MainTheme != nil {
		e.MainTheme = *upd.MainTheme
	}
	if upd.TedWisdom != nil {
		e.TedWisdom = *upd.TedWisdom
	}
	if upd.BiscuitsWithBossMoment != nil {
		e.BiscuitsWithBossMoment = *upd.BiscuitsWithBossMoment
	}
	if upd.CharacterFocus != nil {
		e.CharacterFocus = upd.CharacterFocus
	}
	if upd.MemorableMoments != nil {
		e.MemorableMoments = upd.MemorableMoments
	}
	return e, nil
}

func (s *Store) DeleteEpisode(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.episodes[id]; !ok {
		return errNotFound
	}
	delete(s.episodes, id)
	return nil
}

// --- Quotes ---

func (s *Store) ListQuotes(characterID, theme string) []*Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Quote, 0, len(s.quotes))
	for _, q := range s.quotes {
		if characterID != "" && q.CharacterID != characterID {
			continue
		}
		if theme != "" && q.Theme != theme {
			continue
		}
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) GetQuote(id string) (*Quote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quotes[id]
	return q, ok
}

// CreateQuote stores a new quote under the next sequential quote-NNN ID.
func (s *Store) CreateQuote(q *Quote) *Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	q.ID = fmt.Sprintf("quote-%03d", s.quoteSeq)
	s.quoteSeq++
	s.quotes[q.ID] = q
	return q
}

func (s *Store) UpdateQuote(id string, upd *QuoteUpdate) (*Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.quotes[id]
	if !ok {
		return nil, errNotFound
	}
	if upd.Text != nil {
		q.Text = *upd.Text
	}
	if upd.CharacterID != nil {
		q.CharacterID = *upd.CharacterID
	}
	if upd.EpisodeID != nil {
		q.EpisodeID = *upd.EpisodeID
	}
	if upd.Context != nil {
		q.Context = *upd.Context
	}
	if upd.Theme != nil {
		q.Theme = *upd.Theme
	}
	if upd.SecondaryThemes != nil {
		q.SecondaryThemes = upd.SecondaryThemes
	}
	if upd.MomentType != nil {
		q.MomentType = *upd.MomentType
	}
	if upd.IsInspirational != nil {
		q.IsInspirational = *upd.IsInspirational
	}
	if upd.IsFunny != nil {
		q.IsFunny = *upd.IsFunny
	}
	if upd.PopularityScore != nil {
		q.PopularityScore = *upd.PopularityScore
	}
	if upd.TimesShared != nil {
		q.TimesShared = *upd.TimesShared
	}
	return q, nil
}

func (s *Store) DeleteQuote(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.quotes[id]; !ok {
		return errNotFound
	}
	delete(s.quotes, id)
	return nil
}

// --- Team members ---

func (s *Store) ListTeamMembers(memberType string) []*TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*TeamMember, 0, len(s.teamMembers))
	for _, m := range s.teamMembers {
		if memberType != "" && m.MemberType != memberType {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) GetTeamMember(id string) (*TeamMember, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.teamMembers[id]
	return m, ok
}

// CreateTeamMember stores a new member under an ID slugged from its name.
func (s *Store) CreateTeamMember(m *TeamMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == "" {
		m.ID = slugify(m.Name)
	}
	if _, exists := s.teamMembers[m.ID]; exists {
		return errAlreadyExists
	}
	s.teamMembers[m.ID] = m
	return nil
}

// UpdateTeamMember applies a partial update. A detail block for a different
// member type than the record's own is rejected, keeping the union shape
// intact.
func (s *Store) UpdateTeamMember(id string, upd *TeamMemberUpdate) (*TeamMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.teamMembers[id]
	if !ok {
		return nil, errNotFound
	}
	if (upd.Player != nil && m.MemberType != "player") ||
		(upd.Coach != nil && m.MemberType != "coach") ||
		(upd.Staff != nil && m.MemberType != "staff") {
		return nil, errWrongMemberType
	}
	if upd.Name != nil {
		m.Name = *upd.Name
	}
	if upd.JoinedDate != nil {
		m.JoinedDate = *upd.JoinedDate
	}
	if upd.Player != nil {
		m.Player = upd.Player
	}
	if upd.Coach != nil {
		m.Coach = upd.Coach
	}
	if upd.Staff != nil {
		m.Staff = upd.Staff
	}
	return m, nil
}

func (s *Store) DeleteTeamMember(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.teamMembers[id]; !ok {
		return errNotFound
	}
	delete(s.teamMembers, id)
	return nil
}

// --- Webhooks ---

// RegisterWebhook stores a new endpoint with generated wh_/whsec_ credentials.
// The secret is base64 so it can be decoded for HMAC signing per the
// Standard Webhooks convention.
func (s *Store) RegisterWebhook(reg *WebhookRegistration) *WebhookEndpoint {
	secretBytes := make([]byte, 24)
	if _, err := crand.Read(secretBytes); err != nil {
		// Never mint a signing secret from a partial or zeroed buffer.
		panic(fmt.Sprintf("webhook secret generation failed: %v", err))
	}
	wh := &WebhookEndpoint{
		ID:          "wh_" + uuid.NewString()[:8],
		URL:         reg.URL,
		Description: reg.Description,
		Events:      reg.Events,
		Secret:      "whsec_" + base64.StdEncoding.EncodeToString(secretBytes),
		Active:      true,
		CreatedAt:   time.Now().UTC(),
	}
	s.mu.Lock()
	s.webhooks[wh.ID] = wh
	s.mu.Unlock()
	return wh
}

func (s *Store) ListWebhooks() []*WebhookEndpoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*WebhookEndpoint, 0, len(s.webhooks))
	for _, wh := range s.webhooks {
		out = append(out, wh)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) GetWebhook(id string) (*WebhookEndpoint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wh, ok := s.webhooks[id]
	return wh, ok
}

func (s *Store) DeleteWebhook(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.webhooks[id]; !ok {
		return errNotFound
	}
	delete(s.webhooks, id)
	return nil
}

// Counts reports collection sizes for the health endpoint and landing page.
func (s *Store) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]int{
		"characters":   len(s.characters),
		"teams":        len(s.teams),
		"matches":      len(s.matches),
		"episodes":     len(s.episodes),
		"quotes":       len(s.quotes),
		"team_members": len(s.teamMembers),
		"webhooks":     len(s.webhooks),
	}
}

// paginate slices a sorted collection into the shared list envelope.
// Limit is capped at 100; a zero limit means the default page size of 20.
func paginate[T any](items []T, skip, limit int) Page {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	total := len(items)
	end := skip + limit
	if skip > total {
		skip = total
	}
	if end > total {
		end = total
	}
	pages := (total + limit - 1) / limit
	if pages == 0 {
		pages = 1
	}
	return Page{
		Items:   items[skip:end],
		Total:   total,
		Page:    skip/limit + 1,
		Pages:   pages,
		HasMore: end < total,
	}
}

// slugify derives a URL-safe ID from a display name, e.g. "Ted Lasso" ->
// "ted-lasso".
func slugify(name string) string {
	out := make([]rune, 0, len(name))
	lastDash := true
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
			lastDash = false
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			out = append(out, r)
			lastDash = false
		default:
			if !lastDash {
				out = append(out, '-')
				lastDash = true
			}
		}
	}
	for len(out) > 0 && out[len(out)-1] == '-' {
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return fmt.Sprintf("item-%s", uuid.NewString()[:8])
	}
	return string(out)
}
