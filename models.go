package main

import "time"

// Character roles
const (
	RoleCoach      = "coach"
	RolePlayer     = "player"
	RoleOwner      = "owner"
	RoleManager    = "manager"
	RoleStaff      = "staff"
	RoleJournalist = "journalist"
	RoleFamily     = "family"
	RoleFriend     = "friend"
	RoleFan        = "fan"
	RoleOther      = "other"
)

// Match result, from the home team's perspective
const (
	ResultWin     = "win"
	ResultLoss    = "loss"
	ResultDraw    = "draw"
	ResultPending = "pending"
)

// Match types
const (
	MatchLeague   = "league"
	MatchCup      = "cup"
	MatchFriendly = "friendly"
	MatchPlayoff  = "playoff"
	MatchFinal    = "final"
)

// Biscuit types
const (
	BiscuitClassicShortbread = "classic_shortbread"
	BiscuitChocolateChip     = "chocolate_chip"
	BiscuitSpecialOccasion   = "special_occasion"
	BiscuitApologyBatch      = "apology_batch"
	BiscuitVictoryBatch      = "victory_batch"
)

// EmotionalStats scores a character's emotional intelligence on 0-100 scales.
type EmotionalStats struct {
	Optimism      int `json:"optimism"`
	Vulnerability int `json:"vulnerability"`
	Empathy       int `json:"empathy"`
	Resilience    int `json:"resilience"`
	Curiosity     int `json:"curiosity"`
}

// GrowthArc describes a character's development across one season.
type GrowthArc struct {
	Season        int    `json:"season"`
	StartingPoint string `json:"starting_point"`
	Challenge     string `json:"challenge"`
	Breakthrough  string `json:"breakthrough"`
	EndingPoint   string `json:"ending_point"`
}

type Character struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Role              string         `json:"role"`
	TeamID            string         `json:"team_id,omitempty"`
	DateOfBirth       string         `json:"date_of_birth,omitempty"`
	Email             string         `json:"email,omitempty"`
	ProfileImageURL   string         `json:"profile_image_url,omitempty"`
	SalaryGBP         string         `json:"salary_gbp,omitempty"`
	HeightMeters      float64        `json:"height_meters,omitempty"`
	Background        string         `json:"background"`
	PersonalityTraits []string       `json:"personality_traits"`
	EmotionalStats    EmotionalStats `json:"emotional_stats"`
	SignatureQuotes   []string       `json:"signature_quotes"`
	GrowthArcs        []GrowthArc    `json:"growth_arcs"`
}

// CharacterUpdate carries optional fields for partial updates. Nil pointers
// mean "leave unchanged".
type CharacterUpdate struct {
	Name              *string         `json:"name,omitempty"`
	Role              *string         `json:"role,omitempty"`
	TeamID            *string         `json:"team_id,omitempty"`
	DateOfBirth       *string         `json:"date_of_birth,omitempty"`
	Email             *string         `json:"email,omitempty"`
	ProfileImageURL   *string         `json:"profile_image_url,omitempty"`
	SalaryGBP         *string         `json:"salary_gbp,omitempty"`
	HeightMeters      *float64        `json:"height_meters,omitempty"`
	Background        *string         `json:"background,omitempty"`
	PersonalityTraits []string        `json:"personality_traits,omitempty"`
	EmotionalStats    *EmotionalStats `json:"emotional_stats,omitempty"`
	SignatureQuotes   []string        `json:"signature_quotes,omitempty"`
	GrowthArcs        []GrowthArc     `json:"growth_arcs,omitempty"`
}

type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// TeamValues captures the culture a club is built around.
type TeamValues struct {
	PrimaryValue    string   `json:"primary_value"`
	SecondaryValues []string `json:"secondary_values"`
	TeamMotto       string   `json:"team_motto"`
}

type Team struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Nickname          string       `json:"nickname,omitempty"`
	League            string       `json:"league"`
	Stadium           string       `json:"stadium"`
	StadiumLocation   *GeoLocation `json:"stadium_location,omitempty"`
	FoundedYear       int          `json:"founded_year"`
	Website           string       `json:"website,omitempty"`
	ContactEmail      string       `json:"contact_email,omitempty"`
	AnnualBudgetGBP   string       `json:"annual_budget_gbp,omitempty"`
	AverageAttendance float64      `json:"average_attendance,omitempty"`
	WinPercentage     float64      `json:"win_percentage,omitempty"`
	CultureScore      int          `json:"culture_score"`
	IsActive          bool         `json:"is_active"`
	Values            TeamValues   `json:"values"`
	RivalTeams        []string     `json:"rival_teams"`
	PrimaryColor      string       `json:"primary_color,omitempty"`
	SecondaryColor    string       `json:"secondary_color,omitempty"`
}

// TeamUpdate carries optional fields for partial team updates.
type TeamUpdate struct {
	Name              *string      `json:"name,omitempty"`
	Nickname          *string      `json:"nickname,omitempty"`
	League            *string      `json:"league,omitempty"`
	Stadium           *string      `json:"stadium,omitempty"`
	StadiumLocation   *GeoLocation `json:"stadium_location,omitempty"`
	FoundedYear       *int         `json:"founded_year,omitempty"`
	Website           *string      `json:"website,omitempty"`
	ContactEmail      *string      `json:"contact_email,omitempty"`
	AnnualBudgetGBP   *string      `json:"annual_budget_gbp,omitempty"`
	AverageAttendance *float64     `json:"average_attendance,omitempty"`
	WinPercentage     *float64     `json:"win_percentage,omitempty"`
	CultureScore      *int         `json:"culture_score,omitempty"`
	IsActive          *bool        `json:"is_active,omitempty"`
	Values            *TeamValues  `json:"values,omitempty"`
	RivalTeams        []string     `json:"rival_teams,omitempty"`
	PrimaryColor      *string      `json:"primary_color,omitempty"`
	SecondaryColor    *string      `json:"secondary_color,omitempty"`
}

// TurningPoint marks a pivotal in-match moment.
type TurningPoint struct {
	Minute            int    `json:"minute"`
	Description       string `json:"description"`
	EmotionalImpact   string `json:"emotional_impact"`
	CharacterInvolved string `json:"character_involved,omitempty"`
}

type Match struct {
	ID                   string         `json:"id"`
	HomeTeamID           string         `json:"home_team_id"`
	AwayTeamID           string         `json:"away_team_id"`
	MatchType            string         `json:"match_type"`
	Date                 time.Time      `json:"date"`
	HomeScore            int            `json:"home_score"`
	AwayScore            int            `json:"away_score"`
	Result               string         `json:"result"`
	EpisodeID            string         `json:"episode_id,omitempty"`
	TurningPoints        []TurningPoint `json:"turning_points"`
	LessonLearned        string         `json:"lesson_learned,omitempty"`
	TedHalftimeSpeech    string         `json:"ted_halftime_speech,omitempty"`
	Attendance           int            `json:"attendance,omitempty"`
	TicketRevenueGBP     string         `json:"ticket_revenue_gbp,omitempty"`
	PossessionPercentage float64        `json:"possession_percentage,omitempty"`
	WeatherTempCelsius   float64        `json:"weather_temp_celsius,omitempty"`
}

// MatchUpdate carries optional fields for partial match updates. Updating
// both scores without a result leaves the recorded result untouched, so
// callers settling a fixture should send all three.
type MatchUpdate struct {
	HomeTeamID           *string        `json:"home_team_id,omitempty"`
	AwayTeamID           *string        `json:"away_team_id,omitempty"`
	MatchType            *string        `json:"match_type,omitempty"`
	Date                 *time.Time     `json:"date,omitempty"`
	HomeScore            *int           `json:"home_score,omitempty"`
	AwayScore            *int           `json:"away_score,omitempty"`
	Result               *string        `json:"result,omitempty"`
	EpisodeID            *string        `json:"episode_id,omitempty"`
	TurningPoints        []TurningPoint `json:"turning_points,omitempty"`
	LessonLearned        *string        `json:"lesson_learned,omitempty"`
	TedHalftimeSpeech    *string        `json:"ted_halftime_speech,omitempty"`
	Attendance           *int           `json:"attendance,omitempty"`
	TicketRevenueGBP     *string        `json:"ticket_revenue_gbp,omitempty"`
	PossessionPercentage *float64       `json:"possession_percentage,omitempty"`
	WeatherTempCelsius   *float64       `json:"weather_temp_celsius,omitempty"`
}

type Episode struct {
	ID                     string   `json:"id"`
	Season                 int      `json:"season"`
	EpisodeNumber          int      `json:"episode_number"`
	Title                  string   `json:"title"`
	Director               string   `json:"director"`
	Writer                 string   `json:"writer"`
	AirDate                string   `json:"air_date"`
	RuntimeMinutes         int      `json:"runtime_minutes"`
	ViewerRating           float64  `json:"viewer_rating,omitempty"`
	USViewersMillions      float64  `json:"us_viewers_millions,omitempty"`
	Synopsis               string   `json:"synopsis"`
	MainTheme              string   `json:"main_theme"`
	TedWisdom              string   `json:"ted_wisdom"`
	BiscuitsWithBossMoment string   `json:"biscuits_with_boss_moment,omitempty"`
	CharacterFocus         []string `json:"character_focus"`
	MemorableMoments       []string `json:"memorable_moments"`
}

// EpisodeUpdate carries optional fields for partial episode updates.
// Season and episode number are fixed once aired; they define the ID.
type EpisodeUpdate struct {
	Title                  *string  `json:"title,omitempty"`
	Director               *string  `json:"director,omitempty"`
	Writer                 *string  `json:"writer,omitempty"`
	AirDate                *string  `json:"air_date,omitempty"`
	RuntimeMinutes         *int     `json:"runtime_minutes,omitempty"`
	ViewerRating           *float64 `json:"viewer_rating,omitempty"`
	USViewersMillions      *float64 `json:"us_viewers_millions,omitempty"`
	Synopsis               *string  `json:"synopsis,omitempty"`
	MainTheme              *string  `json:"main_theme,omitempty"`
	TedWisdom              *string  `json:"ted_wisdom,omitempty"`
	BiscuitsWithBossMoment *string  `json:"biscuits_with_boss_moment,omitempty"`
	CharacterFocus         []string `json:"character_focus,omitempty"`
	MemorableMoments       []string `json:"memorable_moments,omitempty"`
}

type Quote struct {
	ID              string   `json:"id"`
	Text            string   `json:"text"`
	CharacterID     string   `json:"character_id"`
	EpisodeID       string   `json:"episode_id,omitempty"`
	Context         string   `json:"context"`
	Theme           string   `json:"theme"`
	SecondaryThemes []string `json:"secondary_themes"`
	MomentType      string   `json:"moment_type"`
	IsInspirational bool     `json:"is_inspirational"`
	IsFunny         bool     `json:"is_funny"`
	PopularityScore float64  `json:"popularity_score,omitempty"`
	TimesShared     int      `json:"times_shared,omitempty"`
}

// QuoteUpdate carries optional fields for partial quote updates.
type QuoteUpdate struct {
	Text            *string  `json:"text,omitempty"`
	CharacterID     *string  `json:"character_id,omitempty"`
	EpisodeID       *string  `json:"episode_id,omitempty"`
	Context         *string  `json:"context,omitempty"`
	Theme           *string  `json:"theme,omitempty"`
	SecondaryThemes []string `json:"secondary_themes,omitempty"`
	MomentType      *string  `json:"moment_type,omitempty"`
	IsInspirational *bool    `json:"is_inspirational,omitempty"`
	IsFunny         *bool    `json:"is_funny,omitempty"`
	PopularityScore *float64 `json:"popularity_score,omitempty"`
	TimesShared     *int     `json:"times_shared,omitempty"`
}

// TeamMember is a union-shaped record: exactly one of the role-specific
// detail blocks is populated, selected by MemberType.
type TeamMember struct {
	ID         string        `json:"id"`
	MemberType string        `json:"member_type"`
	Name       string        `json:"name"`
	JoinedDate string        `json:"joined_date,omitempty"`
	Player     *PlayerDetail `json:"player,omitempty"`
	Coach      *CoachDetail  `json:"coach,omitempty"`
	Staff      *StaffDetail  `json:"staff,omitempty"`
}

type PlayerDetail struct {
	Position     string `json:"position"`
	JerseyNumber int    `json:"jersey_number"`
	Nationality  string `json:"nationality"`
	Goals        int    `json:"goals"`
	Assists      int    `json:"assists"`
}

type CoachDetail struct {
	CoachingRole    string `json:"coaching_role"`
	YearsExperience int    `json:"years_experience"`
	Philosophy      string `json:"philosophy"`
}

type StaffDetail struct {
	Department string `json:"department"`
	JobTitle   string `json:"job_title"`
}

// TeamMemberUpdate carries optional fields for partial member updates. The
// member type is the union discriminator and cannot change; a detail block
// replaces the existing one wholesale and must match the member's type.
type TeamMemberUpdate struct {
	Name       *string       `json:"name,omitempty"`
	JoinedDate *string       `json:"joined_date,omitempty"`
	Player     *PlayerDetail `json:"player,omitempty"`
	Coach      *CoachDetail  `json:"coach,omitempty"`
	Staff      *StaffDetail  `json:"staff,omitempty"`
}

// --- Interactive endpoint payloads ---

type BelieveRequest struct {
	Situation     string `json:"situation"`
	SituationType string `json:"situation_type"`
	Context       string `json:"context,omitempty"`
	Intensity     int    `json:"intensity"`
}

type BelieveResponse struct {
	TedResponse      string `json:"ted_response"`
	RelevantQuote    string `json:"relevant_quote"`
	ActionSuggestion string `json:"action_suggestion"`
	GoldfishWisdom   string `json:"goldfish_wisdom"`
	BelieveScore     int    `json:"believe_score"`
}

type ConflictRequest struct {
	PartiesInvolved []string `json:"parties_involved"`
	ConflictType    string   `json:"conflict_type"`
	Description     string   `json:"description"`
	AttemptsMade    []string `json:"attempts_made,omitempty"`
}

type ConflictResolution struct {
	Diagnosis           string   `json:"diagnosis"`
	TedApproach         string   `json:"ted_approach"`
	DiamondDogsAdvice   string   `json:"diamond_dogs_advice"`
	StepsToResolution   []string `json:"steps_to_resolution"`
	PotentialOutcome    string   `json:"potential_outcome"`
	BarbecueSauceWisdom string   `json:"barbecue_sauce_wisdom"`
}

type ReframeRequest struct {
	NegativeThought string `json:"negative_thought"`
	Recurring       bool   `json:"recurring"`
}

type ReframeResponse struct {
	OriginalThought  string `json:"original_thought"`
	ReframedThought  string `json:"reframed_thought"`
	TedPerspective   string `json:"ted_perspective"`
	DrSharonInsight  string `json:"dr_sharon_insight,omitempty"`
	DailyAffirmation string `json:"daily_affirmation"`
}

type PressConferenceRequest struct {
	Question string `json:"question"`
	Hostile  bool   `json:"hostile"`
	Topic    string `json:"topic,omitempty"`
}

type PressConferenceResponse struct {
	Response         string `json:"response"`
	DeflectionHumor  string `json:"deflection_humor,omitempty"`
	ActualWisdom     string `json:"actual_wisdom"`
	ReporterReaction string `json:"reporter_reaction"`
	FollowUpDodge    string `json:"follow_up_dodge"`
}

type CoachingPrinciple struct {
	ID              string `json:"id"`
	Principle       string `json:"principle"`
	Explanation     string `json:"explanation"`
	Application     string `json:"application"`
	ExampleFromShow string `json:"example_from_show"`
	TedQuote        string `json:"ted_quote"`
}

type Biscuit struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Message       string `json:"message"`
	WarmthLevel   int    `json:"warmth_level"`
	PairsWellWith string `json:"pairs_well_with"`
	TedNote       string `json:"ted_note"`
}

type BiscuitOrder struct {
	Type      string `json:"type"`
	Recipient string `json:"recipient"`
	Occasion  string `json:"occasion,omitempty"`
}

// --- Webhooks ---

type WebhookEndpoint struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	Events      []string  `json:"events"`
	Secret      string    `json:"secret"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

type WebhookRegistration struct {
	URL         string   `json:"url"`
	Description string   `json:"description,omitempty"`
	Events      []string `json:"events"`
}

// --- Streaming payloads (scripted SSE endpoints) ---

type PepTalkChunk struct {
	ChunkID       int    `json:"chunk_id"`
	Text          string `json:"text"`
	IsFinal       bool   `json:"is_final"`
	EmotionalBeat string `json:"emotional_beat,omitempty"`
}

type CommentaryEvent struct {
	EventID             int    `json:"event_id"`
	Minute              int    `json:"minute"`
	EventType           string `json:"event_type"`
	Description         string `json:"description"`
	Commentary          string `json:"commentary"`
	TedSidelineReaction string `json:"ted_sideline_reaction,omitempty"`
	CrowdReaction       string `json:"crowd_reaction,omitempty"`
	IsFinal             bool   `json:"is_final"`
}

// --- Pagination ---

// Page is the list envelope shared by every collection endpoint.
type Page struct {
	Items   any  `json:"items"`
	Total   int  `json:"total"`
	Page    int  `json:"page"`
	Pages   int  `json:"pages"`
	HasMore bool `json:"has_more"`
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
