package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"
)

// Live match event types
const (
	EventMatchStart       = "match_start"
	EventGoal             = "goal"
	EventPossessionChange = "possession_change"
	EventFoul             = "foul"
	EventYellowCard       = "yellow_card"
	EventRedCard          = "red_card"
	EventPenaltyAwarded   = "penalty_awarded"
	EventPenaltyScored    = "penalty_scored"
	EventPenaltyMissed    = "penalty_missed"
	EventSubstitution     = "substitution"
	EventInjury           = "injury"
	EventOffside          = "offside"
	EventCorner           = "corner"
	EventFreeKick         = "free_kick"
	EventShotOnTarget     = "shot_on_target"
	EventShotOffTarget    = "shot_off_target"
	EventSave             = "save"
	EventHalftime         = "halftime"
	EventSecondHalfStart  = "second_half_start"
	EventAddedTime        = "added_time"
	EventMatchEnd         = "match_end"
)

// Session lifecycle states
const (
	SessionInitializing = "initializing"
	SessionRunning      = "running"
	SessionCompleted    = "completed"
	SessionAborted      = "aborted"
)

// Team sides
const (
	SideHome = "home"
	SideAway = "away"
)

// Pacing bounds. The floor prevents a busy loop at high speed; the ceiling
// bounds cancellation latency at low speed to one tick.
const (
	MinTickInterval = 10 * time.Millisecond
	MaxTickInterval = 2 * time.Second
)

// MaxSessionDuration caps the wall-clock length of one session. Even at the
// minimum speed a full match finishes well inside this bound.
const MaxSessionDuration = 30 * time.Minute

// Session configuration bounds
const (
	MinSpeed          = 0.1
	MaxSpeed          = 10.0
	DefaultSpeed      = 1.0
	MinExcitement     = 1
	MaxExcitement     = 10
	DefaultExcitement = 5
	DefaultHomeTeam   = "AFC Richmond"
	DefaultAwayTeam   = "West Ham United"
)

type PlayerInfo struct {
	Name     string `json:"name"`
	Number   int    `json:"number"`
	Position string `json:"position"`
}

type MatchScore struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

type MatchStats struct {
	PossessionHome    float64 `json:"possession_home"`
	PossessionAway    float64 `json:"possession_away"`
	ShotsHome         int     `json:"shots_home"`
	ShotsAway         int     `json:"shots_away"`
	ShotsOnTargetHome int     `json:"shots_on_target_home"`
	ShotsOnTargetAway int     `json:"shots_on_target_away"`
	CornersHome       int     `json:"corners_home"`
	CornersAway       int     `json:"corners_away"`
	FoulsHome         int     `json:"fouls_home"`
	FoulsAway         int     `json:"fouls_away"`
	YellowCardsHome   int     `json:"yellow_cards_home"`
	YellowCardsAway   int     `json:"yellow_cards_away"`
	RedCardsHome      int     `json:"red_cards_home"`
	RedCardsAway      int     `json:"red_cards_away"`
}

// LiveMatchEvent is immutable once created: the generator appends it to the
// session's event log and the transport serializes it as-is.
type LiveMatchEvent struct {
	EventID         int         `json:"event_id"`
	EventType       string      `json:"event_type"`
	Minute          int         `json:"minute"`
	AddedTime       int         `json:"added_time,omitempty"`
	Team            string      `json:"team,omitempty"`
	Player          *PlayerInfo `json:"player,omitempty"`
	SecondaryPlayer *PlayerInfo `json:"secondary_player,omitempty"`
	Description     string      `json:"description"`
	Score           MatchScore  `json:"score"`
	Stats           MatchStats  `json:"stats"`
	TedReaction     string      `json:"ted_reaction,omitempty"`
	CrowdReaction   string      `json:"crowd_reaction,omitempty"`
	Commentary      string      `json:"commentary"`
}

// SessionConfig holds the immutable parameters of one simulated match.
// Seed selects the random sequence; zero means "derive from wall clock".
type SessionConfig struct {
	HomeTeam   string
	AwayTeam   string
	Speed      float64
	Excitement int
	Seed       int64
}

var errEmptyTeamName = errors.New("team name must not be empty")

// Normalize clamps numeric parameters into their documented ranges and
// rejects configurations that cannot be clamped into validity.
func (c *SessionConfig) Normalize() error {
	if c.HomeTeam == "" {
		c.HomeTeam = DefaultHomeTeam
	}
	if c.AwayTeam == "" {
		c.AwayTeam = DefaultAwayTeam
	}
	if c.HomeTeam == "" || c.AwayTeam == "" {
		return errEmptyTeamName
	}
	if c.Speed == 0 {
		c.Speed = DefaultSpeed
	}
	if c.Speed < MinSpeed {
		c.Speed = MinSpeed
	}
	if c.Speed > MaxSpeed {
		c.Speed = MaxSpeed
	}
	if c.Excitement == 0 {
		c.Excitement = DefaultExcitement
	}
	if c.Excitement < MinExcitement {
		c.Excitement = MinExcitement
	}
	if c.Excitement > MaxExcitement {
		c.Excitement = MaxExcitement
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return nil
}

// --- Clock/Pacing Driver ---

// pacingClock converts simulated match minutes into real-time delays. The
// base delay is 500ms per minute at speed 1.0, jittered per tick so event
// rhythm feels organic. Every computed delay is clamped into
// [MinTickInterval, MaxTickInterval].
type pacingClock struct {
	base time.Duration
	rng  *rand.Rand
}

func newPacingClock(speed float64, rng *rand.Rand) *pacingClock {
	return &pacingClock{
		base: time.Duration(float64(500*time.Millisecond) / speed),
		rng:  rng,
	}
}

// tickDelay returns the jittered delay before the next simulated minute.
func (c *pacingClock) tickDelay() time.Duration {
	jitter := 0.5 + c.rng.Float64() // 0.5x - 1.5x
	return clampDelay(time.Duration(float64(c.base) * jitter))
}

// breakDelay returns the longer pause used at halftime.
func (c *pacingClock) breakDelay() time.Duration {
	return clampDelay(3 * c.base)
}

func (c *pacingClock) baseDelay() time.Duration {
	return clampDelay(c.base)
}

func clampDelay(d time.Duration) time.Duration {
	if d < MinTickInterval {
		return MinTickInterval
	}
	if d > MaxTickInterval {
		return MaxTickInterval
	}
	return d
}

// --- Event Generator ---

var homeRoster = []PlayerInfo{
	{Name: "Sam Obisanya", Number: 24, Position: "Forward"},
	{Name: "Jamie Tartt", Number: 9, Position: "Forward"},
	{Name: "Dani Rojas", Number: 10, Position: "Midfielder"},
	{Name: "Roy Kent", Number: 6, Position: "Midfielder"},
	{Name: "Isaac McAdoo", Number: 5, Position: "Defender"},
	{Name: "Colin Hughes", Number: 7, Position: "Midfielder"},
	{Name: "Richard Montlaur", Number: 3, Position: "Defender"},
	{Name: "Jan Maas", Number: 4, Position: "Defender"},
	{Name: "Moe Bumbercatch", Number: 11, Position: "Midfielder"},
	{Name: "Zoreaux", Number: 1, Position: "Goalkeeper"},
}

var awayRoster = []PlayerInfo{
	{Name: "Marcus Sterling", Number: 9, Position: "Forward"},
	{Name: "João Silva", Number: 10, Position: "Midfielder"},
	{Name: "Ahmed Hassan", Number: 7, Position: "Forward"},
	{Name: "Oliver Thompson", Number: 8, Position: "Midfielder"},
	{Name: "David Campbell", Number: 4, Position: "Defender"},
	{Name: "Michael Brown", Number: 5, Position: "Defender"},
	{Name: "James Wilson", Number: 3, Position: "Defender"},
	{Name: "Patrick O'Brien", Number: 6, Position: "Midfielder"},
	{Name: "Thomas Mueller", Number: 11, Position: "Midfielder"},
	{Name: "Carlos Ramirez", Number: 1, Position: "Goalkeeper"},
}

var tedReactions = map[string][]string{
	EventGoal: {
		"Well, hot diggity dog! That's what I call putting the biscuit in the basket!",
		"*pumps both fists* NOW we're cooking with gas, y'all!",
		"That right there is what happens when you BELIEVE!",
		"*hugs Coach Beard* Did you see that?! Football IS life!",
		"Goldfish memory on the last play, but THIS one we remember forever!",
	},
	EventYellowCard: {
		"*winces* Ooh, that's gonna leave a mark on the wallet.",
		"Well, that's what my mama would call a 'learning opportunity'.",
		"*turns to Beard* Is that bad? That seems bad.",
	},
	EventRedCard: {
		"Well... that escalated quickly.",
		"*stares in disbelief* I think we're gonna need a bigger bench.",
		"Time for someone to go think about what they've done.",
	},
	EventSave: {
		"WHAT A SAVE! That keeper's got hands like my Aunt Patty catching biscuits!",
		"*applauds* Now THAT is some Grade-A goalkeeping right there!",
	},
	EventPenaltyAwarded: {
		"*nervously adjusts cap* This is fine. Everything is fine.",
		"Alright, everyone take a deep breath. And then one more. And maybe one more.",
	},
	EventHalftime: {
		"*gathers team* Okay fellas, time for some biscuits and wisdom!",
		"Halftime! Let's go be goldfish and forget any mistakes!",
	},
	EventMatchEnd: {
		"Win or lose, I'm proud of every single one of you!",
		"That's football, y'all! Now who wants barbecue?",
	},
}

var crowdReactions = map[string][]string{
	EventGoal: {
		"The crowd ERUPTS! Nelson Road is absolutely bouncing!",
		"SCENES! Fans are hugging complete strangers!",
		"Listen to that roar! You can hear it three blocks away!",
		"The BELIEVE banner is waving wildly in the stands!",
	},
	EventYellowCard: {
		"Boos rain down from the home supporters.",
		"The crowd voices their displeasure with the referee.",
	},
	EventRedCard: {
		"Absolute chaos in the stands! Half the crowd is booing, half is stunned silent.",
		"The away fans are celebrating while home supporters are furious!",
	},
	EventSave: {
		"A collective gasp followed by thunderous applause!",
		"The crowd rises to their feet for that save!",
	},
	EventPenaltyAwarded: {
		"The stadium holds its collective breath...",
		"You could hear a pin drop at Nelson Road right now.",
	},
	EventMatchStart: {
		"The Richmond faithful are in full voice as we kick off!",
	},
	EventHalftime: {
		"Fans head for the tea and biscuits as we reach the break.",
	},
	EventMatchEnd: {
		"The final whistle brings cheers (or groans) around the ground!",
		"Players applaud the fans as another match concludes at Nelson Road.",
	},
}

var matchCommentary = map[string][]string{
	EventMatchStart: {
		"And we're underway! The referee blows his whistle and the match begins!",
		"Here we go! 90 minutes of football ahead of us!",
	},
	EventGoal: {
		"GOOOOOAL! What a strike! The net is absolutely bulging!",
		"IT'S IN! Scenes of jubilation!",
		"GOAL! You won't see a better finish than that!",
		"HE'S DONE IT! What a moment!",
	},
	EventPossessionChange: {
		"Possession changes hands as the ball is intercepted.",
		"Good defensive work there to win back the ball.",
		"A loose pass and the other side takes over.",
	},
	EventFoul: {
		"The referee blows for a foul. Perhaps a bit harsh there.",
		"Free kick given as the player is brought down.",
		"That's a clear foul. No complaints there.",
	},
	EventYellowCard: {
		"And that's a booking! The yellow card comes out.",
		"He's been cautioned. The referee reaches for his pocket.",
	},
	EventRedCard: {
		"RED CARD! He's off! What drama!",
		"That's a straight red! He's seen his last action today.",
	},
	EventPenaltyAwarded: {
		"PENALTY! The referee points to the spot!",
		"It's a penalty! This could be huge!",
	},
	EventPenaltyScored: {
		"SCORED! Cool as you like from the penalty spot!",
		"No chance for the keeper! Penalty converted!",
	},
	EventPenaltyMissed: {
		"SAVED! The keeper guesses right!",
		"Over the bar! He's ballooned it!",
	},
	EventSubstitution: {
		"A change for the team. Fresh legs coming on.",
		"Tactical substitution here from the manager.",
	},
	EventCorner: {
		"Corner kick coming in from the right.",
		"They've won a corner. Set piece opportunity here.",
	},
	EventFreeKick: {
		"Free kick in a dangerous area here.",
		"He'll fancy this free kick, just outside the box.",
	},
	EventShotOnTarget: {
		"Shot! But it's straight at the keeper.",
		"Good effort but the goalkeeper holds it comfortably.",
	},
	EventShotOffTarget: {
		"He tries his luck but it's well wide.",
		"Shot! But that's gone into row Z.",
	},
	EventSave: {
		"WHAT A SAVE! Incredible reflexes!",
		"The keeper comes up huge with a stunning stop!",
	},
	EventOffside: {
		"The flag goes up. Offside.",
		"He was just ahead of the last defender there.",
	},
	EventHalftime: {
		"And that's halftime! Time for team talks and tactical adjustments.",
		"The whistle goes for the break. Plenty to discuss in the dressing room.",
	},
	EventSecondHalfStart: {
		"We're back underway for the second half!",
		"The second 45 begins. Can we see a change in fortunes?",
	},
	EventAddedTime: {
		"The board goes up. Added time to be played.",
		"Into injury time now. Every second counts!",
	},
	EventMatchEnd: {
		"And that's full time! What a match we've witnessed!",
		"The final whistle blows! It's all over!",
	},
	EventInjury: {
		"The physio is on the pitch. Hopefully nothing serious.",
		"Play has stopped as we have a player down.",
	},
}

// eventWeight pairs an event kind with its selection weight. Weights are
// integers scaled by 10 so the rarest kind (red card, 0.5) stays integral.
type eventWeight struct {
	kind   string
	weight int
}

// eventWeights returns the weight table for the given excitement level.
// Goal frequency scales with excitement; everything else is fixed.
func eventWeights(excitement int) []eventWeight {
	return []eventWeight{
		{EventPossessionChange, 300},
		{EventFoul, 150},
		{EventShotOffTarget, 120},
		{EventShotOnTarget, 100},
		{EventCorner, 80},
		{EventOffside, 60},
		{EventSave, 50},
		{EventFreeKick, 50},
		{EventYellowCard, 30},
		{EventGoal, (2 + excitement/3) * 10},
		{EventInjury, 20},
		{EventPenaltyAwarded, 10},
		{EventRedCard, 5},
	}
}

// eventGenerator produces the event sequence for one match. All randomness
// flows through its private rng so two sessions never correlate and a fixed
// seed reproduces the exact sequence.
type eventGenerator struct {
	cfg          SessionConfig
	rng          *rand.Rand
	score        MatchScore
	stats        MatchStats
	eventID      int
	finished     bool
	involvements map[string]int // goal involvements, for the standout performer
}

func newEventGenerator(cfg SessionConfig, rng *rand.Rand) *eventGenerator {
	return &eventGenerator{
		cfg: cfg,
		rng: rng,
		stats: MatchStats{
			PossessionHome: 50.0,
			PossessionAway: 50.0,
		},
		involvements: make(map[string]int),
	}
}

func (g *eventGenerator) pickPlayer(team string) PlayerInfo {
	roster := homeRoster
	if team == SideAway {
		roster = awayRoster
	}
	return roster[g.rng.Intn(len(roster))]
}

func (g *eventGenerator) pick(lines []string) string {
	if len(lines) == 0 {
		return "Action on the pitch."
	}
	return lines[g.rng.Intn(len(lines))]
}

func (g *eventGenerator) commentaryFor(eventType string) string {
	return g.pick(matchCommentary[eventType])
}

func (g *eventGenerator) tedReactionFor(eventType string) string {
	lines := tedReactions[eventType]
	if len(lines) > 0 && g.rng.Float64() > 0.3 {
		return g.pick(lines)
	}
	return ""
}

func (g *eventGenerator) crowdReactionFor(eventType string) string {
	if lines := crowdReactions[eventType]; len(lines) > 0 {
		return g.pick(lines)
	}
	return ""
}

func (g *eventGenerator) shiftPossession() {
	shift := g.rng.Float64()*10 - 5
	g.stats.PossessionHome += shift
	if g.stats.PossessionHome < 30 {
		g.stats.PossessionHome = 30
	}
	if g.stats.PossessionHome > 70 {
		g.stats.PossessionHome = 70
	}
	g.stats.PossessionAway = 100 - g.stats.PossessionHome
}

func (g *eventGenerator) newEvent(eventType string, minute int, team string, player, secondary *PlayerInfo, description string) *LiveMatchEvent {
	g.eventID++
	g.shiftPossession()

	if description == "" {
		description = g.commentaryFor(eventType)
	}

	return &LiveMatchEvent{
		EventID:         g.eventID,
		EventType:       eventType,
		Minute:          minute,
		Team:            team,
		Player:          player,
		SecondaryPlayer: secondary,
		Description:     description,
		Score:           g.score,
		Stats:           g.stats,
		TedReaction:     g.tedReactionFor(eventType),
		CrowdReaction:   g.crowdReactionFor(eventType),
		Commentary:      g.commentaryFor(eventType),
	}
}

// MinuteEvent rolls for this minute's event. Most minutes at low excitement
// produce nothing. Returns nil when the minute passes quietly or the match
// has already finished.
func (g *eventGenerator) MinuteEvent(minute int) *LiveMatchEvent {
	if g.finished {
		return nil
	}
	if g.rng.Float64() > float64(g.cfg.Excitement)/15 {
		return nil
	}

	team := SideHome
	if g.rng.Intn(2) == 1 {
		team = SideAway
	}
	player := g.pickPlayer(team)

	weights := eventWeights(g.cfg.Excitement)
	total := 0
	for _, w := range weights {
		total += w.weight
	}
	roll := g.rng.Intn(total)
	kind := weights[len(weights)-1].kind
	for _, w := range weights {
		roll -= w.weight
		if roll < 0 {
			kind = w.kind
			break
		}
	}

	switch kind {
	case EventGoal:
		return g.goalEvent(minute, team, player)
	case EventYellowCard:
		return g.yellowCardEvent(minute, team, player)
	case EventRedCard:
		return g.redCardEvent(minute, team, player)
	case EventPenaltyAwarded:
		return g.penaltyEvent(minute, team)
	case EventShotOnTarget, EventSave:
		return g.shotOnTargetEvent(minute, team, player)
	case EventShotOffTarget:
		return g.shotOffTargetEvent(minute, team, player)
	case EventCorner:
		return g.cornerEvent(minute, team)
	case EventFoul:
		return g.foulEvent(minute, team, player)
	default:
		return g.newEvent(kind, minute, team, &player, nil, "")
	}
}

func (g *eventGenerator) teamName(team string) string {
	if team == SideHome {
		return g.cfg.HomeTeam
	}
	return g.cfg.AwayTeam
}

func (g *eventGenerator) recordGoal(team string) {
	if team == SideHome {
		g.score.Home++
		g.stats.ShotsHome++
		g.stats.ShotsOnTargetHome++
	} else {
		g.score.Away++
		g.stats.ShotsAway++
		g.stats.ShotsOnTargetAway++
	}
}

func (g *eventGenerator) goalEvent(minute int, team string, scorer PlayerInfo) *LiveMatchEvent {
	g.recordGoal(team)
	g.involvements[scorer.Name] += 2

	// 70% of goals carry an assist
	var assister *PlayerInfo
	if g.rng.Float64() > 0.3 {
		a := g.pickPlayer(team)
		for a.Name == scorer.Name {
			a = g.pickPlayer(team)
		}
		assister = &a
		g.involvements[a.Name]++
	}

	description := fmt.Sprintf("GOAL! %s scores for %s!", scorer.Name, g.teamName(team))
	if assister != nil {
		description += fmt.Sprintf(" Assisted by %s.", assister.Name)
	}

	return g.newEvent(EventGoal, minute, team, &scorer, assister, description)
}

func (g *eventGenerator) yellowCardEvent(minute int, team string, player PlayerInfo) *LiveMatchEvent {
	if team == SideHome {
		g.stats.YellowCardsHome++
		g.stats.FoulsHome++
	} else {
		g.stats.YellowCardsAway++
		g.stats.FoulsAway++
	}
	desc := fmt.Sprintf("Yellow card shown to %s for a reckless challenge.", player.Name)
	return g.newEvent(EventYellowCard, minute, team, &player, nil, desc)
}

func (g *eventGenerator) redCardEvent(minute int, team string, player PlayerInfo) *LiveMatchEvent {
	if team == SideHome {
		g.stats.RedCardsHome++
		g.stats.FoulsHome++
	} else {
		g.stats.RedCardsAway++
		g.stats.FoulsAway++
	}
	desc := fmt.Sprintf("RED CARD! %s is sent off!", player.Name)
	return g.newEvent(EventRedCard, minute, team, &player, nil, desc)
}

func (g *eventGenerator) penaltyEvent(minute int, team string) *LiveMatchEvent {
	player := g.pickPlayer(team)

	// 75% conversion rate
	if g.rng.Float64() > 0.25 {
		g.recordGoal(team)
		g.involvements[player.Name] += 2
		desc := fmt.Sprintf("PENALTY SCORED! %s sends the keeper the wrong way!", player.Name)
		return g.newEvent(EventPenaltyScored, minute, team, &player, nil, desc)
	}

	if team == SideHome {
		g.stats.ShotsHome++
	} else {
		g.stats.ShotsAway++
	}
	desc := fmt.Sprintf("PENALTY MISSED! %s fails to convert!", player.Name)
	return g.newEvent(EventPenaltyMissed, minute, team, &player, nil, desc)
}

func (g *eventGenerator) shotOnTargetEvent(minute int, team string, player PlayerInfo) *LiveMatchEvent {
	if team == SideHome {
		g.stats.ShotsHome++
		g.stats.ShotsOnTargetHome++
	} else {
		g.stats.ShotsAway++
		g.stats.ShotsOnTargetAway++
	}
	desc := fmt.Sprintf("Great save! %s's shot is kept out by the goalkeeper!", player.Name)
	return g.newEvent(EventSave, minute, team, &player, nil, desc)
}

func (g *eventGenerator) shotOffTargetEvent(minute int, team string, player PlayerInfo) *LiveMatchEvent {
	if team == SideHome {
		g.stats.ShotsHome++
	} else {
		g.stats.ShotsAway++
	}
	desc := fmt.Sprintf("%s shoots but it goes wide of the target.", player.Name)
	return g.newEvent(EventShotOffTarget, minute, team, &player, nil, desc)
}

func (g *eventGenerator) cornerEvent(minute int, team string) *LiveMatchEvent {
	if team == SideHome {
		g.stats.CornersHome++
	} else {
		g.stats.CornersAway++
	}
	desc := fmt.Sprintf("Corner kick for %s.", g.teamName(team))
	return g.newEvent(EventCorner, minute, team, nil, nil, desc)
}

func (g *eventGenerator) foulEvent(minute int, team string, player PlayerInfo) *LiveMatchEvent {
	if team == SideHome {
		g.stats.FoulsHome++
	} else {
		g.stats.FoulsAway++
	}
	desc := fmt.Sprintf("Foul by %s. Free kick awarded.", player.Name)
	return g.newEvent(EventFoul, minute, team, &player, nil, desc)
}

// StandoutPerformer picks the player with the most goal involvements (a goal
// counts double, an assist single) on the leading side; the home side wins a
// draw. Scoreless matches credit the leading side's goalkeeper for a clean
// sheet. Ties break by roster order, so the result is fully determined by
// the event sequence.
func (g *eventGenerator) StandoutPerformer() string {
	roster := homeRoster
	if g.score.Away > g.score.Home {
		roster = awayRoster
	}

	best := ""
	bestCount := 0
	for _, p := range roster {
		if n := g.involvements[p.Name]; n > bestCount {
			best = p.Name
			bestCount = n
		}
	}
	if best == "" {
		best = roster[len(roster)-1].Name // the goalkeeper
	}
	return best
}

// --- Session Driver messages ---

type MatchStartMessage struct {
	Type     string `json:"type"`
	MatchID  string `json:"match_id"`
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
	Message  string `json:"message"`
}

type MatchEventMessage struct {
	Type  string          `json:"type"`
	Event *LiveMatchEvent `json:"event"`
}

type MatchEndMessage struct {
	Type          string     `json:"type"`
	MatchID       string     `json:"match_id"`
	FinalScore    MatchScore `json:"final_score"`
	FinalStats    MatchStats `json:"final_stats"`
	ManOfTheMatch string     `json:"man_of_the_match"`
	TedPostMatch  string     `json:"ted_post_match"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PongMessage struct {
	Type string `json:"type"`
}

// SessionTransport is the outbound half of a transport adapter. Send must
// preserve message order; a returned error aborts the session.
type SessionTransport interface {
	Send(msg any) error
}

// --- Session Driver ---

// MatchSession owns one simulated match end to end. It is the sole owner of
// the match state; inbound control messages reach it only through the
// Control channel, so no mutable state is ever shared across goroutines.
type MatchSession struct {
	ID        string
	Config    SessionConfig
	State     string
	Control   chan []byte
	transport SessionTransport
	gen       *eventGenerator
	clock     *pacingClock
	events    []*LiveMatchEvent
}

// NewMatchSession validates the configuration and prepares a session in the
// initializing state. A config that cannot be normalized fails fast here,
// before any message is emitted.
func NewMatchSession(id string, cfg SessionConfig, transport SessionTransport) (*MatchSession, error) {
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	return &MatchSession{
		ID:        id,
		Config:    cfg,
		State:     SessionInitializing,
		Control:   make(chan []byte, 8),
		transport: transport,
		gen:       newEventGenerator(cfg, rng),
		clock:     newPacingClock(cfg.Speed, rng),
	}, nil
}

// Events returns the append-only event log emitted so far.
func (s *MatchSession) Events() []*LiveMatchEvent { return s.events }

func (s *MatchSession) Score() MatchScore { return s.gen.score }

func (s *MatchSession) send(msg any) error {
	if err := s.transport.Send(msg); err != nil {
		s.State = SessionAborted
		log.Printf("💔 Session %s aborted at minute %d (%s vs %s, speed %.1f): %v",
			s.ID, s.lastMinute(), s.Config.HomeTeam, s.Config.AwayTeam, s.Config.Speed, err)
		return err
	}
	return nil
}

func (s *MatchSession) lastMinute() int {
	if len(s.events) == 0 {
		return 0
	}
	return s.events[len(s.events)-1].Minute
}

func (s *MatchSession) emit(ev *LiveMatchEvent) error {
	s.events = append(s.events, ev)
	return s.send(MatchEventMessage{Type: "match_event", Event: ev})
}

// wait blocks until the delay elapses, handling inbound control messages as
// they arrive. Cancellation interrupts the wait immediately.
func (s *MatchSession) wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			s.State = SessionAborted
			return ctx.Err()
		case raw := <-s.Control:
			if err := s.handleControl(raw); err != nil {
				return err
			}
		case <-timer.C:
			return nil
		}
	}
}

// handleControl answers a recognized keep-alive with a pong and anything
// else with a typed error. Neither advances the match clock or appears in
// the event log.
func (s *MatchSession) handleControl(raw []byte) error {
	var msg struct {
		Action string `json:"action"`
	}
	if err := json.Unmarshal(raw, &msg); err != nil || msg.Action != "ping" {
		return s.send(ErrorMessage{
			Type:    "error",
			Code:    "unknown_action",
			Message: "Hey, I don't recognize that one. Try {\"action\": \"ping\"}.",
		})
	}
	return s.send(PongMessage{Type: "pong"})
}

// Run drives the session from kick-off to full time. It returns nil when
// the match completes and the context error or transport error when the
// session aborts. Run must be called exactly once.
func (s *MatchSession) Run(ctx context.Context) error {
	s.State = SessionRunning
	log.Printf("⚽ Session %s kicking off: %s vs %s (speed %.1f, excitement %d)",
		s.ID, s.Config.HomeTeam, s.Config.AwayTeam, s.Config.Speed, s.Config.Excitement)

	start := MatchStartMessage{
		Type:     "match_start",
		MatchID:  s.ID,
		HomeTeam: s.Config.HomeTeam,
		AwayTeam: s.Config.AwayTeam,
		Message:  fmt.Sprintf("Welcome to Nelson Road! %s vs %s is about to begin. BELIEVE!", s.Config.HomeTeam, s.Config.AwayTeam),
	}
	if err := s.send(start); err != nil {
		return err
	}

	kickoff := s.gen.newEvent(EventMatchStart, 0, "", nil, nil,
		fmt.Sprintf("Kick-off! %s vs %s is underway!", s.Config.HomeTeam, s.Config.AwayTeam))
	if err := s.emit(kickoff); err != nil {
		return err
	}
	if err := s.wait(ctx, s.clock.baseDelay()); err != nil {
		return err
	}

	// First half
	if err := s.playMinutes(ctx, 1, 45, 0); err != nil {
		return err
	}

	halftime := s.gen.newEvent(EventHalftime, 45, "", nil, nil, "The referee blows for halftime!")
	if err := s.emit(halftime); err != nil {
		return err
	}
	if err := s.wait(ctx, s.clock.breakDelay()); err != nil {
		return err
	}

	restart := s.gen.newEvent(EventSecondHalfStart, 45, "", nil, nil, "We're back underway for the second half!")
	if err := s.emit(restart); err != nil {
		return err
	}
	if err := s.wait(ctx, s.clock.baseDelay()); err != nil {
		return err
	}

	// Second half
	if err := s.playMinutes(ctx, 46, 90, 0); err != nil {
		return err
	}

	// Added time
	addedMinutes := s.gen.rng.Intn(5) + 1
	board := s.gen.newEvent(EventAddedTime, 90, "", nil, nil,
		fmt.Sprintf("%d minutes of added time to be played.", addedMinutes))
	if err := s.emit(board); err != nil {
		return err
	}
	if err := s.wait(ctx, s.clock.baseDelay()); err != nil {
		return err
	}
	for added := 1; added <= addedMinutes; added++ {
		if err := s.playMinutes(ctx, 90, 90, added); err != nil {
			return err
		}
	}

	// Full time: the generator emits nothing after this marker.
	s.gen.finished = true
	final := s.gen.newEvent(EventMatchEnd, 90, "", nil, nil,
		fmt.Sprintf("Full time! %s %d - %d %s", s.Config.HomeTeam, s.gen.score.Home, s.gen.score.Away, s.Config.AwayTeam))
	final.AddedTime = addedMinutes
	if err := s.emit(final); err != nil {
		return err
	}

	end := MatchEndMessage{
		Type:          "match_end",
		MatchID:       s.ID,
		FinalScore:    s.gen.score,
		FinalStats:    s.gen.stats,
		ManOfTheMatch: s.gen.StandoutPerformer(),
		TedPostMatch:  "Win, lose, or draw - I'm proud of every single one of you. Now who wants to grab some barbecue?",
	}
	if err := s.send(end); err != nil {
		return err
	}

	s.State = SessionCompleted
	log.Printf("🏁 Session %s completed: %s %d - %d %s",
		s.ID, s.Config.HomeTeam, s.gen.score.Home, s.gen.score.Away, s.Config.AwayTeam)
	return nil
}

func (s *MatchSession) playMinutes(ctx context.Context, from, to, addedTime int) error {
	for minute := from; minute <= to; minute++ {
		if ev := s.gen.MinuteEvent(minute); ev != nil {
			ev.AddedTime = addedTime
			if err := s.emit(ev); err != nil {
				return err
			}
			if err := s.wait(ctx, s.clock.tickDelay()); err != nil {
				return err
			}
			continue
		}
		// A quiet minute still consumes a short slice of real time so the
		// clock keeps moving at roughly the configured pace.
		if err := s.wait(ctx, MinTickInterval); err != nil {
			return err
		}
	}
	return nil
}
