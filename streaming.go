package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Scripted commentary event types
const (
	CommentaryKickoff      = "kickoff"
	CommentaryGoal         = "goal"
	CommentaryNearMiss     = "near_miss"
	CommentarySave         = "save"
	CommentaryFoul         = "foul"
	CommentarySubstitution = "substitution"
	CommentaryHalftime     = "halftime"
	CommentaryTedReaction  = "ted_reaction"
	CommentaryCrowdMoment  = "crowd_moment"
	CommentaryFinalWhistle = "final_whistle"
)

var commentaryTemplates = map[string][]string{
	CommentaryKickoff: {
		"And we're off! The referee blows the whistle and the match begins!",
		"Here we go! The crowd roars as the ball starts rolling!",
	},
	CommentaryGoal: {
		"GOOOOAL! What a strike! The net is bulging!",
		"HE'S SCORED! Absolute scenes at Nelson Road!",
		"INCREDIBLE! That's gone in! What a moment!",
	},
	CommentaryNearMiss: {
		"Ohhh, so close! That was inches away from being a goal!",
		"The keeper is beaten but the post saves them!",
		"What a chance! How did that not go in?!",
	},
	CommentarySave: {
		"Brilliant save! The goalkeeper comes up huge!",
		"What reflexes! That was destined for the top corner!",
	},
	CommentaryFoul: {
		"The referee blows for a foul. That looked like a tactical stop.",
		"Free kick given. Perhaps a bit harsh on the defender there.",
	},
	CommentarySubstitution: {
		"A change for the team. Fresh legs coming on for the final push.",
		"Tactical substitution here as the manager looks to change things up.",
	},
	CommentaryHalftime: {
		"And that's halftime! Time for Ted's famous locker room talk.",
		"The whistle goes for the break. What a half of football!",
	},
	CommentaryTedReaction: {
		"Ted Lasso is on his feet, applauding his players!",
		"Look at Ted on the sideline - that mustache is practically smiling!",
		"Ted turns to Coach Beard with a knowing nod. Something's brewing.",
	},
	CommentaryCrowdMoment: {
		"Listen to that! The crowd is absolutely singing their hearts out!",
		"The supporters are on their feet! This atmosphere is electric!",
		"You can hear the BELIEVE chant echoing around the stadium!",
	},
	CommentaryFinalWhistle: {
		"And that's the final whistle! What a match we've witnessed!",
		"IT'S ALL OVER! The players embrace as the final whistle sounds!",
	},
}

var sidelineTedReactions = []string{
	"Well butter my biscuit, did you see that?!",
	"*pumps fist* That's what I'm talkin' about!",
	"*claps enthusiastically* Football IS life!",
	"*turns to Beard* We practiced that exact play!",
	"*whistles* Now that's what teamwork looks like!",
	"*does a little dance on the sideline*",
}

var sidelineCrowdReactions = []string{
	"The crowd erupts in cheers!",
	"Fans are hugging strangers in the stands!",
	"The Richmond faithful are bouncing in unison!",
	"Someone's thrown a scarf onto the pitch in celebration!",
	"The away supporters have gone quiet...",
}

var commentaryDescriptions = map[string]string{
	CommentaryNearMiss:     "A shot goes just wide of the target",
	CommentarySave:         "The goalkeeper makes a crucial stop",
	CommentaryFoul:         "The referee stops play for an infringement",
	CommentarySubstitution: "A tactical change on the touchline",
	CommentaryTedReaction:  "Ted makes his presence felt on the sideline",
	CommentaryCrowdMoment:  "The supporters create an incredible atmosphere",
}

// --- SSE plumbing ---

// sseWriter wraps a flushable ResponseWriter for text/event-stream output.
type sseWriter struct {
	w  http.ResponseWriter
	fl http.Flusher
}

func newSSEWriter(w http.ResponseWriter) (*sseWriter, bool) {
	fl, ok := w.(http.Flusher)
	if !ok {
		return nil, false
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	return &sseWriter{w: w, fl: fl}, true
}

func (s *sseWriter) Send(event string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	s.fl.Flush()
	return nil
}

// --- Pep talk stream ---

// emotionalBeat classifies a pep talk segment by its content.
func emotionalBeat(segment string, index int, isFinal bool) string {
	lower := strings.ToLower(segment)
	switch {
	case strings.Contains(lower, "tough"):
		return "acknowledgment"
	case strings.Contains(lower, "goldfish"):
		return "wisdom"
	case strings.Contains(lower, "believe"):
		return "affirmation"
	case index == 0:
		return "greeting"
	case isFinal:
		return "encouragement"
	}
	return ""
}

func (s *Server) streamPepTalk(w http.ResponseWriter, r *http.Request) {
	sse, ok := newSSEWriter(w)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Streaming Unsupported",
			"This connection doesn't support streaming. Even Ted can't pep-talk through a wall.")
		return
	}

	ctx := r.Context()
	for i, segment := range pepTalkSegments {
		isFinal := i == len(pepTalkSegments)-1
		chunk := PepTalkChunk{
			ChunkID:       i,
			Text:          segment,
			IsFinal:       isFinal,
			EmotionalBeat: emotionalBeat(segment, i, isFinal),
		}
		if err := sse.Send("pep_talk", chunk); err != nil {
			return
		}

		// Delay tracks text length, roughly 50 chars per second of speech.
		delay := time.Duration(float64(len(segment)) * 0.02 * float64(time.Second))
		if delay < 100*time.Millisecond {
			delay = 100 * time.Millisecond
		}
		if delay > 500*time.Millisecond {
			delay = 500 * time.Millisecond
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}

// --- Scripted match commentary stream ---

type scriptedEvent struct {
	Minute      int
	EventType   string
	Description string
	TedReaction string
	CrowdLine   string
}

// commentaryScript lays out a fixed dramatic arc: an early Richmond goal at
// 38, halftime, an 85th-minute equalizer, full time at 90.
func commentaryScript(rng *rand.Rand) []scriptedEvent {
	events := []scriptedEvent{{
		Minute:      0,
		EventType:   CommentaryKickoff,
		Description: "The match kicks off at Nelson Road",
		CrowdLine:   "The home fans are in full voice!",
	}}

	firstHalf := []string{CommentaryNearMiss, CommentarySave, CommentaryFoul, CommentaryTedReaction, CommentaryCrowdMoment}
	for _, minute := range []int{12, 23, 34, 42} {
		events = append(events, randomScriptedEvent(rng, minute, firstHalf))
	}

	events = append(events, scriptedEvent{
		Minute:      38,
		EventType:   CommentaryGoal,
		Description: "Richmond takes the lead! A beautiful team move!",
		TedReaction: sidelineTedReactions[rng.Intn(len(sidelineTedReactions))],
		CrowdLine:   sidelineCrowdReactions[rng.Intn(len(sidelineCrowdReactions))],
	}, scriptedEvent{
		Minute:      45,
		EventType:   CommentaryHalftime,
		Description: "The referee signals for halftime",
		TedReaction: "Ted gathers the team for his famous halftime wisdom",
		CrowdLine:   "Fans head for tea and biscuits",
	})

	secondHalf := []string{CommentaryNearMiss, CommentarySave, CommentarySubstitution, CommentaryTedReaction, CommentaryCrowdMoment}
	for _, minute := range []int{52, 63, 71, 78} {
		events = append(events, randomScriptedEvent(rng, minute, secondHalf))
	}

	events = append(events, scriptedEvent{
		Minute:      85,
		EventType:   CommentaryGoal,
		Description: "Equalizer! The visitors strike back!",
		TedReaction: "Ted applauds - 'That's football, y'all!'",
		CrowdLine:   "A collective groan from the home fans",
	}, scriptedEvent{
		Minute:      90,
		EventType:   CommentaryFinalWhistle,
		Description: "Full time at Nelson Road",
		TedReaction: "Ted shakes hands with both teams, smiling warmly",
		CrowdLine:   "The fans applaud their team despite the result",
	})

	return events
}

func randomScriptedEvent(rng *rand.Rand, minute int, pool []string) scriptedEvent {
	eventType := pool[rng.Intn(len(pool))]
	ev := scriptedEvent{
		Minute:      minute,
		EventType:   eventType,
		Description: commentaryDescriptions[eventType],
	}
	if rng.Float64() > 0.5 {
		ev.TedReaction = sidelineTedReactions[rng.Intn(len(sidelineTedReactions))]
	}
	if rng.Float64() > 0.5 {
		ev.CrowdLine = sidelineCrowdReactions[rng.Intn(len(sidelineCrowdReactions))]
	}
	return ev
}

func (s *Server) streamMatchCommentary(w http.ResponseWriter, r *http.Request) {
	// No {id} on the bare match-commentary route; the script is generic.
	matchID := mux.Vars(r)["id"]
	if _, ok := s.store.GetMatch(matchID); matchID != "" && !ok && !strings.HasPrefix(matchID, "match-") {
		writeError(w, http.StatusNotFound, "Match Not Found",
			"Match '"+matchID+"' not found. Try one of our existing matches or use format 'match-XXX'!")
		return
	}

	sse, ok := newSSEWriter(w)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Streaming Unsupported",
			"This connection doesn't support streaming.")
		return
	}

	ctx := r.Context()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	script := commentaryScript(rng)
	for i, ev := range script {
		out := CommentaryEvent{
			EventID:             i,
			Minute:              ev.Minute,
			EventType:           ev.EventType,
			Description:         ev.Description,
			Commentary:          commentaryTemplates[ev.EventType][rng.Intn(len(commentaryTemplates[ev.EventType]))],
			TedSidelineReaction: ev.TedReaction,
			CrowdReaction:       ev.CrowdLine,
			IsFinal:             i == len(script)-1,
		}
		if err := sse.Send("commentary", out); err != nil {
			return
		}

		delay := time.Duration(300+rng.Intn(500)) * time.Millisecond
		if ev.EventType == CommentaryHalftime {
			delay = time.Second
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}

// --- SSE connection test ---

func (s *Server) streamTest(w http.ResponseWriter, r *http.Request) {
	sse, ok := newSSEWriter(w)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Streaming Unsupported",
			"This connection doesn't support streaming.")
		return
	}

	messages := []string{
		"Testing... 1, 2, 3...",
		"Is this thing on?",
		"Believe!",
		"Football is life!",
		"Stream complete. You're all set!",
	}

	ctx := r.Context()
	for i, msg := range messages {
		payload := map[string]any{"sequence": i + 1, "message": msg}
		if err := sse.Send("test", payload); err != nil {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(500 * time.Millisecond):
		}
	}
}

// --- Live match over SSE ---

// parseSessionConfig reads simulation parameters from query values. Out of
// range numbers are clamped later by Normalize; unparsable ones fail here.
func parseSessionConfig(q url.Values) (SessionConfig, error) {
	cfg := SessionConfig{
		HomeTeam: q.Get("home_team"),
		AwayTeam: q.Get("away_team"),
	}
	if raw := q.Get("speed"); raw != "" {
		speed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid speed %q: %w", raw, err)
		}
		cfg.Speed = speed
	}
	if raw := q.Get("excitement_level"); raw != "" {
		excitement, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("invalid excitement_level %q: %w", raw, err)
		}
		cfg.Excitement = excitement
	}
	if raw := q.Get("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid seed %q: %w", raw, err)
		}
		cfg.Seed = seed
	}
	return cfg, nil
}

// applySessionDefaults fills omitted simulation parameters from the server
// config before Normalize clamps them.
func (s *Server) applySessionDefaults(cfg *SessionConfig) {
	if cfg.Speed == 0 {
		cfg.Speed = s.cfg.DefaultSpeed
	}
	if cfg.Excitement == 0 {
		cfg.Excitement = s.cfg.DefaultExcitement
	}
}

// sseSessionTransport adapts the one-way SSE channel to a match session.
// Event names mirror the type field carried inside each message.
type sseSessionTransport struct {
	sse *sseWriter
}

func (t *sseSessionTransport) Send(msg any) error {
	event := "message"
	switch msg.(type) {
	case MatchStartMessage:
		event = "match_start"
	case MatchEventMessage:
		event = "match_event"
	case MatchEndMessage:
		event = "match_end"
	case ErrorMessage:
		event = "error"
	case PongMessage:
		event = "pong"
	}
	return t.sse.Send(event, msg)
}

func (s *Server) streamLiveMatch(w http.ResponseWriter, r *http.Request) {
	cfg, err := parseSessionConfig(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Simulation Config", err.Error())
		return
	}
	s.applySessionDefaults(&cfg)

	sse, ok := newSSEWriter(w)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Streaming Unsupported",
			"This connection doesn't support streaming.")
		return
	}

	sessionID := "match-" + uuid.NewString()[:8]
	session, err := NewMatchSession(sessionID, cfg, &sseSessionTransport{sse: sse})
	if err != nil {
		if sendErr := sse.Send("error", ErrorMessage{Type: "error", Code: "invalid_config", Message: err.Error()}); sendErr != nil {
			log.Printf("💔 SSE session %s could not report invalid config: %v", sessionID, sendErr)
		}
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), MaxSessionDuration)
	defer cancel()
	if err := session.Run(ctx); err != nil {
		log.Printf("📺 SSE session %s ended early: %v", sessionID, err)
	}
}
