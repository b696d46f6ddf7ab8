package main

import (
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// sseEvents splits a raw text/event-stream body into event names, in order.
func sseEvents(body string) []string {
	var names []string
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, "event: ") {
			names = append(names, strings.TrimPrefix(line, "event: "))
		}
	}
	return names
}

func TestSSEWriter(t *testing.T) {
	Convey("Given a recorder-backed SSE writer", t, func() {
		rec := httptest.NewRecorder()
		sse, ok := newSSEWriter(rec)
		So(ok, ShouldBeTrue)

		Convey("It sets the event-stream headers", func() {
			So(rec.Header().Get("Content-Type"), ShouldEqual, "text/event-stream")
			So(rec.Header().Get("Cache-Control"), ShouldEqual, "no-cache")
		})

		Convey("Send frames the payload as event + data lines", func() {
			So(sse.Send("test", map[string]any{"sequence": 1}), ShouldBeNil)
			So(rec.Body.String(), ShouldEqual, "event: test\ndata: {\"sequence\":1}\n\n")
		})
	})
}

func TestSSESessionTransport(t *testing.T) {
	Convey("The SSE transport names events after the message type", t, func() {
		rec := httptest.NewRecorder()
		sse, _ := newSSEWriter(rec)
		transport := &sseSessionTransport{sse: sse}

		So(transport.Send(MatchStartMessage{Type: "match_start"}), ShouldBeNil)
		So(transport.Send(MatchEventMessage{Type: "match_event"}), ShouldBeNil)
		So(transport.Send(PongMessage{Type: "pong"}), ShouldBeNil)
		So(transport.Send(MatchEndMessage{Type: "match_end"}), ShouldBeNil)

		So(sseEvents(rec.Body.String()), ShouldResemble,
			[]string{"match_start", "match_event", "pong", "match_end"})
	})
}

func TestEmotionalBeat(t *testing.T) {
	Convey("Pep talk segments are classified by their content", t, func() {
		So(emotionalBeat("I know things might seem tough right now", 1, false), ShouldEqual, "acknowledgment")
		So(emotionalBeat("Be a goldfish", 3, false), ShouldEqual, "wisdom")
		So(emotionalBeat("We're gonna believe.", 5, false), ShouldEqual, "affirmation")
		So(emotionalBeat("Hey there, friend.", 0, false), ShouldEqual, "greeting")
		So(emotionalBeat("Now get out there!", 8, true), ShouldEqual, "encouragement")
		So(emotionalBeat("Something in the middle", 4, false), ShouldEqual, "")
	})
}

func TestCommentaryScript(t *testing.T) {
	Convey("Given a scripted commentary arc", t, func() {
		script := commentaryScript(rand.New(rand.NewSource(7)))

		Convey("It runs kickoff to final whistle in minute order", func() {
			So(script[0].EventType, ShouldEqual, CommentaryKickoff)
			So(script[len(script)-1].EventType, ShouldEqual, CommentaryFinalWhistle)
			So(script[len(script)-1].Minute, ShouldEqual, 90)
			for i := 1; i < len(script); i++ {
				So(script[i].Minute, ShouldBeGreaterThanOrEqualTo, script[i-1].Minute)
			}
		})

		Convey("The drama beats are fixed regardless of seed", func() {
			goals := 0
			halftimes := 0
			for _, ev := range script {
				switch ev.EventType {
				case CommentaryGoal:
					goals++
					So(ev.Minute == 38 || ev.Minute == 85, ShouldBeTrue)
				case CommentaryHalftime:
					halftimes++
					So(ev.Minute, ShouldEqual, 45)
				}
			}
			So(goals, ShouldEqual, 2)
			So(halftimes, ShouldEqual, 1)
		})

		Convey("Every event type has commentary templates to draw from", func() {
			for _, ev := range script {
				So(len(commentaryTemplates[ev.EventType]), ShouldBeGreaterThan, 0)
			}
		})
	})
}

func TestParseSessionConfig(t *testing.T) {
	Convey("Query parameters map onto the simulation config", t, func() {
		req := httptest.NewRequest("GET", "/?home_team=AFC+Richmond&speed=2.5&excitement_level=8&seed=42", nil)
		cfg, err := parseSessionConfig(req.URL.Query())
		So(err, ShouldBeNil)
		So(cfg.HomeTeam, ShouldEqual, "AFC Richmond")
		So(cfg.Speed, ShouldEqual, 2.5)
		So(cfg.Excitement, ShouldEqual, 8)
		So(cfg.Seed, ShouldEqual, 42)

		Convey("Unparsable numbers are rejected", func() {
			req := httptest.NewRequest("GET", "/?speed=fast", nil)
			_, err := parseSessionConfig(req.URL.Query())
			So(err, ShouldNotBeNil)

			req = httptest.NewRequest("GET", "/?excitement_level=extreme", nil)
			_, err = parseSessionConfig(req.URL.Query())
			So(err, ShouldNotBeNil)
		})
	})
}

func TestStreamTestEndpoint(t *testing.T) {
	handler := newTestServer()
	// The stream paces its five messages in real time, so run it once.
	rec := doJSON(handler, "GET", "/api/v1/stream/test", nil)

	Convey("Given the SSE test stream output", t, func() {
		So(rec.Code, ShouldEqual, http.StatusOK)
		So(rec.Header().Get("Content-Type"), ShouldEqual, "text/event-stream")

		events := sseEvents(rec.Body.String())
		So(events, ShouldHaveLength, 5)
		for _, name := range events {
			So(name, ShouldEqual, "test")
		}
		So(rec.Body.String(), ShouldContainSubstring, `"sequence":1`)
		So(rec.Body.String(), ShouldContainSubstring, "Stream complete. You're all set!")
	})
}

func TestStreamPepTalkEndpoint(t *testing.T) {
	handler := newTestServer()
	// Paced in real time as well, one run only.
	rec := doJSON(handler, "GET", "/api/v1/stream/pep-talk", nil)

	Convey("Given a full pep talk stream", t, func() {
		So(rec.Code, ShouldEqual, http.StatusOK)

		events := sseEvents(rec.Body.String())
		So(events, ShouldHaveLength, len(pepTalkSegments))
		for _, name := range events {
			So(name, ShouldEqual, "pep_talk")
		}
		So(rec.Body.String(), ShouldContainSubstring, `"chunk_id":0`)
		So(rec.Body.String(), ShouldContainSubstring, `"is_final":true`)
		So(rec.Body.String(), ShouldContainSubstring, "I believe in you!")
	})
}

func TestStreamErrorPaths(t *testing.T) {
	handler := newTestServer()

	Convey("Given the streaming endpoints", t, func() {
		Convey("Commentary for an unknown match is a 404", func() {
			rec := doJSON(handler, "GET", "/api/v1/stream/commentary/no-such-game", nil)
			So(rec.Code, ShouldEqual, http.StatusNotFound)
			body := decodeBody(t, rec)
			So(body["error"], ShouldEqual, "Match Not Found")
		})

		Convey("A malformed speed on the live stream is a 400", func() {
			rec := doJSON(handler, "GET", "/api/v1/matches/live/stream?speed=banana", nil)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			body := decodeBody(t, rec)
			So(body["error"], ShouldEqual, "Invalid Simulation Config")
		})
	})
}
