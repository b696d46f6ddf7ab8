package main

import (
	"context"
	"errors"
	"math/rand"
	"reflect"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

// recordingTransport captures every message a session sends. failAfter
// triggers a transport error once that many messages have gone through;
// zero means never fail.
type recordingTransport struct {
	msgs      []any
	failAfter int
}

func (t *recordingTransport) Send(msg any) error {
	if t.failAfter > 0 && len(t.msgs) >= t.failAfter {
		return errors.New("connection reset by peer")
	}
	t.msgs = append(t.msgs, msg)
	return nil
}

func (t *recordingTransport) eventsOfType(eventType string) []*LiveMatchEvent {
	var out []*LiveMatchEvent
	for _, msg := range t.msgs {
		if m, ok := msg.(MatchEventMessage); ok && m.Event.EventType == eventType {
			out = append(out, m.Event)
		}
	}
	return out
}

func TestSessionConfigNormalize(t *testing.T) {
	Convey("Given an empty config", t, func() {
		cfg := SessionConfig{}
		So(cfg.Normalize(), ShouldBeNil)

		Convey("Then defaults are applied", func() {
			So(cfg.HomeTeam, ShouldEqual, "AFC Richmond")
			So(cfg.AwayTeam, ShouldEqual, "West Ham United")
			So(cfg.Speed, ShouldEqual, 1.0)
			So(cfg.Excitement, ShouldEqual, 5)
			So(cfg.Seed, ShouldNotEqual, 0)
		})
	})

	Convey("Given out-of-range parameters", t, func() {
		cfg := SessionConfig{Speed: 99, Excitement: 42, Seed: 7}
		So(cfg.Normalize(), ShouldBeNil)

		Convey("Then they are clamped, not rejected", func() {
			So(cfg.Speed, ShouldEqual, MaxSpeed)
			So(cfg.Excitement, ShouldEqual, MaxExcitement)
		})
	})

	Convey("Given parameters below the minimum", t, func() {
		cfg := SessionConfig{Speed: 0.0001, Excitement: -3, Seed: 7}
		So(cfg.Normalize(), ShouldBeNil)
		So(cfg.Speed, ShouldEqual, MinSpeed)
		So(cfg.Excitement, ShouldEqual, MinExcitement)
	})
}

func TestPacingClock(t *testing.T) {
	Convey("Given a clock at maximum speed", t, func() {
		rng := rand.New(rand.NewSource(1))
		clock := newPacingClock(MaxSpeed, rng)

		Convey("Then every tick stays within the pacing bounds", func() {
			for i := 0; i < 200; i++ {
				d := clock.tickDelay()
				So(d, ShouldBeGreaterThanOrEqualTo, MinTickInterval)
				So(d, ShouldBeLessThanOrEqualTo, MaxTickInterval)
			}
		})
	})

	Convey("Given a clock at minimum speed", t, func() {
		rng := rand.New(rand.NewSource(1))
		clock := newPacingClock(MinSpeed, rng)

		Convey("Then long delays are capped at the ceiling", func() {
			So(clock.baseDelay(), ShouldEqual, MaxTickInterval)
			So(clock.breakDelay(), ShouldEqual, MaxTickInterval)
			for i := 0; i < 50; i++ {
				So(clock.tickDelay(), ShouldEqual, MaxTickInterval)
			}
		})
	})

	Convey("Given a normal-speed clock", t, func() {
		rng := rand.New(rand.NewSource(1))
		clock := newPacingClock(1.0, rng)

		Convey("Then tick jitter stays within half to one-and-a-half base", func() {
			for i := 0; i < 100; i++ {
				d := clock.tickDelay()
				So(d, ShouldBeGreaterThanOrEqualTo, 250*time.Millisecond)
				So(d, ShouldBeLessThanOrEqualTo, 750*time.Millisecond)
			}
		})
	})
}

func TestEventGeneratorDeterminism(t *testing.T) {
	Convey("Given two generators with the same seed", t, func() {
		cfg := SessionConfig{Seed: 42}
		So(cfg.Normalize(), ShouldBeNil)

		genA := newEventGenerator(cfg, rand.New(rand.NewSource(cfg.Seed)))
		genB := newEventGenerator(cfg, rand.New(rand.NewSource(cfg.Seed)))

		Convey("Then they produce identical event sequences", func() {
			for minute := 1; minute <= 90; minute++ {
				evA := genA.MinuteEvent(minute)
				evB := genB.MinuteEvent(minute)
				So(reflect.DeepEqual(evA, evB), ShouldBeTrue)
			}
			So(genA.score, ShouldResemble, genB.score)
			So(genA.StandoutPerformer(), ShouldEqual, genB.StandoutPerformer())
		})
	})
}

func TestEventGeneratorScoreConsistency(t *testing.T) {
	Convey("Given a full match of generated minutes", t, func() {
		cfg := SessionConfig{Excitement: 10, Seed: 99}
		So(cfg.Normalize(), ShouldBeNil)
		gen := newEventGenerator(cfg, rand.New(rand.NewSource(cfg.Seed)))

		scoringHome, scoringAway := 0, 0
		for minute := 1; minute <= 90; minute++ {
			ev := gen.MinuteEvent(minute)
			if ev == nil {
				continue
			}
			if ev.EventType == EventGoal || ev.EventType == EventPenaltyScored {
				if ev.Team == SideHome {
					scoringHome++
				} else {
					scoringAway++
				}
			}
		}

		Convey("Then the running score matches the scoring events", func() {
			So(gen.score.Home, ShouldEqual, scoringHome)
			So(gen.score.Away, ShouldEqual, scoringAway)
		})
	})
}

func TestEventGeneratorExcitementScaling(t *testing.T) {
	Convey("Given a dull match and a thriller with the same seed", t, func() {
		count := func(excitement int) int {
			cfg := SessionConfig{Excitement: excitement, Seed: 7}
			So(cfg.Normalize(), ShouldBeNil)
			gen := newEventGenerator(cfg, rand.New(rand.NewSource(cfg.Seed)))
			events := 0
			for minute := 1; minute <= 90; minute++ {
				if gen.MinuteEvent(minute) != nil {
					events++
				}
			}
			return events
		}

		Convey("Then higher excitement produces more events", func() {
			So(count(10), ShouldBeGreaterThan, count(1))
		})
	})
}

func TestStandoutPerformer(t *testing.T) {
	Convey("Given a scoreless match", t, func() {
		cfg := SessionConfig{Seed: 1}
		So(cfg.Normalize(), ShouldBeNil)
		gen := newEventGenerator(cfg, rand.New(rand.NewSource(cfg.Seed)))

		Convey("Then the home goalkeeper gets the nod for the clean sheet", func() {
			So(gen.StandoutPerformer(), ShouldEqual, "Zoreaux")
		})
	})

	Convey("Given the away side leads through one scorer", t, func() {
		cfg := SessionConfig{Seed: 1}
		So(cfg.Normalize(), ShouldBeNil)
		gen := newEventGenerator(cfg, rand.New(rand.NewSource(cfg.Seed)))
		gen.score.Away = 1
		gen.involvements["Marcus Sterling"] = 2

		Convey("Then the scorer is the standout", func() {
			So(gen.StandoutPerformer(), ShouldEqual, "Marcus Sterling")
		})
	})
}

func TestMatchSessionFullRun(t *testing.T) {
	// The simulation takes real time even at full speed, so run it once and
	// assert on the recorded messages.
	transport := &recordingTransport{}
	session, err := NewMatchSession("test-match", SessionConfig{Speed: MaxSpeed, Seed: 42}, transport)
	if err != nil {
		t.Fatalf("NewMatchSession: %v", err)
	}
	runErr := session.Run(context.Background())

	Convey("Given a session that ran at maximum speed", t, func() {
		Convey("Then the match runs to completion", func() {
			So(runErr, ShouldBeNil)
			So(session.State, ShouldEqual, SessionCompleted)
		})

		Convey("Then the stream opens with match_start and closes with match_end", func() {
			So(len(transport.msgs), ShouldBeGreaterThan, 2)
			start, ok := transport.msgs[0].(MatchStartMessage)
			So(ok, ShouldBeTrue)
			So(start.Type, ShouldEqual, "match_start")
			So(start.HomeTeam, ShouldEqual, "AFC Richmond")

			end, ok := transport.msgs[len(transport.msgs)-1].(MatchEndMessage)
			So(ok, ShouldBeTrue)
			So(end.Type, ShouldEqual, "match_end")
			So(end.FinalScore, ShouldResemble, session.Score())
			So(end.ManOfTheMatch, ShouldNotBeEmpty)
		})

		Convey("Then the match flow markers appear exactly once, in order", func() {
			So(len(transport.eventsOfType(EventMatchStart)), ShouldEqual, 1)
			So(len(transport.eventsOfType(EventHalftime)), ShouldEqual, 1)
			So(len(transport.eventsOfType(EventSecondHalfStart)), ShouldEqual, 1)
			So(len(transport.eventsOfType(EventAddedTime)), ShouldEqual, 1)
			So(len(transport.eventsOfType(EventMatchEnd)), ShouldEqual, 1)
		})

		Convey("Then event minutes never decrease", func() {
			last := 0
			for _, ev := range session.Events() {
				So(ev.Minute, ShouldBeGreaterThanOrEqualTo, last)
				last = ev.Minute
			}
		})

		Convey("Then possession always sums to one hundred", func() {
			for _, ev := range session.Events() {
				So(ev.Stats.PossessionHome+ev.Stats.PossessionAway, ShouldAlmostEqual, 100.0, 0.001)
			}
		})
	})
}

func TestMatchSessionCancellation(t *testing.T) {
	Convey("Given a slow session that gets cancelled", t, func() {
		transport := &recordingTransport{}
		session, err := NewMatchSession("slow-match", SessionConfig{Speed: MinSpeed, Seed: 42}, transport)
		So(err, ShouldBeNil)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- session.Run(ctx) }()

		time.Sleep(50 * time.Millisecond)
		cancel()

		Convey("Then the session aborts promptly without a match_end", func() {
			select {
			case err := <-done:
				So(err, ShouldEqual, context.Canceled)
			case <-time.After(3 * time.Second):
				t.Fatal("session did not stop after cancellation")
			}
			So(session.State, ShouldEqual, SessionAborted)
			for _, msg := range transport.msgs {
				_, isEnd := msg.(MatchEndMessage)
				So(isEnd, ShouldBeFalse)
			}
		})
	})
}

func TestMatchSessionTransportFailure(t *testing.T) {
	Convey("Given a transport that dies after the first message", t, func() {
		transport := &recordingTransport{failAfter: 1}
		session, err := NewMatchSession("doomed-match", SessionConfig{Speed: MaxSpeed, Seed: 42}, transport)
		So(err, ShouldBeNil)

		err = session.Run(context.Background())

		Convey("Then the session aborts with the transport error", func() {
			So(err, ShouldNotBeNil)
			So(session.State, ShouldEqual, SessionAborted)
			So(len(transport.msgs), ShouldEqual, 1)
		})
	})
}

func TestMatchSessionControl(t *testing.T) {
	Convey("Given a session with a queued ping", t, func() {
		transport := &recordingTransport{}
		session, err := NewMatchSession("ping-match", SessionConfig{Speed: MaxSpeed, Seed: 42}, transport)
		So(err, ShouldBeNil)

		session.Control <- []byte(`{"action": "ping"}`)
		So(session.Run(context.Background()), ShouldBeNil)

		Convey("Then exactly one pong comes back and no event is logged for it", func() {
			pongs := 0
			for _, msg := range transport.msgs {
				if _, ok := msg.(PongMessage); ok {
					pongs++
				}
			}
			So(pongs, ShouldEqual, 1)
		})
	})

	Convey("Given a session with an unrecognized control message", t, func() {
		transport := &recordingTransport{}
		session, err := NewMatchSession("confused-match", SessionConfig{Speed: MaxSpeed, Seed: 42}, transport)
		So(err, ShouldBeNil)

		session.Control <- []byte(`{"action": "moonwalk"}`)
		So(session.Run(context.Background()), ShouldBeNil)

		Convey("Then a typed error is sent and the match still completes", func() {
			var errCodes []string
			for _, msg := range transport.msgs {
				if e, ok := msg.(ErrorMessage); ok {
					errCodes = append(errCodes, e.Code)
				}
			}
			So(errCodes, ShouldResemble, []string{"unknown_action"})
			So(session.State, ShouldEqual, SessionCompleted)
		})
	})
}

func TestEventWeights(t *testing.T) {
	Convey("Given the weight table", t, func() {
		Convey("Then goal weight scales with excitement", func() {
			weightOf := func(excitement int) int {
				for _, w := range eventWeights(excitement) {
					if w.kind == EventGoal {
						return w.weight
					}
				}
				return 0
			}
			So(weightOf(1), ShouldEqual, 20)
			So(weightOf(5), ShouldEqual, 30)
			So(weightOf(10), ShouldEqual, 50)
		})

		Convey("Then possession changes stay the most common outcome", func() {
			weights := eventWeights(10)
			So(weights[0].kind, ShouldEqual, EventPossessionChange)
			for _, w := range weights[1:] {
				So(w.weight, ShouldBeLessThan, weights[0].weight)
			}
		})
	})
}
