package main

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	. "github.com/smartystreets/goconvey/convey"
)

func dialWS(t *testing.T, server *httptest.Server, path string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + path
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", path, err)
	}
	return conn
}

func readWSJSON(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(10 * time.Second))
	var msg map[string]any
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read message: %v", err)
	}
	return msg
}

func TestWSTestEndpoint(t *testing.T) {
	server := httptest.NewServer(newTestServer())
	defer server.Close()

	conn := dialWS(t, server, "/ws/test")
	defer conn.Close()

	welcome := readWSJSON(t, conn)
	if err := conn.WriteMessage(websocket.TextMessage, []byte("Barbecue sauce")); err != nil {
		t.Fatalf("write: %v", err)
	}
	echo := readWSJSON(t, conn)

	Convey("Given the WebSocket test endpoint", t, func() {
		Convey("The first frame is a welcome", func() {
			So(welcome["type"], ShouldEqual, "welcome")
			So(welcome["ted_says"], ShouldContainSubstring, "peanut butter")
		})

		Convey("Anything sent comes back as an echo", func() {
			So(echo["type"], ShouldEqual, "echo")
			So(echo["message"], ShouldEqual, "Barbecue sauce")
		})
	})
}

func TestWSLiveMatch(t *testing.T) {
	server := httptest.NewServer(newTestServer())
	defer server.Close()

	conn := dialWS(t, server, "/api/v1/matches/live?speed=10&excitement_level=5&seed=11")
	defer conn.Close()

	// Drain the whole match once; even at full speed it takes a few seconds.
	var messages []map[string]any
	sentPing := false
	for {
		conn.SetReadDeadline(time.Now().Add(30 * time.Second))
		var msg map[string]any
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read during match: %v", err)
		}
		messages = append(messages, msg)
		if !sentPing {
			sentPing = true
			if err := conn.WriteJSON(map[string]string{"action": "ping"}); err != nil {
				t.Fatalf("ping: %v", err)
			}
		}
		if msg["type"] == "match_end" {
			break
		}
	}

	Convey("Given a completed live match over WebSocket", t, func() {
		Convey("It opens with a match_start announcing the default fixture", func() {
			first := messages[0]
			So(first["type"], ShouldEqual, "match_start")
			So(first["home_team"], ShouldEqual, "AFC Richmond")
			So(first["away_team"], ShouldEqual, "West Ham United")
		})

		Convey("Every frame in between is a match event or a pong", func() {
			pongs := 0
			events := 0
			for _, msg := range messages[1 : len(messages)-1] {
				switch msg["type"] {
				case "pong":
					pongs++
				case "match_event":
					events++
				default:
					t.Errorf("unexpected frame type %v", msg["type"])
				}
			}
			So(pongs, ShouldEqual, 1)
			So(events, ShouldBeGreaterThan, 0)
		})

		Convey("Full time carries the final score and a standout performer", func() {
			last := messages[len(messages)-1]
			So(last["type"], ShouldEqual, "match_end")
			So(last["final_score"], ShouldNotBeNil)
			So(last["man_of_the_match"], ShouldNotBeEmpty)
			So(last["ted_post_match"], ShouldNotBeEmpty)
		})

		Convey("The server then closes the connection normally", func() {
			conn.SetReadDeadline(time.Now().Add(5 * time.Second))
			_, _, err := conn.ReadMessage()
			So(websocket.IsCloseError(err, websocket.CloseNormalClosure), ShouldBeTrue)
		})
	})
}

func TestWSLiveMatchInvalidConfig(t *testing.T) {
	server := httptest.NewServer(newTestServer())
	defer server.Close()

	conn := dialWS(t, server, "/api/v1/matches/live?speed=ludicrous")
	defer conn.Close()

	msg := readWSJSON(t, conn)

	Convey("A malformed config still upgrades, then reports a typed error", t, func() {
		So(msg["type"], ShouldEqual, "error")
		So(msg["code"], ShouldEqual, "invalid_config")
	})
}

func TestWSLiveMatchUnknownAction(t *testing.T) {
	server := httptest.NewServer(newTestServer())
	defer server.Close()

	conn := dialWS(t, server, "/api/v1/matches/live?speed=10&seed=3")
	defer conn.Close()

	if err := conn.WriteJSON(map[string]string{"action": "moonwalk"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var errFrame map[string]any
	for {
		conn.SetReadDeadline(time.Now().Add(30 * time.Second))
		var msg map[string]any
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read: %v", err)
		}
		if msg["type"] == "error" {
			errFrame = msg
			break
		}
		if msg["type"] == "match_end" {
			break
		}
	}

	Convey("An unrecognized control action gets an unknown_action error", t, func() {
		So(errFrame, ShouldNotBeNil)
		So(errFrame["code"], ShouldEqual, "unknown_action")
		So(errFrame["message"], ShouldContainSubstring, "ping")
	})
}
