package main

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Webhook event types
const (
	EventTypeMatchCompleted        = "match.completed"
	EventTypeTeamMemberTransferred = "team_member.transferred"
)

var webhookEventTypes = []string{EventTypeMatchCompleted, EventTypeTeamMemberTransferred}

type webhookDeliveryResult struct {
	WebhookID  string `json:"webhook_id"`
	URL        string `json:"url"`
	Success    bool   `json:"success"`
	StatusCode int    `json:"status_code,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (s *Server) registerWebhook(w http.ResponseWriter, r *http.Request) {
	var reg WebhookRegistration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Request Body", err.Error())
		return
	}
	if !strings.HasPrefix(reg.URL, "http://") && !strings.HasPrefix(reg.URL, "https://") {
		writeError(w, http.StatusBadRequest, "Invalid Webhook URL",
			"Webhook URLs need to start with http:// or https://. Gotta know where to send the good news!")
		return
	}
	if len(reg.Events) == 0 {
		writeError(w, http.StatusBadRequest, "No Events Selected",
			"Pick at least one event type to subscribe to: "+strings.Join(webhookEventTypes, ", "))
		return
	}
	for _, ev := range reg.Events {
		known := false
		for _, candidate := range webhookEventTypes {
			if ev == candidate {
				known = true
				break
			}
		}
		if !known {
			writeError(w, http.StatusBadRequest, "Unknown Event Type",
				"Event type '"+ev+"' is not one we send. Supported: "+strings.Join(webhookEventTypes, ", "))
			return
		}
	}

	wh := s.store.RegisterWebhook(&reg)
	log.Printf("🪝 Registered webhook %s for %v -> %s", wh.ID, wh.Events, wh.URL)
	writeJSON(w, http.StatusCreated, map[string]any{
		"webhook": wh,
		"message": "Webhook registered successfully",
	})
}

func (s *Server) listWebhooks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"webhooks": s.store.ListWebhooks(),
	})
}

func (s *Server) getWebhook(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	wh, ok := s.store.GetWebhook(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Webhook Not Found",
			"Webhook '"+id+"' not found. It may have already been unregistered.")
		return
	}
	writeJSON(w, http.StatusOK, wh)
}

func (s *Server) deleteWebhook(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.store.DeleteWebhook(id); err != nil {
		writeError(w, http.StatusNotFound, "Webhook Not Found",
			"Webhook '"+id+"' not found. It may have already been unregistered.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// computeWebhookSignature signs "{id}.{timestamp}.{payload}" with the
// decoded whsec_ secret per the Standard Webhooks convention and returns
// the "v1,{base64}" signature string.
func computeWebhookSignature(msgID, payload, secret string, timestamp int64) (string, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, "whsec_"))
	if err != nil {
		return "", fmt.Errorf("decode webhook secret: %w", err)
	}
	mac := hmac.New(sha256.New, key)
	fmt.Fprintf(mac, "%s.%d.%s", msgID, timestamp, payload)
	return "v1," + base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

// samplePayload builds demo event data for the trigger endpoint.
func samplePayload(eventType string) map[string]any {
	if eventType == EventTypeMatchCompleted {
		return map[string]any{
			"match_id":             "match-" + uuid.NewString()[:8],
			"home_team_id":         "afc-richmond",
			"away_team_id":         "west-ham",
			"home_score":           2,
			"away_score":           1,
			"result":               "home_win",
			"match_type":           MatchLeague,
			"completed_at":         time.Now().UTC().Format(time.RFC3339),
			"man_of_the_match":     "Jamie Tartt",
			"lesson_learned":       "Every game is a chance to believe in something bigger than yourself.",
			"ted_post_match_quote": "You know what the happiest animal on Earth is? It's a goldfish. Y'know why? Got a 10-second memory.",
		}
	}
	return map[string]any{
		"team_member_id":     "tm-" + uuid.NewString()[:8],
		"character_id":       "dani-rojas",
		"character_name":     "Dani Rojas",
		"member_type":        "player",
		"transfer_type":      "joined",
		"team_id":            "afc-richmond",
		"team_name":          "AFC Richmond",
		"previous_team_id":   "guadalajara-fc",
		"previous_team_name": "Guadalajara FC",
		"transfer_fee_gbp":   "8000000.00",
		"ted_reaction":       "Football is life! And so is welcoming new friends to the family!",
	}
}

var webhookClient = &http.Client{Timeout: 10 * time.Second}

// deliverWebhook posts one signed event to one endpoint with the Standard
// Webhooks headers (webhook-id, webhook-timestamp, webhook-signature).
func deliverWebhook(wh *WebhookEndpoint, eventID, eventType string, data map[string]any) webhookDeliveryResult {
	result := webhookDeliveryResult{WebhookID: wh.ID, URL: wh.URL}

	body := map[string]any{
		"event_type": eventType,
		"event_id":   eventID,
		"created_at": time.Now().UTC().Format(time.RFC3339),
		"data":       data,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	timestamp := time.Now().Unix()
	signature, err := computeWebhookSignature(eventID, string(payload), wh.Secret, timestamp)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	req, err := http.NewRequest(http.MethodPost, wh.URL, bytes.NewReader(payload))
	if err != nil {
		result.Error = err.Error()
		return result
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("webhook-id", eventID)
	req.Header.Set("webhook-timestamp", fmt.Sprintf("%d", timestamp))
	req.Header.Set("webhook-signature", signature)

	resp, err := webhookClient.Do(req)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
	return result
}

// triggerWebhookEvent fires a sample event at every endpoint subscribed to
// the requested type.
func (s *Server) triggerWebhookEvent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EventType string `json:"event_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Request Body", err.Error())
		return
	}
	known := false
	for _, candidate := range webhookEventTypes {
		if req.EventType == candidate {
			known = true
			break
		}
	}
	if !known {
		writeError(w, http.StatusBadRequest, "Unknown Event Type",
			"Event type '"+req.EventType+"' is not one we send. Supported: "+strings.Join(webhookEventTypes, ", "))
		return
	}

	eventID := "evt_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:24]
	data := samplePayload(req.EventType)

	results := make([]webhookDeliveryResult, 0)
	for _, wh := range s.store.ListWebhooks() {
		if !wh.Active {
			continue
		}
		for _, ev := range wh.Events {
			if ev == req.EventType {
				results = append(results, deliverWebhook(wh, eventID, req.EventType, data))
				break
			}
		}
	}

	succeeded := 0
	for _, res := range results {
		if res.Success {
			succeeded++
		}
	}
	tedSays := "Every webhook got the message! That's what I call teamwork making the dream work!"
	switch {
	case len(results) == 0:
		tedSays = "No webhooks registered for this event type yet. But that's okay - every team starts somewhere!"
	case succeeded == 0:
		tedSays = "None of the webhooks responded successfully. But hey, be a goldfish - we'll try again!"
	case succeeded < len(results):
		tedSays = "Some webhooks received the message, some didn't. That's life - we learn and try again!"
	}

	log.Printf("🪝 Triggered %s (%s): %d/%d deliveries succeeded", req.EventType, eventID, succeeded, len(results))
	writeJSON(w, http.StatusOK, map[string]any{
		"event_id":       eventID,
		"event_type":     req.EventType,
		"deliveries":     results,
		"total_webhooks": len(results),
		"ted_says":       tedSays,
	})
}
