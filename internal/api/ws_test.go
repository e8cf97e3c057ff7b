package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"pitchhub/internal/models"
	"pitchhub/internal/ws"
)

// TestOfferFeedDeliversNewOffers subscribes the pitch owner to the live feed
// and checks a freshly made offer arrives as an event.
func TestOfferFeedDeliversNewOffers(t *testing.T) {
	r, hub := setupRouter(t)
	startup := register(t, r, "Ava", "ava@x.com", models.RoleStartup)
	admin := register(t, r, "Root", "root@x.com", models.RoleAdmin)
	bo := register(t, r, "Bo", "bo@x.com", models.RoleInvestor)

	doJSON(t, r, http.MethodPost, "/api/pitches", startup, gin.H{
		"name": "Nimbus", "pitch_text": "weather drones", "money_requested": 100000,
	})
	doJSON(t, r, http.MethodPost, "/api/pitches/1/decision", admin, gin.H{"action": "approve"})

	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws/pitches/1/offers"
	header := http.Header{"Authorization": []string{"Bearer " + startup}}
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	if err != nil {
		t.Fatalf("Dial failed: %v (resp %+v)", err, resp)
	}
	defer conn.Close()

	// Wait for the server side to finish registering the subscription.
	deadline := time.Now().Add(2 * time.Second)
	for hub.Subscribers(1) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("Subscription never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	if w := doJSON(t, r, http.MethodPost, "/api/offers", bo, gin.H{"pitch_id": 1, "amount_offered": 50000}); w.Code != http.StatusCreated {
		t.Fatalf("Offer failed: %d %s", w.Code, w.Body.String())
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage failed: %v", err)
	}

	var event ws.OfferEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		t.Fatalf("Failed to decode event: %v", err)
	}
	if event.Type != "offer_created" {
		t.Errorf("Event type = %q, want offer_created", event.Type)
	}
	if event.PitchID != 1 || event.Offer.AmountOffered != 50000 {
		t.Errorf("Event payload wrong: %+v", event)
	}
}

// TestOfferFeedReportsDecidedStatus checks decision events carry the offer
// in its post-decision state, not the pending snapshot it was loaded in.
func TestOfferFeedReportsDecidedStatus(t *testing.T) {
	r, hub := setupRouter(t)
	startup := register(t, r, "Ava", "ava@x.com", models.RoleStartup)
	admin := register(t, r, "Root", "root@x.com", models.RoleAdmin)
	bo := register(t, r, "Bo", "bo@x.com", models.RoleInvestor)

	doJSON(t, r, http.MethodPost, "/api/pitches", startup, gin.H{
		"name": "Nimbus", "pitch_text": "weather drones", "money_requested": 100000,
	})
	doJSON(t, r, http.MethodPost, "/api/pitches/1/decision", admin, gin.H{"action": "approve"})
	doJSON(t, r, http.MethodPost, "/api/offers", bo, gin.H{"pitch_id": 1, "amount_offered": 50000})

	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws/pitches/1/offers"
	header := http.Header{"Authorization": []string{"Bearer " + startup}}
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	if err != nil {
		t.Fatalf("Dial failed: %v (resp %+v)", err, resp)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.Subscribers(1) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("Subscription never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	if w := doJSON(t, r, http.MethodPost, "/api/offers/1/accept", startup, nil); w.Code != http.StatusOK {
		t.Fatalf("Accept failed: %d %s", w.Code, w.Body.String())
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage failed: %v", err)
	}

	var event ws.OfferEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		t.Fatalf("Failed to decode event: %v", err)
	}
	if event.Type != "offer_accepted" {
		t.Errorf("Event type = %q, want offer_accepted", event.Type)
	}
	if event.Offer.Status != models.OfferStatusAccepted {
		t.Errorf("Event offer status = %q, want accepted", event.Offer.Status)
	}
}

// TestOfferFeedForbiddenForStrangers keeps the feed private to the owner.
func TestOfferFeedForbiddenForStrangers(t *testing.T) {
	r, _ := setupRouter(t)
	startup := register(t, r, "Ava", "ava@x.com", models.RoleStartup)
	admin := register(t, r, "Root", "root@x.com", models.RoleAdmin)
	bo := register(t, r, "Bo", "bo@x.com", models.RoleInvestor)

	doJSON(t, r, http.MethodPost, "/api/pitches", startup, gin.H{
		"name": "Nimbus", "pitch_text": "weather drones", "money_requested": 100000,
	})
	doJSON(t, r, http.MethodPost, "/api/pitches/1/decision", admin, gin.H{"action": "approve"})

	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws/pitches/1/offers"
	header := http.Header{"Authorization": []string{"Bearer " + bo}}
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	if err == nil {
		t.Fatal("Stranger dial succeeded")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Errorf("Expected 403 handshake refusal, got %+v", resp)
	}
}
