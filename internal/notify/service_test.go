package notify

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// --------------------------------------------------
// Mock pusher
// --------------------------------------------------

type mockPusher struct {
	sent    []string // endpoints that received a message
	failFor string   // endpoint that always fails
}

func (m *mockPusher) Register(ctx context.Context, platform, token string) (string, error) {
	return "arn:" + token, nil
}

func (m *mockPusher) Send(ctx context.Context, endpoint string, msg Message) error {
	if endpoint == m.failFor {
		return errors.New("endpoint disabled")
	}
	m.sent = append(m.sent, endpoint)
	return nil
}

// --------------------------------------------------
// Tests
// --------------------------------------------------

func TestSubscribeStoresRegisteredEndpoint(t *testing.T) {
	svc := NewService(NewInMemoryRepository(), &mockPusher{})

	sub, err := svc.Subscribe(context.Background(), "android", "tok-1", DefaultPreferences())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.ID == "" {
		t.Error("expected subscription id")
	}
	if sub.Endpoint != "arn:tok-1" {
		t.Errorf("expected registered endpoint, got %q", sub.Endpoint)
	}
}

func TestSubscribeRequiresToken(t *testing.T) {
	svc := NewService(NewInMemoryRepository(), &mockPusher{})

	if _, err := svc.Subscribe(context.Background(), "android", "", DefaultPreferences()); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestBroadcastHonorsPreferenceFilter(t *testing.T) {
	pusher := &mockPusher{}
	svc := NewService(NewInMemoryRepository(), pusher)
	ctx := context.Background()

	optedIn := DefaultPreferences()
	optedOut := DefaultPreferences()
	optedOut.MealReminders = false

	svc.Subscribe(ctx, "android", "in", optedIn)
	svc.Subscribe(ctx, "android", "out", optedOut)

	sent, err := svc.Broadcast(ctx, Message{Title: "Lunch Time!"}, func(p Preferences) bool {
		return p.MealReminders
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sent != 1 || len(pusher.sent) != 1 || pusher.sent[0] != "arn:in" {
		t.Fatalf("expected only the opted-in subscriber, sent=%d targets=%v", sent, pusher.sent)
	}
}

func TestBroadcastSkipsFailedEndpoints(t *testing.T) {
	pusher := &mockPusher{failFor: "arn:dead"}
	svc := NewService(NewInMemoryRepository(), pusher)
	ctx := context.Background()

	svc.Subscribe(ctx, "android", "dead", DefaultPreferences())
	svc.Subscribe(ctx, "android", "alive", DefaultPreferences())

	sent, err := svc.Broadcast(ctx, Message{Title: "Dinner Time!"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sent != 1 {
		t.Fatalf("expected one successful send, got %d", sent)
	}
}

func TestUnsubscribeRemovesEndpoint(t *testing.T) {
	pusher := &mockPusher{}
	svc := NewService(NewInMemoryRepository(), pusher)
	ctx := context.Background()

	sub, _ := svc.Subscribe(ctx, "android", "tok", DefaultPreferences())
	if err := svc.Unsubscribe(ctx, sub.Endpoint); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sent, _ := svc.Broadcast(ctx, Message{Title: "Snacks Time!"}, nil)
	if sent != 0 {
		t.Fatalf("expected no subscribers after unsubscribe, sent %d", sent)
	}
}

func TestReminderMessagePreview(t *testing.T) {
	msg := ReminderMessage("Breakfast", []string{"Idli", "**Vada**", "Sambar", "Tea"})

	if msg.Title != "Breakfast Time!" {
		t.Errorf("unexpected title %q", msg.Title)
	}
	if !strings.Contains(msg.Body, "Idli") || !strings.Contains(msg.Body, "Vada") {
		t.Errorf("expected menu preview in body, got %q", msg.Body)
	}
	if strings.Contains(msg.Body, "**") {
		t.Errorf("special markers must be stripped from the preview: %q", msg.Body)
	}
	if strings.Contains(msg.Body, "Tea") {
		t.Errorf("preview must cap at three items, got %q", msg.Body)
	}
}

func TestReminderMessageWithoutMenu(t *testing.T) {
	msg := ReminderMessage("Dinner", nil)
	if !strings.Contains(msg.Body, "dinner") {
		t.Errorf("expected generic body, got %q", msg.Body)
	}
}

func TestReminderSpecsCoverAllWindows(t *testing.T) {
	specs := reminderSpecs()
	if len(specs) != 8 {
		t.Fatalf("expected 8 cron entries (4 weekday + 4 weekend), got %d", len(specs))
	}

	var weekdayBreakfast, weekendBreakfast bool
	for _, s := range specs {
		switch s.expr {
		case "0 7 * * MON-FRI":
			weekdayBreakfast = true
		case "30 7 * * SAT,SUN":
			weekendBreakfast = true
		}
	}
	if !weekdayBreakfast || !weekendBreakfast {
		t.Errorf("breakfast entries missing: %+v", specs)
	}
}
