package notify

import "time"

// Preferences controls which notification categories a subscriber gets.
type Preferences struct {
	MealReminders bool `json:"meal_reminders"`
	MenuUpdates   bool `json:"menu_updates"`
	SpecialMeals  bool `json:"special_meals"`
}

// DefaultPreferences matches the opt-in state of a fresh subscription.
func DefaultPreferences() Preferences {
	return Preferences{MealReminders: true, MenuUpdates: true, SpecialMeals: true}
}

// Subscription is one registered push target. Endpoint is whatever the
// pusher hands back at registration (an SNS endpoint ARN in production).
type Subscription struct {
	ID          string      `json:"id"`
	Platform    string      `json:"platform"`
	Endpoint    string      `json:"endpoint"`
	Preferences Preferences `json:"preferences"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Message is a push payload before transport encoding.
type Message struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Tag   string            `json:"tag"`
	Data  map[string]string `json:"data,omitempty"`
}
