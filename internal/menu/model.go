package menu

import "github.com/prasannardyy/Messmate/internal/schedule"

// Document is the published menu: mess → day key (monday..sunday) →
// meal name (lowercase) → ordered dish display strings. Dishes wrapped in
// **...** are specials; the marker is kept for display and stripped only
// when matching identities.
type Document map[string]map[string]map[string][]string

// CurrentMeal is a resolved serving window joined with its menu items.
type CurrentMeal struct {
	Mess   string              `json:"mess"`
	Day    string              `json:"day"`
	Meal   string              `json:"meal"`
	Window schedule.MealWindow `json:"window"`
	Items  []string            `json:"items"`
}
