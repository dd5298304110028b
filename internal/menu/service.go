package menu

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/prasannardyy/Messmate/internal/schedule"
)

// Service serves menu lookups from a cached copy of the document. Every
// lookup on a missing mess, day or meal returns empty data, never an
// error; the app treats "no menu" as a normal state.
type Service struct {
	mu   sync.RWMutex
	repo Repository
	doc  Document
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, doc: Document{}}
}

// Reload replaces the cached document from the repository.
func (s *Service) Reload(ctx context.Context) error {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
	return nil
}

// Messes lists the known dining halls, sorted.
func (s *Service) Messes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.doc))
	for mess := range s.doc {
		out = append(out, mess)
	}
	sort.Strings(out)
	return out
}

// Day returns all meals for one mess and day key. Missing lookups yield
// an empty map.
func (s *Service) Day(mess, dayKey string) map[string][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	days, ok := s.doc[mess]
	if !ok {
		return map[string][]string{}
	}
	meals, ok := days[strings.ToLower(dayKey)]
	if !ok {
		return map[string][]string{}
	}

	out := make(map[string][]string, len(meals))
	for meal, items := range meals {
		out[meal] = append([]string(nil), items...)
	}
	return out
}

// Items returns the ordered dishes for one meal, or an empty slice.
func (s *Service) Items(mess, dayKey, meal string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	days, ok := s.doc[mess]
	if !ok {
		return []string{}
	}
	meals, ok := days[strings.ToLower(dayKey)]
	if !ok {
		return []string{}
	}
	items, ok := meals[strings.ToLower(meal)]
	if !ok {
		return []string{}
	}
	return append([]string(nil), items...)
}

// Current resolves the meal being served (or up next) and joins it with
// the menu for the given mess.
func (s *Service) Current(mess string, now time.Time) (CurrentMeal, error) {
	pos, err := schedule.ResolveCurrentOrNext(now, 0)
	if err != nil {
		return CurrentMeal{}, err
	}

	window := schedule.ForDate(now)[pos.MealIndex]
	dayKey := schedule.DayKey(now)

	return CurrentMeal{
		Mess:   mess,
		Day:    dayKey,
		Meal:   window.Name,
		Window: window,
		Items:  s.Items(mess, dayKey, window.Name),
	}, nil
}
