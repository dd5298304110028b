package ratings

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/prasannardyy/Messmate/internal/dish"
)

var (
	ErrMissingContext = errors.New("mess, day and meal are required")
	ErrEmptyItem      = errors.New("item name is empty")
)

// Publisher receives activity events for the live feed. Optional.
type Publisher interface {
	Broadcast(payload any)
}

type Service struct {
	repo Repository
	feed Publisher
	now  func() time.Time
}

func NewService(repo Repository, feed Publisher) *Service {
	return &Service{repo: repo, feed: feed, now: time.Now}
}

// Add merges one 1-5 vote into the running average for the item in its
// meal context. Out-of-range votes are clamped rather than rejected so a
// bad client cannot corrupt the mean. A user may vote repeatedly; every
// vote counts.
func (s *Service) Add(ctx context.Context, itemName string, userRating int, mess, day, meal string) (*Record, error) {
	if mess == "" || day == "" || meal == "" {
		return nil, ErrMissingContext
	}

	key, err := buildKey(itemName, mess, day, meal)
	if err != nil {
		return nil, err
	}

	if userRating < 1 {
		userRating = 1
	}
	if userRating > 5 {
		userRating = 5
	}

	existing, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	rec := Record{LastUpdated: s.now()}
	if existing == nil {
		rec.Rating = float64(userRating)
		rec.Count = 1
	} else {
		rec.Count = existing.Count + 1
		total := existing.Rating*float64(existing.Count) + float64(userRating)
		rec.Rating = round1(total / float64(rec.Count))
	}

	if err := s.repo.Put(ctx, key, rec); err != nil {
		return nil, err
	}

	if s.feed != nil {
		s.feed.Broadcast(Activity{
			Type:   "rating",
			Item:   itemName,
			Rating: userRating,
			Mess:   mess,
			Day:    day,
			Meal:   meal,
			At:     rec.LastUpdated,
		})
	}

	return &rec, nil
}

// Get returns the record for an item in its meal context, or nil when the
// item has never been rated.
func (s *Service) Get(ctx context.Context, itemName, mess, day, meal string) (*Record, error) {
	if mess == "" || day == "" || meal == "" {
		return nil, ErrMissingContext
	}

	key, err := buildKey(itemName, mess, day, meal)
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, key)
}

// Stats sums counts and weight-averages ratings across every key.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	var weighted float64
	for _, rec := range all {
		stats.TotalItems++
		stats.TotalRatings += rec.Count
		weighted += rec.Rating * float64(rec.Count)
	}
	if stats.TotalRatings > 0 {
		stats.AverageRating = round1(weighted / float64(stats.TotalRatings))
	}
	return stats, nil
}

// buildKey normalizes only the item name; mess, day and meal partition
// the data verbatim.
func buildKey(itemName, mess, day, meal string) (Key, error) {
	item := dish.Normalize(itemName)
	if item == "" {
		return Key{}, ErrEmptyItem
	}
	return Key{Mess: mess, Day: day, Meal: meal, Item: item}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
