package notify

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/prasannardyy/Messmate/internal/schedule"
)

// MenuSource is the slice of the menu service the scheduler needs.
type MenuSource interface {
	Items(mess, dayKey, meal string) []string
}

// Scheduler fires a meal reminder at the start of each serving window.
// Weekday and weekend windows differ, so each window becomes its own cron
// entry restricted to the matching days of the week.
type Scheduler struct {
	cron     *cron.Cron
	service  *Service
	menus    MenuSource
	mess     string
	location *time.Location
}

func NewScheduler(service *Service, menus MenuSource, defaultMess, timezone string) (*Scheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone: %w", err)
	}

	s := &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		service:  service,
		menus:    menus,
		mess:     defaultMess,
		location: loc,
	}

	for _, spec := range reminderSpecs() {
		meal := spec.meal
		if _, err := s.cron.AddFunc(spec.expr, func() { s.remind(meal) }); err != nil {
			return nil, fmt.Errorf("add cron entry: %w", err)
		}
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log.Println("meal reminder scheduler started")
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// remind composes and broadcasts one meal reminder to subscribers who
// opted into meal reminders.
func (s *Scheduler) remind(meal string) {
	now := time.Now().In(s.location)
	items := s.menus.Items(s.mess, schedule.DayKey(now), strings.ToLower(meal))

	msg := ReminderMessage(meal, items)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sent, err := s.service.Broadcast(ctx, msg, func(p Preferences) bool {
		return p.MealReminders
	})
	if err != nil {
		log.Printf("%s reminder failed: %v", meal, err)
		return
	}
	log.Printf("%s reminder sent to %d subscribers", meal, sent)
}

// ReminderMessage builds the push payload for a meal, teasing the first
// few dishes when the menu is known.
func ReminderMessage(meal string, items []string) Message {
	body := fmt.Sprintf("Your %s is ready and waiting!", strings.ToLower(meal))
	if len(items) > 0 {
		preview := items
		if len(preview) > 3 {
			preview = preview[:3]
		}
		cleaned := make([]string, len(preview))
		for i, it := range preview {
			cleaned[i] = strings.ReplaceAll(it, "**", "")
		}
		body = fmt.Sprintf("On today's menu: %s", strings.Join(cleaned, ", "))
	}

	return Message{
		Title: fmt.Sprintf("%s Time!", meal),
		Body:  body,
		Tag:   "meal-reminder",
		Data:  map[string]string{"meal": strings.ToLower(meal)},
	}
}

type reminderSpec struct {
	meal string
	expr string
}

// reminderSpecs derives one cron entry per meal window from the serving
// tables: weekday windows fire Monday through Friday, weekend windows on
// Saturday and Sunday.
func reminderSpecs() []reminderSpec {
	// Anchor dates with known weekdays: a Monday and a Saturday.
	weekday := schedule.ForDate(time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC))
	weekend := schedule.ForDate(time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC))

	specs := make([]reminderSpec, 0, len(weekday)+len(weekend))
	for _, w := range weekday {
		specs = append(specs, reminderSpec{
			meal: w.Name,
			expr: fmt.Sprintf("%d %d * * MON-FRI", w.Start.Minute, w.Start.Hour),
		})
	}
	for _, w := range weekend {
		specs = append(specs, reminderSpec{
			meal: w.Name,
			expr: fmt.Sprintf("%d %d * * SAT,SUN", w.Start.Minute, w.Start.Hour),
		})
	}
	return specs
}
