package category

import (
	"context"
	"fmt"
	"time"

	"hospitality-concierge/internal/model"
	"hospitality-concierge/internal/slotfill"
	"hospitality-concierge/pkg/datemath"
	"hospitality-concierge/pkg/gcalendar"
	pkgLog "hospitality-concierge/pkg/log"
)

// Cleaning schedules a cleaning visit. When a calendar client is configured
// the visit is also booked on the operations calendar; booking failures are
// logged and the guest still gets the confirmation, since the request itself
// is recorded in the session.
type Cleaning struct {
	slotHandler
	dates      *datemath.Parser
	calendar   gcalendar.ICalendar // nil when no calendar is configured
	calendarID string
	property   string
	now        func() time.Time
}

// NewCleaning creates the cleaning handler. calendar may be nil.
func NewCleaning(engine *slotfill.Engine, dates *datemath.Parser, calendar gcalendar.ICalendar, calendarID, property string, l pkgLog.Logger) *Cleaning {
	h := &Cleaning{
		dates:      dates,
		calendar:   calendar,
		calendarID: calendarID,
		property:   property,
		now:        time.Now,
	}
	h.slotHandler = slotHandler{
		schema: slotfill.Schema{
			Category:     model.CategoryCleaning,
			Fields:       []string{FieldDate, FieldTime},
			Instructions: InstructionsCleaning,
		},
		engine:   engine,
		complete: h.schedule,
		l:        l,
	}
	return h
}

func (h *Cleaning) schedule(ctx context.Context, sess *model.Session, slots map[string]string) (string, error) {
	confirmation := fmt.Sprintf(
		localized(sess.Language, CleaningConfirmationES, CleaningConfirmationEN),
		slots[FieldDate], slots[FieldTime],
	)

	if h.calendar == nil {
		return confirmation, nil
	}

	day, err := h.dates.Parse(slots[FieldDate], h.now())
	if err != nil {
		h.l.Warnf(ctx, "%s: cannot resolve date %q, skipping calendar booking: %v", LogPrefixCleaning, slots[FieldDate], err)
		return confirmation, nil
	}

	hour, minute := h.dates.ParseTime(slots[FieldTime])
	start := h.dates.At(day, hour, minute)

	_, err = h.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  h.calendarID,
		Summary:     fmt.Sprintf("Cleaning visit - %s", h.property),
		Description: fmt.Sprintf("Requested by guest %s via concierge chat", sess.ID),
		Location:    h.property,
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Timezone:    start.Location().String(),
	})
	if err != nil {
		h.l.Warnf(ctx, "%s: calendar booking failed, confirmation still sent: %v", LogPrefixCleaning, err)
	}

	return confirmation, nil
}
