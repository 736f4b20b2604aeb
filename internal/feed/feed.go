// Package feed renders holidays, events and tasks as an iCalendar document.
package feed

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	"github.com/saulo-duarte/sambat-api/internal/access"
	"github.com/saulo-duarte/sambat-api/internal/event"
	"github.com/saulo-duarte/sambat-api/internal/holiday"
	"github.com/saulo-duarte/sambat-api/internal/nepcal"
	"github.com/saulo-duarte/sambat-api/internal/task"
)

const (
	productID = "-//sambat-api//Bikram Sambat Calendar//EN"
	uidDomain = "sambat-api"
	dateOnly  = "2006-01-02"
)

type HolidayLister interface {
	List(ctx context.Context, actor access.Actor, filter holiday.ListFilter) ([]holiday.HolidayResponse, error)
}

type EventLister interface {
	List(ctx context.Context, actor access.Actor, filter event.ListFilter) ([]event.EventResponse, error)
}

type TaskLister interface {
	List(ctx context.Context, actor access.Actor, filter task.TaskFilter) ([]task.TaskResponse, error)
}

type Builder struct {
	holidays HolidayLister
	events   EventLister
	tasks    TaskLister
	now      func() time.Time
}

func NewBuilder(holidays HolidayLister, events EventLister, tasks TaskLister) *Builder {
	return &Builder{holidays: holidays, events: events, tasks: tasks, now: time.Now}
}

// Build collects everything visible to actor. bsPrefix narrows holidays and
// events to a BS year or month and leaves tasks out.
func (b *Builder) Build(ctx context.Context, actor access.Actor, bsPrefix string) (*ical.Calendar, error) {
	stamp := b.now().UTC()

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, productID)
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")
	cal.Props.SetText("X-WR-CALNAME", "Bikram Sambat")

	holidays, err := b.holidays.List(ctx, actor, holiday.ListFilter{BSPrefix: bsPrefix})
	if err != nil {
		return nil, err
	}
	for _, h := range holidays {
		summary := h.Name
		if !h.IsPublic {
			summary += " (optional)"
		}
		cal.Children = append(cal.Children, allDayEvent("holiday-"+h.ID.String(), summary, "", "HOLIDAY", h.DateBS, h.DateAD, stamp))
	}

	events, err := b.events.List(ctx, actor, event.ListFilter{BSPrefix: bsPrefix})
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		cal.Children = append(cal.Children, allDayEvent("event-"+e.ID.String(), e.Title, e.Description, "EVENT", e.DateBS, e.DateAD, stamp))
	}

	if bsPrefix == "" {
		tasks, err := b.tasks.List(ctx, actor, task.TaskFilter{})
		if err != nil {
			return nil, err
		}
		for _, t := range tasks {
			cal.Children = append(cal.Children, todo(t, stamp))
		}
	}

	return cal, nil
}

func Encode(w io.Writer, cal *ical.Calendar) error {
	return ical.NewEncoder(w).Encode(cal)
}

func uid(kind string) string {
	return kind + "@" + uidDomain
}

func allDayEvent(id, summary, description, category string, bs, ad nepcal.Date, stamp time.Time) *ical.Component {
	ev := ical.NewEvent()
	ev.Props.SetText(ical.PropUID, uid(id))
	ev.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
	ev.Props.SetText(ical.PropSummary, summary)
	ev.Props.SetDate(ical.PropDateTimeStart, ad.Time())
	ev.Props.SetDate(ical.PropDateTimeEnd, ad.Time().AddDate(0, 0, 1))
	ev.Props.SetText(ical.PropCategories, category)
	ev.Props.SetText(ical.PropTransparency, "TRANSPARENT")

	bsLine := fmt.Sprintf("BS %s (%d %s %d)", bs.String(), bs.Day, monthName(bs.Month), bs.Year)
	if description != "" {
		description += "\n\n" + bsLine
	} else {
		description = bsLine
	}
	ev.Props.SetText(ical.PropDescription, description)
	ev.Props.SetText("X-BS-DATE", bs.String())

	return ev.Component
}

func todo(t task.TaskResponse, stamp time.Time) *ical.Component {
	comp := ical.NewComponent(ical.CompToDo)
	comp.Props.SetText(ical.PropUID, uid("task-"+t.ID.String()))
	comp.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
	comp.Props.SetText(ical.PropSummary, t.Title)
	if t.Description != "" {
		comp.Props.SetText(ical.PropDescription, t.Description)
	}
	if !t.StartDate.IsZero() {
		comp.Props.SetDate(ical.PropDateTimeStart, t.StartDate.Time)
	}
	if !t.DueDate.IsZero() {
		comp.Props.SetDate(ical.PropDue, t.DueDate.Time)
	}
	comp.Props.SetText(ical.PropStatus, todoStatus(t.Status))
	if t.Event != nil {
		comp.Props.SetText(ical.PropRelatedTo, uid("event-"+t.Event.String()))
	}
	return comp
}

func todoStatus(s task.TaskStatus) string {
	switch s {
	case task.StatusInProgress:
		return "IN-PROCESS"
	case task.StatusCompleted:
		return "COMPLETED"
	default:
		return "NEEDS-ACTION"
	}
}

func monthName(month int) string {
	if month < 1 || month > len(nepcal.MonthNames) {
		return ""
	}
	return nepcal.MonthNames[month-1]
}
