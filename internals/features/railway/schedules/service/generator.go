package service

import (
	"time"

	"github.com/google/uuid"

	"raillink_backend/internals/features/railway/schedules/model"
)

// Template is the user-submitted base schedule a recurring series is
// derived from. Train and route ids are shared across every generated
// instance, never copied per day.
type Template struct {
	Name         string
	Status       string
	DelayMinutes int
	Departure    time.Time
	Arrival      time.Time
	TrainID      uuid.UUID
	RouteID      uuid.UUID
	Pricing      map[string]float64
}

// Expand materializes the schedule instances for a template.
//
// daily=false: exactly one instance with the template date-times
// unchanged. daily=true: one instance per calendar day from start to end
// inclusive, ascending; each day keeps the template's time-of-day for
// departure and arrival, and arrival rolls over to the next day when the
// naive arrival would not be after the naive departure (trips crossing
// midnight). An inverted range yields an empty slice; callers decide
// whether that is an error.
func Expand(tpl Template, start, end time.Time, daily bool) []model.ScheduleModel {
	if !daily {
		return []model.ScheduleModel{instance(tpl, tpl.Departure, tpl.Arrival)}
	}

	var out []model.ScheduleModel
	for d := dateOnly(start); !d.After(dateOnly(end)); d = d.AddDate(0, 0, 1) {
		dep := atTimeOfDay(d, tpl.Departure)
		arr := atTimeOfDay(d, tpl.Arrival)
		arr = correctOvernight(dep, arr)
		out = append(out, instance(tpl, dep, arr))
	}
	return out
}

// correctOvernight advances arrival by one calendar day when the naive
// arrival is not strictly after departure. Same-day arrivals already
// after departure are never shifted.
func correctOvernight(departure, arrival time.Time) time.Time {
	if !arrival.After(departure) {
		return arrival.AddDate(0, 0, 1)
	}
	return arrival
}

func instance(tpl Template, departure, arrival time.Time) model.ScheduleModel {
	return model.ScheduleModel{
		ScheduleName:          tpl.Name,
		ScheduleDepartureDate: departure,
		ScheduleArrivalDate:   arrival,
		ScheduleStatus:        tpl.Status,
		ScheduleDelayMinutes:  tpl.DelayMinutes,
		ScheduleTrainID:       tpl.TrainID,
		ScheduleRouteID:       tpl.RouteID,
		SchedulePricing:       PricingToJSONMap(tpl.Pricing),
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func atTimeOfDay(day, tod time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), 0, day.Location())
}
