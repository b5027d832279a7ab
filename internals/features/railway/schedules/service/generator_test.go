package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dateTime(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}

func testTemplate(dep, arr time.Time) Template {
	return Template{
		Name:         "Night Express",
		Status:       "ON_TIME",
		DelayMinutes: 0,
		Departure:    dep,
		Arrival:      arr,
		TrainID:      uuid.New(),
		RouteID:      uuid.New(),
		Pricing:      map[string]float64{"First": 100, "Second": 50},
	}
}

func TestExpandSingleInstance(t *testing.T) {
	dep := dateTime(2024, time.March, 10, 9, 30)
	arr := dateTime(2024, time.March, 10, 12, 0)
	tpl := testTemplate(dep, arr)

	got := Expand(tpl, time.Time{}, time.Time{}, false)
	if len(got) != 1 {
		t.Fatalf("expected 1 instance, got %d", len(got))
	}
	if !got[0].ScheduleDepartureDate.Equal(dep) || !got[0].ScheduleArrivalDate.Equal(arr) {
		t.Errorf("single instance must keep template date-times unchanged, got %v -> %v",
			got[0].ScheduleDepartureDate, got[0].ScheduleArrivalDate)
	}
}

func TestExpandDailyCount(t *testing.T) {
	tpl := testTemplate(dateTime(2024, time.January, 1, 8, 0), dateTime(2024, time.January, 1, 11, 0))

	cases := []struct {
		start, end time.Time
		want       int
	}{
		{date(2024, time.January, 1), date(2024, time.January, 1), 1},
		{date(2024, time.January, 1), date(2024, time.January, 3), 3},
		{date(2024, time.January, 1), date(2024, time.January, 31), 31},
		{date(2024, time.February, 27), date(2024, time.March, 2), 5}, // leap year boundary
	}

	for _, tc := range cases {
		got := Expand(tpl, tc.start, tc.end, true)
		if len(got) != tc.want {
			t.Errorf("Expand(%s..%s) = %d instances, want %d",
				tc.start.Format("2006-01-02"), tc.end.Format("2006-01-02"), len(got), tc.want)
			continue
		}
		// distinct ascending calendar dates within [start, end]
		for i, inst := range got {
			d := inst.ScheduleDepartureDate
			wantDay := tc.start.AddDate(0, 0, i)
			if d.Year() != wantDay.Year() || d.YearDay() != wantDay.YearDay() {
				t.Errorf("instance %d on %s, want %s", i, d.Format("2006-01-02"), wantDay.Format("2006-01-02"))
			}
			if d.Hour() != 8 || d.Minute() != 0 {
				t.Errorf("instance %d lost template time-of-day: %v", i, d)
			}
		}
	}
}

func TestExpandEmptyRange(t *testing.T) {
	tpl := testTemplate(dateTime(2024, time.January, 1, 8, 0), dateTime(2024, time.January, 1, 11, 0))
	got := Expand(tpl, date(2024, time.January, 5), date(2024, time.January, 1), true)
	if len(got) != 0 {
		t.Fatalf("inverted range must produce zero instances, got %d", len(got))
	}
}

func TestExpandOvernightCorrection(t *testing.T) {
	// departure 23:00, arrival 01:00 -> every instance arrives exactly
	// 2h after departure, on the next calendar day
	tpl := testTemplate(dateTime(2024, time.June, 1, 23, 0), dateTime(2024, time.June, 1, 1, 0))

	got := Expand(tpl, date(2024, time.June, 1), date(2024, time.June, 7), true)
	if len(got) != 7 {
		t.Fatalf("expected 7 instances, got %d", len(got))
	}
	for i, inst := range got {
		diff := inst.ScheduleArrivalDate.Sub(inst.ScheduleDepartureDate)
		if diff != 2*time.Hour {
			t.Errorf("instance %d: arrival-departure = %v, want 2h", i, diff)
		}
		if inst.ScheduleArrivalDate.Day() != inst.ScheduleDepartureDate.Day()+1 {
			t.Errorf("instance %d: arrival not on next calendar day: %v -> %v",
				i, inst.ScheduleDepartureDate, inst.ScheduleArrivalDate)
		}
	}
}

func TestExpandMidnightArrivalRollsOver(t *testing.T) {
	// arrival exactly equal to departure also rolls over
	tpl := testTemplate(dateTime(2024, time.June, 1, 23, 0), dateTime(2024, time.June, 1, 23, 0))
	got := Expand(tpl, date(2024, time.June, 1), date(2024, time.June, 1), true)
	if len(got) != 1 {
		t.Fatalf("expected 1 instance, got %d", len(got))
	}
	if diff := got[0].ScheduleArrivalDate.Sub(got[0].ScheduleDepartureDate); diff != 24*time.Hour {
		t.Errorf("equal naive instants must advance arrival one day, diff = %v", diff)
	}
}

func TestExpandSameDayArrivalNeverShifted(t *testing.T) {
	// arrival strictly after departure on the same day stays put
	tpl := testTemplate(dateTime(2024, time.June, 1, 9, 0), dateTime(2024, time.June, 1, 17, 30))
	got := Expand(tpl, date(2024, time.June, 1), date(2024, time.June, 3), true)
	for i, inst := range got {
		if inst.ScheduleArrivalDate.Day() != inst.ScheduleDepartureDate.Day() {
			t.Errorf("instance %d shifted a same-day arrival: %v -> %v",
				i, inst.ScheduleDepartureDate, inst.ScheduleArrivalDate)
		}
		if diff := inst.ScheduleArrivalDate.Sub(inst.ScheduleDepartureDate); diff != 8*time.Hour+30*time.Minute {
			t.Errorf("instance %d: diff = %v, want 8h30m", i, diff)
		}
	}
}

func TestExpandSharesTrainAndRoute(t *testing.T) {
	tpl := testTemplate(dateTime(2024, time.January, 1, 8, 0), dateTime(2024, time.January, 1, 11, 0))

	got := Expand(tpl, date(2024, time.January, 1), date(2024, time.January, 3), true)
	if len(got) != 3 {
		t.Fatalf("expected 3 instances, got %d", len(got))
	}
	for i, inst := range got {
		if inst.ScheduleTrainID != tpl.TrainID || inst.ScheduleRouteID != tpl.RouteID {
			t.Errorf("instance %d does not share template train/route refs", i)
		}
		if inst.ScheduleName != tpl.Name || inst.ScheduleStatus != tpl.Status {
			t.Errorf("instance %d did not copy name/status", i)
		}
		if price, ok := inst.ClassPrice("First"); !ok || price != 100 {
			t.Errorf("instance %d pricing not copied: %v", i, inst.SchedulePricing)
		}
	}
}
