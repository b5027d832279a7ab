package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"raillink_backend/internals/features/railway/schedules/model"
)

// fakeStore buffers writes and keeps them only when the whole batch
// succeeds, like a transaction would.
type fakeStore struct {
	rows   []model.ScheduleModel
	failAt int // 0 = never fail, n = fail while writing the n-th instance
}

func (s *fakeStore) CreateInstances(instances []model.ScheduleModel) error {
	var pending []model.ScheduleModel
	for i, inst := range instances {
		if s.failAt > 0 && i+1 == s.failAt {
			return errors.New("write failed")
		}
		pending = append(pending, inst)
	}
	s.rows = append(s.rows, pending...)
	return nil
}

func seriesTemplate() Template {
	return Template{
		Name:      "Night Express",
		Status:    model.StatusOnTime,
		Departure: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		Arrival:   time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		TrainID:   uuid.New(),
		RouteID:   uuid.New(),
		Pricing:   map[string]float64{"First": 100},
	}
}

func TestSaveSeriesDailyPersistsWholeRange(t *testing.T) {
	tpl := seriesTemplate()
	store := &fakeStore{}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	instances, err := SaveSeries(store, tpl, start, end, true)
	if err != nil {
		t.Fatalf("SaveSeries: %v", err)
	}
	if len(instances) != 3 {
		t.Fatalf("returned %d instances, want 3", len(instances))
	}
	if len(store.rows) != 3 {
		t.Fatalf("persisted %d rows, want 3", len(store.rows))
	}
	for _, row := range store.rows {
		if row.ScheduleTrainID != tpl.TrainID {
			t.Errorf("instance train = %s, want shared %s", row.ScheduleTrainID, tpl.TrainID)
		}
		if row.ScheduleRouteID != tpl.RouteID {
			t.Errorf("instance route = %s, want shared %s", row.ScheduleRouteID, tpl.RouteID)
		}
	}
}

func TestSaveSeriesMidBatchFailureKeepsNothing(t *testing.T) {
	tpl := seriesTemplate()
	store := &fakeStore{failAt: 2}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	instances, err := SaveSeries(store, tpl, start, end, true)
	if err == nil {
		t.Fatal("expected error from failing store")
	}
	if instances != nil {
		t.Errorf("expected no instances on failure, got %d", len(instances))
	}
	if len(store.rows) != 0 {
		t.Errorf("expected zero persisted rows after failure, got %d", len(store.rows))
	}
}

func TestSaveSeriesEmptyRangeWritesNothing(t *testing.T) {
	tpl := seriesTemplate()
	store := &fakeStore{}

	start := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	instances, err := SaveSeries(store, tpl, start, end, true)
	if err != nil {
		t.Fatalf("SaveSeries: %v", err)
	}
	if instances != nil || len(store.rows) != 0 {
		t.Errorf("inverted range must generate and persist nothing")
	}
}
