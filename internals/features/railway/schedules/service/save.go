package service

import (
	"time"

	"raillink_backend/internals/features/railway/schedules/model"
)

// InstanceStore persists a generated series atomically: either every
// instance is kept or none is.
type InstanceStore interface {
	CreateInstances(instances []model.ScheduleModel) error
}

// SaveSeries expands the template over the range and hands the whole
// batch to the store in one call. On store failure nothing is returned;
// the store guarantees nothing was kept.
func SaveSeries(store InstanceStore, tpl Template, start, end time.Time, daily bool) ([]model.ScheduleModel, error) {
	instances := Expand(tpl, start, end, daily)
	if len(instances) == 0 {
		return nil, nil
	}
	if err := store.CreateInstances(instances); err != nil {
		return nil, err
	}
	return instances, nil
}
