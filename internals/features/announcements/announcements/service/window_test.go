package service

import (
	"testing"
	"time"
)

func TestResolveWindowDefaults(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	s, e := ResolveWindow(nil, nil, now)
	if !s.Equal(now) {
		t.Errorf("start = %v, want %v", s, now)
	}
	if !e.Equal(now.Add(24 * time.Hour)) {
		t.Errorf("end = %v, want %v", e, now.Add(24*time.Hour))
	}
}

func TestResolveWindowExplicit(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	start := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	s, e := ResolveWindow(&start, &end, now)
	if !s.Equal(start) || !e.Equal(end) {
		t.Errorf("got (%v, %v), want (%v, %v)", s, e, start, end)
	}
}

func TestResolveWindowEndBeforeStart(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	start := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	s, e := ResolveWindow(&start, &end, now)
	if !s.Equal(start) {
		t.Errorf("start = %v, want %v", s, start)
	}
	if !e.Equal(start.Add(24 * time.Hour)) {
		t.Errorf("end = %v, want start+24h, got %v", e, e)
	}
}

func TestResolveWindowEndOnly(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	end := now.Add(72 * time.Hour)

	s, e := ResolveWindow(nil, &end, now)
	if !s.Equal(now) {
		t.Errorf("start = %v, want now", s)
	}
	if !e.Equal(end) {
		t.Errorf("end = %v, want %v", e, end)
	}
}
