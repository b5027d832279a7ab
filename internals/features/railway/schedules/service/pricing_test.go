package service

import (
	"reflect"
	"testing"
)

func TestParseClassPricing(t *testing.T) {
	cases := []struct {
		name   string
		names  []string
		prices []string
		want   map[string]float64
	}{
		{
			name:   "blank name and blank price skipped",
			names:  []string{"First", "Second", ""},
			prices: []string{"100.00", "", "50.00"},
			want:   map[string]float64{"First": 100},
		},
		{
			name:   "malformed price skipped, later entries kept",
			names:  []string{"First", "Second", "Sleeper"},
			prices: []string{"abc", "75.50", "120"},
			want:   map[string]float64{"Second": 75.5, "Sleeper": 120},
		},
		{
			name:   "negative price skipped",
			names:  []string{"First"},
			prices: []string{"-10"},
			want:   map[string]float64{},
		},
		{
			name:   "length mismatch iterates to shorter side",
			names:  []string{"First", "Second", "Third"},
			prices: []string{"10"},
			want:   map[string]float64{"First": 10},
		},
		{
			name:   "duplicate name last write wins",
			names:  []string{"First", "First"},
			prices: []string{"10", "20"},
			want:   map[string]float64{"First": 20},
		},
		{
			name:   "names trimmed",
			names:  []string{"  First  "},
			prices: []string{" 42.5 "},
			want:   map[string]float64{"First": 42.5},
		},
		{
			name:   "both empty",
			names:  nil,
			prices: nil,
			want:   map[string]float64{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseClassPricing(tc.names, tc.prices)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ParseClassPricing(%v, %v) = %v, want %v", tc.names, tc.prices, got, tc.want)
			}
		})
	}
}

func TestPricingToJSONMap(t *testing.T) {
	m := PricingToJSONMap(map[string]float64{"First": 100})
	if v, ok := m["First"].(float64); !ok || v != 100 {
		t.Errorf("expected First=100 in jsonb map, got %v", m)
	}
	if got := PricingToJSONMap(nil); len(got) != 0 || got == nil {
		t.Errorf("nil pricing must encode as empty non-nil map, got %v", got)
	}
}
