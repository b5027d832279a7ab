package model

import (
	"strings"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func TestScopeActiveFiltersArchived(t *testing.T) {
	db := newDryRunDB(t)

	var stations []StationModel
	stmt := db.Scopes(ScopeActive).Find(&stations).Statement

	sql := stmt.SQL.String()
	if !strings.Contains(sql, "station_archived") {
		t.Fatalf("active listing must filter on station_archived, got %q", sql)
	}

	bound := false
	for _, v := range stmt.Vars {
		if b, ok := v.(bool); ok && !b {
			bound = true
		}
	}
	if !bound {
		t.Errorf("expected station_archived bound to false, vars = %v", stmt.Vars)
	}
}

func TestLookupByIDResolvesArchived(t *testing.T) {
	db := newDryRunDB(t)

	var station StationModel
	stmt := db.Where("station_id = ?", "3f1c2e3a-0000-0000-0000-000000000000").
		Find(&station).Statement

	if strings.Contains(stmt.SQL.String(), "station_archived") {
		t.Errorf("by-id lookup must still resolve archived stations, got %q", stmt.SQL.String())
	}
}
