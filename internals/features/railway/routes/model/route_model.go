package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type RouteModel struct {
	RouteID          uuid.UUID `gorm:"column:route_id;type:uuid;default:gen_random_uuid();primaryKey" json:"route_id"`
	RouteName        string    `gorm:"column:route_name;type:varchar(100);not null" json:"route_name"`
	RouteDescription string    `gorm:"column:route_description;type:text" json:"route_description"`

	// ordered station ids, serialized as a jsonb array
	RoutePath datatypes.JSON `gorm:"column:route_path;type:jsonb;not null;default:'[]'" json:"route_path"`

	RouteCreatedAt time.Time `gorm:"column:route_created_at;autoCreateTime" json:"route_created_at"`
	RouteUpdatedAt time.Time `gorm:"column:route_updated_at;autoUpdateTime" json:"route_updated_at"`
}

func (RouteModel) TableName() string {
	return "routes"
}

// PathStationIDs decodes the serialized path. A corrupt path decodes to
// an empty sequence rather than failing the read.
func (r RouteModel) PathStationIDs() []uuid.UUID {
	var raw []string
	if err := json.Unmarshal(r.RoutePath, &raw); err != nil {
		return nil
	}
	out := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		if id, err := uuid.Parse(s); err == nil {
			out = append(out, id)
		}
	}
	return out
}

// EncodePath serializes station ids in order.
func EncodePath(ids []uuid.UUID) datatypes.JSON {
	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.String())
	}
	b, _ := json.Marshal(raw)
	return datatypes.JSON(b)
}
