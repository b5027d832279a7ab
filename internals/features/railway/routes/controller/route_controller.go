package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"raillink_backend/internals/features/railway/routes/dto"
	"raillink_backend/internals/features/railway/routes/model"
	stationModel "raillink_backend/internals/features/railway/stations/model"
	helper "raillink_backend/internals/helpers"
)

var validateRoute = validator.New()

type RouteController struct {
	DB *gorm.DB
}

func NewRouteController(db *gorm.DB) *RouteController {
	return &RouteController{DB: db}
}

// parsePath validates every entry resolves to an existing station.
// Archived stations stay referenceable: soft delete never breaks a path.
func (ctrl *RouteController) parsePath(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid station id in path: "+s)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return ids, nil
	}

	var count int64
	if err := ctrl.DB.Model(&stationModel.StationModel{}).
		Where("station_id IN ?", ids).
		Count(&count).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to verify stations")
	}
	if count != int64(len(uniqueIDs(ids))) {
		return nil, fiber.NewError(fiber.StatusNotFound, "One or more stations in path not found")
	}
	return ids, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

// =======================
// ➕ Create Route
// =======================
func (ctrl *RouteController) CreateRoute(c *fiber.Ctx) error {
	var body dto.CreateRouteRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.RouteName = strings.TrimSpace(body.RouteName)
	if err := validateRoute.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	ids, err := ctrl.parsePath(body.RoutePath)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	route := model.RouteModel{
		RouteName:        body.RouteName,
		RouteDescription: body.RouteDescription,
		RoutePath:        model.EncodePath(ids),
	}
	if err := ctrl.DB.Create(&route).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create route")
	}

	return helper.JsonCreated(c, "Route created", dto.ToRouteDTO(route))
}

// =======================
// 📄 Get All Routes
// =======================
func (ctrl *RouteController) GetAllRoutes(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.RouteModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count routes")
	}

	var routes []model.RouteModel
	if err := ctrl.DB.
		Order("route_name ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&routes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve routes")
	}

	resp := make([]dto.RouteDTO, 0, len(routes))
	for _, r := range routes {
		resp = append(resp, dto.ToRouteDTO(r))
	}

	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// =======================
// 🔍 Get Route by ID
// =======================
func (ctrl *RouteController) GetRouteByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var route model.RouteModel
	if err := ctrl.DB.First(&route, "route_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Route not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve route")
	}
	return helper.JsonOK(c, "", dto.ToRouteDTO(route))
}

// =======================
// ✏️ Update Route
// =======================
func (ctrl *RouteController) UpdateRoute(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateRouteRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateRoute.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var route model.RouteModel
	if err := ctrl.DB.First(&route, "route_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Route not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve route")
	}

	if body.RouteName != nil {
		route.RouteName = strings.TrimSpace(*body.RouteName)
	}
	if body.RouteDescription != nil {
		route.RouteDescription = *body.RouteDescription
	}
	if body.RoutePath != nil {
		ids, err := ctrl.parsePath(body.RoutePath)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		route.RoutePath = model.EncodePath(ids)
	}

	if err := ctrl.DB.Save(&route).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update route")
	}
	return helper.JsonUpdated(c, "Route updated", dto.ToRouteDTO(route))
}

// =======================
// 🗑️ Delete Route
// =======================
func (ctrl *RouteController) DeleteRoute(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.RouteModel{}, "route_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete route")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Route not found")
	}

	return helper.JsonDeleted(c, "Route deleted", fiber.Map{
		"route_id": id,
	})
}
