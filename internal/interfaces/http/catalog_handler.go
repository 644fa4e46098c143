package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/dto"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

// CatalogHandler listados de las tablas de referencia (protegido, sólo lectura).
type CatalogHandler struct {
	repo repository.CatalogRepository
}

// NewCatalogHandler construye el handler de catálogos.
func NewCatalogHandler(repo repository.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{repo: repo}
}

// ListGroups godoc
// @Summary      Listar grupos
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Substring sobre la descripción"
// @Success      200  {array}  dto.GroupResponse
// @Router       /api/catalogs/groups [get]
func (h *CatalogHandler) ListGroups(c *fiber.Ctx) error {
	groups, err := h.repo.ListGroups(c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.GroupResponse{ID: g.ID, Description: g.Description})
	}
	return c.JSON(out)
}

// ListSubgroups godoc
// @Summary      Listar subgrupos
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Substring sobre la descripción"
// @Param        group_id  query  string  false  "Filtrar por grupo"
// @Success      200  {array}  dto.SubgroupResponse
// @Router       /api/catalogs/subgroups [get]
func (h *CatalogHandler) ListSubgroups(c *fiber.Ctx) error {
	subgroups, err := h.repo.ListSubgroups(c.Query("search"), c.Query("group_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.SubgroupResponse, 0, len(subgroups))
	for _, s := range subgroups {
		out = append(out, dto.SubgroupResponse{ID: s.ID, Description: s.Description, GroupID: s.GroupID})
	}
	return c.JSON(out)
}

// ListLocations godoc
// @Summary      Listar ubicaciones
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Substring sobre la descripción"
// @Success      200  {array}  dto.LocationResponse
// @Router       /api/catalogs/locations [get]
func (h *CatalogHandler) ListLocations(c *fiber.Ctx) error {
	locations, err := h.repo.ListLocations(c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		out = append(out, dto.LocationResponse{ID: l.ID, Description: l.Description})
	}
	return c.JSON(out)
}

// ListClasses godoc
// @Summary      Listar clases
// @Tags         catalogs
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Substring sobre la descripción"
// @Param        category  query  string  false  "Filtrar por categoría: Alumnos, Personal, Usuarios"
// @Success      200  {array}  dto.ClassResponse
// @Router       /api/catalogs/classes [get]
func (h *CatalogHandler) ListClasses(c *fiber.Ctx) error {
	classes, err := h.repo.ListClasses(c.Query("search"), c.Query("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.ClassResponse, 0, len(classes))
	for _, cl := range classes {
		out = append(out, dto.ClassResponse{ID: cl.ID, Description: cl.Description, Category: cl.Category})
	}
	return c.JSON(out)
}
