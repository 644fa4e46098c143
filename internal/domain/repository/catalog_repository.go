package repository

import "github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"

// CatalogRepository define los catálogos de solo lectura que alimentan los
// listados: grupos, subgrupos, ubicaciones y clases.
type CatalogRepository interface {
	ListGroups(search string) ([]*entity.Group, error)
	ListSubgroups(search, groupID string) ([]*entity.Subgroup, error)
	ListLocations(search string) ([]*entity.Location, error)
	ListClasses(search, category string) ([]*entity.Class, error)
	GetGroupByID(id string) (*entity.Group, error)
	GetSubgroupByID(id string) (*entity.Subgroup, error)
	GetLocationByID(id string) (*entity.Location, error)
	GetClassByID(id string) (*entity.Class, error)
}
