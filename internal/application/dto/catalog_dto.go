package dto

// GroupResponse un grupo del catálogo.
type GroupResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// SubgroupResponse un subgrupo del catálogo.
type SubgroupResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	GroupID     string `json:"group_id"`
}

// LocationResponse una ubicación física del pañol.
type LocationResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// ClassResponse una clase (curso o rol) con su categoría.
type ClassResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Category    string `json:"category"`
}
