package entity

// Group clasifica subgrupos de herramientas e insumos.
type Group struct {
	ID          string
	Description string
}

// Subgroup clasifica stock dentro de un grupo.
type Subgroup struct {
	ID          string
	Description string
	GroupID     string
}

// Location es una ubicación física del pañol.
type Location struct {
	ID          string
	Description string
}
