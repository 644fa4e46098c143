package repository

import "github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"

// StockRepository define el puerto de persistencia del stock. Los contadores
// por estado solo se mutan dentro de transacciones (GetForUpdate + Update).
type StockRepository interface {
	Create(item *entity.StockItem) error
	GetByID(id string) (*entity.StockItem, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.StockItem, error)
	Update(item *entity.StockItem) error
	Delete(id string) error
	// List busca por substring en las columnas visibles, con filtro opcional
	// de ubicación.
	List(search, locationID string, limit, offset int) ([]*entity.StockItem, error)
	// HasDependents indica si el ítem tiene movimientos o seguimientos de
	// reparación relacionados (guarda referencial previa al borrado).
	HasDependents(id string) (bool, error)
}
