package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/audit"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

// StockUseCase administra el alta, edición y baja de herramientas e insumos,
// dejando registro de cada operación en el historial y aplicando la guarda
// referencial antes de eliminar.
type StockUseCase struct {
	stockRepo   repository.StockRepository
	catalogRepo repository.CatalogRepository
	auditUC     *audit.UseCase
}

// NewStockUseCase construye el caso de uso de gestión de stock.
func NewStockUseCase(stockRepo repository.StockRepository, catalogRepo repository.CatalogRepository, auditUC *audit.UseCase) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo, catalogRepo: catalogRepo, auditUC: auditUC}
}

// StockInput entrada para crear o editar una herramienta/insumo.
type StockInput struct {
	Description string
	QtyGood     decimal.Decimal
	QtyRepair   decimal.Decimal
	QtyRetired  decimal.Decimal
	QtyLoaned   decimal.Decimal
	SubgroupID  string
	LocationID  string
}

func (in StockInput) validate() error {
	if in.Description == "" || in.SubgroupID == "" || in.LocationID == "" {
		return domain.ErrInvalidInput
	}
	for _, qty := range []decimal.Decimal{in.QtyGood, in.QtyRepair, in.QtyRetired, in.QtyLoaned} {
		if qty.IsNegative() {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// Create inserta una herramienta/insumo nueva y registra la inserción.
func (uc *StockUseCase) Create(ctx context.Context, actorID string, in StockInput) (*entity.StockItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	item := &entity.StockItem{
		ID:          uuid.New().String(),
		Description: in.Description,
		QtyGood:     in.QtyGood,
		QtyRepair:   in.QtyRepair,
		QtyRetired:  in.QtyRetired,
		QtyLoaned:   in.QtyLoaned,
		SubgroupID:  in.SubgroupID,
		LocationID:  in.LocationID,
		UpdatedAt:   time.Now(),
	}
	if err := uc.stockRepo.Create(item); err != nil {
		return nil, err
	}
	snapshot, err := uc.snapshot(item)
	if err != nil {
		return nil, err
	}
	if err := uc.auditUC.Append(ctx, actorID, entity.AuditOpInsert, entity.AuditKindStock, item.Description, nil, snapshot); err != nil {
		return nil, err
	}
	return item, nil
}

// Update edita los campos de una herramienta/insumo y registra la edición con
// los valores anteriores y los nuevos.
func (uc *StockUseCase) Update(ctx context.Context, actorID, id string, in StockInput) (*entity.StockItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	item, err := uc.stockRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	oldLabel := item.Description
	oldSnapshot, err := uc.snapshot(item)
	if err != nil {
		return nil, err
	}

	item.Description = in.Description
	item.QtyGood = in.QtyGood
	item.QtyRepair = in.QtyRepair
	item.QtyRetired = in.QtyRetired
	item.QtyLoaned = in.QtyLoaned
	item.SubgroupID = in.SubgroupID
	item.LocationID = in.LocationID
	item.UpdatedAt = time.Now()
	if err := uc.stockRepo.Update(item); err != nil {
		return nil, err
	}

	newSnapshot, err := uc.snapshot(item)
	if err != nil {
		return nil, err
	}
	// En ediciones la etiqueta nueva va primera en el snapshot nuevo.
	newValues := append([]string{item.Description}, newSnapshot...)
	if err := uc.auditUC.Append(ctx, actorID, entity.AuditOpEdit, entity.AuditKindStock, oldLabel, oldSnapshot, newValues); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete elimina una herramienta/insumo. Si tiene movimientos o seguimientos
// de reparación relacionados la eliminación se bloquea: primero hay que
// eliminar los registros relacionados.
func (uc *StockUseCase) Delete(ctx context.Context, actorID, id string) error {
	item, err := uc.stockRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrItemNotFound
	}
	hasDeps, err := uc.stockRepo.HasDependents(id)
	if err != nil {
		return err
	}
	if hasDeps {
		return domain.ErrReferentialBlock
	}
	snapshot, err := uc.snapshot(item)
	if err != nil {
		return err
	}
	if err := uc.auditUC.Append(ctx, actorID, entity.AuditOpDelete, entity.AuditKindStock, item.Description, snapshot, nil); err != nil {
		return err
	}
	return uc.stockRepo.Delete(id)
}

// Get devuelve una herramienta/insumo por id.
func (uc *StockUseCase) Get(ctx context.Context, id string) (*entity.StockItem, error) {
	item, err := uc.stockRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

// List busca herramientas/insumos por substring con filtro de ubicación.
func (uc *StockUseCase) List(ctx context.Context, search, locationID string, limit, offset int) ([]*entity.StockItem, error) {
	return uc.stockRepo.List(search, locationID, limit, offset)
}

// snapshot arma los valores posicionales del historial de stock: cantidades
// por estado y descripciones de grupo, subgrupo y ubicación.
func (uc *StockUseCase) snapshot(item *entity.StockItem) ([]string, error) {
	subgroup, err := uc.catalogRepo.GetSubgroupByID(item.SubgroupID)
	if err != nil {
		return nil, err
	}
	location, err := uc.catalogRepo.GetLocationByID(item.LocationID)
	if err != nil {
		return nil, err
	}
	groupLabel, subgroupLabel, locationLabel := "", "", ""
	if subgroup != nil {
		subgroupLabel = subgroup.Description
		group, err := uc.catalogRepo.GetGroupByID(subgroup.GroupID)
		if err != nil {
			return nil, err
		}
		if group != nil {
			groupLabel = group.Description
		}
	}
	if location != nil {
		locationLabel = location.Description
	}
	return []string{
		item.QtyGood.String(), item.QtyRepair.String(),
		item.QtyRetired.String(), item.QtyLoaned.String(),
		groupLabel, subgroupLabel, locationLabel,
	}, nil
}
