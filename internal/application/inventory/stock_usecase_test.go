package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appaudit "github.com/MaxAPBusiness/Proyecto-Taller/internal/application/audit"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/inventory"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

// fakeGuardedStockRepo permite simular registros dependientes por ítem.
type fakeGuardedStockRepo struct {
	*fakeStockRepo
	deps map[string]bool
}

func (r *fakeGuardedStockRepo) HasDependents(id string) (bool, error) {
	return r.deps[id], nil
}

type fakeCatalogRepo struct{}

func (r *fakeCatalogRepo) ListGroups(search string) ([]*entity.Group, error) { return nil, nil }
func (r *fakeCatalogRepo) ListSubgroups(search, groupID string) ([]*entity.Subgroup, error) {
	return nil, nil
}
func (r *fakeCatalogRepo) ListLocations(search string) ([]*entity.Location, error) { return nil, nil }
func (r *fakeCatalogRepo) ListClasses(search, category string) ([]*entity.Class, error) {
	return nil, nil
}
func (r *fakeCatalogRepo) GetGroupByID(id string) (*entity.Group, error) {
	return &entity.Group{ID: id, Description: "Herramientas"}, nil
}
func (r *fakeCatalogRepo) GetSubgroupByID(id string) (*entity.Subgroup, error) {
	return &entity.Subgroup{ID: id, Description: "Manuales", GroupID: "g-1"}, nil
}
func (r *fakeCatalogRepo) GetLocationByID(id string) (*entity.Location, error) {
	return &entity.Location{ID: id, Description: "Estante 3"}, nil
}
func (r *fakeCatalogRepo) GetClassByID(id string) (*entity.Class, error) {
	return nil, nil
}

type fakeAuditRepo struct {
	entries []*entity.AuditEntry
}

func (r *fakeAuditRepo) Create(e *entity.AuditEntry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *fakeAuditRepo) List(f repository.AuditFilter) ([]*entity.AuditEntry, error) {
	return r.entries, nil
}

func newStockFixture(items ...*entity.StockItem) (*inventory.StockUseCase, *fakeGuardedStockRepo, *fakeAuditRepo) {
	stockRepo := &fakeGuardedStockRepo{
		fakeStockRepo: newFakeStockRepo(items...),
		deps:          make(map[string]bool),
	}
	auditRepo := &fakeAuditRepo{}
	uc := inventory.NewStockUseCase(stockRepo, &fakeCatalogRepo{}, appaudit.NewUseCase(auditRepo))
	return uc, stockRepo, auditRepo
}

func TestStockCreate_RegistraInsercionEnHistorial(t *testing.T) {
	uc, repo, auditRepo := newStockFixture()

	item, err := uc.Create(context.Background(), "usuario-1", inventory.StockInput{
		Description: "Martillo",
		QtyGood:     decimal.NewFromInt(10),
		SubgroupID:  "sg-1",
		LocationID:  "ubi-1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, item.ID)

	guardado, _ := repo.GetByID(item.ID)
	require.NotNil(t, guardado)
	assert.True(t, guardado.QtyGood.Equal(decimal.NewFromInt(10)))

	require.Len(t, auditRepo.entries, 1)
	e := auditRepo.entries[0]
	assert.Equal(t, entity.AuditKindStock, e.Kind)
	assert.Equal(t, entity.AuditOpInsert, e.Operation)
	assert.Equal(t, "Martillo", e.EntityLabel)
	assert.Equal(t, "10;0;0;0;Herramientas;Manuales;Estante 3", e.NewValues)
}

func TestStockCreate_ValidaEntrada(t *testing.T) {
	uc, _, _ := newStockFixture()

	_, err := uc.Create(context.Background(), "usuario-1", inventory.StockInput{
		Description: "", SubgroupID: "sg-1", LocationID: "ubi-1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), "usuario-1", inventory.StockInput{
		Description: "Martillo",
		QtyGood:     decimal.NewFromInt(-1),
		SubgroupID:  "sg-1", LocationID: "ubi-1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidades negativas se rechazan")
}

func TestStockUpdate_SnapshotConEtiquetaNueva(t *testing.T) {
	uc, _, auditRepo := newStockFixture(&entity.StockItem{
		ID:          "item-1",
		Description: "Martillo",
		QtyGood:     decimal.NewFromInt(10),
		SubgroupID:  "sg-1",
		LocationID:  "ubi-1",
	})

	_, err := uc.Update(context.Background(), "usuario-1", "item-1", inventory.StockInput{
		Description: "Martillo de bola",
		QtyGood:     decimal.NewFromInt(8),
		SubgroupID:  "sg-1",
		LocationID:  "ubi-1",
	})
	require.NoError(t, err)

	require.Len(t, auditRepo.entries, 1)
	e := auditRepo.entries[0]
	assert.Equal(t, entity.AuditOpEdit, e.Operation)
	assert.Equal(t, "Martillo", e.EntityLabel, "la etiqueta vieja identifica la entrada")
	assert.Equal(t, "10;0;0;0;Herramientas;Manuales;Estante 3", e.OldValues)
	// La etiqueta nueva va primera en el snapshot nuevo.
	assert.Equal(t, "Martillo de bola;8;0;0;0;Herramientas;Manuales;Estante 3", e.NewValues)
}

func TestStockDelete_GuardaReferencial(t *testing.T) {
	uc, repo, auditRepo := newStockFixture(&entity.StockItem{
		ID:          "item-1",
		Description: "Martillo",
		SubgroupID:  "sg-1",
		LocationID:  "ubi-1",
	})
	repo.deps["item-1"] = true

	err := uc.Delete(context.Background(), "usuario-1", "item-1")
	assert.ErrorIs(t, err, domain.ErrReferentialBlock)

	guardado, _ := repo.GetByID("item-1")
	assert.NotNil(t, guardado, "el ítem bloqueado no se elimina")
	assert.Empty(t, auditRepo.entries, "una eliminación bloqueada no registra historial")
}

func TestStockDelete_SinDependientes(t *testing.T) {
	uc, repo, auditRepo := newStockFixture(&entity.StockItem{
		ID:          "item-1",
		Description: "Martillo",
		SubgroupID:  "sg-1",
		LocationID:  "ubi-1",
	})

	require.NoError(t, uc.Delete(context.Background(), "usuario-1", "item-1"))

	guardado, _ := repo.GetByID("item-1")
	assert.Nil(t, guardado)

	require.Len(t, auditRepo.entries, 1)
	assert.Equal(t, entity.AuditOpDelete, auditRepo.entries[0].Operation)
}

func TestStockDelete_ItemInexistente(t *testing.T) {
	uc, _, _ := newStockFixture()
	err := uc.Delete(context.Background(), "usuario-1", "item-99")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}
