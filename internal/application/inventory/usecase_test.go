package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/inventory"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	items map[string]entity.StockItem
}

func newFakeStockRepo(items ...*entity.StockItem) *fakeStockRepo {
	r := &fakeStockRepo{items: make(map[string]entity.StockItem)}
	for _, it := range items {
		r.items[it.ID] = *it
	}
	return r
}

func (r *fakeStockRepo) Create(item *entity.StockItem) error {
	r.items[item.ID] = *item
	return nil
}

func (r *fakeStockRepo) GetByID(id string) (*entity.StockItem, error) {
	if it, ok := r.items[id]; ok {
		copia := it
		return &copia, nil
	}
	return nil, nil
}

func (r *fakeStockRepo) GetForUpdate(id string) (*entity.StockItem, error) {
	return r.GetByID(id)
}

func (r *fakeStockRepo) Update(item *entity.StockItem) error {
	r.items[item.ID] = *item
	return nil
}

func (r *fakeStockRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeStockRepo) List(search, locationID string, limit, offset int) ([]*entity.StockItem, error) {
	return nil, nil
}

func (r *fakeStockRepo) HasDependents(id string) (bool, error) { return false, nil }

type fakeMovementRepo struct {
	created []*entity.Movement
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	copia := *m
	r.created = append(r.created, &copia)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.Movement, error) {
	for _, m := range r.created {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) List(f repository.MovementFilter) ([]*entity.Movement, error) {
	return r.created, nil
}

func (r *fakeMovementRepo) ListDebts(groupBy repository.DebtGroupBy, f repository.DebtFilter) ([]*repository.DebtRow, error) {
	return nil, nil
}

type fakeShiftRepo struct {
	open *entity.Shift
}

func (r *fakeShiftRepo) Create(s *entity.Shift) error            { r.open = s; return nil }
func (r *fakeShiftRepo) GetByID(id string) (*entity.Shift, error) { return nil, nil }
func (r *fakeShiftRepo) GetOpen() (*entity.Shift, error)          { return r.open, nil }
func (r *fakeShiftRepo) GetOpenForUpdate() (*entity.Shift, error) { return r.open, nil }
func (r *fakeShiftRepo) Close(id string, exitTime time.Time, closedBy string) error {
	r.open = nil
	return nil
}
func (r *fakeShiftRepo) List(search string, from, to *time.Time, limit, offset int) ([]*entity.Shift, error) {
	return nil, nil
}

type fakeRepairRepo struct {
	created []*entity.Repair
	failOn  bool // fuerza el fallo del segundo paso para probar todo-o-nada
}

func (r *fakeRepairRepo) Create(rep *entity.Repair) error {
	if r.failOn {
		return errors.New("fallo forzado")
	}
	r.created = append(r.created, rep)
	return nil
}

func (r *fakeRepairRepo) GetByID(id string) (*entity.Repair, error) { return nil, nil }
func (r *fakeRepairRepo) Close(id string, returnedAt time.Time) error { return nil }
func (r *fakeRepairRepo) List(search string, onlyOpen bool, limit, offset int) ([]*entity.Repair, error) {
	return r.created, nil
}

type fakePersonRepo struct {
	people map[string]*entity.Person
}

func newFakePersonRepo(people ...*entity.Person) *fakePersonRepo {
	r := &fakePersonRepo{people: make(map[string]*entity.Person)}
	for _, p := range people {
		r.people[p.ID] = p
	}
	return r
}

func (r *fakePersonRepo) Create(p *entity.Person) error { r.people[p.ID] = p; return nil }
func (r *fakePersonRepo) GetByID(id string) (*entity.Person, error) {
	return r.people[id], nil
}
func (r *fakePersonRepo) GetByNameAndClass(name, classID string) (*entity.Person, error) {
	return nil, nil
}
func (r *fakePersonRepo) Update(p *entity.Person) error { return nil }
func (r *fakePersonRepo) Delete(id string) error        { delete(r.people, id); return nil }
func (r *fakePersonRepo) List(f repository.PersonFilter) ([]*entity.Person, error) {
	return nil, nil
}
func (r *fakePersonRepo) HasDependents(id string) (bool, error) { return false, nil }

// fakeTxRunner emula la semántica todo-o-nada de una transacción: toma un
// snapshot del estado antes de ejecutar fn y lo restaura si fn falla.
type fakeTxRunner struct {
	stock    *fakeStockRepo
	movement *fakeMovementRepo
	shift    *fakeShiftRepo
	repair   *fakeRepairRepo
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	shiftRepo repository.ShiftRepository,
	repairRepo repository.RepairRepository,
) error) error {
	itemsAntes := make(map[string]entity.StockItem, len(tx.stock.items))
	for k, v := range tx.stock.items {
		itemsAntes[k] = v
	}
	movimientosAntes := len(tx.movement.created)
	reparacionesAntes := len(tx.repair.created)

	if err := fn(tx.movement, tx.stock, tx.shift, tx.repair); err != nil {
		tx.stock.items = itemsAntes
		tx.movement.created = tx.movement.created[:movimientosAntes]
		tx.repair.created = tx.repair.created[:reparacionesAntes]
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc       *inventory.RegisterMovementUseCase
	stock    *fakeStockRepo
	movement *fakeMovementRepo
	shift    *fakeShiftRepo
	repair   *fakeRepairRepo
}

func newFixture(t *testing.T, item *entity.StockItem, openShift *entity.Shift) *fixture {
	t.Helper()
	f := &fixture{
		stock:    newFakeStockRepo(item),
		movement: &fakeMovementRepo{},
		shift:    &fakeShiftRepo{open: openShift},
		repair:   &fakeRepairRepo{},
	}
	personRepo := newFakePersonRepo(&entity.Person{ID: "persona-1", Name: "Juan Pérez"})
	tx := &fakeTxRunner{stock: f.stock, movement: f.movement, shift: f.shift, repair: f.repair}
	f.uc = inventory.NewRegisterMovementUseCase(tx, personRepo)
	return f
}

func taladro(good int64) *entity.StockItem {
	return &entity.StockItem{
		ID:          "item-5",
		Description: "Taladro",
		QtyGood:     decimal.NewFromInt(good),
	}
}

func prestamo(qty int64) inventory.MovementInput {
	return inventory.MovementInput{
		UserID:      "usuario-1",
		StockItemID: "item-5",
		StateLabel:  "En Condiciones",
		Quantity:    decimal.NewFromInt(qty),
		PersonID:    "persona-1",
		Type:        entity.MovementTypeLend,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_PrestamoConTurnoAbierto(t *testing.T) {
	turno := &entity.Shift{ID: "turno-1", AttendantID: "persona-9", EntryTime: time.Now()}
	f := newFixture(t, taladro(10), turno)

	mov, err := f.uc.RegisterMovement(context.Background(), prestamo(3))
	require.NoError(t, err)

	item, _ := f.stock.GetByID("item-5")
	assert.True(t, item.QtyGood.Equal(decimal.NewFromInt(7)))
	assert.True(t, item.QtyLoaned.Equal(decimal.NewFromInt(3)))

	require.Len(t, f.movement.created, 1, "debe persistirse exactamente un movimiento")
	require.NotNil(t, mov.ShiftID)
	assert.Equal(t, "turno-1", *mov.ShiftID)
	assert.Equal(t, entity.StateGood, mov.State)
	assert.Equal(t, "usuario-1", mov.RecordedBy)
	assert.Empty(t, f.repair.created, "un préstamo no abre reparaciones")
}

// Sin turno abierto el movimiento queda atribuido al usuario que lo registró.
func TestRegisterMovement_SinTurnoAbierto(t *testing.T) {
	f := newFixture(t, taladro(10), nil)

	mov, err := f.uc.RegisterMovement(context.Background(), prestamo(3))
	require.NoError(t, err)
	assert.Nil(t, mov.ShiftID)
	assert.Equal(t, "usuario-1", mov.RecordedBy)
}

// Ejemplo de referencia: taladro con good=2; un préstamo de 2 lo deja en
// good=0/prestadas=2 y un segundo préstamo idéntico falla sin tocar nada.
func TestRegisterMovement_TaladroDosVeces(t *testing.T) {
	f := newFixture(t, taladro(2), nil)

	_, err := f.uc.RegisterMovement(context.Background(), prestamo(2))
	require.NoError(t, err)

	item, _ := f.stock.GetByID("item-5")
	assert.True(t, item.QtyGood.IsZero())
	assert.True(t, item.QtyLoaned.Equal(decimal.NewFromInt(2)))
	assert.Len(t, f.movement.created, 1)

	_, err = f.uc.RegisterMovement(context.Background(), prestamo(2))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	item, _ = f.stock.GetByID("item-5")
	assert.True(t, item.QtyGood.IsZero(), "good sigue en 0")
	assert.True(t, item.QtyLoaned.Equal(decimal.NewFromInt(2)), "prestadas sigue en 2")
	assert.Len(t, f.movement.created, 1, "el movimiento rechazado no se persiste")
}

// Todo-o-nada: si el segundo paso de la transacción falla (el alta de la
// reparación), el débito del stock también se revierte.
func TestRegisterMovement_RollbackCompleto(t *testing.T) {
	f := newFixture(t, taladro(10), nil)
	f.repair.failOn = true

	input := prestamo(4)
	input.Type = entity.MovementTypeSendToRepair

	_, err := f.uc.RegisterMovement(context.Background(), input)
	require.Error(t, err)

	item, _ := f.stock.GetByID("item-5")
	assert.True(t, item.QtyGood.Equal(decimal.NewFromInt(10)), "el débito debe revertirse")
	assert.True(t, item.QtyRepair.IsZero())
	assert.Empty(t, f.movement.created, "el movimiento debe revertirse")
}

func TestRegisterMovement_EnvioAReparacionAbreSeguimiento(t *testing.T) {
	f := newFixture(t, taladro(10), nil)

	input := prestamo(4)
	input.Type = entity.MovementTypeSendToRepair
	input.Description = "mecha trabada"

	mov, err := f.uc.RegisterMovement(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, f.repair.created, 1)
	rep := f.repair.created[0]
	assert.Equal(t, mov.ID, rep.MovementID)
	assert.Equal(t, "item-5", rep.StockItemID)
	assert.True(t, rep.Quantity.Equal(decimal.NewFromInt(4)))
	assert.Nil(t, rep.ReturnedAt)
	assert.Equal(t, "mecha trabada", rep.Notes)
}

func TestRegisterMovement_Rechazos(t *testing.T) {
	f := newFixture(t, taladro(10), nil)

	t.Run("cantidad no positiva", func(t *testing.T) {
		input := prestamo(0)
		_, err := f.uc.RegisterMovement(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	})

	t.Run("tipo desconocido", func(t *testing.T) {
		input := prestamo(1)
		input.Type = entity.MovementType(9)
		_, err := f.uc.RegisterMovement(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("estado desconocido", func(t *testing.T) {
		input := prestamo(1)
		input.StateLabel = "En Tránsito"
		_, err := f.uc.RegisterMovement(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("persona inexistente", func(t *testing.T) {
		input := prestamo(1)
		input.PersonID = "persona-99"
		_, err := f.uc.RegisterMovement(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrPersonNotFound)
	})

	t.Run("herramienta inexistente", func(t *testing.T) {
		input := prestamo(1)
		input.StockItemID = "item-99"
		_, err := f.uc.RegisterMovement(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})
}
