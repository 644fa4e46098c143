package shift_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/shift"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/entity"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeShiftRepo struct {
	open   *entity.Shift
	closed []*entity.Shift
}

func (r *fakeShiftRepo) Create(s *entity.Shift) error             { r.open = s; return nil }
func (r *fakeShiftRepo) GetByID(id string) (*entity.Shift, error) { return nil, nil }
func (r *fakeShiftRepo) GetOpen() (*entity.Shift, error)          { return r.open, nil }
func (r *fakeShiftRepo) GetOpenForUpdate() (*entity.Shift, error) { return r.open, nil }

func (r *fakeShiftRepo) Close(id string, exitTime time.Time, closedBy string) error {
	if r.open == nil || r.open.ID != id {
		return domain.ErrShiftNotFound
	}
	r.open.ExitTime = &exitTime
	r.open.ClosedBy = &closedBy
	r.closed = append(r.closed, r.open)
	r.open = nil
	return nil
}

func (r *fakeShiftRepo) List(search string, from, to *time.Time, limit, offset int) ([]*entity.Shift, error) {
	return r.closed, nil
}

type fakePersonRepo struct {
	people map[string]*entity.Person
}

func (r *fakePersonRepo) Create(p *entity.Person) error { return nil }
func (r *fakePersonRepo) GetByID(id string) (*entity.Person, error) {
	return r.people[id], nil
}
func (r *fakePersonRepo) GetByNameAndClass(name, classID string) (*entity.Person, error) {
	return nil, nil
}
func (r *fakePersonRepo) Update(p *entity.Person) error { return nil }
func (r *fakePersonRepo) Delete(id string) error        { return nil }
func (r *fakePersonRepo) List(f repository.PersonFilter) ([]*entity.Person, error) {
	return nil, nil
}
func (r *fakePersonRepo) HasDependents(id string) (bool, error) { return false, nil }

type fakeTxRunner struct {
	mu        sync.Mutex
	shiftRepo *fakeShiftRepo
}

// RunShift reproduce la semántica del runner real: las transacciones de
// turnos corren de a una (advisory lock transaccional) y un error revierte
// lo hecho dentro de la transacción.
func (tx *fakeTxRunner) RunShift(ctx context.Context, fn func(shiftRepo repository.ShiftRepository) error) error {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	antes := tx.shiftRepo.open
	if err := fn(tx.shiftRepo); err != nil {
		tx.shiftRepo.open = antes
		return err
	}
	return nil
}

func newUseCase() (*shift.UseCase, *fakeShiftRepo) {
	shiftRepo := &fakeShiftRepo{}
	personRepo := &fakePersonRepo{people: map[string]*entity.Person{
		"panolero-1": {ID: "panolero-1", Name: "Carlos Ruiz"},
	}}
	uc := shift.NewUseCase(&fakeTxRunner{shiftRepo: shiftRepo}, shiftRepo, personRepo)
	return uc, shiftRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestOpenShift_AbreTurnoNuevo(t *testing.T) {
	uc, repo := newUseCase()

	s, err := uc.OpenShift(context.Background(), "panolero-1")
	require.NoError(t, err)
	assert.Equal(t, "panolero-1", s.AttendantID)
	assert.Nil(t, s.ExitTime)
	assert.True(t, s.Open())
	assert.Equal(t, s, repo.open)
}

func TestOpenShift_FallaSiYaHayTurnoAbierto(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.OpenShift(context.Background(), "panolero-1")
	require.NoError(t, err)

	_, err = uc.OpenShift(context.Background(), "panolero-1")
	assert.ErrorIs(t, err, domain.ErrShiftAlreadyOpen)
}

// Dos instancias pueden intentar abrir turno a la vez; con las transacciones
// de turnos serializadas, exactamente una apertura prospera y el resto ve el
// turno ya abierto. Bloquear la fila abierta no alcanza: cuando no hay turno
// abierto no existe fila que bloquear.
func TestOpenShift_AperturasConcurrentes(t *testing.T) {
	uc, repo := newUseCase()

	const intentos = 8
	errs := make(chan error, intentos)
	var wg sync.WaitGroup
	for i := 0; i < intentos; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.OpenShift(context.Background(), "panolero-1")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	abiertos := 0
	for err := range errs {
		if err == nil {
			abiertos++
		} else {
			assert.ErrorIs(t, err, domain.ErrShiftAlreadyOpen)
		}
	}
	assert.Equal(t, 1, abiertos, "sólo una apertura debe prosperar")
	require.NotNil(t, repo.open, "debe quedar exactamente un turno abierto")
}

func TestOpenShift_PanoleroInexistente(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.OpenShift(context.Background(), "panolero-99")
	assert.ErrorIs(t, err, domain.ErrPersonNotFound)
}

// El cierre se atribuye al usuario que lo pide, no al pañolero del turno:
// en el flujo de login quien entra puede finalizar el turno que quedó abierto.
func TestCloseShift_AtribuyeElCierre(t *testing.T) {
	uc, repo := newUseCase()

	_, err := uc.OpenShift(context.Background(), "panolero-1")
	require.NoError(t, err)

	closed, err := uc.CloseShift(context.Background(), "usuario-7")
	require.NoError(t, err)
	require.NotNil(t, closed.ExitTime)
	require.NotNil(t, closed.ClosedBy)
	assert.Equal(t, "usuario-7", *closed.ClosedBy)
	assert.False(t, closed.Open())
	assert.Nil(t, repo.open, "no debe quedar turno abierto")
}

func TestCloseShift_SinTurnoAbierto(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.CloseShift(context.Background(), "usuario-7")
	assert.ErrorIs(t, err, domain.ErrShiftNotFound)
}

func TestCurrentOpenShift(t *testing.T) {
	uc, _ := newUseCase()

	s, err := uc.CurrentOpenShift(context.Background())
	require.NoError(t, err)
	assert.Nil(t, s, "sin turnos no hay turno actual")

	abierto, err := uc.OpenShift(context.Background(), "panolero-1")
	require.NoError(t, err)

	s, err = uc.CurrentOpenShift(context.Background())
	require.NoError(t, err)
	assert.Equal(t, abierto.ID, s.ID)
}
