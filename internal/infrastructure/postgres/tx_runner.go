package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/inventory"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/application/shift"
	"github.com/MaxAPBusiness/Proyecto-Taller/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and shift.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ shift.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos del motor de
// movimientos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	shiftRepo repository.ShiftRepository,
	repairRepo repository.RepairRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMovementRepository(tx)
	stockRepo := NewStockRepository(tx)
	shiftRepo := NewShiftRepository(tx)
	repairRepo := NewRepairRepository(tx)

	if err := fn(movRepo, stockRepo, shiftRepo, repairRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Identificador del advisory lock que serializa las transacciones de turnos.
// Con cero turnos abiertos el SELECT ... FOR UPDATE de la verificación no
// bloquea ninguna fila, así que la apertura necesita exclusión explícita
// entre instancias para sostener el invariante de un solo turno abierto.
const shiftAdvisoryLockID int64 = 0x7475726e // "turn"

// RunShift inicia una transacción con el repo de turnos (para abrir y cerrar
// turnos bajo el invariante de un solo turno abierto). Todas las transacciones
// de turnos toman el mismo advisory lock transaccional antes de verificar.
func (r *TxRunner) RunShift(ctx context.Context, fn func(shiftRepo repository.ShiftRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, shiftAdvisoryLockID); err != nil {
		return fmt.Errorf("lock shift transactions: %w", err)
	}

	if err := fn(NewShiftRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
