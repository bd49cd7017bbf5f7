package memory

import (
	"context"
	"sync"

	"github.com/tu-usuario/serviteca-pro/internal/application/ports"
)

var _ ports.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las operaciones sobre el estado en memoria. El motor de
// ventas/devoluciones valida y luego muta (validate-then-commit); para que esa
// secuencia sea atómica frente a un servidor multi-petición, cada operación de
// escritura corre bajo una única región de exclusión que cubre todo el estado
// (todas las colecciones + el índice de stock). Las lecturas toman el lock
// compartido.
type TxRunner struct {
	mu sync.RWMutex
}

// NewTxRunner construye el runner.
func NewTxRunner() *TxRunner {
	return &TxRunner{}
}

// Run ejecuta fn con exclusión total. Si fn retorna error no hay nada que
// revertir: el contrato de los casos de uso es no mutar antes de validar.
func (r *TxRunner) Run(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn()
}

// View ejecuta fn con lock compartido (solo lectura).
func (r *TxRunner) View(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return fn()
}
