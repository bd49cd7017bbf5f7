package ports

import "context"

// TxRunner ejecuta una función dentro de una región de exclusión sobre el
// estado en memoria. Run toma exclusión total (escrituras); View toma lock
// compartido (lecturas). Garantiza que la secuencia validar-luego-confirmar
// de ventas, devoluciones y ajustes no se intercale con otra escritura.
type TxRunner interface {
	Run(ctx context.Context, fn func() error) error
	View(ctx context.Context, fn func() error) error
}
