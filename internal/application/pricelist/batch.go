package pricelist

import (
	"context"
	"fmt"

	"github.com/jhoicas/listas-precios/internal/domain/repository"
)

// ClampBatchSize limita el tamaño de sub-lote al rango 1..repository.MaxBatchWrites.
func ClampBatchSize(n int) int {
	if n <= 0 || n > repository.MaxBatchWrites {
		return repository.MaxBatchWrites
	}
	return n
}

// writeInBatches divide items en sub-lotes de size y los confirma en orden.
// El primer error aborta los lotes restantes; los ya confirmados quedan escritos.
func writeInBatches[T any](ctx context.Context, items []T, size int, write func(context.Context, []T) error) error {
	size = ClampBatchSize(size)
	total := (len(items) + size - 1) / size
	for i := 0; i < total; i++ {
		lo := i * size
		hi := min(lo+size, len(items))
		if err := write(ctx, items[lo:hi]); err != nil {
			return fmt.Errorf("lote %d/%d: %w", i+1, total, err)
		}
	}
	return nil
}
