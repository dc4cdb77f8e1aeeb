package ports

import (
	"context"

	"github.com/jvalencia/surtido-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción: los repositorios que recibe
// fn comparten la misma tx y todo se confirma o revierte en conjunto.
// Siguiendo el principio de inversión de dependencias (DIP), la aplicación
// solo conoce este contrato, no el pool de Postgres.
type TxRunner interface {
	Run(ctx context.Context, fn func(lists repository.SupplierListRepository, items repository.ListItemRepository) error) error
}
