package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Libreria-api/internal/application/dto"
	"github.com/jhoicas/Libreria-api/internal/domain"
	"github.com/jhoicas/Libreria-api/internal/domain/entity"
	"github.com/jhoicas/Libreria-api/internal/domain/repository"
)

// AdjustStockUseCase registra ajustes manuales de stock (módulo stock) de forma
// transaccional. Cantidad positiva entra como release, negativa como reserve
// (y por tanto rechaza ajustes que dejarían el stock en negativo).
type AdjustStockUseCase struct {
	txRunner TxRunner
	ledger   *Ledger
	movRepo  repository.StockMovementRepository
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner, ledger *Ledger, movRepo repository.StockMovementRepository) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, ledger: ledger, movRepo: movRepo}
}

// Adjust aplica el ajuste dentro de una transacción.
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, userID string, in dto.AdjustStockRequest) error {
	if in.BookID == "" || in.Cantidad == 0 {
		return domain.ErrInvalidInput
	}
	motivo := MotivoAjuste
	if in.Motivo != "" {
		motivo = in.Motivo
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		bookRepo repository.BookRepository,
		movRepo repository.StockMovementRepository,
	) error {
		if in.Cantidad > 0 {
			return uc.ledger.ReleaseInTx(bookRepo, movRepo, in.BookID, in.Cantidad, "", motivo, userID, now)
		}
		return uc.ledger.ReserveInTx(bookRepo, movRepo, in.BookID, -in.Cantidad, "", motivo, userID, now)
	})
}

// ListMovements devuelve la traza de movimientos, opcionalmente filtrada por libro.
func (uc *AdjustStockUseCase) ListMovements(bookID string, limit, offset int) (*dto.StockMovementListResponse, error) {
	var (
		movs []*entity.StockMovement
		err  error
	)
	if bookID != "" {
		movs, err = uc.movRepo.ListByBook(bookID, limit, offset)
	} else {
		movs, err = uc.movRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := &dto.StockMovementListResponse{Items: make([]dto.StockMovementResponse, 0, len(movs))}
	for _, m := range movs {
		out.Items = append(out.Items, dto.StockMovementResponse{
			ID:          m.ID,
			BookID:      m.BookID,
			Tipo:        m.Tipo,
			Cantidad:    m.Cantidad,
			ReferenceID: m.ReferenceID,
			Motivo:      m.Motivo,
			CreatedAt:   m.CreatedAt,
			CreatedBy:   m.CreatedBy,
		})
	}
	return out, nil
}
