package usecase

import (
	"github.com/jhoicas/Libreria-api/internal/application/dto"
	"github.com/jhoicas/Libreria-api/internal/domain/repository"
)

// ReportUseCase reportes de lectura (módulo reports). Una sola consulta por reporte;
// las agregaciones del dashboard quedan en un colaborador externo.
type ReportUseCase struct {
	bookRepo repository.BookRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(bookRepo repository.BookRepository) *ReportUseCase {
	return &ReportUseCase{bookRepo: bookRepo}
}

// LowStock devuelve los libros disponibles en o bajo su stock mínimo.
func (uc *ReportUseCase) LowStock() (*dto.LowStockReportResponse, error) {
	books, err := uc.bookRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	out := &dto.LowStockReportResponse{Items: make([]dto.BookResponse, 0, len(books))}
	for _, b := range books {
		out.Items = append(out.Items, *bookToResponse(b))
	}
	return out, nil
}
