package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Libreria-api/internal/application/dto"
	"github.com/jhoicas/Libreria-api/internal/domain"
	"github.com/jhoicas/Libreria-api/internal/domain/entity"
	"github.com/jhoicas/Libreria-api/internal/domain/repository"
)

// CategoryUseCase casos de uso mínimos de categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create da de alta una categoría. Nombre duplicado retorna ErrDuplicate.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	cat := &entity.Category{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(cat); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: cat.ID, Nombre: cat.Nombre, Descripcion: cat.Descripcion}, nil
}

// List lista todas las categorías.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	cats, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, dto.CategoryResponse{ID: c.ID, Nombre: c.Nombre, Descripcion: c.Descripcion})
	}
	return out, nil
}
