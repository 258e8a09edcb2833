package usecase

import (
	"github.com/google/uuid"

	"github.com/lgalvez/almacen-api/internal/application/dto"
	"github.com/lgalvez/almacen-api/internal/domain"
	"github.com/lgalvez/almacen-api/internal/domain/repository"
)

// checkID un id que no es UUID no puede existir: se reporta como no encontrado.
func checkID(id string) error {
	if uuid.Validate(id) != nil {
		return domain.ErrNotFound
	}
	return nil
}

// checkFilterID valida ids usados como filtro de listados.
func checkFilterID(field, id string) error {
	if id == "" {
		return nil
	}
	if uuid.Validate(id) != nil {
		return domain.NewValidationError(field, "debe ser un identificador válido")
	}
	return nil
}

func stringOr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func toPage(p dto.PageRequest) repository.Page {
	return repository.Page{Limit: p.PageSize, Offset: p.Offset()}
}
