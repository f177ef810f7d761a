package response

import "github.com/epicorifa/rifa-api/internal/domain"

type Sedes struct {
	Success bool          `json:"success"`
	Sedes   []domain.Sede `json:"sedes"`
}

type SedeDetail struct {
	Success bool        `json:"success"`
	Sede    domain.Sede `json:"sede"`
}
