package domain

import "time"

const (
	SedeActiva   = "activa"
	SedeInactiva = "inactiva"
)

type Sede struct {
	ID            uint      `json:"id"`
	Nombre        string    `json:"nombre"`
	Ciudad        string    `json:"ciudad"`
	Direccion     string    `json:"direccion,omitempty"`
	Estado        string    `json:"estado"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}
