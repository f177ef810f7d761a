package domain

import "time"

// Code lifecycle. A code goes activo -> usado exactly once, or
// activo -> expirado by time. Codes are never deleted.
const (
	CodigoActivo   = "activo"
	CodigoUsado    = "usado"
	CodigoExpirado = "expirado"
)

type Codigo struct {
	ID              uint       `json:"id"`
	Codigo          string     `json:"codigo"`
	Estado          string     `json:"estado"`
	FechaExpiracion *time.Time `json:"fecha_expiracion,omitempty"`
	GeneradoPor     string     `json:"generado_por"`
	Meta            string     `json:"meta,omitempty"`
	FechaGeneracion time.Time  `json:"fecha_generacion"`
}
