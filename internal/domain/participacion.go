package domain

import "time"

// Participacion is one raffle entry. NumeroRifa is a fixed-width 5-digit
// string, unique per raffle cycle, assigned at redemption time.
type Participacion struct {
	ID              uint      `json:"id"`
	ClienteID       uint      `json:"cliente_id"`
	CodigoID        uint      `json:"codigo_id"`
	NumeroRifa      string    `json:"numero_rifa"`
	FechaAsignacion time.Time `json:"fecha_asignacion"`
}
