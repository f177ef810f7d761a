package domain

import "time"

const (
	RifaActiva  = "activa"
	RifaPausada = "pausada"
	RifaCerrada = "cerrada"
)

// RifaConfig is the singleton-per-cycle raffle configuration. The latest
// row by id is the authoritative one.
type RifaConfig struct {
	ID                   uint       `json:"-"`
	Estado               string     `json:"estado"`
	NumeroGanador        *string    `json:"numero_ganador"`
	FechaCierre          *time.Time `json:"fecha_cierre"`
	FechaActualizacion   time.Time  `json:"-"`
	TotalParticipaciones int64      `json:"total_participaciones"`
}

// Ganador is the winner lookup result: the holder of a raffle number with
// contact info for the admin to reach out.
type Ganador struct {
	NumeroRifa string         `json:"numero_rifa"`
	Cliente    GanadorCliente `json:"cliente"`
}

type GanadorCliente struct {
	Nombre   string `json:"nombre"`
	Correo   string `json:"correo"`
	Telefono string `json:"telefono"`
	Sede     string `json:"sede"`
}

// ResetResult reports what the raffle reset touched. Clientes and sedes
// are preserved by contract.
type ResetResult struct {
	AffectedCodigos         int64 `json:"affected_codes"`
	AffectedParticipaciones int64 `json:"affected_participations"`
}

type DashboardStats struct {
	TotalClientes        int64  `json:"total_clientes"`
	TotalParticipaciones int64  `json:"total_participaciones"`
	CodigosUsados        int64  `json:"codigos_usados"`
	CodigosDisponibles   int64  `json:"codigos_disponibles"`
	EstadoRifa           string `json:"estado_rifa"`
}

type MetricasMensuales struct {
	ClientesNuevosMesActual   int64 `json:"clientes_nuevos_mes_actual"`
	ClientesNuevosMesAnterior int64 `json:"clientes_nuevos_mes_anterior"`
	CrecimientoPorcentual     int   `json:"crecimiento_porcentual"`
}
