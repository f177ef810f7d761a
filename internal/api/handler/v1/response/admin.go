package response

import "github.com/epicorifa/rifa-api/internal/domain"

type AdminPublico struct {
	ID      uint   `json:"id"`
	Usuario string `json:"usuario"`
	Rol     string `json:"rol"`
}

type AdminLogin struct {
	Success bool         `json:"success"`
	Admin   AdminPublico `json:"admin"`
	Token   string       `json:"token"`
}

type Dashboard struct {
	Estadisticas      domain.DashboardStats    `json:"estadisticas"`
	MetricasMensuales domain.MetricasMensuales `json:"metricas_mensuales"`
}

type Ganador struct {
	Success bool           `json:"success"`
	Ganador domain.Ganador `json:"ganador"`
}

type Reset struct {
	Success                bool   `json:"success"`
	Message                string `json:"message"`
	AffectedCodes          int64  `json:"affected_codes"`
	AffectedParticipations int64  `json:"affected_participations"`
}

type Mensaje struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
