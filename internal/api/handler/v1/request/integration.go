package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type SaveCodeRequest struct {
	Codigo          string                 `json:"codigo"`
	FechaExpiracion string                 `json:"fecha_expiracion"`
	Meta            map[string]interface{} `json:"meta"`
}

func (req *SaveCodeRequest) Validate() error {
	req.Codigo = NormalizeCodigo(req.Codigo)
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Codigo, validation.Required, validation.Match(codigoExp).Error(errCodigoInvalido.Error())),
		validation.Field(&req.FechaExpiracion, validation.Date(time.RFC3339)),
	)
}

// Expiracion parses the optional expiry; Validate has already vetted the
// format, so the zero time means "no expiry".
func (req *SaveCodeRequest) Expiracion() *time.Time {
	if req.FechaExpiracion == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, req.FechaExpiracion)
	if err != nil {
		return nil
	}
	return &t
}
