package dao

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRedeemable(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name    string
		codigo  Codigo
		wantErr error
	}{
		{
			name:   "active without expiry",
			codigo: Codigo{Estado: "activo"},
		},
		{
			name:   "active with future expiry",
			codigo: Codigo{Estado: "activo", FechaExpiracion: &future},
		},
		{
			name:    "already used",
			codigo:  Codigo{Estado: "usado"},
			wantErr: ErrCodigoUsado,
		},
		{
			name:    "marked expired",
			codigo:  Codigo{Estado: "expirado"},
			wantErr: ErrCodigoExpirado,
		},
		{
			name:    "active but past expiry",
			codigo:  Codigo{Estado: "activo", FechaExpiracion: &past},
			wantErr: ErrCodigoExpirado,
		},
		{
			name:    "unknown estado treated as not found",
			codigo:  Codigo{Estado: "borrador"},
			wantErr: ErrCodigoNoEncontrado,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Redeemable(tt.codigo, now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
