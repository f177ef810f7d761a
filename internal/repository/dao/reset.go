package dao

import (
	"context"

	"gorm.io/gorm"
)

// ResetRaffleSystem reverts every used code to activo, deletes all
// participaciones and clears the recorded winner, leaving clientes and sedes
// untouched. One transaction; the returned counts report what was affected.
func (d *RifaDAO) ResetRaffleSystem(ctx context.Context) (affectedCodigos, affectedParticipaciones int64, err error) {
	err = d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		codigos := tx.Model(&Codigo{}).
			Where("estado = ?", "usado").
			Update("estado", "activo")
		if codigos.Error != nil {
			return codigos.Error
		}
		affectedCodigos = codigos.RowsAffected

		participaciones := tx.Where("1 = 1").Delete(&Participacion{})
		if participaciones.Error != nil {
			return participaciones.Error
		}
		affectedParticipaciones = participaciones.RowsAffected

		return tx.Model(&RifaConfig{}).
			Where("id = (?)", tx.Model(&RifaConfig{}).Select("MAX(id)")).
			Update("numero_ganador", nil).Error
	})
	if err != nil {
		return 0, 0, err
	}

	return affectedCodigos, affectedParticipaciones, nil
}
