package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Sede{},
		&Cliente{},
		&Codigo{},
		&Participacion{},
		&RifaConfig{},
		&AdminUser{},
		&Integration{},
		&IntegrationLog{},
	)
}
