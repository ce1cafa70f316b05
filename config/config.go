package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/brunogonzalezj/studymate-backend/models"
)

// InitDB abre la conexión a PostgreSQL, configura el pool y migra el esquema.
func InitDB() *gorm.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		dbHost, dbUser, dbPass, dbName, dbPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatal("No se pudo conectar a la base de datos:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("No se pudo obtener sql.DB de gorm:", err)
	}

	// Connection pooling
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatal("autoMigrate falló: ", err)
	}
	log.Println("PostgreSQL conectado y migrado")

	return db
}

// Migrate ejecuta AutoMigrate sobre todos los modelos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Usuario{},
		&models.Estudiante{},
		&models.Documento{},
		&models.Resumen{},
		&models.Flashcard{},
	)
}
