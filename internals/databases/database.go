package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gestionemb_backend/internals/configs"
	auditoriaModel "gestionemb_backend/internals/features/auditoria/model"
	configuracionModel "gestionemb_backend/internals/features/configuracion/model"
	adjuntoModel "gestionemb_backend/internals/features/laboratorio/adjuntos/model"
	categoriaModel "gestionemb_backend/internals/features/laboratorio/categorias/model"
	equipoModel "gestionemb_backend/internals/features/laboratorio/equipos/model"
	organismoModel "gestionemb_backend/internals/features/laboratorio/organismos/model"
	protocoloModel "gestionemb_backend/internals/features/laboratorio/protocolos/model"
	notificacionModel "gestionemb_backend/internals/features/notificaciones/model"
	usuarioModel "gestionemb_backend/internals/features/usuarios/usuario/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Conectando a PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=gestionemb&options=-c statement_timeout=5000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // compatible con PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
		// TranslateError: los conflictos de unicidad llegan como
		// gorm.ErrDuplicatedKey (lo usa el generador de códigos de organismo).
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("❌ Error conectando a la DB: %v", err)
	}
	DB = db
	log.Println("✅ DB conectada.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate crea/actualiza el esquema. El orden respeta las FKs.
func Migrate() {
	err := DB.AutoMigrate(
		&usuarioModel.UsuarioModel{},
		&usuarioModel.PerfilModel{},
		&categoriaModel.CategoriaModel{},
		&organismoModel.OrganismoModel{},
		&equipoModel.EquipoModel{},
		&equipoModel.HistorialMantenimientoModel{},
		&protocoloModel.ProtocoloModel{},
		&protocoloModel.ProtocoloEquipoModel{},
		&protocoloModel.ProtocoloOrganismoModel{},
		&adjuntoModel.ArchivoAdjuntoModel{},
		&auditoriaModel.AuditoriaLogModel{},
		&notificacionModel.NotificacionModel{},
		&configuracionModel.ConfiguracionModel{},
	)
	if err != nil {
		log.Fatalf("❌ Error en migraciones: %v", err)
	}
	log.Println("✅ Migraciones aplicadas.")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
