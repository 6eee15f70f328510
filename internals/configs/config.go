package configs

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	JWTSecret        string
	JWTRefreshSecret string

	// App es la configuración inyectada a los componentes que la necesitan
	// (storage root, SMTP, TTLs de sesión) en lugar de leer ENV ambiental.
	App AppConfig
)

type AppConfig struct {
	MediaRoot string // raíz del almacenamiento de archivos (adjuntos y fotos)

	SMTPHost string
	SMTPPort string
	SMTPFrom string
	SMTPUser string
	SMTPPass string

	AccessTTL      time.Duration
	RefreshTTL     time.Duration
	RememberMeTTL  time.Duration // refresh extendido con remember_me
	AllowedOrigins string

	// Proxies desde los que se acepta X-Forwarded-For. Si un cliente no
	// listado manda el header, se ignora y se usa la IP de la conexión.
	TrustedProxies []string
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No se encontró .env, usando ENV del sistema")
	} else {
		log.Println("✅ .env cargado correctamente")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET no está definido!")
	}
	if JWTRefreshSecret == "" {
		log.Println("❌ JWT_REFRESH_SECRET no está definido!")
	}

	App = AppConfig{
		MediaRoot:      GetEnv("MEDIA_ROOT", "./media"),
		SMTPHost:       GetEnv("SMTP_HOST"),
		SMTPPort:       GetEnv("SMTP_PORT", "587"),
		SMTPFrom:       GetEnv("SMTP_FROM", "no-reply@gestionemb.local"),
		SMTPUser:       GetEnv("SMTP_USER"),
		SMTPPass:       GetEnv("SMTP_PASS"),
		AccessTTL:      envDuration("ACCESS_TTL_HOURS", 24) * time.Hour,
		RefreshTTL:     envDuration("REFRESH_TTL_HOURS", 7*24) * time.Hour,
		RememberMeTTL:  envDuration("REMEMBER_ME_TTL_HOURS", 30*24) * time.Hour,
		AllowedOrigins: GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		TrustedProxies: SplitCSV(GetEnv("TRUSTED_PROXIES", "127.0.0.1,::1")),
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// SplitCSV separa una lista separada por comas, recortando espacios y
// descartando entradas vacías.
func SplitCSV(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func envDuration(key string, defHours int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n)
		}
		log.Printf("[WARN] %s inválido (%q), usando default %dh", key, v, defHours)
	}
	return time.Duration(defHours)
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	if err != nil {
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	} else if elapsed > l.SlowThreshold {
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
