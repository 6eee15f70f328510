package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Largo máximo del user-agent almacenado en auditoría
const MaxUserAgentLen = 300

// ClientIP devuelve la IP del cliente: primera entrada de X-Forwarded-For
// si existe, si no la dirección directa de la conexión.
func ClientIP(c *fiber.Ctx) string {
	return ClientIPFrom(c.Get(fiber.HeaderXForwardedFor), c.IP())
}

// ClientIPFrom separa la lógica para poder testearla sin un ctx vivo.
func ClientIPFrom(xForwardedFor, remoteAddr string) string {
	if xForwardedFor != "" {
		first := strings.TrimSpace(strings.Split(xForwardedFor, ",")[0])
		if first != "" {
			return first
		}
	}
	return remoteAddr
}

// TruncateUserAgent recorta el user-agent a MaxUserAgentLen antes de persistir.
func TruncateUserAgent(ua string) string {
	if len(ua) > MaxUserAgentLen {
		return ua[:MaxUserAgentLen]
	}
	return ua
}

// UserAgent devuelve el user-agent ya truncado.
func UserAgent(c *fiber.Ctx) string {
	return TruncateUserAgent(c.Get(fiber.HeaderUserAgent))
}
