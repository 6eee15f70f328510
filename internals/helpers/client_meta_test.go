package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIPFrom(t *testing.T) {
	// sin X-Forwarded-For manda la dirección directa
	assert.Equal(t, "10.0.0.5", ClientIPFrom("", "10.0.0.5"))

	// una sola entrada
	assert.Equal(t, "203.0.113.7", ClientIPFrom("203.0.113.7", "10.0.0.5"))

	// cadena de proxies: gana la primera entrada
	assert.Equal(t, "203.0.113.7", ClientIPFrom("203.0.113.7, 198.51.100.1, 10.0.0.1", "10.0.0.5"))

	// espacios alrededor de la primera entrada
	assert.Equal(t, "203.0.113.7", ClientIPFrom("  203.0.113.7 , 198.51.100.1", "10.0.0.5"))

	// header presente pero vacío tras el trim → fallback
	assert.Equal(t, "10.0.0.5", ClientIPFrom("  ,198.51.100.1", "10.0.0.5"))
}

func TestTruncateUserAgent(t *testing.T) {
	corto := "Mozilla/5.0"
	assert.Equal(t, corto, TruncateUserAgent(corto))

	exacto := strings.Repeat("a", MaxUserAgentLen)
	assert.Equal(t, exacto, TruncateUserAgent(exacto))
	assert.Len(t, TruncateUserAgent(exacto), MaxUserAgentLen)

	largo := strings.Repeat("b", MaxUserAgentLen+50)
	truncado := TruncateUserAgent(largo)
	assert.Len(t, truncado, MaxUserAgentLen)
	assert.Equal(t, largo[:MaxUserAgentLen], truncado)

	assert.Equal(t, "", TruncateUserAgent(""))
}
