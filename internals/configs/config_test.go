package configs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"127.0.0.1", "::1"}, SplitCSV("127.0.0.1,::1"))

	// espacios y entradas vacías se descartan
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.5"},
		SplitCSV(" 10.0.0.0/8 , , 192.168.1.5 ,"))

	assert.Nil(t, SplitCSV(""))
	assert.Nil(t, SplitCSV(" , "))
}

func TestTrustedProxiesDefaultEsLoopback(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "placeholder") // registra el restore
	os.Unsetenv("TRUSTED_PROXIES")

	// sin TRUSTED_PROXIES solo se confía en loopback: un cliente externo
	// no puede falsear su IP vía X-Forwarded-For
	proxies := SplitCSV(GetEnv("TRUSTED_PROXIES", "127.0.0.1,::1"))
	assert.Equal(t, []string{"127.0.0.1", "::1"}, proxies)
}
