package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "informe_final.pdf", sanitizeFilename("informe final.pdf"))
	assert.Equal(t, "a_b_c.txt", sanitizeFilename("a/b\\c.txt"))
	assert.Equal(t, "cepa-EMB_01.jpg", sanitizeFilename("cepa-EMB_01.jpg"))
}

func TestAdjuntoRelPath(t *testing.T) {
	now := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	rel := AdjuntoRelPath("informe final.pdf", now)

	assert.True(t, strings.HasPrefix(rel, "archivos/2026/03/"))
	assert.True(t, strings.HasSuffix(rel, "-informe_final.pdf"))
	// dos subidas del mismo nombre no chocan
	assert.NotEqual(t, rel, AdjuntoRelPath("informe final.pdf", now))
}

func TestFotoPerfilRelPath(t *testing.T) {
	id := uuid.MustParse("3f2e9c1a-0000-0000-0000-000000000000")
	assert.Equal(t, "users/user_3f2e9c1a-0000-0000-0000-000000000000.webp", FotoPerfilRelPath(id))
}
