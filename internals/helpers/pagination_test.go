package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimitOffset(t *testing.T) {
	p := Params{Page: 1, PerPage: 25}
	assert.Equal(t, 25, p.Limit())
	assert.Equal(t, 0, p.Offset())

	p = Params{Page: 3, PerPage: 10}
	assert.Equal(t, 20, p.Offset())
}

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"fecha":  "created_at",
		"nombre": "nombre",
	}

	p := Params{SortBy: "nombre", SortOrder: "asc"}
	assert.Equal(t, "nombre ASC", p.SafeOrderClause(allowed, "fecha"))

	// columna fuera de la whitelist → cae al default (nunca llega cruda al SQL)
	p = Params{SortBy: "password; DROP TABLE usuarios", SortOrder: "asc"}
	assert.Equal(t, "created_at ASC", p.SafeOrderClause(allowed, "fecha"))

	// orden desconocido → DESC
	p = Params{SortBy: "fecha", SortOrder: "sideways"}
	assert.Equal(t, "created_at DESC", p.SafeOrderClause(allowed, "fecha"))

	// sort_by vacío → default
	p = Params{SortOrder: "desc"}
	assert.Equal(t, "created_at DESC", p.SafeOrderClause(allowed, "fecha"))
}

func TestBuildMeta(t *testing.T) {
	meta := BuildMeta(0, Params{Page: 1, PerPage: 25})
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)

	meta = BuildMeta(51, Params{Page: 1, PerPage: 25})
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.False(t, meta.HasPrev)

	meta = BuildMeta(51, Params{Page: 3, PerPage: 25})
	assert.False(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
}
