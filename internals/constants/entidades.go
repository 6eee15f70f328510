package constants

// Tipos de entidad usados en auditoría y adjuntos polimórficos
const (
	EntidadUsuario   = "usuario"
	EntidadProtocolo = "protocolo"
	EntidadOrganismo = "organismo"
	EntidadEquipo    = "equipo"
	EntidadCategoria = "categoria"
	EntidadAdjunto   = "adjunto"

	EntidadConfiguracion = "configuracion"
)

// Tipos de entidad que pueden tener adjuntos
var EntidadesAdjuntables = []string{
	EntidadProtocolo,
	EntidadOrganismo,
	EntidadEquipo,
}

func EsEntidadAdjuntable(tipo string) bool {
	for _, e := range EntidadesAdjuntables {
		if e == tipo {
			return true
		}
	}
	return false
}
