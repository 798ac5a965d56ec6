package ports

import "time"

// Reloj — fuente de tiempo inyectable; los tests fijan "hoy" con una implementación propia.
type Reloj interface {
	Ahora() time.Time
}

// RelojSistema — implementación de producción sobre time.Now.
type RelojSistema struct{}

func (RelojSistema) Ahora() time.Time { return time.Now() }
