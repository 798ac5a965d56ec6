package kafka

// PublisherConfig — conexión del publicador de eventos de carga.
type PublisherConfig struct {
	Brokers []string
	Topic   string
}

// Habilitado — el publicador se omite por completo sin brokers configurados.
func (c PublisherConfig) Habilitado() bool { return len(c.Brokers) > 0 }
