package audit

import (
	"github.com/rs/zerolog"
)

type Event struct {
	Usuario    string
	Acao       string
	Entidade   string
	EntidadeID *int
	Detalhes   map[string]any
}

// Dispatcher desacopla a gravação de auditoria da requisição: eventos
// entram em uma fila limitada consumida por um worker. Fila cheia descarta
// o evento — auditoria nunca derruba a API.
type Dispatcher struct {
	logger *Logger
	log    zerolog.Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(ev); err != nil {
			d.log.Error().Err(err).Str("acao", ev.Acao).Msg("falha ao gravar auditoria")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Str("acao", ev.Acao).Msg("fila de auditoria cheia, evento descartado")
	}
}
