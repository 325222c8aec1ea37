package audit

import (
	"time"

	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/store"
)

// Logger grava registros de auditoria em auditoria.json, pelo mesmo
// record store usado pelas demais coleções.
type Logger struct {
	registros *store.Colecao[*models.RegistroAuditoria]
}

func New(registros *store.Colecao[*models.RegistroAuditoria]) *Logger {
	return &Logger{registros: registros}
}

func (l *Logger) Log(ev Event) error {
	return l.registros.Update(func(regs []*models.RegistroAuditoria) ([]*models.RegistroAuditoria, error) {
		usuario := ev.Usuario
		if usuario == "" {
			usuario = "Anônimo"
		}

		return append(regs, &models.RegistroAuditoria{
			ID:         store.NextID(regs),
			Usuario:    usuario,
			Acao:       ev.Acao,
			Entidade:   ev.Entidade,
			EntidadeID: ev.EntidadeID,
			Detalhes:   ev.Detalhes,
			Timestamp:  time.Now().Format(time.RFC3339),
		}), nil
	})
}
