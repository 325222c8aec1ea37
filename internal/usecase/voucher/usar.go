package voucher

import (
	"errors"
	"time"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/voucher"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/store"
)

type Usar struct {
	vouchers *store.Colecao[*models.Voucher]
	audit    *audit.Dispatcher
}

func NewUsar(vouchers *store.Colecao[*models.Voucher], auditDispatcher *audit.Dispatcher) *Usar {
	return &Usar{vouchers: vouchers, audit: auditDispatcher}
}

func (uc *Usar) Execute(id int, usuario string) (*models.Voucher, error) {
	var usado *models.Voucher

	err := uc.vouchers.Update(func(regs []*models.Voucher) ([]*models.Voucher, error) {
		v, ok := store.FindByID(regs, id)
		if !ok {
			return nil, httperr.NotFound("Voucher não encontrado")
		}

		if err := domain.Usar(v, usuario, time.Now()); err != nil {
			return nil, err
		}

		usado = v
		return regs, nil
	})
	if err != nil {
		var e *httperr.Error
		if errors.As(err, &e) {
			return nil, err
		}
		return nil, httperr.Storage("Erro ao salvar voucher")
	}

	uc.audit.Dispatch(audit.Event{
		Usuario:    usuario,
		Acao:       "Voucher utilizado",
		Entidade:   "voucher",
		EntidadeID: &usado.ID,
		Detalhes:   map[string]any{"codigo": usado.Codigo},
	})

	return usado, nil
}
