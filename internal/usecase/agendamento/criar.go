package agendamento

import (
	"errors"
	"time"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/agendamento"
	domainvoucher "github.com/BruksfildServices01/barbearia-api/internal/domain/voucher"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/store"
	"github.com/BruksfildServices01/barbearia-api/internal/validators"
	"github.com/rs/zerolog"
)

type CriarInput struct {
	Usuario string

	NomeCliente string
	Data        string
	Horario     string

	Voucher         string
	Pagamento       string
	TipoCorte       string
	ValorCorte      float64
	DescontoVoucher float64
	ValorFinal      float64
}

type Criar struct {
	agendamentos *store.Colecao[*models.Agendamento]
	vouchers     *store.Colecao[*models.Voucher]
	audit        *audit.Dispatcher
	log          zerolog.Logger
}

func NewCriar(
	agendamentos *store.Colecao[*models.Agendamento],
	vouchers *store.Colecao[*models.Voucher],
	auditDispatcher *audit.Dispatcher,
	log zerolog.Logger,
) *Criar {
	return &Criar{
		agendamentos: agendamentos,
		vouchers:     vouchers,
		audit:        auditDispatcher,
		log:          log,
	}
}

func (uc *Criar) Execute(in CriarInput) (*models.Agendamento, error) {
	if !validators.DataValida(in.Data) {
		return nil, httperr.Validation("Data inválida. Use o formato DD/MM/AAAA")
	}
	if !validators.HorarioValido(in.Horario) {
		return nil, httperr.Validation("Horário inválido. Use o formato HH:MM")
	}

	var (
		novo         *models.Agendamento
		totalUsuario int
	)

	err := uc.agendamentos.Update(func(regs []*models.Agendamento) ([]*models.Agendamento, error) {
		for _, ag := range regs {
			if ag.NomeCliente == in.NomeCliente &&
				ag.Data == in.Data &&
				ag.Horario == in.Horario &&
				ag.Usuario == in.Usuario {
				return nil, httperr.Conflict("Já existe agendamento para este cliente neste horário")
			}
		}

		novo = &models.Agendamento{
			ID:              store.NextID(regs),
			NomeCliente:     in.NomeCliente,
			Data:            in.Data,
			Horario:         in.Horario,
			Usuario:         in.Usuario,
			Voucher:         in.Voucher,
			Pagamento:       in.Pagamento,
			TipoCorte:       in.TipoCorte,
			ValorCorte:      in.ValorCorte,
			DescontoVoucher: in.DescontoVoucher,
			ValorFinal:      in.ValorFinal,
			Status:          string(domain.StatusInicial()),
		}
		regs = append(regs, novo)

		// contagem pós-inserção: base do gatilho de fidelidade
		totalUsuario = 0
		for _, ag := range regs {
			if ag.Usuario == in.Usuario {
				totalUsuario++
			}
		}

		return regs, nil
	})
	if err != nil {
		return nil, storageOr(err, "Erro ao salvar agendamento")
	}

	// Fidelidade: a cada 5 agendamentos do usuário, exatamente um voucher.
	if totalUsuario%5 == 0 {
		if err := uc.criarFidelidade(in.Usuario); err != nil {
			uc.log.Error().Err(err).Str("usuario", in.Usuario).Msg("falha ao gerar voucher de fidelidade")
		} else {
			uc.audit.Dispatch(audit.Event{
				Usuario:  in.Usuario,
				Acao:     "Voucher de fidelidade gerado",
				Entidade: "voucher",
				Detalhes: map[string]any{"total_agendamentos": totalUsuario},
			})
		}
	}

	uc.audit.Dispatch(audit.Event{
		Usuario:    in.Usuario,
		Acao:       "Agendamento criado",
		Entidade:   "agendamento",
		EntidadeID: &novo.ID,
		Detalhes: map[string]any{
			"cliente": in.NomeCliente,
			"data":    in.Data,
			"horario": in.Horario,
		},
	})

	return novo, nil
}

func (uc *Criar) criarFidelidade(usuario string) error {
	return uc.vouchers.Update(func(regs []*models.Voucher) ([]*models.Voucher, error) {
		v := domainvoucher.NovoFidelidade(usuario, time.Now())
		v.ID = store.NextID(regs)
		return append(regs, v), nil
	})
}

// storageOr preserva erros de negócio e converte falhas de gravação em
// StorageError com mensagem amigável.
func storageOr(err error, msg string) error {
	var e *httperr.Error
	if errors.As(err, &e) {
		return err
	}
	return httperr.Storage(msg)
}
