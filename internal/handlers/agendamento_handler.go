package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/agendamento"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-api/internal/middleware"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/store"
	ucAgendamento "github.com/BruksfildServices01/barbearia-api/internal/usecase/agendamento"
	"github.com/BruksfildServices01/barbearia-api/internal/validators"
)

type AgendamentoHandler struct {
	agendamentos *store.Colecao[*models.Agendamento]
	criarUC      *ucAgendamento.Criar
	audit        *audit.Dispatcher
}

func NewAgendamentoHandler(
	agendamentos *store.Colecao[*models.Agendamento],
	criarUC *ucAgendamento.Criar,
	auditDispatcher *audit.Dispatcher,
) *AgendamentoHandler {
	return &AgendamentoHandler{
		agendamentos: agendamentos,
		criarUC:      criarUC,
		audit:        auditDispatcher,
	}
}

// --------- Requests ---------

type CriarAgendamentoRequest struct {
	NomeCliente string `json:"nome_cliente" binding:"required"`
	Data        string `json:"data" binding:"required"`
	Horario     string `json:"horario" binding:"required"`

	Voucher         string  `json:"voucher"`
	Pagamento       string  `json:"pagamento"`
	TipoCorte       string  `json:"tipo_corte"`
	ValorCorte      float64 `json:"valor_corte"`
	DescontoVoucher float64 `json:"desconto_voucher"`
	ValorFinal      float64 `json:"valor_final"`
}

type EditarAgendamentoRequest struct {
	NomeCliente     *string  `json:"nome_cliente,omitempty"`
	Data            *string  `json:"data,omitempty"`
	Horario         *string  `json:"horario,omitempty"`
	Voucher         *string  `json:"voucher,omitempty"`
	Pagamento       *string  `json:"pagamento,omitempty"`
	TipoCorte       *string  `json:"tipo_corte,omitempty"`
	ValorCorte      *float64 `json:"valor_corte,omitempty"`
	DescontoVoucher *float64 `json:"desconto_voucher,omitempty"`
	ValorFinal      *float64 `json:"valor_final,omitempty"`
	Status          *string  `json:"status,omitempty"`
}

// --------- Handlers ---------

func (h *AgendamentoHandler) Listar(c *gin.Context) {
	httpresp.Dados(c, h.agendamentos.Load())
}

func (h *AgendamentoHandler) Criar(c *gin.Context) {
	usuario, _, _ := middleware.UsuarioLogado(c)

	var req CriarAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.WriteStatus(c, http.StatusBadRequest, "Campos obrigatórios ausentes: nome_cliente, data, horario")
		return
	}

	novo, err := h.criarUC.Execute(ucAgendamento.CriarInput{
		Usuario:         usuario,
		NomeCliente:     req.NomeCliente,
		Data:            req.Data,
		Horario:         req.Horario,
		Voucher:         req.Voucher,
		Pagamento:       req.Pagamento,
		TipoCorte:       req.TipoCorte,
		ValorCorte:      req.ValorCorte,
		DescontoVoucher: req.DescontoVoucher,
		ValorFinal:      req.ValorFinal,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	httpresp.Created(c, "Agendamento criado com sucesso", novo)
}

// Editar aceita campos parciais, incluindo troca de status dentro do enum.
// A transição para "Realizado" deve ser acompanhada pelo consumidor de um
// POST em /api/cortes/ registrando o serviço; os dois passos não são
// atômicos.
func (h *AgendamentoHandler) Editar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.Write(c, httperr.Validation("ID inválido"))
		return
	}

	var req EditarAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.WriteStatus(c, http.StatusBadRequest, "Dados JSON não fornecidos")
		return
	}

	if req.Data != nil && !validators.DataValida(*req.Data) {
		httperr.Write(c, httperr.Validation("Data inválida. Use o formato DD/MM/AAAA"))
		return
	}
	if req.Horario != nil && !validators.HorarioValido(*req.Horario) {
		httperr.Write(c, httperr.Validation("Horário inválido. Use o formato HH:MM"))
		return
	}
	if req.Status != nil && !domain.StatusValido(*req.Status) {
		httperr.Write(c, httperr.Validation("Status inválido"))
		return
	}

	var editado *models.Agendamento
	err = h.agendamentos.Update(func(regs []*models.Agendamento) ([]*models.Agendamento, error) {
		ag, ok := store.FindByID(regs, id)
		if !ok {
			return nil, httperr.NotFound("Agendamento não encontrado")
		}

		if req.NomeCliente != nil {
			ag.NomeCliente = *req.NomeCliente
		}
		if req.Data != nil {
			ag.Data = *req.Data
		}
		if req.Horario != nil {
			ag.Horario = *req.Horario
		}
		if req.Voucher != nil {
			ag.Voucher = *req.Voucher
		}
		if req.Pagamento != nil {
			ag.Pagamento = *req.Pagamento
		}
		if req.TipoCorte != nil {
			ag.TipoCorte = *req.TipoCorte
		}
		if req.ValorCorte != nil {
			ag.ValorCorte = *req.ValorCorte
		}
		if req.DescontoVoucher != nil {
			ag.DescontoVoucher = *req.DescontoVoucher
		}
		if req.ValorFinal != nil {
			ag.ValorFinal = *req.ValorFinal
		}
		if req.Status != nil {
			ag.Status = *req.Status
		}

		editado = ag
		return regs, nil
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	h.dispatch(c, "Agendamento editado", id)
	httpresp.OK(c, "Agendamento editado com sucesso", editado)
}

func (h *AgendamentoHandler) Remover(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.Write(c, httperr.Validation("ID inválido"))
		return
	}

	err = h.agendamentos.Update(func(regs []*models.Agendamento) ([]*models.Agendamento, error) {
		out, removed := store.RemoveByID(regs, id)
		if !removed {
			return nil, httperr.NotFound("Agendamento não encontrado")
		}
		return out, nil
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	h.dispatch(c, "Agendamento removido", id)
	httpresp.OK(c, "Agendamento removido com sucesso", nil)
}

func (h *AgendamentoHandler) dispatch(c *gin.Context, acao string, id int) {
	usuario, _, _ := middleware.UsuarioLogado(c)
	h.audit.Dispatch(audit.Event{
		Usuario:    usuario,
		Acao:       acao,
		Entidade:   "agendamento",
		EntidadeID: &id,
	})
}
