package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/voucher"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-api/internal/middleware"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/store"
	ucVoucher "github.com/BruksfildServices01/barbearia-api/internal/usecase/voucher"
)

type VoucherHandler struct {
	vouchers *store.Colecao[*models.Voucher]
	usarUC   *ucVoucher.Usar
	audit    *audit.Dispatcher
}

func NewVoucherHandler(
	vouchers *store.Colecao[*models.Voucher],
	usarUC *ucVoucher.Usar,
	auditDispatcher *audit.Dispatcher,
) *VoucherHandler {
	return &VoucherHandler{vouchers: vouchers, usarUC: usarUC, audit: auditDispatcher}
}

// --------- Requests ---------

type CriarVoucherRequest struct {
	Codigo      string `json:"codigo" binding:"required"`
	Descricao   string `json:"descricao"`
	Validade    string `json:"validade"`
	Usuario     string `json:"usuario"`
	Porcentagem *int   `json:"porcentagem,omitempty"`
}

type EditarVoucherRequest struct {
	Codigo      *string `json:"codigo,omitempty"`
	Descricao   *string `json:"descricao,omitempty"`
	Validade    *string `json:"validade,omitempty"`
	Usuario     *string `json:"usuario,omitempty"`
	Porcentagem *int    `json:"porcentagem,omitempty"`
}

// --------- Handlers ---------

// Listar aplica a visibilidade por sessão: anônimo vê públicos não usados,
// usuário vê também os próprios não usados, admin vê tudo.
func (h *VoucherHandler) Listar(c *gin.Context) {
	usuario, tipo, logado := middleware.UsuarioLogado(c)
	vouchers := h.vouchers.Load()

	if logado && tipo == models.TipoAdmin {
		httpresp.Dados(c, vouchers)
		return
	}

	visiveis := make([]*models.Voucher, 0, len(vouchers))
	for _, v := range vouchers {
		if v.Usado {
			continue
		}
		if v.Publico() || (logado && v.Usuario == usuario) {
			visiveis = append(visiveis, v)
		}
	}

	httpresp.Dados(c, visiveis)
}

// MeusVouchers lista os vouchers não usados do usuário logado, próprios ou
// públicos.
func (h *VoucherHandler) MeusVouchers(c *gin.Context) {
	usuario, _, _ := middleware.UsuarioLogado(c)
	vouchers := h.vouchers.Load()

	meus := make([]*models.Voucher, 0, len(vouchers))
	for _, v := range vouchers {
		if v.Usado {
			continue
		}
		if v.Publico() || v.Usuario == usuario {
			meus = append(meus, v)
		}
	}

	httpresp.Dados(c, meus)
}

func (h *VoucherHandler) Criar(c *gin.Context) {
	var req CriarVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.WriteStatus(c, http.StatusBadRequest, "Campos obrigatórios ausentes: codigo")
		return
	}

	porcentagem := domain.PorcentagemPadrao
	if req.Porcentagem != nil {
		if *req.Porcentagem <= 0 || *req.Porcentagem > 100 {
			httperr.Write(c, httperr.Validation("Porcentagem deve estar entre 1 e 100"))
			return
		}
		porcentagem = *req.Porcentagem
	}

	var novo *models.Voucher
	err := h.vouchers.Update(func(regs []*models.Voucher) ([]*models.Voucher, error) {
		for _, v := range regs {
			if strings.EqualFold(v.Codigo, req.Codigo) {
				return nil, httperr.Conflict("Voucher com este código já existe")
			}
		}

		novo = &models.Voucher{
			ID:          store.NextID(regs),
			Codigo:      req.Codigo,
			Descricao:   req.Descricao,
			Validade:    req.Validade,
			Usuario:     req.Usuario,
			Porcentagem: porcentagem,
		}
		return append(regs, novo), nil
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	h.dispatch(c, "Voucher adicionado", novo.ID, map[string]any{"codigo": novo.Codigo})
	httpresp.Created(c, "Voucher adicionado com sucesso", novo)
}

// Editar altera os metadados do voucher. O campo usado não é editável:
// uma vez utilizado, o estado é definitivo.
func (h *VoucherHandler) Editar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.Write(c, httperr.Validation("ID inválido"))
		return
	}

	var req EditarVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.WriteStatus(c, http.StatusBadRequest, "Dados JSON não fornecidos")
		return
	}

	if req.Porcentagem != nil && (*req.Porcentagem <= 0 || *req.Porcentagem > 100) {
		httperr.Write(c, httperr.Validation("Porcentagem deve estar entre 1 e 100"))
		return
	}

	var editado *models.Voucher
	err = h.vouchers.Update(func(regs []*models.Voucher) ([]*models.Voucher, error) {
		v, ok := store.FindByID(regs, id)
		if !ok {
			return nil, httperr.NotFound("Voucher não encontrado")
		}

		if req.Codigo != nil {
			for _, outro := range regs {
				if outro.ID != id && strings.EqualFold(outro.Codigo, *req.Codigo) {
					return nil, httperr.Conflict("Voucher com este código já existe")
				}
			}
			v.Codigo = *req.Codigo
		}
		if req.Descricao != nil {
			v.Descricao = *req.Descricao
		}
		if req.Validade != nil {
			v.Validade = *req.Validade
		}
		if req.Usuario != nil {
			v.Usuario = *req.Usuario
		}
		if req.Porcentagem != nil {
			v.Porcentagem = *req.Porcentagem
		}

		editado = v
		return regs, nil
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	h.dispatch(c, "Voucher editado", id, nil)
	httpresp.OK(c, "Voucher editado com sucesso", editado)
}

func (h *VoucherHandler) Remover(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.Write(c, httperr.Validation("ID inválido"))
		return
	}

	err = h.vouchers.Update(func(regs []*models.Voucher) ([]*models.Voucher, error) {
		out, removed := store.RemoveByID(regs, id)
		if !removed {
			return nil, httperr.NotFound("Voucher não encontrado")
		}
		return out, nil
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	h.dispatch(c, "Voucher removido", id, nil)
	httpresp.OK(c, "Voucher removido com sucesso", nil)
}

func (h *VoucherHandler) Usar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.Write(c, httperr.Validation("ID inválido"))
		return
	}

	usuario, _, _ := middleware.UsuarioLogado(c)

	usado, err := h.usarUC.Execute(id, usuario)
	if err != nil {
		httperr.Write(c, err)
		return
	}

	httpresp.OK(c, "Voucher utilizado com sucesso", usado)
}

func (h *VoucherHandler) dispatch(c *gin.Context, acao string, id int, detalhes map[string]any) {
	usuario, _, _ := middleware.UsuarioLogado(c)
	h.audit.Dispatch(audit.Event{
		Usuario:    usuario,
		Acao:       acao,
		Entidade:   "voucher",
		EntidadeID: &id,
		Detalhes:   detalhes,
	})
}
