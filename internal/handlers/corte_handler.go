package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-api/internal/middleware"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/store"
)

type CorteHandler struct {
	cortes *store.Colecao[*models.Corte]
	audit  *audit.Dispatcher
}

func NewCorteHandler(cortes *store.Colecao[*models.Corte], auditDispatcher *audit.Dispatcher) *CorteHandler {
	return &CorteHandler{cortes: cortes, audit: auditDispatcher}
}

// --------- Requests ---------

type CriarCorteRequest struct {
	Nome      string   `json:"nome" binding:"required"`
	Preco     *float64 `json:"preco" binding:"required"`
	Descricao string   `json:"descricao"`
	Duracao   string   `json:"duracao"`
}

type EditarCorteRequest struct {
	Nome      *string  `json:"nome,omitempty"`
	Preco     *float64 `json:"preco,omitempty"`
	Descricao *string  `json:"descricao,omitempty"`
	Duracao   *string  `json:"duracao,omitempty"`
}

// --------- Handlers ---------

func (h *CorteHandler) Listar(c *gin.Context) {
	httpresp.Dados(c, h.cortes.Load())
}

func (h *CorteHandler) Criar(c *gin.Context) {
	var req CriarCorteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.WriteStatus(c, http.StatusBadRequest, "Campos obrigatórios ausentes: nome, preco")
		return
	}

	if *req.Preco <= 0 {
		httperr.Write(c, httperr.Validation("Preço deve ser maior que zero"))
		return
	}

	var novo *models.Corte
	err := h.cortes.Update(func(regs []*models.Corte) ([]*models.Corte, error) {
		for _, corte := range regs {
			if strings.EqualFold(corte.Nome, req.Nome) {
				return nil, httperr.Conflict("Corte com este nome já existe")
			}
		}

		novo = &models.Corte{
			ID:        store.NextID(regs),
			Nome:      req.Nome,
			Preco:     *req.Preco,
			Descricao: req.Descricao,
			Duracao:   req.Duracao,
		}
		return append(regs, novo), nil
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	h.dispatch(c, "Corte adicionado", novo.ID, map[string]any{"nome": novo.Nome, "preco": novo.Preco})
	httpresp.Created(c, "Corte adicionado com sucesso", novo)
}

func (h *CorteHandler) Editar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.Write(c, httperr.Validation("ID inválido"))
		return
	}

	var req EditarCorteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.WriteStatus(c, http.StatusBadRequest, "Dados JSON não fornecidos")
		return
	}

	if req.Preco != nil && *req.Preco <= 0 {
		httperr.Write(c, httperr.Validation("Preço deve ser maior que zero"))
		return
	}

	var editado *models.Corte
	err = h.cortes.Update(func(regs []*models.Corte) ([]*models.Corte, error) {
		corte, ok := store.FindByID(regs, id)
		if !ok {
			return nil, httperr.NotFound("Corte não encontrado")
		}

		if req.Nome != nil {
			corte.Nome = *req.Nome
		}
		if req.Preco != nil {
			corte.Preco = *req.Preco
		}
		if req.Descricao != nil {
			corte.Descricao = *req.Descricao
		}
		if req.Duracao != nil {
			corte.Duracao = *req.Duracao
		}

		editado = corte
		return regs, nil
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	h.dispatch(c, "Corte editado", id, nil)
	httpresp.OK(c, "Corte editado com sucesso", editado)
}

func (h *CorteHandler) Remover(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.Write(c, httperr.Validation("ID inválido"))
		return
	}

	err = h.cortes.Update(func(regs []*models.Corte) ([]*models.Corte, error) {
		out, removed := store.RemoveByID(regs, id)
		if !removed {
			return nil, httperr.NotFound("Corte não encontrado")
		}
		return out, nil
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	h.dispatch(c, "Corte removido", id, nil)
	httpresp.OK(c, "Corte removido com sucesso", nil)
}

func (h *CorteHandler) dispatch(c *gin.Context, acao string, id int, detalhes map[string]any) {
	usuario, _, _ := middleware.UsuarioLogado(c)
	h.audit.Dispatch(audit.Event{
		Usuario:    usuario,
		Acao:       acao,
		Entidade:   "corte",
		EntidadeID: &id,
		Detalhes:   detalhes,
	})
}
