package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-api/internal/middleware"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/store"
	"github.com/BruksfildServices01/barbearia-api/internal/validators"
)

type ClienteHandler struct {
	clientes *store.Colecao[*models.Cliente]
	audit    *audit.Dispatcher
}

func NewClienteHandler(clientes *store.Colecao[*models.Cliente], auditDispatcher *audit.Dispatcher) *ClienteHandler {
	return &ClienteHandler{clientes: clientes, audit: auditDispatcher}
}

// --------- Requests ---------

type CriarClienteRequest struct {
	Nome           string `json:"nome" binding:"required"`
	Telefone       string `json:"telefone"`
	Email          string `json:"email"`
	Endereco       string `json:"endereco"`
	DataNascimento string `json:"data_nascimento"`
}

type EditarClienteRequest struct {
	Nome           *string `json:"nome,omitempty"`
	Telefone       *string `json:"telefone,omitempty"`
	Email          *string `json:"email,omitempty"`
	Endereco       *string `json:"endereco,omitempty"`
	DataNascimento *string `json:"data_nascimento,omitempty"`
}

// --------- Handlers ---------

func (h *ClienteHandler) Listar(c *gin.Context) {
	httpresp.Dados(c, h.clientes.Load())
}

func (h *ClienteHandler) Criar(c *gin.Context) {
	var req CriarClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.WriteStatus(c, http.StatusBadRequest, "Campos obrigatórios ausentes: nome")
		return
	}

	if req.Email != "" && !validators.EmailValido(req.Email) {
		httperr.Write(c, httperr.Validation("Formato de email inválido"))
		return
	}
	if req.Telefone != "" && !validators.TelefoneValido(req.Telefone) {
		httperr.Write(c, httperr.Validation("Formato de telefone inválido"))
		return
	}

	var novo *models.Cliente
	err := h.clientes.Update(func(regs []*models.Cliente) ([]*models.Cliente, error) {
		if req.Telefone != "" {
			for _, cl := range regs {
				if cl.Telefone == req.Telefone {
					return nil, httperr.Conflict("Cliente com este telefone já existe")
				}
			}
		}

		novo = &models.Cliente{
			ID:             store.NextID(regs),
			Nome:           req.Nome,
			Telefone:       req.Telefone,
			Email:          req.Email,
			Endereco:       req.Endereco,
			DataNascimento: req.DataNascimento,
		}
		return append(regs, novo), nil
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	h.dispatch(c, "Cliente adicionado", novo.ID, map[string]any{"nome": novo.Nome})
	httpresp.Created(c, "Cliente adicionado com sucesso", novo)
}

func (h *ClienteHandler) Editar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.Write(c, httperr.Validation("ID inválido"))
		return
	}

	var req EditarClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.WriteStatus(c, http.StatusBadRequest, "Dados JSON não fornecidos")
		return
	}

	if req.Email != nil && *req.Email != "" && !validators.EmailValido(*req.Email) {
		httperr.Write(c, httperr.Validation("Formato de email inválido"))
		return
	}

	var editado *models.Cliente
	err = h.clientes.Update(func(regs []*models.Cliente) ([]*models.Cliente, error) {
		cl, ok := store.FindByID(regs, id)
		if !ok {
			return nil, httperr.NotFound("Cliente não encontrado")
		}

		if req.Nome != nil {
			cl.Nome = *req.Nome
		}
		if req.Telefone != nil {
			cl.Telefone = *req.Telefone
		}
		if req.Email != nil {
			cl.Email = *req.Email
		}
		if req.Endereco != nil {
			cl.Endereco = *req.Endereco
		}
		if req.DataNascimento != nil {
			cl.DataNascimento = *req.DataNascimento
		}

		editado = cl
		return regs, nil
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	h.dispatch(c, "Cliente editado", id, nil)
	httpresp.OK(c, "Cliente editado com sucesso", editado)
}

func (h *ClienteHandler) Remover(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.Write(c, httperr.Validation("ID inválido"))
		return
	}

	err = h.clientes.Update(func(regs []*models.Cliente) ([]*models.Cliente, error) {
		out, removed := store.RemoveByID(regs, id)
		if !removed {
			return nil, httperr.NotFound("Cliente não encontrado")
		}
		return out, nil
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	h.dispatch(c, "Cliente removido", id, nil)
	httpresp.OK(c, "Cliente removido com sucesso", nil)
}

func (h *ClienteHandler) dispatch(c *gin.Context, acao string, id int, detalhes map[string]any) {
	usuario, _, _ := middleware.UsuarioLogado(c)
	h.audit.Dispatch(audit.Event{
		Usuario:    usuario,
		Acao:       acao,
		Entidade:   "cliente",
		EntidadeID: &id,
		Detalhes:   detalhes,
	})
}
