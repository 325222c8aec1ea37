package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	"github.com/BruksfildServices01/barbearia-api/internal/backup"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-api/internal/middleware"
)

type BackupHandler struct {
	manager  *backup.Manager
	colecoes []string
	audit    *audit.Dispatcher
}

func NewBackupHandler(manager *backup.Manager, colecoes []string, auditDispatcher *audit.Dispatcher) *BackupHandler {
	return &BackupHandler{manager: manager, colecoes: colecoes, audit: auditDispatcher}
}

func (h *BackupHandler) Criar(c *gin.Context) {
	criados, err := h.manager.BackupAll(h.colecoes)
	if err != nil {
		httperr.Write(c, httperr.Storage("Erro ao criar backup"))
		return
	}

	usuario, _, _ := middleware.UsuarioLogado(c)
	h.audit.Dispatch(audit.Event{
		Usuario:  usuario,
		Acao:     "Backup criado",
		Detalhes: map[string]any{"arquivos": len(criados)},
	})

	httpresp.Created(c, "Backup criado com sucesso", gin.H{"arquivos": criados})
}

func (h *BackupHandler) Listar(c *gin.Context) {
	httpresp.Dados(c, h.manager.List())
}
