package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-api/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/store"
)

type AuditoriaHandler struct {
	registros *store.Colecao[*models.RegistroAuditoria]
}

func NewAuditoriaHandler(registros *store.Colecao[*models.RegistroAuditoria]) *AuditoriaHandler {
	return &AuditoriaHandler{registros: registros}
}

func (h *AuditoriaHandler) Listar(c *gin.Context) {
	httpresp.Dados(c, h.registros.Load())
}
