package httpresp

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type SuccessBody struct {
	Mensagem  string `json:"mensagem"`
	Sucesso   bool   `json:"sucesso"`
	Dados     any    `json:"dados,omitempty"`
	Timestamp string `json:"timestamp"`
}

func write(c *gin.Context, status int, mensagem string, dados any) {
	c.JSON(status, SuccessBody{
		Mensagem:  mensagem,
		Sucesso:   true,
		Dados:     dados,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func OK(c *gin.Context, mensagem string, dados any) {
	write(c, http.StatusOK, mensagem, dados)
}

func Created(c *gin.Context, mensagem string, dados any) {
	write(c, http.StatusCreated, mensagem, dados)
}

// Dados responde uma coleção crua, sem envelope (listagens GET).
func Dados(c *gin.Context, dados any) {
	c.JSON(http.StatusOK, dados)
}
