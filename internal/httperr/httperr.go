package httperr

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Error é uma falha de negócio que já conhece seu status HTTP. Usecases e
// handlers devolvem estes erros; o formato de resposta é
// {erro, codigo, timestamp}.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// --------- Construtores ---------

func Validation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

func Auth(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

func AlreadyUsed(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

func Expired(message string) *Error {
	return &Error{Status: http.StatusGone, Message: message}
}

func Storage(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message}
}

// --------- Formato de resposta ---------

type Body struct {
	Erro      string `json:"erro"`
	Codigo    int    `json:"codigo"`
	Timestamp string `json:"timestamp"`
}

func WriteStatus(c *gin.Context, status int, message string) {
	c.JSON(status, Body{
		Erro:      message,
		Codigo:    status,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// Write converte err para o formato de resposta. Erro desconhecido vira um
// 500 genérico para não vazar detalhe interno ao cliente.
func Write(c *gin.Context, err error) {
	var e *Error
	if errors.As(err, &e) {
		WriteStatus(c, e.Status, e.Message)
		return
	}
	WriteStatus(c, http.StatusInternalServerError, "Erro interno do servidor")
}

func AbortStatus(c *gin.Context, status int, message string) {
	WriteStatus(c, status, message)
	c.Abort()
}
