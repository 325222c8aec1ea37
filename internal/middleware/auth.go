package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/barbearia-api/internal/config"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
)

const (
	ContextUsuario = "usuario"
	ContextTipo    = "tipo"
)

const (
	msgNaoAutenticado  = "Usuário não autenticado. Faça login para continuar."
	msgPermissaoNegada = "Permissão negada. Apenas administradores podem realizar esta ação."
)

// Identify extrai a identidade {usuario, tipo} do token Bearer quando
// presente e válido. Nunca aborta: rotas públicas passam anônimas e os
// guards RequireAuth/RequireAdmin decidem depois.
func Identify(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.Next()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.Next()
			return
		}

		usuario, ok1 := claims["sub"].(string)
		tipo, ok2 := claims["tipo"].(string)
		if !ok1 || !ok2 || usuario == "" {
			c.Next()
			return
		}

		c.Set(ContextUsuario, usuario)
		c.Set(ContextTipo, tipo)
		c.Next()
	}
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, _, ok := UsuarioLogado(c); !ok {
			httperr.AbortStatus(c, 401, msgNaoAutenticado)
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, tipo, ok := UsuarioLogado(c)
		if !ok {
			httperr.AbortStatus(c, 401, msgNaoAutenticado)
			return
		}
		if tipo != "admin" {
			httperr.AbortStatus(c, 403, msgPermissaoNegada)
			return
		}
		c.Next()
	}
}

// UsuarioLogado devolve a identidade da sessão atual, se houver.
func UsuarioLogado(c *gin.Context) (usuario, tipo string, ok bool) {
	u, exists := c.Get(ContextUsuario)
	if !exists {
		return "", "", false
	}
	usuario, _ = u.(string)
	if t, exists := c.Get(ContextTipo); exists {
		tipo, _ = t.(string)
	}
	return usuario, tipo, usuario != ""
}
