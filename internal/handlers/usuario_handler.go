package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	"github.com/BruksfildServices01/barbearia-api/internal/config"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-api/internal/middleware"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/store"
	"github.com/BruksfildServices01/barbearia-api/internal/validators"
)

type UsuarioHandler struct {
	usuarios *store.Colecao[*models.Usuario]
	audit    *audit.Dispatcher
	config   *config.Config
}

func NewUsuarioHandler(
	usuarios *store.Colecao[*models.Usuario],
	auditDispatcher *audit.Dispatcher,
	cfg *config.Config,
) *UsuarioHandler {
	return &UsuarioHandler{usuarios: usuarios, audit: auditDispatcher, config: cfg}
}

// --------- Requests ---------

type RegistrarRequest struct {
	Usuario string `json:"usuario" binding:"required"`
	Senha   string `json:"senha" binding:"required"`
	Nome    string `json:"nome" binding:"required"`
	Email   string `json:"email"`
}

type LoginRequest struct {
	Usuario string `json:"usuario" binding:"required"`
	Senha   string `json:"senha" binding:"required"`
}

type EditarPerfilRequest struct {
	Usuario string  `json:"usuario" binding:"required"`
	Nome    *string `json:"nome,omitempty"`
	Senha   *string `json:"senha,omitempty"`
	Email   *string `json:"email,omitempty"`
}

// --------- Handlers ---------

// Listar devolve todos os usuários sem o campo senha.
func (h *UsuarioHandler) Listar(c *gin.Context) {
	usuarios := h.usuarios.Load()

	out := make([]gin.H, 0, len(usuarios))
	for _, u := range usuarios {
		item := gin.H{
			"id":      u.ID,
			"usuario": u.Usuario,
			"nome":    u.Nome,
			"tipo":    u.Tipo,
		}
		if u.Email != "" {
			item["email"] = u.Email
		}
		out = append(out, item)
	}

	httpresp.Dados(c, out)
}

func (h *UsuarioHandler) Registrar(c *gin.Context) {
	var req RegistrarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.WriteStatus(c, http.StatusBadRequest, "Campos obrigatórios ausentes: usuario, senha, nome")
		return
	}

	if req.Email != "" && !validators.EmailValido(req.Email) {
		httperr.Write(c, httperr.Validation("Formato de email inválido"))
		return
	}
	if !validators.SenhaValida(req.Senha) {
		httperr.Write(c, httperr.Validation("Senha deve ter pelo menos 6 caracteres"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		httperr.Write(c, httperr.Storage("Erro ao processar senha"))
		return
	}

	var novo *models.Usuario
	err = h.usuarios.Update(func(regs []*models.Usuario) ([]*models.Usuario, error) {
		for _, u := range regs {
			if u.Usuario == req.Usuario {
				return nil, httperr.Conflict("Usuário já existe")
			}
		}

		novo = &models.Usuario{
			ID:      store.NextID(regs),
			Usuario: req.Usuario,
			Senha:   string(hash),
			Nome:    req.Nome,
			Tipo:    models.TipoCliente,
			Email:   req.Email,
		}
		return append(regs, novo), nil
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Usuario:  req.Usuario,
		Acao:     "Usuário registrado",
		Entidade: "usuario",
		Detalhes: map[string]any{"nome": req.Nome},
	})

	httpresp.Created(c, "Usuário registrado com sucesso!", gin.H{
		"id":      novo.ID,
		"usuario": novo.Usuario,
		"nome":    novo.Nome,
		"tipo":    novo.Tipo,
	})
}

func (h *UsuarioHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.WriteStatus(c, http.StatusBadRequest, "Campos obrigatórios ausentes: usuario, senha")
		return
	}

	// Credencial inválida nunca revela se o usuário existe.
	usuarios := h.usuarios.Load()
	var encontrado *models.Usuario
	for _, u := range usuarios {
		if u.Usuario == req.Usuario {
			encontrado = u
			break
		}
	}

	if encontrado == nil ||
		bcrypt.CompareHashAndPassword([]byte(encontrado.Senha), []byte(req.Senha)) != nil {
		h.audit.Dispatch(audit.Event{
			Usuario: req.Usuario,
			Acao:    "Tentativa de login falhou",
		})
		httperr.Write(c, httperr.Auth("Usuário ou senha inválidos"))
		return
	}

	token, err := h.gerarToken(encontrado)
	if err != nil {
		httperr.Write(c, httperr.Storage("Erro ao gerar token de sessão"))
		return
	}

	h.audit.Dispatch(audit.Event{Usuario: encontrado.Usuario, Acao: "Login realizado"})

	httpresp.OK(c, "Login realizado com sucesso!", gin.H{
		"tipo":  encontrado.Tipo,
		"token": token,
	})
}

// Logout existe por simetria com o cliente: a sessão é um JWT sem estado no
// servidor, então só registramos a ação.
func (h *UsuarioHandler) Logout(c *gin.Context) {
	usuario, _, _ := middleware.UsuarioLogado(c)
	h.audit.Dispatch(audit.Event{Usuario: usuario, Acao: "Logout realizado"})
	httpresp.OK(c, "Logout realizado com sucesso!", nil)
}

func (h *UsuarioHandler) EditarPerfil(c *gin.Context) {
	var req EditarPerfilRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.WriteStatus(c, http.StatusBadRequest, "Campos obrigatórios ausentes: usuario")
		return
	}

	logado, tipo, _ := middleware.UsuarioLogado(c)
	if req.Usuario != logado && tipo != models.TipoAdmin {
		httperr.Write(c, httperr.Forbidden("Você só pode editar o próprio perfil"))
		return
	}

	if req.Email != nil && *req.Email != "" && !validators.EmailValido(*req.Email) {
		httperr.Write(c, httperr.Validation("Formato de email inválido"))
		return
	}
	if req.Senha != nil && !validators.SenhaValida(*req.Senha) {
		httperr.Write(c, httperr.Validation("Senha deve ter pelo menos 6 caracteres"))
		return
	}

	var hash string
	if req.Senha != nil {
		b, err := bcrypt.GenerateFromPassword([]byte(*req.Senha), bcrypt.DefaultCost)
		if err != nil {
			httperr.Write(c, httperr.Storage("Erro ao processar senha"))
			return
		}
		hash = string(b)
	}

	alterados := []string{}
	err := h.usuarios.Update(func(regs []*models.Usuario) ([]*models.Usuario, error) {
		for _, u := range regs {
			if u.Usuario != req.Usuario {
				continue
			}
			if req.Nome != nil {
				u.Nome = *req.Nome
				alterados = append(alterados, "nome")
			}
			if req.Senha != nil {
				u.Senha = hash
				alterados = append(alterados, "senha")
			}
			if req.Email != nil {
				u.Email = *req.Email
				alterados = append(alterados, "email")
			}
			return regs, nil
		}
		return nil, httperr.NotFound("Usuário não encontrado")
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Usuario:  logado,
		Acao:     "Perfil editado",
		Entidade: "usuario",
		Detalhes: map[string]any{"campos_alterados": strings.Join(alterados, ", ")},
	})

	httpresp.OK(c, "Perfil atualizado com sucesso!", nil)
}

// --------- JWT ---------

func (h *UsuarioHandler) gerarToken(u *models.Usuario) (string, error) {
	claims := jwt.MapClaims{
		"sub":  u.Usuario,
		"tipo": u.Tipo,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
