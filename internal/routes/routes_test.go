package routes

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barbearia-api/internal/config"
	"github.com/BruksfildServices01/barbearia-api/internal/middleware"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		ServerPort: "8080",
		JWTSecret:  "segredo-de-teste",
		DataDir:    filepath.Join(t.TempDir(), "dados"),
		BackupDir:  filepath.Join(t.TempDir(), "backups"),
		BackupKeep: 5,
		LogLevel:   "disabled",
	}

	r := gin.New()
	r.Use(middleware.Identify(cfg))
	RegisterRoutes(r, cfg, zerolog.Nop())
	return r, cfg
}

func seedAdmin(t *testing.T, cfg *config.Config) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
	require.NoError(t, err)

	usuarios := store.New[*models.Usuario](filepath.Join(cfg.DataDir, "usuarios.json"))
	require.NoError(t, usuarios.Save([]*models.Usuario{{
		ID:      1,
		Usuario: "admin",
		Senha:   string(hash),
		Nome:    "Administrador",
		Tipo:    models.TipoAdmin,
	}}))
}

func do(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func login(t *testing.T, r *gin.Engine, usuario, senha string) string {
	t.Helper()

	w := do(t, r, http.MethodPost, "/api/usuarios/login", gin.H{
		"usuario": usuario,
		"senha":   senha,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	dados, ok := decode(t, w)["dados"].(map[string]any)
	require.True(t, ok)
	token, _ := dados["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func registraAlice(t *testing.T, r *gin.Engine) {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/usuarios/registrar", gin.H{
		"usuario": "alice",
		"senha":   "secret1",
		"nome":    "Alice",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestRegistrarELogin(t *testing.T) {
	r, _ := newTestRouter(t)

	registraAlice(t, r)

	w := do(t, r, http.MethodPost, "/api/usuarios/login", gin.H{
		"usuario": "alice",
		"senha":   "secret1",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["sucesso"])
	dados := body["dados"].(map[string]any)
	assert.Equal(t, "cliente", dados["tipo"])
	assert.NotEmpty(t, dados["token"])
}

func TestRegistrar_UsuarioDuplicado(t *testing.T) {
	r, _ := newTestRouter(t)

	registraAlice(t, r)

	w := do(t, r, http.MethodPost, "/api/usuarios/registrar", gin.H{
		"usuario": "alice",
		"senha":   "outra-senha",
		"nome":    "Alice 2",
	}, "")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Usuário já existe", decode(t, w)["erro"])
}

func TestLogin_SenhaErrada(t *testing.T) {
	r, _ := newTestRouter(t)
	registraAlice(t, r)

	w := do(t, r, http.MethodPost, "/api/usuarios/login", gin.H{
		"usuario": "alice",
		"senha":   "errada1",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Usuário ou senha inválidos", decode(t, w)["erro"])
}

func TestClienteCriar_SemToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/clientes/", gin.H{"nome": "Bob"}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestClienteCriar_ClienteComumNegado(t *testing.T) {
	r, _ := newTestRouter(t)
	registraAlice(t, r)
	token := login(t, r, "alice", "secret1")

	w := do(t, r, http.MethodPost, "/api/clientes/", gin.H{"nome": "Bob"}, token)

	assert.Equal(t, http.StatusForbidden, w.Code)
	body := decode(t, w)
	assert.NotEmpty(t, body["erro"])
}

func TestClienteCriar_Admin(t *testing.T) {
	r, cfg := newTestRouter(t)
	seedAdmin(t, cfg)
	token := login(t, r, "admin", "1234")

	w := do(t, r, http.MethodPost, "/api/clientes/", gin.H{
		"nome":     "Bob",
		"telefone": "11999990000",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	dados := decode(t, w)["dados"].(map[string]any)
	assert.Equal(t, float64(1), dados["id"])

	// mesmo telefone de novo
	w = do(t, r, http.MethodPost, "/api/clientes/", gin.H{
		"nome":     "Outro Bob",
		"telefone": "11999990000",
	}, token)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Cliente com este telefone já existe", decode(t, w)["erro"])
}

func TestClientes_ListagemPublica(t *testing.T) {
	r, cfg := newTestRouter(t)
	seedAdmin(t, cfg)
	token := login(t, r, "admin", "1234")

	do(t, r, http.MethodPost, "/api/clientes/", gin.H{"nome": "Bob"}, token)

	// GET não exige sessão
	w := do(t, r, http.MethodGet, "/api/clientes/", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var lista []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lista))
	require.Len(t, lista, 1)
	assert.Equal(t, "Bob", lista[0]["nome"])
}

func TestAgendamentoCriar_Duplicado(t *testing.T) {
	r, _ := newTestRouter(t)
	registraAlice(t, r)
	token := login(t, r, "alice", "secret1")

	payload := gin.H{
		"nome_cliente": "Bob",
		"data":         "10/08/2026",
		"horario":      "14:00",
		"pagamento":    "Pix",
	}

	w := do(t, r, http.MethodPost, "/api/agendamentos/", payload, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	dados := decode(t, w)["dados"].(map[string]any)
	assert.Equal(t, "Agendado", dados["status"])

	w = do(t, r, http.MethodPost, "/api/agendamentos/", payload, token)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAgendamentoCriar_DataInvalida(t *testing.T) {
	r, _ := newTestRouter(t)
	registraAlice(t, r)
	token := login(t, r, "alice", "secret1")

	w := do(t, r, http.MethodPost, "/api/agendamentos/", gin.H{
		"nome_cliente": "Bob",
		"data":         "2026-08-10",
		"horario":      "14:00",
	}, token)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVoucher_CriarEUsar(t *testing.T) {
	r, cfg := newTestRouter(t)
	seedAdmin(t, cfg)
	admin := login(t, r, "admin", "1234")

	w := do(t, r, http.MethodPost, "/api/vouchers/", gin.H{
		"codigo":      "BEMVINDO",
		"porcentagem": 10,
	}, admin)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	registraAlice(t, r)
	alice := login(t, r, "alice", "secret1")

	// voucher público: qualquer autenticado resgata, uma única vez
	w = do(t, r, http.MethodPost, "/api/vouchers/usar/1", nil, alice)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/vouchers/usar/1", nil, alice)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRelatorios_SomenteAdmin(t *testing.T) {
	r, cfg := newTestRouter(t)
	seedAdmin(t, cfg)

	w := do(t, r, http.MethodGet, "/api/relatorios/", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	admin := login(t, r, "admin", "1234")
	w = do(t, r, http.MethodGet, "/api/relatorios/", nil, admin)
	require.Equal(t, http.StatusOK, w.Code)

	resumo := decode(t, w)
	assert.Contains(t, resumo, "total_agendamentos")
	assert.Contains(t, resumo, "receita_total")
}

func TestBackups_Criar(t *testing.T) {
	r, cfg := newTestRouter(t)
	seedAdmin(t, cfg)
	admin := login(t, r, "admin", "1234")

	// garante ao menos uma coleção em disco
	do(t, r, http.MethodPost, "/api/clientes/", gin.H{"nome": "Bob"}, admin)

	w := do(t, r, http.MethodPost, "/api/backups/", nil, admin)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/backups/", nil, admin)
	require.Equal(t, http.StatusOK, w.Code)

	var lista []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lista))
	assert.NotEmpty(t, lista)
}
