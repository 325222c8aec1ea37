package audit

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/store"
)

func newTestLogger(t *testing.T) (*Logger, *store.Colecao[*models.RegistroAuditoria]) {
	t.Helper()
	registros := store.New[*models.RegistroAuditoria](filepath.Join(t.TempDir(), "auditoria.json"))
	return New(registros), registros
}

func TestLog(t *testing.T) {
	logger, registros := newTestLogger(t)

	id := 7
	require.NoError(t, logger.Log(Event{
		Usuario:    "alice",
		Acao:       "Cliente adicionado",
		Entidade:   "cliente",
		EntidadeID: &id,
		Detalhes:   map[string]any{"nome": "Bob"},
	}))
	require.NoError(t, logger.Log(Event{Usuario: "alice", Acao: "Logout realizado"}))

	regs := registros.Load()
	require.Len(t, regs, 2)

	assert.Equal(t, 1, regs[0].ID)
	assert.Equal(t, "Cliente adicionado", regs[0].Acao)
	assert.Equal(t, "cliente", regs[0].Entidade)
	require.NotNil(t, regs[0].EntidadeID)
	assert.Equal(t, 7, *regs[0].EntidadeID)
	assert.NotEmpty(t, regs[0].Timestamp)

	assert.Equal(t, 2, regs[1].ID)
}

func TestLog_UsuarioVazioViraAnonimo(t *testing.T) {
	logger, registros := newTestLogger(t)

	require.NoError(t, logger.Log(Event{Acao: "Tentativa de login falhou"}))

	regs := registros.Load()
	require.Len(t, regs, 1)
	assert.Equal(t, "Anônimo", regs[0].Usuario)
}
