package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

func newTestColecao(t *testing.T) *Colecao[*models.Cliente] {
	t.Helper()
	return New[*models.Cliente](filepath.Join(t.TempDir(), "clientes.json"))
}

func TestLoad_ArquivoInexistente(t *testing.T) {
	c := newTestColecao(t)

	regs := c.Load()

	assert.NotNil(t, regs)
	assert.Empty(t, regs)
}

func TestLoad_ArquivoCorrompido(t *testing.T) {
	c := newTestColecao(t)
	require.NoError(t, os.WriteFile(c.Path(), []byte("isto não é json"), 0o644))

	assert.Empty(t, c.Load())
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	c := newTestColecao(t)

	originais := []*models.Cliente{
		{ID: 1, Nome: "Bob", Telefone: "11999990000"},
		{ID: 2, Nome: "Ana", Email: "ana@example.com"},
	}
	require.NoError(t, c.Save(originais))

	carregados := c.Load()
	require.Len(t, carregados, 2)
	assert.Equal(t, originais[0], carregados[0])
	assert.Equal(t, originais[1], carregados[1])

	// gravar de volta o que foi lido não muda nada
	require.NoError(t, c.Save(carregados))
	assert.Equal(t, carregados, c.Load())
}

func TestSave_CriaDiretorio(t *testing.T) {
	dir := t.TempDir()
	c := New[*models.Cliente](filepath.Join(dir, "sub", "dados", "clientes.json"))

	require.NoError(t, c.Save([]*models.Cliente{{ID: 1, Nome: "Bob"}}))

	_, err := os.Stat(c.Path())
	assert.NoError(t, err)
}

func TestSave_SemResiduoTemporario(t *testing.T) {
	c := newTestColecao(t)

	require.NoError(t, c.Save([]*models.Cliente{{ID: 1, Nome: "Bob"}}))

	_, err := os.Stat(c.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestSave_ColecaoVaziaViraArrayJSON(t *testing.T) {
	c := newTestColecao(t)

	require.NoError(t, c.Save(nil))

	data, err := os.ReadFile(c.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestNextID(t *testing.T) {
	assert.Equal(t, 1, NextID([]*models.Cliente{}))

	regs := []*models.Cliente{{ID: 1}, {ID: 7}, {ID: 3}}
	assert.Equal(t, 8, NextID(regs))
}

func TestNextID_IgnoraLacunas(t *testing.T) {
	c := newTestColecao(t)

	// remoções no meio da coleção deixam lacunas que nunca são
	// preenchidas: o próximo id vem sempre do maior existente
	regs := []*models.Cliente{{ID: 1}, {ID: 2}, {ID: 5}}
	require.NoError(t, c.Save(regs))

	restantes, removed := RemoveByID(c.Load(), 2)
	require.True(t, removed)
	require.NoError(t, c.Save(restantes))

	assert.Equal(t, 6, NextID(c.Load()))
}

func TestFindByID(t *testing.T) {
	regs := []*models.Cliente{{ID: 1, Nome: "Bob"}, {ID: 2, Nome: "Ana"}}

	encontrado, ok := FindByID(regs, 2)
	require.True(t, ok)
	assert.Equal(t, "Ana", encontrado.Nome)

	_, ok = FindByID(regs, 99)
	assert.False(t, ok)
}

func TestRemoveByID(t *testing.T) {
	regs := []*models.Cliente{{ID: 1}, {ID: 2}, {ID: 3}}

	out, removed := RemoveByID(regs, 2)
	assert.True(t, removed)
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].ID)
	assert.Equal(t, 3, out[1].ID)

	out, removed = RemoveByID(regs, 42)
	assert.False(t, removed)
	assert.Len(t, out, 3)
}

func TestUpdate_ErroCancelaGravacao(t *testing.T) {
	c := newTestColecao(t)
	require.NoError(t, c.Save([]*models.Cliente{{ID: 1, Nome: "Bob"}}))

	err := c.Update(func(regs []*models.Cliente) ([]*models.Cliente, error) {
		return nil, httperr.Conflict("Cliente com este telefone já existe")
	})
	require.Error(t, err)

	// estado em disco intacto
	regs := c.Load()
	require.Len(t, regs, 1)
	assert.Equal(t, "Bob", regs[0].Nome)
}

func TestUpdate_AplicaMutacao(t *testing.T) {
	c := newTestColecao(t)

	err := c.Update(func(regs []*models.Cliente) ([]*models.Cliente, error) {
		return append(regs, &models.Cliente{ID: NextID(regs), Nome: "Bob"}), nil
	})
	require.NoError(t, err)

	regs := c.Load()
	require.Len(t, regs, 1)
	assert.Equal(t, 1, regs[0].ID)
}
