package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(t.TempDir(), t.TempDir(), 5, zerolog.Nop())
}

func escreveDados(t *testing.T, m *Manager, nome, conteudo string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(m.dataDir, nome), []byte(conteudo), 0o644))
}

func leGzip(t *testing.T, caminho string) string {
	t.Helper()
	f, err := os.Open(caminho)
	require.NoError(t, err)
	defer f.Close()

	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	defer gz.Close()

	data, err := io.ReadAll(gz)
	require.NoError(t, err)
	return string(data)
}

func TestBackupFile(t *testing.T) {
	m := newTestManager(t)
	escreveDados(t, m, "clientes.json", `[{"id": 1}]`)

	arq, err := m.BackupFile("clientes.json")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(arq, "clientes_"))
	assert.True(t, strings.HasSuffix(arq, ".json.gz"))
	assert.Equal(t, `[{"id": 1}]`, leGzip(t, filepath.Join(m.backupDir, arq)))
}

func TestBackupFile_OrigemInexistente(t *testing.T) {
	m := newTestManager(t)

	arq, err := m.BackupFile("clientes.json")

	assert.NoError(t, err)
	assert.Empty(t, arq)
}

func TestBackupFile_MantemApenasMaisRecentes(t *testing.T) {
	m := newTestManager(t)
	escreveDados(t, m, "clientes.json", "[]")

	// backups antigos pré-existentes; o timestamp no nome ordena
	for i := 0; i < 6; i++ {
		nome := fmt.Sprintf("clientes_20240101_00000%d.json.gz", i)
		require.NoError(t, os.WriteFile(filepath.Join(m.backupDir, nome), []byte("x"), 0o644))
	}

	_, err := m.BackupFile("clientes.json")
	require.NoError(t, err)

	restantes := m.backupsDe("clientes")
	assert.Len(t, restantes, 5)

	// os descartados são sempre os mais antigos
	for _, p := range restantes {
		assert.NotContains(t, p, "_000000")
		assert.NotContains(t, p, "_000001")
	}
}

func TestBackupAll(t *testing.T) {
	m := newTestManager(t)
	escreveDados(t, m, "clientes.json", "[]")
	escreveDados(t, m, "cortes.json", "[]")

	criados, err := m.BackupAll([]string{"clientes.json", "cortes.json", "vouchers.json"})
	require.NoError(t, err)

	// vouchers.json não existe ainda e é pulado em silêncio
	require.Len(t, criados, 2)
	assert.True(t, strings.HasPrefix(criados[0], "clientes_"))
	assert.True(t, strings.HasPrefix(criados[1], "cortes_"))
}

func TestList(t *testing.T) {
	m := newTestManager(t)
	escreveDados(t, m, "clientes.json", "[]")

	_, err := m.BackupFile("clientes.json")
	require.NoError(t, err)

	infos := m.List()
	require.Len(t, infos, 1)
	assert.Equal(t, "clientes.json", infos[0].Colecao)
	assert.Greater(t, infos[0].Tamanho, int64(0))
	assert.NotEmpty(t, infos[0].CriadoEm)
}

func TestRestoreLatest(t *testing.T) {
	m := newTestManager(t)
	escreveDados(t, m, "clientes.json", `[{"id": 1}]`)

	_, err := m.BackupFile("clientes.json")
	require.NoError(t, err)

	// simula perda de dados após o backup
	escreveDados(t, m, "clientes.json", "[]")

	require.NoError(t, m.RestoreLatest("clientes.json"))

	data, err := os.ReadFile(filepath.Join(m.dataDir, "clientes.json"))
	require.NoError(t, err)
	assert.Equal(t, `[{"id": 1}]`, string(data))
}

func TestRestoreLatest_SemBackup(t *testing.T) {
	m := newTestManager(t)

	assert.Error(t, m.RestoreLatest("clientes.json"))
}
