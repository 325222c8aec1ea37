package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog"
)

// Manager cria cópias de segurança comprimidas dos arquivos de dados:
// <nome>_<timestamp>.json.gz, mantendo apenas as N mais recentes de cada
// arquivo.
type Manager struct {
	dataDir   string
	backupDir string
	keep      int
	log       zerolog.Logger
}

type Info struct {
	Arquivo   string `json:"arquivo"`
	Tamanho   int64  `json:"tamanho"`
	CriadoEm  string `json:"criado_em"`
	Colecao   string `json:"colecao"`
	Timestamp string `json:"-"`
}

func NewManager(dataDir, backupDir string, keep int, log zerolog.Logger) *Manager {
	if keep <= 0 {
		keep = 5
	}
	return &Manager{dataDir: dataDir, backupDir: backupDir, keep: keep, log: log}
}

// BackupFile copia e comprime um arquivo de dados. Arquivo inexistente não
// é erro: simplesmente não há o que copiar ainda.
func (m *Manager) BackupFile(nome string) (string, error) {
	origem := filepath.Join(m.dataDir, nome)
	src, err := os.Open(origem)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("abrir %s: %w", origem, err)
	}
	defer src.Close()

	if err := os.MkdirAll(m.backupDir, 0o755); err != nil {
		return "", fmt.Errorf("criar diretório de backup: %w", err)
	}

	base := strings.TrimSuffix(nome, filepath.Ext(nome))
	stamp := time.Now().Format("20060102_150405")
	destino := filepath.Join(m.backupDir, fmt.Sprintf("%s_%s.json.gz", base, stamp))

	dst, err := os.Create(destino)
	if err != nil {
		return "", fmt.Errorf("criar %s: %w", destino, err)
	}

	gz := gzip.NewWriter(dst)
	if _, err := io.Copy(gz, src); err != nil {
		gz.Close()
		dst.Close()
		os.Remove(destino)
		return "", fmt.Errorf("comprimir %s: %w", nome, err)
	}
	if err := gz.Close(); err != nil {
		dst.Close()
		os.Remove(destino)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(destino)
		return "", err
	}

	m.prune(base)
	return filepath.Base(destino), nil
}

// BackupAll cobre todas as coleções informadas e devolve os arquivos
// criados. Falha em uma coleção interrompe: backup parcial é reportado.
func (m *Manager) BackupAll(nomes []string) ([]string, error) {
	criados := make([]string, 0, len(nomes))
	for _, nome := range nomes {
		arq, err := m.BackupFile(nome)
		if err != nil {
			return criados, err
		}
		if arq != "" {
			criados = append(criados, arq)
		}
	}
	return criados, nil
}

func (m *Manager) List() []Info {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return []Info{}
	}

	infos := make([]Info, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json.gz") {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		infos = append(infos, Info{
			Arquivo:  e.Name(),
			Tamanho:  fi.Size(),
			CriadoEm: fi.ModTime().Format(time.RFC3339),
			Colecao:  colecaoDe(e.Name()),
		})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Arquivo > infos[j].Arquivo })
	return infos
}

// RestoreLatest descomprime o backup mais recente da coleção por cima do
// arquivo de dados.
func (m *Manager) RestoreLatest(nome string) error {
	base := strings.TrimSuffix(nome, filepath.Ext(nome))
	backups := m.backupsDe(base)
	if len(backups) == 0 {
		return fmt.Errorf("nenhum backup de %s", nome)
	}

	src, err := os.Open(backups[0])
	if err != nil {
		return err
	}
	defer src.Close()

	gz, err := gzip.NewReader(src)
	if err != nil {
		return fmt.Errorf("ler backup %s: %w", backups[0], err)
	}
	defer gz.Close()

	if err := os.MkdirAll(m.dataDir, 0o755); err != nil {
		return err
	}

	destino := filepath.Join(m.dataDir, nome)
	dst, err := os.Create(destino)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, gz); err != nil {
		return fmt.Errorf("restaurar %s: %w", nome, err)
	}

	m.log.Info().Str("colecao", nome).Str("backup", filepath.Base(backups[0])).Msg("backup restaurado")
	return nil
}

// backupsDe lista os backups da coleção, mais recentes primeiro. O
// timestamp no nome ordena lexicograficamente.
func (m *Manager) backupsDe(base string) []string {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasPrefix(e.Name(), base+"_") && strings.HasSuffix(e.Name(), ".json.gz") {
			paths = append(paths, filepath.Join(m.backupDir, e.Name()))
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(paths)))
	return paths
}

func (m *Manager) prune(base string) {
	paths := m.backupsDe(base)
	for _, p := range paths[min(m.keep, len(paths)):] {
		if err := os.Remove(p); err != nil {
			m.log.Warn().Err(err).Str("arquivo", p).Msg("falha ao remover backup antigo")
		}
	}
}

func colecaoDe(arquivo string) string {
	nome := strings.TrimSuffix(arquivo, ".json.gz")
	if i := strings.LastIndex(nome, "_"); i > 0 {
		// remove o sufixo de hora e depois o de data
		if j := strings.LastIndex(nome[:i], "_"); j > 0 {
			return nome[:j] + ".json"
		}
	}
	return arquivo
}
