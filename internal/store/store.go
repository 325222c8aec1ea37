package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	json "github.com/goccy/go-json"
)

// Registro é qualquer entidade persistida em uma coleção.
type Registro interface {
	GetID() int
	SetID(int)
}

// Colecao é um arquivo JSON (array de objetos) com os registros de uma
// entidade. O arquivo é relido do disco a cada leitura e reescrito por
// inteiro a cada gravação; o mutex serializa escritores concorrentes sobre
// o mesmo arquivo.
type Colecao[T Registro] struct {
	caminho string
	mu      sync.Mutex
}

func New[T Registro](caminho string) *Colecao[T] {
	return &Colecao[T]{caminho: caminho}
}

func (c *Colecao[T]) Path() string { return c.caminho }

// Load lê a coleção do disco. Arquivo ausente ou corrompido vira coleção
// vazia, nunca erro: o sistema se recupera criando o arquivo na próxima
// gravação.
func (c *Colecao[T]) Load() []T {
	data, err := os.ReadFile(c.caminho)
	if err != nil {
		return []T{}
	}

	var regs []T
	if err := json.Unmarshal(data, &regs); err != nil {
		return []T{}
	}
	if regs == nil {
		regs = []T{}
	}
	return regs
}

// Save grava a coleção inteira, pretty-printed, com escrita atômica
// (tmp + fsync + rename) para nunca deixar um arquivo parcial no lugar
// do dado anterior.
func (c *Colecao[T]) Save(regs []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(regs)
}

func (c *Colecao[T]) save(regs []T) error {
	if regs == nil {
		regs = []T{}
	}

	data, err := json.MarshalIndent(regs, "", "    ")
	if err != nil {
		return fmt.Errorf("serializar %s: %w", c.caminho, err)
	}

	if dir := filepath.Dir(c.caminho); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("criar diretório %s: %w", dir, err)
		}
	}

	tmp := c.caminho + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("criar %s: %w", tmp, err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("gravar %s: %w", tmp, err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("sync %s: %w", tmp, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("fechar %s: %w", tmp, err)
	}

	return os.Rename(tmp, c.caminho)
}

// Update executa um ciclo completo ler-modificar-gravar sob o mutex da
// coleção. fn recebe o estado atual e devolve o novo; devolver erro
// cancela a gravação.
func (c *Colecao[T]) Update(fn func(regs []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	regs, err := fn(c.Load())
	if err != nil {
		return err
	}
	return c.save(regs)
}

// NextID devolve 1 para coleção vazia, senão max(id)+1. IDs de registros
// removidos nunca são reaproveitados enquanto existir um id maior.
func NextID[T Registro](regs []T) int {
	max := 0
	for _, r := range regs {
		if r.GetID() > max {
			max = r.GetID()
		}
	}
	return max + 1
}

func FindByID[T Registro](regs []T, id int) (T, bool) {
	for _, r := range regs {
		if r.GetID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// RemoveByID devolve a coleção sem o registro e se algo foi removido.
func RemoveByID[T Registro](regs []T, id int) ([]T, bool) {
	out := make([]T, 0, len(regs))
	removed := false
	for _, r := range regs {
		if r.GetID() == id {
			removed = true
			continue
		}
		out = append(out, r)
	}
	return out, removed
}
