// Seed cria o usuário administrador padrão (admin / 1234) quando ele ainda
// não existe, para que uma instalação nova tenha como entrar no sistema.
package main

import (
	"path/filepath"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barbearia-api/internal/config"
	"github.com/BruksfildServices01/barbearia-api/internal/logger"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/store"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	usuarios := store.New[*models.Usuario](filepath.Join(cfg.DataDir, "usuarios.json"))

	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao gerar hash da senha")
	}

	err = usuarios.Update(func(regs []*models.Usuario) ([]*models.Usuario, error) {
		for _, u := range regs {
			if u.Usuario == "admin" {
				log.Info().Msg("usuário admin já existe, nada a fazer")
				return regs, nil
			}
		}

		log.Info().Msg("criando usuário admin")
		return append(regs, &models.Usuario{
			ID:      store.NextID(regs),
			Usuario: "admin",
			Senha:   string(hash),
			Nome:    "Administrador",
			Tipo:    models.TipoAdmin,
		}), nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao gravar usuarios.json")
	}
}
