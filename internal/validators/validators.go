package validators

import (
	"regexp"
	"strings"
	"time"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func EmailValido(email string) bool {
	return emailRe.MatchString(email)
}

// TelefoneValido aceita telefone brasileiro com 10 dígitos (fixo) ou 11
// (celular), ignorando máscara. Sequências de um único dígito repetido
// são rejeitadas.
func TelefoneValido(telefone string) bool {
	var digitos strings.Builder
	for _, r := range telefone {
		if r >= '0' && r <= '9' {
			digitos.WriteRune(r)
		}
	}

	limpo := digitos.String()
	if len(limpo) != 10 && len(limpo) != 11 {
		return false
	}

	for i := 1; i < len(limpo); i++ {
		if limpo[i] != limpo[0] {
			return true
		}
	}
	return false
}

func DataValida(data string) bool {
	_, err := time.Parse("02/01/2006", data)
	return err == nil
}

func HorarioValido(horario string) bool {
	_, err := time.Parse("15:04", horario)
	return err == nil
}

func SenhaValida(senha string) bool {
	return len(senha) >= 6
}
