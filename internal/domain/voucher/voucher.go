package voucher

import (
	"crypto/rand"
	"time"

	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

const (
	// FormatoValidade é o formato de data usado em validade e nos
	// agendamentos (DD/MM/AAAA).
	FormatoValidade = "02/01/2006"

	PorcentagemPadrao     = 10
	PorcentagemFidelidade = 15
	ValidadeFidelidade    = 60 * 24 * time.Hour
)

const codigoChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GerarCodigoFidelidade monta "FIDELIDADE-" + 6 caracteres aleatórios
// maiúsculos/alfanuméricos.
func GerarCodigoFidelidade() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// fallback determinístico: nunca falhar a criação do voucher
		for i := range buf {
			buf[i] = codigoChars[i]
		}
	}
	for i, b := range buf {
		buf[i] = codigoChars[int(b)%len(codigoChars)]
	}
	return "FIDELIDADE-" + string(buf)
}

// NovoFidelidade cria o voucher de fidelidade do usuário: 15% de desconto,
// válido por 60 dias.
func NovoFidelidade(usuario string, agora time.Time) *models.Voucher {
	return &models.Voucher{
		Codigo:      GerarCodigoFidelidade(),
		Descricao:   "Voucher de fidelidade - 5 agendamentos",
		Validade:    agora.Add(ValidadeFidelidade).Format(FormatoValidade),
		Usuario:     usuario,
		Porcentagem: PorcentagemFidelidade,
	}
}

// Vencido interpreta a validade. Data que não parseia nunca vence (o dado
// legado tem validades em formatos variados).
func Vencido(v *models.Voucher, agora time.Time) bool {
	if v.Validade == "" {
		return false
	}
	limite, err := time.Parse(FormatoValidade, v.Validade)
	if err != nil {
		return false
	}
	return limite.Before(agora.Truncate(24 * time.Hour))
}

// PodeUsar valida a máquina de estados do resgate: só o dono (ou qualquer
// autenticado, se público), uma única vez, dentro da validade.
func PodeUsar(v *models.Voucher, usuario string, agora time.Time) error {
	if !v.Publico() && v.Usuario != usuario {
		return httperr.Forbidden("Este voucher pertence a outro usuário")
	}
	if v.Usado {
		return httperr.AlreadyUsed("Voucher já foi utilizado")
	}
	if Vencido(v, agora) {
		return httperr.Expired("Voucher vencido")
	}
	return nil
}

// Usar marca o voucher como utilizado. A transição usado=true é
// irreversível.
func Usar(v *models.Voucher, usuario string, agora time.Time) error {
	if err := PodeUsar(v, usuario, agora); err != nil {
		return err
	}
	v.Usado = true
	v.UsadoEm = agora.Format(time.RFC3339)
	return nil
}
