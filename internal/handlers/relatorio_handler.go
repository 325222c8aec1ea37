package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-api/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/store"
)

type RelatorioHandler struct {
	clientes     *store.Colecao[*models.Cliente]
	cortes       *store.Colecao[*models.Corte]
	agendamentos *store.Colecao[*models.Agendamento]
	vouchers     *store.Colecao[*models.Voucher]
}

func NewRelatorioHandler(
	clientes *store.Colecao[*models.Cliente],
	cortes *store.Colecao[*models.Corte],
	agendamentos *store.Colecao[*models.Agendamento],
	vouchers *store.Colecao[*models.Voucher],
) *RelatorioHandler {
	return &RelatorioHandler{
		clientes:     clientes,
		cortes:       cortes,
		agendamentos: agendamentos,
		vouchers:     vouchers,
	}
}

// Resumo agrega contagens e somas para o painel administrativo.
func (h *RelatorioHandler) Resumo(c *gin.Context) {
	clientes := h.clientes.Load()
	cortes := h.cortes.Load()
	agendamentos := h.agendamentos.Load()
	vouchers := h.vouchers.Load()

	receitaTotal := 0.0
	precos := 0
	for _, corte := range cortes {
		if corte.Preco > 0 {
			receitaTotal += corte.Preco
			precos++
		}
	}

	precoMedio := 0.0
	if precos > 0 {
		precoMedio = receitaTotal / float64(precos)
	}

	porStatus := map[string]int{}
	for _, ag := range agendamentos {
		status := ag.Status
		if status == "" {
			status = "Agendado"
		}
		porStatus[status]++
	}

	vouchersUsados := 0
	for _, v := range vouchers {
		if v.Usado {
			vouchersUsados++
		}
	}

	httpresp.Dados(c, gin.H{
		"total_clientes":          len(clientes),
		"total_cortes":            len(cortes),
		"total_agendamentos":      len(agendamentos),
		"total_vouchers":          len(vouchers),
		"vouchers_usados":         vouchersUsados,
		"receita_total":           arredonda(receitaTotal),
		"preco_medio":             arredonda(precoMedio),
		"agendamentos_por_status": porStatus,
	})
}

// arredonda para duas casas, como os valores exibidos no painel.
func arredonda(v float64) float64 {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	out, _ := strconv.ParseFloat(strings.TrimRight(strings.TrimRight(s, "0"), "."), 64)
	return out
}
