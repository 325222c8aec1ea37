package models

type Agendamento struct {
	ID          int    `json:"id"`
	NomeCliente string `json:"nome_cliente"`
	Data        string `json:"data"`    // DD/MM/AAAA
	Horario     string `json:"horario"` // HH:MM
	Usuario     string `json:"usuario"`

	Voucher         string  `json:"voucher,omitempty"`
	Pagamento       string  `json:"pagamento,omitempty"`
	TipoCorte       string  `json:"tipo_corte,omitempty"`
	ValorCorte      float64 `json:"valor_corte"`
	DescontoVoucher float64 `json:"desconto_voucher"`
	ValorFinal      float64 `json:"valor_final"`

	Status string `json:"status"`
}

func (a *Agendamento) GetID() int   { return a.ID }
func (a *Agendamento) SetID(id int) { a.ID = id }
