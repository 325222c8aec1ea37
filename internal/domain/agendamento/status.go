package agendamento

// Status de um agendamento, na grafia usada pelos arquivos de dados.
type Status string

const (
	StatusAgendado    Status = "Agendado"
	StatusConfirmado  Status = "Confirmado"
	StatusEmAndamento Status = "Em Andamento"
	StatusRealizado   Status = "Realizado"
	StatusCancelado   Status = "Cancelado"
)

func StatusValido(s string) bool {
	switch Status(s) {
	case StatusAgendado, StatusConfirmado, StatusEmAndamento,
		StatusRealizado, StatusCancelado:
		return true
	}
	return false
}

func StatusInicial() Status {
	return StatusAgendado
}
