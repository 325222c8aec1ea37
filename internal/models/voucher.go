package models

type Voucher struct {
	ID        int    `json:"id"`
	Codigo    string `json:"codigo"`
	Descricao string `json:"descricao,omitempty"`
	Validade  string `json:"validade,omitempty"` // DD/MM/AAAA; vazio = sem validade
	Usuario   string `json:"usuario,omitempty"`  // vazio = voucher público

	Porcentagem int    `json:"porcentagem"`
	Usado       bool   `json:"usado"`
	UsadoEm     string `json:"usado_em,omitempty"`
}

func (v *Voucher) GetID() int   { return v.ID }
func (v *Voucher) SetID(id int) { v.ID = id }

// Publico indica um voucher sem dono, visível e resgatável por qualquer
// usuário autenticado.
func (v *Voucher) Publico() bool { return v.Usuario == "" }
