package models

const (
	TipoAdmin   = "admin"
	TipoCliente = "cliente"
)

type Usuario struct {
	ID      int    `json:"id"`
	Usuario string `json:"usuario"`
	Senha   string `json:"senha"` // hash bcrypt
	Nome    string `json:"nome"`
	Tipo    string `json:"tipo"`
	Email   string `json:"email,omitempty"`
}

func (u *Usuario) GetID() int   { return u.ID }
func (u *Usuario) SetID(id int) { u.ID = id }

func (u *Usuario) Admin() bool { return u.Tipo == TipoAdmin }
