package models

type Cliente struct {
	ID             int    `json:"id"`
	Nome           string `json:"nome"`
	Telefone       string `json:"telefone,omitempty"`
	Email          string `json:"email,omitempty"`
	Endereco       string `json:"endereco,omitempty"`
	DataNascimento string `json:"data_nascimento,omitempty"`
}

func (c *Cliente) GetID() int   { return c.ID }
func (c *Cliente) SetID(id int) { c.ID = id }
