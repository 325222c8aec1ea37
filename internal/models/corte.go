package models

type Corte struct {
	ID        int     `json:"id"`
	Nome      string  `json:"nome"`
	Preco     float64 `json:"preco"`
	Descricao string  `json:"descricao,omitempty"`
	Duracao   string  `json:"duracao,omitempty"`
}

func (c *Corte) GetID() int   { return c.ID }
func (c *Corte) SetID(id int) { c.ID = id }
