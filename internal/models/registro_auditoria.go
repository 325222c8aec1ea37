package models

type RegistroAuditoria struct {
	ID         int            `json:"id"`
	Usuario    string         `json:"usuario"`
	Acao       string         `json:"acao"`
	Entidade   string         `json:"entidade,omitempty"`
	EntidadeID *int           `json:"entidade_id,omitempty"`
	Detalhes   map[string]any `json:"detalhes,omitempty"`
	Timestamp  string         `json:"timestamp"`
}

func (r *RegistroAuditoria) GetID() int   { return r.ID }
func (r *RegistroAuditoria) SetID(id int) { r.ID = id }
