package dto

type CriarClienteRequest struct {
	Nome        string  `json:"nome"     validate:"required,min=2"`
	Telefone    string  `json:"telefone" validate:"required,min=8"`
	Email       *string `json:"email"    validate:"omitempty,email"`
	Observacoes string  `json:"observacoes"`
}

// AtualizarClienteRequest is a typed patch: only non-nil fields are applied.
type AtualizarClienteRequest struct {
	Nome        *string `json:"nome"     validate:"omitempty,min=2"`
	Telefone    *string `json:"telefone" validate:"omitempty,min=8"`
	Email       *string `json:"email"    validate:"omitempty,email"`
	Observacoes *string `json:"observacoes"`
}

type ClienteResponse struct {
	ID          string  `json:"id"`
	Nome        string  `json:"nome"`
	Telefone    string  `json:"telefone"`
	Email       *string `json:"email,omitempty"`
	Observacoes string  `json:"observacoes"`
	Ativo       bool    `json:"ativo"`
	CreatedAt   string  `json:"created_at"`
}
