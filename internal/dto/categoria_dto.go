package dto

type CriarCategoriaRequest struct {
	Nome string `json:"nome" validate:"required,min=2"`
	Cor  string `json:"cor"  validate:"omitempty,hexcolor"`
}

type AtualizarCategoriaRequest struct {
	Nome *string `json:"nome" validate:"omitempty,min=2"`
	Cor  *string `json:"cor"  validate:"omitempty,hexcolor"`
}

type CategoriaResponse struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Cor   string `json:"cor"`
	Ativo bool   `json:"ativo"`
}
