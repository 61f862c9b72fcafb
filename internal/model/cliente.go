package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is an optional customer reference attached to sales.
type Cliente struct {
	ID          uuid.UUID `json:"id"`
	Nome        string    `json:"nome"`
	Telefone    string    `json:"telefone"`
	Email       *string   `json:"email,omitempty"`
	Observacoes string    `json:"observacoes"`
	Ativo       bool      `json:"ativo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
