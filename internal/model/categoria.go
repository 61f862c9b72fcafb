package model

import (
	"time"

	"github.com/google/uuid"
)

// Categoria classifies catalog products. Cor is the hex accent color the
// frontend uses on product tiles.
type Categoria struct {
	ID        uuid.UUID `json:"id"`
	Nome      string    `json:"nome"`
	Cor       string    `json:"cor"`
	Ativo     bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
