package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Produto is a sellable catalog item. Services (cortes, manicure, ...) are
// regular products with ControlaEstoque=false — they never run out.
type Produto struct {
	ID           uuid.UUID `json:"id"`
	Codigo       string    `json:"codigo"` // 6-digit zero-padded, auto-generated when absent
	CodigoBarras *string   `json:"codigo_barras,omitempty"`
	Nome         string    `json:"nome"`
	Categoria    string    `json:"categoria"`
	// Preco is the current list price. Sales capture it at add time and never
	// re-read it, so history does not drift when the catalog is repriced.
	Preco           decimal.Decimal `json:"preco"`
	Estoque         int             `json:"estoque"`
	EstoqueMinimo   int             `json:"estoque_minimo"`
	ControlaEstoque bool            `json:"controla_estoque"`
	Unidade         string          `json:"unidade"`
	Ativo           bool            `json:"ativo"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// EstoqueBaixo reports whether the product should appear on the low-stock alert.
func (p *Produto) EstoqueBaixo() bool {
	return p.Ativo && p.ControlaEstoque && p.Estoque <= p.EstoqueMinimo
}
