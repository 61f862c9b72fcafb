package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarProdutoRequest struct {
	Codigo       string          `json:"codigo"` // auto-generated when empty
	CodigoBarras *string         `json:"codigo_barras"`
	Nome         string          `json:"nome"      validate:"required,min=2"`
	Categoria    string          `json:"categoria"`
	Preco        decimal.Decimal `json:"preco"     validate:"min=0"`
	Estoque      *int            `json:"estoque"`
	EstoqueMin   *int            `json:"estoque_minimo"`
	// ControlaEstoque defaults to true; services set it to false.
	ControlaEstoque *bool  `json:"controla_estoque"`
	Unidade         string `json:"unidade"`
}

// AtualizarProdutoRequest is a typed patch: only non-nil fields are applied.
type AtualizarProdutoRequest struct {
	Nome            *string          `json:"nome"            validate:"omitempty,min=2"`
	Categoria       *string          `json:"categoria"`
	Preco           *decimal.Decimal `json:"preco"`
	EstoqueMinimo   *int             `json:"estoque_minimo"`
	CodigoBarras    *string          `json:"codigo_barras"`
	ControlaEstoque *bool            `json:"controla_estoque"`
	Unidade         *string          `json:"unidade"`
}

type AjustarEstoqueRequest struct {
	// Delta is negative for saídas, positive for entradas.
	Delta  int    `json:"delta"  validate:"required"`
	Motivo string `json:"motivo"`
}

type ProdutoFilter struct {
	Busca           string `form:"busca"`
	Categoria       string `form:"categoria"`
	IncluirInativos bool   `form:"incluir_inativos"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProdutoResponse struct {
	ID              string          `json:"id"`
	Codigo          string          `json:"codigo"`
	CodigoBarras    *string         `json:"codigo_barras,omitempty"`
	Nome            string          `json:"nome"`
	Categoria       string          `json:"categoria"`
	Preco           decimal.Decimal `json:"preco"`
	Estoque         int             `json:"estoque"`
	EstoqueMinimo   int             `json:"estoque_minimo"`
	ControlaEstoque bool            `json:"controla_estoque"`
	Unidade         string          `json:"unidade"`
	Ativo           bool            `json:"ativo"`
	EstoqueBaixo    bool            `json:"estoque_baixo"`
}

type ImportarCSVResponse struct {
	Importados int      `json:"importados"`
	Ignorados  int      `json:"ignorados"`
	Erros      []string `json:"erros,omitempty"`
}

type MovimentoEstoqueResponse struct {
	ID              string  `json:"id"`
	ProdutoID       string  `json:"produto_id"`
	Tipo            string  `json:"tipo"`
	Quantidade      int     `json:"quantidade"`
	EstoqueAnterior int     `json:"estoque_anterior"`
	EstoqueNovo     int     `json:"estoque_novo"`
	Motivo          string  `json:"motivo"`
	ReferenciaID    *string `json:"referencia_id,omitempty"`
	Data            string  `json:"data"`
}
