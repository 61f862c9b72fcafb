package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemVendaRequest struct {
	ProdutoID  string `json:"produto_id" validate:"required,uuid"`
	Quantidade int    `json:"quantidade" validate:"required,min=1"`
}

type RegistrarVendaRequest struct {
	Itens []ItemVendaRequest `json:"itens" validate:"required,min=1,dive"`
	// Desconto is interpreted according to DescontoTipo (valor | percentual).
	Desconto       decimal.Decimal `json:"desconto"       validate:"min=0"`
	DescontoTipo   string          `json:"desconto_tipo"  validate:"omitempty,oneof=valor percentual"`
	FormaPagamento string          `json:"forma_pagamento" validate:"required,oneof=dinheiro credito debito pix outros"`
	// ValorPago defaults to the sale total when zero (non-cash methods).
	ValorPago decimal.Decimal `json:"valor_pago" validate:"min=0"`
	ClienteID *string         `json:"cliente_id" validate:"omitempty,uuid"`
}

type CancelarVendaRequest struct {
	Motivo string `json:"motivo" validate:"required,min=3"`
}

// VendaFilter is bound from the query string of GET /v1/vendas.
type VendaFilter struct {
	Data   string `form:"data"`   // YYYY-MM-DD; empty = all
	Status string `form:"status"` // finalizada | cancelada | empty = all
	Limit  int    `form:"limit,default=50" validate:"min=1,max=500"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemVendaResponse struct {
	ID            string          `json:"id"`
	ProdutoID     string          `json:"produto_id"`
	Nome          string          `json:"nome"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Quantidade    int             `json:"quantidade"`
	Total         decimal.Decimal `json:"total"`
}

type VendaResponse struct {
	ID string `json:"id"`
	// Numero is zero-padded to 4 digits for display ("0001").
	Numero             string              `json:"numero"`
	CaixaID            string              `json:"caixa_id"`
	Itens              []ItemVendaResponse `json:"itens"`
	Subtotal           decimal.Decimal     `json:"subtotal"`
	Desconto           decimal.Decimal     `json:"desconto"`
	Total              decimal.Decimal     `json:"total"`
	FormaPagamento     string              `json:"forma_pagamento"`
	ValorPago          decimal.Decimal     `json:"valor_pago"`
	Troco              decimal.Decimal     `json:"troco"`
	ClienteID          *string             `json:"cliente_id,omitempty"`
	Status             string              `json:"status"`
	MotivoCancelamento *string             `json:"motivo_cancelamento,omitempty"`
	Data               string              `json:"data"`
}

type VendaListResponse struct {
	Data  []VendaResponse `json:"data"`
	Total int             `json:"total"`
}
