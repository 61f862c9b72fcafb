package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Formas de pagamento aceitas pelo caixa.
const (
	PagamentoDinheiro = "dinheiro"
	PagamentoCredito  = "credito"
	PagamentoDebito   = "debito"
	PagamentoPix      = "pix"
	PagamentoOutros   = "outros"
)

// FormasPagamento lists every accepted method, in display order.
var FormasPagamento = []string{
	PagamentoDinheiro, PagamentoCredito, PagamentoDebito, PagamentoPix, PagamentoOutros,
}

// Estados de uma venda.
const (
	VendaEmAndamento = "em_andamento"
	VendaFinalizada  = "finalizada"
	VendaCancelada   = "cancelada"
)

// Tipos de desconto.
const (
	DescontoValor      = "valor"
	DescontoPercentual = "percentual"
)

// ItemVenda is one line of a sale. PrecoUnitario is captured when the item is
// added and never re-read from the catalog.
type ItemVenda struct {
	ID            uuid.UUID       `json:"id"`
	ProdutoID     uuid.UUID       `json:"produto_id"`
	Codigo        string          `json:"codigo"`
	Nome          string          `json:"nome"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Quantidade    int             `json:"quantidade"`
	// Total = PrecoUnitario × Quantidade, recomputed on every quantity change.
	Total   decimal.Decimal `json:"total"`
	Unidade string          `json:"unidade"`
}

// Venda transitions em_andamento → finalizada exactly once, and
// finalizada → cancelada at most once. Items are immutable after finalize.
type Venda struct {
	ID      uuid.UUID `json:"id"`
	CaixaID uuid.UUID `json:"caixa_id"`
	// Numero is 1-based per session; display zero-padded to 4 digits.
	Numero             int             `json:"numero"`
	Data               time.Time       `json:"data"`
	Itens              []ItemVenda     `json:"itens"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	Desconto           decimal.Decimal `json:"desconto"`
	DescontoTipo       string          `json:"desconto_tipo"`
	Total              decimal.Decimal `json:"total"`
	FormaPagamento     string          `json:"forma_pagamento"`
	ValorPago          decimal.Decimal `json:"valor_pago"`
	Troco              decimal.Decimal `json:"troco"`
	ClienteID          *uuid.UUID      `json:"cliente_id,omitempty"`
	Status             string          `json:"status"`
	MotivoCancelamento *string         `json:"motivo_cancelamento,omitempty"`
	DataFinalizacao    *time.Time      `json:"data_finalizacao,omitempty"`
	DataCancelamento   *time.Time      `json:"data_cancelamento,omitempty"`
}
