package model

import (
	"time"

	"github.com/google/uuid"
)

// MovimentoEstoque registra cada alteração de estoque de um produto.
// Criado automaticamente ao vender, ajustar ou cancelar uma venda.
type MovimentoEstoque struct {
	ID         uuid.UUID `json:"id"`
	ProdutoID  uuid.UUID `json:"produto_id"`
	Tipo       string    `json:"tipo"`       // "venda" | "ajuste_manual" | "devolucao_cancelamento"
	Quantidade int       `json:"quantidade"` // positive = entrada, negative = saída
	// Stock before/after the delta, for audit reconstruction.
	EstoqueAnterior int        `json:"estoque_anterior"`
	EstoqueNovo     int        `json:"estoque_novo"`
	Motivo          string     `json:"motivo"`
	ReferenciaID    *uuid.UUID `json:"referencia_id,omitempty"` // originating venda, when applicable
	CreatedAt       time.Time  `json:"created_at"`
}
