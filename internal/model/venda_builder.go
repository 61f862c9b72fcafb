package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VendaBuilder accumulates line items for an in-progress sale and keeps
// Subtotal/Desconto/Total consistent after every mutation. Only one sale is
// built at a time; the builder has no side effects until the service posts
// the finalized Venda to the session, ledger and catalog.
type VendaBuilder struct {
	venda Venda
	// descontoPct keeps the raw percentage so percentage discounts can be
	// reapplied after item mutations. Zero when the discount is absolute.
	descontoPct decimal.Decimal
}

// NovaVenda starts an in-progress sale with the given per-session sequence number.
func NovaVenda(numero int) *VendaBuilder {
	return &VendaBuilder{venda: Venda{
		ID:           uuid.New(),
		Numero:       numero,
		Data:         time.Now(),
		Itens:        []ItemVenda{},
		Subtotal:     decimal.Zero,
		Desconto:     decimal.Zero,
		DescontoTipo: DescontoValor,
		Total:        decimal.Zero,
		Status:       VendaEmAndamento,
	}}
}

// AdicionarItem adds quantity of a product, merging into an existing line when
// the product is already present. The unit price is captured here.
func (b *VendaBuilder) AdicionarItem(p *Produto, quantidade int) {
	if quantidade < 1 {
		quantidade = 1
	}
	for i := range b.venda.Itens {
		if b.venda.Itens[i].ProdutoID == p.ID {
			item := &b.venda.Itens[i]
			item.Quantidade += quantidade
			item.Total = item.PrecoUnitario.Mul(decimal.NewFromInt(int64(item.Quantidade)))
			b.recalcular()
			return
		}
	}
	b.venda.Itens = append(b.venda.Itens, ItemVenda{
		ID:            uuid.New(),
		ProdutoID:     p.ID,
		Codigo:        p.Codigo,
		Nome:          p.Nome,
		PrecoUnitario: p.Preco,
		Quantidade:    quantidade,
		Total:         p.Preco.Mul(decimal.NewFromInt(int64(quantidade))),
		Unidade:       p.Unidade,
	})
	b.recalcular()
}

// RemoverItem drops a line by id. Unknown ids are ignored.
func (b *VendaBuilder) RemoverItem(itemID uuid.UUID) {
	itens := b.venda.Itens[:0]
	for _, item := range b.venda.Itens {
		if item.ID != itemID {
			itens = append(itens, item)
		}
	}
	b.venda.Itens = itens
	b.recalcular()
}

// AlterarQuantidade sets a line's quantity; qty <= 0 removes the line.
func (b *VendaBuilder) AlterarQuantidade(itemID uuid.UUID, quantidade int) {
	if quantidade <= 0 {
		b.RemoverItem(itemID)
		return
	}
	for i := range b.venda.Itens {
		if b.venda.Itens[i].ID == itemID {
			item := &b.venda.Itens[i]
			item.Quantidade = quantidade
			item.Total = item.PrecoUnitario.Mul(decimal.NewFromInt(int64(quantidade)))
			break
		}
	}
	b.recalcular()
}

// AplicarDesconto sets an absolute or percentage discount. Percentage discounts
// are recomputed from the subtotal on every later mutation.
func (b *VendaBuilder) AplicarDesconto(valor decimal.Decimal, tipo string) {
	if tipo != DescontoPercentual {
		tipo = DescontoValor
	}
	b.venda.DescontoTipo = tipo
	if tipo == DescontoPercentual {
		b.descontoPct = valor
	} else {
		b.venda.Desconto = valor
		b.descontoPct = decimal.Zero
	}
	b.recalcular()
}

// Venda returns a snapshot of the sale being built.
func (b *VendaBuilder) Venda() Venda { return b.venda }

// Finalizar validates payment and marks the sale finalized. Posting the five
// side effects (session totals, count, snapshot, ledger, stock) is the
// service's job and happens atomically there.
func (b *VendaBuilder) Finalizar(formaPagamento string, valorPago decimal.Decimal, clienteID *uuid.UUID) (*Venda, error) {
	if len(b.venda.Itens) == 0 {
		return nil, ErrVendaVazia
	}
	if valorPago.IsZero() {
		valorPago = b.venda.Total
	}
	if formaPagamento == PagamentoDinheiro && valorPago.LessThan(b.venda.Total) {
		return nil, ErrPagamentoInsuficiente
	}

	b.venda.FormaPagamento = formaPagamento
	b.venda.ValorPago = valorPago
	if formaPagamento == PagamentoDinheiro {
		b.venda.Troco = valorPago.Sub(b.venda.Total)
	} else {
		b.venda.Troco = decimal.Zero
	}
	b.venda.ClienteID = clienteID
	b.venda.Status = VendaFinalizada
	now := time.Now()
	b.venda.DataFinalizacao = &now

	venda := b.venda
	return &venda, nil
}

func (b *VendaBuilder) recalcular() {
	subtotal := decimal.Zero
	for _, item := range b.venda.Itens {
		subtotal = subtotal.Add(item.Total)
	}
	b.venda.Subtotal = subtotal

	if b.venda.DescontoTipo == DescontoPercentual {
		b.venda.Desconto = subtotal.Mul(b.descontoPct).Div(decimal.NewFromInt(100)).Round(2)
	}

	total := subtotal.Sub(b.venda.Desconto)
	if total.IsNegative() {
		total = decimal.Zero
	}
	b.venda.Total = total
}
