package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados do caixa.
const (
	CaixaAberto  = "aberto"
	CaixaFechado = "fechado"
)

// MovimentoCaixa is a sangria (withdrawal) or reforço (deposit) event.
// Movements are immutable — corrections create inverse entries.
type MovimentoCaixa struct {
	ID     uuid.UUID       `json:"id"`
	Data   time.Time       `json:"data"`
	Valor  decimal.Decimal `json:"valor"` // always positive; direction comes from the list it lives in
	Motivo string          `json:"motivo"`
}

// Caixa is one calendar day's register session. At most one session exists per
// date, and at most one may be open at a time.
type Caixa struct {
	ID   uuid.UUID `json:"id"`
	Data string    `json:"data"` // calendar day, "2006-01-02"

	DataAbertura   time.Time  `json:"data_abertura"`
	DataFechamento *time.Time `json:"data_fechamento,omitempty"`

	ValorInicial decimal.Decimal `json:"valor_inicial"`
	// Set at close time: counted cash, expected cash and the difference.
	ValorFinal    *decimal.Decimal `json:"valor_final,omitempty"`
	ValorEsperado *decimal.Decimal `json:"valor_esperado,omitempty"`
	Diferenca     *decimal.Decimal `json:"diferenca,omitempty"`

	TotalVendas    decimal.Decimal `json:"total_vendas"`
	TotalDescontos decimal.Decimal `json:"total_descontos"`
	// TotaisPorMetodo accumulates finalized sale totals per payment method.
	TotaisPorMetodo map[string]decimal.Decimal `json:"totais_por_metodo"`

	QuantidadeVendas        int `json:"quantidade_vendas"`
	QuantidadeCancelamentos int `json:"quantidade_cancelamentos"`

	// Vendas holds the posted snapshots in sequence-number order.
	Vendas   []Venda          `json:"vendas"`
	Sangrias []MovimentoCaixa `json:"sangrias"`
	Reforcos []MovimentoCaixa `json:"reforcos"`

	Operador    string `json:"operador"`
	Observacoes string `json:"observacoes"`
	Status      string `json:"status"`
}

// NovoCaixa opens a session for the given day with zeroed totals.
func NovoCaixa(dia time.Time, valorInicial decimal.Decimal, operador string) *Caixa {
	totais := make(map[string]decimal.Decimal, len(FormasPagamento))
	for _, forma := range FormasPagamento {
		totais[forma] = decimal.Zero
	}
	return &Caixa{
		ID:              uuid.New(),
		Data:            dia.Format("2006-01-02"),
		DataAbertura:    time.Now(),
		ValorInicial:    valorInicial,
		TotalVendas:     decimal.Zero,
		TotalDescontos:  decimal.Zero,
		TotaisPorMetodo: totais,
		Vendas:          []Venda{},
		Sangrias:        []MovimentoCaixa{},
		Reforcos:        []MovimentoCaixa{},
		Operador:        operador,
		Status:          CaixaAberto,
	}
}

// Aberto reports whether the session still accepts sales and movements.
func (c *Caixa) Aberto() bool { return c.Status == CaixaAberto }

// TotalMetodo returns the accumulated total for one payment method.
func (c *Caixa) TotalMetodo(forma string) decimal.Decimal {
	if c.TotaisPorMetodo == nil {
		return decimal.Zero
	}
	return c.TotaisPorMetodo[forma]
}

// CalcularValorEsperado returns the cash expected in the drawer:
// valorInicial + vendas em dinheiro + Σreforços − Σsangrias.
func (c *Caixa) CalcularValorEsperado() decimal.Decimal {
	valor := c.ValorInicial.Add(c.TotalMetodo(PagamentoDinheiro))
	for _, r := range c.Reforcos {
		valor = valor.Add(r.Valor)
	}
	for _, s := range c.Sangrias {
		valor = valor.Sub(s.Valor)
	}
	return valor
}

// BuscarVenda finds a posted sale by id. Returns nil when absent.
func (c *Caixa) BuscarVenda(vendaID uuid.UUID) *Venda {
	for i := range c.Vendas {
		if c.Vendas[i].ID == vendaID {
			return &c.Vendas[i]
		}
	}
	return nil
}
