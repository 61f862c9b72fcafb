package dto

import "github.com/shopspring/decimal"

// BalancoDia mirrors one session's aggregates. Status "sem_movimento" is the
// zero-valued sentinel for days without a session.
type BalancoDia struct {
	Data                    string                     `json:"data"`
	Status                  string                     `json:"status"` // aberto | fechado | sem_movimento
	TotalVendas             decimal.Decimal            `json:"total_vendas"`
	TotalDescontos          decimal.Decimal            `json:"total_descontos"`
	QuantidadeVendas        int                        `json:"quantidade_vendas"`
	QuantidadeCancelamentos int                        `json:"quantidade_cancelamentos"`
	TotaisPorMetodo         map[string]decimal.Decimal `json:"totais_por_metodo"`
	TicketMedio             decimal.Decimal            `json:"ticket_medio"`
}

type BalancoSemana struct {
	Inicio           string                     `json:"inicio"` // Sunday of the reference week
	Fim              string                     `json:"fim"`
	TotalVendas      decimal.Decimal            `json:"total_vendas"`
	QuantidadeVendas int                        `json:"quantidade_vendas"`
	TotaisPorMetodo  map[string]decimal.Decimal `json:"totais_por_metodo"`
	TicketMedio      decimal.Decimal            `json:"ticket_medio"`
	Dias             []BalancoDia               `json:"dias"`
}

type BalancoMes struct {
	Ano              int                        `json:"ano"`
	Mes              int                        `json:"mes"`
	TotalVendas      decimal.Decimal            `json:"total_vendas"`
	QuantidadeVendas int                        `json:"quantidade_vendas"`
	TotaisPorMetodo  map[string]decimal.Decimal `json:"totais_por_metodo"`
	TicketMedio      decimal.Decimal            `json:"ticket_medio"`
	DiasTrabalhados  int                        `json:"dias_trabalhados"`
	MediaDiaria      decimal.Decimal            `json:"media_diaria"`
}

// ProdutoMaisVendido ranks products by units sold across the whole ledger.
type ProdutoMaisVendido struct {
	ProdutoID  string          `json:"produto_id"`
	Nome       string          `json:"nome"`
	Quantidade int             `json:"quantidade"`
	Total      decimal.Decimal `json:"total"`
}
