package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AbrirCaixaRequest struct {
	ValorInicial decimal.Decimal `json:"valor_inicial" validate:"min=0"`
}

type FecharCaixaRequest struct {
	ValorContado decimal.Decimal `json:"valor_contado" validate:"min=0"`
	Observacoes  string          `json:"observacoes"`
}

// MovimentoCaixaRequest registers a sangria or reforço on the open session.
type MovimentoCaixaRequest struct {
	Valor  decimal.Decimal `json:"valor"  validate:"required,gt=0"`
	Motivo string          `json:"motivo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MovimentoCaixaResponse struct {
	ID     string          `json:"id"`
	Data   string          `json:"data"`
	Valor  decimal.Decimal `json:"valor"`
	Motivo string          `json:"motivo"`
}

type CaixaResponse struct {
	ID           string `json:"id"`
	Data         string `json:"data"`
	Status       string `json:"status"`
	Operador     string `json:"operador"`
	DataAbertura string `json:"data_abertura"`
	// Null while the session is open.
	DataFechamento *string `json:"data_fechamento"`

	ValorInicial  decimal.Decimal  `json:"valor_inicial"`
	ValorEsperado *decimal.Decimal `json:"valor_esperado"`
	ValorFinal    *decimal.Decimal `json:"valor_final"`
	Diferenca     *decimal.Decimal `json:"diferenca"`

	TotalVendas             decimal.Decimal            `json:"total_vendas"`
	TotalDescontos          decimal.Decimal            `json:"total_descontos"`
	TotaisPorMetodo         map[string]decimal.Decimal `json:"totais_por_metodo"`
	QuantidadeVendas        int                        `json:"quantidade_vendas"`
	QuantidadeCancelamentos int                        `json:"quantidade_cancelamentos"`

	Sangrias []MovimentoCaixaResponse `json:"sangrias"`
	Reforcos []MovimentoCaixaResponse `json:"reforcos"`

	Observacoes string `json:"observacoes"`
}

// CaixaResumo is the list row for GET /v1/caixa/historico.
type CaixaResumo struct {
	ID               string           `json:"id"`
	Data             string           `json:"data"`
	Status           string           `json:"status"`
	ValorInicial     decimal.Decimal  `json:"valor_inicial"`
	TotalVendas      decimal.Decimal  `json:"total_vendas"`
	QuantidadeVendas int              `json:"quantidade_vendas"`
	Diferenca        *decimal.Decimal `json:"diferenca"`
}
