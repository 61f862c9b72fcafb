// Package export renders plain-text receipts, box-drawn balance reports and
// CSV extracts of the sales ledger for download endpoints.
package export

import (
	"fmt"
	"strings"

	"github.com/carlospiquet2023/agendapronegocios/internal/model"
)

var nomesFormaPagamento = map[string]string{
	model.PagamentoDinheiro: "Dinheiro",
	model.PagamentoCredito:  "Cartão de Crédito",
	model.PagamentoDebito:   "Cartão de Débito",
	model.PagamentoPix:      "PIX",
	model.PagamentoOutros:   "Outros",
}

// NegocioInfo carries the business header printed on receipts and reports.
type NegocioInfo struct {
	Nome     string
	Endereco string
	Telefone string
}

// Comprovante renders the 40-column plain-text receipt for a sale.
func Comprovante(venda *model.Venda, negocio NegocioInfo) string {
	linha := strings.Repeat("═", 40) + "\n"
	sep := strings.Repeat("─", 40) + "\n"

	var b strings.Builder
	b.WriteString(linha)
	fmt.Fprintf(&b, "        %s\n", strings.ToUpper(negocio.Nome))
	if negocio.Endereco != "" {
		fmt.Fprintf(&b, "        %s\n", negocio.Endereco)
	}
	if negocio.Telefone != "" {
		fmt.Fprintf(&b, "        Tel: %s\n", negocio.Telefone)
	}
	b.WriteString(linha)
	b.WriteString("CUPOM NÃO FISCAL\n")
	fmt.Fprintf(&b, "Data: %s\n", venda.Data.Format("02/01/2006 15:04:05"))
	fmt.Fprintf(&b, "Venda #%06d\n", venda.Numero)
	b.WriteString(sep)
	b.WriteString("ITEM                    QTD   VALOR\n")
	b.WriteString(sep)

	for _, item := range venda.Itens {
		nome := item.Nome
		if len([]rune(nome)) > 20 {
			nome = string([]rune(nome)[:20])
		}
		fmt.Fprintf(&b, "%-20s %3d %10s\n", nome, item.Quantidade, "R$ "+item.Total.StringFixed(2))
	}

	b.WriteString(sep)
	fmt.Fprintf(&b, "SUBTOTAL:               R$ %s\n", venda.Subtotal.StringFixed(2))
	if venda.Desconto.IsPositive() {
		fmt.Fprintf(&b, "DESCONTO:              -R$ %s\n", venda.Desconto.StringFixed(2))
	}
	b.WriteString(linha)
	fmt.Fprintf(&b, "TOTAL:                  R$ %s\n", venda.Total.StringFixed(2))
	b.WriteString(linha)
	fmt.Fprintf(&b, "Forma de Pagamento: %s\n", nomeFormaPagamento(venda.FormaPagamento))
	if venda.FormaPagamento == model.PagamentoDinheiro && venda.ValorPago.IsPositive() {
		fmt.Fprintf(&b, "Valor Recebido:         R$ %s\n", venda.ValorPago.StringFixed(2))
		fmt.Fprintf(&b, "Troco:                  R$ %s\n", venda.Troco.StringFixed(2))
	}
	b.WriteString(sep)
	b.WriteString("      OBRIGADO PELA PREFERÊNCIA!\n")
	b.WriteString("         Volte Sempre!\n")
	b.WriteString(linha)

	return b.String()
}

func nomeFormaPagamento(forma string) string {
	if nome, ok := nomesFormaPagamento[forma]; ok {
		return nome
	}
	return forma
}
