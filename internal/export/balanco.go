package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/carlospiquet2023/agendapronegocios/internal/dto"
	"github.com/carlospiquet2023/agendapronegocios/internal/model"

	"github.com/shopspring/decimal"
)

// RelatorioBalanco renders the box-drawn plain-text balance report.
// periodo is the human label for the covered range ("31/08/2026",
// "24/08/2026 a 30/08/2026", "Agosto/2026").
func RelatorioBalanco(periodo string, totalVendas decimal.Decimal, quantidadeVendas int, ticketMedio decimal.Decimal, totaisPorMetodo map[string]decimal.Decimal, negocio NegocioInfo) string {
	topo := "╔" + strings.Repeat("═", 48) + "╗\n"
	meio := "╠" + strings.Repeat("═", 48) + "╣\n"
	fundo := "╚" + strings.Repeat("═", 48) + "╝\n"

	metodo := func(forma string) string {
		v, ok := totaisPorMetodo[forma]
		if !ok {
			v = decimal.Zero
		}
		return v.StringFixed(2)
	}

	var b strings.Builder
	b.WriteString(topo)
	b.WriteString(linhaBox("   RELATÓRIO DE BALANÇO - " + negocio.Nome))
	b.WriteString(meio)
	b.WriteString(linhaBox("   Período: " + periodo))
	b.WriteString(linhaBox("   Gerado em: " + time.Now().Format("02/01/2006 15:04:05")))
	b.WriteString(meio)
	b.WriteString(linhaBox("   RESUMO DE VENDAS"))
	b.WriteString(linhaBox(fmt.Sprintf("   Total de Vendas:       %d", quantidadeVendas)))
	b.WriteString(linhaBox("   Valor Total:           R$ " + totalVendas.StringFixed(2)))
	b.WriteString(linhaBox("   Ticket Médio:          R$ " + ticketMedio.StringFixed(2)))
	b.WriteString(meio)
	b.WriteString(linhaBox("   FORMAS DE PAGAMENTO"))
	b.WriteString(linhaBox("   Dinheiro:              R$ " + metodo(model.PagamentoDinheiro)))
	b.WriteString(linhaBox("   Cartão Crédito:        R$ " + metodo(model.PagamentoCredito)))
	b.WriteString(linhaBox("   Cartão Débito:         R$ " + metodo(model.PagamentoDebito)))
	b.WriteString(linhaBox("   PIX:                   R$ " + metodo(model.PagamentoPix)))
	b.WriteString(linhaBox("   Outros:                R$ " + metodo(model.PagamentoOutros)))
	b.WriteString(fundo)
	return b.String()
}

// RelatorioBalancoDia is the single-day convenience wrapper.
func RelatorioBalancoDia(bal *dto.BalancoDia, negocio NegocioInfo) string {
	periodo := bal.Data
	if d, err := time.Parse("2006-01-02", bal.Data); err == nil {
		periodo = d.Format("02/01/2006")
	}
	return RelatorioBalanco(periodo, bal.TotalVendas, bal.QuantidadeVendas, bal.TicketMedio, bal.TotaisPorMetodo, negocio)
}

// linhaBox pads the content to the 48-column box width, rune-aware.
func linhaBox(conteudo string) string {
	runes := []rune(conteudo)
	if len(runes) > 48 {
		runes = runes[:48]
	}
	return "║" + string(runes) + strings.Repeat(" ", 48-len(runes)) + "║\n"
}
