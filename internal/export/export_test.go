package export

import (
	"strings"
	"testing"
	"time"

	"github.com/carlospiquet2023/agendapronegocios/internal/dto"
	"github.com/carlospiquet2023/agendapronegocios/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var negocioTeste = NegocioInfo{
	Nome:     "Barbearia Exemplo",
	Endereco: "Rua das Flores, 123",
	Telefone: "(21) 99999-0000",
}

func vendaCompleta() *model.Venda {
	pago := decimal.RequireFromString("100.00")
	return &model.Venda{
		ID:     uuid.New(),
		Numero: 7,
		Data:   time.Date(2026, 8, 31, 14, 30, 0, 0, time.Local),
		Itens: []model.ItemVenda{
			{Nome: "Corte Masculino", Quantidade: 2, PrecoUnitario: decimal.RequireFromString("35.00"), Total: decimal.RequireFromString("70.00")},
			{Nome: "Shampoo 300ml", Quantidade: 1, PrecoUnitario: decimal.RequireFromString("28.90"), Total: decimal.RequireFromString("28.90")},
		},
		Subtotal:       decimal.RequireFromString("98.90"),
		Desconto:       decimal.RequireFromString("8.90"),
		Total:          decimal.RequireFromString("90.00"),
		FormaPagamento: model.PagamentoDinheiro,
		ValorPago:      pago,
		Troco:          decimal.RequireFromString("10.00"),
		Status:         model.VendaFinalizada,
	}
}

func TestComprovanteFormato(t *testing.T) {
	texto := Comprovante(vendaCompleta(), negocioTeste)

	assert.Contains(t, texto, "BARBEARIA EXEMPLO")
	assert.Contains(t, texto, "CUPOM NÃO FISCAL")
	assert.Contains(t, texto, "Venda #000007")
	assert.Contains(t, texto, "Data: 31/08/2026 14:30:00")
	assert.Contains(t, texto, "Corte Masculino        2   R$ 70.00")
	assert.Contains(t, texto, "SUBTOTAL:               R$ 98.90")
	assert.Contains(t, texto, "DESCONTO:              -R$ 8.90")
	assert.Contains(t, texto, "TOTAL:                  R$ 90.00")
	assert.Contains(t, texto, "Forma de Pagamento: Dinheiro")
	assert.Contains(t, texto, "Valor Recebido:         R$ 100.00")
	assert.Contains(t, texto, "Troco:                  R$ 10.00")
	assert.Contains(t, texto, "OBRIGADO PELA PREFERÊNCIA!")
	assert.Contains(t, texto, "Volte Sempre!")
}

func TestComprovantePixSemTroco(t *testing.T) {
	v := vendaCompleta()
	v.FormaPagamento = model.PagamentoPix

	texto := Comprovante(v, negocioTeste)
	assert.Contains(t, texto, "Forma de Pagamento: PIX")
	assert.NotContains(t, texto, "Troco:")
	assert.NotContains(t, texto, "Valor Recebido:")
}

func TestComprovanteTruncaNomeLongo(t *testing.T) {
	v := vendaCompleta()
	v.Itens = []model.ItemVenda{{
		Nome:       "Hidratação Capilar Premium Completa",
		Quantidade: 1,
		Total:      decimal.RequireFromString("40.00"),
	}}

	texto := Comprovante(v, negocioTeste)
	assert.Contains(t, texto, "Hidratação Capilar P   1")
	assert.NotContains(t, texto, "Premium")
}

func TestRelatorioBalancoCaixas(t *testing.T) {
	totais := map[string]decimal.Decimal{
		model.PagamentoDinheiro: decimal.RequireFromString("120.00"),
		model.PagamentoPix:      decimal.RequireFromString("80.00"),
	}
	texto := RelatorioBalanco("31/08/2026", decimal.RequireFromString("200.00"), 6, decimal.RequireFromString("33.33"), totais, negocioTeste)

	assert.Contains(t, texto, "RELATÓRIO DE BALANÇO - Barbearia Exemplo")
	assert.Contains(t, texto, "Período: 31/08/2026")
	assert.Contains(t, texto, "Total de Vendas:       6")
	assert.Contains(t, texto, "Valor Total:           R$ 200.00")
	assert.Contains(t, texto, "Dinheiro:              R$ 120.00")
	assert.Contains(t, texto, "PIX:                   R$ 80.00")
	// Métodos sem movimento aparecem zerados.
	assert.Contains(t, texto, "Cartão Crédito:        R$ 0.00")

	// Cada linha fecha a caixa na coluna 50.
	for _, linha := range strings.Split(strings.TrimRight(texto, "\n"), "\n") {
		assert.Equal(t, 50, len([]rune(linha)), "linha: %q", linha)
	}
	assert.True(t, strings.HasPrefix(texto, "╔"))
	assert.True(t, strings.HasSuffix(strings.TrimRight(texto, "\n"), "╝"))
}

func TestRelatorioBalancoDiaFormataData(t *testing.T) {
	bal := &dto.BalancoDia{
		Data:            "2026-08-24",
		Status:          model.CaixaFechado,
		TotalVendas:     decimal.RequireFromString("90.00"),
		TotaisPorMetodo: map[string]decimal.Decimal{},
		TicketMedio:     decimal.RequireFromString("30.00"),
	}
	texto := RelatorioBalancoDia(bal, negocioTeste)
	assert.Contains(t, texto, "Período: 24/08/2026")
}

func TestVendasCSV(t *testing.T) {
	v := vendaCompleta()
	raw, err := VendasCSV([]model.Venda{*v})
	require.NoError(t, err)

	texto := string(raw)
	require.True(t, strings.HasPrefix(texto, "\ufeff"), "extrato começa com BOM UTF-8")

	linhas := strings.Split(strings.TrimRight(strings.TrimPrefix(texto, "\ufeff"), "\n"), "\n")
	require.Len(t, linhas, 2)
	assert.Equal(t, "ID;Data/Hora;Itens;Subtotal;Desconto;Total;Forma Pagamento;Status", linhas[0])
	assert.Contains(t, linhas[1], v.ID.String())
	assert.Contains(t, linhas[1], "31/08/2026 14:30:00")
	assert.Contains(t, linhas[1], "Corte Masculino(2), Shampoo 300ml(1)")
	assert.Contains(t, linhas[1], "98.90;8.90;90.00;dinheiro;finalizada")
}

func TestVendasCSVVazio(t *testing.T) {
	raw, err := VendasCSV(nil)
	require.NoError(t, err)
	linhas := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	require.Len(t, linhas, 1, "apenas o cabeçalho")
}

func TestFiltrarPeriodo(t *testing.T) {
	dia := func(d string) time.Time {
		parsed, err := time.Parse("2006-01-02", d)
		require.NoError(t, err)
		return parsed
	}
	vendas := []model.Venda{
		{ID: uuid.New(), Data: dia("2026-08-24")},
		{ID: uuid.New(), Data: dia("2026-08-26")},
		{ID: uuid.New(), Data: dia("2026-08-31")}, // semana seguinte
		{ID: uuid.New(), Data: dia("2026-07-15")}, // outro mês
	}

	doDia := FiltrarPeriodo(vendas, "dia", dia("2026-08-24"))
	require.Len(t, doDia, 1)
	assert.Equal(t, vendas[0].ID, doDia[0].ID)

	// Semana de domingo 23/08 a sábado 29/08.
	daSemana := FiltrarPeriodo(vendas, "semana", dia("2026-08-27"))
	require.Len(t, daSemana, 2)

	doMes := FiltrarPeriodo(vendas, "mes", dia("2026-08-01"))
	require.Len(t, doMes, 3)
}
