package service

import (
	"context"
	"testing"
	"time"

	"github.com/carlospiquet2023/agendapronegocios/internal/model"
	"github.com/carlospiquet2023/agendapronegocios/internal/repository"
	"github.com/carlospiquet2023/agendapronegocios/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type relatorioFixture struct {
	svc           RelatorioService
	caixaRepo     repository.CaixaRepository
	historicoRepo repository.HistoricoRepository
	produtoRepo   repository.ProdutoRepository
}

func novoRelatorioFixture(t *testing.T) *relatorioFixture {
	t.Helper()
	st := store.NewMemory()
	caixaRepo := repository.NewCaixaRepository(st)
	historicoRepo := repository.NewHistoricoRepository(st)
	produtoRepo := repository.NewProdutoRepository(st)
	return &relatorioFixture{
		svc:           NewRelatorioService(caixaRepo, historicoRepo, produtoRepo),
		caixaRepo:     caixaRepo,
		historicoRepo: historicoRepo,
		produtoRepo:   produtoRepo,
	}
}

func caixaFechadoEm(data string, total string, vendas int) model.Caixa {
	totalDec := decimal.RequireFromString(total)
	return model.Caixa{
		ID:               uuid.New(),
		Data:             data,
		ValorInicial:     decimal.NewFromInt(100),
		TotalVendas:      totalDec,
		TotalDescontos:   decimal.Zero,
		TotaisPorMetodo:  map[string]decimal.Decimal{model.PagamentoDinheiro: totalDec},
		QuantidadeVendas: vendas,
		Operador:         "Operador",
		Status:           model.CaixaFechado,
	}
}

func TestBalancoDiaSemMovimento(t *testing.T) {
	f := novoRelatorioFixture(t)

	dia := time.Date(2026, 8, 25, 0, 0, 0, 0, time.Local)
	bal, err := f.svc.BalancoDia(context.Background(), dia)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-25", bal.Data)
	assert.Equal(t, "sem_movimento", bal.Status)
	assert.True(t, bal.TotalVendas.IsZero())
	assert.True(t, bal.TicketMedio.IsZero())
	// Every payment method must be present, zeroed.
	assert.Len(t, bal.TotaisPorMetodo, len(model.FormasPagamento))
}

func TestBalancoDiaComCaixa(t *testing.T) {
	f := novoRelatorioFixture(t)
	ctx := context.Background()

	c := caixaFechadoEm("2026-08-24", "90.00", 3)
	require.NoError(t, f.caixaRepo.Create(ctx, &c))

	bal, err := f.svc.BalancoDia(ctx, time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Equal(t, model.CaixaFechado, bal.Status)
	assert.True(t, bal.TotalVendas.Equal(decimal.RequireFromString("90.00")))
	assert.Equal(t, 3, bal.QuantidadeVendas)
	assert.True(t, bal.TicketMedio.Equal(decimal.RequireFromString("30.00")))
}

func TestBalancoSemanaAgregaDias(t *testing.T) {
	f := novoRelatorioFixture(t)
	ctx := context.Background()

	// Semana de domingo 2026-08-23 a sábado 2026-08-29.
	seg := caixaFechadoEm("2026-08-24", "30.00", 1)
	qua := caixaFechadoEm("2026-08-26", "70.00", 2)
	require.NoError(t, f.caixaRepo.Create(ctx, &seg))
	require.NoError(t, f.caixaRepo.Create(ctx, &qua))

	bal, err := f.svc.BalancoSemana(ctx, time.Date(2026, 8, 27, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Equal(t, "2026-08-23", bal.Inicio)
	assert.Equal(t, "2026-08-29", bal.Fim)
	require.Len(t, bal.Dias, 7)
	assert.True(t, bal.TotalVendas.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, 3, bal.QuantidadeVendas)
	assert.True(t, bal.TicketMedio.Equal(decimal.RequireFromString("33.33")))
	assert.True(t, bal.TotaisPorMetodo[model.PagamentoDinheiro].Equal(decimal.RequireFromString("100.00")))

	// Dias sem caixa aparecem como sem_movimento na posição certa.
	assert.Equal(t, "sem_movimento", bal.Dias[0].Status)
	assert.Equal(t, "2026-08-24", bal.Dias[1].Data)
	assert.Equal(t, model.CaixaFechado, bal.Dias[1].Status)
}

func TestBalancoMes(t *testing.T) {
	f := novoRelatorioFixture(t)
	ctx := context.Background()

	c1 := caixaFechadoEm("2026-08-03", "100.00", 4)
	c2 := caixaFechadoEm("2026-08-17", "50.00", 1)
	outroMes := caixaFechadoEm("2026-07-30", "999.00", 9)
	require.NoError(t, f.caixaRepo.Create(ctx, &c1))
	require.NoError(t, f.caixaRepo.Create(ctx, &c2))
	require.NoError(t, f.caixaRepo.Create(ctx, &outroMes))

	bal, err := f.svc.BalancoMes(ctx, 2026, time.August)
	require.NoError(t, err)
	assert.Equal(t, 2026, bal.Ano)
	assert.Equal(t, 8, bal.Mes)
	assert.True(t, bal.TotalVendas.Equal(decimal.RequireFromString("150.00")))
	assert.Equal(t, 5, bal.QuantidadeVendas)
	assert.Equal(t, 2, bal.DiasTrabalhados)
	assert.True(t, bal.MediaDiaria.Equal(decimal.RequireFromString("75.00")))
	assert.True(t, bal.TicketMedio.Equal(decimal.RequireFromString("30.00")))
}

func vendaComItem(produtoID uuid.UUID, nome string, quantidade int, precoUnit string, status string) model.Venda {
	preco := decimal.RequireFromString(precoUnit)
	total := preco.Mul(decimal.NewFromInt(int64(quantidade)))
	return model.Venda{
		ID:     uuid.New(),
		Numero: 1,
		Data:   time.Now(),
		Itens: []model.ItemVenda{{
			ID:            uuid.New(),
			ProdutoID:     produtoID,
			Nome:          nome,
			PrecoUnitario: preco,
			Quantidade:    quantidade,
			Total:         total,
		}},
		Subtotal:       total,
		Total:          total,
		FormaPagamento: model.PagamentoPix,
		Status:         status,
	}
}

func TestMaisVendidosOrdenaPorQuantidade(t *testing.T) {
	f := novoRelatorioFixture(t)
	ctx := context.Background()

	corteID := uuid.New()
	barbaID := uuid.New()
	vendas := []model.Venda{
		vendaComItem(corteID, "Corte Masculino", 2, "35.00", model.VendaFinalizada),
		vendaComItem(corteID, "Corte Masculino", 3, "35.00", model.VendaFinalizada),
		vendaComItem(barbaID, "Barba", 3, "25.00", model.VendaFinalizada),
		// Canceladas não contam.
		vendaComItem(barbaID, "Barba", 10, "25.00", model.VendaCancelada),
	}
	require.NoError(t, f.historicoRepo.ReplaceAll(ctx, vendas))

	top, err := f.svc.MaisVendidos(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Corte Masculino", top[0].Nome)
	assert.Equal(t, 5, top[0].Quantidade)
	assert.True(t, top[0].Total.Equal(decimal.RequireFromString("175.00")))
	assert.Equal(t, "Barba", top[1].Nome)
	assert.Equal(t, 3, top[1].Quantidade)
}

func TestMaisVendidosRespeitaLimite(t *testing.T) {
	f := novoRelatorioFixture(t)
	ctx := context.Background()

	vendas := []model.Venda{
		vendaComItem(uuid.New(), "A", 3, "10.00", model.VendaFinalizada),
		vendaComItem(uuid.New(), "B", 2, "10.00", model.VendaFinalizada),
		vendaComItem(uuid.New(), "C", 1, "10.00", model.VendaFinalizada),
	}
	require.NoError(t, f.historicoRepo.ReplaceAll(ctx, vendas))

	top, err := f.svc.MaisVendidos(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "A", top[0].Nome)
	assert.Equal(t, "B", top[1].Nome)
}

func TestEstoqueBaixoOrdenadoPorEstoque(t *testing.T) {
	f := novoRelatorioFixture(t)
	ctx := context.Background()

	produtos := []model.Produto{
		{ID: uuid.New(), Codigo: "000001", Nome: "Shampoo 300ml", Preco: decimal.NewFromInt(28), Estoque: 3, EstoqueMinimo: 5, ControlaEstoque: true, Ativo: true},
		{ID: uuid.New(), Codigo: "000002", Nome: "Pomada Modeladora", Preco: decimal.NewFromInt(35), Estoque: 1, EstoqueMinimo: 5, ControlaEstoque: true, Ativo: true},
		{ID: uuid.New(), Codigo: "000003", Nome: "Gel Fixador", Preco: decimal.NewFromInt(18), Estoque: 25, EstoqueMinimo: 5, ControlaEstoque: true, Ativo: true},
		// Serviços nunca aparecem.
		{ID: uuid.New(), Codigo: "000004", Nome: "Corte Masculino", Preco: decimal.NewFromInt(35), ControlaEstoque: false, Ativo: true},
	}
	require.NoError(t, f.produtoRepo.ReplaceAll(ctx, produtos))

	baixo, err := f.svc.EstoqueBaixo(ctx)
	require.NoError(t, err)
	require.Len(t, baixo, 2)
	assert.Equal(t, "Pomada Modeladora", baixo[0].Nome)
	assert.Equal(t, "Shampoo 300ml", baixo[1].Nome)
}
