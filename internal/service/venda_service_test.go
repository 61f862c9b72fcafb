package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/carlospiquet2023/agendapronegocios/internal/dto"
	"github.com/carlospiquet2023/agendapronegocios/internal/model"
	"github.com/carlospiquet2023/agendapronegocios/internal/repository"
	"github.com/carlospiquet2023/agendapronegocios/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vendaFixture struct {
	st            store.Store
	caixaSvc      CaixaService
	vendaSvc      VendaService
	caixaRepo     repository.CaixaRepository
	produtoRepo   repository.ProdutoRepository
	historicoRepo repository.HistoricoRepository
	corte         model.Produto // serviço, sem controle de estoque
	shampoo       model.Produto // produto, estoque 10
}

func novaVendaFixture(t *testing.T) *vendaFixture {
	t.Helper()
	st := store.NewMemory()
	caixaRepo := repository.NewCaixaRepository(st)
	produtoRepo := repository.NewProdutoRepository(st)
	historicoRepo := repository.NewHistoricoRepository(st)
	sessao := &sync.Mutex{}
	caixaSvc := NewCaixaService(caixaRepo, "Operador", sessao)

	f := &vendaFixture{
		st:            st,
		caixaSvc:      caixaSvc,
		vendaSvc:      NewVendaService(st, caixaSvc, caixaRepo, produtoRepo, historicoRepo, nil, sessao),
		caixaRepo:     caixaRepo,
		produtoRepo:   produtoRepo,
		historicoRepo: historicoRepo,
	}

	now := time.Now()
	f.corte = model.Produto{
		ID: uuid.New(), Codigo: "000001", Nome: "Corte Masculino",
		Preco: decimal.RequireFromString("35.00"), Ativo: true,
		Unidade: "UN", CreatedAt: now, UpdatedAt: now,
	}
	f.shampoo = model.Produto{
		ID: uuid.New(), Codigo: "000005", Nome: "Shampoo 300ml",
		Preco: decimal.RequireFromString("28.90"), Estoque: 10, EstoqueMinimo: 5,
		ControlaEstoque: true, Ativo: true, Unidade: "UN", CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, produtoRepo.Create(context.Background(), &f.corte))
	require.NoError(t, produtoRepo.Create(context.Background(), &f.shampoo))
	return f
}

func (f *vendaFixture) abrirCaixa(t *testing.T, valorInicial int64) {
	t.Helper()
	_, err := f.caixaSvc.Abrir(context.Background(), dto.AbrirCaixaRequest{ValorInicial: decimal.NewFromInt(valorInicial)})
	require.NoError(t, err)
}

func TestRegistrarVendaSemCaixaAberto(t *testing.T) {
	f := novaVendaFixture(t)
	_, err := f.vendaSvc.RegistrarVenda(context.Background(), dto.RegistrarVendaRequest{
		Itens:          []dto.ItemVendaRequest{{ProdutoID: f.corte.ID.String(), Quantidade: 1}},
		FormaPagamento: model.PagamentoPix,
	})
	assert.ErrorIs(t, err, model.ErrCaixaFechado)
}

func TestRegistrarVendaDinheiroEfeitosCompletos(t *testing.T) {
	f := novaVendaFixture(t)
	f.abrirCaixa(t, 100)
	ctx := context.Background()

	resp, err := f.vendaSvc.RegistrarVenda(ctx, dto.RegistrarVendaRequest{
		Itens: []dto.ItemVendaRequest{
			{ProdutoID: f.corte.ID.String(), Quantidade: 2},   // 70.00
			{ProdutoID: f.shampoo.ID.String(), Quantidade: 1}, // 28.90
		},
		FormaPagamento: model.PagamentoDinheiro,
		ValorPago:      decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	assert.Equal(t, "0001", resp.Numero)
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("98.90")))
	assert.True(t, resp.Troco.Equal(decimal.RequireFromString("1.10")))

	// Session totals.
	caixa, err := f.caixaSvc.CaixaAbertoHoje(ctx)
	require.NoError(t, err)
	assert.True(t, caixa.TotalVendas.Equal(decimal.RequireFromString("98.90")))
	assert.True(t, caixa.TotalMetodo(model.PagamentoDinheiro).Equal(decimal.RequireFromString("98.90")))
	assert.Equal(t, 1, caixa.QuantidadeVendas)
	require.Len(t, caixa.Vendas, 1)

	// Cash sales feed the expected drawer amount.
	assert.True(t, caixa.CalcularValorEsperado().Equal(decimal.RequireFromString("198.90")))

	// Stock decremented only for tracked items.
	shampoo, err := f.produtoRepo.FindByID(ctx, f.shampoo.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, shampoo.Estoque)
	corte, err := f.produtoRepo.FindByID(ctx, f.corte.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, corte.Estoque)

	// Ledger entry.
	historico, err := f.historicoRepo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, historico, 1)
	assert.Equal(t, model.VendaFinalizada, historico[0].Status)

	// Stock audit trail.
	var movs []model.MovimentoEstoque
	_, err = f.st.Load(ctx, store.KeyMovimentosEstoque, &movs)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, f.shampoo.ID, movs[0].ProdutoID)
	assert.Equal(t, -1, movs[0].Quantidade)
	assert.Equal(t, 10, movs[0].EstoqueAnterior)
	assert.Equal(t, 9, movs[0].EstoqueNovo)
}

func TestRegistrarVendaDinheiroInsuficienteSemEfeitoParcial(t *testing.T) {
	f := novaVendaFixture(t)
	f.abrirCaixa(t, 100)
	ctx := context.Background()

	_, err := f.vendaSvc.RegistrarVenda(ctx, dto.RegistrarVendaRequest{
		Itens:          []dto.ItemVendaRequest{{ProdutoID: f.shampoo.ID.String(), Quantidade: 2}},
		FormaPagamento: model.PagamentoDinheiro,
		ValorPago:      decimal.NewFromInt(50),
	})
	require.ErrorIs(t, err, model.ErrPagamentoInsuficiente)

	caixa, err := f.caixaSvc.CaixaAbertoHoje(ctx)
	require.NoError(t, err)
	assert.True(t, caixa.TotalVendas.IsZero())
	assert.Equal(t, 0, caixa.QuantidadeVendas)

	shampoo, err := f.produtoRepo.FindByID(ctx, f.shampoo.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, shampoo.Estoque)

	historico, err := f.historicoRepo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, historico)
}

func TestRegistrarVendaDescontoPercentual(t *testing.T) {
	f := novaVendaFixture(t)
	f.abrirCaixa(t, 0)
	ctx := context.Background()

	resp, err := f.vendaSvc.RegistrarVenda(ctx, dto.RegistrarVendaRequest{
		Itens:          []dto.ItemVendaRequest{{ProdutoID: f.corte.ID.String(), Quantidade: 2}}, // 70.00
		Desconto:       decimal.NewFromInt(10),
		DescontoTipo:   model.DescontoPercentual,
		FormaPagamento: model.PagamentoPix,
	})
	require.NoError(t, err)
	assert.True(t, resp.Desconto.Equal(decimal.RequireFromString("7.00")))
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("63.00")))

	caixa, err := f.caixaSvc.CaixaAbertoHoje(ctx)
	require.NoError(t, err)
	assert.True(t, caixa.TotalDescontos.Equal(decimal.RequireFromString("7.00")))
	assert.True(t, caixa.TotalMetodo(model.PagamentoPix).Equal(decimal.RequireFromString("63.00")))
	// Non-cash sales never touch the expected drawer amount.
	assert.True(t, caixa.CalcularValorEsperado().IsZero())
}

func TestNumeroSequencialPorSessao(t *testing.T) {
	f := novaVendaFixture(t)
	f.abrirCaixa(t, 0)
	ctx := context.Background()

	req := dto.RegistrarVendaRequest{
		Itens:          []dto.ItemVendaRequest{{ProdutoID: f.corte.ID.String(), Quantidade: 1}},
		FormaPagamento: model.PagamentoCredito,
	}
	primeira, err := f.vendaSvc.RegistrarVenda(ctx, req)
	require.NoError(t, err)
	segunda, err := f.vendaSvc.RegistrarVenda(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "0001", primeira.Numero)
	assert.Equal(t, "0002", segunda.Numero)
}

func TestCancelarVendaEstornaTotaisEEstoque(t *testing.T) {
	f := novaVendaFixture(t)
	f.abrirCaixa(t, 100)
	ctx := context.Background()

	resp, err := f.vendaSvc.RegistrarVenda(ctx, dto.RegistrarVendaRequest{
		Itens:          []dto.ItemVendaRequest{{ProdutoID: f.shampoo.ID.String(), Quantidade: 2}},
		FormaPagamento: model.PagamentoDinheiro,
		ValorPago:      decimal.NewFromInt(60),
	})
	require.NoError(t, err)
	vendaID := uuid.MustParse(resp.ID)

	require.NoError(t, f.vendaSvc.CancelarVenda(ctx, vendaID, "Cliente desistiu"))

	caixa, err := f.caixaSvc.CaixaAbertoHoje(ctx)
	require.NoError(t, err)
	assert.True(t, caixa.TotalVendas.IsZero())
	assert.True(t, caixa.TotalMetodo(model.PagamentoDinheiro).IsZero())
	// The posted-sale count is preserved; cancellations are tracked separately.
	assert.Equal(t, 1, caixa.QuantidadeVendas)
	assert.Equal(t, 1, caixa.QuantidadeCancelamentos)

	shampoo, err := f.produtoRepo.FindByID(ctx, f.shampoo.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, shampoo.Estoque)

	venda, err := f.historicoRepo.FindByID(ctx, vendaID)
	require.NoError(t, err)
	assert.Equal(t, model.VendaCancelada, venda.Status)
	require.NotNil(t, venda.MotivoCancelamento)
	assert.Equal(t, "Cliente desistiu", *venda.MotivoCancelamento)
	require.NotNil(t, venda.DataCancelamento)
}

func TestCancelarVendaDuasVezes(t *testing.T) {
	f := novaVendaFixture(t)
	f.abrirCaixa(t, 0)
	ctx := context.Background()

	resp, err := f.vendaSvc.RegistrarVenda(ctx, dto.RegistrarVendaRequest{
		Itens:          []dto.ItemVendaRequest{{ProdutoID: f.corte.ID.String(), Quantidade: 1}},
		FormaPagamento: model.PagamentoPix,
	})
	require.NoError(t, err)
	vendaID := uuid.MustParse(resp.ID)

	require.NoError(t, f.vendaSvc.CancelarVenda(ctx, vendaID, "Engano"))
	err = f.vendaSvc.CancelarVenda(ctx, vendaID, "Engano")
	assert.ErrorIs(t, err, model.ErrVendaJaCancelada)
}

func TestCancelarVendaInexistente(t *testing.T) {
	f := novaVendaFixture(t)
	f.abrirCaixa(t, 0)
	err := f.vendaSvc.CancelarVenda(context.Background(), uuid.New(), "Qualquer")
	assert.ErrorIs(t, err, model.ErrNaoEncontrado)
}

func TestRegistrarVendaProdutoInativo(t *testing.T) {
	f := novaVendaFixture(t)
	f.abrirCaixa(t, 0)
	ctx := context.Background()

	f.corte.Ativo = false
	require.NoError(t, f.produtoRepo.Update(ctx, &f.corte))

	_, err := f.vendaSvc.RegistrarVenda(ctx, dto.RegistrarVendaRequest{
		Itens:          []dto.ItemVendaRequest{{ProdutoID: f.corte.ID.String(), Quantidade: 1}},
		FormaPagamento: model.PagamentoPix,
	})
	assert.ErrorIs(t, err, model.ErrNaoEncontrado)
}

func TestListarVendasFiltroStatus(t *testing.T) {
	f := novaVendaFixture(t)
	f.abrirCaixa(t, 0)
	ctx := context.Background()

	req := dto.RegistrarVendaRequest{
		Itens:          []dto.ItemVendaRequest{{ProdutoID: f.corte.ID.String(), Quantidade: 1}},
		FormaPagamento: model.PagamentoDebito,
	}
	primeira, err := f.vendaSvc.RegistrarVenda(ctx, req)
	require.NoError(t, err)
	_, err = f.vendaSvc.RegistrarVenda(ctx, req)
	require.NoError(t, err)
	require.NoError(t, f.vendaSvc.CancelarVenda(ctx, uuid.MustParse(primeira.ID), "Teste"))

	lista, err := f.vendaSvc.ListarVendas(ctx, dto.VendaFilter{Status: model.VendaFinalizada, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 1, lista.Total)
	assert.Equal(t, "0002", lista.Data[0].Numero)
}

func TestListarVendasLimiteMaximo(t *testing.T) {
	f := novaVendaFixture(t)
	ctx := context.Background()

	vendas := make([]model.Venda, 600)
	for i := range vendas {
		vendas[i] = model.Venda{
			ID: uuid.New(), Numero: i + 1, Data: time.Now(),
			Total:          decimal.NewFromInt(10),
			FormaPagamento: model.PagamentoPix,
			Status:         model.VendaFinalizada,
		}
	}
	require.NoError(t, f.historicoRepo.ReplaceAll(ctx, vendas))

	lista, err := f.vendaSvc.ListarVendas(ctx, dto.VendaFilter{Limit: 100000})
	require.NoError(t, err)
	assert.Equal(t, 500, lista.Total)
}

// Sangrias and vendas write the same session record. Every acknowledged
// operation must survive into the stored session, whichever order the
// goroutines land in.
func TestVendasESangriasConcorrentesTodasPersistem(t *testing.T) {
	f := novaVendaFixture(t)
	f.abrirCaixa(t, 1000)
	ctx := context.Background()

	const n = 50
	errs := make(chan error, 2*n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			errs <- f.caixaSvc.RegistrarSangria(ctx, dto.MovimentoCaixaRequest{Valor: decimal.NewFromInt(1)})
		}()
		go func() {
			defer wg.Done()
			_, err := f.vendaSvc.RegistrarVenda(ctx, dto.RegistrarVendaRequest{
				Itens:          []dto.ItemVendaRequest{{ProdutoID: f.corte.ID.String(), Quantidade: 1}},
				FormaPagamento: model.PagamentoDinheiro,
				ValorPago:      decimal.NewFromInt(35),
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	caixa, err := f.caixaSvc.CaixaAbertoHoje(ctx)
	require.NoError(t, err)
	assert.Len(t, caixa.Sangrias, n)
	assert.Len(t, caixa.Vendas, n)
	assert.Equal(t, n, caixa.QuantidadeVendas)
	assert.True(t, caixa.TotalVendas.Equal(decimal.NewFromInt(n*35)),
		"total vendas: %s", caixa.TotalVendas)
	// 1000 initial + 50x35 cash - 50x1 withdrawn.
	assert.True(t, caixa.CalcularValorEsperado().Equal(decimal.NewFromInt(1000+n*35-n)),
		"esperado: %s", caixa.CalcularValorEsperado())

	historico, err := f.historicoRepo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, historico, n)
}
