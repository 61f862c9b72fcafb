package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func produtoTeste(nome, preco string) *Produto {
	return &Produto{
		ID:     uuid.New(),
		Codigo: "000001",
		Nome:   nome,
		Preco:  decimal.RequireFromString(preco),
		Ativo:  true,
	}
}

func TestAdicionarItemMantemTotais(t *testing.T) {
	b := NovaVenda(1)
	p := produtoTeste("Shampoo 300ml", "28.90")

	b.AdicionarItem(p, 2)

	v := b.Venda()
	require.Len(t, v.Itens, 1)
	assert.True(t, v.Subtotal.Equal(decimal.RequireFromString("57.80")))
	assert.True(t, v.Total.Equal(v.Subtotal))
}

func TestAdicionarItemMesmoProdutoAgrupaLinha(t *testing.T) {
	b := NovaVenda(1)
	p := produtoTeste("Gel Fixador", "18.90")

	b.AdicionarItem(p, 1)
	b.AdicionarItem(p, 2)

	v := b.Venda()
	require.Len(t, v.Itens, 1)
	assert.Equal(t, 3, v.Itens[0].Quantidade)
	assert.True(t, v.Itens[0].Total.Equal(decimal.RequireFromString("56.70")))
}

func TestPrecoCapturadoNaAdicao(t *testing.T) {
	b := NovaVenda(1)
	p := produtoTeste("Pomada", "35.00")
	b.AdicionarItem(p, 1)

	// A later catalog price change must not affect the line.
	p.Preco = decimal.RequireFromString("40.00")

	v := b.Venda()
	assert.True(t, v.Itens[0].PrecoUnitario.Equal(decimal.RequireFromString("35.00")))
	assert.True(t, v.Total.Equal(decimal.RequireFromString("35.00")))
}

func TestAlterarQuantidadeZeroRemoveLinha(t *testing.T) {
	b := NovaVenda(1)
	p := produtoTeste("Barba", "25.00")
	b.AdicionarItem(p, 2)
	itemID := b.Venda().Itens[0].ID

	b.AlterarQuantidade(itemID, 0)

	v := b.Venda()
	assert.Empty(t, v.Itens)
	assert.True(t, v.Total.IsZero())
}

func TestDescontoPercentualReaplicadoAposMutacao(t *testing.T) {
	b := NovaVenda(1)
	p := produtoTeste("Corte Masculino", "35.00")
	b.AdicionarItem(p, 2) // 70.00
	b.AplicarDesconto(decimal.NewFromInt(10), DescontoPercentual)

	v := b.Venda()
	assert.True(t, v.Desconto.Equal(decimal.RequireFromString("7.00")), "10%% de 70.00")

	b.AdicionarItem(produtoTeste("Barba", "25.00"), 2) // subtotal 120.00
	v = b.Venda()
	assert.True(t, v.Desconto.Equal(decimal.RequireFromString("12.00")), "10%% de 120.00")
	assert.True(t, v.Total.Equal(decimal.RequireFromString("108.00")))
}

func TestDescontoMaiorQueSubtotalNaoNegativaTotal(t *testing.T) {
	b := NovaVenda(1)
	b.AdicionarItem(produtoTeste("Barba", "25.00"), 1)
	b.AplicarDesconto(decimal.NewFromInt(100), DescontoValor)

	v := b.Venda()
	assert.True(t, v.Total.IsZero())
}

func TestFinalizarVendaVazia(t *testing.T) {
	b := NovaVenda(1)
	_, err := b.Finalizar(PagamentoDinheiro, decimal.NewFromInt(10), nil)
	assert.ErrorIs(t, err, ErrVendaVazia)
}

func TestFinalizarDinheiroInsuficiente(t *testing.T) {
	b := NovaVenda(1)
	b.AdicionarItem(produtoTeste("Corte Feminino", "50.00"), 1)

	_, err := b.Finalizar(PagamentoDinheiro, decimal.NewFromInt(40), nil)
	assert.ErrorIs(t, err, ErrPagamentoInsuficiente)
}

func TestFinalizarDinheiroComTroco(t *testing.T) {
	b := NovaVenda(1)
	b.AdicionarItem(produtoTeste("Corte Masculino", "35.00"), 1)

	v, err := b.Finalizar(PagamentoDinheiro, decimal.NewFromInt(40), nil)
	require.NoError(t, err)
	assert.True(t, v.Troco.Equal(decimal.RequireFromString("5.00")))
	assert.Equal(t, VendaFinalizada, v.Status)
	require.NotNil(t, v.DataFinalizacao)
}

func TestFinalizarPixSemTroco(t *testing.T) {
	b := NovaVenda(1)
	b.AdicionarItem(produtoTeste("Corte Masculino", "35.00"), 1)

	// ValorPago zero defaults to the total on non-cash methods.
	v, err := b.Finalizar(PagamentoPix, decimal.Zero, nil)
	require.NoError(t, err)
	assert.True(t, v.ValorPago.Equal(decimal.RequireFromString("35.00")))
	assert.True(t, v.Troco.IsZero())
}
