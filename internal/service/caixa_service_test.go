package service

import (
	"context"
	"testing"

	"github.com/carlospiquet2023/agendapronegocios/internal/dto"
	"github.com/carlospiquet2023/agendapronegocios/internal/model"
	"github.com/carlospiquet2023/agendapronegocios/internal/repository"
	"github.com/carlospiquet2023/agendapronegocios/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoCaixaService(t *testing.T) (CaixaService, store.Store) {
	t.Helper()
	st := store.NewMemory()
	return NewCaixaService(repository.NewCaixaRepository(st), "Operador", nil), st
}

func TestAbrirCaixa(t *testing.T) {
	svc, _ := novoCaixaService(t)
	ctx := context.Background()

	resp, err := svc.Abrir(ctx, dto.AbrirCaixaRequest{ValorInicial: decimal.NewFromInt(100)})
	require.NoError(t, err)
	assert.Equal(t, model.CaixaAberto, resp.Status)
	assert.Equal(t, "Operador", resp.Operador)
	assert.True(t, resp.ValorInicial.Equal(decimal.NewFromInt(100)))
	assert.True(t, resp.TotalVendas.IsZero())
}

func TestAbrirCaixaDuasVezesNoMesmoDia(t *testing.T) {
	svc, _ := novoCaixaService(t)
	ctx := context.Background()

	_, err := svc.Abrir(ctx, dto.AbrirCaixaRequest{ValorInicial: decimal.NewFromInt(50)})
	require.NoError(t, err)

	_, err = svc.Abrir(ctx, dto.AbrirCaixaRequest{ValorInicial: decimal.NewFromInt(50)})
	assert.ErrorIs(t, err, model.ErrCaixaJaAberto)
}

func TestReabrirCaixaFechadoNoMesmoDia(t *testing.T) {
	svc, _ := novoCaixaService(t)
	ctx := context.Background()

	_, err := svc.Abrir(ctx, dto.AbrirCaixaRequest{ValorInicial: decimal.NewFromInt(50)})
	require.NoError(t, err)
	_, err = svc.Fechar(ctx, dto.FecharCaixaRequest{ValorContado: decimal.NewFromInt(50)})
	require.NoError(t, err)

	// One session per calendar day, even after closing.
	_, err = svc.Abrir(ctx, dto.AbrirCaixaRequest{ValorInicial: decimal.NewFromInt(50)})
	assert.ErrorIs(t, err, model.ErrCaixaJaAberto)
}

func TestFecharCaixaCalculaEsperadoEDiferenca(t *testing.T) {
	svc, _ := novoCaixaService(t)
	ctx := context.Background()

	_, err := svc.Abrir(ctx, dto.AbrirCaixaRequest{ValorInicial: decimal.NewFromInt(100)})
	require.NoError(t, err)

	require.NoError(t, svc.RegistrarReforco(ctx, dto.MovimentoCaixaRequest{Valor: decimal.NewFromInt(35)}))
	require.NoError(t, svc.RegistrarSangria(ctx, dto.MovimentoCaixaRequest{Valor: decimal.NewFromInt(20), Motivo: "Troco para padaria"}))

	// esperado = 100 + 0 (vendas dinheiro) + 35 − 20 = 115
	resp, err := svc.Fechar(ctx, dto.FecharCaixaRequest{ValorContado: decimal.NewFromInt(115)})
	require.NoError(t, err)
	assert.Equal(t, model.CaixaFechado, resp.Status)
	require.NotNil(t, resp.ValorEsperado)
	assert.True(t, resp.ValorEsperado.Equal(decimal.NewFromInt(115)))
	require.NotNil(t, resp.Diferenca)
	assert.True(t, resp.Diferenca.IsZero())
}

func TestFecharCaixaComQuebra(t *testing.T) {
	svc, _ := novoCaixaService(t)
	ctx := context.Background()

	_, err := svc.Abrir(ctx, dto.AbrirCaixaRequest{ValorInicial: decimal.NewFromInt(100)})
	require.NoError(t, err)

	resp, err := svc.Fechar(ctx, dto.FecharCaixaRequest{ValorContado: decimal.NewFromInt(90)})
	require.NoError(t, err)
	require.NotNil(t, resp.Diferenca)
	assert.True(t, resp.Diferenca.Equal(decimal.NewFromInt(-10)))
}

func TestSangriaSemCaixaAberto(t *testing.T) {
	svc, _ := novoCaixaService(t)
	err := svc.RegistrarSangria(context.Background(), dto.MovimentoCaixaRequest{Valor: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, model.ErrCaixaFechado)
}

func TestHistoricoMaisRecentePrimeiro(t *testing.T) {
	st := store.NewMemory()
	repo := repository.NewCaixaRepository(st)
	svc := NewCaixaService(repo, "Operador", nil)
	ctx := context.Background()

	// Two past days plus today's session, appended in chronological order.
	require.NoError(t, repo.Create(ctx, &model.Caixa{Data: "2026-08-29", Status: model.CaixaFechado, TotaisPorMetodo: map[string]decimal.Decimal{}}))
	require.NoError(t, repo.Create(ctx, &model.Caixa{Data: "2026-08-30", Status: model.CaixaFechado, TotaisPorMetodo: map[string]decimal.Decimal{}}))
	_, err := svc.Abrir(ctx, dto.AbrirCaixaRequest{ValorInicial: decimal.NewFromInt(10)})
	require.NoError(t, err)

	resumos, err := svc.Historico(ctx, 2)
	require.NoError(t, err)
	require.Len(t, resumos, 2)
	assert.Equal(t, model.CaixaAberto, resumos[0].Status)
	assert.Equal(t, "2026-08-30", resumos[1].Data)
}
