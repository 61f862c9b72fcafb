package infra

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/carlospiquet2023/agendapronegocios/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateComprovantePDF(t *testing.T) {
	dir := t.TempDir()
	venda := &model.Venda{
		ID:     uuid.New(),
		Numero: 7,
		Data:   time.Date(2026, 8, 30, 14, 30, 0, 0, time.Local),
		Itens: []model.ItemVenda{
			{Nome: "Corte Masculino", Quantidade: 1, PrecoUnitario: decimal.RequireFromString("35.00"), Total: decimal.RequireFromString("35.00")},
		},
		Subtotal:       decimal.RequireFromString("35.00"),
		Desconto:       decimal.Zero,
		Total:          decimal.RequireFromString("35.00"),
		FormaPagamento: model.PagamentoPix,
		ValorPago:      decimal.RequireFromString("35.00"),
		Troco:          decimal.Zero,
		Status:         model.VendaFinalizada,
	}

	path, err := GenerateComprovantePDF(venda, "Barbearia Central", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "comprovante_0007.pdf"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

// Long accented names are truncated by runes, never mid-character.
func TestGenerateComprovantePDFNomeAcentuadoLongo(t *testing.T) {
	dir := t.TempDir()
	venda := &model.Venda{
		ID:     uuid.New(),
		Numero: 8,
		Data:   time.Now(),
		Itens: []model.ItemVenda{
			{Nome: "Coloração e Hidratação Capilar Profunda", Quantidade: 1, PrecoUnitario: decimal.RequireFromString("120.00"), Total: decimal.RequireFromString("120.00")},
		},
		Subtotal:       decimal.RequireFromString("120.00"),
		Desconto:       decimal.Zero,
		Total:          decimal.RequireFromString("120.00"),
		FormaPagamento: model.PagamentoCredito,
		ValorPago:      decimal.RequireFromString("120.00"),
		Troco:          decimal.Zero,
		Status:         model.VendaFinalizada,
	}

	path, err := GenerateComprovantePDF(venda, "Salão Conceição", dir)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
