package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registro struct {
	Nome  string `json:"nome"`
	Valor int    `json:"valor"`
}

func TestMemoryLoadChaveAusente(t *testing.T) {
	st := NewMemory()

	dest := []registro{{Nome: "sentinela"}}
	found, err := st.Load(context.Background(), KeyProdutos, &dest)
	require.NoError(t, err)
	assert.False(t, found)
	// dest untouched: the caller decides the default.
	require.Len(t, dest, 1)
	assert.Equal(t, "sentinela", dest[0].Nome)
}

func TestMemorySaveLoadRoundTrip(t *testing.T) {
	st := NewMemory()
	ctx := context.Background()

	in := []registro{{Nome: "a", Valor: 1}, {Nome: "b", Valor: 2}}
	require.NoError(t, st.Save(ctx, KeyProdutos, in))

	var out []registro
	found, err := st.Load(ctx, KeyProdutos, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestMemoryLoadDevolveCopia(t *testing.T) {
	st := NewMemory()
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, KeyClientes, []registro{{Nome: "original"}}))

	var primeira []registro
	_, err := st.Load(ctx, KeyClientes, &primeira)
	require.NoError(t, err)
	primeira[0].Nome = "mutado"

	var segunda []registro
	_, err = st.Load(ctx, KeyClientes, &segunda)
	require.NoError(t, err)
	assert.Equal(t, "original", segunda[0].Nome, "mutações no valor lido não vazam para o armazenamento")
}

func TestMemorySaveSobrescreveTudo(t *testing.T) {
	st := NewMemory()
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, KeyCaixas, []registro{{Nome: "a"}, {Nome: "b"}}))
	require.NoError(t, st.Save(ctx, KeyCaixas, []registro{{Nome: "c"}}))

	var out []registro
	_, err := st.Load(ctx, KeyCaixas, &out)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "c", out[0].Nome)
}

func TestMemorySaveAllVariasChaves(t *testing.T) {
	st := NewMemory()
	ctx := context.Background()

	err := st.SaveAll(ctx, map[string]interface{}{
		KeyProdutos: []registro{{Nome: "produto"}},
		KeyCaixas:   []registro{{Nome: "caixa"}},
	})
	require.NoError(t, err)

	var produtos, caixas []registro
	found, err := st.Load(ctx, KeyProdutos, &produtos)
	require.NoError(t, err)
	assert.True(t, found)
	found, err = st.Load(ctx, KeyCaixas, &caixas)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "produto", produtos[0].Nome)
	assert.Equal(t, "caixa", caixas[0].Nome)
}

func TestMemorySaveAllValorNaoSerializavel(t *testing.T) {
	st := NewMemory()
	ctx := context.Background()

	err := st.SaveAll(ctx, map[string]interface{}{
		KeyProdutos: []registro{{Nome: "ok"}},
		KeyCaixas:   make(chan int), // não serializável
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSerializacao)

	// Nenhuma das chaves foi gravada.
	var out []registro
	found, err := st.Load(ctx, KeyProdutos, &out)
	require.NoError(t, err)
	assert.False(t, found)
}
