// Package store implements the synchronous key-value persistence contract:
// JSON-serialized arrays under fixed keys, wrapped in a versioned envelope
// {data, timestamp, version}. Reads fall back to a caller-supplied default
// when the key is absent; saves always overwrite the whole value.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Prefixo de chave herdado do storage original — evita colisões quando a
// mesma instância redis é compartilhada com outros sistemas.
const Prefix = "agenda_pro_"

// Version stamped into every envelope, for forward compatibility.
const Version = "1.0"

// Chaves fixas do sistema.
const (
	KeyProdutos          = "products"
	KeyCaixas            = "caixas"
	KeyVendasHistorico   = "vendas_historico"
	KeyClientes          = "clientes"
	KeyCategorias        = "categorias_produtos"
	KeyMovimentosEstoque = "movimentos_estoque"
)

// Storage failures form their own error family, distinct from domain rule
// failures, so the API can suggest corrective action (backup / limpeza)
// instead of a generic message.
var (
	// ErrIndisponivel: the backing store cannot be reached or refused the write.
	ErrIndisponivel = errors.New("armazenamento indisponível")
	// ErrSerializacao: the value could not be encoded or decoded.
	ErrSerializacao = errors.New("falha de serialização no armazenamento")
)

// Store is the persistence contract every repository builds on.
type Store interface {
	// Load decodes the value under key into dest. Returns found=false (and no
	// error) when the key has never been written — the caller applies its default.
	Load(ctx context.Context, key string, dest interface{}) (found bool, err error)
	// Save overwrites the whole value under key.
	Save(ctx context.Context, key string, value interface{}) error
	// SaveAll overwrites every given key in a single atomic commit: either all
	// writes apply or none do. Used by finalize/cancel, which touch the session,
	// the ledger and the catalog together.
	SaveAll(ctx context.Context, values map[string]interface{}) error
}

// envelope is the on-wire format of every stored value.
type envelope struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
	Version   string          `json:"version"`
}

func seal(value interface{}) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, errors.Join(ErrSerializacao, err)
	}
	raw, err := json.Marshal(envelope{
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
		Version:   Version,
	})
	if err != nil {
		return nil, errors.Join(ErrSerializacao, err)
	}
	return raw, nil
}

func unseal(raw []byte, dest interface{}) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return errors.Join(ErrSerializacao, err)
	}
	if err := json.Unmarshal(env.Data, dest); err != nil {
		return errors.Join(ErrSerializacao, err)
	}
	return nil
}
