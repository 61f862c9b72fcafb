package repository

import (
	"context"

	"github.com/carlospiquet2023/agendapronegocios/internal/model"
	"github.com/carlospiquet2023/agendapronegocios/internal/store"

	"github.com/google/uuid"
)

// HistoricoRepository is the append-only ledger of finalized and cancelled
// sales, under store.KeyVendasHistorico. The only mutation ever applied to an
// existing entry is the status flip on cancellation.
type HistoricoRepository interface {
	ListAll(ctx context.Context) ([]model.Venda, error)
	ReplaceAll(ctx context.Context, vendas []model.Venda) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venda, error)
}

type historicoRepo struct{ st store.Store }

func NewHistoricoRepository(st store.Store) HistoricoRepository { return &historicoRepo{st: st} }

func (r *historicoRepo) ListAll(ctx context.Context) ([]model.Venda, error) {
	var vendas []model.Venda
	if _, err := r.st.Load(ctx, store.KeyVendasHistorico, &vendas); err != nil {
		return nil, err
	}
	if vendas == nil {
		vendas = []model.Venda{}
	}
	return vendas, nil
}

func (r *historicoRepo) ReplaceAll(ctx context.Context, vendas []model.Venda) error {
	return r.st.Save(ctx, store.KeyVendasHistorico, vendas)
}

func (r *historicoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venda, error) {
	vendas, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range vendas {
		if vendas[i].ID == id {
			return &vendas[i], nil
		}
	}
	return nil, model.ErrNaoEncontrado
}
