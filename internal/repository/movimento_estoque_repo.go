package repository

import (
	"context"

	"github.com/carlospiquet2023/agendapronegocios/internal/model"
	"github.com/carlospiquet2023/agendapronegocios/internal/store"

	"github.com/google/uuid"
)

// MovimentoEstoqueRepository is the append-only stock audit trail.
type MovimentoEstoqueRepository interface {
	ListAll(ctx context.Context) ([]model.MovimentoEstoque, error)
	ListByProduto(ctx context.Context, produtoID uuid.UUID) ([]model.MovimentoEstoque, error)
	Append(ctx context.Context, movs ...model.MovimentoEstoque) error
}

type movimentoEstoqueRepo struct{ st store.Store }

func NewMovimentoEstoqueRepository(st store.Store) MovimentoEstoqueRepository {
	return &movimentoEstoqueRepo{st: st}
}

func (r *movimentoEstoqueRepo) ListAll(ctx context.Context) ([]model.MovimentoEstoque, error) {
	var movs []model.MovimentoEstoque
	if _, err := r.st.Load(ctx, store.KeyMovimentosEstoque, &movs); err != nil {
		return nil, err
	}
	if movs == nil {
		movs = []model.MovimentoEstoque{}
	}
	return movs, nil
}

func (r *movimentoEstoqueRepo) ListByProduto(ctx context.Context, produtoID uuid.UUID) ([]model.MovimentoEstoque, error) {
	movs, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	result := []model.MovimentoEstoque{}
	for _, m := range movs {
		if m.ProdutoID == produtoID {
			result = append(result, m)
		}
	}
	return result, nil
}

func (r *movimentoEstoqueRepo) Append(ctx context.Context, novos ...model.MovimentoEstoque) error {
	movs, err := r.ListAll(ctx)
	if err != nil {
		return err
	}
	movs = append(movs, novos...)
	return r.st.Save(ctx, store.KeyMovimentosEstoque, movs)
}
