package repository

import (
	"context"
	"strings"

	"github.com/carlospiquet2023/agendapronegocios/internal/model"
	"github.com/carlospiquet2023/agendapronegocios/internal/store"

	"github.com/google/uuid"
)

// ProdutoRepository persists the catalog as a single whole-array document
// under store.KeyProdutos. Every write replaces the entire array.
type ProdutoRepository interface {
	ListAll(ctx context.Context) ([]model.Produto, error)
	ReplaceAll(ctx context.Context, produtos []model.Produto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error)
	FindByCodigoBarras(ctx context.Context, codigo string) (*model.Produto, error)
	// Buscar matches active products by case-insensitive substring over code and name.
	Buscar(ctx context.Context, termo string) ([]model.Produto, error)
	Create(ctx context.Context, p *model.Produto) error
	Update(ctx context.Context, p *model.Produto) error
}

type produtoRepo struct{ st store.Store }

func NewProdutoRepository(st store.Store) ProdutoRepository { return &produtoRepo{st: st} }

func (r *produtoRepo) ListAll(ctx context.Context) ([]model.Produto, error) {
	var produtos []model.Produto
	if _, err := r.st.Load(ctx, store.KeyProdutos, &produtos); err != nil {
		return nil, err
	}
	if produtos == nil {
		produtos = []model.Produto{}
	}
	return produtos, nil
}

func (r *produtoRepo) ReplaceAll(ctx context.Context, produtos []model.Produto) error {
	return r.st.Save(ctx, store.KeyProdutos, produtos)
}

func (r *produtoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error) {
	produtos, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range produtos {
		if produtos[i].ID == id {
			return &produtos[i], nil
		}
	}
	return nil, model.ErrNaoEncontrado
}

func (r *produtoRepo) FindByCodigoBarras(ctx context.Context, codigo string) (*model.Produto, error) {
	produtos, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range produtos {
		p := &produtos[i]
		if p.Ativo && p.CodigoBarras != nil && *p.CodigoBarras == codigo {
			return p, nil
		}
	}
	return nil, model.ErrNaoEncontrado
}

func (r *produtoRepo) Buscar(ctx context.Context, termo string) ([]model.Produto, error) {
	produtos, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	termo = strings.ToLower(termo)
	result := []model.Produto{}
	for _, p := range produtos {
		if !p.Ativo {
			continue
		}
		if strings.Contains(strings.ToLower(p.Codigo), termo) ||
			strings.Contains(strings.ToLower(p.Nome), termo) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *produtoRepo) Create(ctx context.Context, p *model.Produto) error {
	produtos, err := r.ListAll(ctx)
	if err != nil {
		return err
	}
	produtos = append(produtos, *p)
	return r.ReplaceAll(ctx, produtos)
}

func (r *produtoRepo) Update(ctx context.Context, p *model.Produto) error {
	produtos, err := r.ListAll(ctx)
	if err != nil {
		return err
	}
	for i := range produtos {
		if produtos[i].ID == p.ID {
			produtos[i] = *p
			return r.ReplaceAll(ctx, produtos)
		}
	}
	return model.ErrNaoEncontrado
}
