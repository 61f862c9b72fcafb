package repository

import (
	"context"

	"github.com/carlospiquet2023/agendapronegocios/internal/model"
	"github.com/carlospiquet2023/agendapronegocios/internal/store"

	"github.com/google/uuid"
)

type CategoriaRepository interface {
	// ListAll returns the stored categories, or the built-in defaults when the
	// key has never been written.
	ListAll(ctx context.Context) ([]model.Categoria, error)
	Create(ctx context.Context, c *model.Categoria) error
	Update(ctx context.Context, c *model.Categoria) error
}

type categoriaRepo struct{ st store.Store }

func NewCategoriaRepository(st store.Store) CategoriaRepository { return &categoriaRepo{st: st} }

func (r *categoriaRepo) ListAll(ctx context.Context) ([]model.Categoria, error) {
	var categorias []model.Categoria
	found, err := r.st.Load(ctx, store.KeyCategorias, &categorias)
	if err != nil {
		return nil, err
	}
	if !found {
		return defaultCategorias(), nil
	}
	return categorias, nil
}

func (r *categoriaRepo) Create(ctx context.Context, c *model.Categoria) error {
	categorias, err := r.ListAll(ctx)
	if err != nil {
		return err
	}
	categorias = append(categorias, *c)
	return r.st.Save(ctx, store.KeyCategorias, categorias)
}

func (r *categoriaRepo) Update(ctx context.Context, c *model.Categoria) error {
	categorias, err := r.ListAll(ctx)
	if err != nil {
		return err
	}
	for i := range categorias {
		if categorias[i].ID == c.ID {
			categorias[i] = *c
			return r.st.Save(ctx, store.KeyCategorias, categorias)
		}
	}
	return model.ErrNaoEncontrado
}

func defaultCategorias() []model.Categoria {
	return []model.Categoria{
		{ID: uuid.MustParse("e53b05c6-0000-4000-8000-000000000001"), Nome: "Geral", Cor: "#6366f1", Ativo: true},
		{ID: uuid.MustParse("e53b05c6-0000-4000-8000-000000000002"), Nome: "Serviços", Cor: "#22c55e", Ativo: true},
		{ID: uuid.MustParse("e53b05c6-0000-4000-8000-000000000003"), Nome: "Produtos", Cor: "#f59e0b", Ativo: true},
	}
}
