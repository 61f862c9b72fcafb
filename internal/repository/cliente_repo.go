package repository

import (
	"context"
	"strings"

	"github.com/carlospiquet2023/agendapronegocios/internal/model"
	"github.com/carlospiquet2023/agendapronegocios/internal/store"

	"github.com/google/uuid"
)

type ClienteRepository interface {
	ListAll(ctx context.Context) ([]model.Cliente, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	Buscar(ctx context.Context, termo string) ([]model.Cliente, error)
	Create(ctx context.Context, c *model.Cliente) error
	Update(ctx context.Context, c *model.Cliente) error
}

type clienteRepo struct{ st store.Store }

func NewClienteRepository(st store.Store) ClienteRepository { return &clienteRepo{st: st} }

func (r *clienteRepo) ListAll(ctx context.Context) ([]model.Cliente, error) {
	var clientes []model.Cliente
	if _, err := r.st.Load(ctx, store.KeyClientes, &clientes); err != nil {
		return nil, err
	}
	if clientes == nil {
		clientes = []model.Cliente{}
	}
	return clientes, nil
}

func (r *clienteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	clientes, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range clientes {
		if clientes[i].ID == id {
			return &clientes[i], nil
		}
	}
	return nil, model.ErrNaoEncontrado
}

func (r *clienteRepo) Buscar(ctx context.Context, termo string) ([]model.Cliente, error) {
	clientes, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	termo = strings.ToLower(termo)
	result := []model.Cliente{}
	for _, c := range clientes {
		if !c.Ativo {
			continue
		}
		if strings.Contains(strings.ToLower(c.Nome), termo) ||
			strings.Contains(c.Telefone, termo) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	clientes, err := r.ListAll(ctx)
	if err != nil {
		return err
	}
	clientes = append(clientes, *c)
	return r.st.Save(ctx, store.KeyClientes, clientes)
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	clientes, err := r.ListAll(ctx)
	if err != nil {
		return err
	}
	for i := range clientes {
		if clientes[i].ID == c.ID {
			clientes[i] = *c
			return r.st.Save(ctx, store.KeyClientes, clientes)
		}
	}
	return model.ErrNaoEncontrado
}
