package repository

import (
	"context"
	"time"

	"github.com/carlospiquet2023/agendapronegocios/internal/model"
	"github.com/carlospiquet2023/agendapronegocios/internal/store"

	"github.com/google/uuid"
)

// CaixaRepository persists every register session (open and closed) as one
// array under store.KeyCaixas.
type CaixaRepository interface {
	ListAll(ctx context.Context) ([]model.Caixa, error)
	ReplaceAll(ctx context.Context, caixas []model.Caixa) error
	// FindByData returns the session for a calendar day, or ErrNaoEncontrado.
	FindByData(ctx context.Context, dia time.Time) (*model.Caixa, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Caixa, error)
	Create(ctx context.Context, c *model.Caixa) error
	Update(ctx context.Context, c *model.Caixa) error
}

type caixaRepo struct{ st store.Store }

func NewCaixaRepository(st store.Store) CaixaRepository { return &caixaRepo{st: st} }

func (r *caixaRepo) ListAll(ctx context.Context) ([]model.Caixa, error) {
	var caixas []model.Caixa
	if _, err := r.st.Load(ctx, store.KeyCaixas, &caixas); err != nil {
		return nil, err
	}
	if caixas == nil {
		caixas = []model.Caixa{}
	}
	return caixas, nil
}

func (r *caixaRepo) ReplaceAll(ctx context.Context, caixas []model.Caixa) error {
	return r.st.Save(ctx, store.KeyCaixas, caixas)
}

func (r *caixaRepo) FindByData(ctx context.Context, dia time.Time) (*model.Caixa, error) {
	caixas, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	data := dia.Format("2006-01-02")
	for i := range caixas {
		if caixas[i].Data == data {
			return &caixas[i], nil
		}
	}
	return nil, model.ErrNaoEncontrado
}

func (r *caixaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Caixa, error) {
	caixas, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range caixas {
		if caixas[i].ID == id {
			return &caixas[i], nil
		}
	}
	return nil, model.ErrNaoEncontrado
}

func (r *caixaRepo) Create(ctx context.Context, c *model.Caixa) error {
	caixas, err := r.ListAll(ctx)
	if err != nil {
		return err
	}
	caixas = append(caixas, *c)
	return r.ReplaceAll(ctx, caixas)
}

func (r *caixaRepo) Update(ctx context.Context, c *model.Caixa) error {
	caixas, err := r.ListAll(ctx)
	if err != nil {
		return err
	}
	for i := range caixas {
		if caixas[i].ID == c.ID {
			caixas[i] = *c
			return r.ReplaceAll(ctx, caixas)
		}
	}
	return model.ErrNaoEncontrado
}
