package service

import (
	"context"
	"strings"
	"time"

	"github.com/carlospiquet2023/agendapronegocios/internal/dto"
	"github.com/carlospiquet2023/agendapronegocios/internal/model"
	"github.com/carlospiquet2023/agendapronegocios/internal/repository"

	"github.com/google/uuid"
)

type CategoriaService interface {
	Criar(ctx context.Context, req dto.CriarCategoriaRequest) (*dto.CategoriaResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarCategoriaRequest) (*dto.CategoriaResponse, error)
	Listar(ctx context.Context) ([]dto.CategoriaResponse, error)
	Desativar(ctx context.Context, id uuid.UUID) error
}

type categoriaService struct {
	repo repository.CategoriaRepository
}

func NewCategoriaService(repo repository.CategoriaRepository) CategoriaService {
	return &categoriaService{repo: repo}
}

func (s *categoriaService) Criar(ctx context.Context, req dto.CriarCategoriaRequest) (*dto.CategoriaResponse, error) {
	cor := req.Cor
	if cor == "" {
		cor = "#6366f1"
	}
	now := time.Now()
	c := model.Categoria{
		ID:        uuid.New(),
		Nome:      strings.TrimSpace(req.Nome),
		Cor:       cor,
		Ativo:     true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, err
	}
	return categoriaToResponse(&c), nil
}

func (s *categoriaService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	categorias, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range categorias {
		if categorias[i].ID != id {
			continue
		}
		c := &categorias[i]
		if req.Nome != nil {
			c.Nome = strings.TrimSpace(*req.Nome)
		}
		if req.Cor != nil {
			c.Cor = *req.Cor
		}
		c.UpdatedAt = time.Now()
		if err := s.repo.Update(ctx, c); err != nil {
			return nil, err
		}
		return categoriaToResponse(c), nil
	}
	return nil, model.ErrNaoEncontrado
}

func (s *categoriaService) Listar(ctx context.Context) ([]dto.CategoriaResponse, error) {
	categorias, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoriaResponse, 0, len(categorias))
	for i := range categorias {
		if categorias[i].Ativo {
			result = append(result, *categoriaToResponse(&categorias[i]))
		}
	}
	return result, nil
}

func (s *categoriaService) Desativar(ctx context.Context, id uuid.UUID) error {
	categorias, err := s.repo.ListAll(ctx)
	if err != nil {
		return err
	}
	for i := range categorias {
		if categorias[i].ID == id {
			categorias[i].Ativo = false
			categorias[i].UpdatedAt = time.Now()
			return s.repo.Update(ctx, &categorias[i])
		}
	}
	return model.ErrNaoEncontrado
}

func categoriaToResponse(c *model.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{
		ID:    c.ID.String(),
		Nome:  c.Nome,
		Cor:   c.Cor,
		Ativo: c.Ativo,
	}
}
