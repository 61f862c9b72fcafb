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

type ClienteService interface {
	Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarClienteRequest) (*dto.ClienteResponse, error)
	Listar(ctx context.Context, busca string) ([]dto.ClienteResponse, error)
	Obter(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	Desativar(ctx context.Context, id uuid.UUID) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error) {
	now := time.Now()
	c := model.Cliente{
		ID:          uuid.New(),
		Nome:        strings.TrimSpace(req.Nome),
		Telefone:    strings.TrimSpace(req.Telefone),
		Email:       req.Email,
		Observacoes: req.Observacoes,
		Ativo:       true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, err
	}
	return clienteToResponse(&c), nil
}

func (s *clienteService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Nome != nil {
		c.Nome = strings.TrimSpace(*req.Nome)
	}
	if req.Telefone != nil {
		c.Telefone = strings.TrimSpace(*req.Telefone)
	}
	if req.Email != nil {
		c.Email = req.Email
	}
	if req.Observacoes != nil {
		c.Observacoes = *req.Observacoes
	}
	c.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Listar(ctx context.Context, busca string) ([]dto.ClienteResponse, error) {
	var (
		clientes []model.Cliente
		err      error
	)
	if busca != "" {
		clientes, err = s.repo.Buscar(ctx, busca)
	} else {
		clientes, err = s.repo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	result := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		if !clientes[i].Ativo {
			continue
		}
		result = append(result, *clienteToResponse(&clientes[i]))
	}
	return result, nil
}

func (s *clienteService) Obter(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Desativar(ctx context.Context, id uuid.UUID) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	c.Ativo = false
	c.UpdatedAt = time.Now()
	return s.repo.Update(ctx, c)
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:          c.ID.String(),
		Nome:        c.Nome,
		Telefone:    c.Telefone,
		Email:       c.Email,
		Observacoes: c.Observacoes,
		Ativo:       c.Ativo,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}
