package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/carlospiquet2023/agendapronegocios/internal/dto"
	"github.com/carlospiquet2023/agendapronegocios/internal/model"
	"github.com/carlospiquet2023/agendapronegocios/internal/repository"

	"github.com/google/uuid"
)

type CaixaService interface {
	Abrir(ctx context.Context, req dto.AbrirCaixaRequest) (*dto.CaixaResponse, error)
	Fechar(ctx context.Context, req dto.FecharCaixaRequest) (*dto.CaixaResponse, error)
	RegistrarSangria(ctx context.Context, req dto.MovimentoCaixaRequest) error
	RegistrarReforco(ctx context.Context, req dto.MovimentoCaixaRequest) error
	// CaixaAtual returns today's session, open or closed; ErrNaoEncontrado when none.
	CaixaAtual(ctx context.Context) (*dto.CaixaResponse, error)
	Historico(ctx context.Context, limit int) ([]dto.CaixaResumo, error)
	// CaixaAbertoHoje is called by VendaService to fetch the session sales
	// must be posted to. ErrCaixaFechado when no open session exists.
	CaixaAbertoHoje(ctx context.Context) (*model.Caixa, error)
}

type caixaService struct {
	repo     repository.CaixaRepository
	operador string

	// mu serializes every read-modify-write over the caixas array. The same
	// mutex is shared with VendaService (and ProdutoService, for the catalog),
	// so a sangria can never interleave with a finalize and overwrite it.
	mu *sync.Mutex
}

// NewCaixaService builds the register session service. mu is the shared
// session lock; pass nil to allocate a private one (single-service tests).
func NewCaixaService(repo repository.CaixaRepository, operador string, mu *sync.Mutex) CaixaService {
	if mu == nil {
		mu = &sync.Mutex{}
	}
	return &caixaService{repo: repo, operador: operador, mu: mu}
}

// ── Abrir ─────────────────────────────────────────────────────────────────────
// One session per calendar day: reopening after close is rejected too, so the
// daily balance always maps to exactly one session.

func (s *caixaService) Abrir(ctx context.Context, req dto.AbrirCaixaRequest) (*dto.CaixaResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.FindByData(ctx, time.Now())
	if err != nil && !errors.Is(err, model.ErrNaoEncontrado) {
		return nil, err
	}
	if existing != nil {
		return nil, model.ErrCaixaJaAberto
	}

	caixa := model.NovoCaixa(time.Now(), req.ValorInicial, s.operador)
	if err := s.repo.Create(ctx, caixa); err != nil {
		return nil, err
	}
	return caixaToResponse(caixa), nil
}

// ── Fechar ────────────────────────────────────────────────────────────────────

func (s *caixaService) Fechar(ctx context.Context, req dto.FecharCaixaRequest) (*dto.CaixaResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	caixa, err := s.CaixaAbertoHoje(ctx)
	if err != nil {
		return nil, err
	}

	esperado := caixa.CalcularValorEsperado()
	diferenca := req.ValorContado.Sub(esperado)
	now := time.Now()

	caixa.ValorFinal = &req.ValorContado
	caixa.ValorEsperado = &esperado
	caixa.Diferenca = &diferenca
	caixa.DataFechamento = &now
	caixa.Status = model.CaixaFechado
	caixa.Observacoes = req.Observacoes

	if err := s.repo.Update(ctx, caixa); err != nil {
		return nil, err
	}
	return caixaToResponse(caixa), nil
}

// ── Sangria / Reforço ─────────────────────────────────────────────────────────
// Both require an open session and a positive amount (validated at the edge).

func (s *caixaService) RegistrarSangria(ctx context.Context, req dto.MovimentoCaixaRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	caixa, err := s.CaixaAbertoHoje(ctx)
	if err != nil {
		return err
	}
	motivo := req.Motivo
	if motivo == "" {
		motivo = "Sangria"
	}
	caixa.Sangrias = append(caixa.Sangrias, model.MovimentoCaixa{
		ID:     uuid.New(),
		Data:   time.Now(),
		Valor:  req.Valor,
		Motivo: motivo,
	})
	return s.repo.Update(ctx, caixa)
}

func (s *caixaService) RegistrarReforco(ctx context.Context, req dto.MovimentoCaixaRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	caixa, err := s.CaixaAbertoHoje(ctx)
	if err != nil {
		return err
	}
	motivo := req.Motivo
	if motivo == "" {
		motivo = "Reforço de caixa"
	}
	caixa.Reforcos = append(caixa.Reforcos, model.MovimentoCaixa{
		ID:     uuid.New(),
		Data:   time.Now(),
		Valor:  req.Valor,
		Motivo: motivo,
	})
	return s.repo.Update(ctx, caixa)
}

// ── Consultas ─────────────────────────────────────────────────────────────────

func (s *caixaService) CaixaAtual(ctx context.Context) (*dto.CaixaResponse, error) {
	caixa, err := s.repo.FindByData(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	return caixaToResponse(caixa), nil
}

func (s *caixaService) Historico(ctx context.Context, limit int) ([]dto.CaixaResumo, error) {
	caixas, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	// Most recent first.
	resumos := make([]dto.CaixaResumo, 0, len(caixas))
	for i := len(caixas) - 1; i >= 0 && len(resumos) < limit; i-- {
		c := caixas[i]
		resumos = append(resumos, dto.CaixaResumo{
			ID:               c.ID.String(),
			Data:             c.Data,
			Status:           c.Status,
			ValorInicial:     c.ValorInicial,
			TotalVendas:      c.TotalVendas,
			QuantidadeVendas: c.QuantidadeVendas,
			Diferenca:        c.Diferenca,
		})
	}
	return resumos, nil
}

func (s *caixaService) CaixaAbertoHoje(ctx context.Context) (*model.Caixa, error) {
	caixa, err := s.repo.FindByData(ctx, time.Now())
	if errors.Is(err, model.ErrNaoEncontrado) {
		return nil, model.ErrCaixaFechado
	}
	if err != nil {
		return nil, err
	}
	if !caixa.Aberto() {
		return nil, model.ErrCaixaFechado
	}
	return caixa, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func caixaToResponse(c *model.Caixa) *dto.CaixaResponse {
	resp := &dto.CaixaResponse{
		ID:                      c.ID.String(),
		Data:                    c.Data,
		Status:                  c.Status,
		Operador:                c.Operador,
		DataAbertura:            c.DataAbertura.Format(time.RFC3339),
		ValorInicial:            c.ValorInicial,
		ValorEsperado:           c.ValorEsperado,
		ValorFinal:              c.ValorFinal,
		Diferenca:               c.Diferenca,
		TotalVendas:             c.TotalVendas,
		TotalDescontos:          c.TotalDescontos,
		TotaisPorMetodo:         c.TotaisPorMetodo,
		QuantidadeVendas:        c.QuantidadeVendas,
		QuantidadeCancelamentos: c.QuantidadeCancelamentos,
		Sangrias:                movimentosToResponse(c.Sangrias),
		Reforcos:                movimentosToResponse(c.Reforcos),
		Observacoes:             c.Observacoes,
	}
	if c.DataFechamento != nil {
		t := c.DataFechamento.Format(time.RFC3339)
		resp.DataFechamento = &t
	}
	return resp
}

func movimentosToResponse(movs []model.MovimentoCaixa) []dto.MovimentoCaixaResponse {
	result := make([]dto.MovimentoCaixaResponse, 0, len(movs))
	for _, m := range movs {
		result = append(result, dto.MovimentoCaixaResponse{
			ID:     m.ID.String(),
			Data:   m.Data.Format(time.RFC3339),
			Valor:  m.Valor,
			Motivo: m.Motivo,
		})
	}
	return result
}
