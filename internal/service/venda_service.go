package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/carlospiquet2023/agendapronegocios/internal/dto"
	"github.com/carlospiquet2023/agendapronegocios/internal/model"
	"github.com/carlospiquet2023/agendapronegocios/internal/repository"
	"github.com/carlospiquet2023/agendapronegocios/internal/store"
	"github.com/carlospiquet2023/agendapronegocios/internal/worker"

	"github.com/google/uuid"
)

type VendaService interface {
	// RegistrarVenda builds, finalizes and posts a sale in one call. The five
	// effects (session totals, sale count, session snapshot, ledger append,
	// stock decrement) commit atomically.
	RegistrarVenda(ctx context.Context, req dto.RegistrarVendaRequest) (*dto.VendaResponse, error)
	// CancelarVenda reverses a posted sale's totals and stock exactly once.
	CancelarVenda(ctx context.Context, vendaID uuid.UUID, motivo string) error
	ListarVendas(ctx context.Context, filter dto.VendaFilter) (*dto.VendaListResponse, error)
	ObterVenda(ctx context.Context, vendaID uuid.UUID) (*dto.VendaResponse, error)
}

type vendaService struct {
	st            store.Store
	caixa         CaixaService
	caixaRepo     repository.CaixaRepository
	produtoRepo   repository.ProdutoRepository
	historicoRepo repository.HistoricoRepository
	dispatcher    *worker.Dispatcher

	// mu serializes finalize/cancel so the reconciliation invariant and the
	// per-session sequence numbers hold under concurrent callers. It is the
	// session lock shared with CaixaService and ProdutoService: a sangria or a
	// stock adjustment running against the same arrays must not interleave
	// with a finalize and overwrite its write.
	mu *sync.Mutex
}

func NewVendaService(
	st store.Store,
	caixa CaixaService,
	caixaRepo repository.CaixaRepository,
	produtoRepo repository.ProdutoRepository,
	historicoRepo repository.HistoricoRepository,
	dispatcher *worker.Dispatcher,
	mu *sync.Mutex,
) VendaService {
	if mu == nil {
		mu = &sync.Mutex{}
	}
	return &vendaService{
		st:            st,
		caixa:         caixa,
		caixaRepo:     caixaRepo,
		produtoRepo:   produtoRepo,
		historicoRepo: historicoRepo,
		dispatcher:    dispatcher,
		mu:            mu,
	}
}

// ── RegistrarVenda ────────────────────────────────────────────────────────────
//  1. Require an open session for today
//  2. Build the sale: resolve products, capture prices, apply discount
//  3. Finalize: payment validation, troco
//  4. Post all effects on in-memory copies, then commit every touched key in
//     a single atomic SaveAll — a failed validation leaves no partial state.
//  5. (async) enqueue the comprovante job

func (s *vendaService) RegistrarVenda(ctx context.Context, req dto.RegistrarVendaRequest) (*dto.VendaResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	caixaHoje, err := s.caixa.CaixaAbertoHoje(ctx)
	if err != nil {
		return nil, err
	}

	produtos, err := s.produtoRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	porID := make(map[uuid.UUID]*model.Produto, len(produtos))
	for i := range produtos {
		porID[produtos[i].ID] = &produtos[i]
	}

	builder := model.NovaVenda(len(caixaHoje.Vendas) + 1)
	for _, item := range req.Itens {
		pid, err := uuid.Parse(item.ProdutoID)
		if err != nil {
			return nil, fmt.Errorf("produto_id inválido: %w", err)
		}
		p, ok := porID[pid]
		if !ok || !p.Ativo {
			return nil, fmt.Errorf("produto %s: %w", item.ProdutoID, model.ErrNaoEncontrado)
		}
		builder.AdicionarItem(p, item.Quantidade)
	}
	if req.Desconto.IsPositive() {
		builder.AplicarDesconto(req.Desconto, req.DescontoTipo)
	}

	var clienteID *uuid.UUID
	if req.ClienteID != nil {
		cid, err := uuid.Parse(*req.ClienteID)
		if err != nil {
			return nil, fmt.Errorf("cliente_id inválido: %w", err)
		}
		clienteID = &cid
	}

	venda, err := builder.Finalizar(req.FormaPagamento, req.ValorPago, clienteID)
	if err != nil {
		return nil, err
	}
	venda.CaixaID = caixaHoje.ID

	// Post into the session.
	caixaHoje.Vendas = append(caixaHoje.Vendas, *venda)
	caixaHoje.TotalVendas = caixaHoje.TotalVendas.Add(venda.Total)
	caixaHoje.TotalDescontos = caixaHoje.TotalDescontos.Add(venda.Desconto)
	caixaHoje.TotaisPorMetodo[venda.FormaPagamento] = caixaHoje.TotalMetodo(venda.FormaPagamento).Add(venda.Total)
	caixaHoje.QuantidadeVendas++

	// Decrement stock for tracked items, with audit entries.
	movimentos := s.aplicarEstoque(produtos, venda, -1, fmt.Sprintf("Venda #%04d", venda.Numero))

	caixas, err := s.caixaRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	replaceCaixa(caixas, caixaHoje)

	historico, err := s.historicoRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	historico = append(historico, *venda)

	movsAll, err := s.listMovimentos(ctx)
	if err != nil {
		return nil, err
	}
	movsAll = append(movsAll, movimentos...)

	if err := s.st.SaveAll(ctx, map[string]interface{}{
		store.KeyCaixas:            caixas,
		store.KeyProdutos:          produtos,
		store.KeyVendasHistorico:   historico,
		store.KeyMovimentosEstoque: movsAll,
	}); err != nil {
		return nil, err
	}

	// Comprovante PDF/email is best-effort and outside the atomic commit.
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueComprovante(ctx, worker.ComprovantePayload{VendaID: venda.ID.String()})
	}

	return vendaToResponse(venda), nil
}

// ── CancelarVenda ─────────────────────────────────────────────────────────────

func (s *vendaService) CancelarVenda(ctx context.Context, vendaID uuid.UUID, motivo string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	caixaHoje, err := s.caixa.CaixaAbertoHoje(ctx)
	if err != nil {
		return err
	}

	venda := caixaHoje.BuscarVenda(vendaID)
	if venda == nil {
		return model.ErrNaoEncontrado
	}
	if venda.Status == model.VendaCancelada {
		return model.ErrVendaJaCancelada
	}

	// Reverse session totals; sale count is preserved, cancellations counted.
	caixaHoje.TotalVendas = caixaHoje.TotalVendas.Sub(venda.Total)
	caixaHoje.TotaisPorMetodo[venda.FormaPagamento] = caixaHoje.TotalMetodo(venda.FormaPagamento).Sub(venda.Total)
	caixaHoje.QuantidadeCancelamentos++

	now := time.Now()
	venda.Status = model.VendaCancelada
	venda.MotivoCancelamento = &motivo
	venda.DataCancelamento = &now

	// Restore stock.
	produtos, err := s.produtoRepo.ListAll(ctx)
	if err != nil {
		return err
	}
	movimentos := s.aplicarEstoque(produtos, venda, +1,
		fmt.Sprintf("Cancelamento venda #%04d — %s", venda.Numero, motivo))

	caixas, err := s.caixaRepo.ListAll(ctx)
	if err != nil {
		return err
	}
	replaceCaixa(caixas, caixaHoje)

	// Flip status on the ledger copy as well.
	historico, err := s.historicoRepo.ListAll(ctx)
	if err != nil {
		return err
	}
	for i := range historico {
		if historico[i].ID == vendaID {
			historico[i] = *venda
			break
		}
	}

	movsAll, err := s.listMovimentos(ctx)
	if err != nil {
		return err
	}
	movsAll = append(movsAll, movimentos...)

	return s.st.SaveAll(ctx, map[string]interface{}{
		store.KeyCaixas:            caixas,
		store.KeyProdutos:          produtos,
		store.KeyVendasHistorico:   historico,
		store.KeyMovimentosEstoque: movsAll,
	})
}

// ── Consultas ─────────────────────────────────────────────────────────────────

func (s *vendaService) ListarVendas(ctx context.Context, filter dto.VendaFilter) (*dto.VendaListResponse, error) {
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	if filter.Limit > 500 {
		filter.Limit = 500
	}
	vendas, err := s.historicoRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	result := []dto.VendaResponse{}
	// Most recent first.
	for i := len(vendas) - 1; i >= 0 && len(result) < filter.Limit; i-- {
		v := &vendas[i]
		if filter.Status != "" && v.Status != filter.Status {
			continue
		}
		if filter.Data != "" && v.Data.Format("2006-01-02") != filter.Data {
			continue
		}
		result = append(result, *vendaToResponse(v))
	}
	return &dto.VendaListResponse{Data: result, Total: len(result)}, nil
}

func (s *vendaService) ObterVenda(ctx context.Context, vendaID uuid.UUID) (*dto.VendaResponse, error) {
	venda, err := s.historicoRepo.FindByID(ctx, vendaID)
	if err != nil {
		return nil, err
	}
	return vendaToResponse(venda), nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// aplicarEstoque applies sinal×quantidade to every tracked-stock item of the
// sale, mutating the produtos slice in place, and returns the audit entries.
func (s *vendaService) aplicarEstoque(produtos []model.Produto, venda *model.Venda, sinal int, motivo string) []model.MovimentoEstoque {
	tipo := "venda"
	if sinal > 0 {
		tipo = "devolucao_cancelamento"
	}
	ref := venda.ID
	movimentos := []model.MovimentoEstoque{}
	for _, item := range venda.Itens {
		for i := range produtos {
			p := &produtos[i]
			if p.ID != item.ProdutoID || !p.ControlaEstoque {
				continue
			}
			anterior := p.Estoque
			p.Estoque += sinal * item.Quantidade
			p.UpdatedAt = time.Now()
			movimentos = append(movimentos, model.MovimentoEstoque{
				ID:              uuid.New(),
				ProdutoID:       p.ID,
				Tipo:            tipo,
				Quantidade:      sinal * item.Quantidade,
				EstoqueAnterior: anterior,
				EstoqueNovo:     p.Estoque,
				Motivo:          motivo,
				ReferenciaID:    &ref,
				CreatedAt:       time.Now(),
			})
			break
		}
	}
	return movimentos
}

func (s *vendaService) listMovimentos(ctx context.Context) ([]model.MovimentoEstoque, error) {
	var movs []model.MovimentoEstoque
	if _, err := s.st.Load(ctx, store.KeyMovimentosEstoque, &movs); err != nil {
		return nil, err
	}
	if movs == nil {
		movs = []model.MovimentoEstoque{}
	}
	return movs, nil
}

func replaceCaixa(caixas []model.Caixa, caixa *model.Caixa) {
	for i := range caixas {
		if caixas[i].ID == caixa.ID {
			caixas[i] = *caixa
			return
		}
	}
}

func vendaToResponse(v *model.Venda) *dto.VendaResponse {
	itens := make([]dto.ItemVendaResponse, 0, len(v.Itens))
	for _, item := range v.Itens {
		itens = append(itens, dto.ItemVendaResponse{
			ID:            item.ID.String(),
			ProdutoID:     item.ProdutoID.String(),
			Nome:          item.Nome,
			PrecoUnitario: item.PrecoUnitario,
			Quantidade:    item.Quantidade,
			Total:         item.Total,
		})
	}
	resp := &dto.VendaResponse{
		ID:                 v.ID.String(),
		Numero:             fmt.Sprintf("%04d", v.Numero),
		CaixaID:            v.CaixaID.String(),
		Itens:              itens,
		Subtotal:           v.Subtotal,
		Desconto:           v.Desconto,
		Total:              v.Total,
		FormaPagamento:     v.FormaPagamento,
		ValorPago:          v.ValorPago,
		Troco:              v.Troco,
		Status:             v.Status,
		MotivoCancelamento: v.MotivoCancelamento,
		Data:               v.Data.Format(time.RFC3339),
	}
	if v.ClienteID != nil {
		cid := v.ClienteID.String()
		resp.ClienteID = &cid
	}
	return resp
}
