package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/carlospiquet2023/agendapronegocios/internal/dto"
	"github.com/carlospiquet2023/agendapronegocios/internal/model"
	"github.com/carlospiquet2023/agendapronegocios/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type ProdutoService interface {
	Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error)
	// AjustarEstoque applies a manual delta and records an audit entry.
	AjustarEstoque(ctx context.Context, id uuid.UUID, req dto.AjustarEstoqueRequest) (*dto.ProdutoResponse, error)
	Listar(ctx context.Context, filter dto.ProdutoFilter) ([]dto.ProdutoResponse, error)
	Obter(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error)
	Buscar(ctx context.Context, termo string) ([]dto.ProdutoResponse, error)
	PorCodigoBarras(ctx context.Context, codigo string) (*dto.ProdutoResponse, error)
	Desativar(ctx context.Context, id uuid.UUID) error
	Reativar(ctx context.Context, id uuid.UUID) error
	// ImportarCSV loads products from a spreadsheet export. Rows without a
	// valid name or price are skipped and reported, never aborting the batch.
	ImportarCSV(ctx context.Context, r io.Reader) (*dto.ImportarCSVResponse, error)
	ListarMovimentos(ctx context.Context, produtoID uuid.UUID) ([]dto.MovimentoEstoqueResponse, error)
}

type produtoService struct {
	repo      repository.ProdutoRepository
	movimRepo repository.MovimentoEstoqueRepository

	// mu serializes catalog writes. Shared with VendaService, whose finalize
	// also rewrites the products array for the stock decrement.
	mu *sync.Mutex
}

func NewProdutoService(repo repository.ProdutoRepository, movimRepo repository.MovimentoEstoqueRepository, mu *sync.Mutex) ProdutoService {
	if mu == nil {
		mu = &sync.Mutex{}
	}
	return &produtoService{repo: repo, movimRepo: movimRepo, mu: mu}
}

func (s *produtoService) Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	produtos, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	codigo := strings.TrimSpace(req.Codigo)
	if codigo == "" {
		codigo = proximoCodigo(produtos)
	}

	now := time.Now()
	p := model.Produto{
		ID:              uuid.New(),
		Codigo:          codigo,
		CodigoBarras:    req.CodigoBarras,
		Nome:            strings.TrimSpace(req.Nome),
		Categoria:       req.Categoria,
		Preco:           req.Preco,
		ControlaEstoque: true,
		Unidade:         "UN",
		Ativo:           true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if req.Estoque != nil {
		p.Estoque = *req.Estoque
	}
	if req.EstoqueMin != nil {
		p.EstoqueMinimo = *req.EstoqueMin
	}
	if req.ControlaEstoque != nil {
		p.ControlaEstoque = *req.ControlaEstoque
	}
	if req.Unidade != "" {
		p.Unidade = req.Unidade
	}

	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	return produtoToResponse(&p), nil
}

func (s *produtoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Nome != nil {
		p.Nome = strings.TrimSpace(*req.Nome)
	}
	if req.Categoria != nil {
		p.Categoria = *req.Categoria
	}
	if req.Preco != nil {
		p.Preco = *req.Preco
	}
	if req.EstoqueMinimo != nil {
		p.EstoqueMinimo = *req.EstoqueMinimo
	}
	if req.CodigoBarras != nil {
		p.CodigoBarras = req.CodigoBarras
	}
	if req.ControlaEstoque != nil {
		p.ControlaEstoque = *req.ControlaEstoque
	}
	if req.Unidade != nil {
		p.Unidade = *req.Unidade
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return produtoToResponse(p), nil
}

func (s *produtoService) AjustarEstoque(ctx context.Context, id uuid.UUID, req dto.AjustarEstoqueRequest) (*dto.ProdutoResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.ControlaEstoque {
		return nil, fmt.Errorf("produto %s não controla estoque", p.Codigo)
	}

	anterior := p.Estoque
	p.Estoque += req.Delta
	p.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	motivo := req.Motivo
	if motivo == "" {
		motivo = "Ajuste manual"
	}
	mov := model.MovimentoEstoque{
		ID:              uuid.New(),
		ProdutoID:       p.ID,
		Tipo:            "ajuste_manual",
		Quantidade:      req.Delta,
		EstoqueAnterior: anterior,
		EstoqueNovo:     p.Estoque,
		Motivo:          motivo,
		CreatedAt:       time.Now(),
	}
	if err := s.movimRepo.Append(ctx, mov); err != nil {
		log.Warn().Err(err).Str("produto", p.Codigo).Msg("falha ao gravar movimento de estoque")
	}
	return produtoToResponse(p), nil
}

func (s *produtoService) Listar(ctx context.Context, filter dto.ProdutoFilter) ([]dto.ProdutoResponse, error) {
	produtos, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	busca := strings.ToLower(filter.Busca)
	result := []dto.ProdutoResponse{}
	for i := range produtos {
		p := &produtos[i]
		if !p.Ativo && !filter.IncluirInativos {
			continue
		}
		if filter.Categoria != "" && p.Categoria != filter.Categoria {
			continue
		}
		if busca != "" &&
			!strings.Contains(strings.ToLower(p.Nome), busca) &&
			!strings.Contains(strings.ToLower(p.Codigo), busca) {
			continue
		}
		result = append(result, *produtoToResponse(p))
	}
	return result, nil
}

func (s *produtoService) Obter(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return produtoToResponse(p), nil
}

func (s *produtoService) Buscar(ctx context.Context, termo string) ([]dto.ProdutoResponse, error) {
	produtos, err := s.repo.Buscar(ctx, termo)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProdutoResponse, 0, len(produtos))
	for i := range produtos {
		result = append(result, *produtoToResponse(&produtos[i]))
	}
	return result, nil
}

func (s *produtoService) PorCodigoBarras(ctx context.Context, codigo string) (*dto.ProdutoResponse, error) {
	p, err := s.repo.FindByCodigoBarras(ctx, codigo)
	if err != nil {
		return nil, err
	}
	return produtoToResponse(p), nil
}

func (s *produtoService) Desativar(ctx context.Context, id uuid.UUID) error {
	return s.setAtivo(ctx, id, false)
}

func (s *produtoService) Reativar(ctx context.Context, id uuid.UUID) error {
	return s.setAtivo(ctx, id, true)
}

func (s *produtoService) setAtivo(ctx context.Context, id uuid.UUID, ativo bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	p.Ativo = ativo
	p.UpdatedAt = time.Now()
	return s.repo.Update(ctx, p)
}

func (s *produtoService) ImportarCSV(ctx context.Context, r io.Reader) (*dto.ImportarCSVResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	br := &bomReader{r: r}
	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("arquivo CSV vazio ou ilegível: %w", err)
	}
	// Spreadsheet exports in pt-BR use ';' — retry the header with it when the
	// comma parse yields a single column.
	if len(header) == 1 && strings.Contains(header[0], ";") {
		header = strings.Split(header[0], ";")
		reader.Comma = ';'
	}
	cols := map[string]int{}
	for i, h := range header {
		cols[normalizaColuna(h)] = i
	}
	if _, ok := cols["nome"]; !ok {
		return nil, fmt.Errorf("cabeçalho inválido: coluna 'nome' ausente")
	}

	produtos, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	existentes := map[string]bool{}
	for _, p := range produtos {
		existentes[p.Codigo] = true
	}

	resp := &dto.ImportarCSVResponse{}
	linha := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		linha++
		if err != nil {
			resp.Ignorados++
			resp.Erros = append(resp.Erros, fmt.Sprintf("linha %d: %v", linha, err))
			continue
		}

		campo := func(nome string) string {
			i, ok := cols[nome]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		nome := campo("nome")
		if nome == "" {
			resp.Ignorados++
			resp.Erros = append(resp.Erros, fmt.Sprintf("linha %d: nome vazio", linha))
			continue
		}
		preco, err := parsePreco(campo("preco"))
		if err != nil {
			resp.Ignorados++
			resp.Erros = append(resp.Erros, fmt.Sprintf("linha %d: preço inválido", linha))
			continue
		}

		codigo := campo("codigo")
		if codigo == "" {
			codigo = proximoCodigo(produtos)
		}
		if existentes[codigo] {
			resp.Ignorados++
			resp.Erros = append(resp.Erros, fmt.Sprintf("linha %d: código %s já existe", linha, codigo))
			continue
		}

		estoque, _ := strconv.Atoi(campo("estoque"))
		now := time.Now()
		p := model.Produto{
			ID:              uuid.New(),
			Codigo:          codigo,
			Nome:            nome,
			Categoria:       campo("categoria"),
			Preco:           preco,
			Estoque:         estoque,
			ControlaEstoque: true,
			Unidade:         "UN",
			Ativo:           true,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if cb := campo("codigobarras"); cb != "" {
			p.CodigoBarras = &cb
		}
		if u := campo("unidade"); u != "" {
			p.Unidade = u
		}

		produtos = append(produtos, p)
		existentes[codigo] = true
		resp.Importados++
	}

	if resp.Importados > 0 {
		if err := s.repo.ReplaceAll(ctx, produtos); err != nil {
			return nil, err
		}
	}
	log.Info().Int("importados", resp.Importados).Int("ignorados", resp.Ignorados).Msg("importação CSV concluída")
	return resp, nil
}

func (s *produtoService) ListarMovimentos(ctx context.Context, produtoID uuid.UUID) ([]dto.MovimentoEstoqueResponse, error) {
	movs, err := s.movimRepo.ListByProduto(ctx, produtoID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.MovimentoEstoqueResponse, 0, len(movs))
	// Most recent first.
	for i := len(movs) - 1; i >= 0; i-- {
		m := movs[i]
		r := dto.MovimentoEstoqueResponse{
			ID:              m.ID.String(),
			ProdutoID:       m.ProdutoID.String(),
			Tipo:            m.Tipo,
			Quantidade:      m.Quantidade,
			EstoqueAnterior: m.EstoqueAnterior,
			EstoqueNovo:     m.EstoqueNovo,
			Motivo:          m.Motivo,
			Data:            m.CreatedAt.Format(time.RFC3339),
		}
		if m.ReferenciaID != nil {
			ref := m.ReferenciaID.String()
			r.ReferenciaID = &ref
		}
		result = append(result, r)
	}
	return result, nil
}

// proximoCodigo yields the next sequential numeric code, zero-padded to six
// digits. Non-numeric codes (imported barcodes etc.) are ignored.
func proximoCodigo(produtos []model.Produto) string {
	max := 0
	for _, p := range produtos {
		if n, err := strconv.Atoi(p.Codigo); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%06d", max+1)
}

// parsePreco accepts both "12.50" and the pt-BR "12,50".
func parsePreco(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(s, "R$"))
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return decimal.NewFromString(s)
}

func normalizaColuna(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	replacer := strings.NewReplacer("ç", "c", "ó", "o", "é", "e", "á", "a", "í", "i", "_", "", " ", "", "-", "")
	return replacer.Replace(h)
}

// bomReader strips a UTF-8 BOM from the start of the stream, common in
// Excel-generated CSVs.
type bomReader struct {
	r       io.Reader
	checked bool
}

func (b *bomReader) Read(p []byte) (int, error) {
	if !b.checked {
		b.checked = true
		head := make([]byte, 3)
		n, err := io.ReadFull(b.r, head)
		if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
			return 0, err
		}
		head = head[:n]
		if !(n == 3 && head[0] == 0xEF && head[1] == 0xBB && head[2] == 0xBF) {
			b.r = io.MultiReader(strings.NewReader(string(head)), b.r)
		}
	}
	return b.r.Read(p)
}

func produtoToResponse(p *model.Produto) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		ID:              p.ID.String(),
		Codigo:          p.Codigo,
		CodigoBarras:    p.CodigoBarras,
		Nome:            p.Nome,
		Categoria:       p.Categoria,
		Preco:           p.Preco,
		Estoque:         p.Estoque,
		EstoqueMinimo:   p.EstoqueMinimo,
		ControlaEstoque: p.ControlaEstoque,
		Unidade:         p.Unidade,
		Ativo:           p.Ativo,
		EstoqueBaixo:    p.EstoqueBaixo(),
	}
}
