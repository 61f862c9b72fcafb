package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/carlospiquet2023/agendapronegocios/internal/dto"
	"github.com/carlospiquet2023/agendapronegocios/internal/model"
	"github.com/carlospiquet2023/agendapronegocios/internal/repository"

	"github.com/shopspring/decimal"
)

type RelatorioService interface {
	BalancoDia(ctx context.Context, dia time.Time) (*dto.BalancoDia, error)
	// BalancoSemana folds the seven days starting on the Sunday of dia's week.
	BalancoSemana(ctx context.Context, dia time.Time) (*dto.BalancoSemana, error)
	BalancoMes(ctx context.Context, ano int, mes time.Month) (*dto.BalancoMes, error)
	MaisVendidos(ctx context.Context, limit int) ([]dto.ProdutoMaisVendido, error)
	EstoqueBaixo(ctx context.Context) ([]dto.ProdutoResponse, error)
}

type relatorioService struct {
	caixaRepo     repository.CaixaRepository
	historicoRepo repository.HistoricoRepository
	produtoRepo   repository.ProdutoRepository
}

func NewRelatorioService(
	caixaRepo repository.CaixaRepository,
	historicoRepo repository.HistoricoRepository,
	produtoRepo repository.ProdutoRepository,
) RelatorioService {
	return &relatorioService{caixaRepo: caixaRepo, historicoRepo: historicoRepo, produtoRepo: produtoRepo}
}

func (s *relatorioService) BalancoDia(ctx context.Context, dia time.Time) (*dto.BalancoDia, error) {
	caixa, err := s.caixaRepo.FindByData(ctx, dia)
	if err != nil && !errors.Is(err, model.ErrNaoEncontrado) {
		return nil, err
	}
	return balancoDoCaixa(dia.Format("2006-01-02"), caixa), nil
}

func (s *relatorioService) BalancoSemana(ctx context.Context, dia time.Time) (*dto.BalancoSemana, error) {
	caixas, err := s.caixaRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	porData := make(map[string]*model.Caixa, len(caixas))
	for i := range caixas {
		porData[caixas[i].Data] = &caixas[i]
	}

	domingo := dia.AddDate(0, 0, -int(dia.Weekday()))
	resp := &dto.BalancoSemana{
		Inicio:          domingo.Format("2006-01-02"),
		Fim:             domingo.AddDate(0, 0, 6).Format("2006-01-02"),
		TotalVendas:     decimal.Zero,
		TotaisPorMetodo: zeroTotais(),
		TicketMedio:     decimal.Zero,
		Dias:            make([]dto.BalancoDia, 0, 7),
	}
	for i := 0; i < 7; i++ {
		d := domingo.AddDate(0, 0, i).Format("2006-01-02")
		bal := balancoDoCaixa(d, porData[d])
		resp.Dias = append(resp.Dias, *bal)
		resp.TotalVendas = resp.TotalVendas.Add(bal.TotalVendas)
		resp.QuantidadeVendas += bal.QuantidadeVendas
		for forma, v := range bal.TotaisPorMetodo {
			resp.TotaisPorMetodo[forma] = resp.TotaisPorMetodo[forma].Add(v)
		}
	}
	resp.TicketMedio = ticketMedio(resp.TotalVendas, resp.QuantidadeVendas)
	return resp, nil
}

func (s *relatorioService) BalancoMes(ctx context.Context, ano int, mes time.Month) (*dto.BalancoMes, error) {
	caixas, err := s.caixaRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.BalancoMes{
		Ano:             ano,
		Mes:             int(mes),
		TotalVendas:     decimal.Zero,
		TotaisPorMetodo: zeroTotais(),
		TicketMedio:     decimal.Zero,
		MediaDiaria:     decimal.Zero,
	}
	for i := range caixas {
		c := &caixas[i]
		d, err := time.Parse("2006-01-02", c.Data)
		if err != nil || d.Year() != ano || d.Month() != mes {
			continue
		}
		resp.TotalVendas = resp.TotalVendas.Add(c.TotalVendas)
		resp.QuantidadeVendas += c.QuantidadeVendas
		for forma, v := range c.TotaisPorMetodo {
			resp.TotaisPorMetodo[forma] = resp.TotaisPorMetodo[forma].Add(v)
		}
		resp.DiasTrabalhados++
	}
	resp.TicketMedio = ticketMedio(resp.TotalVendas, resp.QuantidadeVendas)
	if resp.DiasTrabalhados > 0 {
		resp.MediaDiaria = resp.TotalVendas.Div(decimal.NewFromInt(int64(resp.DiasTrabalhados))).Round(2)
	}
	return resp, nil
}

func (s *relatorioService) MaisVendidos(ctx context.Context, limit int) ([]dto.ProdutoMaisVendido, error) {
	if limit < 1 {
		limit = 10
	}
	vendas, err := s.historicoRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	type acum struct {
		nome       string
		quantidade int
		total      decimal.Decimal
	}
	porProduto := map[string]*acum{}
	for i := range vendas {
		v := &vendas[i]
		if v.Status != model.VendaFinalizada {
			continue
		}
		for _, item := range v.Itens {
			id := item.ProdutoID.String()
			a, ok := porProduto[id]
			if !ok {
				a = &acum{nome: item.Nome, total: decimal.Zero}
				porProduto[id] = a
			}
			a.quantidade += item.Quantidade
			a.total = a.total.Add(item.Total)
		}
	}

	result := make([]dto.ProdutoMaisVendido, 0, len(porProduto))
	for id, a := range porProduto {
		result = append(result, dto.ProdutoMaisVendido{
			ProdutoID:  id,
			Nome:       a.nome,
			Quantidade: a.quantidade,
			Total:      a.total,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Quantidade != result[j].Quantidade {
			return result[i].Quantidade > result[j].Quantidade
		}
		return result[i].Total.GreaterThan(result[j].Total)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *relatorioService) EstoqueBaixo(ctx context.Context) ([]dto.ProdutoResponse, error) {
	produtos, err := s.produtoRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	result := []dto.ProdutoResponse{}
	for i := range produtos {
		if produtos[i].EstoqueBaixo() {
			result = append(result, *produtoToResponse(&produtos[i]))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Estoque < result[j].Estoque })
	return result, nil
}

func balancoDoCaixa(data string, caixa *model.Caixa) *dto.BalancoDia {
	if caixa == nil {
		return &dto.BalancoDia{
			Data:            data,
			Status:          "sem_movimento",
			TotalVendas:     decimal.Zero,
			TotalDescontos:  decimal.Zero,
			TotaisPorMetodo: zeroTotais(),
			TicketMedio:     decimal.Zero,
		}
	}
	totais := zeroTotais()
	for forma, v := range caixa.TotaisPorMetodo {
		totais[forma] = v
	}
	return &dto.BalancoDia{
		Data:                    data,
		Status:                  caixa.Status,
		TotalVendas:             caixa.TotalVendas,
		TotalDescontos:          caixa.TotalDescontos,
		QuantidadeVendas:        caixa.QuantidadeVendas,
		QuantidadeCancelamentos: caixa.QuantidadeCancelamentos,
		TotaisPorMetodo:         totais,
		TicketMedio:             ticketMedio(caixa.TotalVendas, caixa.QuantidadeVendas),
	}
}

func ticketMedio(total decimal.Decimal, quantidade int) decimal.Decimal {
	if quantidade == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(quantidade))).Round(2)
}

func zeroTotais() map[string]decimal.Decimal {
	totais := make(map[string]decimal.Decimal, len(model.FormasPagamento))
	for _, forma := range model.FormasPagamento {
		totais[forma] = decimal.Zero
	}
	return totais
}
