// cmd/seed — carrega o catálogo de exemplo quando o armazenamento está vazio.
// Uso: REDIS_URL=redis://localhost:6379 go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/carlospiquet2023/agendapronegocios/internal/config"
	"github.com/carlospiquet2023/agendapronegocios/internal/infra"
	"github.com/carlospiquet2023/agendapronegocios/internal/model"
	"github.com/carlospiquet2023/agendapronegocios/internal/repository"
	"github.com/carlospiquet2023/agendapronegocios/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type exemplo struct {
	codigo    string
	nome      string
	preco     string
	categoria string
	estoque   int
	minimo    int
	servico   bool
}

var exemplos = []exemplo{
	{"000001", "Corte Masculino", "35.00", "Serviços", 0, 0, true},
	{"000002", "Corte Feminino", "50.00", "Serviços", 0, 0, true},
	{"000003", "Barba", "25.00", "Serviços", 0, 0, true},
	{"000004", "Corte + Barba", "55.00", "Serviços", 0, 0, true},
	{"000005", "Shampoo 300ml", "28.90", "Produtos", 15, 5, false},
	{"000006", "Pomada Modeladora", "35.00", "Produtos", 20, 5, false},
	{"000007", "Óleo para Barba", "45.00", "Produtos", 12, 3, false},
	{"000008", "Gel Fixador", "18.90", "Produtos", 25, 5, false},
	{"000009", "Hidratação Capilar", "40.00", "Serviços", 0, 0, true},
	{"000010", "Combo VIP", "85.00", "Serviços", 0, 0, true},
	{"000011", "Manicure", "30.00", "Serviços", 0, 0, true},
	{"000012", "Pedicure", "35.00", "Serviços", 0, 0, true},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	ctx := context.Background()
	repo := repository.NewProdutoRepository(store.NewRedis(rdb))

	existentes, err := repo.ListAll(ctx)
	if err != nil {
		log.Fatalf("listar produtos: %v", err)
	}
	if len(existentes) > 0 {
		fmt.Printf("catálogo já possui %d produtos, nada a fazer\n", len(existentes))
		return
	}

	now := time.Now()
	produtos := make([]model.Produto, 0, len(exemplos))
	for _, e := range exemplos {
		produtos = append(produtos, model.Produto{
			ID:              uuid.New(),
			Codigo:          e.codigo,
			Nome:            e.nome,
			Categoria:       e.categoria,
			Preco:           decimal.RequireFromString(e.preco),
			Estoque:         e.estoque,
			EstoqueMinimo:   e.minimo,
			ControlaEstoque: !e.servico,
			Unidade:         "UN",
			Ativo:           true,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}
	if err := repo.ReplaceAll(ctx, produtos); err != nil {
		log.Fatalf("gravar produtos: %v", err)
	}
	fmt.Printf("catálogo de exemplo carregado com %d itens\n", len(produtos))
}
