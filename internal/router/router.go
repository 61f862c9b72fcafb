package router

import (
	"sync"
	"time"

	"github.com/carlospiquet2023/agendapronegocios/internal/config"
	"github.com/carlospiquet2023/agendapronegocios/internal/handler"
	"github.com/carlospiquet2023/agendapronegocios/internal/middleware"
	"github.com/carlospiquet2023/agendapronegocios/internal/repository"
	"github.com/carlospiquet2023/agendapronegocios/internal/service"
	"github.com/carlospiquet2023/agendapronegocios/internal/store"
	"github.com/carlospiquet2023/agendapronegocios/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← Store ← Redis
func New(cfg *config.Config, rdb *redis.Client, st store.Store, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	produtoRepo := repository.NewProdutoRepository(st)
	caixaRepo := repository.NewCaixaRepository(st)
	historicoRepo := repository.NewHistoricoRepository(st)
	clienteRepo := repository.NewClienteRepository(st)
	categoriaRepo := repository.NewCategoriaRepository(st)
	movimentoRepo := repository.NewMovimentoEstoqueRepository(st)

	// ── Services ─────────────────────────────────────────────────────────────
	// One lock for every read-modify-write over the session and catalog
	// arrays: sangrias, reforços, stock writes and finalizes all serialize
	// through it so no writer overwrites another's committed state.
	sessao := &sync.Mutex{}

	authSvc := service.NewAuthService(cfg)
	caixaSvc := service.NewCaixaService(caixaRepo, cfg.OperadorNome, sessao)
	produtoSvc := service.NewProdutoService(produtoRepo, movimentoRepo, sessao)
	vendaSvc := service.NewVendaService(st, caixaSvc, caixaRepo, produtoRepo, historicoRepo, dispatcher, sessao)
	relatorioSvc := service.NewRelatorioService(caixaRepo, historicoRepo, produtoRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	categoriaSvc := service.NewCategoriaService(categoriaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	caixaH := handler.NewCaixaHandler(caixaSvc)
	produtosH := handler.NewProdutoHandler(produtoSvc)
	vendasH := handler.NewVendaHandler(vendaSvc)
	relatoriosH := handler.NewRelatorioHandler(relatorioSvc)
	clientesH := handler.NewClienteHandler(clienteSvc)
	categoriasH := handler.NewCategoriaHandler(categoriaSvc)
	exportH := handler.NewExportHandler(historicoRepo, relatorioSvc, cfg)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(rdb))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		caixa := v1.Group("/caixa")
		{
			caixa.POST("/abrir", caixaH.Abrir)
			caixa.POST("/fechar", caixaH.Fechar)
			caixa.GET("/atual", caixaH.Atual)
			caixa.POST("/sangria", caixaH.Sangria)
			caixa.POST("/reforco", caixaH.Reforco)
			caixa.GET("/historico", caixaH.Historico)
		}

		vendas := v1.Group("/vendas")
		{
			vendas.POST("", vendasH.Registrar)
			vendas.GET("", vendasH.Listar)
			vendas.GET("/:id", vendasH.Obter)
			vendas.POST("/:id/cancelar", vendasH.Cancelar)
			vendas.GET("/:id/comprovante", exportH.Comprovante)
		}

		produtos := v1.Group("/produtos")
		{
			produtos.POST("", produtosH.Criar)
			produtos.GET("", produtosH.Listar)
			produtos.GET("/buscar", produtosH.Buscar)
			produtos.GET("/barras/:codigo", produtosH.PorCodigoBarras)
			produtos.POST("/importar", produtosH.ImportarCSV)
			produtos.GET("/:id", produtosH.Obter)
			produtos.PUT("/:id", produtosH.Atualizar)
			produtos.DELETE("/:id", produtosH.Desativar)
			produtos.POST("/:id/reativar", produtosH.Reativar)
			produtos.POST("/:id/estoque", produtosH.AjustarEstoque)
			produtos.GET("/:id/movimentos", produtosH.Movimentos)
		}

		clientes := v1.Group("/clientes")
		{
			clientes.POST("", clientesH.Criar)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.Obter)
			clientes.PUT("/:id", clientesH.Atualizar)
			clientes.DELETE("/:id", clientesH.Desativar)
		}

		categorias := v1.Group("/categorias")
		{
			categorias.GET("", categoriasH.Listar)
			categorias.POST("", categoriasH.Criar)
			categorias.PUT("/:id", categoriasH.Atualizar)
			categorias.DELETE("/:id", categoriasH.Desativar)
		}

		relatorios := v1.Group("/relatorios")
		{
			relatorios.GET("/balanco/dia", relatoriosH.BalancoDia)
			relatorios.GET("/balanco/semana", relatoriosH.BalancoSemana)
			relatorios.GET("/balanco/mes", relatoriosH.BalancoMes)
			relatorios.GET("/mais-vendidos", relatoriosH.MaisVendidos)
			relatorios.GET("/estoque-baixo", relatoriosH.EstoqueBaixo)
		}

		exportar := v1.Group("/exportar")
		{
			exportar.GET("/balanco", exportH.Balanco)
			exportar.GET("/vendas", exportH.VendasCSV)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
