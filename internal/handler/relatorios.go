package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/carlospiquet2023/agendapronegocios/internal/apierror"
	"github.com/carlospiquet2023/agendapronegocios/internal/service"

	"github.com/gin-gonic/gin"
)

type RelatorioHandler struct{ svc service.RelatorioService }

func NewRelatorioHandler(svc service.RelatorioService) *RelatorioHandler {
	return &RelatorioHandler{svc: svc}
}

// dataQuery parses the optional ?data=YYYY-MM-DD parameter, defaulting to today.
func dataQuery(c *gin.Context) (time.Time, bool) {
	raw := c.Query("data")
	if raw == "" {
		return time.Now(), true
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Data inválida, use YYYY-MM-DD"))
		return time.Time{}, false
	}
	return d, true
}

// BalancoDia godoc
// @Summary Balanço de vendas de um dia
// @Tags relatorios
// @Produce json
// @Security BearerAuth
// @Param data query string false "Dia (YYYY-MM-DD, padrão hoje)"
// @Success 200 {object} dto.BalancoDia
// @Router /v1/relatorios/balanco/dia [get]
func (h *RelatorioHandler) BalancoDia(c *gin.Context) {
	dia, ok := dataQuery(c)
	if !ok {
		return
	}
	resp, err := h.svc.BalancoDia(c.Request.Context(), dia)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BalancoSemana godoc
// @Summary Balanço da semana (domingo a sábado) que contém o dia informado
// @Tags relatorios
// @Produce json
// @Security BearerAuth
// @Param data query string false "Dia de referência (YYYY-MM-DD, padrão hoje)"
// @Success 200 {object} dto.BalancoSemana
// @Router /v1/relatorios/balanco/semana [get]
func (h *RelatorioHandler) BalancoSemana(c *gin.Context) {
	dia, ok := dataQuery(c)
	if !ok {
		return
	}
	resp, err := h.svc.BalancoSemana(c.Request.Context(), dia)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BalancoMes godoc
// @Summary Balanço do mês
// @Tags relatorios
// @Produce json
// @Security BearerAuth
// @Param ano query int false "Ano (padrão atual)"
// @Param mes query int false "Mês 1-12 (padrão atual)"
// @Success 200 {object} dto.BalancoMes
// @Router /v1/relatorios/balanco/mes [get]
func (h *RelatorioHandler) BalancoMes(c *gin.Context) {
	now := time.Now()
	ano, _ := strconv.Atoi(c.DefaultQuery("ano", strconv.Itoa(now.Year())))
	mes, _ := strconv.Atoi(c.DefaultQuery("mes", strconv.Itoa(int(now.Month()))))
	if mes < 1 || mes > 12 {
		c.JSON(http.StatusBadRequest, apierror.New("Mês inválido"))
		return
	}
	resp, err := h.svc.BalancoMes(c.Request.Context(), ano, time.Month(mes))
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MaisVendidos godoc
// @Summary Ranking de produtos por quantidade vendida
// @Tags relatorios
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Tamanho do ranking (padrão 10)"
// @Success 200 {array} dto.ProdutoMaisVendido
// @Router /v1/relatorios/mais-vendidos [get]
func (h *RelatorioHandler) MaisVendidos(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	resp, err := h.svc.MaisVendidos(c.Request.Context(), limit)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EstoqueBaixo godoc
// @Summary Produtos ativos com estoque igual ou abaixo do mínimo
// @Tags relatorios
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ProdutoResponse
// @Router /v1/relatorios/estoque-baixo [get]
func (h *RelatorioHandler) EstoqueBaixo(c *gin.Context) {
	resp, err := h.svc.EstoqueBaixo(c.Request.Context())
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
