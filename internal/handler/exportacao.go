package handler

import (
	"fmt"
	"net/http"

	"github.com/carlospiquet2023/agendapronegocios/internal/apierror"
	"github.com/carlospiquet2023/agendapronegocios/internal/config"
	"github.com/carlospiquet2023/agendapronegocios/internal/export"
	"github.com/carlospiquet2023/agendapronegocios/internal/infra"
	"github.com/carlospiquet2023/agendapronegocios/internal/repository"
	"github.com/carlospiquet2023/agendapronegocios/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExportHandler serves plain-text, PDF and CSV downloads of receipts and reports.
type ExportHandler struct {
	historicoRepo  repository.HistoricoRepository
	relatorios     service.RelatorioService
	negocio        export.NegocioInfo
	pdfStoragePath string
}

func NewExportHandler(historicoRepo repository.HistoricoRepository, relatorios service.RelatorioService, cfg *config.Config) *ExportHandler {
	return &ExportHandler{
		historicoRepo:  historicoRepo,
		relatorios:     relatorios,
		pdfStoragePath: cfg.PDFStoragePath,
		negocio: export.NegocioInfo{
			Nome:     cfg.NomeNegocio,
			Endereco: cfg.Endereco,
			Telefone: cfg.Telefone,
		},
	}
}

// Comprovante godoc
// @Summary Baixa o comprovante de uma venda em texto ou PDF
// @Tags exportar
// @Produce plain
// @Security BearerAuth
// @Param id path string true "ID da venda"
// @Param formato query string false "txt | pdf (padrão txt)"
// @Success 200 {string} string
// @Failure 404 {object} apierror.APIError
// @Router /v1/vendas/{id}/comprovante [get]
func (h *ExportHandler) Comprovante(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	venda, err := h.historicoRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		respondErro(c, err)
		return
	}

	if c.DefaultQuery("formato", "txt") == "pdf" {
		path, err := infra.GenerateComprovantePDF(venda, h.negocio.Nome, h.pdfStoragePath)
		if err != nil {
			respondErro(c, err)
			return
		}
		c.FileAttachment(path, fmt.Sprintf("comprovante_%04d.pdf", venda.Numero))
		return
	}

	texto := export.Comprovante(venda, h.negocio)
	nome := fmt.Sprintf("comprovante_%04d.txt", venda.Numero)
	c.Header("Content-Disposition", "attachment; filename="+nome)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(texto))
}

// Balanco godoc
// @Summary Baixa o relatório de balanço do dia em texto
// @Tags exportar
// @Produce plain
// @Security BearerAuth
// @Param data query string false "Dia (YYYY-MM-DD, padrão hoje)"
// @Success 200 {string} string
// @Router /v1/exportar/balanco [get]
func (h *ExportHandler) Balanco(c *gin.Context) {
	dia, ok := dataQuery(c)
	if !ok {
		return
	}
	bal, err := h.relatorios.BalancoDia(c.Request.Context(), dia)
	if err != nil {
		respondErro(c, err)
		return
	}
	texto := export.RelatorioBalancoDia(bal, h.negocio)
	nome := "balanco_" + bal.Data + ".txt"
	c.Header("Content-Disposition", "attachment; filename="+nome)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(texto))
}

// VendasCSV godoc
// @Summary Baixa o extrato de vendas do período em CSV
// @Tags exportar
// @Produce plain
// @Security BearerAuth
// @Param tipo query string false "dia | semana | mes (padrão dia)"
// @Param data query string false "Dia de referência (YYYY-MM-DD, padrão hoje)"
// @Success 200 {string} string
// @Router /v1/exportar/vendas [get]
func (h *ExportHandler) VendasCSV(c *gin.Context) {
	ref, ok := dataQuery(c)
	if !ok {
		return
	}
	tipo := c.DefaultQuery("tipo", "dia")

	vendas, err := h.historicoRepo.ListAll(c.Request.Context())
	if err != nil {
		respondErro(c, err)
		return
	}
	data, err := export.VendasCSV(export.FiltrarPeriodo(vendas, tipo, ref))
	if err != nil {
		respondErro(c, err)
		return
	}
	nome := fmt.Sprintf("vendas_%s_%s.csv", tipo, ref.Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+nome)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
