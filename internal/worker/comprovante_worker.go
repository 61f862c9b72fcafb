package worker

// comprovante_worker.go
// Processes receipt jobs from QueueComprovante: renders the PDF receipt for a
// finalized sale and, when the sale has a customer with an email, chains an
// email job with the PDF attached.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/carlospiquet2023/agendapronegocios/internal/infra"
	"github.com/carlospiquet2023/agendapronegocios/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ComprovantePayload is the job envelope sent to QueueComprovante.
type ComprovantePayload struct {
	VendaID string `json:"venda_id"`
}

type ComprovanteWorker struct {
	historicoRepo  repository.HistoricoRepository
	clienteRepo    repository.ClienteRepository
	dispatcher     *Dispatcher
	pdfStoragePath string
	nomeNegocio    string
}

func NewComprovanteWorker(
	historicoRepo repository.HistoricoRepository,
	clienteRepo repository.ClienteRepository,
	dispatcher *Dispatcher,
	pdfStoragePath string,
	nomeNegocio string,
) *ComprovanteWorker {
	return &ComprovanteWorker{
		historicoRepo:  historicoRepo,
		clienteRepo:    clienteRepo,
		dispatcher:     dispatcher,
		pdfStoragePath: pdfStoragePath,
		nomeNegocio:    nomeNegocio,
	}
}

func (w *ComprovanteWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ComprovantePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("comprovante_worker: payload inválido: %w", err)
	}
	vendaID, err := uuid.Parse(payload.VendaID)
	if err != nil {
		return fmt.Errorf("comprovante_worker: venda_id inválido: %w", err)
	}

	venda, err := w.historicoRepo.FindByID(ctx, vendaID)
	if err != nil {
		return fmt.Errorf("comprovante_worker: venda %s: %w", payload.VendaID, err)
	}

	pdfPath, err := infra.GenerateComprovantePDF(venda, w.nomeNegocio, w.pdfStoragePath)
	if err != nil {
		return fmt.Errorf("comprovante_worker: gerar PDF: %w", err)
	}
	log.Info().Str("pdf", pdfPath).Str("venda_id", payload.VendaID).Msg("comprovante_worker: PDF gerado")

	if venda.ClienteID == nil {
		return nil
	}
	cliente, err := w.clienteRepo.FindByID(ctx, *venda.ClienteID)
	if err != nil || cliente.Email == nil || *cliente.Email == "" {
		return nil
	}

	emailJob := EmailJobPayload{
		ToEmail: *cliente.Email,
		Subject: fmt.Sprintf("Comprovante de compra — Venda #%04d", venda.Numero),
		Body:    fmt.Sprintf("Olá %s,\n\nSegue em anexo o comprovante da sua compra.\nTotal: R$ %s\n\nObrigado pela preferência!", cliente.Nome, venda.Total.StringFixed(2)),
		PDFPath: pdfPath,
	}
	if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
		log.Warn().Err(err).Str("email", *cliente.Email).Msg("comprovante_worker: falha ao enfileirar email")
		return nil
	}
	log.Info().Str("email", *cliente.Email).Msg("comprovante_worker: job de email enfileirado")
	return nil
}
