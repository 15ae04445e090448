package service

import (
	"context"

	"github.com/jaksoftwares/ReceiptPro/internal/dto"
	"github.com/jaksoftwares/ReceiptPro/internal/mail"
	"github.com/jaksoftwares/ReceiptPro/internal/model"
	"github.com/jaksoftwares/ReceiptPro/internal/monitoring"
	"github.com/jaksoftwares/ReceiptPro/internal/repository"
	"github.com/jaksoftwares/ReceiptPro/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// EmailService queues a document email: it exports the PDF synchronously so a
// broken document fails the request, then hands delivery to the worker pool.
type EmailService interface {
	Send(ctx context.Context, docType model.DocType, id uuid.UUID, req dto.SendEmailRequest) (*dto.SendEmailResponse, error)
}

// EmailQueue is the enqueue port; *worker.Dispatcher satisfies it.
type EmailQueue interface {
	EnqueueEmail(ctx context.Context, payload interface{}) error
}

type emailService struct {
	receipts   ReceiptService
	invoices   InvoiceService
	exports    ExportService
	settings   repository.SettingsRepository
	dispatcher EmailQueue
}

func NewEmailService(
	receipts ReceiptService,
	invoices InvoiceService,
	exports ExportService,
	settings repository.SettingsRepository,
	dispatcher EmailQueue,
) EmailService {
	return &emailService{
		receipts:   receipts,
		invoices:   invoices,
		exports:    exports,
		settings:   settings,
		dispatcher: dispatcher,
	}
}

func (s *emailService) Send(ctx context.Context, docType model.DocType, id uuid.UUID, req dto.SendEmailRequest) (*dto.SendEmailResponse, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !settings.Email.Configured() {
		return nil, mail.ErrNotConfigured
	}

	doc, err := s.lookup(ctx, docType, id)
	if err != nil {
		return nil, err
	}

	toEmail := req.ToEmail
	if toEmail == "" {
		toEmail = doc.PartyEmail
	}
	if toEmail == "" {
		return nil, ErrNoRecipient
	}

	pdfPath, result, err := s.exports.ExportToFile(ctx, docType, id)
	if err != nil {
		return nil, err
	}

	job := worker.EmailJobPayload{
		ToName:  doc.PartyName,
		ToEmail: toEmail,
		Subject: mail.DefaultSubject(*doc),
		Body:    mail.DefaultBody(*doc, req.Message),
		PDFPath: pdfPath,
	}
	if err := s.dispatcher.EnqueueEmail(ctx, job); err != nil {
		return nil, err
	}

	monitoring.EmailsQueued.Inc()
	log.Info().Str("number", doc.Number).Str("to", toEmail).Msg("document email queued")
	return &dto.SendEmailResponse{Queued: true, ToEmail: toEmail, PDFFile: result.Filename}, nil
}

func (s *emailService) lookup(ctx context.Context, docType model.DocType, id uuid.UUID) (*model.Document, error) {
	switch docType {
	case model.DocTypeReceipt:
		rec, err := s.receipts.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		doc := rec.Document()
		return &doc, nil
	default:
		inv, err := s.invoices.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		doc := inv.Document()
		return &doc, nil
	}
}
