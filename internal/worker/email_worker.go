package worker

// email_worker.go
// Processes email jobs from QueueEmail: delivers exported PDF documents to
// customer inboxes via SMTP. Delivery settings are read at process time, so
// jobs enqueued before a settings change go out with the new credentials.

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jaksoftwares/ReceiptPro/internal/mail"
	"github.com/jaksoftwares/ReceiptPro/internal/monitoring"
	"github.com/jaksoftwares/ReceiptPro/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// EmailJobPayload is the job envelope sent to QueueEmail.
type EmailJobPayload struct {
	ToName  string `json:"to_name"`
	ToEmail string `json:"to_email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	PDFPath string `json:"pdf_path"`
}

// EmailWorker processes email jobs from QueueEmail.
type EmailWorker struct {
	settings repository.SettingsRepository
	sender   mail.Sender
	rdb      *redis.Client
}

var _ Handler = (*EmailWorker)(nil)

func NewEmailWorker(settings repository.SettingsRepository, sender mail.Sender, rdb *redis.Client) *EmailWorker {
	return &EmailWorker{settings: settings, sender: sender, rdb: rdb}
}

// Process sends one email with the exported PDF as attachment. A failed send
// goes straight to the DLQ — there is no automatic retry.
func (w *EmailWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("email_worker: empty to_email — skipping")
		return
	}

	settings, err := w.settings.Get(ctx)
	if err != nil {
		log.Error().Err(err).Msg("email_worker: failed to load settings")
		SendToDLQ(ctx, w.rdb, QueueEmail, "email", raw, "settings unavailable: "+err.Error())
		return
	}

	cfg := mail.ConfigFromSettings(settings.Email)
	msg := mail.Message{
		ToName:         payload.ToName,
		ToEmail:        payload.ToEmail,
		Subject:        payload.Subject,
		Body:           payload.Body,
		AttachmentPath: payload.PDFPath,
	}

	if err := w.sender.Send(cfg, msg); err != nil {
		if errors.Is(err, mail.ErrNotConfigured) {
			log.Warn().Str("to", payload.ToEmail).Msg("email_worker: SMTP not configured")
		} else {
			log.Error().Err(err).Str("to", payload.ToEmail).Msg("email_worker: failed to send email")
		}
		SendToDLQ(ctx, w.rdb, QueueEmail, "email", raw, err.Error())
		monitoring.EmailsFailed.Inc()
		return
	}
	log.Info().Str("to", payload.ToEmail).Msg("email_worker: document sent successfully")
}
