package worker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jaksoftwares/ReceiptPro/internal/mail"
	"github.com/jaksoftwares/ReceiptPro/internal/model"
	"github.com/jaksoftwares/ReceiptPro/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSettings struct{ settings model.Settings }

var _ repository.SettingsRepository = (*stubSettings)(nil)

func (s *stubSettings) Get(context.Context) (model.Settings, error) { return s.settings, nil }
func (s *stubSettings) Save(_ context.Context, v model.Settings) error {
	s.settings = v
	return nil
}

type stubSender struct {
	cfg  mail.Config
	msgs []mail.Message
}

var _ mail.Sender = (*stubSender)(nil)

func (s *stubSender) Send(cfg mail.Config, msg mail.Message) error {
	s.cfg = cfg
	s.msgs = append(s.msgs, msg)
	return nil
}

func configuredSettings() model.Settings {
	s := model.DefaultSettings()
	s.Email = model.EmailSettings{
		SMTPHost:     "smtp.acme.test",
		SMTPPort:     2525,
		SMTPUsername: "mailer@acme.test",
		SMTPPassword: "hunter2",
	}
	return s
}

func TestEmailWorkerDeliversWithStoredSettings(t *testing.T) {
	sender := &stubSender{}
	w := NewEmailWorker(&stubSettings{settings: configuredSettings()}, sender, nil)

	payload, err := json.Marshal(EmailJobPayload{
		ToName:  "Jordan Diaz",
		ToEmail: "jordan@example.com",
		Subject: "Receipt RCP-20240115-001 from Acme Traders",
		Body:    "Dear Jordan,",
		PDFPath: "/tmp/receipt.pdf",
	})
	require.NoError(t, err)

	w.Process(context.Background(), payload)

	require.Len(t, sender.msgs, 1)
	assert.Equal(t, "smtp.acme.test", sender.cfg.Host)
	assert.Equal(t, 2525, sender.cfg.Port)
	assert.Equal(t, "jordan@example.com", sender.msgs[0].ToEmail)
	assert.Equal(t, "/tmp/receipt.pdf", sender.msgs[0].AttachmentPath)
}

func TestEmailWorkerSkipsEmptyRecipient(t *testing.T) {
	sender := &stubSender{}
	w := NewEmailWorker(&stubSettings{settings: configuredSettings()}, sender, nil)

	payload, _ := json.Marshal(EmailJobPayload{Subject: "no recipient"})
	w.Process(context.Background(), payload)

	assert.Empty(t, sender.msgs)
}

func TestEmailWorkerIgnoresMalformedPayload(t *testing.T) {
	sender := &stubSender{}
	w := NewEmailWorker(&stubSettings{settings: configuredSettings()}, sender, nil)

	w.Process(context.Background(), json.RawMessage(`{"to_email":`))

	assert.Empty(t, sender.msgs)
}
