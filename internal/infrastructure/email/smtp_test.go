package email

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/polyforma/qualitrack/internal/domain/notification"
	"github.com/polyforma/qualitrack/internal/shared/locale"
	"github.com/polyforma/qualitrack/internal/shared/services/markdown"
)

type recordingSender struct {
	sent []*gomail.Message
	err  error
}

func (r *recordingSender) DialAndSend(m ...*gomail.Message) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, m...)
	return nil
}

func newNotifier(sender Sender) *SMTPNotifier {
	return NewSMTPNotifier(SMTPConfig{
		FromAddress: "calidad@planta.mx",
		FromName:    "Control de Calidad",
		BaseURL:     "https://qt.planta.mx/",
	}, markdown.NewRenderer(), locale.NewFormatter("es")).WithSender(sender)
}

func rendered(t *testing.T, m *gomail.Message) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestNotifyAlert(t *testing.T) {
	sender := &recordingSender{}
	n := newNotifier(sender)

	err := n.NotifyAlert(context.Background(),
		notification.Recipient{UserID: 2, Name: "Ana", Email: "ana@planta.mx"},
		notification.AlertSummary{
			AlertID:          7,
			ProductName:      "Tapa 28mm",
			LotNumber:        "L-2026-001",
			ProductionDate:   time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
			Threshold:        decimal.RequireFromString("5"),
			ActualValue:      decimal.RequireFromString("6"),
			QualityControlID: 3,
		})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	m := sender.sent[0]
	assert.Equal(t, []string{"Alerta de merma: Tapa 28mm lote L-2026-001 (6,00 %)"}, m.GetHeader("Subject"))
	raw := rendered(t, m)
	assert.Contains(t, raw, "ana@planta.mx")
	assert.Contains(t, raw, "text/html")
	assert.Contains(t, raw, "/api/v1/alerts/7")
}

func TestNotifyCertificateReady(t *testing.T) {
	sender := &recordingSender{}
	n := newNotifier(sender)

	err := n.NotifyCertificateReady(context.Background(),
		notification.Recipient{Name: "Luis", Email: "luis@planta.mx"},
		notification.CertificateSummary{CertificateID: 40, Code: "CERT-20260115140000-AB2C", ProductName: "Tapa", LotNumber: "L-1", ApprovedAt: time.Now()})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, []string{"Certificado CERT-20260115140000-AB2C aprobado"}, sender.sent[0].GetHeader("Subject"))
	assert.Contains(t, rendered(t, sender.sent[0]), "/api/v1/certificates/40/download")
}

func TestNotify_Failures(t *testing.T) {
	to := notification.Recipient{Name: "Ana", Email: "ana@planta.mx"}

	t.Run("missing address", func(t *testing.T) {
		err := newNotifier(&recordingSender{}).NotifyAlert(context.Background(), notification.Recipient{Name: "X"}, notification.AlertSummary{})
		assert.ErrorIs(t, err, ErrNoRecipientAddress)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		sender := &recordingSender{}
		err := newNotifier(sender).NotifyAlert(ctx, to, notification.AlertSummary{})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, sender.sent)
	})

	t.Run("smtp error", func(t *testing.T) {
		boom := errors.New("connection refused")
		err := newNotifier(&recordingSender{err: boom}).NotifyAlert(context.Background(), to, notification.AlertSummary{})
		assert.ErrorIs(t, err, boom)
	})
}
