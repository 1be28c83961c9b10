// Package notification fans out best-effort messages after the business
// transaction that produced them has committed.
package notification

import (
	"context"
	"errors"
	"time"

	"github.com/polyforma/qualitrack/internal/domain/directory"
	"github.com/polyforma/qualitrack/internal/domain/notification"
	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/goroutine"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

// Runner executes fn, normally on a new goroutine.
type Runner func(name string, fn func())

// AlertFlagger records that an alert email left the building.
type AlertFlagger interface {
	MarkEmailSent(ctx context.Context, id uint) error
}

type Dispatcher struct {
	notifier  notification.Notifier
	directory directory.Reader
	alerts    AlertFlagger
	timeout   time.Duration
	run       Runner
	logger    logger.Interface
}

func NewDispatcher(
	notifier notification.Notifier,
	directory directory.Reader,
	alerts AlertFlagger,
	timeout time.Duration,
	logger logger.Interface,
) *Dispatcher {
	d := &Dispatcher{
		notifier:  notifier,
		directory: directory,
		alerts:    alerts,
		timeout:   timeout,
		logger:    logger,
	}
	d.run = func(name string, fn func()) { goroutine.SafeGo(logger, name, fn) }
	return d
}

// WithRunner replaces the goroutine launcher. Tests pass a synchronous runner.
func (d *Dispatcher) WithRunner(run Runner) *Dispatcher {
	d.run = run
	return d
}

// Enabled reports whether a delivery channel is configured.
func (d *Dispatcher) Enabled() bool {
	return d != nil && d.notifier != nil
}

// AlertRaised notifies every active supervisor and administrator. The alert's
// email flag is set once at least one message was accepted by the channel.
// Returns false when nothing was queued.
func (d *Dispatcher) AlertRaised(summary notification.AlertSummary) bool {
	if !d.Enabled() {
		return false
	}

	alertID := summary.AlertID
	d.run("alert-notification", func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		users, err := d.directory.ListActiveByRoles(ctx, auth.Approvers...)
		if err != nil {
			d.logger.Warnw("failed to load alert recipients", "alert_id", alertID, "error", err)
			return
		}

		sent := 0
		for _, u := range users {
			if u.Email == "" {
				continue
			}
			if err := d.notifier.NotifyAlert(ctx, toRecipient(u), summary); err != nil {
				d.logger.Warnw("alert notification failed", "alert_id", alertID, "user_id", u.ID, "error", err)
				continue
			}
			sent++
		}

		if sent == 0 {
			d.logger.Warnw("alert notification not delivered to any recipient", "alert_id", alertID, "candidates", len(users))
			return
		}
		if err := d.alerts.MarkEmailSent(ctx, alertID); err != nil {
			d.logger.Warnw("failed to flag alert email as sent", "alert_id", alertID, "error", err)
			return
		}
		d.logger.Infow("alert notification sent", "alert_id", alertID, "recipients", sent)
	})
	return true
}

// CertificateApproved tells the requester their certificate can be downloaded.
func (d *Dispatcher) CertificateApproved(requesterID uint, summary notification.CertificateSummary) bool {
	if !d.Enabled() {
		return false
	}

	d.run("certificate-notification", func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		u, err := d.directory.GetUser(ctx, requesterID)
		if err != nil {
			if errors.Is(err, directory.ErrUserNotFound) {
				d.logger.Warnw("certificate requester not found", "certificate_id", summary.CertificateID, "user_id", requesterID)
				return
			}
			d.logger.Warnw("failed to load certificate requester", "certificate_id", summary.CertificateID, "error", err)
			return
		}
		if !u.Active || u.Email == "" {
			return
		}
		if err := d.notifier.NotifyCertificateReady(ctx, toRecipient(u), summary); err != nil {
			d.logger.Warnw("certificate notification failed", "certificate_id", summary.CertificateID, "error", err)
			return
		}
		d.logger.Infow("certificate notification sent", "certificate_id", summary.CertificateID, "user_id", u.ID)
	})
	return true
}

func toRecipient(u *directory.User) notification.Recipient {
	return notification.Recipient{UserID: u.ID, Name: u.Name, Email: u.Email}
}
