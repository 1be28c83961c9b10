package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/polyforma/qualitrack/internal/domain/directory"
	"github.com/polyforma/qualitrack/internal/domain/notification"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

type mockNotifier struct {
	NotifyAlertFunc       func(ctx context.Context, to notification.Recipient, s notification.AlertSummary) error
	NotifyCertificateFunc func(ctx context.Context, to notification.Recipient, s notification.CertificateSummary) error
}

func (m *mockNotifier) NotifyAlert(ctx context.Context, to notification.Recipient, s notification.AlertSummary) error {
	if m.NotifyAlertFunc != nil {
		return m.NotifyAlertFunc(ctx, to, s)
	}
	return nil
}

func (m *mockNotifier) NotifyCertificateReady(ctx context.Context, to notification.Recipient, s notification.CertificateSummary) error {
	if m.NotifyCertificateFunc != nil {
		return m.NotifyCertificateFunc(ctx, to, s)
	}
	return nil
}

type mockDirectory struct {
	GetUserFunc           func(ctx context.Context, id uint) (*directory.User, error)
	ListActiveByRolesFunc func(ctx context.Context, roles ...string) ([]*directory.User, error)
}

func (m *mockDirectory) GetUser(ctx context.Context, id uint) (*directory.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, directory.ErrUserNotFound
}

func (m *mockDirectory) ListActiveByRoles(ctx context.Context, roles ...string) ([]*directory.User, error) {
	if m.ListActiveByRolesFunc != nil {
		return m.ListActiveByRolesFunc(ctx, roles...)
	}
	return nil, nil
}

type flagRecorder struct {
	ids []uint
	err error
}

func (f *flagRecorder) MarkEmailSent(_ context.Context, id uint) error {
	f.ids = append(f.ids, id)
	return f.err
}

func syncRunner(_ string, fn func()) { fn() }

func supervisors(context.Context, ...string) ([]*directory.User, error) {
	return []*directory.User{
		{ID: 1, Name: "Ana", Email: "ana@plant.test", Role: "supervisor", Active: true},
		{ID: 2, Name: "Luis", Email: "luis@plant.test", Role: "administrador", Active: true},
		{ID: 3, Name: "Sin correo", Role: "supervisor", Active: true},
	}, nil
}

func TestAlertRaised_FlagsAfterConfirmedSend(t *testing.T) {
	var roles []string
	var sentTo []string
	flags := &flagRecorder{}
	dir := &mockDirectory{ListActiveByRolesFunc: func(ctx context.Context, r ...string) ([]*directory.User, error) {
		roles = r
		return supervisors(ctx, r...)
	}}
	n := &mockNotifier{NotifyAlertFunc: func(_ context.Context, to notification.Recipient, s notification.AlertSummary) error {
		sentTo = append(sentTo, to.Email)
		if to.UserID == 2 {
			return errors.New("mailbox full")
		}
		return nil
	}}

	d := NewDispatcher(n, dir, flags, time.Second, logger.NewNopLogger()).WithRunner(syncRunner)
	queued := d.AlertRaised(notification.AlertSummary{AlertID: 77})

	assert.True(t, queued)
	assert.ElementsMatch(t, []string{"supervisor", "administrador"}, roles)
	assert.Equal(t, []string{"ana@plant.test", "luis@plant.test"}, sentTo)
	assert.Equal(t, []uint{77}, flags.ids)
}

func TestAlertRaised_NoFlagWhenEverySendFails(t *testing.T) {
	flags := &flagRecorder{}
	n := &mockNotifier{NotifyAlertFunc: func(context.Context, notification.Recipient, notification.AlertSummary) error {
		return errors.New("smtp timeout")
	}}

	d := NewDispatcher(n, &mockDirectory{ListActiveByRolesFunc: supervisors}, flags, time.Second, logger.NewNopLogger()).WithRunner(syncRunner)
	d.AlertRaised(notification.AlertSummary{AlertID: 77})

	assert.Empty(t, flags.ids)
}

func TestAlertRaised_DirectoryFailureIsSwallowed(t *testing.T) {
	flags := &flagRecorder{}
	dir := &mockDirectory{ListActiveByRolesFunc: func(context.Context, ...string) ([]*directory.User, error) {
		return nil, errors.New("db gone")
	}}

	d := NewDispatcher(&mockNotifier{}, dir, flags, time.Second, logger.NewNopLogger()).WithRunner(syncRunner)

	assert.NotPanics(t, func() { d.AlertRaised(notification.AlertSummary{AlertID: 1}) })
	assert.Empty(t, flags.ids)
}

func TestDispatcher_DisabledWithoutNotifier(t *testing.T) {
	ran := false
	d := NewDispatcher(nil, &mockDirectory{}, &flagRecorder{}, time.Second, logger.NewNopLogger()).
		WithRunner(func(string, func()) { ran = true })

	assert.False(t, d.AlertRaised(notification.AlertSummary{AlertID: 1}))
	assert.False(t, d.CertificateApproved(5, notification.CertificateSummary{}))
	assert.False(t, ran)
}

func TestCertificateApproved_NotifiesRequester(t *testing.T) {
	var got notification.Recipient
	dir := &mockDirectory{GetUserFunc: func(_ context.Context, id uint) (*directory.User, error) {
		return &directory.User{ID: id, Name: "Marta", Email: "marta@plant.test", Active: true}, nil
	}}
	n := &mockNotifier{NotifyCertificateFunc: func(_ context.Context, to notification.Recipient, s notification.CertificateSummary) error {
		got = to
		assert.Equal(t, "CERT-1", s.Code)
		return nil
	}}

	d := NewDispatcher(n, dir, &flagRecorder{}, time.Second, logger.NewNopLogger()).WithRunner(syncRunner)

	assert.True(t, d.CertificateApproved(5, notification.CertificateSummary{Code: "CERT-1"}))
	assert.Equal(t, "marta@plant.test", got.Email)
}

func TestCertificateApproved_SkipsInactiveRequester(t *testing.T) {
	called := false
	dir := &mockDirectory{GetUserFunc: func(_ context.Context, id uint) (*directory.User, error) {
		return &directory.User{ID: id, Email: "old@plant.test", Active: false}, nil
	}}
	n := &mockNotifier{NotifyCertificateFunc: func(context.Context, notification.Recipient, notification.CertificateSummary) error {
		called = true
		return nil
	}}

	NewDispatcher(n, dir, &flagRecorder{}, time.Second, logger.NewNopLogger()).WithRunner(syncRunner).
		CertificateApproved(5, notification.CertificateSummary{})

	assert.False(t, called)
}
