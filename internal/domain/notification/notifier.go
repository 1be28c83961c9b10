// Package notification describes the messages the quality engine sends and
// the channel that delivers them.
package notification

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Recipient struct {
	UserID uint
	Name   string
	Email  string
}

type AlertSummary struct {
	AlertID          uint
	ProductName      string
	LotNumber        string
	ProductionDate   time.Time
	Threshold        decimal.Decimal
	ActualValue      decimal.Decimal
	QualityControlID uint
	CreatedAt        time.Time
}

type CertificateSummary struct {
	CertificateID uint
	Code          string
	ProductName   string
	LotNumber     string
	ApprovedAt    time.Time
}

// Notifier delivers a message to one recipient. An error means the message
// was not handed to the channel.
type Notifier interface {
	NotifyAlert(ctx context.Context, to Recipient, summary AlertSummary) error
	NotifyCertificateReady(ctx context.Context, to Recipient, summary CertificateSummary) error
}
