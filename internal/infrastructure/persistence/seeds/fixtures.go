// Package seeds loads reference data (products and directory users) that
// other systems own in production, so that a fresh install is usable.
package seeds

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/polyforma/qualitrack/internal/infrastructure/persistence/models"
	"github.com/polyforma/qualitrack/internal/shared/auth"
)

type ProductFixture struct {
	Code           string `yaml:"code"`
	Name           string `yaml:"name"`
	AlertThreshold string `yaml:"alert_threshold"`
	Inactive       bool   `yaml:"inactive"`
}

type UserFixture struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Role     string `yaml:"role"`
	Inactive bool   `yaml:"inactive"`
}

type Fixtures struct {
	Products []ProductFixture `yaml:"products"`
	Users    []UserFixture    `yaml:"users"`
}

type ProductUpserter interface {
	Upsert(ctx context.Context, model *models.ProductModel) error
}

type UserUpserter interface {
	Upsert(ctx context.Context, model *models.UserModel) error
}

var knownRoles = []string{auth.RoleSupervisor, auth.RoleAdministrator, auth.RoleQualityAssistant, auth.RoleManagement}

// Parse decodes and validates a fixture document. Unknown keys are rejected.
func Parse(r io.Reader) (*Fixtures, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixtures
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}

	for i, p := range f.Products {
		if strings.TrimSpace(p.Code) == "" || strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("products[%d]: code and name are required", i)
		}
		if _, err := p.threshold(); err != nil {
			return nil, fmt.Errorf("products[%d]: %w", i, err)
		}
	}
	for i, u := range f.Users {
		if strings.TrimSpace(u.Email) == "" || strings.TrimSpace(u.Name) == "" {
			return nil, fmt.Errorf("users[%d]: name and email are required", i)
		}
		if !auth.HasAnyRole(u.Role, knownRoles...) {
			return nil, fmt.Errorf("users[%d]: unknown role %q", i, u.Role)
		}
	}
	return &f, nil
}

func (p ProductFixture) threshold() (*decimal.Decimal, error) {
	if p.AlertThreshold == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(p.AlertThreshold)
	if err != nil {
		return nil, fmt.Errorf("invalid alert_threshold %q", p.AlertThreshold)
	}
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("alert_threshold %s out of range 0..100", d.String())
	}
	return &d, nil
}

type Result struct {
	Products int
	Users    int
}

// Apply upserts every fixture. Products are keyed by code and users by email,
// so running it twice is harmless.
func Apply(ctx context.Context, f *Fixtures, products ProductUpserter, users UserUpserter) (Result, error) {
	var res Result
	for _, p := range f.Products {
		threshold, _ := p.threshold()
		model := &models.ProductModel{
			Code:           strings.TrimSpace(p.Code),
			Name:           strings.TrimSpace(p.Name),
			AlertThreshold: threshold,
			Active:         !p.Inactive,
		}
		if err := products.Upsert(ctx, model); err != nil {
			return res, fmt.Errorf("product %s: %w", p.Code, err)
		}
		res.Products++
	}
	for _, u := range f.Users {
		model := &models.UserModel{
			Name:   strings.TrimSpace(u.Name),
			Email:  strings.ToLower(strings.TrimSpace(u.Email)),
			Role:   u.Role,
			Active: !u.Inactive,
		}
		if err := users.Upsert(ctx, model); err != nil {
			return res, fmt.Errorf("user %s: %w", u.Email, err)
		}
		res.Users++
	}
	return res, nil
}
