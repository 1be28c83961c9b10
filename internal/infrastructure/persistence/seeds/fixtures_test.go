package seeds

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyforma/qualitrack/internal/infrastructure/persistence/models"
)

const sample = `
products:
  - code: TAP-28
    name: Tapa rosca 28mm
    alert_threshold: "3.50"
  - code: GAR-5L
    name: Garrafa 5L
users:
  - name: Ana Ruiz
    email: Ana.Ruiz@Polyforma.mx
    role: supervisor
  - name: Luis Pena
    email: luis@polyforma.mx
    role: asistente_calidad
    inactive: true
`

type recorder struct {
	products []*models.ProductModel
	users    []*models.UserModel
	err      error
}

type productSink struct{ *recorder }

func (s productSink) Upsert(_ context.Context, m *models.ProductModel) error {
	s.products = append(s.products, m)
	return s.err
}

type userSink struct{ *recorder }

func (s userSink) Upsert(_ context.Context, m *models.UserModel) error {
	s.users = append(s.users, m)
	return s.err
}

func TestParseAndApply(t *testing.T) {
	f, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	rec := &recorder{}
	res, err := Apply(context.Background(), f, productSink{rec}, userSink{rec})
	require.NoError(t, err)

	assert.Equal(t, Result{Products: 2, Users: 2}, res)
	require.Len(t, rec.products, 2)
	require.NotNil(t, rec.products[0].AlertThreshold)
	assert.Equal(t, "3.5", rec.products[0].AlertThreshold.String())
	assert.Nil(t, rec.products[1].AlertThreshold)
	assert.True(t, rec.products[1].Active)

	require.Len(t, rec.users, 2)
	assert.Equal(t, "ana.ruiz@polyforma.mx", rec.users[0].Email)
	assert.False(t, rec.users[1].Active)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"unknown role", "users:\n  - {name: X, email: x@y.z, role: operador}\n", "unknown role"},
		{"bad threshold", "products:\n  - {code: A, name: B, alert_threshold: abc}\n", "invalid alert_threshold"},
		{"threshold above 100", "products:\n  - {code: A, name: B, alert_threshold: \"150\"}\n", "out of range"},
		{"missing code", "products:\n  - {name: B}\n", "code and name are required"},
		{"unknown key", "widgets: []\n", "failed to decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestApply_StopsOnError(t *testing.T) {
	f, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	rec := &recorder{err: errors.New("db down")}
	res, err := Apply(context.Background(), f, productSink{rec}, userSink{rec})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "TAP-28")
	assert.Equal(t, 0, res.Products)
}

func TestParse_EmptyDocument(t *testing.T) {
	f, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Products)
	assert.Empty(t, f.Users)
}
