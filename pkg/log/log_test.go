package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestIsDevelopment(t *testing.T) {
	tests := []struct {
		env      string
		expected bool
	}{
		{env: "", expected: true},
		{env: "development", expected: true},
		{env: " DEV ", expected: true},
		{env: "production", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			SetEnvironment(tt.env)
			assert.Equal(t, tt.expected, IsDevelopment())
		})
	}

	SetEnvironment("")
}

func TestWithFields(t *testing.T) {
	base := &logger{entry: logrus.NewEntry(logrus.New())}
	fields := Fields{"method": "GET", "remote_addr": "10.0.0.1"}

	t.Run("Desenvolvimento descarta campos de rastreabilidade", func(t *testing.T) {
		SetEnvironment("development")
		defer SetEnvironment("")

		entry := base.WithFields(fields).(*logger).entry

		assert.Equal(t, "GET", entry.Data["method"])
		assert.NotContains(t, entry.Data, "remote_addr")
	})

	t.Run("Produção mantém todos os campos", func(t *testing.T) {
		SetEnvironment("production")
		defer SetEnvironment("")

		entry := base.WithFields(fields).(*logger).entry

		assert.Len(t, entry.Data, 2)
	})
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}
