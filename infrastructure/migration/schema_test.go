package migration

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingQueryer struct {
	executed []string
	failAt   int
}

func (q *recordingQueryer) Exec(_ context.Context, stmt string, _ ...interface{}) (sql.Result, error) {
	q.executed = append(q.executed, stmt)
	if q.failAt > 0 && len(q.executed) == q.failAt {
		return nil, errors.New("permission denied")
	}
	return nil, nil
}

func (q *recordingQueryer) Query(_ context.Context, _ string, _ ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("não utilizado")
}

func (q *recordingQueryer) QueryRow(_ context.Context, _ string, _ ...interface{}) *sql.Row {
	return nil
}

func (q *recordingQueryer) WithRetry(_ context.Context, fn func() error) error {
	return fn()
}

func TestApply(t *testing.T) {
	t.Run("Executa todos os passos em ordem", func(t *testing.T) {
		q := &recordingQueryer{}

		require.NoError(t, Apply(context.Background(), q))

		require.Len(t, q.executed, len(statements))
		assert.Contains(t, q.executed[0], "daily_metrics")
		assert.True(t, strings.HasPrefix(q.executed[len(q.executed)-1], "DELETE FROM admin_sessions"))
	})

	t.Run("Interrompe no primeiro erro", func(t *testing.T) {
		q := &recordingQueryer{failAt: 2}

		err := Apply(context.Background(), q)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "passo 2")
		assert.Len(t, q.executed, 2)
	})
}

func TestSchemaIsIdempotent(t *testing.T) {
	for _, stmt := range statements {
		upper := strings.ToUpper(stmt)
		if strings.HasPrefix(strings.TrimSpace(upper), "CREATE") {
			assert.Contains(t, upper, "IF NOT EXISTS", stmt)
		}
	}
}
