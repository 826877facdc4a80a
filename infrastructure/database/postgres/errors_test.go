package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil não é transitório", err: nil, want: false},
		{name: "conexão ruim do driver", err: driver.ErrBadConn, want: true},
		{name: "desligamento administrativo", err: &pq.Error{Code: "57P01"}, want: true},
		{name: "classe de erro de conexão", err: fmt.Errorf("query: %w", &pq.Error{Code: "08006"}), want: true},
		{name: "violação de unicidade", err: &pq.Error{Code: "23505"}, want: false},
		{name: "contexto cancelado", err: context.Canceled, want: false},
		{name: "mensagem de conexão encerrada", err: errors.New("pq: connection terminated unexpectedly"), want: true},
		{name: "erro de sintaxe", err: errors.New("syntax error at or near"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransient(tt.err))
		})
	}
}

func TestConnection_WithRetry(t *testing.T) {
	t.Run("Repete falhas transitórias até o limite", func(t *testing.T) {
		conn := &Connection{maxRetries: 3, retryDelay: time.Millisecond}
		calls := 0

		err := conn.WithRetry(context.Background(), func() error {
			calls++
			return driver.ErrBadConn
		})

		assert.ErrorIs(t, err, driver.ErrBadConn)
		assert.Equal(t, 3, calls)
	})

	t.Run("Não repete erros permanentes", func(t *testing.T) {
		conn := &Connection{maxRetries: 3, retryDelay: time.Millisecond}
		calls := 0

		err := conn.WithRetry(context.Background(), func() error {
			calls++
			return &pq.Error{Code: "23505"}
		})

		assert.True(t, IsUniqueViolation(err))
		assert.Equal(t, 1, calls)
	})

	t.Run("Retorna sucesso após falha transitória", func(t *testing.T) {
		conn := &Connection{maxRetries: 3, retryDelay: time.Millisecond}
		calls := 0

		err := conn.WithRetry(context.Background(), func() error {
			calls++
			if calls == 1 {
				return &pq.Error{Code: "57P01"}
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})
}
