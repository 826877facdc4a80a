package insighting

import "github.com/pkg/errors"

var (
	ErrInvalidDate      = errors.New("data inválida, use o formato YYYY-MM-DD")
	ErrInvalidRange     = errors.New("a data inicial deve ser anterior ou igual à data final")
	ErrInvalidLeadCount = errors.New("leadCount deve ser um inteiro não negativo")
)
