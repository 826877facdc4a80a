package repository

import "errors"

var (
	ErrDuplicateSessionToken = errors.New("token de sessão já existe")
	ErrUnknownIndustry       = errors.New("indústria inexistente")
)
