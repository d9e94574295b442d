package mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"voyago/infras/postgres"
)

type transactorImpl struct{}

// WithinTx implements postgres.Transactor. It invokes the unit of work with
// a nil tx; repository mocks never touch it.
func (transactorImpl) WithinTx(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func NewTransactor() postgres.Transactor {
	return transactorImpl{}
}
