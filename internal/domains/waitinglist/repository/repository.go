package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"voyago/infras/otel"
	"voyago/infras/postgres"
	"voyago/internal/domains/waitinglist/model"
	gDto "voyago/shared/dto"
	gRepo "voyago/shared/repository"
)

type WaitingList interface {
	Insert(ctx context.Context, model model.WaitingListEntry) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.WaitingListEntry) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.WaitingListEntry, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.WaitingListEntry, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.WaitingListEntry, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error

	LiveHolderTx(ctx context.Context, tx *sqlx.Tx, packageID string, now time.Time) (model.WaitingListEntry, error)
	NextEligibleTx(ctx context.Context, tx *sqlx.Tx, packageID string, now time.Time) (model.WaitingListEntry, error)
	OldestExpiredTx(ctx context.Context, tx *sqlx.Tx, packageID string, now time.Time) (model.WaitingListEntry, error)
	MaxPositionTx(ctx context.Context, tx *sqlx.Tx, packageID string) (int, error)
	CompactAfterTx(ctx context.Context, tx *sqlx.Tx, packageID string, position int) error
	PackagesWithExpired(ctx context.Context, now time.Time) ([]string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.WaitingListEntry]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) WaitingList {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.WaitingListEntry](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
