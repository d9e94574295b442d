package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"voyago/infras/otel"
	"voyago/infras/postgres"
	"voyago/internal/domains/travelpackage/model"
	gDto "voyago/shared/dto"
	gRepo "voyago/shared/repository"
)

type TravelPackage interface {
	Insert(ctx context.Context, model model.TravelPackage) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.TravelPackage, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.TravelPackage, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.TravelPackage, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.TravelPackage]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) TravelPackage {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.TravelPackage](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
