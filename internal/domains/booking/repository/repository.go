package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"voyago/infras/otel"
	"voyago/infras/postgres"
	"voyago/internal/domains/booking/model"
	gDto "voyago/shared/dto"
	gRepo "voyago/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error

	CountOccupiedRooms(ctx context.Context, packageID string, countUnpaid bool) (int, error)
	CountOccupiedRoomsTx(ctx context.Context, tx *sqlx.Tx, packageID string, countUnpaid bool) (int, error)
	CountUpcomingPaidTx(ctx context.Context, tx *sqlx.Tx, userID string, now time.Time) (int, error)
	GetUpcomingForReminder(ctx context.Context, from, until time.Time) ([]model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
