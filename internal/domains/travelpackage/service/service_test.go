package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"voyago/config"
	"voyago/infras/otel/mocks"
	s3Mocks "voyago/infras/s3/mocks"
	ledgerMocks "voyago/internal/domains/inventory/mocks"
	pkgMocks "voyago/internal/domains/travelpackage/mocks"
	"voyago/internal/domains/travelpackage/model"
	"voyago/internal/domains/travelpackage/model/dto"
	"voyago/internal/domains/travelpackage/service"
	svcMocks "voyago/internal/domains/travelpackage/service/mocks"
	"voyago/shared/cache"
	cacheMocks "voyago/shared/cache/mocks"
	"voyago/shared/constant"
	gDto "voyago/shared/dto"
)

const testPackageID = "2d3d1f9e-4a8b-4f0e-9c6d-1e2f3a4b5c6d"

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type packageServiceMocks struct {
	repo     *pkgMocks.MockTravelPackage
	ledger   *ledgerMocks.MockLedger
	listener *svcMocks.MockCapacityListener
	cache    *cacheMocks.MockRedisCache
	s3       *s3Mocks.MockS3
}

func newPackageService(ctrl *gomock.Controller) (service.TravelPackage, packageServiceMocks) {
	m := packageServiceMocks{
		repo:     pkgMocks.NewMockTravelPackage(ctrl),
		ledger:   ledgerMocks.NewMockLedger(ctrl),
		listener: svcMocks.NewMockCapacityListener(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		s3:       s3Mocks.NewMockS3(ctrl),
	}

	// cache invalidation runs on detached goroutines
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.ledger, m.listener, cfg, m.cache, mocks.NewOtel(), m.s3)

	return svc, m
}

func storedPackage() model.TravelPackage {
	return model.TravelPackage{
		ID:           testPackageID,
		Destination:  "Kyoto",
		Country:      "Japan",
		StartDate:    testNow.AddDate(0, 1, 0),
		EndDate:      testNow.AddDate(0, 1, 7),
		Price:        1500,
		TotalRoomCap: 10,
		PackageType:  "group",
		Visible:      true,
	}
}

func intPtr(i int) *int {
	return &i
}

func TestTravelPackageService_Create(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")

	req := dto.CreateTravelPackageRequest{
		Destination:  "Kyoto",
		Country:      "Japan",
		StartDate:    testNow.AddDate(0, 1, 0),
		EndDate:      testNow.AddDate(0, 1, 7),
		Price:        1500,
		TotalRoomCap: 10,
		PackageType:  "group",
	}

	t.Run("creates a package without an image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newPackageService(ctrl)

		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mod model.TravelPackage) error {
				assert.Equal(t, "Kyoto", mod.Destination)
				assert.Equal(t, 10, mod.TotalRoomCap)
				assert.True(t, mod.Visible)

				return nil
			})

		assert.NoError(t, svc.Create(ctx, req))
	})

	t.Run("insert failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newPackageService(ctrl)

		m.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused"))

		assert.Error(t, svc.Create(ctx, req))
	})
}

func TestTravelPackageService_Get(t *testing.T) {
	t.Run("returns the package with its live remaining count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newPackageService(ctrl)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedPackage(), nil)

		m.ledger.EXPECT().
			Remaining(gomock.Any(), testPackageID, 10).
			Return(3, nil)

		res, err := svc.Get(context.Background(), testPackageID)

		assert.NoError(t, err)
		assert.Equal(t, testPackageID, res.ID)
		assert.Equal(t, 3, res.RemainingRooms)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newPackageService(ctrl)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.TravelPackage{}, nil)

		_, err := svc.Get(context.Background(), testPackageID)

		assert.Error(t, err)
	})
}

func TestTravelPackageService_Update(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")

	t.Run("raising the room cap offers the freed rooms to the waiting list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newPackageService(ctrl)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedPackage(), nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		m.listener.EXPECT().
			NotifyNext(gomock.Any(), testPackageID).
			Return(nil)

		err := svc.Update(ctx, dto.UpdateTravelPackageRequest{TotalRoomCap: intPtr(12)}, testPackageID)

		assert.NoError(t, err)
	})

	t.Run("lowering the room cap notifies nobody", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newPackageService(ctrl)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedPackage(), nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Update(ctx, dto.UpdateTravelPackageRequest{TotalRoomCap: intPtr(8)}, testPackageID)

		assert.NoError(t, err)
	})

	t.Run("updating without touching the cap notifies nobody", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newPackageService(ctrl)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedPackage(), nil)

		m.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Update(ctx, dto.UpdateTravelPackageRequest{Destination: "Osaka"}, testPackageID)

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newPackageService(ctrl)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.TravelPackage{}, nil)

		err := svc.Update(ctx, dto.UpdateTravelPackageRequest{Destination: "Osaka"}, testPackageID)

		assert.Error(t, err)
	})
}

func TestTravelPackageService_Delete(t *testing.T) {
	t.Run("deletes the package and its stored images", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newPackageService(ctrl)

		pkg := storedPackage()
		pkg.Images = model.ImageList{{Key: "cover.jpg", URL: "https://cdn.example.com/cover.jpg"}}

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(pkg, nil)

		m.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		m.s3.EXPECT().
			DeleteFile(gomock.Any(), gomock.Any(), model.EntityName, "cover.jpg").
			Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), testPackageID))
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newPackageService(ctrl)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.TravelPackage{}, nil)

		assert.Error(t, svc.Delete(context.Background(), testPackageID))
	})
}

func TestTravelPackageService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newPackageService(ctrl)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil).
		Times(2)

	m.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	m.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.TravelPackage{storedPackage()}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.TravelPackages, 1)
	assert.Equal(t, 1, res.TotalData)
}
