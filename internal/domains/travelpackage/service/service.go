package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"voyago/config"
	"voyago/infras/otel"
	"voyago/infras/s3"
	"voyago/internal/domains/inventory"
	"voyago/internal/domains/travelpackage/model"
	"voyago/internal/domains/travelpackage/model/dto"
	"voyago/internal/domains/travelpackage/repository"
	"voyago/shared"
	"voyago/shared/cache"
	"voyago/shared/constant"
	gDto "voyago/shared/dto"
	"voyago/shared/failure"
)

const (
	cacheGetPackage    = "travelpackage:get"
	cacheGetAllPackage = "travelpackage:gets"
	cacheCountPackage  = "travelpackage:count"
)

// CapacityListener is told whenever a package's bookable room count may
// have grown, so the head of its waiting list can be offered the room.
type CapacityListener interface {
	NotifyNext(ctx context.Context, packageID string) error
}

type TravelPackage interface {
	Create(ctx context.Context, req dto.CreateTravelPackageRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTravelPackagesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.TravelPackageResponse, error)
	Update(ctx context.Context, req dto.UpdateTravelPackageRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.TravelPackage
	ledger   inventory.Ledger
	listener CapacityListener
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	s3       s3.S3
}

func New(
	repo repository.TravelPackage,
	ledger inventory.Ledger,
	listener CapacityListener,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
) TravelPackage {
	return &serviceImpl{
		repo:     repo,
		ledger:   ledger,
		listener: listener,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		s3:       s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTravelPackageRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var images model.ImageList
	var uploadedObjectName string
	if req.Image != nil {
		url, objectName, uploadErr := s.uploadImage(ctx, req.ImageFile, req.Image)
		if uploadErr != nil {
			log.Error().Err(uploadErr).Msg("failed to upload package image to S3")

			return fmt.Errorf("failed to upload image: %w", uploadErr)
		}

		images = model.ImageList{{Key: objectName, URL: url}}
		uploadedObjectName = objectName
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, images)); err != nil {
		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, uploadedObjectName)
		}

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPackage)
		shared.InvalidateCaches(c, s.cache, cacheCountPackage)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTravelPackagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPackage, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for travel packages")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count travel packages")

		return res, fmt.Errorf("failed to count travel packages: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get travel packages")

		return res, fmt.Errorf("failed to get travel packages: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save travel packages to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountPackage, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for travel package count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count travel packages")

		return res, fmt.Errorf("failed to count travel packages: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save travel package count to cache")
		}
	}()

	return res, nil
}

// Get returns the package together with its live remaining-room count.
// The count is computed fresh on every call and is never cached.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TravelPackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	pkg, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get travel package")

		return res, fmt.Errorf("failed to get travel package: %w", err)
	}

	if pkg.ID == constant.Empty {
		return res, failure.NotFound("travel package not found") // nolint:wrapcheck
	}

	remaining, err := s.ledger.Remaining(ctx, pkg.ID, pkg.TotalRoomCap)
	if err != nil {
		log.Error().Err(err).Msg("failed to compute remaining rooms")

		return res, fmt.Errorf("failed to compute remaining rooms: %w", err)
	}

	res.FromModel(pkg, remaining)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTravelPackageRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check travel package existence")

		return err
	}

	if current.ID == constant.Empty {
		log.Error().Msg("travel package not found")

		return failure.NotFound("travel package not found")
	}

	return s.updateInternal(ctx, req, current, user, filter)
}

func (s *serviceImpl) updateInternal(ctx context.Context, req dto.UpdateTravelPackageRequest, current model.TravelPackage, user string, filter gDto.FilterGroup) error {
	var uploadedObjectName string
	updatedFields := shared.TransformFields(req, user)

	if req.Image != nil {
		url, objectName, err := s.uploadImage(ctx, req.ImageFile, req.Image)
		if err != nil {
			return fmt.Errorf("failed to upload image: %w", err)
		}

		uploadedObjectName = objectName
		updatedFields[model.FieldImages] = append(current.Images, model.Image{Key: objectName, URL: url})
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update travel package")

		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, uploadedObjectName)
		}

		return fmt.Errorf("failed to update travel package: %w", err)
	}

	// A raised cap opens rooms; the head of the waiting list gets first claim.
	if req.TotalRoomCap != nil && *req.TotalRoomCap > current.TotalRoomCap {
		if err := s.listener.NotifyNext(ctx, current.ID); err != nil {
			log.Error().Err(err).Str("packageID", current.ID).Msg("failed to notify waiting list after cap increase")
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPackage, current.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete travel package cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPackage)
		shared.InvalidateCaches(c, s.cache, cacheCountPackage)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	current, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if travel package exists")

		return fmt.Errorf("failed to check if travel package exists: %w", err)
	}

	if current.ID == constant.Empty {
		log.Error().Msg("travel package not found")

		return failure.NotFound("travel package not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete travel package")

		return fmt.Errorf("failed to delete travel package: %w", err)
	}

	for _, img := range current.Images {
		_ = s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, img.Key)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPackage, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete travel package from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPackage)
		shared.InvalidateCaches(c, s.cache, cacheCountPackage)
	}()

	return nil
}

func (s *serviceImpl) uploadImage(ctx context.Context, file multipart.File, header *multipart.FileHeader) (url, objectName string, err error) {
	objectName = uuid.NewString()
	if parts := strings.Split(header.Filename, "."); len(parts) > 1 {
		objectName = fmt.Sprintf("%s.%s", objectName, parts[len(parts)-1])
	}

	url, err = s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, file, header, objectName)
	if err != nil {
		return constant.Empty, constant.Empty, err
	}

	return url, objectName, nil
}
