package travelpackage

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"voyago/infras/otel"
	"voyago/internal/domains/travelpackage/model"
	"voyago/internal/domains/travelpackage/model/dto"
	"voyago/internal/domains/travelpackage/service"
	"voyago/shared"
	"voyago/shared/constant"
	gDto "voyago/shared/dto"
	"voyago/shared/validator"
	"voyago/transport/http/response"
)

type Handler struct {
	service service.TravelPackage
	otel    otel.Otel
}

func New(service service.TravelPackage, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/travel-packages", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTravelPackage)
		routerGroup.Get("/", handler.GetTravelPackages)
		routerGroup.Get("/{id}", handler.GetTravelPackageByID)
		routerGroup.Patch("/{id}", handler.UpdateTravelPackage)
		routerGroup.Delete("/{id}", handler.DeleteTravelPackage)
	})
}

// CreateTravelPackage creates a new travel package.
// @Summary Create a travel package
// @Description Create a travel package with the provided details.
// @Tags TravelPackage
// @Accept multipart/form-data
// @Produce json
// @Param destination formData string true "Destination"
// @Param country formData string true "Country"
// @Param start_date formData string true "Start date (RFC3339)"
// @Param end_date formData string true "End date (RFC3339)"
// @Param price formData number true "Price"
// @Param total_room_cap formData integer true "Total bookable rooms"
// @Param package_type formData string true "Package type"
// @Param description formData string false "Description"
// @Param visible formData boolean false "Visibility"
// @Param image formData file false "Package image"
// @Success 201 {object} response.Message "Travel package created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/travel-packages [post]
// @Security BearerAuth
func (handler *Handler) CreateTravelPackage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTravelPackage")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.CreateTravelPackageRequest{
		Destination: request.FormValue("destination"),
		Country:     request.FormValue("country"),
		PackageType: request.FormValue("package_type"),
	}

	if startDate, err := time.Parse(time.RFC3339, request.FormValue("start_date")); err == nil {
		req.StartDate = startDate
	}

	if endDate, err := time.Parse(time.RFC3339, request.FormValue("end_date")); err == nil {
		req.EndDate = endDate
	}

	if price, err := strconv.ParseFloat(request.FormValue("price"), 64); err == nil {
		req.Price = price
	}

	if roomCap, err := shared.ConvertStringToInt(request.FormValue("total_room_cap")); err == nil {
		req.TotalRoomCap = roomCap
	}

	if description := request.FormValue("description"); description != "" {
		req.Description = &description
	}

	if visibleStr := request.FormValue("visible"); visibleStr != "" {
		req.Visible = shared.ConvertStringToBool(visibleStr)
	}

	file, fileHeader, err := request.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create travel package")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Travel package created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Travel package created successfully")
}

// GetTravelPackages lists travel packages.
// @Summary Get travel packages
// @Description Retrieve travel packages with optional filtering and pagination.
// @Tags TravelPackage
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param destination query string false "Filter by destination"
// @Param country query string false "Filter by country"
// @Param package_type query string false "Filter by package type"
// @Param visible query boolean false "Filter by visibility"
// @Success 200 {object} response.Data[dto.GetTravelPackagesResponse] "List of travel packages"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/travel-packages [get]
func (handler *Handler) GetTravelPackages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTravelPackages")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldDestination,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldDestination),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCountry,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldCountry),
				Table:    model.TableName,
			},
		},
	}

	if packageType := r.URL.Query().Get(model.FieldPackageType); packageType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPackageType,
			Operator: gDto.FilterOperatorEq,
			Value:    packageType,
			Table:    model.TableName,
		})
	}

	if visible := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldVisible)); visible != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldVisible,
			Operator: gDto.FilterOperatorEq,
			Value:    *visible,
			Table:    model.TableName,
		})
	}

	packages, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get travel packages")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Travel packages retrieved successfully")

	response.WithJSON(w, http.StatusOK, packages)
}

// GetTravelPackageByID returns one travel package with its live room availability.
// @Summary Get a travel package by ID
// @Description Retrieve a travel package and its remaining rooms.
// @Tags TravelPackage
// @Accept json
// @Produce json
// @Param id path string true "Travel package ID"
// @Success 200 {object} response.Data[dto.TravelPackageResponse] "Travel package details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/travel-packages/{id} [get]
func (handler *Handler) GetTravelPackageByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTravelPackageByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	pkg, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get travel package")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Travel package retrieved successfully")

	response.WithJSON(w, http.StatusOK, pkg)
}

// UpdateTravelPackage updates a travel package.
// @Summary Update a travel package
// @Description Update travel package fields. Raising the room cap offers the freed rooms to the waiting list.
// @Tags TravelPackage
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Travel package ID"
// @Success 200 {object} response.Message "Travel package updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/travel-packages/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTravelPackage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTravelPackage")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateTravelPackageRequest{
		Destination: request.FormValue("destination"),
		Country:     request.FormValue("country"),
		PackageType: request.FormValue("package_type"),
	}

	if startDate, err := time.Parse(time.RFC3339, request.FormValue("start_date")); err == nil {
		req.StartDate = &startDate
	}

	if endDate, err := time.Parse(time.RFC3339, request.FormValue("end_date")); err == nil {
		req.EndDate = &endDate
	}

	if price, err := strconv.ParseFloat(request.FormValue("price"), 64); err == nil {
		req.Price = &price
	}

	if capStr := request.FormValue("total_room_cap"); capStr != "" {
		if roomCap, err := shared.ConvertStringToInt(capStr); err == nil {
			req.TotalRoomCap = &roomCap
		}
	}

	if description := request.FormValue("description"); description != "" {
		req.Description = &description
	}

	if visibleStr := request.FormValue("visible"); visibleStr != "" {
		req.Visible = shared.ConvertStringToBool(visibleStr)
	}

	file, fileHeader, err := request.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update travel package")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Travel package updated successfully")

	response.WithMessage(writer, http.StatusOK, "Travel package updated successfully")
}

// DeleteTravelPackage deletes a travel package.
// @Summary Delete a travel package
// @Description Delete a travel package by its unique identifier.
// @Tags TravelPackage
// @Accept json
// @Produce json
// @Param id path string true "Travel package ID"
// @Success 200 {object} response.Message "Travel package deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/travel-packages/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTravelPackage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTravelPackage")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete travel package")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Travel package deleted successfully")

	response.WithMessage(writer, http.StatusOK, "Travel package deleted successfully")
}
