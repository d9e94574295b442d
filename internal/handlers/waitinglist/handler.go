package waitinglist

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"voyago/infras/otel"
	"voyago/internal/domains/waitinglist/model"
	"voyago/internal/domains/waitinglist/model/dto"
	"voyago/internal/domains/waitinglist/service"
	"voyago/shared/constant"
	gDto "voyago/shared/dto"
	"voyago/shared/validator"
	"voyago/transport/http/response"
)

type Handler struct {
	service service.WaitingList
	otel    otel.Otel
}

func New(service service.WaitingList, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/waiting-list", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.JoinWaitingList)
		routerGroup.Get("/{packageId}", handler.GetWaitingListStatus)
		routerGroup.Get("/{packageId}/entries", handler.GetWaitingListEntries)
		routerGroup.Delete("/{packageId}", handler.LeaveWaitingList)
	})
}

// JoinWaitingList puts the caller at the back of a package's waiting list.
// @Summary Join a waiting list
// @Description Join the waiting list of a full travel package. Fails when rooms are still available or when the caller is already queued.
// @Tags WaitingList
// @Accept json
// @Produce json
// @Param request body dto.JoinWaitingListRequest true "Package to queue for"
// @Success 201 {object} response.Data[dto.JoinWaitingListResponse] "Joined the waiting list"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/waiting-list [post]
// @Security BearerAuth
func (handler *Handler) JoinWaitingList(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".JoinWaitingList")
	defer scope.End()

	req := dto.JoinWaitingListRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Join(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to join waiting list")

		response.WithError(writer, service.ToFailure(err))

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("User " + user + " joined the waiting list")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetWaitingListStatus reports the caller's place in a package's queue.
// @Summary Get waiting list status
// @Description Retrieve the caller's position, notification state, and estimated wait for a package.
// @Tags WaitingList
// @Accept json
// @Produce json
// @Param packageId path string true "Travel package ID"
// @Success 200 {object} response.Data[dto.WaitingListStatusResponse] "Waiting list status"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/waiting-list/{packageId} [get]
// @Security BearerAuth
func (handler *Handler) GetWaitingListStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWaitingListStatus")
	defer scope.End()

	packageID := chi.URLParam(r, constant.RequestParamPackageID)

	res, err := handler.service.Status(ctx, packageID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get waiting list status")

		response.WithError(w, service.ToFailure(err))

		return
	}

	scope.AddEvent("Waiting list status retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetWaitingListEntries lists a package's queue in position order.
// @Summary Get waiting list entries
// @Description Retrieve the active entries of a package's waiting list. Admin only.
// @Tags WaitingList
// @Accept json
// @Produce json
// @Param packageId path string true "Travel package ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetWaitingListResponse] "Waiting list entries"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/waiting-list/{packageId}/entries [get]
// @Security BearerAuth
func (handler *Handler) GetWaitingListEntries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWaitingListEntries")
	defer scope.End()

	packageID := chi.URLParam(r, constant.RequestParamPackageID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if queryParams.SortBy == constant.Empty {
		queryParams.SortBy = model.FieldPosition
		queryParams.SortDir = "ASC"
	}

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTravelPackageID,
				Operator: gDto.FilterOperatorEq,
				Value:    packageID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get waiting list entries")

		response.WithError(w, service.ToFailure(err))

		return
	}

	scope.AddEvent("Waiting list entries retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// LeaveWaitingList removes the caller from a package's queue.
// @Summary Leave a waiting list
// @Description Remove the caller's entry from a package's waiting list. Entries behind it move up one position.
// @Tags WaitingList
// @Accept json
// @Produce json
// @Param packageId path string true "Travel package ID"
// @Success 200 {object} response.Message "Left the waiting list"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/waiting-list/{packageId} [delete]
// @Security BearerAuth
func (handler *Handler) LeaveWaitingList(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LeaveWaitingList")
	defer scope.End()

	packageID := chi.URLParam(request, constant.RequestParamPackageID)

	if err := handler.service.Leave(ctx, packageID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to leave waiting list")

		response.WithError(writer, service.ToFailure(err))

		return
	}

	scope.AddEvent("Left the waiting list successfully")

	response.WithMessage(writer, http.StatusOK, "Left the waiting list successfully")
}
