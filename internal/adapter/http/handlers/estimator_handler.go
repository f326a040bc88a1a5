package handlers

import (
	"errors"
	"net/http"
	request "sparkle_shine/internal/adapter/http/dto/request"
	response "sparkle_shine/internal/adapter/http/dto/response"
	"sparkle_shine/internal/domain/entities"
	"sparkle_shine/internal/usecase"
	"sparkle_shine/pkg"

	"github.com/gin-gonic/gin"
)

const paramSessionID = "session_id"

var (
	errInvalidEstimatorPayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATOR_INPUT", "Invalid estimator payload", http.StatusBadRequest)
)

// EstimatorHandler exposes the interactive estimator: one session per
// visitor, mutated one step at a time. Every response is the full session
// view so the page can re-render from it.

type EstimatorHandler struct {
	usecase usecase.IEstimatorUseCase
}

func NewEstimatorHandler(uc usecase.IEstimatorUseCase) *EstimatorHandler {
	return &EstimatorHandler{usecase: uc}
}

// StartSession godoc
// @Summary      Start an estimator session
// @Tags         estimator
// @Produce      json
// @Success      201  {object}  response.EstimatorSessionResponse
// @Router       /estimator/sessions [post]
func (h *EstimatorHandler) StartSession(c *gin.Context) {
	view, err := h.usecase.StartSession(c.Request.Context())
	if err != nil {
		appErr := mapEstimatorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimatorSessionView(view))
}

// GetSession godoc
// @Summary      Estimator session view
// @Tags         estimator
// @Produce      json
// @Param        session_id  path      string  true  "Session ID"
// @Success      200         {object}  response.EstimatorSessionResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /estimator/sessions/{session_id} [get]
func (h *EstimatorHandler) GetSession(c *gin.Context) {
	h.respond(c, func(id string) (usecase.EstimatorSessionView, error) {
		return h.usecase.GetSession(c.Request.Context(), id)
	})
}

// SetPackage godoc
// @Summary      Choose the cleaning package
// @Tags         estimator
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                     true  "Session ID"
// @Param        body        body      request.SetPackageRequest  true  "Package"
// @Success      200         {object}  response.EstimatorSessionResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /estimator/sessions/{session_id}/package [put]
func (h *EstimatorHandler) SetPackage(c *gin.Context) {
	var payload request.SetPackageRequest
	if !bindEstimatorPayload(c, &payload) {
		return
	}
	h.respond(c, func(id string) (usecase.EstimatorSessionView, error) {
		return h.usecase.SetPackage(c.Request.Context(), id, payload.ResolvePackageID())
	})
}

// AdjustRoomCount godoc
// @Summary      Add or remove bedrooms and bathrooms
// @Description  Counts never go below zero.
// @Tags         estimator
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                      true  "Session ID"
// @Param        body        body      request.AdjustRoomsRequest  true  "Room kind and delta"
// @Success      200         {object}  response.EstimatorSessionResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /estimator/sessions/{session_id}/rooms [post]
func (h *EstimatorHandler) AdjustRoomCount(c *gin.Context) {
	var payload request.AdjustRoomsRequest
	if !bindEstimatorPayload(c, &payload) {
		return
	}
	h.respond(c, func(id string) (usecase.EstimatorSessionView, error) {
		return h.usecase.AdjustRoomCount(c.Request.Context(), id, entities.RoomKind(payload.Kind), payload.Delta)
	})
}

// SetFrequency godoc
// @Summary      Choose the cleaning frequency
// @Tags         estimator
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                       true  "Session ID"
// @Param        body        body      request.SetFrequencyRequest  true  "Frequency"
// @Success      200         {object}  response.EstimatorSessionResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /estimator/sessions/{session_id}/frequency [put]
func (h *EstimatorHandler) SetFrequency(c *gin.Context) {
	var payload request.SetFrequencyRequest
	if !bindEstimatorPayload(c, &payload) {
		return
	}
	h.respond(c, func(id string) (usecase.EstimatorSessionView, error) {
		return h.usecase.SetFrequency(c.Request.Context(), id, payload.ResolveFrequency())
	})
}

// NavigateCalendar godoc
// @Summary      Move the calendar one month back or forward
// @Tags         estimator
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                           true  "Session ID"
// @Param        body        body      request.NavigateCalendarRequest  true  "Direction"
// @Success      200         {object}  response.EstimatorSessionResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /estimator/sessions/{session_id}/calendar/navigate [post]
func (h *EstimatorHandler) NavigateCalendar(c *gin.Context) {
	var payload request.NavigateCalendarRequest
	if !bindEstimatorPayload(c, &payload) {
		return
	}
	h.respond(c, func(id string) (usecase.EstimatorSessionView, error) {
		return h.usecase.NavigateCalendar(c.Request.Context(), id, entities.NavigationDirection(payload.Direction))
	})
}

// SelectDay godoc
// @Summary      Pick the preferred date
// @Description  Picks a day of the displayed month. Past days are rejected.
// @Tags         estimator
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                    true  "Session ID"
// @Param        body        body      request.SelectDayRequest  true  "Day of month"
// @Success      200         {object}  response.EstimatorSessionResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /estimator/sessions/{session_id}/calendar/select [post]
func (h *EstimatorHandler) SelectDay(c *gin.Context) {
	var payload request.SelectDayRequest
	if !bindEstimatorPayload(c, &payload) {
		return
	}
	h.respond(c, func(id string) (usecase.EstimatorSessionView, error) {
		return h.usecase.SelectDay(c.Request.Context(), id, payload.Day)
	})
}

// Submit godoc
// @Summary      Confirm the booking
// @Description  Fails with 422 until a preferred date is selected.
// @Tags         estimator
// @Produce      json
// @Param        session_id  path      string  true  "Session ID"
// @Success      200         {object}  response.EstimatorSessionResponse
// @Failure      409         {object}  pkg.HTTPError
// @Failure      422         {object}  pkg.HTTPError
// @Router       /estimator/sessions/{session_id}/submit [post]
func (h *EstimatorHandler) Submit(c *gin.Context) {
	h.respond(c, func(id string) (usecase.EstimatorSessionView, error) {
		return h.usecase.Submit(c.Request.Context(), id)
	})
}

// Reset godoc
// @Summary      Reopen a confirmed booking for editing
// @Description  Keeps the configuration. No-op while editing.
// @Tags         estimator
// @Produce      json
// @Param        session_id  path      string  true  "Session ID"
// @Success      200         {object}  response.EstimatorSessionResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /estimator/sessions/{session_id}/reset [post]
func (h *EstimatorHandler) Reset(c *gin.Context) {
	h.respond(c, func(id string) (usecase.EstimatorSessionView, error) {
		return h.usecase.Reset(c.Request.Context(), id)
	})
}

func (h *EstimatorHandler) respond(c *gin.Context, op func(id string) (usecase.EstimatorSessionView, error)) {
	view, err := op(c.Param(paramSessionID))
	if err != nil {
		appErr := mapEstimatorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimatorSessionView(view))
}

func bindEstimatorPayload(c *gin.Context, payload any) bool {
	if err := c.ShouldBindJSON(payload); err != nil {
		c.JSON(errInvalidEstimatorPayload.HTTPStatus, errInvalidEstimatorPayload.ToHTTPError())
		return false
	}
	return true
}

func mapEstimatorError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, entities.ErrInvalidRoomKind),
		errors.Is(err, entities.ErrInvalidDirection):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnknownPackage):
		return pkg.NewDomainErrorSimple("UNKNOWN_PACKAGE", "Unknown service package", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidFrequency):
		return pkg.NewDomainErrorSimple("INVALID_FREQUENCY", "Invalid frequency", http.StatusBadRequest)
	case errors.Is(err, entities.ErrPastDate):
		return pkg.NewDomainErrorSimple("PAST_DATE", "Past dates cannot be selected", http.StatusBadRequest)
	case errors.Is(err, entities.ErrDayOutOfRange):
		return pkg.NewDomainErrorSimple("DAY_OUT_OF_RANGE", "Day is not in the displayed month", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Estimator session not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrBookingConfirmed):
		return pkg.NewDomainErrorSimple("BOOKING_CONFIRMED", "Booking already confirmed", http.StatusConflict)
	case errors.Is(err, entities.ErrDateRequired):
		return pkg.NewDomainErrorSimple("DATE_REQUIRED", entities.DateRequiredNotice, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
