package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/DeltaPlay/DeltaPlay-Backend/api/apistrings"
	models "github.com/DeltaPlay/DeltaPlay-Backend/api/models"
	db "github.com/DeltaPlay/DeltaPlay-Backend/db/sqlc"
	basemodels "github.com/DeltaPlay/DeltaPlay-Backend/models"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/order"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/settlement"
	"github.com/DeltaPlay/DeltaPlay-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Orders struct {
	server       *Server
	orderService *order.OrderService
}

func (o Orders) router(server *Server) {
	o.server = server
	o.orderService = server.orderService

	serverGroupV1 := server.router.Group("/api/v1/orders")
	serverGroupV1.Use(AuthenticatedMiddleware())
	serverGroupV1.POST("", o.createOrder)
	serverGroupV1.GET("", o.listOrders)
	serverGroupV1.GET(":id", o.getOrder)
	serverGroupV1.POST(":id/accept", o.acceptOrder)
	serverGroupV1.POST(":id/confirm", o.confirmOrder)
	serverGroupV1.POST(":id/start", o.startOrder)
	serverGroupV1.POST(":id/complete", o.completeOrder)
	serverGroupV1.POST(":id/cancel", o.cancelOrder)
	serverGroupV1.POST(":id/dispute", o.disputeOrder)
	serverGroupV1.POST(":id/resolve", OperatorMiddleware(), o.resolveOrder)
}

func (o *Orders) createOrder(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	request := struct {
		ServiceID       uuid.UUID `json:"service_id" binding:"required"`
		DurationMinutes int32     `json:"duration_minutes" binding:"required"`
		ScheduledAt     time.Time `json:"scheduled_at" binding:"required"`
		Requirements    string    `json:"requirements"`
	}{}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidOrderInput))
		return
	}

	created, err := o.orderService.CreateOrder(ctx, order.CreateOrderInput{
		CustomerID:      activeUser.UserID,
		ServiceID:       request.ServiceID,
		DurationMinutes: request.DurationMinutes,
		ScheduledAt:     request.ScheduledAt,
		Requirements:    request.Requirements,
	})
	if err != nil {
		o.respondOrderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, basemodels.NewSuccess("Order Created Successfully", models.ToOrderResponse(&created)))
}

func (o *Orders) listOrders(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))
	status := ctx.Query("status")

	orders, total, err := o.orderService.ListOrders(ctx, activeUser.UserID, status, int32(page), int32(pageSize))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Orders Fetched Successfully", models.OrderListResponse{
		Orders: models.ToOrderCollectionResponse(orders),
		Total:  total,
		Page:   int32(page),
	}))
}

func (o *Orders) getOrder(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	orderID, ok := o.orderParam(ctx)
	if !ok {
		return
	}

	ord, err := o.orderService.GetOrder(ctx, orderID)
	if err != nil {
		o.respondOrderError(ctx, err)
		return
	}

	if ord.CustomerID != activeUser.UserID && ord.GamerID != activeUser.UserID && activeUser.Role != utils.RoleOperator {
		ctx.JSON(http.StatusForbidden, basemodels.NewError(apistrings.NotOrderParticipant))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Order Fetched Successfully", models.ToOrderResponse(&ord)))
}

func (o *Orders) acceptOrder(ctx *gin.Context) {
	o.transition(ctx, "Order Accepted Successfully", func(orderID uuid.UUID, userID int64) (db.Order, error) {
		return o.orderService.Accept(ctx, orderID, userID)
	})
}

func (o *Orders) confirmOrder(ctx *gin.Context) {
	o.transition(ctx, "Order Confirmed Successfully", func(orderID uuid.UUID, userID int64) (db.Order, error) {
		return o.orderService.Confirm(ctx, orderID, userID)
	})
}

func (o *Orders) startOrder(ctx *gin.Context) {
	o.transition(ctx, "Order Started Successfully", func(orderID uuid.UUID, userID int64) (db.Order, error) {
		return o.orderService.Start(ctx, orderID, userID)
	})
}

func (o *Orders) completeOrder(ctx *gin.Context) {
	o.transition(ctx, "Order Completed Successfully", func(orderID uuid.UUID, userID int64) (db.Order, error) {
		return o.orderService.Complete(ctx, orderID, userID)
	})
}

func (o *Orders) cancelOrder(ctx *gin.Context) {
	request := struct {
		Reason string `json:"reason" binding:"required"`
	}{}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidCancelInput))
		return
	}

	o.transition(ctx, "Order Cancelled Successfully", func(orderID uuid.UUID, userID int64) (db.Order, error) {
		return o.orderService.Cancel(ctx, orderID, userID, request.Reason)
	})
}

func (o *Orders) disputeOrder(ctx *gin.Context) {
	request := struct {
		Reason string `json:"reason" binding:"required"`
	}{}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidCancelInput))
		return
	}

	o.transition(ctx, "Order Disputed Successfully", func(orderID uuid.UUID, userID int64) (db.Order, error) {
		return o.orderService.Dispute(ctx, orderID, userID, request.Reason)
	})
}

func (o *Orders) resolveOrder(ctx *gin.Context) {
	request := struct {
		Outcome string `json:"outcome" binding:"required"`
	}{}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidResolveInput))
		return
	}

	orderID, ok := o.orderParam(ctx)
	if !ok {
		return
	}

	resolved, err := o.orderService.Resolve(ctx, orderID, request.Outcome)
	if err != nil {
		o.respondOrderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Order Resolved Successfully", models.ToOrderResponse(&resolved)))
}

// transition runs the shared boilerplate around a lifecycle action: user
// lookup, id parsing, error mapping.
func (o *Orders) transition(ctx *gin.Context, message string, action func(orderID uuid.UUID, userID int64) (db.Order, error)) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	orderID, ok := o.orderParam(ctx)
	if !ok {
		return
	}

	ord, err := action(orderID, activeUser.UserID)
	if err != nil {
		o.respondOrderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess(message, models.ToOrderResponse(&ord)))
}

func (o *Orders) orderParam(ctx *gin.Context) (uuid.UUID, bool) {
	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.OrderNotFound))
		return uuid.UUID{}, false
	}
	return orderID, true
}

func (o *Orders) respondOrderError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.OrderNotFound))
	case errors.Is(err, order.ErrServiceNotFound):
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.ServiceUnavailable))
	case errors.Is(err, order.ErrBookingConflict):
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.BookingConflict))
	case errors.Is(err, order.ErrValidationFailed):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(err.Error()))
	case errors.Is(err, order.ErrInvalidTransition):
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.InvalidTransition))
	case errors.Is(err, order.ErrNotParticipant):
		ctx.JSON(http.StatusForbidden, basemodels.NewError(apistrings.NotOrderParticipant))
	case errors.Is(err, order.ErrPaymentFailed):
		ctx.JSON(http.StatusPaymentRequired, basemodels.NewError(apistrings.OrderPaymentFailed))
	case errors.Is(err, settlement.ErrAlreadyFinalized), errors.Is(err, settlement.ErrAlreadyReversed), errors.Is(err, settlement.ErrNotReserved):
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.InvalidTransition))
	default:
		o.server.logger.Error(err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
	}
}
