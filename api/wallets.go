package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/DeltaPlay/DeltaPlay-Backend/api/apistrings"
	models "github.com/DeltaPlay/DeltaPlay-Backend/api/models"
	basemodels "github.com/DeltaPlay/DeltaPlay-Backend/models"
	"github.com/DeltaPlay/DeltaPlay-Backend/providers/payment"
	"github.com/DeltaPlay/DeltaPlay-Backend/services/wallet"
	"github.com/DeltaPlay/DeltaPlay-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Wallets struct {
	server        *Server
	walletService *wallet.WalletService
	gateway       payment.Gateway
}

func (w Wallets) router(server *Server) {
	w.server = server
	w.walletService = server.walletService
	w.gateway = server.gateway

	serverGroupV1 := server.router.Group("/api/v1/wallets")
	serverGroupV1.Use(AuthenticatedMiddleware())
	serverGroupV1.GET("", w.getWallet)
	serverGroupV1.POST("recharge", w.recharge)
	serverGroupV1.POST("withdraw", w.withdraw)
	serverGroupV1.GET("transactions", w.getTransactions)
	serverGroupV1.GET("reconcile", w.reconcile)
	serverGroupV1.POST("halts/:user_id/clear", OperatorMiddleware(), w.clearHalt)
}

func (w *Wallets) getWallet(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	account, err := w.walletService.GetWallet(ctx, activeUser.UserID)
	if errors.Is(err, wallet.ErrWalletNotFound) {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.UserNoWallet))
		return
	} else if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	response := models.ToWalletResponse(account)

	// Best effort: the daily spend counter is advisory and must not fail
	// the wallet read if Redis is unavailable.
	if spend, err := w.server.redis.GetDailySpend(ctx, activeUser.UserID); err == nil {
		response.SpentToday = spend.TotalAmount.String()
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("User Wallet Fetched Successfully", response))
}

func (w *Wallets) recharge(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	amount, ok := w.amountFromBody(ctx)
	if !ok {
		return
	}

	reference := uuid.New().String()
	charge, err := w.gateway.Charge(ctx, payment.ChargeRequest{
		UserID:    activeUser.UserID,
		Amount:    amount,
		Reference: reference,
	})
	if errors.Is(err, payment.ErrChargeDeclined) {
		ctx.JSON(http.StatusPaymentRequired, basemodels.NewError(apistrings.ChargeDeclined))
		return
	} else if err != nil {
		w.server.logger.Error(fmt.Sprintf("gateway charge failed for user %v: %v", activeUser.UserID, err))
		ctx.JSON(http.StatusBadGateway, basemodels.NewError(apistrings.ServerError))
		return
	}

	account, err := w.walletService.Recharge(ctx, activeUser.UserID, amount, charge.ExternalID)
	if err != nil {
		w.respondWalletError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Wallet Recharged Successfully", models.ToWalletResponse(account)))
}

func (w *Wallets) withdraw(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	amount, ok := w.amountFromBody(ctx)
	if !ok {
		return
	}

	// Debit first so the funds cannot be spent while the payout is in
	// flight; a rejected payout re-credits the wallet.
	account, err := w.walletService.Withdraw(ctx, activeUser.UserID, amount)
	if err != nil {
		w.respondWalletError(ctx, err)
		return
	}

	reference := uuid.New().String()
	_, err = w.gateway.Payout(ctx, payment.PayoutRequest{
		UserID:    activeUser.UserID,
		Amount:    amount,
		Reference: reference,
	})
	if err != nil {
		w.server.logger.Error(fmt.Sprintf("payout failed for user %v, re-crediting: %v", activeUser.UserID, err))
		if _, refundErr := w.walletService.Recharge(ctx, activeUser.UserID, amount, fmt.Sprintf("payout-reversal-%s", reference)); refundErr != nil {
			w.server.logger.Error(fmt.Sprintf("could not re-credit user %v after failed payout: %v", activeUser.UserID, refundErr))
		}
		if errors.Is(err, payment.ErrPayoutRejected) {
			ctx.JSON(http.StatusUnprocessableEntity, basemodels.NewError(apistrings.PayoutRejected))
			return
		}
		ctx.JSON(http.StatusBadGateway, basemodels.NewError(apistrings.ServerError))
		return
	}

	if err := w.server.redis.TrackDailySpend(ctx, activeUser.UserID, amount); err != nil {
		w.server.logger.Warning(fmt.Sprintf("could not track daily spend for user %v: %v", activeUser.UserID, err))
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Withdrawal Processed Successfully", models.ToWalletResponse(account)))
}

func (w *Wallets) getTransactions(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))

	transactions, err := w.walletService.ListTransactions(ctx, activeUser.UserID, page, pageSize)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Transactions Fetched Successfully", models.ToTransactionCollectionResponse(transactions)))
}

func (w *Wallets) reconcile(ctx *gin.Context) {
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	result, err := w.walletService.Reconcile(ctx, activeUser.UserID)
	if err != nil {
		w.respondWalletError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Wallet Reconciliation Completed", models.ToReconcileResponse(result)))
}

func (w *Wallets) clearHalt(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("user_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	if err := w.walletService.ClearHalt(ctx, userID); err != nil {
		w.respondWalletError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Wallet Halt Cleared Successfully", nil))
}

func (w *Wallets) amountFromBody(ctx *gin.Context) (decimal.Decimal, bool) {
	request := struct {
		Amount string `json:"amount" binding:"required"`
	}{}
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAmountInput))
		return decimal.Decimal{}, false
	}

	amount, err := decimal.NewFromString(request.Amount)
	if err != nil || !amount.IsPositive() {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAmountInput))
		return decimal.Decimal{}, false
	}
	return amount, true
}

func (w *Wallets) respondWalletError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, wallet.ErrWalletNotFound):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.UserNoWallet))
	case errors.Is(err, wallet.ErrInsufficientFunds):
		ctx.JSON(http.StatusPaymentRequired, basemodels.NewError(apistrings.InsufficientFunds))
	case errors.Is(err, wallet.ErrInvalidAmount):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAmountInput))
	case errors.Is(err, wallet.ErrWalletHalted):
		ctx.JSON(http.StatusLocked, basemodels.NewError(apistrings.WalletHalted))
	default:
		w.server.logger.Error(err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
	}
}
