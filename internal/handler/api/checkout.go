package api

import (
	"errors"
	"net/http"

	"petshop-checkout/internal/domain/discount"
	"petshop-checkout/internal/domain/order"
	"petshop-checkout/internal/domain/voucher"
	reqdto "petshop-checkout/internal/handler/dto/request"
	resdto "petshop-checkout/internal/handler/dto/response"
	"petshop-checkout/internal/handler/httperr"
	"petshop-checkout/internal/handler/middleware"
	"petshop-checkout/internal/pkg/errs"
	"petshop-checkout/internal/usecase/commands"
	"petshop-checkout/internal/usecase/queries"
	"petshop-checkout/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
	q    queries.CheckoutQueries
}

func NewCheckoutHandler(cmds commands.CheckoutCommands, q queries.CheckoutQueries) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds, q: q}
}

// @Summary Checkout summary
// @Description Reconcile the checkout against the live cart and return the totals
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CheckoutSummaryResponse
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/checkout/summary [get]
func (h *CheckoutHandler) GetSummary(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	summary, err := h.q.GetSummary(c.Request.Context(), userID)
	if err != nil {
		abortWithCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutSummaryRM(summary))
}

// @Summary List promotions
// @Description List the promotion catalog with eligibility for the current cart
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PromotionResponse
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/checkout/promotions [get]
func (h *CheckoutHandler) ListPromotions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	promotions, err := h.q.ListPromotions(c.Request.Context(), userID)
	if err != nil {
		abortWithCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotionRMs(promotions))
}

// @Summary Select promotion
// @Description Select a promotion. Selecting the current one again clears it.
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SelectPromotionRequest true "Promotion code"
// @Success 200 {object} resdto.CheckoutSummaryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/checkout/promotion [put]
func (h *CheckoutHandler) SelectPromotion(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.SelectPromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	summary, err := h.cmds.SelectPromotion(c.Request.Context(), userID, req.Code)
	if err != nil {
		abortWithCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutSummaryRM(summary))
}

// @Summary Clear promotion
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CheckoutSummaryResponse
// @Router /api/checkout/promotion [delete]
func (h *CheckoutHandler) ClearPromotion(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	summary, err := h.cmds.ClearPromotion(c.Request.Context(), userID)
	if err != nil {
		abortWithCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutSummaryRM(summary))
}

// @Summary Apply voucher
// @Description Validate a voucher code with the voucher service and attach it
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ApplyVoucherRequest true "Voucher code"
// @Success 200 {object} resdto.CheckoutSummaryResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/checkout/voucher [post]
func (h *CheckoutHandler) ApplyVoucher(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.ApplyVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	summary, err := h.cmds.ApplyVoucher(c.Request.Context(), userID, req.Code)
	if err != nil {
		abortWithCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutSummaryRM(summary))
}

// @Summary Remove voucher
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CheckoutSummaryResponse
// @Router /api/checkout/voucher [delete]
func (h *CheckoutHandler) RemoveVoucher(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	summary, err := h.cmds.RemoveVoucher(c.Request.Context(), userID)
	if err != nil {
		abortWithCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutSummaryRM(summary))
}

// @Summary Checkout form defaults
// @Description Initial checkout form built from the customer's profile and saved addresses
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.FormDefaultsResponse
// @Failure 401 {object} httperr.Response
// @Router /api/checkout/form-defaults [get]
func (h *CheckoutHandler) GetFormDefaults(c *gin.Context) {
	defaults, err := h.q.GetFormDefaults(c.Request.Context())
	if err != nil {
		abortWithCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFormDefaultsRM(defaults))
}

// @Summary Place order
// @Description Validate the checkout form and submit the order
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PlaceOrderRequest true "Checkout form"
// @Success 201 {object} resdto.OrderPlacedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/checkout/orders [post]
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	placed, err := h.cmds.PlaceOrder(c.Request.Context(), userID, req)
	if err != nil {
		abortWithCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOrderPlacedRM(placed))
}

func abortWithCheckoutError(c *gin.Context, err error) {
	var (
		validation *order.ValidationError
		rejection  *voucher.Rejection
		submission *order.SubmissionError
	)

	switch {
	case errors.As(err, &validation):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "validation_failed",
			validation.Message, gin.H{"field": validation.Field})
	case errors.Is(err, voucher.ErrEmptyVoucherCode):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "voucher_code_required",
			"Please enter a voucher code", nil)
	case errors.Is(err, voucher.ErrVoucherAlreadyApplied):
		httperr.AbortWithCode(c, http.StatusConflict, err, "voucher_already_applied",
			"Only one voucher can be applied. Remove the current voucher first", nil)
	case errors.Is(err, voucher.ErrApplyInProgress):
		httperr.AbortWithCode(c, http.StatusConflict, err, "voucher_apply_in_progress",
			"A voucher is already being applied", nil)
	case errors.As(err, &rejection):
		httperr.AbortWithCode(c, http.StatusUnprocessableEntity, err, "voucher_rejected",
			rejection.Message, gin.H{"reason": string(rejection.Reason)})
	case errors.Is(err, voucher.ErrInvalidVoucher):
		httperr.AbortWithCode(c, http.StatusUnprocessableEntity, err, "voucher_invalid",
			voucher.ReasonInapplicable.DefaultMessage(), nil)
	case errors.Is(err, discount.ErrPromotionNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, err, "promotion_not_found",
			"Promotion not found", nil)
	case errors.Is(err, discount.ErrPromotionNotEligible):
		httperr.AbortWithCode(c, http.StatusUnprocessableEntity, err, "promotion_not_eligible",
			"This order does not qualify for the promotion", nil)
	case errors.Is(err, order.ErrAuthRequired):
		httperr.AbortWithCode(c, http.StatusUnauthorized, err, "auth_required",
			"Your session has expired, please sign in again", gin.H{"reauthenticate": true})
	case errors.As(err, &submission):
		httperr.AbortWithCode(c, http.StatusBadGateway, err, "order_submission_failed",
			submission.Message, nil)
	case errs.Is(err, shared.ErrUpstreamUnavailable):
		httperr.AbortWithCode(c, http.StatusServiceUnavailable, err, "upstream_unavailable",
			"Checkout is temporarily unavailable, please try again", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
