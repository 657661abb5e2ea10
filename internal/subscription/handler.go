package subscription

import (
	"errors"
	"net/http"
	"strconv"

	"cuotas/internal/api"
	"cuotas/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

type ReorderRequest struct {
	IDs []int64 `json:"ids" binding:"required"`
}

type PaidRequest struct {
	IsPaid *bool `json:"isPaid" binding:"required"`
}

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type ReceiptRequest struct {
	Image string `json:"image" binding:"required"`
}

type GTQResponse struct {
	USD  Amount `json:"usd"`
	GTQ  Amount `json:"gtq"`
	Rate string `json:"rate"`
}

// RegisterRoutes mounts the subscription endpoints on rg.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	subs := rg.Group("/subscriptions")
	{
		subs.GET("", h.List)
		subs.POST("", h.Create)
		subs.PUT("/order", h.Reorder)
		subs.POST("/restore", h.Restore)
		subs.GET("/:id", h.Get)
		subs.PUT("/:id", h.Update)
		subs.DELETE("/:id", h.Delete)

		subs.POST("/:id/members", h.AddMember)
		subs.PUT("/:id/members/:memberID", h.UpdateMember)
		subs.DELETE("/:id/members/:memberID", h.RemoveMember)
		subs.PUT("/:id/members/:memberID/paid", h.SetMemberPaid)

		subs.POST("/:id/members/:memberID/comments", h.AddComment)
		subs.PUT("/:id/members/:memberID/comments/:index", h.EditComment)
		subs.DELETE("/:id/members/:memberID/comments/:index", h.DeleteComment)
		subs.POST("/:id/members/:memberID/receipts", h.AddReceipt)
		subs.DELETE("/:id/members/:memberID/receipts/:index", h.RemoveReceipt)
	}
	rg.GET("/pricing/gtq", h.ConvertGTQ)
}

// respondError maps service errors to status codes. Store failures get a
// generic message; the cause is logged.
func respondError(c *gin.Context, err error, fallback string) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		api.RespondWithValidationErrors(c, verr.Details)
	case errors.Is(err, ErrSubscriptionNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Subscription not found"})
	case errors.Is(err, ErrMemberNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member not found"})
	case errors.Is(err, ErrCommentNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Comment not found"})
	case errors.Is(err, ErrReceiptNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Receipt not found"})
	case errors.Is(err, ErrVersionConflict):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Subscription was changed elsewhere, reload and retry"})
	default:
		logger.Error(fallback, "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: fallback})
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid subscription ID"})
		return 0, false
	}
	return id, true
}

func parseIndex(c *gin.Context) (int, bool) {
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid index"})
		return 0, false
	}
	return i, true
}

// @Summary      List subscriptions
// @Description  Returns every subscription in display order with derived figures
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} subscription.View
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/subscriptions [get]
func (h *Handler) List(c *gin.Context) {
	views, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch subscriptions")
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary      Get a subscription
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Subscription ID"
// @Success      200 {object} subscription.View
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/subscriptions/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch subscription")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary      Create a subscription
// @Description  Appends a subscription. A missing or zero totalDebited is stored as usdPrice times the GTQ rate.
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body subscription.SubscriptionInput true "Subscription payload"
// @Success      201 {object} subscription.View
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/subscriptions [post]
func (h *Handler) Create(c *gin.Context) {
	var req SubscriptionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create subscription")
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary      Update a subscription
// @Description  Replaces name, price, total debited, frequency and logo. Members are kept.
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Subscription ID"
// @Param        request body subscription.SubscriptionInput true "Subscription payload"
// @Success      200 {object} subscription.View
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/subscriptions/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req SubscriptionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Failed to update subscription")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary      Delete a subscription
// @Tags         subscriptions
// @Security     BearerAuth
// @Param        id path int true "Subscription ID"
// @Success      204
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/subscriptions/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete subscription")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Reorder subscriptions
// @Description  Persists a new display order. ids must list every subscription exactly once.
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body subscription.ReorderRequest true "New order"
// @Success      200 {array} subscription.View
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/subscriptions/order [put]
func (h *Handler) Reorder(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	views, err := h.service.Reorder(c.Request.Context(), req.IDs)
	if err != nil {
		respondError(c, err, "Failed to reorder subscriptions")
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary      Restore a snapshot
// @Description  Replaces the whole collection with the given list, in order. Repeating the call with the same body gives the same result.
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body []subscription.Subscription true "Snapshot"
// @Success      200 {array} subscription.View
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/subscriptions/restore [post]
func (h *Handler) Restore(c *gin.Context) {
	var snapshot []Subscription
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	views, err := h.service.Restore(c.Request.Context(), snapshot)
	if err != nil {
		respondError(c, err, "Failed to restore subscriptions")
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary      Add a member
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Subscription ID"
// @Param        request body subscription.MemberInput true "Member payload"
// @Success      201 {object} subscription.Member
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/subscriptions/{id}/members [post]
func (h *Handler) AddMember(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req MemberInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	m, err := h.service.AddMember(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Failed to add member")
		return
	}
	c.JSON(http.StatusCreated, m)
}

// @Summary      Update a member
// @Description  Replaces the member's fields. Omitted comments and receipts are kept.
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Subscription ID"
// @Param        memberID path string true "Member ID"
// @Param        request body subscription.MemberInput true "Member payload"
// @Success      200 {object} subscription.Member
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/subscriptions/{id}/members/{memberID} [put]
func (h *Handler) UpdateMember(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req MemberInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	m, err := h.service.UpdateMember(c.Request.Context(), id, c.Param("memberID"), req)
	if err != nil {
		respondError(c, err, "Failed to update member")
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary      Remove a member
// @Tags         members
// @Security     BearerAuth
// @Param        id path int true "Subscription ID"
// @Param        memberID path string true "Member ID"
// @Success      204
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/subscriptions/{id}/members/{memberID} [delete]
func (h *Handler) RemoveMember(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.RemoveMember(c.Request.Context(), id, c.Param("memberID")); err != nil {
		respondError(c, err, "Failed to remove member")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Set member payment status
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Subscription ID"
// @Param        memberID path string true "Member ID"
// @Param        request body subscription.PaidRequest true "Payment status"
// @Success      200 {object} subscription.Member
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/subscriptions/{id}/members/{memberID}/paid [put]
func (h *Handler) SetMemberPaid(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req PaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	m, err := h.service.SetMemberPaid(c.Request.Context(), id, c.Param("memberID"), *req.IsPaid)
	if err != nil {
		respondError(c, err, "Failed to update payment status")
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary      Add a comment
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Subscription ID"
// @Param        memberID path string true "Member ID"
// @Param        request body subscription.CommentRequest true "Comment"
// @Success      201 {object} subscription.Member
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/subscriptions/{id}/members/{memberID}/comments [post]
func (h *Handler) AddComment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	m, err := h.service.AddComment(c.Request.Context(), id, c.Param("memberID"), req.Text)
	if err != nil {
		respondError(c, err, "Failed to add comment")
		return
	}
	c.JSON(http.StatusCreated, m)
}

// @Summary      Edit a comment
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Subscription ID"
// @Param        memberID path string true "Member ID"
// @Param        index path int true "Comment index"
// @Param        request body subscription.CommentRequest true "Comment"
// @Success      200 {object} subscription.Member
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/subscriptions/{id}/members/{memberID}/comments/{index} [put]
func (h *Handler) EditComment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	index, ok := parseIndex(c)
	if !ok {
		return
	}
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	m, err := h.service.EditComment(c.Request.Context(), id, c.Param("memberID"), index, req.Text)
	if err != nil {
		respondError(c, err, "Failed to edit comment")
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary      Delete a comment
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Subscription ID"
// @Param        memberID path string true "Member ID"
// @Param        index path int true "Comment index"
// @Success      200 {object} subscription.Member
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/subscriptions/{id}/members/{memberID}/comments/{index} [delete]
func (h *Handler) DeleteComment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	index, ok := parseIndex(c)
	if !ok {
		return
	}

	m, err := h.service.DeleteComment(c.Request.Context(), id, c.Param("memberID"), index)
	if err != nil {
		respondError(c, err, "Failed to delete comment")
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary      Attach a receipt image
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Subscription ID"
// @Param        memberID path string true "Member ID"
// @Param        request body subscription.ReceiptRequest true "Receipt image as data URL"
// @Success      201 {object} subscription.Member
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/subscriptions/{id}/members/{memberID}/receipts [post]
func (h *Handler) AddReceipt(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req ReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	m, err := h.service.AddReceipt(c.Request.Context(), id, c.Param("memberID"), req.Image)
	if err != nil {
		respondError(c, err, "Failed to attach receipt")
		return
	}
	c.JSON(http.StatusCreated, m)
}

// @Summary      Remove a receipt image
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Subscription ID"
// @Param        memberID path string true "Member ID"
// @Param        index path int true "Receipt index"
// @Success      200 {object} subscription.Member
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/subscriptions/{id}/members/{memberID}/receipts/{index} [delete]
func (h *Handler) RemoveReceipt(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	index, ok := parseIndex(c)
	if !ok {
		return
	}

	m, err := h.service.RemoveReceipt(c.Request.Context(), id, c.Param("memberID"), index)
	if err != nil {
		respondError(c, err, "Failed to remove receipt")
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary      Convert USD to GTQ
// @Tags         pricing
// @Produce      json
// @Security     BearerAuth
// @Param        usd query number true "USD amount"
// @Success      200 {object} subscription.GTQResponse
// @Failure      400 {object} api.ErrorResponse
// @Router       /api/pricing/gtq [get]
func (h *Handler) ConvertGTQ(c *gin.Context) {
	usd, err := strconv.ParseFloat(c.Query("usd"), 64)
	if err != nil || !finite(usd) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "usd must be a number"})
		return
	}

	p := h.service.Pricing()
	c.JSON(http.StatusOK, GTQResponse{
		USD:  NewAmount(fromFloat(usd)),
		GTQ:  NewAmount(p.GTQPrice(usd)),
		Rate: p.Rate().String(),
	})
}
