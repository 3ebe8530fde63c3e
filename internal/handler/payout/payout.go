package payout

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/vaultpay/payout-backend/internal/model"
	"github.com/vaultpay/payout-backend/internal/store"
	"github.com/vaultpay/payout-backend/internal/store/payoutrequest"
	"github.com/vaultpay/payout-backend/internal/utils/config"
	"github.com/vaultpay/payout-backend/internal/utils/logger"
	"github.com/vaultpay/payout-backend/internal/view"
)

type CreatePayoutRequest struct {
	ToAddress string `json:"to_address" binding:"required"`
	Asset     string `json:"asset" binding:"required"`
	Amount    string `json:"amount" binding:"required"`
}

type handler struct {
	db        *gorm.DB
	store     *store.Store
	logger    *logger.Logger
	appConfig *config.AppConfig
}

func New(db *gorm.DB, s *store.Store, logger *logger.Logger, appConfig *config.AppConfig) IHandler {
	return &handler{
		db:        db,
		store:     s,
		logger:    logger,
		appConfig: appConfig,
	}
}

// Create godoc
// @Summary Create payout request
// @Description Records a new payout request in PENDING_RISK
// @id createPayout
// @Tags Payout
// @Accept json
// @Produce json
// @Param request body CreatePayoutRequest true "Payout parameters"
// @Success 201 {object} model.PayoutRequest
// @Failure 400 {object} view.ErrorResponse
// @Failure 500 {object} view.ErrorResponse
// @Router /payouts [post]
func (h *handler) Create(c *gin.Context) {
	var req CreatePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("[Create][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, req, "invalid request"))
		return
	}

	if !common.IsHexAddress(req.ToAddress) {
		err := errors.New("invalid recipient address")
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, req, "invalid request"))
		return
	}

	amount, err := model.NewBigAmount(req.Amount)
	if err != nil || !amount.IsPositive() {
		err := errors.New("amount must be a positive integer string")
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, req, "invalid request"))
		return
	}

	created, err := h.store.PayoutRequest.Create(h.db, req.ToAddress, req.Asset, req.Amount, time.Now().UTC())
	if err != nil {
		h.logger.Error("[Create][store.Create]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, view.CreateResponse[any](nil, err, nil, "failed to create payout request"))
		return
	}

	c.JSON(http.StatusCreated, view.CreateResponse(created, nil, nil, ""))
}

// Approve godoc
// @Summary Approve payout request
// @Description Moves a PENDING_RISK request to APPROVED
// @id approvePayout
// @Tags Payout
// @Produce json
// @Param id path string true "Request id"
// @Success 200 {object} model.PayoutRequest
// @Failure 404 {object} view.ErrorResponse
// @Failure 409 {object} view.ErrorResponse
// @Router /payouts/{id}/approve [post]
func (h *handler) Approve(c *gin.Context) {
	id := c.Param("id")

	approved, err := h.store.PayoutRequest.Approve(h.db, id, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, view.CreateResponse[any](nil, err, nil, "payout request not found"))
		case errors.Is(err, payoutrequest.ErrNotApprovable):
			c.JSON(http.StatusConflict, view.CreateResponse[any](nil, err, nil, "payout request is not approvable"))
		default:
			h.logger.Error("[Approve][store.Approve]", map[string]string{
				"id":    id,
				"error": err.Error(),
			})
			c.JSON(http.StatusInternalServerError, view.CreateResponse[any](nil, err, nil, "failed to approve payout request"))
		}
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(approved, nil, nil, ""))
}

// Get godoc
// @Summary Get payout request
// @id getPayout
// @Tags Payout
// @Produce json
// @Param id path string true "Request id"
// @Success 200 {object} model.PayoutRequest
// @Failure 404 {object} view.ErrorResponse
// @Router /payouts/{id} [get]
func (h *handler) Get(c *gin.Context) {
	id := c.Param("id")

	request, err := h.store.PayoutRequest.GetByID(h.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, view.CreateResponse[any](nil, err, nil, "payout request not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, view.CreateResponse[any](nil, err, nil, "failed to get payout request"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(request, nil, nil, ""))
}

// List godoc
// @Summary List payout requests
// @Description Cursor-paginated listing, ascending by id
// @id listPayouts
// @Tags Payout
// @Produce json
// @Param status query string false "Status filter"
// @Param first query int false "Page size (1-100, default 20)"
// @Param after query string false "Cursor: last id of the previous page"
// @Success 200 {object} view.PayoutListResponse
// @Failure 400 {object} view.ErrorResponse
// @Router /payouts [get]
func (h *handler) List(c *gin.Context) {
	filter := payoutrequest.ListFilter{
		First: 20,
		After: c.Query("after"),
	}

	if raw := c.Query("first"); raw != "" {
		first, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, nil, "invalid first"))
			return
		}
		filter.First = first
	}

	if raw := c.Query("status"); raw != "" {
		status := model.PayoutStatus(raw)
		if !status.Valid() {
			err := errors.Errorf("unknown status %q", raw)
			c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, nil, "invalid status"))
			return
		}
		filter.Status = &status
	}

	requests, err := h.store.PayoutRequest.List(h.db, filter)
	if err != nil {
		h.logger.Error("[List][store.List]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, view.CreateResponse[any](nil, err, nil, "failed to list payout requests"))
		return
	}

	pageInfo := view.PageInfo{}
	if len(requests) > 0 {
		pageInfo.EndCursor = requests[len(requests)-1].ID

		next, err := h.store.PayoutRequest.List(h.db, payoutrequest.ListFilter{
			Status: filter.Status,
			First:  1,
			After:  pageInfo.EndCursor,
		})
		if err != nil {
			h.logger.Error("[List][store.List]", map[string]string{
				"after": pageInfo.EndCursor,
				"error": err.Error(),
			})
			c.JSON(http.StatusInternalServerError, view.CreateResponse[any](nil, err, nil, "failed to list payout requests"))
			return
		}
		pageInfo.HasNextPage = len(next) > 0
	}

	c.JSON(http.StatusOK, view.CreateResponse(view.PayoutListResponse{
		Requests: requests,
		PageInfo: pageInfo,
	}, nil, nil, ""))
}
