package payout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vaultpay/payout-backend/internal/model"
	"github.com/vaultpay/payout-backend/internal/store"
	"github.com/vaultpay/payout-backend/internal/store/payoutrequest"
	"github.com/vaultpay/payout-backend/internal/types/environments"
	"github.com/vaultpay/payout-backend/internal/utils/config"
	"github.com/vaultpay/payout-backend/internal/utils/logger"
	"github.com/vaultpay/payout-backend/internal/view"
)

const validAddress = "0x1111111111111111111111111111111111111111"

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.PayoutRequest{}))

	s := store.New()
	h := New(db, s, logger.New(environments.Test), &config.AppConfig{})

	r := gin.New()
	r.POST("/api/v1/payouts", h.Create)
	r.GET("/api/v1/payouts", h.List)
	r.GET("/api/v1/payouts/:id", h.Get)
	r.POST("/api/v1/payouts/:id/approve", h.Approve)

	return r, db, s
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var response view.Response[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response.Data
}

func TestCreate(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, "POST", "/api/v1/payouts", CreatePayoutRequest{
		ToAddress: validAddress,
		Asset:     "USDC",
		Amount:    "1000000",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decodeData[model.PayoutRequest](t, w)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.RequestID)
	assert.Equal(t, model.PayoutStatusPendingRisk, created.Status)
	assert.Equal(t, "1000000", created.Amount)
}

func TestCreate_Validation(t *testing.T) {
	r, _, _ := newTestRouter(t)

	cases := []struct {
		name string
		body CreatePayoutRequest
	}{
		{"missing to", CreatePayoutRequest{Asset: "USDC", Amount: "1"}},
		{"bad address", CreatePayoutRequest{ToAddress: "not-an-address", Asset: "USDC", Amount: "1"}},
		{"zero amount", CreatePayoutRequest{ToAddress: validAddress, Asset: "USDC", Amount: "0"}},
		{"negative amount", CreatePayoutRequest{ToAddress: validAddress, Asset: "USDC", Amount: "-5"}},
		{"float amount", CreatePayoutRequest{ToAddress: validAddress, Asset: "USDC", Amount: "1.5"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, "POST", "/api/v1/payouts", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestApprove(t *testing.T) {
	r, db, s := newTestRouter(t)

	req, err := s.PayoutRequest.Create(db, validAddress, "USDC", "100", time.Now().UTC())
	require.NoError(t, err)

	w := doJSON(t, r, "POST", "/api/v1/payouts/"+req.ID+"/approve", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	approved := decodeData[model.PayoutRequest](t, w)
	assert.Equal(t, model.PayoutStatusApproved, approved.Status)

	// double approval is a conflict, not a no-op
	w = doJSON(t, r, "POST", "/api/v1/payouts/"+req.ID+"/approve", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, "POST", "/api/v1/payouts/missing/approve", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGet(t *testing.T) {
	r, db, s := newTestRouter(t)

	req, err := s.PayoutRequest.Create(db, validAddress, "USDC", "100", time.Now().UTC())
	require.NoError(t, err)

	w := doJSON(t, r, "GET", "/api/v1/payouts/"+req.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeData[model.PayoutRequest](t, w)
	assert.Equal(t, req.ID, got.ID)

	w = doJSON(t, r, "GET", "/api/v1/payouts/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestList(t *testing.T) {
	r, db, s := newTestRouter(t)

	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		_, err := s.PayoutRequest.Create(db, validAddress, "USDC", "1", now.Add(time.Duration(i)*time.Second))
		require.NoError(t, err)
	}

	w := doJSON(t, r, "GET", "/api/v1/payouts?first=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decodeData[view.PayoutListResponse](t, w)
	require.Len(t, page.Requests, 2)
	assert.True(t, page.PageInfo.HasNextPage)
	assert.Equal(t, page.Requests[1].ID, page.PageInfo.EndCursor)

	// walk the cursor to the end
	seen := map[string]bool{}
	cursor := ""
	for {
		path := "/api/v1/payouts?first=2"
		if cursor != "" {
			path = fmt.Sprintf("%s&after=%s", path, cursor)
		}
		w := doJSON(t, r, "GET", path, nil)
		require.Equal(t, http.StatusOK, w.Code)
		page := decodeData[view.PayoutListResponse](t, w)
		for _, req := range page.Requests {
			assert.False(t, seen[req.ID], "duplicate row in pagination")
			seen[req.ID] = true
		}
		if !page.PageInfo.HasNextPage {
			break
		}
		cursor = page.PageInfo.EndCursor
	}
	assert.Len(t, seen, 5)

	w = doJSON(t, r, "GET", "/api/v1/payouts?status=CONFIRMED", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page = decodeData[view.PayoutListResponse](t, w)
	assert.Empty(t, page.Requests)

	w = doJSON(t, r, "GET", "/api/v1/payouts?status=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// fails every List call after the first, so the page itself loads but the
// look-ahead for has_next_page does not
type flakyListStore struct {
	payoutrequest.IStore
	calls int
}

func (s *flakyListStore) List(db *gorm.DB, filter payoutrequest.ListFilter) ([]model.PayoutRequest, error) {
	s.calls++
	if s.calls > 1 {
		return nil, errors.New("connection reset by peer")
	}
	return s.IStore.List(db, filter)
}

func TestList_NextPagePeekError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.PayoutRequest{}))

	flaky := &flakyListStore{IStore: payoutrequest.New()}
	s := &store.Store{PayoutRequest: flaky}
	h := New(db, s, logger.New(environments.Test), &config.AppConfig{})

	_, err = flaky.IStore.Create(db, validAddress, "USDC", "1", time.Now().UTC())
	require.NoError(t, err)

	r := gin.New()
	r.GET("/api/v1/payouts", h.List)

	w := doJSON(t, r, "GET", "/api/v1/payouts?first=1", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code, w.Body.String())
}
