package view

import (
	"github.com/vaultpay/payout-backend/internal/model"
)

type Response[T any] struct {
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Request any    `json:"request,omitempty"`
	Message string `json:"message,omitempty"`
}

func CreateResponse[T any](data T, err error, request any, message string) Response[T] {
	errStr := ""
	if err != nil {
		errStr = err.Error()
	}

	return Response[T]{
		Data:    data,
		Error:   errStr,
		Request: request,
		Message: message,
	}
}

// MessageResponse and ErrorResponse exist for swagger docs.
type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type PageInfo struct {
	EndCursor   string `json:"end_cursor"`
	HasNextPage bool   `json:"has_next_page"`
}

type PayoutListResponse struct {
	Requests []model.PayoutRequest `json:"requests"`
	PageInfo PageInfo              `json:"page_info"`
}
