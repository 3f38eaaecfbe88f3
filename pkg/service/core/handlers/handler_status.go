package handlers

import (
	"context"
	"net/http"
)

type Status struct {
	Message string `json:"message,omitempty"`
	Status  string `json:"status"`
}

type statusHandler struct{}

func (h *statusHandler) Root(_ context.Context, _ *http.Request, _ any) (*Status, error) {
	return &Status{Message: "SecureBI Backend API", Status: "running"}, nil
}

func (h *statusHandler) Health(_ context.Context, _ *http.Request, _ any) (*Status, error) {
	return &Status{Status: "healthy"}, nil
}

func NewStatusHandler() *statusHandler {
	return &statusHandler{}
}
