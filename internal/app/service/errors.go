package service

import (
	"net/http"

	"github.com/ijalalfrz/trip-flight-planner/internal/pkg/exception"
)

var ErrNoLegs = exception.ApplicationError{
	Message:    "trip has no legs to search",
	StatusCode: http.StatusBadRequest,
}
