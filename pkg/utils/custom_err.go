package utils

import "errors"

var (
	ErrPlanNotFound    = errors.New("plan not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrStoreWrite      = errors.New("store write failed")
	ErrDatabaseError   = errors.New("database error")
	ErrGatewayFailure  = errors.New("payment gateway failure")
)
