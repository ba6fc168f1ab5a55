package utils

import "time"

// SubmitLockPrefix is the prefix used for Redis submission lock keys.
const SubmitLockPrefix = "submit:"

// DefaultSubmitLockTTL bounds a submission lock when the handler never releases it.
const DefaultSubmitLockTTL = 30 * time.Second

// Gin context keys set by middleware.
const (
	CtxLogger    = "logger"
	CtxLang      = "lang"
	CtxUserID    = "userID"
	CtxRequestID = "requestID"
)
