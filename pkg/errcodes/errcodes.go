package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	BoatNotFound       failure.ErrorCode = "BoatNotFound"
	InvalidBoatID      failure.ErrorCode = "InvalidBoatID"
	InvalidWeights     failure.ErrorCode = "InvalidWeights"
	InvalidPreset      failure.ErrorCode = "InvalidPreset"
	InvalidMatchPolicy failure.ErrorCode = "InvalidMatchPolicy"
	InvalidLimit       failure.ErrorCode = "InvalidLimit"
	CatalogUnavailable failure.ErrorCode = "CatalogUnavailable"
)
