package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Forbidden           failure.ErrorCode = "Forbidden"

	CatalogUnavailable failure.ErrorCode = "CatalogUnavailable"
	DealNotFound       failure.ErrorCode = "DealNotFound"
	InvalidSortMode    failure.ErrorCode = "InvalidSortMode"
	InvalidStoreKey    failure.ErrorCode = "InvalidStoreKey"
	InvalidCurrency    failure.ErrorCode = "InvalidCurrency"
	InvalidPriceBound  failure.ErrorCode = "InvalidPriceBound"
	InvalidPaging      failure.ErrorCode = "InvalidPaging"
	RefreshFailed      failure.ErrorCode = "RefreshFailed"
)
