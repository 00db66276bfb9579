package logx

const (
	FieldAppID           = "app-id"
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldCurrency        = "currency"
	FieldDealCount       = "deal-count"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldRegion          = "region"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldStack           = "stack"
	FieldStoreID         = "store-id"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
)
