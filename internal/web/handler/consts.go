package handler

const (
	// RootPath is the root path of a route group.
	RootPath = "/"

	// APIBasePath prefixes every JSON API route.
	APIBasePath = "/api/v1"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)
