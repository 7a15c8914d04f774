package handler

type ContextKey string

var (
	PersonCtx    ContextKey = "person"
	RequestIDCtx ContextKey = "requestID"
)
