package constant

const (
	// ContextKeyRequestID is the fiber.Ctx#Locals key under which the
	// per-request xid is stored.
	ContextKeyRequestID = "requestid"

	// ContextKeyAccountID is the fiber.Ctx#Locals key under which the
	// authenticated user's id is stored by the auth middleware.
	ContextKeyAccountID = "accountid"

	// RequestIDHeader carries the request id back to the client.
	RequestIDHeader = "X-Mistveil-Request-ID"
)
