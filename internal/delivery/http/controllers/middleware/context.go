package middleware

// Keys under which the authenticated caller is stashed in the gin context.
const (
	ClientIDCtx   = "client_id"
	ClientRoleCtx = "client_role"
)
