package backend

// Backend endpoint paths, grouped the way the pages consume them
const (
	endpointAuthRegister       = "/api/auth/register"
	endpointAuthLogin          = "/api/auth/login"
	endpointAuthForgotPassword = "/api/auth/forgot-password"
	endpointAuthResetPassword  = "/api/auth/reset-password"

	endpointProfileUpdate = "/api/profile/updateProfile"

	endpointAdminUsers = "/api/admin/users"

	endpointBeneficiary     = "/api/transactions/beneficiary"
	endpointTransferPreview = "/api/transactions/preview"
	endpointTransferConfirm = "/api/transactions/confirm"
)

// IdempotencyKeyHeader carries the client-generated retry token on confirm
// requests
const IdempotencyKeyHeader = "Idempotency-Key"
