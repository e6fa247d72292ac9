// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Validation
	KeyValidationInvalid  = "validation.invalid"
	KeyValidationRequired = "validation.required"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthUserExists         = "auth.user_exists"
	KeyAuthAccessDenied       = "auth.access_denied"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthLogoutSuccess      = "auth.logout_success"
	KeyAuthRegisterSuccess    = "auth.register_success"

	// User
	KeyUserNotFound = "user.not_found"

	// Products
	KeyProductCreated     = "product.created"
	KeyProductUpdated     = "product.updated"
	KeyProductDeleted     = "product.deleted"
	KeyProductNotFound    = "product.not_found"
	KeyProductOutOfStock  = "product.out_of_stock"
	KeyProductSlugTaken   = "product.slug_taken"
	KeyProductSKUTaken    = "product.sku_taken"
	KeyProductAddedToCart = "product.added_to_cart"

	// Categories
	KeyCategoryNotFound = "category.not_found"

	// Orders
	KeyOrderCreated           = "order.created"
	KeyOrderNotFound          = "order.not_found"
	KeyOrderEmpty             = "order.empty"
	KeyOrderInsufficientStock = "order.insufficient_stock"
)
