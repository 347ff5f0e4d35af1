package id

import "github.com/segmentio/ksuid"

// GenerateIDWithPrefix creates a new KSUID with the given prefix.
// KSUIDs are time-ordered, collision-resistant, and URL-safe.
//
// Format: <prefix><27-char-ksuid>
// Example: prod_2ArTLVPddDx8vZk7CqEbiYp1
func GenerateIDWithPrefix(prefix string) string {
	return prefix + ksuid.New().String()
}

// Prefixes used across the application.
const (
	ProductPrefix = "prod_"
	UserPrefix    = "user_"
)

// NewProductID returns an identifier for a newly created product.
func NewProductID() string {
	return GenerateIDWithPrefix(ProductPrefix)
}

// NewUserID returns an identifier for a newly registered user.
func NewUserID() string {
	return GenerateIDWithPrefix(UserPrefix)
}
