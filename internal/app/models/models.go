package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin RoleType = "admin"
	RoleUser  RoleType = "user"
)

// DeliveryMode is the course format
type DeliveryMode string

const (
	DeliveryInPerson DeliveryMode = "In-Person"
	DeliveryOnline   DeliveryMode = "Online"
	DeliveryHybrid   DeliveryMode = "Hybrid"
)

// IsValidDeliveryMode reports whether s is one of the accepted delivery modes.
func IsValidDeliveryMode(s string) bool {
	switch DeliveryMode(s) {
	case DeliveryInPerson, DeliveryOnline, DeliveryHybrid:
		return true
	}
	return false
}
