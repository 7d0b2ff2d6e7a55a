package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// BookingView represents read-optimized booking data joined with its resource
// and owner.
type BookingView struct {
	ID           int64     `json:"id"`
	ResourceID   int64     `json:"resource_id"`
	ResourceName string    `json:"resource_name"`
	UserID       uuid.UUID `json:"user_id"`
	UserEmail    string    `json:"user_email"`
	BookingDate  string    `json:"booking_date"`
	Slot         string    `json:"slot"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID           int64     `json:"id"`
	ResourceID   int64     `json:"resource_id"`
	ResourceName string    `json:"resource_name"`
	BookingDate  string    `json:"booking_date"`
	Slot         string    `json:"slot"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// ResourceView represents read-optimized resource data
type ResourceView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	TypeID    int64     `json:"type_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ResourceTypeView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ResourceAvailabilityView reports per-slot availability for one resource on
// one date, derived entirely from active bookings.
type ResourceAvailabilityView struct {
	ResourceID    int64  `json:"resource_id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	MorningFree   bool   `json:"morning_free"`
	AfternoonFree bool   `json:"afternoon_free"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// DashboardView aggregates the counters shown on the admin dashboard.
type DashboardView struct {
	TotalResources      int64                `json:"total_resources"`
	TotalUsers          int64                `json:"total_users"`
	ActiveBookingsToday int64                `json:"active_bookings_today"`
	BookingsByType      []BookingsByTypeItem `json:"bookings_by_type"`
}

type BookingsByTypeItem struct {
	Type   string `json:"type"`
	Active int64  `json:"active"`
}
