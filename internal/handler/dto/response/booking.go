package response

import (
	"time"

	"slotdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	BookingID    int64     `json:"bookingId"`
	ResourceID   int64     `json:"resourceId"`
	ResourceName string    `json:"resourceName"`
	UserID       uuid.UUID `json:"userId"`
	UserEmail    string    `json:"userEmail"`
	BookingDate  string    `json:"bookingDate"`
	Timeslot     string    `json:"timeslot"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	BookingID    int64     `json:"bookingId"`
	ResourceID   int64     `json:"resourceId"`
	ResourceName string    `json:"resourceName"`
	BookingDate  string    `json:"bookingDate"`
	Timeslot     string    `json:"timeslot"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		BookingID:    v.ID,
		ResourceID:   v.ResourceID,
		ResourceName: v.ResourceName,
		UserID:       v.UserID,
		UserEmail:    v.UserEmail,
		BookingDate:  v.BookingDate,
		Timeslot:     v.Slot,
		IsActive:     v.Status == "active",
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromBookingList(items []*queries.BookingListItem) []*BookingListResponse {
	res := make([]*BookingListResponse, len(items))
	for i, it := range items {
		res[i] = &BookingListResponse{
			BookingID:    it.ID,
			ResourceID:   it.ResourceID,
			ResourceName: it.ResourceName,
			BookingDate:  it.BookingDate,
			Timeslot:     it.Slot,
			IsActive:     it.Status == "active",
			CreatedAt:    it.CreatedAt,
		}
	}
	return res
}
