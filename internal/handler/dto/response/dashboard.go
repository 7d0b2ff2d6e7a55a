package response

import "slotdesk/internal/usecase/queries"

type DashboardResponse struct {
	TotalResources      int64                    `json:"totalResources"`
	TotalUsers          int64                    `json:"totalUsers"`
	ActiveBookingsToday int64                    `json:"activeBookingsToday"`
	BookingsByType      []BookingsByTypeResponse `json:"bookingsByType"`
}

type BookingsByTypeResponse struct {
	Type   string `json:"type"`
	Active int64  `json:"active"`
}

func FromDashboardView(v *queries.DashboardView) *DashboardResponse {
	byType := make([]BookingsByTypeResponse, len(v.BookingsByType))
	for i, item := range v.BookingsByType {
		byType[i] = BookingsByTypeResponse{Type: item.Type, Active: item.Active}
	}
	return &DashboardResponse{
		TotalResources:      v.TotalResources,
		TotalUsers:          v.TotalUsers,
		ActiveBookingsToday: v.ActiveBookingsToday,
		BookingsByType:      byType,
	}
}
