package response

import (
	"time"

	"slotdesk/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ResourceResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	TypeID    int64     `json:"typeId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ResourceTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ResourceAvailabilityResponse struct {
	ResourceID    int64  `json:"resourceId"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	MorningFree   bool   `json:"morningFree"`
	AfternoonFree bool   `json:"afternoonFree"`
}

func FromResourceView(v *queries.ResourceView) (*ResourceResponse, error) {
	var res ResourceResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromResourceList(views []*queries.ResourceView) ([]*ResourceResponse, error) {
	res := make([]*ResourceResponse, len(views))
	for i, v := range views {
		converted, err := FromResourceView(v)
		if err != nil {
			return nil, err
		}
		res[i] = converted
	}
	return res, nil
}

func FromResourceTypeList(views []*queries.ResourceTypeView) []*ResourceTypeResponse {
	res := make([]*ResourceTypeResponse, len(views))
	for i, v := range views {
		res[i] = &ResourceTypeResponse{ID: v.ID, Name: v.Name}
	}
	return res
}

func FromAvailabilityList(views []*queries.ResourceAvailabilityView) []*ResourceAvailabilityResponse {
	res := make([]*ResourceAvailabilityResponse, len(views))
	for i, v := range views {
		res[i] = &ResourceAvailabilityResponse{
			ResourceID:    v.ResourceID,
			Name:          v.Name,
			Type:          v.Type,
			MorningFree:   v.MorningFree,
			AfternoonFree: v.AfternoonFree,
		}
	}
	return res
}
