//go:build unit || e2e

package builder

import (
	"time"

	"slotdesk/internal/usecase/commands"
	"slotdesk/internal/usecase/queries"
)

type ResourceBuilder struct {
	ID       int64
	Name     string
	TypeID   int64
	TypeName string
}

func NewResourceBuilder() *ResourceBuilder {
	return &ResourceBuilder{
		ID:       1,
		Name:     "Desk 1",
		TypeID:   1,
		TypeName: "desk",
	}
}

func (r *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(r)
	return r
}

func (r *ResourceBuilder) WithName(name string) *ResourceBuilder {
	r.Name = name
	return r
}

func (r *ResourceBuilder) WithType(typeID int64, typeName string) *ResourceBuilder {
	r.TypeID = typeID
	r.TypeName = typeName
	return r
}

func (r *ResourceBuilder) BuildSnapshot() *commands.ResourceSnapshot {
	now := time.Now()
	return &commands.ResourceSnapshot{
		ID:        r.ID,
		Name:      r.Name,
		TypeID:    r.TypeID,
		TypeName:  r.TypeName,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r *ResourceBuilder) BuildView() *queries.ResourceView {
	now := time.Now()
	return &queries.ResourceView{
		ID:        r.ID,
		Name:      r.Name,
		Type:      r.TypeName,
		TypeID:    r.TypeID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r *ResourceBuilder) BuildAvailability(morningFree, afternoonFree bool) *queries.ResourceAvailabilityView {
	return &queries.ResourceAvailabilityView{
		ResourceID:    r.ID,
		Name:          r.Name,
		Type:          r.TypeName,
		MorningFree:   morningFree,
		AfternoonFree: afternoonFree,
	}
}
