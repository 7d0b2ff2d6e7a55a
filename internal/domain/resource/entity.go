package resource

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 255 characters)")
	ErrInvalidResourceType = errors.New("invalid resource type")
)

const (
	MaxResourceNameLength = 255
)

type Resource struct {
	id        int64
	name      string
	typeID    int64
	typeName  string
	createdAt time.Time
	updatedAt time.Time
}

func NewResource(name string, typeID int64) (*Resource, error) {
	if err := validateResourceName(name); err != nil {
		return nil, err
	}
	if typeID <= 0 {
		return nil, ErrInvalidResourceType
	}

	return &Resource{
		name:   strings.TrimSpace(name),
		typeID: typeID,
	}, nil
}

func ReconstructResource(id int64, name string, typeID int64, typeName string, createdAt, updatedAt time.Time) *Resource {
	return &Resource{
		id:        id,
		name:      name,
		typeID:    typeID,
		typeName:  typeName,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Resource) Rename(name string) error {
	if err := validateResourceName(name); err != nil {
		return err
	}
	r.name = strings.TrimSpace(name)
	return nil
}

func (r *Resource) ChangeType(typeID int64) error {
	if typeID <= 0 {
		return ErrInvalidResourceType
	}
	r.typeID = typeID
	return nil
}

func validateResourceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

func (r *Resource) ID() int64            { return r.id }
func (r *Resource) Name() string         { return r.name }
func (r *Resource) TypeID() int64        { return r.typeID }
func (r *Resource) TypeName() string     { return r.typeName }
func (r *Resource) CreatedAt() time.Time { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time { return r.updatedAt }
