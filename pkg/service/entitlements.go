package service

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type ResourceType string

const (
	ResourceTypeDataSource ResourceType = "dataSource"
	ResourceTypeDataCube   ResourceType = "dataCube"
	ResourceTypeDashboard  ResourceType = "dashboard"
)

type Permission string

const (
	PermissionRead   Permission = "read"
	PermissionWrite  Permission = "write"
	PermissionDelete Permission = "delete"
)

type EntitlementStorage interface {
	GetEntitlementsForUser(ctx context.Context, userID string) ([]*Entitlement, error)
	CreateEntitlement(ctx context.Context, id string, entitlement *NewEntitlement) (*Entitlement, error)
	DeleteEntitlement(ctx context.Context, id string) error
}

type EntitlementService interface {
	GetEntitledResources(ctx context.Context, user *User) ([]*EntitledResource, error)
	CreateEntitlement(ctx context.Context, input *NewEntitlement) (*Entitlement, error)
	DeleteEntitlement(ctx context.Context, id string) error
}

type Entitlement struct {
	ID           string       `json:"id"`
	UserID       string       `json:"userId"`
	ResourceType ResourceType `json:"resourceType"`
	ResourceID   string       `json:"resourceId"`
	Permissions  []Permission `json:"permissions"`
	GrantedAt    time.Time    `json:"grantedAt"`
	GrantedBy    string       `json:"grantedBy"`
}

type NewEntitlement struct {
	UserID       string       `json:"userId"`
	ResourceType ResourceType `json:"resourceType"`
	ResourceID   string       `json:"resourceId"`
	Permissions  []Permission `json:"permissions"`
	GrantedBy    string       `json:"grantedBy"`
}

func (e NewEntitlement) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.UserID, validation.Required),
		validation.Field(&e.ResourceType, validation.Required, validation.In(
			ResourceTypeDataSource,
			ResourceTypeDataCube,
			ResourceTypeDashboard,
		)),
		validation.Field(&e.ResourceID, validation.Required),
		validation.Field(&e.Permissions, validation.Required, validation.Each(validation.In(
			PermissionRead,
			PermissionWrite,
			PermissionDelete,
		))),
		validation.Field(&e.GrantedBy, validation.Required),
	)
}

// EntitledResource is an entitlement as seen by the user it was granted to.
type EntitledResource struct {
	ResourceType ResourceType `json:"resourceType"`
	ResourceID   string       `json:"resourceId"`
	ResourceName string       `json:"resourceName"`
	Permissions  []Permission `json:"permissions"`
	GrantedAt    time.Time    `json:"grantedAt"`
}
