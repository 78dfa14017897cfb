package dto

import "github.com/internlink/internlink-api/internal/models"

type StatsResponse struct {
	UserCount        int64 `json:"userCount"`
	InternshipCount  int64 `json:"internshipCount"`
	ApplicationCount int64 `json:"applicationCount"`
	ProviderCount    int64 `json:"providerCount"`
	InternCount      int64 `json:"internCount"`
}

type ChangeRoleRequest struct {
	Role models.Role `json:"role" validate:"required,oneof=INTERN PROVIDER ADMIN"`
}

type LookupRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type CreateNotificationRequest struct {
	UserID  uint   `json:"userId" validate:"required"`
	Message string `json:"message" validate:"required"`
}
