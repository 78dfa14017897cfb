package dto

import "github.com/internlink/internlink-api/internal/models"

type ApplyRequest struct {
	InternshipID uint    `json:"internshipId" validate:"required"`
	CoverLetter  *string `json:"coverLetter"`
	Resume       *string `json:"resume"`
}

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required"`
}
