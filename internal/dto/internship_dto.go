package dto

type CreateInternshipRequest struct {
	Title               string   `json:"title" validate:"required"`
	Description         string   `json:"description" validate:"required"`
	Requirements        string   `json:"requirements" validate:"required"`
	Location            string   `json:"location" validate:"required"`
	Duration            string   `json:"duration" validate:"required"`
	Category            *string  `json:"category"`
	Stipend             *float64 `json:"stipend" validate:"omitempty,gte=0"`
	ApplicationDeadline string   `json:"applicationDeadline" validate:"required"`
}

type UpdateInternshipRequest struct {
	Title               *string  `json:"title" validate:"omitempty,min=1"`
	Description         *string  `json:"description" validate:"omitempty,min=1"`
	Requirements        *string  `json:"requirements" validate:"omitempty,min=1"`
	Location            *string  `json:"location" validate:"omitempty,min=1"`
	Duration            *string  `json:"duration" validate:"omitempty,min=1"`
	Category            *string  `json:"category"`
	Stipend             *float64 `json:"stipend" validate:"omitempty,gte=0"`
	ApplicationDeadline *string  `json:"applicationDeadline"`
	Status              *string  `json:"status" validate:"omitempty,oneof=OPEN CLOSED"`
}
