package api

import "solartech.app/field-service/pkg/models"

// Result is the tagged outcome every remote call returns; the engine and
// presentation layer branch on Success instead of handling transport
// errors directly.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func fail[T any](message string) Result[T] {
	return Result[T]{Success: false, Error: message}
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  models.Actor `json:"user"`
}

type VerifyResponse struct {
	User models.Actor `json:"user"`
}

type CreateUserRequest struct {
	Username  string      `json:"username"`
	Password  string      `json:"password"`
	Role      models.Role `json:"role"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	CompanyID string      `json:"companyId,omitempty"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Password *string `json:"password,omitempty"`
}

type CreateCompanyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

type CreateInterventionRequest struct {
	ClientName    string                      `json:"clientName"`
	ClientAddress string                      `json:"clientAddress"`
	ClientPhone   string                      `json:"clientPhone"`
	ClientEmail   string                      `json:"clientEmail,omitempty"`
	Category      models.InterventionCategory `json:"category"`
	Description   string                      `json:"description"`
	Priority      models.Priority             `json:"priority"`
	CompanyID     string                      `json:"companyId"`
	TechnicianID  string                      `json:"technicianId,omitempty"`
}

// UpdateInterventionRequest mirrors the remote PUT contract: flat optional
// fields rather than nested sub-records.
type UpdateInterventionRequest struct {
	Status            *models.InterventionStatus `json:"status,omitempty"`
	TechnicianID      *string                    `json:"technicianId,omitempty"`
	AppointmentDate   *string                    `json:"appointmentDate,omitempty"`
	AppointmentNotes  *string                    `json:"appointmentNotes,omitempty"`
	LocationLatitude  *float64                   `json:"locationLatitude,omitempty"`
	LocationLongitude *float64                   `json:"locationLongitude,omitempty"`
	LocationAddress   *string                    `json:"locationAddress,omitempty"`
	Notes             *string                    `json:"notes,omitempty"`
	Photos            []string                   `json:"photos,omitempty"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}

type BulkDeleteResponse struct {
	Message      string `json:"message"`
	DeletedCount int    `json:"deletedCount"`
}

type UploadPhotoRequest struct {
	InterventionID string `json:"interventionId"`
	Data           string `json:"data"`
	MimeType       string `json:"mimeType,omitempty"`
	Caption        string `json:"caption,omitempty"`
	UploadedByID   string `json:"uploadedById"`
}

type PhotoMeta struct {
	ID             string `json:"id"`
	InterventionID string `json:"interventionId"`
	MimeType       string `json:"mimeType"`
	Caption        string `json:"caption,omitempty"`
	UploadedByID   string `json:"uploadedById"`
	CreatedAt      string `json:"createdAt"`
}

type PhotoDownload struct {
	PhotoMeta
	Data string `json:"data"`
}

type ReportResponse struct {
	Success  bool   `json:"success"`
	Data     string `json:"data"`
	Filename string `json:"filename"`
	MimeType string `json:"mimeType"`
}

type PushTokenRequest struct {
	Token    string `json:"token"`
	Platform string `json:"platform,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
