// Package api is the remote REST boundary, consumed as an opaque service.
// Every call returns a tagged Result; a 401/403 from any endpoint fires
// the registered OnUnauthorized callback so the session layer can force a
// logout no matter which operation tripped it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"solartech.app/field-service/pkg/common"
	"solartech.app/field-service/pkg/models"
)

const sessionExpiredMessage = "Sessione scaduta. Effettua nuovamente il login."

type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	mu             sync.Mutex
	token          string
	onUnauthorized func()
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) SetOnUnauthorized(callback func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = callback
}

func (c *Client) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *Client) fireUnauthorized() {
	c.mu.Lock()
	callback := c.onUnauthorized
	c.mu.Unlock()
	if callback != nil {
		callback()
	}
}

func request[T any](ctx context.Context, c *Client, method, path string, body any) Result[T] {
	logger := common.GetLoggerWith(common.LoggerNameRemoteAPI)

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fail[T](err.Error())
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fail[T](err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logger.Info("Request", zap.String("method", method), zap.String("path", path))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Warn("Network error", zap.String("path", path), zap.Error(err))
		return fail[T](err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		logger.Warn("Unauthorized response, forcing logout", zap.String("path", path))
		c.fireUnauthorized()
		return fail[T](sessionExpiredMessage)
	}

	if resp.StatusCode >= 400 {
		var errBody struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Error != "" {
			return fail[T](errBody.Error)
		}
		return fail[T](fmt.Sprintf("HTTP %d", resp.StatusCode))
	}

	var data T
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return fail[T](err.Error())
	}
	return ok(data)
}

func (c *Client) Login(ctx context.Context, username, password string) Result[LoginResponse] {
	return request[LoginResponse](ctx, c, http.MethodPost, "/auth/login", map[string]string{
		"username": username,
		"password": password,
	})
}

func (c *Client) VerifyToken(ctx context.Context) Result[VerifyResponse] {
	return request[VerifyResponse](ctx, c, http.MethodGet, "/auth/verify", nil)
}

func (c *Client) GetUsers(ctx context.Context) Result[[]models.User] {
	return request[[]models.User](ctx, c, http.MethodGet, "/users", nil)
}

func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) Result[models.User] {
	return request[models.User](ctx, c, http.MethodPost, "/users", req)
}

func (c *Client) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) Result[models.User] {
	return request[models.User](ctx, c, http.MethodPut, "/users/"+id, req)
}

func (c *Client) DeleteUser(ctx context.Context, id string) Result[DeleteResponse] {
	return request[DeleteResponse](ctx, c, http.MethodDelete, "/users/"+id, nil)
}

func (c *Client) GetCompanies(ctx context.Context) Result[[]models.Company] {
	return request[[]models.Company](ctx, c, http.MethodGet, "/companies", nil)
}

func (c *Client) CreateCompany(ctx context.Context, req CreateCompanyRequest) Result[models.Company] {
	return request[models.Company](ctx, c, http.MethodPost, "/companies", req)
}

func (c *Client) UpdateCompany(ctx context.Context, id string, req CreateCompanyRequest) Result[models.Company] {
	return request[models.Company](ctx, c, http.MethodPut, "/companies/"+id, req)
}

func (c *Client) DeleteCompany(ctx context.Context, id string) Result[DeleteResponse] {
	return request[DeleteResponse](ctx, c, http.MethodDelete, "/companies/"+id, nil)
}

func (c *Client) GetInterventions(ctx context.Context) Result[[]models.Intervention] {
	return request[[]models.Intervention](ctx, c, http.MethodGet, "/interventions", nil)
}

func (c *Client) GetIntervention(ctx context.Context, id string) Result[models.Intervention] {
	return request[models.Intervention](ctx, c, http.MethodGet, "/interventions/"+id, nil)
}

func (c *Client) CreateIntervention(ctx context.Context, req CreateInterventionRequest) Result[models.Intervention] {
	return request[models.Intervention](ctx, c, http.MethodPost, "/interventions", req)
}

func (c *Client) UpdateIntervention(ctx context.Context, id string, req UpdateInterventionRequest) Result[models.Intervention] {
	return request[models.Intervention](ctx, c, http.MethodPut, "/interventions/"+id, req)
}

func (c *Client) CloseIntervention(ctx context.Context, id string) Result[models.Intervention] {
	return request[models.Intervention](ctx, c, http.MethodPost, "/interventions/"+id+"/close", nil)
}

func (c *Client) DeleteIntervention(ctx context.Context, id string) Result[DeleteResponse] {
	return request[DeleteResponse](ctx, c, http.MethodDelete, "/interventions/"+id, nil)
}

func (c *Client) BulkDeleteInterventions(ctx context.Context, ids []string) Result[BulkDeleteResponse] {
	return request[BulkDeleteResponse](ctx, c, http.MethodPost, "/interventions/bulk-delete", map[string][]string{"ids": ids})
}

func (c *Client) UploadPhoto(ctx context.Context, req UploadPhotoRequest) Result[PhotoMeta] {
	return request[PhotoMeta](ctx, c, http.MethodPost, "/photos", req)
}

func (c *Client) GetInterventionPhotos(ctx context.Context, interventionID string) Result[[]PhotoMeta] {
	return request[[]PhotoMeta](ctx, c, http.MethodGet, "/photos/intervention/"+interventionID, nil)
}

func (c *Client) GetPhoto(ctx context.Context, id string) Result[PhotoDownload] {
	return request[PhotoDownload](ctx, c, http.MethodGet, "/photos/"+id, nil)
}

func (c *Client) DeletePhoto(ctx context.Context, id string) Result[DeleteResponse] {
	return request[DeleteResponse](ctx, c, http.MethodDelete, "/photos/"+id, nil)
}

func (c *Client) PhotoImageURL(id string) string {
	return c.BaseURL + "/photos/" + id + "/image"
}

func (c *Client) GenerateReport(ctx context.Context, interventionID, format string) Result[ReportResponse] {
	return request[ReportResponse](ctx, c, http.MethodPost,
		fmt.Sprintf("/reports/intervention/%s?format=%s", interventionID, format), nil)
}

func (c *Client) NotifyReportSent(ctx context.Context, interventionID, interventionNumber, recipientEmail string) Result[MessageResponse] {
	return request[MessageResponse](ctx, c, http.MethodPost, "/reports/notify-sent/"+interventionID, map[string]string{
		"interventionNumber": interventionNumber,
		"recipientEmail":     recipientEmail,
	})
}

func (c *Client) SavePushToken(ctx context.Context, token, platform string) Result[MessageResponse] {
	return request[MessageResponse](ctx, c, http.MethodPost, "/push-tokens", PushTokenRequest{Token: token, Platform: platform})
}

func (c *Client) RemovePushToken(ctx context.Context, token string) Result[MessageResponse] {
	return request[MessageResponse](ctx, c, http.MethodDelete, "/push-tokens", PushTokenRequest{Token: token})
}

func (c *Client) NotifyAppointmentSet(ctx context.Context, interventionID, interventionNumber, clientName, appointmentDate string) Result[MessageResponse] {
	return request[MessageResponse](ctx, c, http.MethodPost, "/push-tokens/notify-appointment/"+interventionID, map[string]string{
		"interventionNumber": interventionNumber,
		"clientName":         clientName,
		"appointmentDate":    appointmentDate,
	})
}

func (c *Client) NotifyStatusChange(ctx context.Context, interventionID, interventionNumber, previousStatus, newStatus, clientName string) Result[MessageResponse] {
	return request[MessageResponse](ctx, c, http.MethodPost, "/push-tokens/notify-status/"+interventionID, map[string]string{
		"interventionNumber": interventionNumber,
		"previousStatus":     previousStatus,
		"newStatus":          newStatus,
		"clientName":         clientName,
	})
}

// ConfirmInterventionDelete adapts the delete endpoint to the engine's
// server-confirmation hook.
func (c *Client) ConfirmInterventionDelete(ctx context.Context, id string) error {
	result := c.DeleteIntervention(ctx, id)
	if !result.Success {
		return fmt.Errorf("remote delete refused: %s", result.Error)
	}
	return nil
}
