package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"solartech.app/field-service/pkg/fieldops"
	"solartech.app/field-service/pkg/models"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

var loginRequestSchema = z.Struct(z.Shape{
	"Username": z.String().Required(),
	"Password": z.String().Required(),
})

func (g *Gateway) PostLogin(c *gin.Context) {
	var req LoginRequest
	if err := loginRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	actor, err := g.Session.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   g.Session.Token(),
		"user":    actor,
		"offline": g.Session.Offline(),
	})
}

func (g *Gateway) PostLogout(c *gin.Context) {
	g.Session.Logout(c.Request.Context())
	c.Status(http.StatusOK)
}

// -- interventions --

func (g *Gateway) GetInterventions(c *gin.Context) {
	c.JSON(http.StatusOK, g.Engine.Intervention.Visible())
}

func (g *Gateway) GetUnassignedInterventions(c *gin.Context) {
	c.JSON(http.StatusOK, g.Engine.Intervention.Unassigned())
}

func (g *Gateway) GetIntervention(c *gin.Context) {
	i, ok := g.Engine.Intervention.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "intervention not found"})
		return
	}
	c.JSON(http.StatusOK, i)
}

type InterventionRequest struct {
	ClientName     string  `json:"clientName"`
	ClientAddress  string  `json:"clientAddress"`
	ClientPhone    string  `json:"clientPhone"`
	ClientEmail    string  `json:"clientEmail"`
	CompanyID      *string `json:"companyId"`
	CompanyName    *string `json:"companyName"`
	TechnicianID   *string `json:"technicianId"`
	TechnicianName *string `json:"technicianName"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	Priority       string  `json:"priority"`
}

var interventionRequestSchema = z.Struct(z.Shape{
	"ClientName":    z.String().Required(),
	"ClientAddress": z.String().Required(),
	"ClientPhone":   z.String().Required(),
	"Category":      z.String().Required(),
	"Priority":      z.String().Required(),
})

func (g *Gateway) PostIntervention(c *gin.Context) {
	var req InterventionRequest
	if err := interventionRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	assignedBy := ""
	if actor := g.Engine.Actor(); actor != nil {
		assignedBy = actor.Name
	}

	created, err := g.Engine.Intervention.Add(c.Request.Context(), fieldops.InterventionInput{
		Client: models.ClientInfo{
			Name:    req.ClientName,
			Address: req.ClientAddress,
			Phone:   req.ClientPhone,
			Email:   req.ClientEmail,
		},
		CompanyID:      req.CompanyID,
		CompanyName:    req.CompanyName,
		TechnicianID:   req.TechnicianID,
		TechnicianName: req.TechnicianName,
		Category:       models.InterventionCategory(req.Category),
		Description:    req.Description,
		Priority:       models.Priority(req.Priority),
		AssignedBy:     assignedBy,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// InterventionUpdateRequest is patch-style: absent fields stay untouched,
// so it binds straight to pointers instead of a required-field schema.
type InterventionUpdateRequest struct {
	Status         *string                 `json:"status"`
	TechnicianID   *string                 `json:"technicianId"`
	TechnicianName *string                 `json:"technicianName"`
	Appointment    *models.AppointmentSlot `json:"appointment"`
	Location       *models.GeoLocation     `json:"location"`
	Notes          *string                 `json:"notes"`
	Photos         []models.Photo          `json:"photos"`
	StartedAt      *int64                  `json:"startedAt"`
	CompletedAt    *int64                  `json:"completedAt"`
}

func (g *Gateway) PutIntervention(c *gin.Context) {
	var req InterventionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upd := fieldops.InterventionUpdate{
		Appointment: req.Appointment,
		Location:    req.Location,
		Notes:       req.Notes,
		Photos:      req.Photos,
		StartedAt:   req.StartedAt,
		CompletedAt: req.CompletedAt,
	}
	if req.Status != nil {
		status := models.InterventionStatus(*req.Status)
		upd.Status = &status
	}
	if req.TechnicianID != nil || req.TechnicianName != nil {
		upd.Technician = &fieldops.TechnicianAssignment{
			ID:   req.TechnicianID,
			Name: req.TechnicianName,
		}
	}

	updated, err := g.Engine.Intervention.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (g *Gateway) DeleteIntervention(c *gin.Context) {
	if err := g.Engine.Intervention.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

type BulkAssignRequest struct {
	IDs         []string `json:"ids"`
	CompanyID   string   `json:"companyId"`
	CompanyName string   `json:"companyName"`
}

var bulkAssignRequestSchema = z.Struct(z.Shape{
	"IDs":         z.Slice(z.String()).Min(1),
	"CompanyID":   z.String().Required(),
	"CompanyName": z.String().Required(),
})

func (g *Gateway) PostBulkAssign(c *gin.Context) {
	var req BulkAssignRequest
	if err := bulkAssignRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := g.Engine.Intervention.BulkAssignToCompany(c.Request.Context(), req.IDs, req.CompanyID, req.CompanyName); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

type CloseInterventionsRequest struct {
	IDs         []string `json:"ids"`
	EmailSentTo string   `json:"emailSentTo"`
}

var closeInterventionsRequestSchema = z.Struct(z.Shape{
	"IDs": z.Slice(z.String()).Min(1),
})

func (g *Gateway) PostCloseInterventions(c *gin.Context) {
	var req CloseInterventionsRequest
	if err := closeInterventionsRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	closedBy := ""
	if actor := g.Engine.Actor(); actor != nil {
		closedBy = actor.Name
	}

	if err := g.Engine.Intervention.Close(c.Request.Context(), req.IDs, closedBy, req.EmailSentTo); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// -- appointments --

func (g *Gateway) GetAppointments(c *gin.Context) {
	c.JSON(http.StatusOK, g.Engine.Appointment.Visible())
}

type AppointmentRequest struct {
	Type           string  `json:"type"`
	InterventionID string  `json:"interventionId"`
	ClientName     string  `json:"clientName"`
	Address        string  `json:"address"`
	Date           float64 `json:"date"`
	Notes          string  `json:"notes"`
	NotifyBefore   *int    `json:"notifyBefore"`
}

var appointmentRequestSchema = z.Struct(z.Shape{
	"ClientName": z.String().Required(),
	"Date":       z.Float64().Required(),
})

func (g *Gateway) PostAppointment(c *gin.Context) {
	var req AppointmentRequest
	if err := appointmentRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	created, err := g.Engine.Appointment.Add(c.Request.Context(), models.Appointment{
		Type:           models.AppointmentType(req.Type),
		InterventionID: req.InterventionID,
		ClientName:     req.ClientName,
		Address:        req.Address,
		Date:           int64(req.Date),
		Notes:          req.Notes,
		NotifyBefore:   req.NotifyBefore,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

type AppointmentUpdateRequest struct {
	Type       *string `json:"type"`
	ClientName *string `json:"clientName"`
	Address    *string `json:"address"`
	Date       *int64  `json:"date"`
	Notes      *string `json:"notes"`
	// NotifyBefore replaces the reminder offset; ClearNotifyBefore drops
	// it entirely.
	NotifyBefore      *int `json:"notifyBefore"`
	ClearNotifyBefore bool `json:"clearNotifyBefore"`
}

func (g *Gateway) PutAppointment(c *gin.Context) {
	var req AppointmentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upd := fieldops.AppointmentUpdate{
		ClientName: req.ClientName,
		Address:    req.Address,
		Date:       req.Date,
		Notes:      req.Notes,
	}
	if req.Type != nil {
		t := models.AppointmentType(*req.Type)
		upd.Type = &t
	}
	if req.ClearNotifyBefore {
		var cleared *int
		upd.NotifyBefore = &cleared
	} else if req.NotifyBefore != nil {
		upd.NotifyBefore = &req.NotifyBefore
	}

	updated, err := g.Engine.Appointment.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (g *Gateway) DeleteAppointment(c *gin.Context) {
	if err := g.Engine.Appointment.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// -- companies --

func (g *Gateway) GetCompanies(c *gin.Context) {
	c.JSON(http.StatusOK, g.Engine.Company.Visible())
}

func (g *Gateway) GetCompany(c *gin.Context) {
	company, ok := g.Engine.Company.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
		return
	}
	c.JSON(http.StatusOK, company)
}

type CompanyRequest struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

var companyRequestSchema = z.Struct(z.Shape{
	"Name":     z.String().Required(),
	"Username": z.String().Required(),
	"Password": z.String().Required(),
})

func (g *Gateway) PostCompany(c *gin.Context) {
	var req CompanyRequest
	if err := companyRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	created, err := g.Engine.Company.Add(c.Request.Context(), fieldops.CompanyInput{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

type CompanyUpdateRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}

func (g *Gateway) PutCompany(c *gin.Context) {
	var req CompanyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := g.Engine.Company.Update(c.Request.Context(), c.Param("id"), fieldops.CompanyUpdate{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (g *Gateway) DeleteCompany(c *gin.Context) {
	if err := g.Engine.Company.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// -- users --

func (g *Gateway) GetUsers(c *gin.Context) {
	if companyID := c.Query("companyId"); companyID != "" {
		c.JSON(http.StatusOK, g.Engine.User.ByCompany(companyID))
		return
	}
	c.JSON(http.StatusOK, g.Engine.User.Visible())
}

type UserRequest struct {
	Username    string  `json:"username"`
	Password    string  `json:"password"`
	Role        string  `json:"role"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	CompanyID   *string `json:"companyId"`
	CompanyName *string `json:"companyName"`
}

var userRequestSchema = z.Struct(z.Shape{
	"Username": z.String().Required(),
	"Password": z.String().Required(),
	"Role":     z.String().Required(),
	"Name":     z.String().Required(),
})

func (g *Gateway) PostUser(c *gin.Context) {
	var req UserRequest
	if err := userRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	created, err := g.Engine.User.Add(c.Request.Context(), fieldops.UserInput{
		Username:    req.Username,
		Password:    req.Password,
		Role:        models.Role(req.Role),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		CompanyID:   req.CompanyID,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

type UserUpdateRequest struct {
	Name         *string                    `json:"name"`
	Email        *string                    `json:"email"`
	Phone        *string                    `json:"phone"`
	Password     *string                    `json:"password"`
	LastLocation *models.TechnicianLocation `json:"lastLocation"`
}

func (g *Gateway) PutUser(c *gin.Context) {
	var req UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := g.Engine.User.Update(c.Request.Context(), c.Param("id"), fieldops.UserUpdate{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Password:     req.Password,
		LastLocation: req.LastLocation,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (g *Gateway) DeleteUser(c *gin.Context) {
	if err := g.Engine.User.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// -- stats --

func (g *Gateway) GetStats(c *gin.Context) {
	actor := g.Engine.Actor()
	if actor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	if actor.Role != models.RoleMaster {
		c.JSON(http.StatusForbidden, gin.H{"error": "master role required"})
		return
	}
	c.JSON(http.StatusOK, g.Engine.GlobalStats())
}
