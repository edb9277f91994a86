package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"solartech.app/field-service/pkg/common"
	"solartech.app/field-service/pkg/device"
	"solartech.app/field-service/pkg/fieldops"
	"solartech.app/field-service/pkg/models"
)

// Field-work routes drive the technician's on-site flow through the
// device capabilities: GPS fix on start, camera/gallery captures into the
// documentation, and an outbound report draft.

func (g *Gateway) PostStartIntervention(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var location *models.GeoLocation
	if g.Locator != nil {
		fix, err := g.Locator.CurrentLocation(ctx)
		if err != nil {
			// work starts with or without a fix
			common.GetLoggerWith(common.LoggerNameGateway).Warn("Location fix failed",
				zap.String("interventionId", id), zap.Error(err))
		} else {
			if address, err := g.Locator.ReverseGeocode(ctx, fix.Latitude, fix.Longitude); err == nil {
				fix.Address = address
			}
			location = &fix
		}
	}

	now := time.Now().UnixMilli()
	status := models.StatusInProgress
	updated, err := g.Engine.Intervention.Update(ctx, id, fieldops.InterventionUpdate{
		Status:    &status,
		Location:  location,
		StartedAt: &now,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (g *Gateway) PostCompleteIntervention(c *gin.Context) {
	now := time.Now().UnixMilli()
	status := models.StatusCompleted
	updated, err := g.Engine.Intervention.Update(c.Request.Context(), c.Param("id"), fieldops.InterventionUpdate{
		Status:      &status,
		CompletedAt: &now,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type PhotoRequest struct {
	Source  string `json:"source"`
	Caption string `json:"caption"`
}

// PostInterventionPhoto captures a photo on the device and appends it to
// the intervention's documentation. A declined capture is a normal outcome
// and returns 409 without touching the record.
func (g *Gateway) PostInterventionPhoto(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var req PhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if g.Camera == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no camera provider"})
		return
	}

	var captured device.CapturedPhoto
	var err error
	switch req.Source {
	case "", "camera":
		captured, err = g.Camera.Capture(ctx)
	case "gallery":
		captured, err = g.Camera.Pick(ctx)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown source %q", req.Source)})
		return
	}
	if errors.Is(err, device.ErrDeclined) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	current, ok := g.Engine.Intervention.ByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "intervention not found"})
		return
	}

	photos := append(current.Documentation.Photos, models.Photo{
		ID:        uuid.NewString(),
		URI:       "data:" + captured.MimeType + ";base64," + captured.Base64,
		Timestamp: time.Now().UnixMilli(),
		Caption:   req.Caption,
	})
	updated, err := g.Engine.Intervention.Update(ctx, id, fieldops.InterventionUpdate{Photos: photos})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, updated)
}

// PostInterventionReport opens an outbound report draft for a single
// intervention. Sending is the operator's action in the mail client; the
// audit trail is written later, when the intervention is closed with its
// emailSentTo field.
func (g *Gateway) PostInterventionReport(c *gin.Context) {
	ctx := c.Request.Context()

	intervention, ok := g.Engine.Intervention.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "intervention not found"})
		return
	}
	if g.Mailer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no mail provider"})
		return
	}
	if intervention.Client.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client has no email address"})
		return
	}

	subject := fmt.Sprintf("Rapporto di intervento %s", intervention.Number)
	err := g.Mailer.ComposeReport(ctx, []string{intervention.Client.Email}, subject, reportBody(intervention))
	if errors.Is(err, device.ErrDeclined) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"to": intervention.Client.Email, "subject": subject})
}

func reportBody(i models.Intervention) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Intervento: %s\n", i.Number)
	fmt.Fprintf(&b, "Cliente: %s\n", i.Client.Name)
	fmt.Fprintf(&b, "Indirizzo: %s\n", i.Client.Address)
	fmt.Fprintf(&b, "Categoria: %s\n", i.Category)
	fmt.Fprintf(&b, "Stato: %s\n", i.Status)
	if i.Documentation.Notes != "" {
		fmt.Fprintf(&b, "Note: %s\n", i.Documentation.Notes)
	}
	fmt.Fprintf(&b, "Foto allegate: %d\n", len(i.Documentation.Photos))
	return b.String()
}
