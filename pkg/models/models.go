package models

// Role is the closed set of actor roles. The wire values are the Italian
// ones used by the remote API: master = administrator, ditta = company
// account, tecnico = technician.
type Role string

const (
	RoleMaster     Role = "master"
	RoleCompany    Role = "ditta"
	RoleTechnician Role = "tecnico"
)

func (r Role) Valid() bool {
	switch r {
	case RoleMaster, RoleCompany, RoleTechnician:
		return true
	}
	return false
}

// InterventionStatus moves forward through the lifecycle below. The engine
// does not enforce monotonicity; callers set the status explicitly.
type InterventionStatus string

const (
	StatusAssigned       InterventionStatus = "assegnato"
	StatusAppointmentSet InterventionStatus = "appuntamento_fissato"
	StatusInProgress     InterventionStatus = "in_corso"
	StatusCompleted      InterventionStatus = "completato"
	StatusClosed         InterventionStatus = "chiuso"
)

func (s InterventionStatus) Valid() bool {
	switch s {
	case StatusAssigned, StatusAppointmentSet, StatusInProgress, StatusCompleted, StatusClosed:
		return true
	}
	return false
}

type InterventionCategory string

const (
	CategorySiteSurvey   InterventionCategory = "sopralluogo"
	CategoryInstallation InterventionCategory = "installazione"
	CategoryMaintenance  InterventionCategory = "manutenzione"
)

func (c InterventionCategory) Valid() bool {
	switch c {
	case CategorySiteSurvey, CategoryInstallation, CategoryMaintenance:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "bassa"
	PriorityNormal Priority = "normale"
	PriorityHigh   Priority = "alta"
	PriorityUrgent Priority = "urgente"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type ClientInfo struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	CivicNumber string `json:"civicNumber"`
	CAP         string `json:"cap"`
	City        string `json:"city"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

type Photo struct {
	ID        string `json:"id"`
	URI       string `json:"uri"`
	Timestamp int64  `json:"timestamp"`
	Caption   string `json:"caption,omitempty"`
}

// GeoLocation is a captured GPS fix with an optional reverse-geocoded
// address. Timestamps are unix milliseconds, as everywhere in this package.
type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
	Timestamp int64   `json:"timestamp"`
}

type TechnicianLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
	Timestamp int64   `json:"timestamp"`
	IsOnline  bool    `json:"isOnline"`
}

// AppointmentSlot is the scheduled-appointment sub-record embedded in an
// Intervention, distinct from the standalone Appointment calendar entry.
type AppointmentSlot struct {
	Date        int64  `json:"date"`
	ConfirmedAt int64  `json:"confirmedAt"`
	Notes       string `json:"notes"`
}

type Documentation struct {
	Photos      []Photo `json:"photos"`
	Notes       string  `json:"notes"`
	StartedAt   *int64  `json:"startedAt,omitempty"`
	CompletedAt *int64  `json:"completedAt,omitempty"`
}

/// Intervention is a unit of field work. Invariant: CompanyID and
// CompanyName are both nil or both set, and the same holds for
// TechnicianID and TechnicianName.
type Intervention struct {
	ID     string     `json:"id"`
	Number string     `json:"number"`
	Client ClientInfo `json:"client"`

	CompanyID   *string `json:"companyId"`
	CompanyName *string `json:"companyName"`

	TechnicianID   *string `json:"technicianId"`
	TechnicianName *string `json:"technicianName"`

	Category    InterventionCategory `json:"category"`
	Description string               `json:"description"`
	Priority    Priority             `json:"priority"`

	AssignedAt int64  `json:"assignedAt"`
	AssignedBy string `json:"assignedBy"`

	Appointment *AppointmentSlot `json:"appointment,omitempty"`
	Location    *GeoLocation     `json:"location,omitempty"`

	Documentation Documentation `json:"documentation"`

	Status InterventionStatus `json:"status"`

	ClosedAt    *int64 `json:"closedAt,omitempty"`
	ClosedBy    string `json:"closedBy,omitempty"`
	EmailSentTo string `json:"emailSentTo,omitempty"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// Assigned reports whether the intervention carries a company assignment.
func (i Intervention) Assigned() bool {
	return i.CompanyID != nil
}

type AppointmentType string

const (
	AppointmentTypeIntervention AppointmentType = "intervento"
	AppointmentTypeSiteSurvey   AppointmentType = "sopralluogo"
	AppointmentTypeInstallation AppointmentType = "installazione"
	AppointmentTypeMaintenance  AppointmentType = "manutenzione"
)

// Appointment is a calendar entry, optionally linked to an Intervention.
// NotifyBefore is the reminder lead time in minutes; nil means no reminder.
type Appointment struct {
	ID             string          `json:"id"`
	Type           AppointmentType `json:"type"`
	InterventionID string          `json:"interventionId,omitempty"`
	ClientName     string          `json:"clientName"`
	Address        string          `json:"address"`
	Date           int64           `json:"date"`
	Notes          string          `json:"notes"`
	NotifyBefore   *int            `json:"notifyBefore"`
}

// Company is an installation firm. Username/Password are the paired login
// credentials the backend issues for the firm's account.
type Company struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Username  string `json:"username,omitempty"`
	Password  string `json:"password,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

type User struct {
	ID           string              `json:"id"`
	Username     string              `json:"username"`
	Password     string              `json:"password,omitempty"`
	Role         Role                `json:"role"`
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	Phone        string              `json:"phone,omitempty"`
	CompanyID    *string             `json:"companyId"`
	CompanyName  *string             `json:"companyName"`
	LastLocation *TechnicianLocation `json:"lastLocation,omitempty"`
	CreatedAt    int64               `json:"createdAt"`
}

// Actor is the currently authenticated identity, as returned by the remote
// authentication endpoint.
type Actor struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	Role        Role    `json:"role"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	CompanyID   *string `json:"companyId"`
	CompanyName *string `json:"companyName"`
}

// StrPtr is a convenience for building the optional paired reference
// fields above.
func StrPtr(s string) *string { return &s }
