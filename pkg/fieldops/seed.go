package fieldops

import (
	"time"

	"solartech.app/field-service/pkg/models"
)

// Baseline is the seeded authoritative snapshot the cache is merged over.
type Baseline struct {
	Interventions []models.Intervention
	Appointments  []models.Appointment
	Companies     []models.Company
	Users         []models.User
}

const (
	seedCompanyGBD      = "11111111-1111-1111-1111-111111111111"
	seedCompanySolarPro = "22222222-2222-2222-2222-222222222222"

	seedUserMaster   = "17ac45dc-2e12-4226-90f5-49db2d8ac92b"
	seedUserDitta    = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	seedUserSolarPro = "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
	seedUserAlex     = "cccccccc-cccc-cccc-cccc-cccccccccccc"
	seedUserBillo    = "dddddddd-dddd-dddd-dddd-dddddddddddd"
	seedUserLuca     = "eeeeeeee-eeee-eeee-eeee-eeeeeeeeeeee"
)

const (
	day  = int64(24 * time.Hour / time.Millisecond)
	hour = int64(time.Hour / time.Millisecond)
)

// DefaultBaseline builds the demo fixture set. Timestamps are laid out
// relative to process start so the demo data always looks current.
func DefaultBaseline() Baseline {
	now := time.Now().UnixMilli()

	companies := []models.Company{
		{
			ID:        seedCompanyGBD,
			Name:      "GBD B&A S.r.l.",
			Address:   "Via Milano 123, Milano",
			Phone:     "+39 02 12345678",
			Email:     "info@gbd-ba.it",
			Username:  "ditta",
			Password:  "ditta123",
			CreatedAt: now - day*30,
		},
		{
			ID:        seedCompanySolarPro,
			Name:      "Solar Pro S.r.l.",
			Address:   "Via Roma 45, Roma",
			Phone:     "+39 06 87654321",
			Email:     "info@solarpro.it",
			Username:  "solarpro",
			Password:  "solar123",
			CreatedAt: now - day*20,
		},
	}

	users := []models.User{
		{
			ID:        seedUserMaster,
			Username:  "gbd",
			Password:  "password",
			Role:      models.RoleMaster,
			Name:      "GBD Amministratore",
			Email:     "admin@gbd.it",
			Phone:     "+39 02 00000000",
			CreatedAt: now - day*60,
		},
		{
			ID:          seedUserDitta,
			Username:    "ditta",
			Password:    "password",
			Role:        models.RoleCompany,
			Name:        "GBD B&A",
			Email:       "info@gbd-ba.it",
			Phone:       "+39 02 12345678",
			CompanyID:   models.StrPtr(seedCompanyGBD),
			CompanyName: models.StrPtr("GBD B&A S.r.l."),
			CreatedAt:   now - day*30,
		},
		{
			ID:          seedUserSolarPro,
			Username:    "solarpro",
			Password:    "password",
			Role:        models.RoleCompany,
			Name:        "Solar Pro",
			Email:       "info@solarpro.it",
			Phone:       "+39 06 87654321",
			CompanyID:   models.StrPtr(seedCompanySolarPro),
			CompanyName: models.StrPtr("Solar Pro S.r.l."),
			CreatedAt:   now - day*20,
		},
		{
			ID:          seedUserAlex,
			Username:    "alex",
			Password:    "password",
			Role:        models.RoleTechnician,
			Name:        "Alessandro Rossi",
			Email:       "alex@gbd-ba.it",
			Phone:       "+39 333 1234567",
			CompanyID:   models.StrPtr(seedCompanyGBD),
			CompanyName: models.StrPtr("GBD B&A S.r.l."),
			LastLocation: &models.TechnicianLocation{
				Latitude:  45.4642,
				Longitude: 9.1900,
				Address:   "Via Roma 45, Milano",
				Timestamp: now - 5*60*1000,
				IsOnline:  true,
			},
			CreatedAt: now - day*25,
		},
		{
			ID:          seedUserBillo,
			Username:    "billo",
			Password:    "password",
			Role:        models.RoleTechnician,
			Name:        "Marco Bianchi",
			Email:       "billo@gbd-ba.it",
			Phone:       "+39 333 7654321",
			CompanyID:   models.StrPtr(seedCompanyGBD),
			CompanyName: models.StrPtr("GBD B&A S.r.l."),
			LastLocation: &models.TechnicianLocation{
				Latitude:  45.0703,
				Longitude: 7.6869,
				Address:   "Corso Vittorio Emanuele 120, Torino",
				Timestamp: now - 10*60*1000,
				IsOnline:  true,
			},
			CreatedAt: now - day*20,
		},
		{
			ID:          seedUserLuca,
			Username:    "luca",
			Password:    "password",
			Role:        models.RoleTechnician,
			Name:        "Luca Verdi",
			Email:       "luca@solarpro.it",
			Phone:       "+39 333 9988776",
			CompanyID:   models.StrPtr(seedCompanySolarPro),
			CompanyName: models.StrPtr("Solar Pro S.r.l."),
			LastLocation: &models.TechnicianLocation{
				Latitude:  41.9028,
				Longitude: 12.4964,
				Address:   "Via del Corso 15, Roma",
				Timestamp: now - 30*60*1000,
				IsOnline:  false,
			},
			CreatedAt: now - day*15,
		},
	}

	interventions := []models.Intervention{
		{
			ID:     "00000001-0001-0001-0001-000000000001",
			Number: "INT-2025-001",
			Client: models.ClientInfo{
				Name: "Giuseppe Verdi", Address: "Via Roma", CivicNumber: "45",
				CAP: "20121", City: "Milano", Phone: "+39 02 1234567", Email: "g.verdi@email.it",
			},
			CompanyID:      models.StrPtr(seedCompanyGBD),
			CompanyName:    models.StrPtr("GBD B&A S.r.l."),
			TechnicianID:   models.StrPtr(seedUserAlex),
			TechnicianName: models.StrPtr("Alessandro Rossi"),
			Category:       models.CategoryInstallation,
			Description:    "Installazione impianto fotovoltaico 6kW con sistema di accumulo.",
			Priority:       models.PriorityHigh,
			AssignedAt:     now - day*2,
			AssignedBy:     "Admin",
			Status:         models.StatusAssigned,
			Documentation:  models.Documentation{Photos: []models.Photo{}},
			CreatedAt:      now - day*2,
			UpdatedAt:      now - day*2,
		},
		{
			ID:     "00000002-0002-0002-0002-000000000002",
			Number: "INT-2025-002",
			Client: models.ClientInfo{
				Name: "Anna Bianchi", Address: "Corso Vittorio Emanuele", CivicNumber: "120",
				CAP: "10121", City: "Torino", Phone: "+39 011 9876543", Email: "a.bianchi@email.it",
			},
			CompanyID:      models.StrPtr(seedCompanyGBD),
			CompanyName:    models.StrPtr("GBD B&A S.r.l."),
			TechnicianID:   models.StrPtr(seedUserAlex),
			TechnicianName: models.StrPtr("Alessandro Rossi"),
			Category:       models.CategorySiteSurvey,
			Description:    "Sopralluogo per verifica stato impianto esistente.",
			Priority:       models.PriorityNormal,
			AssignedAt:     now - day,
			AssignedBy:     "Admin",
			Appointment: &models.AppointmentSlot{
				Date:        now + day*2 + hour*10,
				ConfirmedAt: now - hour*5,
				Notes:       "Cliente disponibile solo al mattino",
			},
			Status:        models.StatusAppointmentSet,
			Documentation: models.Documentation{Photos: []models.Photo{}},
			CreatedAt:     now - day,
			UpdatedAt:     now - hour*5,
		},
		{
			ID:     "00000003-0003-0003-0003-000000000003",
			Number: "INT-2025-003",
			Client: models.ClientInfo{
				Name: "Maria Russo", Address: "Via Garibaldi", CivicNumber: "33",
				CAP: "50123", City: "Firenze", Phone: "+39 055 1122334", Email: "m.russo@email.it",
			},
			CompanyID:      models.StrPtr(seedCompanyGBD),
			CompanyName:    models.StrPtr("GBD B&A S.r.l."),
			TechnicianID:   models.StrPtr(seedUserBillo),
			TechnicianName: models.StrPtr("Marco Bianchi"),
			Category:       models.CategoryInstallation,
			Description:    "Installazione sistema di accumulo aggiuntivo 5kWh.",
			Priority:       models.PriorityUrgent,
			AssignedAt:     now - hour*4,
			AssignedBy:     "Admin",
			Appointment: &models.AppointmentSlot{
				Date:        now + hour*2,
				ConfirmedAt: now - hour*2,
				Notes:       "Urgente - cliente senza produzione",
			},
			Status:        models.StatusAppointmentSet,
			Documentation: models.Documentation{Photos: []models.Photo{}},
			CreatedAt:     now - hour*4,
			UpdatedAt:     now - hour*2,
		},
		{
			ID:     "00000004-0004-0004-0004-000000000004",
			Number: "INT-2025-004",
			Client: models.ClientInfo{
				Name: "Luigi Esposito", Address: "Via Napoli", CivicNumber: "78",
				CAP: "80121", City: "Napoli", Phone: "+39 081 5554433", Email: "l.esposito@email.it",
			},
			CompanyID:     models.StrPtr(seedCompanyGBD),
			CompanyName:   models.StrPtr("GBD B&A S.r.l."),
			Category:      models.CategorySiteSurvey,
			Description:   "Sopralluogo per preventivo nuovo impianto 10kW - DA ASSEGNARE",
			Priority:      models.PriorityLow,
			AssignedAt:    now - day*3,
			AssignedBy:    "Admin",
			Status:        models.StatusAssigned,
			Documentation: models.Documentation{Photos: []models.Photo{}},
			CreatedAt:     now - day*3,
			UpdatedAt:     now - day*3,
		},
		{
			ID:     "00000005-0005-0005-0005-000000000005",
			Number: "INT-2025-005",
			Client: models.ClientInfo{
				Name: "Franco Colombo", Address: "Via Dante", CivicNumber: "15",
				CAP: "40121", City: "Bologna", Phone: "+39 051 9988776", Email: "f.colombo@email.it",
			},
			CompanyID:      models.StrPtr(seedCompanyGBD),
			CompanyName:    models.StrPtr("GBD B&A S.r.l."),
			TechnicianID:   models.StrPtr(seedUserAlex),
			TechnicianName: models.StrPtr("Alessandro Rossi"),
			Category:       models.CategoryInstallation,
			Description:    "Installazione impianto fotovoltaico 4kW residenziale.",
			Priority:       models.PriorityNormal,
			AssignedAt:     now - day*5,
			AssignedBy:     "Admin",
			Appointment: &models.AppointmentSlot{
				Date:        now - day,
				ConfirmedAt: now - day*3,
			},
			Location: &models.GeoLocation{
				Latitude:  44.4949,
				Longitude: 11.3426,
				Address:   "Via Dante 15, Bologna",
				Timestamp: now - day,
			},
			Status: models.StatusCompleted,
			Documentation: models.Documentation{
				Photos:      []models.Photo{},
				Notes:       "Installazione completata. Cliente soddisfatto.",
				StartedAt:   int64Ptr(now - day - hour),
				CompletedAt: int64Ptr(now - day),
			},
			CreatedAt: now - day*5,
			UpdatedAt: now - day,
		},
		{
			ID:     "00000006-0006-0006-0006-000000000006",
			Number: "INT-2025-006",
			Client: models.ClientInfo{
				Name: "Roberto Mancini", Address: "Via Venezia", CivicNumber: "22",
				CAP: "35121", City: "Padova", Phone: "+39 049 7766554", Email: "r.mancini@email.it",
			},
			CompanyID:      models.StrPtr(seedCompanyGBD),
			CompanyName:    models.StrPtr("GBD B&A S.r.l."),
			TechnicianID:   models.StrPtr(seedUserBillo),
			TechnicianName: models.StrPtr("Marco Bianchi"),
			Category:       models.CategoryMaintenance,
			Description:    "Manutenzione ordinaria impianto 8kW.",
			Priority:       models.PriorityNormal,
			AssignedAt:     now - day*2,
			AssignedBy:     "Admin",
			Status:         models.StatusAssigned,
			Documentation:  models.Documentation{Photos: []models.Photo{}},
			CreatedAt:      now - day*2,
			UpdatedAt:      now - day*2,
		},
		{
			ID:     "00000007-0007-0007-0007-000000000007",
			Number: "INT-2025-007",
			Client: models.ClientInfo{
				Name: "Giulia Ferrari", Address: "Via Milano", CivicNumber: "88",
				CAP: "24121", City: "Bergamo", Phone: "+39 035 4455667", Email: "g.ferrari@email.it",
			},
			CompanyID:      models.StrPtr(seedCompanySolarPro),
			CompanyName:    models.StrPtr("Solar Pro S.r.l."),
			TechnicianID:   models.StrPtr(seedUserLuca),
			TechnicianName: models.StrPtr("Luca Verdi"),
			Category:       models.CategoryMaintenance,
			Description:    "Sostituzione inverter guasto.",
			Priority:       models.PriorityHigh,
			AssignedAt:     now - day,
			AssignedBy:     "Admin",
			Appointment: &models.AppointmentSlot{
				Date:        now + day*3,
				ConfirmedAt: now - hour*2,
				Notes:       "Portare inverter sostitutivo",
			},
			Status:        models.StatusAppointmentSet,
			Documentation: models.Documentation{Photos: []models.Photo{}},
			CreatedAt:     now - day,
			UpdatedAt:     now - hour*2,
		},
		{
			ID:     "00000008-0008-0008-0008-000000000008",
			Number: "INT-2025-008",
			Client: models.ClientInfo{
				Name: "Stefano Conti", Address: "Via Verona", CivicNumber: "56",
				CAP: "37121", City: "Verona", Phone: "+39 045 8899001", Email: "s.conti@email.it",
			},
			CompanyID:      models.StrPtr(seedCompanySolarPro),
			CompanyName:    models.StrPtr("Solar Pro S.r.l."),
			TechnicianID:   models.StrPtr(seedUserLuca),
			TechnicianName: models.StrPtr("Luca Verdi"),
			Category:       models.CategoryMaintenance,
			Description:    "Controllo annuale sistema di accumulo.",
			Priority:       models.PriorityLow,
			AssignedAt:     now - day*4,
			AssignedBy:     "Admin",
			Status:         models.StatusCompleted,
			Location: &models.GeoLocation{
				Latitude:  45.4384,
				Longitude: 10.9916,
				Address:   "Via Verona 56, Verona",
				Timestamp: now - day*2,
			},
			Documentation: models.Documentation{
				Photos:      []models.Photo{},
				Notes:       "Batteria efficienza al 92%.",
				StartedAt:   int64Ptr(now - day*2 - hour),
				CompletedAt: int64Ptr(now - day*2),
			},
			CreatedAt: now - day*4,
			UpdatedAt: now - day*2,
		},
		{
			ID:     "00000009-0009-0009-0009-000000000009",
			Number: "INT-2025-009",
			Client: models.ClientInfo{
				Name: "Roberto Neri", Address: "Via Trieste", CivicNumber: "22",
				CAP: "34121", City: "Trieste", Phone: "+39 040 1122334", Email: "r.neri@email.it",
			},
			Category:      models.CategoryInstallation,
			Description:   "Nuovo impianto fotovoltaico 8kW - NON ASSEGNATO",
			Priority:      models.PriorityHigh,
			AssignedAt:    now - day,
			AssignedBy:    "Admin",
			Status:        models.StatusAssigned,
			Documentation: models.Documentation{Photos: []models.Photo{}},
			CreatedAt:     now - day,
			UpdatedAt:     now - day,
		},
		{
			ID:     "00000010-0010-0010-0010-000000000010",
			Number: "INT-2025-010",
			Client: models.ClientInfo{
				Name: "Paola Galli", Address: "Via Padova", CivicNumber: "88",
				CAP: "35121", City: "Padova", Phone: "+39 049 5566778", Email: "p.galli@email.it",
			},
			Category:      models.CategorySiteSurvey,
			Description:   "Sopralluogo per ampliamento impianto esistente - NON ASSEGNATO",
			Priority:      models.PriorityNormal,
			AssignedAt:    now - day*2,
			AssignedBy:    "Admin",
			Status:        models.StatusAssigned,
			Documentation: models.Documentation{Photos: []models.Photo{}},
			CreatedAt:     now - day*2,
			UpdatedAt:     now - day*2,
		},
		{
			ID:     "00000011-0011-0011-0011-000000000011",
			Number: "INT-2025-011",
			Client: models.ClientInfo{
				Name: "Fabio Moretti", Address: "Via Venezia", CivicNumber: "45",
				CAP: "30121", City: "Venezia", Phone: "+39 041 9988001", Email: "f.moretti@email.it",
			},
			Category:      models.CategoryMaintenance,
			Description:   "Manutenzione straordinaria inverter - NON ASSEGNATO",
			Priority:      models.PriorityUrgent,
			AssignedAt:    now - hour*6,
			AssignedBy:    "Admin",
			Status:        models.StatusAssigned,
			Documentation: models.Documentation{Photos: []models.Photo{}},
			CreatedAt:     now - hour*6,
			UpdatedAt:     now - hour*6,
		},
	}

	appointments := []models.Appointment{
		{
			ID:             "apt-001",
			Type:           models.AppointmentTypeIntervention,
			InterventionID: "00000002-0002-0002-0002-000000000002",
			ClientName:     "Anna Bianchi",
			Address:        "Corso Vittorio Emanuele 120, Torino",
			Date:           now + day*2 + hour*10,
			Notes:          "Cliente disponibile solo al mattino",
			NotifyBefore:   intPtr(60),
		},
		{
			ID:             "apt-002",
			Type:           models.AppointmentTypeIntervention,
			InterventionID: "00000003-0003-0003-0003-000000000003",
			ClientName:     "Maria Russo",
			Address:        "Via Garibaldi 33, Firenze",
			Date:           now + hour*2,
			Notes:          "Urgente",
			NotifyBefore:   intPtr(30),
		},
	}

	return Baseline{
		Interventions: interventions,
		Appointments:  appointments,
		Companies:     companies,
		Users:         users,
	}
}

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }
