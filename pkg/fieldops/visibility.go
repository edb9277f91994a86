package fieldops

import (
	"sort"

	"solartech.app/field-service/pkg/common"
	"solartech.app/field-service/pkg/models"
)

// VisibleInterventions computes the subset of interventions the actor may
// observe. Pure function of (actor, collection):
//   - master sees everything
//   - ditta sees interventions assigned to its company
//   - tecnico sees its company's interventions that are either claimed by
//     it or unclaimed (nil technician)
//   - no actor sees nothing
func VisibleInterventions(actor *models.Actor, interventions []models.Intervention) []models.Intervention {
	if actor == nil {
		return []models.Intervention{}
	}
	switch actor.Role {
	case models.RoleMaster:
		return interventions
	case models.RoleCompany:
		return common.Filter(interventions, func(i models.Intervention) bool {
			return sameRef(i.CompanyID, actor.CompanyID)
		})
	case models.RoleTechnician:
		return common.Filter(interventions, func(i models.Intervention) bool {
			return sameRef(i.CompanyID, actor.CompanyID) &&
				(i.TechnicianID == nil || *i.TechnicianID == actor.ID)
		})
	default:
		return []models.Intervention{}
	}
}

// VisibleAppointments keeps appointments whose linked intervention is in
// the actor's visible set, plus appointments with no link at all.
func VisibleAppointments(actor *models.Actor, appointments []models.Appointment, visibleInterventions []models.Intervention) []models.Appointment {
	if actor == nil {
		return []models.Appointment{}
	}
	visibleIDs := make(map[string]struct{}, len(visibleInterventions))
	for _, i := range visibleInterventions {
		visibleIDs[i.ID] = struct{}{}
	}
	return common.Filter(appointments, func(a models.Appointment) bool {
		if a.InterventionID == "" {
			return true
		}
		_, ok := visibleIDs[a.InterventionID]
		return ok
	})
}

func VisibleCompanies(actor *models.Actor, companies []models.Company) []models.Company {
	if actor == nil {
		return []models.Company{}
	}
	switch actor.Role {
	case models.RoleMaster:
		return companies
	case models.RoleCompany:
		return common.Filter(companies, func(c models.Company) bool {
			return actor.CompanyID != nil && c.ID == *actor.CompanyID
		})
	default:
		return []models.Company{}
	}
}

func VisibleUsers(actor *models.Actor, users []models.User) []models.User {
	if actor == nil {
		return []models.User{}
	}
	switch actor.Role {
	case models.RoleMaster:
		return users
	case models.RoleCompany:
		return common.Filter(users, func(u models.User) bool {
			return sameRef(u.CompanyID, actor.CompanyID)
		})
	default:
		return []models.User{}
	}
}

func sameRef(a, b *string) bool {
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}

// snapshot list accessors; callers hold at least e.mu.RLock

func (e *Engine) interventionList() []models.Intervention {
	list := make([]models.Intervention, 0, len(e.interventions))
	for _, i := range e.interventions {
		list = append(list, i)
	}
	sort.Slice(list, func(a, b int) bool {
		if list[a].CreatedAt != list[b].CreatedAt {
			return list[a].CreatedAt > list[b].CreatedAt
		}
		return list[a].ID < list[b].ID
	})
	return list
}

func (e *Engine) appointmentList() []models.Appointment {
	list := make([]models.Appointment, 0, len(e.appointments))
	for _, a := range e.appointments {
		list = append(list, a)
	}
	sort.Slice(list, func(a, b int) bool {
		if list[a].Date != list[b].Date {
			return list[a].Date < list[b].Date
		}
		return list[a].ID < list[b].ID
	})
	return list
}

func (e *Engine) companyList() []models.Company {
	list := make([]models.Company, 0, len(e.companies))
	for _, c := range e.companies {
		list = append(list, c)
	}
	sort.Slice(list, func(a, b int) bool { return list[a].CreatedAt < list[b].CreatedAt })
	return list
}

func (e *Engine) userList() []models.User {
	list := make([]models.User, 0, len(e.users))
	for _, u := range e.users {
		list = append(list, u)
	}
	sort.Slice(list, func(a, b int) bool { return list[a].CreatedAt < list[b].CreatedAt })
	return list
}
