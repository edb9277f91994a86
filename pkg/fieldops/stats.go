package fieldops

import (
	"sort"

	"solartech.app/field-service/pkg/common"
	"solartech.app/field-service/pkg/models"
)

type CompanyCount struct {
	CompanyID   string `json:"companyId"`
	CompanyName string `json:"companyName"`
	Count       int    `json:"count"`
}

// GlobalStats summarizes the full collections for the master dashboard,
// unscoped by visibility.
type GlobalStats struct {
	TotalInterventions int            `json:"totalInterventions"`
	ByStatus           map[string]int `json:"byStatus"`
	ByCompany          []CompanyCount `json:"byCompany"`
	TotalCompanies     int            `json:"totalCompanies"`
	TotalTechnicians   int            `json:"totalTechnicians"`
	UnassignedCount    int            `json:"unassignedCount"`
}

func (e *Engine) GlobalStats() GlobalStats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	byStatus := make(map[string]int)
	byCompanyMap := make(map[string]*CompanyCount)
	unassigned := 0

	for _, i := range e.interventions {
		byStatus[string(i.Status)]++
		if i.CompanyID == nil {
			unassigned++
			continue
		}
		entry, ok := byCompanyMap[*i.CompanyID]
		if !ok {
			name := "Senza Ditta"
			if i.CompanyName != nil {
				name = *i.CompanyName
			}
			entry = &CompanyCount{CompanyID: *i.CompanyID, CompanyName: name}
			byCompanyMap[*i.CompanyID] = entry
		}
		entry.Count++
	}

	byCompany := make([]CompanyCount, 0, len(byCompanyMap))
	for _, entry := range byCompanyMap {
		byCompany = append(byCompany, *entry)
	}
	sort.Slice(byCompany, func(a, b int) bool { return byCompany[a].CompanyID < byCompany[b].CompanyID })

	technicians := common.Reducer(e.userList(), func(acc int, u models.User) int {
		if u.Role == models.RoleTechnician {
			return acc + 1
		}
		return acc
	}, 0)

	return GlobalStats{
		TotalInterventions: len(e.interventions),
		ByStatus:           byStatus,
		ByCompany:          byCompany,
		TotalCompanies:     len(e.companies),
		TotalTechnicians:   technicians,
		UnassignedCount:    unassigned,
	}
}
