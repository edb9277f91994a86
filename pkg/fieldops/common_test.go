package fieldops

import (
	"context"
	"testing"

	"solartech.app/field-service/pkg/cache"
	"solartech.app/field-service/pkg/common"
	"solartech.app/field-service/pkg/db"
	"solartech.app/field-service/pkg/models"
	_ "solartech.app/field-service/pkg/testing"
)

// newTestStore hands out the shared in-memory sqlite store with every
// collection key wiped, so tests do not bleed into each other.
func newTestStore(t *testing.T) cache.Store {
	t.Helper()

	store := cache.NewSqliteStore(*db.GetInstance(db.UseMemorySqliteDialector()))
	ctx := context.Background()
	keys := []string{
		cache.KeyInterventions,
		cache.KeyCompanies,
		cache.KeyUsers,
		cache.KeyAuthToken,
		cache.KeyAuthUser,
	}
	for _, key := range keys {
		if err := store.Remove(ctx, key); err != nil {
			t.Fatalf("failed to reset cache key %s: %v", key, err)
		}
	}
	return store
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	common.SetTestLoggerNop()
	return NewEngine(newTestStore(t), DefaultBaseline())
}

func masterActor() *models.Actor {
	return &models.Actor{
		ID:       seedUserMaster,
		Username: "gbd",
		Role:     models.RoleMaster,
		Name:     "GBD Amministratore",
	}
}

func gbdActor() *models.Actor {
	return &models.Actor{
		ID:          seedUserDitta,
		Username:    "ditta",
		Role:        models.RoleCompany,
		Name:        "GBD B&A",
		CompanyID:   models.StrPtr(seedCompanyGBD),
		CompanyName: models.StrPtr("GBD B&A S.r.l."),
	}
}

func solarProActor() *models.Actor {
	return &models.Actor{
		ID:          seedUserSolarPro,
		Username:    "solarpro",
		Role:        models.RoleCompany,
		Name:        "Solar Pro",
		CompanyID:   models.StrPtr(seedCompanySolarPro),
		CompanyName: models.StrPtr("Solar Pro S.r.l."),
	}
}

func alexActor() *models.Actor {
	return &models.Actor{
		ID:          seedUserAlex,
		Username:    "alex",
		Role:        models.RoleTechnician,
		Name:        "Alessandro Rossi",
		CompanyID:   models.StrPtr(seedCompanyGBD),
		CompanyName: models.StrPtr("GBD B&A S.r.l."),
	}
}

func interventionIDs(interventions []models.Intervention) map[string]bool {
	ids := make(map[string]bool, len(interventions))
	for _, i := range interventions {
		ids[i.ID] = true
	}
	return ids
}
