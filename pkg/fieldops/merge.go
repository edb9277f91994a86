package fieldops

import (
	"context"
	"encoding/json"
	"reflect"

	"go.uber.org/zap"
	"solartech.app/field-service/pkg/cache"
	"solartech.app/field-service/pkg/common"
	"solartech.app/field-service/pkg/models"
)

// mergeByID reconciles a cached collection with the baseline: a cached
// record whose identifier matches a baseline record replaces it wholly, a
// cached record with an unknown identifier is appended, and baseline
// records absent from the cache keep their baseline value. Last writer
// wins at record granularity; the cached writer always beats the baseline.
func mergeByID[T any](baseline map[string]T, cached []T, id func(T) string) map[string]T {
	merged := make(map[string]T, len(baseline)+len(cached))
	for k, v := range baseline {
		merged[k] = v
	}
	for _, record := range cached {
		merged[id(record)] = record
	}
	return merged
}

// diffAgainstBaseline returns the records that differ from their baseline
// version, or have no baseline version at all. Whole-record comparison.
func diffAgainstBaseline[T any](current, baseline map[string]T) []T {
	var changed []T
	for k, v := range current {
		base, ok := baseline[k]
		if !ok || !reflect.DeepEqual(v, base) {
			changed = append(changed, v)
		}
	}
	return changed
}

// Load layers the locally persisted cache over the seeded baseline.
// Appointments have no cache key and stay baseline-only.
func (e *Engine) Load(ctx context.Context) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFieldCore,
		zap.String(common.LoggerFieldFSCategory, common.LoggerCategoryMerge),
	)

	e.mu.Lock()
	defer e.mu.Unlock()

	cachedInterventions, err := loadCached[models.Intervention](ctx, e.Store, cache.KeyInterventions)
	if err != nil {
		return err
	}
	if len(cachedInterventions) > 0 {
		e.interventions = mergeByID(e.baselineInterventions, cachedInterventions, interventionID)
		logger.Info("Merged cached interventions",
			zap.Int("cached", len(cachedInterventions)),
			zap.Int("merged", len(e.interventions)))
	}

	cachedCompanies, err := loadCached[models.Company](ctx, e.Store, cache.KeyCompanies)
	if err != nil {
		return err
	}
	if len(cachedCompanies) > 0 {
		e.companies = mergeByID(e.baselineCompanies, cachedCompanies, companyID)
		logger.Info("Merged cached companies",
			zap.Int("cached", len(cachedCompanies)),
			zap.Int("merged", len(e.companies)))
	}

	cachedUsers, err := loadCached[models.User](ctx, e.Store, cache.KeyUsers)
	if err != nil {
		return err
	}
	if len(cachedUsers) > 0 {
		e.users = mergeByID(e.baselineUsers, cachedUsers, userID)
		logger.Info("Merged cached users",
			zap.Int("cached", len(cachedUsers)),
			zap.Int("merged", len(e.users)))
	}

	return nil
}

func loadCached[T any](ctx context.Context, store cache.Store, key string) ([]T, error) {
	value, found, err := store.Get(ctx, key)
	if err != nil || !found {
		return nil, err
	}
	var records []T
	if err := json.Unmarshal(value, &records); err != nil {
		// a corrupt cache entry is dropped rather than wedging startup
		common.GetLogger().Warn("Dropping unreadable cache entry",
			zap.String("key", key), zap.Error(err))
		return nil, nil
	}
	return records, nil
}

// persistCollection writes the records that differ from baseline under the
// collection key, or removes the key when nothing differs. Write failures
// are logged and swallowed: the in-memory mutation stands, so memory and
// disk may diverge until the next successful write.
func persistCollection[T any](ctx context.Context, store cache.Store, key string, current, baseline map[string]T) {
	logger := common.GetLoggerWith(
		common.LoggerNameFieldCore,
		zap.String(common.LoggerFieldFSCategory, common.LoggerCategoryMerge),
	)

	changed := diffAgainstBaseline(current, baseline)
	if len(changed) == 0 {
		if err := store.Remove(ctx, key); err != nil {
			logger.Warn("Failed to clear cache entry", zap.String("key", key), zap.Error(err))
		}
		return
	}

	value, err := json.Marshal(changed)
	if err != nil {
		logger.Warn("Failed to encode cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := store.Set(ctx, key, value); err != nil {
		logger.Warn("Failed to write cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	logger.Info("Persisted changed records", zap.String("key", key), zap.Int("count", len(changed)))
}

// callers hold e.mu

func (e *Engine) persistInterventions(ctx context.Context) {
	persistCollection(ctx, e.Store, cache.KeyInterventions, e.interventions, e.baselineInterventions)
}

func (e *Engine) persistCompanies(ctx context.Context) {
	persistCollection(ctx, e.Store, cache.KeyCompanies, e.companies, e.baselineCompanies)
}

func (e *Engine) persistUsers(ctx context.Context) {
	persistCollection(ctx, e.Store, cache.KeyUsers, e.users, e.baselineUsers)
}
