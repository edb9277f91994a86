package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyFSDBType string = "FS_DB_TYPE"
	EnvKeyFSDbPath string = "FS_DB_PATH"

	EnvKeyFSHttpHostPort string = "FS_HTTP_HOST_PORT"
	EnvKeyFSRemoteAPIURL string = "FS_REMOTE_API_URL"

	EnvKeyFSDefaultRate  string = "FS_DEFAULT_RATE"
	EnvKeyFSDefaultBurst string = "FS_DEFAULT_BURST"

	LoggerNameFieldCore  string = "field_core"
	LoggerNameGateway    string = "gateway"
	LoggerNameRemoteAPI  string = "remote_api"
	LoggerNameSession    string = "session"
	LoggerNameReminder   string = "reminder"
	LoggerNameCacheStore string = "cache_store"

	LoggerFieldFSCategory       string = "category"
	LoggerCategoryMerge         string = "merge"
	LoggerCategoryRekey         string = "rekey"
	LoggerCategoryIntervention  string = "intervention"
	LoggerCategoryAppointment   string = "appointment"
	LoggerCategoryCompany       string = "company"
	LoggerCategoryUser          string = "user"
)
