package push

// Config holds Firebase Cloud Messaging configuration. Exactly one
// credentials source must be set: a raw service-account JSON blob or a path
// to the JSON file on disk.
type Config struct {
	ProjectID        string `env:"FCM_PROJECT_ID,required"`
	CredentialsJSON  string `env:"FCM_CREDENTIALS_JSON"`
	CredentialsFile  string `env:"FCM_CREDENTIALS_FILE"`
	DryRun           bool   `env:"FCM_DRY_RUN" envDefault:"false"`
	AndroidChannelID string `env:"FCM_ANDROID_CHANNEL_ID" envDefault:"default"`
}
