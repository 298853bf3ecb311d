package config

type FirebaseConfig struct {
	ProjectID       string `yaml:"project_id"`
	CredentialsFile string `yaml:"credentials_file"`
	// Collections holding pricing documents. Overridable for staging copies.
	ServicesCollection string `yaml:"services_collection"`
	PolicyCollection   string `yaml:"policy_collection"`
}

func loadFirebaseConfig() *FirebaseConfig {
	return &FirebaseConfig{
		ProjectID:          getEnv("FIREBASE_PROJECT_ID", ""),
		CredentialsFile:    getEnv("FIREBASE_CREDENTIALS_FILE", ""),
		ServicesCollection: getEnv("FIRESTORE_SERVICES_COLLECTION", "services"),
		PolicyCollection:   getEnv("FIRESTORE_POLICY_COLLECTION", "pricing_config"),
	}
}
