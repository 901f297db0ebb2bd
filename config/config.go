package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Environment keys the portal reads at runtime.
const (
	MongoConnStringKey  = "MONGODB_CONNSTRING"
	SignKey             = "SIGN"
	AdminPasswordKey    = "ADMIN_PASSWORD_HASH"
	CloudinaryCloudKey  = "CLOUDINARY_CLOUD_NAME"
	CloudinaryPresetKey = "CLOUDINARY_UPLOAD_PRESET"
	ProxyHeaderKey      = "PROXY_HEADER"
)

const DatabaseName = "tech-blitz"

// LoadEnv pulls a local .env into the process environment. A missing
// file is fine, deployments set real env vars instead.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using process environment")
	}
}

func GetSecret(key string) (string, error) {
	val, exist := os.LookupEnv(key)
	if exist {
		return val, nil
	}
	return "", fmt.Errorf("no env variable with key %v", key)
}
