package config

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// New reads the configuration from the environment. All variables are
// required; every missing one is reported in a single error so a broken
// deployment fails fast with the full list.
func New() (Config, error) {
	var missing []string
	requireEnv := func(key string) string {
		value, exists := os.LookupEnv(key)
		if !exists {
			missing = append(missing, key)
		}
		return value
	}
	requireEnvAsInt := func(key string) int {
		value, err := strconv.Atoi(requireEnv(key))
		if err != nil {
			missing = append(missing, key+" (not an integer)")
		}
		return value
	}

	config := Config{
		Environment: requireEnv("ENVIRONMENT"),
		Hostname:    requireEnv("HOSTNAME"),
		BasePath:    requireEnv("BASE_PATH"),
		UIURL:       requireEnv("UI_URL"),
		Postgresql: Postgresql{
			Host:         requireEnv("DATABASE_HOST"),
			Port:         requireEnvAsInt("DATABASE_PORT"),
			Username:     requireEnv("DATABASE_USERNAME"),
			Password:     requireEnv("DATABASE_PASSWORD"),
			DatabaseName: requireEnv("DATABASE_NAME"),
		},
		Redis: Redis{
			Host: requireEnv("REDIS_HOST"),
			Port: requireEnvAsInt("REDIS_PORT"),
		},
		SMTP: SMTP{
			Host:     requireEnv("SMTP_HOST"),
			Port:     requireEnvAsInt("SMTP_PORT"),
			Username: requireEnv("SMTP_USERNAME"),
			Password: requireEnv("SMTP_PASSWORD"),
		},
		Authentication: Authentication{
			PrivateKey:                    requireEnv("PRIVATE_KEY"),
			RefreshTokenSecretKey:         requireEnv("REFRESH_TOKEN_SECRET_KEY"),
			AccessTokenExpirationSeconds:  requireEnvAsInt("ACCESS_TOKEN_EXPIRATION_IN_SECONDS"),
			RefreshTokenExpirationSeconds: requireEnvAsInt("REFRESH_TOKEN_EXPIRATION_IN_SECONDS"),
		},
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing environment variables: %s", strings.Join(missing, ", "))
	}

	return config, nil
}

type Config struct {
	Environment    string
	Hostname       string
	BasePath       string
	UIURL          string
	Postgresql     Postgresql
	Redis          Redis
	SMTP           SMTP
	Authentication Authentication
}

type Postgresql struct {
	Host         string
	Port         int
	Username     string
	Password     string
	DatabaseName string
}

type Redis struct {
	Host string
	Port int
}

type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
}

type Authentication struct {
	PrivateKey                    string
	RefreshTokenSecretKey         string
	AccessTokenExpirationSeconds  int
	RefreshTokenExpirationSeconds int
}

// GetPrivateKey parses the PEM encoded RSA key used to sign access tokens.
func (a Authentication) GetPrivateKey() (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(a.PrivateKey))
	if block == nil {
		return nil, errors.New("failed to decode PEM block containing private key")
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %v", err)
	}

	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("private key is not an RSA key")
	}
	return rsaKey, nil
}
