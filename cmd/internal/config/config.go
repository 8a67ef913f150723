package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/gommon/log"
)

const EnvVarsPrefix = "/clientsapi/prod/"

type Config struct {
	Env       string `envconfig:"GO_ENV" default:"development"`
	Addr      string `envconfig:"APP_ADDR" default:":7070"`
	BodyLimit string `envconfig:"APP_BODY_LIMIT" default:"1M"`
	DBPath    string `envconfig:"DB_PATH" default:"database.db"`

	DaDataAPIKey  string `envconfig:"DADATA_API_KEY"`
	DaDataBaseURL string `envconfig:"DADATA_BASE_URL"`
	// Seconds.
	DaDataTimeout int `envconfig:"DADATA_API_TIMEOUT" default:"10"`

	AWSRegion string `envconfig:"AWS_REGION" default:"us-east-2"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if cfg.DaDataTimeout <= 0 {
		return nil, fmt.Errorf("DADATA_API_TIMEOUT must be positive, got %d", cfg.DaDataTimeout)
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c != nil && c.Env == "production"
}

func (c *Config) LookupTimeout() time.Duration {
	return time.Duration(c.DaDataTimeout) * time.Second
}

// LoadEnv fills the process environment before LoadConfig runs: from AWS SSM
// Parameter Store in production, from an optional .env file otherwise.
func LoadEnv(ctx context.Context) error {
	if os.Getenv("GO_ENV") != "production" {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}

	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-2"
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %w", err)
	}
	return ExportParameters(ctx, ssm.NewFromConfig(cfg), EnvVarsPrefix)
}

// ExportParameters sets one environment variable per SSM parameter under
// prefix, named after the parameter path with the prefix removed.
func ExportParameters(ctx context.Context, client ssm.GetParametersByPathAPIClient, prefix string) error {
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(prefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})

	count := 0
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("unable to load prod environment: %w", err)
		}

		for _, param := range out.Parameters {
			key := strings.TrimPrefix(aws.ToString(param.Name), prefix)
			if err = os.Setenv(key, aws.ToString(param.Value)); err != nil {
				return fmt.Errorf("unable to set environment variable %q: %w", key, err)
			}
			count++
		}
	}

	log.Debugf("loaded %d prod environment variables", count)
	return nil
}
