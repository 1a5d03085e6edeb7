package devops

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// Secrets is the YAML document kept in the SSM parameter. Empty fields
// leave the environment value in place.
type Secrets struct {
	SecretKey        string `yaml:"secret_key"`
	DSN              string `yaml:"dsn"`
	QuickBooksSecret string `yaml:"qb_client_secret"`
	SlackBotToken    string `yaml:"slack_bot_token"`
}

func ParseSecrets(data []byte) (*Secrets, error) {
	var parsed Secrets
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	return &parsed, nil
}

// LoadSecrets reads and decrypts the named SSM parameter.
func LoadSecrets(ctx context.Context, paramName string) (*Secrets, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := ssm.NewFromConfig(cfg)

	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(paramName),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get parameter: %w", err)
	}

	return ParseSecrets([]byte(aws.ToString(out.Parameter.Value)))
}
