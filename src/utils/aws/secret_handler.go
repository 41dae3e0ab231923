package aws_handler

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/aws/aws-sdk-go/service/secretsmanager/secretsmanageriface"
)

// SecretManager reads string secrets and remembers them for the life of
// the process.
type SecretManager struct {
	svc secretsmanageriface.SecretsManagerAPI

	mu     sync.Mutex
	values map[string]string
}

func NewSecretManager(svc secretsmanageriface.SecretsManagerAPI) *SecretManager {
	return &SecretManager{svc: svc, values: make(map[string]string)}
}

// GetSecretValue returns the string value of secretID. Binary secrets are
// rejected.
func (s *SecretManager) GetSecretValue(ctx context.Context, secretID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.values[secretID]; ok {
		return v, nil
	}

	result, err := s.svc.GetSecretValueWithContext(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		return "", fmt.Errorf("get secret %s: %w", secretID, err)
	}
	if result.SecretString == nil {
		return "", fmt.Errorf("secret %s has no string value", secretID)
	}

	s.values[secretID] = *result.SecretString
	return *result.SecretString, nil
}
