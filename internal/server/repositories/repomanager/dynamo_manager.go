package repomanager

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	sc "github.com/goalboard/authserver/internal/server/config"
	"github.com/goalboard/authserver/internal/server/repositories/sessions"
	"github.com/goalboard/authserver/internal/server/repositories/users"
)

type DynamoRepositoryManager struct {
	users    users.Repository
	sessions sessions.Repository
}

func (m *DynamoRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *DynamoRepositoryManager) Sessions() sessions.Repository {
	return m.sessions
}

// NewDynamoRepositoryManager builds the DynamoDB-backed store. Static
// credentials are only injected when both halves of the pair are
// configured; otherwise the SDK falls back to its default chain. A base
// endpoint override supports local DynamoDB.
func NewDynamoRepositoryManager(ctx context.Context, cfg *sc.Config) (RepositoryManager, error) {

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("aws config error: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoBaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoBaseEndpoint)
		}
	})

	return &DynamoRepositoryManager{
		users:    users.NewDynamoRepository(client, cfg.UsersTable),
		sessions: sessions.NewDynamoRepository(client, cfg.SessionsTable),
	}, nil
}
