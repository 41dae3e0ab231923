package aws_handler

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
)

// AWSHandler groups the AWS clients used at startup. Only Secrets Manager
// is needed to resolve database credentials.
type AWSHandler struct {
	Secrets *SecretManager
}

func NewAWSHandler(region string) (*AWSHandler, error) {
	cfg := aws.NewConfig()
	if region != "" {
		cfg = cfg.WithRegion(region)
	}
	sess, err := session.NewSessionWithOptions(session.Options{
		Config:            *cfg,
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, err
	}

	return &AWSHandler{
		Secrets: NewSecretManager(secretsmanager.New(sess)),
	}, nil
}
