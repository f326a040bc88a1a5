package database

import (
	"context"
	"testing"

	appconfig "sparkle_shine/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDynamoDBConfig_Local(t *testing.T) {
	cfg := appconfig.AWSConfig{
		Region:           "us-east-1",
		AccessKeyID:      "local",
		SecretAccessKey:  "local",
		DynamoDBEndpoint: "http://localhost:8000",
	}

	awsCfg, err := NewDynamoDBConfig(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", awsCfg.Region)

	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)

	var o dynamodb.Options
	for _, fn := range endpointOptions(cfg) {
		fn(&o)
	}
	assert.Equal(t, "http://localhost:8000", aws.ToString(o.BaseEndpoint))
}

func TestEndpointOptions_Remote(t *testing.T) {
	assert.Empty(t, endpointOptions(appconfig.AWSConfig{Region: "us-east-1"}))
}
