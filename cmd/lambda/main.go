// Entry point for the managed gateway deployment. The runtime invokes
// the handler once per request; the DynamoDB client is built once per
// process lifetime and shared across invocations.
package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"example.com/tasktracker/internal/api"
	"example.com/tasktracker/internal/config"
	"example.com/tasktracker/internal/domain"
	"example.com/tasktracker/internal/persistence/dynamo"
)

func main() {
	cfg := config.Load()

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.Region))
	if err != nil {
		log.Fatalf("failed to load aws config: %v", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoEndpoint)
		}
	})

	store := dynamo.NewStore(client, cfg.TableName)
	service := domain.NewService(store)
	handler := api.NewHandler(service)

	lambda.Start(handler.Handle)
}
