//go:build integration

package dynamo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"example.com/tasktracker/internal/domain"
)

const testTable = "TaskTrackerTable"

func TestPutOverwritesSameKeyEndToEnd(t *testing.T) {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "amazon/dynamodb-local:2.5.2",
			ExposedPorts: []string{"8000/tcp"},
			WaitingFor:   wait.ForListeningPort("8000/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "8000/tcp")
	require.NoError(t, err)
	endpoint := fmt.Sprintf("http://%s:%s", host, port.Port())

	client := dynamodb.NewFromConfig(aws.Config{
		Region:      "us-east-1",
		Credentials: credentials.NewStaticCredentialsProvider("test", "test", ""),
	}, func(o *dynamodb.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})

	createTable(t, ctx, client)

	store := NewStore(client, testTable)

	first := domain.Batch{
		Date:      "2026-02-15",
		Timestamp: "2026-02-15T10:30:00Z",
		CreatedAt: "2026-02-15T10:30:01Z",
		Tasks:     []domain.Task{{Name: "first", Status: domain.StatusAssigned}},
		TaskCount: 1,
		Summary:   domain.Summarize([]domain.Task{{Status: domain.StatusAssigned}}),
	}
	second := first
	second.CreatedAt = "2026-02-15T11:00:00Z"
	second.Tasks = []domain.Task{
		{Name: "second-a", Status: domain.StatusCompleted},
		{Name: "second-b", Status: domain.StatusCompleted},
	}
	second.TaskCount = 2
	second.Summary = domain.Summarize(second.Tasks)

	require.NoError(t, store.Put(ctx, first))
	require.NoError(t, store.Put(ctx, second))

	out, err := client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(testTable),
		Key: map[string]types.AttributeValue{
			"date":      &types.AttributeValueMemberS{Value: "2026-02-15"},
			"timestamp": &types.AttributeValueMemberS{Value: "2026-02-15T10:30:00Z"},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out.Item)

	taskCount, ok := out.Item["taskCount"].(*types.AttributeValueMemberN)
	require.True(t, ok)
	require.Equal(t, "2", taskCount.Value)

	createdAt, ok := out.Item["createdAt"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	require.Equal(t, "2026-02-15T11:00:00Z", createdAt.Value)
}

func createTable(t *testing.T, ctx context.Context, client *dynamodb.Client) {
	t.Helper()

	_, err := client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(testTable),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("date"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("timestamp"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("date"), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String("timestamp"), KeyType: types.KeyTypeRange},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	require.NoError(t, err)

	waiter := dynamodb.NewTableExistsWaiter(client)
	require.NoError(t, waiter.Wait(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(testTable),
	}, time.Minute))
}
