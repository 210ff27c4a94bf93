// Package dynamo provides DynamoDB-backed persistence for task batches.
package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"example.com/tasktracker/internal/domain"
)

// PutItemAPI exposes the minimal DynamoDB client surface the store needs.
type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Store writes batches to a single DynamoDB table keyed by date
// (partition) and timestamp (sort). It owns no state beyond the client
// handle and is safe for concurrent use.
type Store struct {
	client PutItemAPI
	table  string
}

// NewStore constructs a Store over the given client and table name.
func NewStore(client PutItemAPI, table string) *Store {
	return &Store{client: client, table: table}
}

// Put writes the batch unconditionally. A second write to the same
// (date, timestamp) pair replaces the first; that last-write-wins
// behaviour comes from PutItem itself, not from application logic.
// Failures propagate to the caller untouched beyond context wrapping.
func (s *Store) Put(ctx context.Context, batch domain.Batch) error {
	item, err := attributevalue.MarshalMap(batch)
	if err != nil {
		return fmt.Errorf("marshal batch %s/%s: %w", batch.Date, batch.Timestamp, err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put batch %s/%s: %w", batch.Date, batch.Timestamp, err)
	}
	return nil
}
