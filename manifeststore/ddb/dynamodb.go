/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"

	"github.com/suparena/cmdproc/manifest"
	"github.com/suparena/cmdproc/manifeststore"
)

const (
	pkPrefix = "MANIFEST#"
	sortKey  = "MANIFEST"
)

// Store implements manifeststore.Store on top of an AWS DynamoDB table.
// Manifests live under PK "MANIFEST#<name>" with a fixed SK, so a single
// shared table can hold the command surfaces of an entire fleet.
type Store struct {
	client    *sdk.Client
	tableName string
}

// record is the DynamoDB shape of a manifest. Timestamps are stored as
// RFC 3339 strings so items stay readable in the console.
type record struct {
	PK          string          `json:"PK"`
	SK          string          `json:"SK"`
	Name        string          `json:"Name"`
	MaxCommands int             `json:"MaxCommands"`
	MaxHelpLen  int             `json:"MaxHelpLen"`
	Commands    []recordCommand `json:"Commands"`
	UpdatedAt   string          `json:"UpdatedAt,omitempty"`
}

type recordCommand struct {
	Name string `json:"Name"`
	Help string `json:"Help,omitempty"`
}

// NewClient initializes a DynamoDB client using static AWS credentials.
func NewClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return sdk.NewFromConfig(cfg), nil
}

// New constructs a DynamoDB-backed manifest store.
func New(awsAccessKey, awsSecretKey, awsRegion, tableName string) (*Store, error) {
	client, err := NewClient(awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return &Store{client: client, tableName: tableName}, nil
}

// Get retrieves the manifest with the given name. It fails with
// manifeststore.ErrManifestNotFound when no item exists.
func (s *Store) Get(ctx context.Context, name string) (*manifest.Manifest, error) {
	out, err := s.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &s.tableName,
		Key:       keyFor(name),
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, manifeststore.ErrManifestNotFound
	}

	var rec record
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return rec.manifest()
}

// Put stores the manifest, replacing any previous version. The manifest is
// validated first; UpdatedAt is stamped if unset.
func (s *Store) Put(ctx context.Context, m *manifest.Manifest) error {
	if err := m.Validate(); err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(newRecord(m))
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	_, err = s.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &s.tableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// Delete removes the manifest with the given name. Deleting an absent
// manifest is a no-op, matching DynamoDB's DeleteItem semantics.
func (s *Store) Delete(ctx context.Context, name string) error {
	_, err := s.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &s.tableName,
		Key:       keyFor(name),
	})
	if err != nil {
		return fmt.Errorf("failed to delete manifest: %w", err)
	}
	return nil
}

// List returns the names of all stored manifests.
func (s *Store) List(ctx context.Context) ([]string, error) {
	filter := "SK = :sk"
	var names []string
	var startKey map[string]types.AttributeValue

	for {
		out, err := s.client.Scan(ctx, &sdk.ScanInput{
			TableName:        &s.tableName,
			FilterExpression: &filter,
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":sk": &types.AttributeValueMemberS{Value: sortKey},
			},
			ProjectionExpression: aws.String("#n"),
			ExpressionAttributeNames: map[string]string{
				"#n": "Name",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("Scan error: %w", err)
		}

		for _, item := range out.Items {
			if n, ok := item["Name"].(*types.AttributeValueMemberS); ok {
				names = append(names, n.Value)
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return names, nil
}

func keyFor(name string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pkPrefix + name},
		"SK": &types.AttributeValueMemberS{Value: sortKey},
	}
}

func newRecord(m *manifest.Manifest) record {
	rec := record{
		PK:          pkPrefix + m.Name,
		SK:          sortKey,
		Name:        m.Name,
		MaxCommands: m.MaxCommands,
		MaxHelpLen:  m.MaxHelpLen,
		Commands:    make([]recordCommand, 0, len(m.Commands)),
	}
	for _, c := range m.Commands {
		rec.Commands = append(rec.Commands, recordCommand{Name: c.Name, Help: c.Help})
	}
	if m.UpdatedAt != nil {
		rec.UpdatedAt = m.UpdatedAt.String()
	} else {
		rec.UpdatedAt = strfmt.DateTime(time.Now().UTC()).String()
	}
	return rec
}

func (r record) manifest() (*manifest.Manifest, error) {
	m := &manifest.Manifest{
		Name:        r.Name,
		MaxCommands: r.MaxCommands,
		MaxHelpLen:  r.MaxHelpLen,
		Commands:    make([]manifest.Command, 0, len(r.Commands)),
	}
	for _, c := range r.Commands {
		m.Commands = append(m.Commands, manifest.Command{Name: c.Name, Help: c.Help})
	}
	if r.UpdatedAt != "" {
		ts, err := strfmt.ParseDateTime(r.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid UpdatedAt %q: %w", r.UpdatedAt, err)
		}
		m.UpdatedAt = &ts
	}
	return m, nil
}
