package repository

import (
	"context"
	"errors"
	"slices"
	"time"

	"reborn_api/internal/domain/entities"
	"reborn_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDocumentsTableName = "documents"

	documentsUserIndex   = "user_id-index"
	documentsRebornIndex = "reborn_id-index"
	documentsStatusIndex = "status-index"
)

// DynamoAPI is the slice of the DynamoDB client the repositories use.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

type documentItem struct {
	ID           string            `dynamodbav:"id"`
	UserID       string            `dynamodbav:"user_id"`
	RebornID     string            `dynamodbav:"reborn_id"`
	Type         string            `dynamodbav:"type"`
	Status       string            `dynamodbav:"status"`
	FileURL      string            `dynamodbav:"file_url,omitempty"`
	TemplateData map[string]string `dynamodbav:"template_data"`
	CreatedAt    string            `dynamodbav:"created_at"`
	UpdatedAt    string            `dynamodbav:"updated_at"`
}

// DocumentDynamoRepository persists Document entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI user_id-index (PK user_id)
//   - GSI reborn_id-index (PK reborn_id)
//   - GSI status-index (PK status)

type DocumentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IDocumentRepository = (*DocumentDynamoRepository)(nil)

// NewDocumentDynamoRepository uses the "documents" table when tableName is empty.
func NewDocumentDynamoRepository(ddb DynamoAPI, tableName string) *DocumentDynamoRepository {
	if tableName == "" {
		tableName = defaultDocumentsTableName
	}
	return &DocumentDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *DocumentDynamoRepository) Create(ctx context.Context, d entities.Document) (entities.Document, error) {
	av, err := attributevalue.MarshalMap(toDocumentItem(d))
	if err != nil {
		return entities.Document{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Document{}, err
	}
	return d, nil
}

// Update writes the mutable part of a lifecycle snapshot. A missing row yields an empty Document.
func (r *DocumentDynamoRepository) Update(ctx context.Context, d entities.Document) (entities.Document, error) {
	data, err := attributevalue.Marshal(nonNilTemplateData(d.TemplateData))
	if err != nil {
		return entities.Document{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: d.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #file_url = :file_url, #template_data = :template_data, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":        &types.AttributeValueMemberS{Value: string(d.Status)},
			":file_url":      &types.AttributeValueMemberS{Value: d.FileURL},
			":template_data": data,
			":updated_at":    &types.AttributeValueMemberS{Value: formatTime(d.UpdatedAt)},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":        "status",
			"#file_url":      "file_url",
			"#template_data": "template_data",
			"#updated_at":    "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Document{}, nil
		}
		return entities.Document{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Document{}, nil
	}

	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Document{}, err
	}
	return fromDocumentItem(it), nil
}

func (r *DocumentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Document, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Document{}, err
	}
	if len(out.Item) == 0 {
		return entities.Document{}, nil
	}

	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Document{}, err
	}
	return fromDocumentItem(it), nil
}

func (r *DocumentDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Document, error) {
	return r.queryIndex(ctx, documentsUserIndex, "user_id", userID)
}

func (r *DocumentDynamoRepository) ListByRebornID(ctx context.Context, rebornID string) ([]entities.Document, error) {
	return r.queryIndex(ctx, documentsRebornIndex, "reborn_id", rebornID)
}

func (r *DocumentDynamoRepository) ListByStatus(ctx context.Context, status entities.DocumentStatus) ([]entities.Document, error) {
	return r.queryIndex(ctx, documentsStatusIndex, "status", string(status))
}

func (r *DocumentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// queryIndex reads every page of a GSI and returns the documents newest first.
func (r *DocumentDynamoRepository) queryIndex(ctx context.Context, index, attr, value string) ([]entities.Document, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})

	docs := make([]entities.Document, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []documentItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			docs = append(docs, fromDocumentItem(it))
		}
	}

	slices.SortStableFunc(docs, func(a, b entities.Document) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return docs, nil
}

func toDocumentItem(d entities.Document) documentItem {
	return documentItem{
		ID:           d.ID,
		UserID:       d.UserID,
		RebornID:     d.RebornID,
		Type:         string(d.Type),
		Status:       string(d.Status),
		FileURL:      d.FileURL,
		TemplateData: nonNilTemplateData(d.TemplateData),
		CreatedAt:    formatTime(d.CreatedAt),
		UpdatedAt:    formatTime(d.UpdatedAt),
	}
}

func fromDocumentItem(it documentItem) entities.Document {
	return entities.Document{
		ID:           it.ID,
		UserID:       it.UserID,
		RebornID:     it.RebornID,
		Type:         entities.DocumentType(it.Type),
		Status:       entities.DocumentStatus(it.Status),
		FileURL:      it.FileURL,
		TemplateData: nonNilTemplateData(it.TemplateData),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}

func nonNilTemplateData(in map[string]string) map[string]string {
	if in == nil {
		return map[string]string{}
	}
	return in
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
