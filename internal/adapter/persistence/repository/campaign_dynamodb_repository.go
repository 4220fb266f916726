package repository

import (
	"context"
	"errors"
	"time"

	"github.com/anshpaul/paymentApp-backend/internal/domain/entities"
	"github.com/anshpaul/paymentApp-backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCampaignsTableName = "campaigns"

type campaignItemRecord struct {
	ID           string  `dynamodbav:"id"`
	ImageURL     string  `dynamodbav:"image_url"`
	Title        string  `dynamodbav:"title"`
	Description  string  `dynamodbav:"description"`
	TotalDonated float64 `dynamodbav:"total_donated"`
	DonorCount   int64   `dynamodbav:"donor_count"`
	CreatedAt    string  `dynamodbav:"created_at"`
}

// CampaignDynamoRepository persists CampaignItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Donation aggregates are mutated only by PaymentDynamoRepository's
// transactional write; this repository never touches them after Create.
type CampaignDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICampaignRepository = (*CampaignDynamoRepository)(nil)

func NewCampaignDynamoRepository(ddb *dynamodb.Client) *CampaignDynamoRepository {
	return &CampaignDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CAMPAIGNS_TABLE", defaultCampaignsTableName),
	}
}

func (r *CampaignDynamoRepository) Create(ctx context.Context, item entities.CampaignItem) (entities.CampaignItem, error) {
	it := toCampaignItemRecord(item)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CampaignItem{}, err
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
		return entities.CampaignItem{}, err
	}
	return item, nil
}

func (r *CampaignDynamoRepository) GetByID(ctx context.Context, id string) (entities.CampaignItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CampaignItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.CampaignItem{}, nil
	}

	var it campaignItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CampaignItem{}, err
	}
	return fromCampaignItemRecord(it), nil
}

func (r *CampaignDynamoRepository) List(ctx context.Context) ([]entities.CampaignItem, error) {
	items := make([]entities.CampaignItem, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it campaignItemRecord
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromCampaignItemRecord(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *CampaignDynamoRepository) UpdateInfoByID(ctx context.Context, id, title, description string) (entities.CampaignItem, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #title = :title, #description = :description"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":title":       &types.AttributeValueMemberS{Value: title},
			":description": &types.AttributeValueMemberS{Value: description},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#title":       "title",
			"#description": "description",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.CampaignItem{}, nil
		}
		return entities.CampaignItem{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.CampaignItem{}, nil
	}

	var it campaignItemRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.CampaignItem{}, err
	}
	return fromCampaignItemRecord(it), nil
}

func (r *CampaignDynamoRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toCampaignItemRecord(item entities.CampaignItem) campaignItemRecord {
	return campaignItemRecord{
		ID:           item.ID,
		ImageURL:     item.ImageURL,
		Title:        item.Title,
		Description:  item.Description,
		TotalDonated: item.TotalDonated,
		DonorCount:   item.DonorCount,
		CreatedAt:    item.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCampaignItemRecord(it campaignItemRecord) entities.CampaignItem {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.CampaignItem{
		ID:           it.ID,
		ImageURL:     it.ImageURL,
		Title:        it.Title,
		Description:  it.Description,
		TotalDonated: it.TotalDonated,
		DonorCount:   it.DonorCount,
		CreatedAt:    createdAt,
	}
}
