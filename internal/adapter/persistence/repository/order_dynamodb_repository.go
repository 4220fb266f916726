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

const defaultOrdersTableName = "orders"

type donationOrderRecord struct {
	ID          string `dynamodbav:"id"`
	ItemID      string `dynamodbav:"item_id"`
	Receipt     string `dynamodbav:"receipt"`
	AmountMinor int64  `dynamodbav:"amount"`
	Currency    string `dynamodbav:"currency"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists DonationOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string) = gateway order id
type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.DonationOrder) (entities.DonationOrder, error) {
	it := toDonationOrderRecord(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.DonationOrder{}, err
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
		return entities.DonationOrder{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.DonationOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DonationOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.DonationOrder{}, nil
	}

	var it donationOrderRecord
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DonationOrder{}, err
	}
	return fromDonationOrderRecord(it), nil
}

func (r *OrderDynamoRepository) MarkPaid(ctx context.Context, id string) (entities.DonationOrder, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(entities.OrderStatusPaid)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.DonationOrder{}, nil
		}
		return entities.DonationOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.DonationOrder{}, nil
	}

	var it donationOrderRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.DonationOrder{}, err
	}
	return fromDonationOrderRecord(it), nil
}

func toDonationOrderRecord(o entities.DonationOrder) donationOrderRecord {
	return donationOrderRecord{
		ID:          o.ID,
		ItemID:      o.ItemID,
		Receipt:     o.Receipt,
		AmountMinor: o.AmountMinor,
		Currency:    o.Currency,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDonationOrderRecord(it donationOrderRecord) entities.DonationOrder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.DonationOrder{
		ID:          it.ID,
		ItemID:      it.ItemID,
		Receipt:     it.Receipt,
		AmountMinor: it.AmountMinor,
		Currency:    it.Currency,
		Status:      entities.OrderStatus(it.Status),
		CreatedAt:   createdAt,
	}
}
