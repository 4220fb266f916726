package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/anshpaul/paymentApp-backend/internal/domain/entities"
	"github.com/anshpaul/paymentApp-backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentsTableName = "payments"

const conditionalCheckFailedCode = "ConditionalCheckFailed"

// ErrCampaignMissingForPayment is returned when the campaign row referenced by
// a verified payment vanished between resolution and the ledger write.
var ErrCampaignMissingForPayment = errors.New("campaign item missing for payment")

type paymentItemRecord struct {
	ID        string  `dynamodbav:"id"`
	Amount    float64 `dynamodbav:"amount"`
	PaymentID string  `dynamodbav:"payment_id"`
	OrderID   string  `dynamodbav:"order_id"`
	Signature string  `dynamodbav:"signature"`
	Email     string  `dynamodbav:"email,omitempty"`
	Contact   string  `dynamodbav:"contact,omitempty"`
	ItemID    string  `dynamodbav:"item_id"`
	CreatedAt string  `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists PaymentRecord entities in DynamoDB.
//
// Table requirements:
//   - payments: PK id (string) = gateway payment id
//   - campaigns: PK id (string), numeric total_donated / donor_count
//
// RecordDonation spans both tables in one TransactWriteItems so the payment
// row and the campaign aggregates commit together or not at all.
type PaymentDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	campaignsTable string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
		campaignsTable: getenvDefault("CAMPAIGNS_TABLE", defaultCampaignsTableName),
	}
}

// RecordDonation writes the payment record and bumps the campaign aggregates
// in a single transaction. The put is conditioned on the payment id not
// existing yet: a retried verification cancels the whole transaction and
// surfaces ErrPaymentAlreadyRecorded, so nothing is double-counted. The ADD
// update is an atomic server-side increment, so concurrent donations to the
// same item cannot lose updates.
func (r *PaymentDynamoRepository) RecordDonation(ctx context.Context, p entities.PaymentRecord) error {
	it := toPaymentItemRecord(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.campaignsTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: p.ItemID},
					},
					ConditionExpression: aws.String("attribute_exists(#id)"),
					UpdateExpression:    aws.String("ADD #total :amount, #donors :one"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount": &types.AttributeValueMemberN{Value: strconv.FormatFloat(p.Amount, 'f', -1, 64)},
						":one":    &types.AttributeValueMemberN{Value: "1"},
					},
					ExpressionAttributeNames: map[string]string{
						"#id":     "id",
						"#total":  "total_donated",
						"#donors": "donor_count",
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			// Reason order matches TransactItems order: [0] payment put,
			// [1] campaign update.
			if len(tce.CancellationReasons) > 0 && reasonCode(tce.CancellationReasons[0]) == conditionalCheckFailedCode {
				return interfaces.ErrPaymentAlreadyRecorded
			}
			if len(tce.CancellationReasons) > 1 && reasonCode(tce.CancellationReasons[1]) == conditionalCheckFailedCode {
				return fmt.Errorf("%w: item_id=%s", ErrCampaignMissingForPayment, p.ItemID)
			}
		}
		return err
	}
	return nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentItemRecord(it), nil
}

func (r *PaymentDynamoRepository) List(ctx context.Context) ([]entities.PaymentRecord, error) {
	records := make([]entities.PaymentRecord, 0)

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
			var it paymentItemRecord
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			records = append(records, fromPaymentItemRecord(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return records, nil
}

func reasonCode(reason types.CancellationReason) string {
	if reason.Code == nil {
		return ""
	}
	return *reason.Code
}

func toPaymentItemRecord(p entities.PaymentRecord) paymentItemRecord {
	return paymentItemRecord{
		ID:        p.ID,
		Amount:    p.Amount,
		PaymentID: p.PaymentID,
		OrderID:   p.OrderID,
		Signature: p.Signature,
		Email:     p.Email,
		Contact:   p.Contact,
		ItemID:    p.ItemID,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentItemRecord(it paymentItemRecord) entities.PaymentRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.PaymentRecord{
		ID:        it.ID,
		Amount:    it.Amount,
		PaymentID: it.PaymentID,
		OrderID:   it.OrderID,
		Signature: it.Signature,
		Email:     it.Email,
		Contact:   it.Contact,
		ItemID:    it.ItemID,
		CreatedAt: createdAt,
	}
}
