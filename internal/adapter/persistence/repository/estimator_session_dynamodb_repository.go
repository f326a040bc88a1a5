package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"sparkle_shine/internal/domain/entities"
	"sparkle_shine/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const DefaultEstimatorSessionsTableName = "estimator_sessions"

// DynamoAPI is the subset of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type estimatorSessionItem struct {
	ID           string            `dynamodbav:"id"`
	State        string            `dynamodbav:"state"`
	Bedrooms     int               `dynamodbav:"bedrooms"`
	Bathrooms    int               `dynamodbav:"bathrooms"`
	PackageID    string            `dynamodbav:"package_id"`
	Frequency    string            `dynamodbav:"frequency"`
	SelectedDate string            `dynamodbav:"selected_date,omitempty"`
	ViewYear     int               `dynamodbav:"view_year"`
	ViewMonth    int               `dynamodbav:"view_month"`
	Confirmation *confirmationItem `dynamodbav:"confirmation,omitempty"`
	CreatedAt    string            `dynamodbav:"created_at"`
	UpdatedAt    string            `dynamodbav:"updated_at"`
	ExpiresAt    int64             `dynamodbav:"expires_at"`
}

type confirmationItem struct {
	PackageID    string `dynamodbav:"package_id"`
	PackageName  string `dynamodbav:"package_name"`
	Date         string `dynamodbav:"date"`
	Bedrooms     int    `dynamodbav:"bedrooms"`
	Bathrooms    int    `dynamodbav:"bathrooms"`
	Frequency    string `dynamodbav:"frequency"`
	Base         string `dynamodbav:"base"`
	Extras       string `dynamodbav:"extras"`
	Subtotal     string `dynamodbav:"subtotal"`
	DiscountRate string `dynamodbav:"discount_rate"`
	Discount     string `dynamodbav:"discount"`
	Total        string `dynamodbav:"total"`
	ConfirmedAt  string `dynamodbav:"confirmed_at"`
}

// EstimatorSessionDynamoRepository persists estimator sessions in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - TTL attribute: expires_at (epoch seconds)
//
// DynamoDB deletes expired items lazily, so reads also check expires_at.

type EstimatorSessionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	ttl       time.Duration
	now       func() time.Time
}

var _ interfaces.IEstimatorSessionRepository = (*EstimatorSessionDynamoRepository)(nil)

func NewEstimatorSessionDynamoRepository(ddb DynamoAPI, tableName string, ttl time.Duration) *EstimatorSessionDynamoRepository {
	if tableName == "" {
		tableName = DefaultEstimatorSessionsTableName
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &EstimatorSessionDynamoRepository{ddb: ddb, tableName: tableName, ttl: ttl, now: time.Now}
}

func (r *EstimatorSessionDynamoRepository) Create(ctx context.Context, s entities.EstimatorSession) (entities.EstimatorSession, error) {
	if err := r.put(ctx, s, true); err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.EstimatorSession{}, ErrDuplicateID
		}
		return entities.EstimatorSession{}, err
	}
	return s.Clone(), nil
}

func (r *EstimatorSessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.EstimatorSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EstimatorSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.EstimatorSession{}, nil
	}

	var it estimatorSessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EstimatorSession{}, err
	}
	if it.ExpiresAt > 0 && it.ExpiresAt <= r.now().Unix() {
		return entities.EstimatorSession{}, nil
	}
	return fromEstimatorSessionItem(it)
}

// Save replaces a stored session and extends its expiry. Saving a session
// that does not exist (or already expired) returns a zero session.
func (r *EstimatorSessionDynamoRepository) Save(ctx context.Context, s entities.EstimatorSession) (entities.EstimatorSession, error) {
	if err := r.put(ctx, s, false); err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.EstimatorSession{}, nil
		}
		return entities.EstimatorSession{}, err
	}
	return s.Clone(), nil
}

// put writes the whole item. create requires a fresh id; otherwise the
// item must exist and not be expired.
func (r *EstimatorSessionDynamoRepository) put(ctx context.Context, s entities.EstimatorSession, create bool) error {
	now := r.now()
	it := toEstimatorSessionItem(s, now.Add(r.ttl))
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	in := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}
	if create {
		in.ConditionExpression = aws.String("attribute_not_exists(#id)")
		in.ExpressionAttributeNames = map[string]string{"#id": "id"}
	} else {
		in.ConditionExpression = aws.String("attribute_exists(#id) AND #expires_at > :now")
		in.ExpressionAttributeNames = map[string]string{
			"#id":         "id",
			"#expires_at": "expires_at",
		}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberN{Value: strconv.FormatInt(now.Unix(), 10)},
		}
	}
	_, err = r.ddb.PutItem(ctx, in)
	return err
}

func toEstimatorSessionItem(s entities.EstimatorSession, expiresAt time.Time) estimatorSessionItem {
	it := estimatorSessionItem{
		ID:        s.ID,
		State:     string(s.State),
		Bedrooms:  s.Config.Bedrooms,
		Bathrooms: s.Config.Bathrooms,
		PackageID: string(s.Config.PackageID),
		Frequency: string(s.Config.Frequency),
		ViewYear:  s.Calendar.View.Year,
		ViewMonth: int(s.Calendar.View.Month),
		CreatedAt: formatTime(s.CreatedAt),
		UpdatedAt: formatTime(s.UpdatedAt),
		ExpiresAt: expiresAt.Unix(),
	}
	if s.Config.SelectedDate != nil {
		it.SelectedDate = s.Config.SelectedDate.String()
	}
	if c := s.Confirmation; c != nil {
		it.Confirmation = &confirmationItem{
			PackageID:    string(c.PackageID),
			PackageName:  c.PackageName,
			Date:         c.Date.String(),
			Bedrooms:     c.Bedrooms,
			Bathrooms:    c.Bathrooms,
			Frequency:    string(c.Frequency),
			Base:         c.Price.Base.String(),
			Extras:       c.Price.Extras.String(),
			Subtotal:     c.Price.Subtotal.String(),
			DiscountRate: c.Price.DiscountRate.String(),
			Discount:     c.Price.Discount.String(),
			Total:        c.Price.Total.String(),
			ConfirmedAt:  formatTime(c.ConfirmedAt),
		}
	}
	return it
}

func fromEstimatorSessionItem(it estimatorSessionItem) (entities.EstimatorSession, error) {
	s := entities.EstimatorSession{
		ID:    it.ID,
		State: entities.EstimatorState(it.State),
		Config: entities.BookingConfiguration{
			Bedrooms:  it.Bedrooms,
			Bathrooms: it.Bathrooms,
			PackageID: entities.PackageID(it.PackageID),
			Frequency: entities.FrequencyTier(it.Frequency),
		},
		Calendar: entities.DateSelector{
			View: entities.ViewMonth{Year: it.ViewYear, Month: time.Month(it.ViewMonth)},
		},
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
	if it.SelectedDate != "" {
		d, err := entities.ParseDate(it.SelectedDate)
		if err != nil {
			return entities.EstimatorSession{}, err
		}
		s.Config.SelectedDate = &d
	}
	if c := it.Confirmation; c != nil {
		d, err := entities.ParseDate(c.Date)
		if err != nil {
			return entities.EstimatorSession{}, err
		}
		s.Confirmation = &entities.BookingSnapshot{
			PackageID:   entities.PackageID(c.PackageID),
			PackageName: c.PackageName,
			Date:        d,
			Bedrooms:    c.Bedrooms,
			Bathrooms:   c.Bathrooms,
			Frequency:   entities.FrequencyTier(c.Frequency),
			Price: entities.PriceBreakdown{
				Base:         parseDecimal(c.Base),
				Extras:       parseDecimal(c.Extras),
				Subtotal:     parseDecimal(c.Subtotal),
				DiscountRate: parseDecimal(c.DiscountRate),
				Discount:     parseDecimal(c.Discount),
				Total:        parseDecimal(c.Total),
			},
			ConfirmedAt: parseTime(c.ConfirmedAt),
		}
	}
	return s, nil
}

func parseDecimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}
