package repository

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"sparkle_shine/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo understands the two condition expressions the repository
// issues.
type fakeDynamo struct {
	items   map[string]map[string]types.AttributeValue
	getErr  error
	lastPut *dynamodb.PutItemInput
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[id]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.lastPut = in
	id := in.Item["id"].(*types.AttributeValueMemberS).Value
	existing, exists := f.items[id]

	switch aws.ToString(in.ConditionExpression) {
	case "attribute_not_exists(#id)":
		if exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
		}
	default:
		if !exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
		}
		exp, _ := strconv.ParseInt(existing["expires_at"].(*types.AttributeValueMemberN).Value, 10, 64)
		now, _ := strconv.ParseInt(in.ExpressionAttributeValues[":now"].(*types.AttributeValueMemberN).Value, 10, 64)
		if exp <= now {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("expired")}
		}
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func newTestDynamoRepo(ddb DynamoAPI, now *time.Time) *EstimatorSessionDynamoRepository {
	r := NewEstimatorSessionDynamoRepository(ddb, "", time.Hour)
	r.now = func() time.Time { return *now }
	return r
}

func confirmedSession(t *testing.T, now time.Time) entities.EstimatorSession {
	t.Helper()
	today := entities.DateOf(now)
	s := entities.NewEstimatorSession("s-1", today, now)
	require.NoError(t, s.SetPackage(entities.PackageDeep))
	require.NoError(t, s.SetFrequency(entities.FrequencyWeekly))
	require.NoError(t, s.AdjustRoomCount(entities.RoomBedroom, 1))
	require.NoError(t, s.AdjustRoomCount(entities.RoomBathroom, 1))
	require.NoError(t, s.NavigateCalendar(entities.NavigateNext))
	require.NoError(t, s.SelectDay(3, today))
	require.NoError(t, s.Submit(now))
	return s
}

func TestEstimatorSessionDynamoRepository_RoundTrip(t *testing.T) {
	now := time.Date(2024, time.February, 15, 14, 0, 0, 0, time.UTC)
	ddb := newFakeDynamo()
	repo := newTestDynamoRepo(ddb, &now)
	s := confirmedSession(t, now)

	_, err := repo.Create(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, DefaultEstimatorSessionsTableName, aws.ToString(ddb.lastPut.TableName))
	assert.Equal(t,
		strconv.FormatInt(now.Add(time.Hour).Unix(), 10),
		ddb.items["s-1"]["expires_at"].(*types.AttributeValueMemberN).Value,
	)

	got, err := repo.GetByID(context.Background(), "s-1")
	require.NoError(t, err)

	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, entities.EstimatorStateConfirmed, got.State)
	assert.Equal(t, s.Calendar, got.Calendar)
	assert.Equal(t, 3, got.Config.Bedrooms)
	assert.Equal(t, 2, got.Config.Bathrooms)
	require.NotNil(t, got.Config.SelectedDate)
	assert.Equal(t, entities.Date{Year: 2024, Month: time.March, Day: 3}, *got.Config.SelectedDate)
	assert.True(t, s.CreatedAt.Equal(got.CreatedAt))

	require.NotNil(t, got.Confirmation)
	assert.Equal(t, "Deep Shine", got.Confirmation.PackageName)
	assert.Equal(t, "316.00", got.Confirmation.Price.Total.StringFixed(2))
	assert.True(t, s.Confirmation.Price.DiscountRate.Equal(got.Confirmation.Price.DiscountRate))
	assert.True(t, now.Equal(got.Confirmation.ConfirmedAt))
}

func TestEstimatorSessionDynamoRepository_Create(t *testing.T) {
	now := time.Date(2024, time.February, 15, 14, 0, 0, 0, time.UTC)
	repo := newTestDynamoRepo(newFakeDynamo(), &now)
	s := entities.NewEstimatorSession("s-1", entities.DateOf(now), now)

	_, err := repo.Create(context.Background(), s)
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), s)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestEstimatorSessionDynamoRepository_GetByID(t *testing.T) {
	now := time.Date(2024, time.February, 15, 14, 0, 0, 0, time.UTC)

	t.Run("missing", func(t *testing.T) {
		repo := newTestDynamoRepo(newFakeDynamo(), &now)
		got, err := repo.GetByID(context.Background(), "nope")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("client error", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.getErr = errors.New("throttled")
		repo := newTestDynamoRepo(ddb, &now)
		_, err := repo.GetByID(context.Background(), "s-1")
		assert.EqualError(t, err, "throttled")
	})

	t.Run("expired but not yet swept", func(t *testing.T) {
		clock := now
		repo := newTestDynamoRepo(newFakeDynamo(), &clock)
		_, err := repo.Create(context.Background(), entities.NewEstimatorSession("s-1", entities.DateOf(now), now))
		require.NoError(t, err)

		clock = now.Add(time.Hour + time.Second)
		got, err := repo.GetByID(context.Background(), "s-1")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})
}

func TestEstimatorSessionDynamoRepository_Save(t *testing.T) {
	now := time.Date(2024, time.February, 15, 14, 0, 0, 0, time.UTC)

	t.Run("missing session", func(t *testing.T) {
		repo := newTestDynamoRepo(newFakeDynamo(), &now)
		got, err := repo.Save(context.Background(), entities.NewEstimatorSession("s-1", entities.DateOf(now), now))
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("extends expiry", func(t *testing.T) {
		clock := now
		ddb := newFakeDynamo()
		repo := newTestDynamoRepo(ddb, &clock)
		s := entities.NewEstimatorSession("s-1", entities.DateOf(now), now)
		_, err := repo.Create(context.Background(), s)
		require.NoError(t, err)

		clock = now.Add(50 * time.Minute)
		require.NoError(t, s.SetPackage(entities.PackageMove))
		saved, err := repo.Save(context.Background(), s)
		require.NoError(t, err)
		assert.Equal(t, entities.PackageMove, saved.Config.PackageID)

		clock = now.Add(90 * time.Minute)
		got, err := repo.GetByID(context.Background(), "s-1")
		require.NoError(t, err)
		assert.Equal(t, entities.PackageMove, got.Config.PackageID)
		assert.Nil(t, got.Confirmation)
	})

	t.Run("expired session", func(t *testing.T) {
		clock := now
		repo := newTestDynamoRepo(newFakeDynamo(), &clock)
		s := entities.NewEstimatorSession("s-1", entities.DateOf(now), now)
		_, err := repo.Create(context.Background(), s)
		require.NoError(t, err)

		clock = now.Add(2 * time.Hour)
		got, err := repo.Save(context.Background(), s)
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})
}
