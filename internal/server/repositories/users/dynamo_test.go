package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/goalboard/authserver/internal/common"
	"github.com/goalboard/authserver/internal/server/models"
)

type fakeDynamoClient struct {
	putIn  *dynamodb.PutItemInput
	putErr error

	getOut *dynamodb.GetItemOutput
	getErr error

	queryIn  *dynamodb.QueryInput
	queryOut *dynamodb.QueryOutput
	queryErr error
}

func (f *fakeDynamoClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putIn = params
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamoClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeDynamoClient) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryIn = params
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.queryOut, nil
}

func dynamoTestUser(t *testing.T) (*models.User, *dynamodb.GetItemOutput) {
	t.Helper()
	u := &models.User{
		ID:           "id-1",
		Email:        "a@b.com",
		PasswordHash: "$2a$10$hash",
		Name:         "A",
		CreatedAt:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	item, err := attributevalue.MarshalMap(u)
	if err != nil {
		t.Fatalf("MarshalMap error: %v", err)
	}
	return u, &dynamodb.GetItemOutput{Item: item}
}

func TestDynamoCreate_PutsConditionally(t *testing.T) {
	fake := &fakeDynamoClient{}
	repo := NewDynamoRepository(fake, "Users")

	u, _ := dynamoTestUser(t)

	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got != u {
		t.Fatalf("expected the stored user back")
	}
	if fake.putIn == nil || *fake.putIn.TableName != "Users" {
		t.Fatalf("unexpected PutItem input: %+v", fake.putIn)
	}
	if *fake.putIn.ConditionExpression != "attribute_not_exists(id)" {
		t.Fatalf("unexpected condition: %q", *fake.putIn.ConditionExpression)
	}
	if _, ok := fake.putIn.Item["email"]; !ok {
		t.Fatalf("expected email attribute in the item")
	}
}

func TestDynamoCreate_ClientError(t *testing.T) {
	fake := &fakeDynamoClient{putErr: errors.New("throttled")}
	repo := NewDynamoRepository(fake, "Users")

	u, _ := dynamoTestUser(t)

	_, err := repo.Create(context.Background(), u)
	if err == nil {
		t.Fatalf("expected error from client failure")
	}
}

func TestDynamoGetByID_Success(t *testing.T) {
	u, out := dynamoTestUser(t)
	fake := &fakeDynamoClient{getOut: out}
	repo := NewDynamoRepository(fake, "Users")

	got, err := repo.GetByID(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Email != u.Email || got.PasswordHash != u.PasswordHash {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestDynamoGetByID_NotFound(t *testing.T) {
	fake := &fakeDynamoClient{getOut: &dynamodb.GetItemOutput{}}
	repo := NewDynamoRepository(fake, "Users")

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestDynamoGetByEmail_QueriesIndex(t *testing.T) {
	u, out := dynamoTestUser(t)
	fakeClient := &fakeDynamoClient{queryOut: &dynamodb.QueryOutput{
		Items: []map[string]types.AttributeValue{out.Item},
	}}
	repo := NewDynamoRepository(fakeClient, "Users")

	got, err := repo.GetByEmail(context.Background(), u.Email)
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("unexpected user: %+v", got)
	}
	if *fakeClient.queryIn.IndexName != EmailIndexName {
		t.Fatalf("expected query against %s, got %q", EmailIndexName, *fakeClient.queryIn.IndexName)
	}
}

func TestDynamoGetByEmail_NotFound(t *testing.T) {
	fake := &fakeDynamoClient{queryOut: &dynamodb.QueryOutput{}}
	repo := NewDynamoRepository(fake, "Users")

	_, err := repo.GetByEmail(context.Background(), "missing@b.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}
