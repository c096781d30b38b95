package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"portfolio-assistant/internal/domain"
)

const (
	skPrefixTurn = "TURN#"
	skMeta       = "META#"
	ttlDuration  = 30 * 24 * time.Hour
)

// dynamodbAPI is the subset of *dynamodb.Client the store uses.
type dynamodbAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// TranscriptStore keeps chat transcripts in a single DynamoDB table. Each
// conversation is one partition holding its turns and a META# record.
type TranscriptStore struct {
	api       dynamodbAPI
	tableName string
	now       func() time.Time
}

// New creates a TranscriptStore over tableName.
func New(api dynamodbAPI, tableName string) (*TranscriptStore, error) {
	if api == nil {
		return nil, errors.New("repository: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("repository: table name must not be empty")
	}
	return &TranscriptStore{api: api, tableName: tableName, now: time.Now}, nil
}

func convPK(conversationID string) string {
	return "CONV#" + conversationID
}

func turnSK(ts time.Time) string {
	return skPrefixTurn + ts.UTC().Format(time.RFC3339Nano)
}

// GetHistory returns up to limit of the most recent turns, oldest first, as
// alternating user and assistant messages.
func (s *TranscriptStore) GetHistory(ctx context.Context, conversationID string, limit int) ([]domain.ChatMessage, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :prefix)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":     &types.AttributeValueMemberS{Value: convPK(conversationID)},
			":prefix": &types.AttributeValueMemberS{Value: skPrefixTurn},
		},
		// Newest first so the limit keeps the most recent turns.
		ScanIndexForward: aws.Bool(false),
	}
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}

	out, err := s.api.Query(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("repository: GetHistory query: %w", err)
	}

	turns := make([]domain.Turn, 0, len(out.Items))
	for _, item := range out.Items {
		turn, err := itemToTurn(item)
		if err != nil {
			return nil, fmt.Errorf("repository: GetHistory unmarshal: %w", err)
		}
		turns = append(turns, turn)
	}

	msgs := make([]domain.ChatMessage, 0, 2*len(turns))
	for i := len(turns) - 1; i >= 0; i-- {
		msgs = append(msgs, turnToMessages(turns[i])...)
	}
	return msgs, nil
}

// GetConversationTurnCount returns the number of saved turns for a conversation.
func (s *TranscriptStore) GetConversationTurnCount(ctx context.Context, conversationID string) (int, error) {
	out, err := s.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: convPK(conversationID)},
			"SK": &types.AttributeValueMemberS{Value: skMeta},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, fmt.Errorf("repository: GetConversationTurnCount get item: %w", err)
	}
	if out == nil || len(out.Item) == 0 {
		return 0, nil
	}

	turns, err := intAttr(out.Item, "turns")
	if err != nil {
		return 0, fmt.Errorf("repository: GetConversationTurnCount decode turns: %w", err)
	}
	return turns, nil
}

// SaveTurn writes the turn and the updated metadata in one transaction.
func (s *TranscriptStore) SaveTurn(ctx context.Context, turn domain.Turn, meta domain.ConversationMeta) error {
	if turn.PK == "" || turn.SK == "" {
		return errors.New("repository: SaveTurn: turn PK and SK are required")
	}
	if meta.PK == "" || meta.SK == "" {
		return errors.New("repository: SaveTurn: meta PK and SK are required")
	}

	_, err := s.api.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(s.tableName),
					Item:                turnItem(turn),
					ConditionExpression: aws.String("attribute_not_exists(PK) AND attribute_not_exists(SK)"),
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(s.tableName),
					Item:      metaItem(meta),
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("repository: SaveTurn: %w", err)
	}
	return nil
}

// SaveCompletedTurn records a visitor message, its reply and the new turn count.
func (s *TranscriptStore) SaveCompletedTurn(ctx context.Context, conversationID, message, reply string, turns int) error {
	now := s.now().UTC()
	turn := domain.Turn{
		PK:             convPK(conversationID),
		SK:             turnSK(now),
		ConversationID: conversationID,
		Message:        message,
		Reply:          reply,
		CreatedAt:      now.Format(time.RFC3339Nano),
		TTL:            now.Add(ttlDuration).Unix(),
	}
	meta := domain.ConversationMeta{
		PK:             convPK(conversationID),
		SK:             skMeta,
		ConversationID: conversationID,
		LastActivity:   now.Format(time.RFC3339),
		Turns:          turns,
		TTL:            now.Add(ttlDuration).Unix(),
	}
	if err := s.SaveTurn(ctx, turn, meta); err != nil {
		return fmt.Errorf("repository: SaveCompletedTurn: %w", err)
	}
	return nil
}

func turnToMessages(t domain.Turn) []domain.ChatMessage {
	ts, _ := time.Parse(time.RFC3339Nano, t.CreatedAt) // zero time if absent
	return []domain.ChatMessage{
		{Role: domain.RoleUser, Content: t.Message, Timestamp: ts},
		{Role: domain.RoleAssistant, Content: t.Reply, Timestamp: ts},
	}
}

func itemToTurn(item map[string]types.AttributeValue) (domain.Turn, error) {
	pk, err := strAttr(item, "PK")
	if err != nil {
		return domain.Turn{}, err
	}
	sk, err := strAttr(item, "SK")
	if err != nil {
		return domain.Turn{}, err
	}
	message, err := strAttr(item, "message")
	if err != nil {
		return domain.Turn{}, err
	}
	reply, _ := strAttr(item, "reply")
	createdAt, _ := strAttr(item, "createdAt")
	conversationID, _ := strAttr(item, "conversationId")

	return domain.Turn{
		PK:             pk,
		SK:             sk,
		ConversationID: conversationID,
		Message:        message,
		Reply:          reply,
		CreatedAt:      createdAt,
	}, nil
}

func turnItem(t domain.Turn) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK":             &types.AttributeValueMemberS{Value: t.PK},
		"SK":             &types.AttributeValueMemberS{Value: t.SK},
		"conversationId": &types.AttributeValueMemberS{Value: t.ConversationID},
		"message":        &types.AttributeValueMemberS{Value: t.Message},
		"reply":          &types.AttributeValueMemberS{Value: t.Reply},
		"createdAt":      &types.AttributeValueMemberS{Value: t.CreatedAt},
		"ttl":            &types.AttributeValueMemberN{Value: strconv.FormatInt(t.TTL, 10)},
	}
}

func metaItem(meta domain.ConversationMeta) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK":             &types.AttributeValueMemberS{Value: meta.PK},
		"SK":             &types.AttributeValueMemberS{Value: meta.SK},
		"conversationId": &types.AttributeValueMemberS{Value: meta.ConversationID},
		"lastActivity":   &types.AttributeValueMemberS{Value: meta.LastActivity},
		"turns":          &types.AttributeValueMemberN{Value: strconv.Itoa(meta.Turns)},
		"ttl":            &types.AttributeValueMemberN{Value: strconv.FormatInt(meta.TTL, 10)},
	}
}

func strAttr(item map[string]types.AttributeValue, key string) (string, error) {
	v, ok := item[key]
	if !ok {
		return "", fmt.Errorf("repository: missing attribute %q", key)
	}
	s, ok := v.(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("repository: attribute %q is not a string", key)
	}
	return s.Value, nil
}

func intAttr(item map[string]types.AttributeValue, key string) (int, error) {
	v, ok := item[key]
	if !ok {
		return 0, fmt.Errorf("repository: missing attribute %q", key)
	}
	n, ok := v.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("repository: attribute %q is not a number", key)
	}
	parsed, err := strconv.Atoi(n.Value)
	if err != nil {
		return 0, fmt.Errorf("repository: parse attribute %q: %w", key, err)
	}
	return parsed, nil
}
