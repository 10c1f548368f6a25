package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/schnackhq/forum-api/internal/core/domain"
)

const auditCollection = "auth_events"

// AuditRepository persists the auth audit trail in MongoDB.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuthEvent struct {
	Type      string `bson:"type"`
	Subject   string `bson:"subject"`
	Reason    string `bson:"reason,omitempty"`
	Timestamp int64  `bson:"timestamp"`
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuthEvent) error {
	doc := mongoAuthEvent{
		Type:      string(event.Type),
		Subject:   event.Subject,
		Reason:    event.Reason,
		Timestamp: event.Timestamp.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}

func (r *AuditRepository) ListBySubject(ctx context.Context, subject string, limit int64) ([]domain.AuthEvent, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{"subject": subject}, opts)
	if err != nil {
		return nil, fmt.Errorf("list auth events: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoAuthEvent
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode auth events: %w", err)
	}

	events := make([]domain.AuthEvent, 0, len(docs))
	for _, me := range docs {
		events = append(events, domain.AuthEvent{
			Type:      domain.AuthEventType(me.Type),
			Subject:   me.Subject,
			Reason:    me.Reason,
			Timestamp: time.Unix(me.Timestamp, 0).UTC(),
		})
	}
	return events, nil
}
