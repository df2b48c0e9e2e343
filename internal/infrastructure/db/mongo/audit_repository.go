package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkwell/blog-platform/internal/core/domain"
)

const auditCollection = "auth_events"

// AuditRepository appends authentication audit records.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuthEvent struct {
	Action    string `bson:"action"`
	Email     string `bson:"email"`
	UserID    string `bson:"user_id,omitempty"`
	Success   bool   `bson:"success"`
	RemoteIP  string `bson:"remote_ip,omitempty"`
	Timestamp int64  `bson:"timestamp"`
}

func (r *AuditRepository) InsertEvent(ctx context.Context, event *domain.AuthEvent) error {
	doc := mongoAuthEvent{
		Action:    string(event.Action),
		Email:     event.Email,
		UserID:    event.UserID,
		Success:   event.Success,
		RemoteIP:  event.RemoteIP,
		Timestamp: event.Timestamp.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}
