package declared

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CollectionName is the collection used by the Mongo store.
const CollectionName = "declarations"

type declarationDoc struct {
	SessionID string    `bson:"_id"`
	Scheme    Scheme    `bson:"scheme"`
	Files     []string  `bson:"files"`
	ExpiresAt time.Time `bson:"expires_at"`
}

// Mongo stores one document per session. A TTL index on expires_at lets the
// server drop stale documents; reads also ignore expired ones.
type Mongo struct {
	coll *mongo.Collection
	ttl  time.Duration
	now  func() time.Time
}

// NewMongo creates a Mongo store on db.
func NewMongo(db *mongo.Database, ttl time.Duration) *Mongo {
	return &Mongo{coll: db.Collection(CollectionName), ttl: ttl, now: time.Now}
}

// EnsureIndexes creates the TTL index.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (m *Mongo) Declare(ctx context.Context, sessionID string, d Declaration) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}
	doc := declarationDoc{
		SessionID: sessionID,
		Scheme:    d.Scheme,
		Files:     d.Files,
		ExpiresAt: m.now().Add(m.ttl).UTC(),
	}
	_, err := m.coll.ReplaceOne(ctx, bson.M{"_id": sessionID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (m *Mongo) Declared(ctx context.Context, sessionID string) (Declaration, error) {
	if sessionID == "" {
		return Declaration{}, ErrEmptySessionID
	}

	var doc declarationDoc
	err := m.coll.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Declaration{}, ErrNotDeclared
	}
	if err != nil {
		return Declaration{}, errors.Join(ErrStoreUnavailable, err)
	}
	if !m.now().Before(doc.ExpiresAt) {
		return Declaration{}, ErrNotDeclared
	}
	return Declaration{Scheme: doc.Scheme, Files: doc.Files}, nil
}

func (m *Mongo) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}
	if _, err := m.coll.DeleteOne(ctx, bson.M{"_id": sessionID}); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
