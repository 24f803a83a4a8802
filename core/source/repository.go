package source

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository provides read-only access to the authoritative identity records.
type Repository interface {
	// Records returns all records matching the configured selection: the
	// email allow-list when one is set, otherwise the eligible-for-sync flag.
	Records(ctx context.Context) ([]Record, error)
	// UIDSet returns the set of source UIDs for the same selection.
	// Used by the orphan scan to test directory accounts for membership.
	UIDSet(ctx context.Context) (map[string]struct{}, error)
}

type mongoRepository struct {
	collection *mongo.Collection
	cfg        Config
}

// Connect establishes a connection to the document store and returns a
// read-only repository over the identity collection. Connection failure is
// fatal to the run; callers abort before processing any record.
func Connect(ctx context.Context, cfg Config) (Repository, error) {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetTimeout(time.Duration(timeout) * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	// Fail fast: a bad URI or unreachable host should abort the run here,
	// not on the first query.
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to reach document store: %w", err)
	}

	return &mongoRepository{
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
		cfg:        cfg,
	}, nil
}

// filter builds the selection predicate: an explicit email allow-list when
// configured, otherwise the eligible-for-sync flag.
func (r *mongoRepository) filter() bson.M {
	if emails := r.cfg.EmailList(); emails != nil {
		return bson.M{"email": bson.M{"$in": emails}}
	}
	return bson.M{"syncToEntra": true}
}

func (r *mongoRepository) Records(ctx context.Context) ([]Record, error) {
	cursor, err := r.collection.Find(ctx, r.filter())
	if err != nil {
		return nil, fmt.Errorf("failed to query identity records: %w", err)
	}

	var records []Record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode identity records: %w", err)
	}

	return records, nil
}

func (r *mongoRepository) UIDSet(ctx context.Context) (map[string]struct{}, error) {
	opts := options.Find().SetProjection(bson.M{"uid": 1})

	cursor, err := r.collection.Find(ctx, r.filter(), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query source UIDs: %w", err)
	}

	var docs []struct {
		UID string `bson:"uid"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode source UIDs: %w", err)
	}

	uids := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		if doc.UID != "" {
			uids[doc.UID] = struct{}{}
		}
	}

	return uids, nil
}
