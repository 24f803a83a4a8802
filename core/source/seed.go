package source

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Name pools for generated test records.
var (
	firstNames = []string{
		"Alice", "Bob", "Charlie", "Dana", "Eve", "Frank",
		"Grace", "Henry", "Ivy", "Jack", "Peter", "Ines",
	}
	lastNames = []string{
		"Smith", "Jones", "Williams", "Brown", "Davis", "Miller",
		"Wilson", "Moore", "Taylor", "Anderson", "Havekes", "Clijsters", "Duits",
	}
)

// Seeder inserts randomly generated identity records into the document
// store. It exists purely to produce test data; the sync itself never
// writes to the source collection.
type Seeder struct {
	collection *mongo.Collection
}

// NewSeeder connects to the document store for seeding.
func NewSeeder(ctx context.Context, cfg Config) (*Seeder, error) {
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
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to reach document store: %w", err)
	}

	return &Seeder{
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// InsertRandom generates count random identity records and inserts them.
// Emails follow the pattern <prefix><n>@<domain> so seeded accounts are easy
// to recognize and target with the email allow-list. Returns the number of
// documents inserted.
func (s *Seeder) InsertRandom(ctx context.Context, count int, emailPrefix, emailDomain string) (int, error) {
	if count <= 0 {
		return 0, fmt.Errorf("invalid record count: %d", count)
	}

	docs := make([]interface{}, 0, count)
	now := time.Now()

	for i := 1; i <= count; i++ {
		docs = append(docs, bson.M{
			"uid":                   uuid.NewString(),
			"chosenName":            firstNames[rand.Intn(len(firstNames))],
			"givenName":             firstNames[rand.Intn(len(firstNames))],
			"familyName":            lastNames[rand.Intn(len(lastNames))],
			"schacHomeOrganization": "eduid.nl",
			"email":                 fmt.Sprintf("%s%d@%s", emailPrefix, i, emailDomain),
			"syncToEntra":           true,
			"createdAt":             now,
		})
	}

	result, err := s.collection.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("failed to insert seed records: %w", err)
	}

	return len(result.InsertedIDs), nil
}
