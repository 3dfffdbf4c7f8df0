package dumper

import (
	"context"
	"io"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	mongooptions "go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/erraggy/mongotype"
	"github.com/erraggy/mongotype/mterrors"
)

// CollectionConfig describes a live MongoDB collection to dump.
type CollectionConfig struct {
	// URI is the mongodb:// connection string.
	URI string
	// Database is the database name.
	Database string
	// Collection is the collection name.
	Collection string
	// Filter restricts the documents returned; nil means all documents.
	Filter bson.D
	// Projection restricts the fields returned; nil means all fields.
	Projection bson.D
	// Limit caps the number of documents; zero means no limit.
	Limit int64
}

// CollectionSource yields documents from a MongoDB collection via a
// driver cursor. Connection problems surface as
// *mterrors.ConnectionError so callers can report them separately from
// rendering failures.
type CollectionSource struct {
	client *mongo.Client
	coll   *mongo.Collection
	cursor *mongo.Cursor
	filter bson.D
	uri    string
}

// clientOptions returns the driver options for one dump connection,
// identifying mongotype to the server via its appName.
func clientOptions(uri string) *mongooptions.ClientOptions {
	return mongooptions.Client().ApplyURI(uri).SetAppName(mongotype.UserAgent())
}

// OpenCollection connects to the deployment, verifies it is reachable
// and opens a cursor over the configured collection. The caller owns the
// returned source and must Close it.
func OpenCollection(ctx context.Context, cfg CollectionConfig) (*CollectionSource, error) {
	if cfg.Database == "" || cfg.Collection == "" {
		return nil, &mterrors.ConfigError{Option: "namespace", Message: "database and collection are required"}
	}

	client, err := mongo.Connect(clientOptions(cfg.URI))
	if err != nil {
		return nil, &mterrors.ConnectionError{URI: cfg.URI, Message: "connect", Cause: err}
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, &mterrors.ConnectionError{URI: cfg.URI, Message: "ping", Cause: err}
	}

	filter := cfg.Filter
	if filter == nil {
		filter = bson.D{}
	}
	findOpts := mongooptions.Find()
	if cfg.Limit > 0 {
		findOpts.SetLimit(cfg.Limit)
	}
	if cfg.Projection != nil {
		findOpts.SetProjection(cfg.Projection)
	}

	coll := client.Database(cfg.Database).Collection(cfg.Collection)
	cursor, err := coll.Find(ctx, filter, findOpts)
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, &mterrors.ConnectionError{URI: cfg.URI, Message: "find", Cause: err}
	}

	return &CollectionSource{
		client: client,
		coll:   coll,
		cursor: cursor,
		filter: filter,
		uri:    cfg.URI,
	}, nil
}

// Next returns the next document from the cursor or io.EOF when the
// cursor is exhausted. The returned bytes are copied out of the cursor
// and stay valid after further Next calls.
func (s *CollectionSource) Next(ctx context.Context) (bson.Raw, error) {
	if s.cursor.Next(ctx) {
		doc := make(bson.Raw, len(s.cursor.Current))
		copy(doc, s.cursor.Current)
		return doc, nil
	}
	if err := s.cursor.Err(); err != nil {
		return nil, &mterrors.ConnectionError{URI: s.uri, Message: "cursor", Cause: err}
	}
	return nil, io.EOF
}

// Count returns the number of documents matching the filter.
func (s *CollectionSource) Count(ctx context.Context) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, s.filter)
	if err != nil {
		return 0, &mterrors.ConnectionError{URI: s.uri, Message: "count", Cause: err}
	}
	return n, nil
}

// Close closes the cursor and disconnects the client.
func (s *CollectionSource) Close(ctx context.Context) error {
	cursorErr := s.cursor.Close(ctx)
	disconnectErr := s.client.Disconnect(ctx)
	if cursorErr != nil {
		return cursorErr
	}
	return disconnectErr
}
