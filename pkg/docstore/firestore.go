package docstore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(ctx context.Context, projectID, credentialsFile string) (*FirestoreStore, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	return NewFirestoreStoreWithClient(client), nil
}

func NewFirestoreStoreWithClient(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) GetDocument(ctx context.Context, collection, id string) (Snapshot, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		return nil, classify(err, collection+"/"+id)
	}
	return &firestoreSnapshot{snap: snap}, nil
}

func (s *FirestoreStore) ListDocuments(ctx context.Context, collection string) ([]Snapshot, error) {
	docs, err := s.client.Collection(collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, classify(err, collection)
	}

	snaps := make([]Snapshot, 0, len(docs))
	for _, doc := range docs {
		snaps = append(snaps, &firestoreSnapshot{snap: doc})
	}
	return snaps, nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

type firestoreSnapshot struct {
	snap *firestore.DocumentSnapshot
}

func (f *firestoreSnapshot) ID() string {
	return f.snap.Ref.ID
}

func (f *firestoreSnapshot) DataTo(v interface{}) error {
	return f.snap.DataTo(v)
}

// classify maps gRPC status codes onto the package sentinels while keeping
// the original error in the chain.
func classify(err error, path string) error {
	switch status.Code(err) {
	case codes.NotFound:
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	case codes.PermissionDenied:
		return fmt.Errorf("%s: %w: %w", path, ErrAccessDenied, err)
	default:
		return fmt.Errorf("%s: %w", path, err)
	}
}
