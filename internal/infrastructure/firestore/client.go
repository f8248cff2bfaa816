package firestore

import (
	"context"
	"errors"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient connects to the project. A readable credentials file is
// used when given; otherwise application default credentials apply (Cloud Run).
func NewFirestoreClient(ctx context.Context, projectID, credentialsFile string, lggr *zap.SugaredLogger) (*FirestoreClient, error) {
	if projectID == "" {
		return nil, errors.New("FIRESTORE_PROJECT_ID is not set")
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		if _, err := os.Stat(credentialsFile); err != nil {
			lggr.Warnw("Firestore credentials file not found, using default credentials", "file", credentialsFile)
		} else {
			opts = append(opts, option.WithCredentialsFile(credentialsFile))
		}
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	lggr.Infow("Firestore client initialized", "project", projectID, "credentialsFile", len(opts) > 0)
	return &FirestoreClient{client: client}, nil
}

func (fc *FirestoreClient) Close() error {
	return fc.client.Close()
}

func (fc *FirestoreClient) GetClient() *firestore.Client {
	return fc.client
}
