package firestore

import (
	"context"
	"fmt"

	"chatmod/pkg/config"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

var instance *Firestore

// Firestore persists the operational data of the bot adapter: the
// banned-word list and pending punishment-removal tasks. Violation
// history stays in-process and never lands here.
type Firestore struct {
	ctx    context.Context
	cfg    *config.Config
	client *firestore.Client
}

func Get() *Firestore {
	if instance == nil {
		panic("firestore is not initialized")
	}

	return instance
}

func Initialize(ctx context.Context, cfg *config.Config) (*Firestore, error) {
	if instance != nil {
		return instance, nil
	}

	client, err := firestore.NewClient(ctx, cfg.GoogleCloud.ProjectID, option.WithCredentialsFile(cfg.GoogleCloud.ServiceAccountFilename))
	if err != nil {
		return nil, fmt.Errorf("error creating firestore client, %s", err)
	}

	instance = &Firestore{
		ctx:    ctx,
		cfg:    cfg,
		client: client,
	}

	return instance, nil
}

func (fs *Firestore) Close() error {
	return fs.client.Close()
}
