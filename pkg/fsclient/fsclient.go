package fsclient

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// Client wraps the Firestore handle so repositories don't deal with
// Firebase app bootstrapping.
type Client struct {
	Firestore *firestore.Client
}

func New(ctx context.Context, credentialsPath string) (*Client, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("error while initializing firebase app: %w", err)
	}

	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error while connecting to firestore: %w", err)
	}

	return &Client{Firestore: fs}, nil
}

func (c *Client) Close() error {
	if c.Firestore != nil {
		return c.Firestore.Close()
	}

	return nil
}
