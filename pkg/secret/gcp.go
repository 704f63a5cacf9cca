package secret

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

type gcpAccessor struct {
	client *secretmanager.Client
}

func newGCPAccessor(ctx context.Context) (GCPAccessor, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create a Secret Manager client: %w", err)
	}
	return &gcpAccessor{client: client}, nil
}

func (a *gcpAccessor) AccessSecret(ctx context.Context, name string) (string, error) {
	resp, err := a.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return "", fmt.Errorf("access the secret version: %w", err)
	}
	return string(resp.GetPayload().GetData()), nil
}
