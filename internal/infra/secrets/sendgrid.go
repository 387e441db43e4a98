// internal/infra/secrets/sendgrid.go
package secrets

import (
	"context"
	"fmt"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// SendGridAPIKey resolves the SendGrid key. The env value wins when set;
// otherwise the key is read from Secret Manager at
// projects/{project}/secrets/{secretName}/versions/latest.
func SendGridAPIKey(ctx context.Context, envValue, projectID, secretName string) (string, error) {
	if v := strings.TrimSpace(envValue); v != "" {
		return v, nil
	}

	prj := strings.TrimSpace(projectID)
	sec := strings.TrimSpace(secretName)
	if prj == "" || sec == "" {
		return "", fmt.Errorf("secrets: project id and secret name are required")
	}

	sm, err := secretmanager.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("secrets: secret manager client init failed: %w", err)
	}
	defer sm.Close()

	name := "projects/" + prj + "/secrets/" + sec + "/versions/latest"
	resp, err := sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", fmt.Errorf("secrets: AccessSecretVersion failed (%s): %w", name, err)
	}
	if resp == nil || resp.Payload == nil {
		return "", fmt.Errorf("secrets: empty payload (%s)", name)
	}

	return strings.TrimSpace(string(resp.Payload.Data)), nil
}
