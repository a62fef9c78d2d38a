package google

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

// EnvCredentials is the environment variable that overrides the
// default service-account key location.
const EnvCredentials = "GOOGLE_SA_CREDENTIALS"

// DefaultCredentialsFile is where the key is looked up when neither an
// explicit path nor the environment variable is set.
const DefaultCredentialsFile = "credentials/service_account.json"

// CredentialsNotFoundError indicates the service-account key file is
// missing at the resolved path.
type CredentialsNotFoundError struct {
	Path string
}

func (e *CredentialsNotFoundError) Error() string {
	return fmt.Sprintf("service account credentials not found at %s: place the JSON key file there or set %s", e.Path, EnvCredentials)
}

// ResolveCredentialsFile returns the service-account key path to use:
// the explicit path if non-empty, then the GOOGLE_SA_CREDENTIALS
// environment variable, then the default path.
func ResolveCredentialsFile(path string) string {
	if path != "" {
		return path
	}
	if env := os.Getenv(EnvCredentials); env != "" {
		return env
	}
	return DefaultCredentialsFile
}

// NewSheetsService creates an authenticated Google Sheets service from
// the service-account key at credentialsFile. The key is read eagerly
// so a missing file fails at construction, not on the first remote
// call.
func NewSheetsService(ctx context.Context, credentialsFile string) (*sheets.Service, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &CredentialsNotFoundError{Path: credentialsFile}
		}
		return nil, fmt.Errorf("failed to read service account credentials: %w", err)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	svc, err := sheets.NewService(ctx, option.WithTokenSource(creds.TokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}

	return svc, nil
}
