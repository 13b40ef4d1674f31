package sheets

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// CredentialSource loads service-account key material for the sink.
// Implementations cover the two supported strategies: key JSON embedded in
// configuration and a key file on disk. No component materializes
// credential files as a side effect of request handling.
type CredentialSource interface {
	Load(ctx context.Context) (*google.Credentials, error)
}

// InlineCredentials parses key material supplied inline in configuration.
type InlineCredentials struct {
	JSON string
}

// Load parses the inline JSON into spreadsheet-scoped credentials.
func (s InlineCredentials) Load(ctx context.Context) (*google.Credentials, error) {
	creds, err := google.CredentialsFromJSON(ctx, []byte(s.JSON), sheetsapi.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account JSON: %w", err)
	}
	return creds, nil
}

// FileCredentials reads a service-account key file from disk.
type FileCredentials struct {
	Path string
}

// Load reads and parses the key file into spreadsheet-scoped credentials.
func (s FileCredentials) Load(ctx context.Context) (*google.Credentials, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read key file %s: %w", s.Path, err)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, sheetsapi.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse key file %s: %w", s.Path, err)
	}
	return creds, nil
}
