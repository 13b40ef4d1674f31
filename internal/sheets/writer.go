package sheets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/hke-expeditions/trip-backend/pkg/logging"
)

// Value interpretation modes accepted by the sink. USER_ENTERED lets the
// sheet re-type numeric-looking strings (matching the historical behavior
// of this write path); RAW stores every cell literally.
const (
	ValueInputUserEntered = "USER_ENTERED"
	ValueInputRaw         = "RAW"
)

// Config locates the sink and selects a credential-loading strategy.
// Exactly one of CredentialsJSON and CredentialsFile must be set; when both
// are, the inline JSON wins.
type Config struct {
	CredentialsJSON string
	CredentialsFile string
	SpreadsheetID   string
	SheetTab        string
	ValueInput      string
	Timeout         time.Duration
}

// rowAppender is an open handle to a resolved sheet tab.
type rowAppender interface {
	AppendRow(ctx context.Context, row []interface{}) error
}

// openFunc authenticates against the remote service and resolves the
// target tab. It is a field on Writer so tests can stand in a fake sink.
type openFunc func(ctx context.Context, creds *google.Credentials, cfg Config) (rowAppender, error)

// Writer appends rows to a single Google Sheet tab. Every Append call
// independently resolves credentials, authenticates, and opens the tab;
// nothing is cached between calls.
type Writer struct {
	cfg    Config
	open   openFunc
	logger *logging.Logger
}

// NewWriter creates a sheet writer for the configured sink.
func NewWriter(cfg Config, logger *logging.Logger) *Writer {
	if cfg.ValueInput == "" {
		cfg.ValueInput = ValueInputUserEntered
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Writer{
		cfg:    cfg,
		open:   openGoogleSink,
		logger: logger,
	}
}

// Append writes one row as the next trailing row of the configured tab.
// Exactly one attempt is made; the error classifies the failing phase:
// *ConfigurationError before any network call, *SinkUnavailableError when
// authentication or resolution fails, *WriteError when the append itself
// fails or the deadline expires.
func (w *Writer) Append(ctx context.Context, row []interface{}) error {
	source, err := w.resolveConfig()
	if err != nil {
		return err
	}

	creds, err := source.Load(ctx)
	if err != nil {
		return &ConfigurationError{Field: "credentials", Cause: err}
	}

	ctx, cancel := context.WithTimeout(ctx, w.cfg.Timeout)
	defer cancel()

	sink, err := w.open(ctx, creds, w.cfg)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return &WriteError{Cause: err}
		}
		return &SinkUnavailableError{Cause: err}
	}

	if err := sink.AppendRow(ctx, row); err != nil {
		return &WriteError{Cause: err}
	}

	w.logger.Info("lead row appended",
		"sheet_id", w.cfg.SpreadsheetID,
		"tab", w.cfg.SheetTab,
	)
	return nil
}

// resolveConfig validates the sink location and picks the credential
// strategy. It never touches the network, so a misconfigured deployment
// fails before any remote call.
func (w *Writer) resolveConfig() (CredentialSource, error) {
	if strings.TrimSpace(w.cfg.SpreadsheetID) == "" {
		return nil, &ConfigurationError{Field: "GOOGLE_SHEET_ID"}
	}
	if strings.TrimSpace(w.cfg.SheetTab) == "" {
		return nil, &ConfigurationError{Field: "GOOGLE_SHEET_TAB"}
	}
	switch {
	case strings.TrimSpace(w.cfg.CredentialsJSON) != "":
		return InlineCredentials{JSON: w.cfg.CredentialsJSON}, nil
	case strings.TrimSpace(w.cfg.CredentialsFile) != "":
		return FileCredentials{Path: w.cfg.CredentialsFile}, nil
	default:
		return nil, &ConfigurationError{Field: "GOOGLE_CREDENTIALS_JSON"}
	}
}

// googleSink is a resolved handle to one tab of one spreadsheet.
type googleSink struct {
	svc *sheetsapi.Service
	cfg Config
}

func openGoogleSink(ctx context.Context, creds *google.Credentials, cfg Config) (rowAppender, error) {
	svc, err := sheetsapi.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}

	// Resolve the spreadsheet and tab up front so an unknown id or tab
	// surfaces as a resolution failure, not a failed append.
	_, err = svc.Spreadsheets.Get(cfg.SpreadsheetID).
		Ranges(tabRange(cfg.SheetTab)).
		Fields("spreadsheetId").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("resolve sheet %s tab %q: %w", cfg.SpreadsheetID, cfg.SheetTab, err)
	}

	return &googleSink{svc: svc, cfg: cfg}, nil
}

func (s *googleSink) AppendRow(ctx context.Context, row []interface{}) error {
	vr := &sheetsapi.ValueRange{Values: [][]interface{}{row}}
	_, err := s.svc.Spreadsheets.Values.Append(s.cfg.SpreadsheetID, tabRange(s.cfg.SheetTab), vr).
		ValueInputOption(s.cfg.ValueInput).
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}

// tabRange quotes the tab name for A1 notation so tabs with spaces resolve.
func tabRange(tab string) string {
	return fmt.Sprintf("'%s'!A1", strings.ReplaceAll(tab, "'", "''"))
}
