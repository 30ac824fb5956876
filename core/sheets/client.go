package sheets

import (
	"context"
	"fmt"
	"time"

	"translation-sheet/core/utils"

	"github.com/go-resty/resty/v2"
)

// Sheet identifies one named sheet (tab) inside the spreadsheet.
type Sheet struct {
	ID    int64
	Title string
}

// Client defines the interface for spreadsheet operations.
type Client interface {
	// GetValues reads a rectangular block of cells, row-major.
	// Rows may be ragged: missing trailing cells are simply absent.
	GetValues(ctx context.Context, rng string) ([][]string, error)
	// UpdateValues overwrites the addressed cells with the given rows.
	UpdateValues(ctx context.Context, rng string, values [][]string) error
	// ClearValues blanks the addressed cells.
	ClearValues(ctx context.Context, rng string) error
	// ListSheets returns the sheets of the spreadsheet in tab order.
	ListSheets(ctx context.Context) ([]Sheet, error)
	// DuplicateSheet copies the sheet identified by sourceID under a new title.
	DuplicateSheet(ctx context.Context, sourceID int64, title string) error
	// DeleteSheet removes the sheet identified by sheetID.
	DeleteSheet(ctx context.Context, sheetID int64) error
}

// NewClient creates a new REST client for the spreadsheet backend.
func NewClient(cfg Config) (Client, error) {
	if cfg.ID == "" {
		return nil, fmt.Errorf("spreadsheet id is not configured")
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	http := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetTimeout(time.Duration(timeout) * time.Second).
		SetAuthToken(cfg.Token)

	return &restClient{http: http, id: cfg.ID}, nil
}

type restClient struct {
	http *resty.Client
	id   string
}

// apiError is the backend's error envelope.
type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *restClient) GetValues(ctx context.Context, rng string) ([][]string, error) {
	var resp struct {
		Values [][]any `json:"values"`
	}
	var apiErr apiError

	r, err := c.http.R().SetContext(ctx).
		SetPathParam("id", c.id).
		SetPathParam("range", rng).
		SetResult(&resp).
		SetError(&apiErr).
		Get("/v4/spreadsheets/{id}/values/{range}")
	if err != nil {
		return nil, fmt.Errorf("spreadsheet read failed: %w", err)
	}
	if r.IsError() {
		return nil, &RemoteError{Code: r.StatusCode(), Detail: apiErr.Error.Message}
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, utils.ToString(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (c *restClient) UpdateValues(ctx context.Context, rng string, values [][]string) error {
	body := map[string]any{
		"range":          rng,
		"majorDimension": "ROWS",
		"values":         values,
	}
	var apiErr apiError

	r, err := c.http.R().SetContext(ctx).
		SetPathParam("id", c.id).
		SetPathParam("range", rng).
		SetQueryParam("valueInputOption", "RAW").
		SetBody(body).
		SetError(&apiErr).
		Put("/v4/spreadsheets/{id}/values/{range}")
	if err != nil {
		return fmt.Errorf("spreadsheet write failed: %w", err)
	}
	if r.IsError() {
		return &RemoteError{Code: r.StatusCode(), Detail: apiErr.Error.Message}
	}
	return nil
}

func (c *restClient) ClearValues(ctx context.Context, rng string) error {
	var apiErr apiError

	r, err := c.http.R().SetContext(ctx).
		SetPathParam("id", c.id).
		SetPathParam("range", rng).
		SetError(&apiErr).
		Post("/v4/spreadsheets/{id}/values/{range}:clear")
	if err != nil {
		return fmt.Errorf("spreadsheet clear failed: %w", err)
	}
	if r.IsError() {
		return &RemoteError{Code: r.StatusCode(), Detail: apiErr.Error.Message}
	}
	return nil
}

func (c *restClient) ListSheets(ctx context.Context) ([]Sheet, error) {
	var resp struct {
		Sheets []struct {
			Properties struct {
				SheetID int64  `json:"sheetId"`
				Title   string `json:"title"`
			} `json:"properties"`
		} `json:"sheets"`
	}
	var apiErr apiError

	r, err := c.http.R().SetContext(ctx).
		SetPathParam("id", c.id).
		SetQueryParam("fields", "sheets.properties").
		SetResult(&resp).
		SetError(&apiErr).
		Get("/v4/spreadsheets/{id}")
	if err != nil {
		return nil, fmt.Errorf("spreadsheet lookup failed: %w", err)
	}
	if r.IsError() {
		return nil, &RemoteError{Code: r.StatusCode(), Detail: apiErr.Error.Message}
	}

	sheets := make([]Sheet, 0, len(resp.Sheets))
	for _, s := range resp.Sheets {
		sheets = append(sheets, Sheet{ID: s.Properties.SheetID, Title: s.Properties.Title})
	}
	return sheets, nil
}

func (c *restClient) DuplicateSheet(ctx context.Context, sourceID int64, title string) error {
	return c.batchUpdate(ctx, map[string]any{
		"duplicateSheet": map[string]any{
			"sourceSheetId": sourceID,
			"newSheetName":  title,
		},
	})
}

func (c *restClient) DeleteSheet(ctx context.Context, sheetID int64) error {
	return c.batchUpdate(ctx, map[string]any{
		"deleteSheet": map[string]any{
			"sheetId": sheetID,
		},
	})
}

// batchUpdate posts a single structural request against the spreadsheet.
func (c *restClient) batchUpdate(ctx context.Context, request map[string]any) error {
	body := map[string]any{"requests": []map[string]any{request}}
	var apiErr apiError

	r, err := c.http.R().SetContext(ctx).
		SetPathParam("id", c.id).
		SetBody(body).
		SetError(&apiErr).
		Post("/v4/spreadsheets/{id}:batchUpdate")
	if err != nil {
		return fmt.Errorf("spreadsheet update failed: %w", err)
	}
	if r.IsError() {
		return &RemoteError{Code: r.StatusCode(), Detail: apiErr.Error.Message}
	}
	return nil
}
