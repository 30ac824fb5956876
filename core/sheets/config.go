package sheets

// Config holds configuration for the spreadsheet backend.
type Config struct {
	// ID is the spreadsheet identifier. Required.
	ID string `mapstructure:"id" default:""`
	// Token is the bearer token used to authenticate API calls. Required.
	Token string `mapstructure:"token" default:""`
	// Endpoint is the base URL of the spreadsheet API.
	Endpoint string `mapstructure:"endpoint" default:"https://sheets.googleapis.com"`
	// Sheet is the title of the target sheet. Empty means the first sheet.
	Sheet string `mapstructure:"sheet" default:""`
	// KeyColumn is the column letter holding translation keys.
	KeyColumn string `mapstructure:"key_column" default:"A"`
	// OriginalColumn is the column letter holding last-synced baseline values.
	OriginalColumn string `mapstructure:"original_column" default:"B"`
	// UpdatedColumn is the column letter holding human-edited values.
	UpdatedColumn string `mapstructure:"updated_column" default:"C"`
	// HeaderRow is the row number of the title row. Zero means no header.
	HeaderRow int `mapstructure:"header_row" default:"1"`
	// BackupKeep is the number of backup sheets retained after rotation.
	BackupKeep int `mapstructure:"backup_keep" default:"5"`
	// DiffPolicy selects the reconciliation policy (relaxed or strict).
	DiffPolicy string `mapstructure:"diff_policy" default:"relaxed"`
	// TimeoutSeconds is the HTTP timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// HasHeader reports whether a header row is configured.
func (c Config) HasHeader() bool {
	return c.HeaderRow > 0
}

// FirstRow returns the first row the sync touches: the header row when
// configured, row 1 otherwise.
func (c Config) FirstRow() int {
	if c.HeaderRow > 0 {
		return c.HeaderRow
	}
	return 1
}
