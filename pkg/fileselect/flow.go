package fileselect

import (
	"errors"
	"fmt"
)

// Config holds the limits of both upload flows.
type Config struct {
	CSVMaxFileSize       int64  `env:"CSV_MAX_FILE_SIZE" envDefault:"100000000"`
	ODSMaxFileSize       int64  `env:"ODS_MAX_FILE_SIZE" envDefault:"10000000"`
	ODSMaxFileNameLength int    `env:"ODS_MAX_FILENAME_LENGTH" envDefault:"240"`
	SupportEmail         string `env:"SUPPORT_EMAIL" envDefault:"shareschemes@hmrc.gov.uk"`
}

// Validate implements config.Validator.
func (c Config) Validate() error {
	var errs []error
	if c.CSVMaxFileSize <= 0 {
		errs = append(errs, fmt.Errorf("CSV_MAX_FILE_SIZE must be positive, got %d", c.CSVMaxFileSize))
	}
	if c.ODSMaxFileSize <= 0 {
		errs = append(errs, fmt.Errorf("ODS_MAX_FILE_SIZE must be positive, got %d", c.ODSMaxFileSize))
	}
	if c.ODSMaxFileNameLength <= 0 {
		errs = append(errs, fmt.Errorf("ODS_MAX_FILENAME_LENGTH must be positive, got %d", c.ODSMaxFileNameLength))
	}
	if c.SupportEmail == "" {
		errs = append(errs, errors.New("SUPPORT_EMAIL is required"))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}

const (
	FlowCSV = "csv"
	FlowODS = "ods"
)

// Flow describes the checks of one upload page.
type Flow struct {
	Name         string
	Extension    string
	MaxSizeBytes int64
	// MaxNameLength of zero disables the name length check.
	MaxNameLength int
	// ExpectedFiles of nil disables the declared list check. An empty,
	// non-nil list rejects every name.
	ExpectedFiles []string
	SupportEmail  string
}

// CSVFlow returns the multi-file CSV flow checking against declared.
func CSVFlow(cfg Config, declared []string) Flow {
	expected := make([]string, len(declared))
	copy(expected, declared)
	return Flow{
		Name:          FlowCSV,
		Extension:     "csv",
		MaxSizeBytes:  cfg.CSVMaxFileSize,
		ExpectedFiles: expected,
		SupportEmail:  cfg.SupportEmail,
	}
}

// ODSFlow returns the single-file ODS flow.
func ODSFlow(cfg Config) Flow {
	return Flow{
		Name:          FlowODS,
		Extension:     "ods",
		MaxSizeBytes:  cfg.ODSMaxFileSize,
		MaxNameLength: cfg.ODSMaxFileNameLength,
		SupportEmail:  cfg.SupportEmail,
	}
}
