package fileselect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ers-returns/fileupload/pkg/fileselect"
)

func TestCapabilityFromIndicator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ie   string
		want fileselect.Capability
	}{
		{"", fileselect.Rich},
		{"undefined", fileselect.Rich},
		{"11", fileselect.Rich},
		{"10", fileselect.Rich},
		{"9", fileselect.Legacy},
		{" 8 ", fileselect.Legacy},
		{"7", fileselect.Legacy},
	}
	for _, tt := range tests {
		t.Run(tt.ie, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fileselect.CapabilityFromIndicator(tt.ie))
		})
	}
}

func TestExtractors(t *testing.T) {
	t.Parallel()

	in := fileselect.Input{ID: "f1", Name: "data.csv", Size: 42, Path: `C:\fakepath\other.csv`}

	f, ok := fileselect.ExtractorFor(fileselect.Rich).Extract(in)
	assert.True(t, ok)
	assert.Equal(t, fileselect.SelectedFile{Name: "data.csv", Size: 42, SizeKnown: true}, f)

	f, ok = fileselect.ExtractorFor(fileselect.Legacy).Extract(in)
	assert.True(t, ok)
	assert.Equal(t, fileselect.SelectedFile{Name: "other.csv"}, f)

	f, ok = fileselect.RichExtractor.Extract(fileselect.Input{ID: "f2", Name: "data.csv", Size: -5})
	assert.True(t, ok)
	assert.Equal(t, fileselect.SelectedFile{Name: "data.csv"}, f)

	_, ok = fileselect.RichExtractor.Extract(fileselect.Input{ID: "empty"})
	assert.False(t, ok)
	_, ok = fileselect.LegacyExtractor.Extract(fileselect.Input{ID: "empty"})
	assert.False(t, ok)

	assert.Equal(t, "legacy", fileselect.Legacy.String())
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, testConfig.Validate())

	bad := testConfig
	bad.CSVMaxFileSize = 0
	bad.SupportEmail = ""
	assert.ErrorIs(t, bad.Validate(), fileselect.ErrInvalidConfig)
}

func TestFlows(t *testing.T) {
	t.Parallel()

	declared := []string{"a.csv"}
	csv := fileselect.CSVFlow(testConfig, declared)
	declared[0] = "changed.csv"
	assert.Equal(t, []string{"a.csv"}, csv.ExpectedFiles)
	assert.Equal(t, "csv", csv.Extension)
	assert.Zero(t, csv.MaxNameLength)

	assert.NotNil(t, fileselect.CSVFlow(testConfig, nil).ExpectedFiles)

	ods := fileselect.ODSFlow(testConfig)
	assert.Nil(t, ods.ExpectedFiles)
	assert.Equal(t, 20, ods.MaxNameLength)
	assert.Equal(t, int64(10_000_000), ods.MaxSizeBytes)
}
