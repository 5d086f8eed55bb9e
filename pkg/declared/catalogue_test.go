package declared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ers-returns/fileupload/pkg/declared"
	"github.com/ers-returns/fileupload/pkg/validator"
)

func TestParseScheme(t *testing.T) {
	t.Parallel()

	s, err := declared.ParseScheme(" emi ")
	require.NoError(t, err)
	assert.Equal(t, declared.SchemeEMI, s)

	_, err = declared.ParseScheme("ESOP")
	assert.ErrorIs(t, err, declared.ErrUnknownScheme)
}

func TestScheme_Files(t *testing.T) {
	t.Parallel()

	for _, s := range declared.Schemes {
		assert.NotEmpty(t, s.Files(), s)
	}

	files := declared.SchemeEMI.Files()
	files[0] = "changed.csv"
	assert.NotContains(t, declared.SchemeEMI.Files(), "changed.csv")
}

func TestNewDeclaration(t *testing.T) {
	t.Parallel()

	t.Run("keeps catalogue order and drops duplicates", func(t *testing.T) {
		t.Parallel()

		d, err := declared.NewDeclaration("emi", []string{"EMI40_Taxable_V4.csv", "EMI40_Adjustments_V4.csv", "EMI40_Taxable_V4.csv"})
		require.NoError(t, err)
		assert.Equal(t, declared.SchemeEMI, d.Scheme)
		assert.Equal(t, []string{"EMI40_Adjustments_V4.csv", "EMI40_Taxable_V4.csv"}, d.Files)
	})

	tests := []struct {
		name      string
		scheme    string
		files     []string
		wantField string
	}{
		{"missing scheme", "", []string{"a.csv"}, "scheme"},
		{"unknown scheme", "ESOP", []string{"a.csv"}, "scheme"},
		{"no files", "SIP", nil, "files"},
		{"file from another scheme", "SIP", []string{"EMI40_Taxable_V4.csv"}, "files"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := declared.NewDeclaration(tt.scheme, tt.files)
			require.Error(t, err)
			errs := validator.ExtractValidationErrors(err)
			require.NotEmpty(t, errs)
			assert.Equal(t, tt.wantField, errs[0].Field)
		})
	}
}
