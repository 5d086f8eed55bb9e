package fileselect_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ers-returns/fileupload/pkg/fileselect"
)

func TestValidateBatch(t *testing.T) {
	t.Parallel()

	v := newValidator(t)
	flow := fileselect.CSVFlow(testConfig, []string{"data.csv", "other.csv"})

	t.Run("all ok", func(t *testing.T) {
		t.Parallel()

		b := v.ValidateBatch(context.Background(), flow, fileselect.RichExtractor, []fileselect.Input{
			{ID: "f1", Name: "data.csv", Size: 1},
			{ID: "f2", Name: "other.csv", Size: 1},
		})
		assert.True(t, b.Ok())
		assert.Zero(t, b.Errors)
		assert.Empty(t, b.Duplicates)
		_, ok := b.Last()
		assert.False(t, ok)
	})

	t.Run("skips inputs without a selection", func(t *testing.T) {
		t.Parallel()

		b := v.ValidateBatch(context.Background(), flow, fileselect.RichExtractor, []fileselect.Input{
			{ID: "f1"},
			{ID: "f2", Name: "data.csv", Size: 1},
		})
		require.Len(t, b.Results, 1)
		assert.Equal(t, "f2", b.Results[0].InputID)
		_, ok := b.Result("f1")
		assert.False(t, ok)
	})

	t.Run("counts every failure and the last one owns the banner", func(t *testing.T) {
		t.Parallel()

		b := v.ValidateBatch(context.Background(), flow, fileselect.RichExtractor, []fileselect.Input{
			{ID: "f1", Name: "bad*.csv", Size: 1},
			{ID: "f2", Name: "data.csv", Size: 1},
			{ID: "f3", Name: "data.txt", Size: 1},
		})
		assert.False(t, b.Ok())
		assert.Equal(t, 2, b.Errors)
		assert.Equal(t, []string{"f1", "f3"}, b.Rejected())

		last, ok := b.Last()
		require.True(t, ok)
		assert.Equal(t, "f3", last.InputID)
		assert.ErrorIs(t, last.Err(), fileselect.ErrWrongExtension)

		ok2, found := b.Result("f2")
		require.True(t, found)
		assert.True(t, ok2.Ok())
	})

	t.Run("duplicate names mark every matching input", func(t *testing.T) {
		t.Parallel()

		b := v.ValidateBatch(context.Background(), flow, fileselect.RichExtractor, []fileselect.Input{
			{ID: "f1", Name: "data.csv", Size: 1},
			{ID: "f2", Name: "data.csv", Size: 1},
			{ID: "f3", Name: "other.csv", Size: 1},
		})
		assert.True(t, b.Duplicates["f1"])
		assert.True(t, b.Duplicates["f2"])
		assert.False(t, b.Duplicates["f3"])

		// duplicates are display only and do not block submission
		assert.True(t, b.Ok())
		assert.Zero(t, b.Errors)
	})

	t.Run("single occurrence is never a duplicate", func(t *testing.T) {
		t.Parallel()

		b := v.ValidateBatch(context.Background(), flow, fileselect.RichExtractor, []fileselect.Input{
			{ID: "f1", Name: "data.csv", Size: 1},
		})
		assert.Empty(t, b.Duplicates)
	})

	t.Run("duplicates failing before the declared check are not marked", func(t *testing.T) {
		t.Parallel()

		b := v.ValidateBatch(context.Background(), flow, fileselect.RichExtractor, []fileselect.Input{
			{ID: "f1", Name: "data.txt", Size: 1},
			{ID: "f2", Name: "data.txt", Size: 1},
		})
		assert.Empty(t, b.Duplicates)
		assert.Equal(t, 2, b.Errors)
	})

	t.Run("undeclared duplicates are marked and rejected", func(t *testing.T) {
		t.Parallel()

		b := v.ValidateBatch(context.Background(), flow, fileselect.RichExtractor, []fileselect.Input{
			{ID: "f1", Name: "x.csv", Size: 1},
			{ID: "f2", Name: "x.csv", Size: 1},
		})
		assert.True(t, b.Duplicates["f1"])
		assert.True(t, b.Duplicates["f2"])
		assert.Equal(t, 2, b.Errors)
	})

	t.Run("ods flow never marks duplicates", func(t *testing.T) {
		t.Parallel()

		b := v.ValidateBatch(context.Background(), fileselect.ODSFlow(testConfig), fileselect.RichExtractor, []fileselect.Input{
			{ID: "f1", Name: "a.ods", Size: 1},
			{ID: "f2", Name: "a.ods", Size: 1},
		})
		assert.Empty(t, b.Duplicates)
	})
}

func TestValidateBatch_Legacy(t *testing.T) {
	t.Parallel()

	v := newValidator(t)
	flow := fileselect.CSVFlow(testConfig, []string{"data.csv"})

	b := v.ValidateBatch(context.Background(), flow, fileselect.LegacyExtractor, []fileselect.Input{
		{ID: "f1", Path: `C:\fakepath\data.csv`, Name: "ignored.csv", Size: 1 << 40},
		{ID: "f2"},
	})
	require.Len(t, b.Results, 1)
	assert.Equal(t, "data.csv", b.Results[0].File.Name)
	assert.False(t, b.Results[0].File.SizeKnown)
	assert.True(t, b.Ok())
}

func TestValidateBatch_FailThenSucceed(t *testing.T) {
	t.Parallel()

	v := newValidator(t)
	flow := fileselect.ODSFlow(testConfig)

	first := v.ValidateBatch(context.Background(), flow, fileselect.RichExtractor, []fileselect.Input{{ID: "f", Name: "a.txt", Size: 1}})
	require.False(t, first.Ok())

	second := v.ValidateBatch(context.Background(), flow, fileselect.RichExtractor, []fileselect.Input{{ID: "f", Name: "a.ods", Size: 1}})
	assert.True(t, second.Ok())
	_, ok := second.Last()
	assert.False(t, ok)
}
