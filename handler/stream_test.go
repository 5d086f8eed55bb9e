package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ers-returns/fileupload/handler"
)

func TestStream(t *testing.T) {
	t.Parallel()

	t.Run("plain request renders the page", func(t *testing.T) {
		t.Parallel()
		ran := false
		resp := handler.StreamStatus(http.StatusUnprocessableEntity, textComponent("<html>full</html>"), func(handler.StreamContext) error {
			ran = true
			return nil
		})

		rec := httptest.NewRecorder()
		require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodPost, "/csv/validate", nil)))
		assert.False(t, ran)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "<html>full</html>", rec.Body.String())
	})

	t.Run("datastar-only endpoint rejects plain requests", func(t *testing.T) {
		t.Parallel()
		err := handler.Stream(nil, func(handler.StreamContext) error { return nil }).
			Render(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
		assert.ErrorIs(t, err, handler.ErrBadRequest)
	})

	t.Run("datastar request writes events in order", func(t *testing.T) {
		t.Parallel()
		resp := handler.Stream(nil, func(stream handler.StreamContext) error {
			if err := stream.Remove("#error-summary"); err != nil {
				return err
			}
			if err := stream.SendComponent(textComponent(`<div id="error-summary">bad</div>`),
				handler.WithTarget("#file-input"), handler.WithPatchMode(handler.PatchAfter)); err != nil {
				return err
			}
			if err := stream.SendSignals(map[string]any{"submitDisabled": true}); err != nil {
				return err
			}
			return stream.Focus("errors")
		})

		rec := httptest.NewRecorder()
		require.NoError(t, resp.Render(rec, datastarRequest(http.MethodPost, "/csv/validate", "{}")))
		body := rec.Body.String()

		removeAt := strings.Index(body, "mode remove")
		patchAt := strings.Index(body, `elements <div id="error-summary">bad</div>`)
		signalsAt := strings.Index(body, "event: datastar-patch-signals")
		focusAt := strings.Index(body, `document.getElementById(\"errors\")`)
		if focusAt < 0 {
			focusAt = strings.Index(body, `document.getElementById("errors")`)
		}

		require.GreaterOrEqual(t, removeAt, 0, body)
		require.Greater(t, patchAt, removeAt, body)
		require.Greater(t, signalsAt, patchAt, body)
		require.Greater(t, focusAt, signalsAt, body)
		assert.Contains(t, body, "selector #error-summary")
		assert.Contains(t, body, `"submitDisabled":true`)
	})

	t.Run("send multiple patches in order", func(t *testing.T) {
		t.Parallel()
		resp := handler.Stream(nil, func(stream handler.StreamContext) error {
			return stream.SendMultiple(
				handler.Patch(textComponent(`<a id="summary"></a>`)),
				handler.Patch(textComponent(`<div id="banner"></div>`),
					handler.WithTarget("#file-wrapper"), handler.WithPatchMode(handler.PatchBefore)),
			)
		})

		rec := httptest.NewRecorder()
		require.NoError(t, resp.Render(rec, datastarRequest(http.MethodPost, "/csv/validate", "{}")))
		body := rec.Body.String()

		summaryAt := strings.Index(body, `elements <a id="summary"></a>`)
		bannerAt := strings.Index(body, `elements <div id="banner"></div>`)
		require.GreaterOrEqual(t, summaryAt, 0, body)
		require.Greater(t, bannerAt, summaryAt, body)
		assert.Contains(t, body, "selector #file-wrapper")
		assert.Contains(t, body, "mode before")
	})
}
