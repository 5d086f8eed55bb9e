package upload_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ers-returns/fileupload/handler"
	"github.com/ers-returns/fileupload/locales"
	"github.com/ers-returns/fileupload/modules"
	"github.com/ers-returns/fileupload/modules/upload"
	"github.com/ers-returns/fileupload/pkg/cookie"
	"github.com/ers-returns/fileupload/pkg/declared"
	"github.com/ers-returns/fileupload/pkg/fileselect"
	"github.com/ers-returns/fileupload/pkg/i18n"
	"github.com/ers-returns/fileupload/pkg/logger"
)

var limits = fileselect.Config{
	CSVMaxFileSize:       100_000_000,
	ODSMaxFileSize:       10_000_000,
	ODSMaxFileNameLength: 240,
	SupportEmail:         "shareschemes@hmrc.gov.uk",
}

type fixture struct {
	router   http.Handler
	store    *declared.Memory
	sessions *upload.Sessions
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	tr, err := i18n.NewTranslator(context.Background(), i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."))
	require.NoError(t, err)
	v, err := fileselect.NewValidator(tr)
	require.NoError(t, err)
	cookies, err := cookie.New([]string{"0123456789abcdef0123456789abcdef"})
	require.NoError(t, err)

	store := declared.NewMemory(time.Hour)
	sessions := upload.NewSessions(cookies)
	eh := handler.NewErrorHandler(logger.Discard(), handler.ErrorHandlerConfig{
		Translate: func(ctx context.Context, key string) string { return tr.Tc(ctx, key) },
	})

	return fixture{
		router: modules.Router(modules.RouterOptions{
			CSV: upload.NewCSVService(limits, store, sessions, v, tr, eh),
			ODS: upload.NewODSService(limits, v, tr, eh),
		}),
		store:    store,
		sessions: sessions,
	}
}

// session starts a session declaring files and returns its cookie.
func (f fixture) session(t *testing.T, scheme string, files ...string) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	id := f.sessions.Ensure(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if scheme != "" {
		d, err := declared.NewDeclaration(scheme, files)
		require.NoError(t, err)
		require.NoError(t, f.store.Declare(context.Background(), id, d))
	}
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func (f fixture) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func datastarPost(target, body string, c *http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Datastar-Request", "true")
	req.Header.Set("Content-Type", "application/json")
	if c != nil {
		req.AddCookie(c)
	}
	return req
}

func formPost(target string, values url.Values, c *http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if c != nil {
		req.AddCookie(c)
	}
	return req
}

func TestCSVPage(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	t.Run("new session is sent to the declaration page", func(t *testing.T) {
		t.Parallel()
		rec := f.serve(httptest.NewRequest(http.MethodGet, "/csv", nil))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/csv/declare", rec.Header().Get("Location"))

		var names []string
		for _, c := range rec.Result().Cookies() {
			names = append(names, c.Name)
		}
		assert.Contains(t, names, upload.SessionCookie)
	})

	t.Run("declared files get one input each", func(t *testing.T) {
		t.Parallel()
		c := f.session(t, "EMI", "EMI40_Taxable_V4.csv", "EMI40_RLC_V4.csv")
		req := httptest.NewRequest(http.MethodGet, "/csv", nil)
		req.AddCookie(c)
		req.Header.Set("User-Agent", "Mozilla/4.0 (compatible; MSIE 8.0; Windows NT 6.1)")

		rec := f.serve(req)
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Upload your CSV files")
		assert.Contains(t, body, `id="file_1"`)
		assert.Contains(t, body, `data-file-name="EMI40_RLC_V4.csv"`)
		assert.Contains(t, body, `id="file_2"`)
		assert.NotContains(t, body, `id="file_3"`)
		assert.Contains(t, body, "&#34;ie&#34;:&#34;8&#34;")
	})

	t.Run("IE 11 is not a legacy browser", func(t *testing.T) {
		t.Parallel()
		c := f.session(t, "EMI", "EMI40_Taxable_V4.csv")
		req := httptest.NewRequest(http.MethodGet, "/csv", nil)
		req.AddCookie(c)
		req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Trident/7.0; rv:11.0) like Gecko")

		rec := f.serve(req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "&#34;ie&#34;:&#34;&#34;")
	})
}

func TestCSVDeclare(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	t.Run("page lists every scheme", func(t *testing.T) {
		t.Parallel()
		rec := f.serve(httptest.NewRequest(http.MethodGet, "/csv/declare", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		for _, s := range declared.Schemes {
			assert.Contains(t, rec.Body.String(), `value="`+string(s)+`"`)
		}
	})

	tests := []struct {
		name    string
		values  url.Values
		wantMsg string
	}{
		{name: "no scheme", values: url.Values{"files": {"SIP_Out_V4.csv"}}, wantMsg: "Select a scheme type"},
		{name: "no files", values: url.Values{"scheme": {"SIP"}}, wantMsg: "Select at least one file"},
		{name: "file of another scheme", values: url.Values{"scheme": {"SIP"}, "files": {"CSOP_OptionsGranted_V4.csv"}}, wantMsg: "Select only files from the chosen scheme"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := f.serve(formPost("/csv/declare", tt.values, nil))
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
		})
	}

	t.Run("valid declaration is stored", func(t *testing.T) {
		t.Parallel()
		c := f.session(t, "")
		rec := f.serve(formPost("/csv/declare", url.Values{
			"scheme": {"sip"},
			"files":  {"SIP_Out_V4.csv", "SIP_Awards_V4.csv"},
		}, c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/csv", rec.Header().Get("Location"))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(c)
		id, ok := f.sessions.Lookup(req)
		require.True(t, ok)
		d, err := f.store.Declared(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, declared.SchemeSIP, d.Scheme)
		assert.Equal(t, []string{"SIP_Awards_V4.csv", "SIP_Out_V4.csv"}, d.Files)

		get := httptest.NewRequest(http.MethodGet, "/csv/declare", nil)
		get.AddCookie(c)
		page := f.serve(get).Body.String()
		assert.Contains(t, page, `value="SIP_Out_V4.csv" checked`)
	})

	t.Run("start again forgets the declaration", func(t *testing.T) {
		t.Parallel()
		c := f.session(t, "SIP", "SIP_Out_V4.csv")

		get := httptest.NewRequest(http.MethodGet, "/csv/declare", nil)
		get.AddCookie(c)
		assert.Contains(t, f.serve(get).Body.String(), `<form id="clear-form" method="post" action="/csv/declare/clear">`)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(c)
		id, ok := f.sessions.Lookup(req)
		require.True(t, ok)

		rec := f.serve(formPost("/csv/declare/clear", url.Values{}, c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/csv/declare", rec.Header().Get("Location"))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, upload.SessionCookie, cookies[0].Name)
		assert.Negative(t, cookies[0].MaxAge)

		_, err := f.store.Declared(context.Background(), id)
		assert.ErrorIs(t, err, declared.ErrNotDeclared)
	})

	t.Run("new session has nothing to clear", func(t *testing.T) {
		t.Parallel()
		rec := f.serve(httptest.NewRequest(http.MethodGet, "/csv/declare", nil))
		assert.NotContains(t, rec.Body.String(), "clear-form")
	})
}

func TestCSVValidate_Datastar(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	c := f.session(t, "EMI", "EMI40_Taxable_V4.csv", "EMI40_RLC_V4.csv")

	t.Run("rejection", func(t *testing.T) {
		t.Parallel()
		rec := f.serve(datastarPost("/csv/validate", `{"ie":"","inputs":[
			{"id":"file_1","name":"EMI40_Taxable_V4.csv","size":1000},
			{"id":"file_2","name":"EMI40_RLC_V4.xlsx","size":1000}]}`, c))

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()

		removeAt := strings.Index(body, "mode remove")
		bannerAt := strings.Index(body, `<p id="error-summary"`)
		focusAt := strings.Index(body, "getElementById")
		require.GreaterOrEqual(t, removeAt, 0, body)
		assert.Greater(t, bannerAt, removeAt)
		assert.Greater(t, focusAt, bannerAt)

		assert.Equal(t, 1, strings.Count(body, `<p id="error-summary"`))
		assert.Contains(t, body, "selector #file_2-wrapper")
		assert.Contains(t, body, "mode before")
		assert.Contains(t, body, "This file isn’t a .csv file, choose a different file")
		assert.Contains(t, body, `"alerts":{"file_1":false,"file_2":true}`)
		assert.Contains(t, body, `"submitDisabled":true`)
		assert.Contains(t, body, `href="#file_2-wrapper"`)
	})

	t.Run("last failing input owns the banner", func(t *testing.T) {
		t.Parallel()
		rec := f.serve(datastarPost("/csv/validate", `{"inputs":[
			{"id":"file_1","name":"bad*name.csv","size":1},
			{"id":"file_2","name":"EMI40_Adjustments_V4.csv","size":1}]}`, c))

		body := rec.Body.String()
		assert.Contains(t, body, "selector #file_2-wrapper")
		assert.Contains(t, body, "This isn’t a file that you said you needed to upload")
		assert.NotContains(t, body, "invalid characters</p>")
		assert.Contains(t, body, `"alerts":{"file_1":true,"file_2":true}`)
	})

	t.Run("too large carries the support address", func(t *testing.T) {
		t.Parallel()
		rec := f.serve(datastarPost("/csv/validate", `{"inputs":[
			{"id":"file_1","name":"EMI40_Taxable_V4.csv","size":100000001}]}`, c))

		body := rec.Body.String()
		assert.Contains(t, body, "This file is larger than 100MB")
		assert.Contains(t, body, "mailto:shareschemes@hmrc.gov.uk")
	})

	t.Run("success clears the banner", func(t *testing.T) {
		t.Parallel()
		rec := f.serve(datastarPost("/csv/validate", `{"inputs":[
			{"id":"file_1","name":"EMI40_Taxable_V4.csv","size":100000000},
			{"id":"file_2","name":"","size":0}]}`, c))

		body := rec.Body.String()
		assert.Contains(t, body, "selector #error-summary")
		assert.Contains(t, body, "mode remove")
		assert.NotContains(t, body, `<p id="error-summary"`)
		assert.NotContains(t, body, "getElementById")
		assert.Contains(t, body, `"submitDisabled":false`)
		assert.Contains(t, body, `"alerts":{"file_1":false,"file_2":false}`)
	})

	t.Run("duplicates are marked without blocking", func(t *testing.T) {
		t.Parallel()
		rec := f.serve(datastarPost("/csv/validate", `{"inputs":[
			{"id":"file_1","name":"EMI40_RLC_V4.csv","size":1},
			{"id":"file_2","name":"EMI40_RLC_V4.csv","size":1}]}`, c))

		body := rec.Body.String()
		assert.NotContains(t, body, `<p id="error-summary"`)
		assert.Contains(t, body, `"submitDisabled":false`)
		assert.Contains(t, body, `"alerts":{"file_1":true,"file_2":true}`)
	})

	t.Run("legacy browsers skip the size check", func(t *testing.T) {
		t.Parallel()
		rec := f.serve(datastarPost("/csv/validate", `{"ie":"9","inputs":[
			{"id":"file_1","path":"C:\\Users\\me\\EMI40_Taxable_V4.csv","size":0}]}`, c))

		body := rec.Body.String()
		assert.NotContains(t, body, `<p id="error-summary"`)
	})

	t.Run("unknown input ids are ignored", func(t *testing.T) {
		t.Parallel()
		rec := f.serve(datastarPost("/csv/validate", `{"inputs":[
			{"id":"body","name":"x.txt","size":1}]}`, c))

		body := rec.Body.String()
		assert.NotContains(t, body, `<p id="error-summary"`)
		assert.NotContains(t, body, "selector #body")
	})
}

func TestCSVValidate_Plain(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	c := f.session(t, "SAYE", "SAYE_Granted_V4.csv", "SAYE_RCL_V4.csv")

	rec := f.serve(formPost("/csv/validate", url.Values{
		"input": {"file_1", "file_2"},
		"path":  {`C:\fakepath\SAYE_Granted_V4.csv`, `C:\fakepath\SAYE_RCL_V4.ods`},
	}, c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, `<p id="error-summary"`)
	assert.Contains(t, body, `id="file_2-wrapper" class="file-wrapper fileAlert"`)
	assert.Contains(t, body, " disabled>")
}

func TestCSVValidate_NoSession(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.serve(datastarPost("/csv/validate", `{"inputs":[]}`, nil))
	assert.Contains(t, rec.Body.String(), "/csv/declare")

	c := f.session(t, "")
	rec = f.serve(formPost("/csv/validate", url.Values{}, c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/csv/declare", rec.Header().Get("Location"))
}

func TestODS(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	t.Run("page", func(t *testing.T) {
		t.Parallel()
		rec := f.serve(httptest.NewRequest(http.MethodGet, "/ods", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Upload your ODS file")
		assert.Contains(t, rec.Body.String(), `accept=".ods"`)
	})

	tests := []struct {
		name     string
		input    string
		wantMsg  string
		wantName string
	}{
		{
			name:     "accepted",
			input:    `{"id":"file","name":"return.ods","size":10000000}`,
			wantName: `<span id="file-name">return.ods</span>`,
		},
		{
			name:     "name too long",
			input:    `{"id":"file","name":"` + strings.Repeat("a", 241) + `.ods","size":1}`,
			wantMsg:  "The filename must contain 240 characters or less",
			wantName: `<span id="file-name">` + strings.Repeat("a", 241) + `.ods</span>`,
		},
		{
			name:     "too large",
			input:    `{"id":"file","name":"return.ods","size":10000001}`,
			wantMsg:  "This file is larger than 10MB",
			wantName: `<span id="file-name">return.ods</span>`,
		},
		{
			name:     "invalid characters",
			input:    `{"id":"file","name":"ret&urn.ods","size":1}`,
			wantMsg:  "The filename contains invalid characters",
			wantName: `<span id="file-name">ret&amp;urn.ods</span>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := f.serve(datastarPost("/ods/validate", `{"inputs":[`+tt.input+`]}`, nil))
			body := rec.Body.String()
			assert.Contains(t, body, "mode remove")
			assert.Contains(t, body, tt.wantName)
			if tt.wantMsg == "" {
				assert.NotContains(t, body, `<p id="error-summary"`)
				return
			}
			assert.Contains(t, body, tt.wantMsg)
			assert.Contains(t, body, "selector #file-wrapper")
		})
	}

	t.Run("removed file hides the header", func(t *testing.T) {
		t.Parallel()
		rec := f.serve(datastarPost("/ods/validate", `{"inputs":[{"id":"file","name":"","path":""}]}`, nil))
		assert.Contains(t, rec.Body.String(), `id="file-header-bar" class="file-header-bar" style="display: none"`)
	})
}
