package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/vertti/ppl/pkg/check"
)

func noColor(t *testing.T) {
	t.Helper()
	oldGreen, oldYellow, oldRed, oldDim, oldReset := green, yellow, red, dim, reset
	green, yellow, red, dim, reset = "", "", "", "", ""
	t.Cleanup(func() { green, yellow, red, dim, reset = oldGreen, oldYellow, oldRed, oldDim, oldReset })
}

func TestFormatLabel(t *testing.T) {
	oldDim, oldReset := dim, reset
	defer func() { dim, reset = oldDim, oldReset }()
	dim, reset = "[DIM]", "[RESET]"

	tests := []struct {
		input string
		want  string
	}{
		{"path: /opt/app.pl", "[DIM]path:[RESET] /opt/app.pl"},
		{`dir: C:\tools\`, `[DIM]dir:[RESET] C:\tools\`},
		{"no colon here", "no colon here"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatLabel(tt.input), "formatLabel(%q)", tt.input)
	}
}

func TestPrintResult(t *testing.T) {
	noColor(t)

	tests := []struct {
		name   string
		result check.Result
		want   string
	}{
		{
			name: "ok",
			result: check.Result{
				Name:    "script: /opt/app.pl",
				Status:  check.StatusOK,
				Details: []string{"mode: extension-swap"},
			},
			want: "[OK] script: /opt/app.pl\n     mode: extension-swap\n",
		},
		{
			name: "warn",
			result: check.Result{
				Name:    "library: perl5*.dll",
				Status:  check.StatusWarn,
				Details: []string{"2 files match"},
			},
			want: "[WARN] library: perl5*.dll\n       2 files match\n",
		},
		{
			name: "fail",
			result: check.Result{
				Name:    "library: perl5*.dll",
				Status:  check.StatusFail,
				Details: []string{"not found"},
			},
			want: "[FAIL] library: perl5*.dll\n       not found\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintResult(&buf, tt.result)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	err := PrintJSON(&buf, []check.Result{
		{Name: "executable: /opt/app", Status: check.StatusOK, Details: []string{"emulate: false"}},
		{Name: "library: perl5*.dll", Status: check.StatusWarn, Details: []string{"2 files match"}},
	})
	require.NoError(t, err)

	out := buf.String()
	require.True(t, gjson.Valid(out))
	assert.True(t, gjson.Get(out, "ok").Bool())
	assert.Equal(t, int64(2), gjson.Get(out, "results.#").Int())
	assert.Equal(t, "WARN", gjson.Get(out, "results.1.status").String())
	assert.Equal(t, "emulate: false", gjson.Get(out, "results.0.details.0").String())
	assert.False(t, gjson.Get(out, "results.0.Err").Exists())
}

func TestPrintJSON_Failure(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, []check.Result{
		{Name: "a", Status: check.StatusOK},
		{Name: "b", Status: check.StatusFail, Details: []string{"not found"}},
	}))

	assert.False(t, gjson.Get(buf.String(), "ok").Bool())
}
