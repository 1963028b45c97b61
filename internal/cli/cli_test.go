package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"bazi-chart/internal/domain/bazi"

	"github.com/spf13/viper"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("BAZI_CALENDAR_SOURCE", "lunargo")
	t.Setenv("BAZI_CALENDAR_DSN", "")
	t.Setenv("BAZI_LOG_LEVEL", "error")

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestChartText(t *testing.T) {
	out, err := runCLI(t, "chart", "--date", "2000-01-01", "--time", "12:00")
	if err != nil {
		t.Fatalf("chart: %v", err)
	}

	want := []string{"年柱  己卯", "月柱  丙子", "日柱  戊午", "時柱  戊午", "農曆  農曆1999年11月25日"}
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Fatalf("missing %q in output:\n%s", w, out)
		}
	}
}

func TestChartIndices(t *testing.T) {
	out, err := runCLI(t, "chart", "--date", "2000-01-01", "--time", "12:00", "--indices")
	if err != nil {
		t.Fatalf("chart: %v", err)
	}
	if !strings.Contains(out, "年柱  己卯  (5,3)") {
		t.Fatalf("expected year indices, got:\n%s", out)
	}
	if !strings.Contains(out, "時柱  戊午  (4,6)") {
		t.Fatalf("expected hour indices, got:\n%s", out)
	}
}

func TestChartJSON(t *testing.T) {
	out, err := runCLI(t, "chart", "--date", "2000-01-01", "--time", "23:30", "--json")
	if err != nil {
		t.Fatalf("chart: %v", err)
	}

	var got bazi.ChartResponse
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	// 23:30 con tallo de día 戊 → 壬子
	if got.Bazi.Time != "壬子" {
		t.Fatalf("expected 壬子, got %q", got.Bazi.Time)
	}
	if got.Bazi.Day != "戊午" || got.Lunar.LunarYear != 1999 {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestChartRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"bad date", []string{"chart", "--date", "2000-13-01", "--time", "12:00"}},
		{"bad time", []string{"chart", "--date", "2000-01-01", "--time", "25:00"}},
		{"one digit hour", []string{"chart", "--date", "2000-01-01", "--time", "9:00"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runCLI(t, tc.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, bazi.ErrInvalidInput) {
				t.Fatalf("expected invalid input, got %v", err)
			}
		})
	}
}

func TestChartRequiresFlags(t *testing.T) {
	if _, err := runCLI(t, "chart", "--date", "2000-01-01"); err == nil {
		t.Fatal("expected missing --time to fail")
	}
}

func TestSeedRequiresDSN(t *testing.T) {
	_, err := runCLI(t, "seed", "--from", "2000-01-01", "--to", "2000-01-02")
	if err == nil || !strings.Contains(err.Error(), "calendar.dsn") {
		t.Fatalf("expected dsn error, got %v", err)
	}
}

func TestParseRange(t *testing.T) {
	cases := []struct {
		name    string
		from    string
		to      string
		wantErr bool
	}{
		{"single day", "2000-01-01", "2000-01-01", false},
		{"year", "2000-01-01", "2000-12-31", false},
		{"reversed", "2000-02-01", "2000-01-01", true},
		{"bad from", "2000/01/01", "2000-01-01", true},
		{"bad to", "2000-01-01", "tomorrow", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := parseRange(tc.from, tc.to)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseRange(%q, %q) err=%v, wantErr=%v", tc.from, tc.to, err, tc.wantErr)
			}
		})
	}
}
