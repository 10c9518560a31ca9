package termgrid

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestGridMetricsString(t *testing.T) {
	gm := exampleMetrics()
	gm.Baseline = 3
	gm.Underline = Underline{Position: 2, Thickness: 1}
	gm.PageMargin.Bottom = 7

	want := "(pageSize=25x80, cellSize=10x20, baseline=3, underline=2@1, margin=(left=4, bottom=7))"
	if got := gm.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPrimitiveStrings(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Point", Pt(-3, 12).String(), "(-3, 12)"},
		{"CellLocation", CellLocation{Line: 4, Column: 9}.String(), "(4, 9)"},
		{"PageSize", PageSize{Lines: 24, Columns: 132}.String(), "24x132"},
		{"ImageSize", ImageSize{Width: 8, Height: 17}.String(), "8x17"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s.String() = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestGridMetricsLogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	gm := exampleMetrics()
	gm.Baseline = 5
	logger.Info("metrics", "grid", gm)

	out := buf.String()
	for _, want := range []string{
		"grid.pageSize=25x80",
		"grid.cellSize=10x20",
		"grid.baseline=5",
		"grid.underline.position=1",
		"grid.underline.thickness=1",
		"grid.margin.left=4",
		"grid.margin.top=2",
		"grid.margin.bottom=0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}
