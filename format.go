package termgrid

import (
	"fmt"
	"log/slog"
)

// String returns a summary of the metrics for diagnostics.
func (m GridMetrics) String() string {
	return fmt.Sprintf("(pageSize=%v, cellSize=%v, baseline=%d, underline=%d@%d, margin=(left=%d, bottom=%d))",
		m.PageSize,
		m.CellSize,
		m.Baseline,
		m.Underline.Position,
		m.Underline.Thickness,
		m.PageMargin.Left,
		m.PageMargin.Bottom)
}

// LogValue implements slog.LogValuer.
func (m GridMetrics) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("pageSize", m.PageSize.String()),
		slog.String("cellSize", m.CellSize.String()),
		slog.Int("baseline", m.Baseline),
		slog.Group("underline",
			slog.Int("position", m.Underline.Position),
			slog.Int("thickness", m.Underline.Thickness)),
		slog.Group("margin",
			slog.Int("left", m.PageMargin.Left),
			slog.Int("top", m.PageMargin.Top),
			slog.Int("bottom", m.PageMargin.Bottom)),
	)
}
