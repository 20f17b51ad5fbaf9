package window

import (
	"math"

	"github.com/atomicstack/nvim-ui-mirror/internal/geom"
	"github.com/atomicstack/nvim-ui-mirror/internal/grid"
)

// FloatAnchorPos returns the pixel position of a floating window of the
// given pixel size. The anchor cell (anchorRow, anchorCol) is measured
// in the anchor grid's cells from (xOffset, yOffset). Both coordinates
// are clamped to zero.
func FloatAnchorPos(anchor geom.Anchor, anchorMetrics grid.Metrics, width, height, xOffset, yOffset, anchorRow, anchorCol float64) (x, y float64) {
	x = xOffset + anchorMetrics.CellWidth*anchorCol
	if !anchor.IsWest() {
		x -= width
	}
	y = yOffset + anchorMetrics.CellHeight*anchorRow
	if !anchor.IsNorth() {
		y -= height
	}
	return math.Max(x, 0), math.Max(y, 0)
}

// FloatAdjustSize checks a floating grid placed at (x, y) against the
// primary grid. When it overflows the bottom or right edge it returns
// the reduced size to request and ok. An axis that fits keeps the
// grid's current count; a reduced count never drops below one cell.
func FloatAdjustSize(gridMetrics, baseMetrics grid.Metrics, x, y float64) (cols, rows float64, ok bool) {
	cols, rows = gridMetrics.Cols, gridMetrics.Rows
	if gridMetrics.Rows+y/baseMetrics.CellHeight > baseMetrics.Rows {
		rows = baseMetrics.Rows - y/baseMetrics.CellHeight - 1
		ok = true
	}
	if gridMetrics.Cols+x/baseMetrics.CellWidth > baseMetrics.Cols {
		cols = baseMetrics.Cols - x/baseMetrics.CellWidth
		ok = true
	}
	return max(cols, 1), max(rows, 1), ok
}
