package vidframe

// connectorWidth is the stroke width of reference connectors.
const connectorWidth = 2

// TrunkX returns the x coordinate of the vertical run of a connector between
// source and target: sectPadding to the right of the rightmost anchor, but
// never past canvasWidth - sectPadding/2.
func TrunkX(source, target Point, canvasWidth, sectPadding float64) float64 {
	return min(max(source.X, target.X)+sectPadding, canvasWidth-sectPadding/2)
}

// RoutePolyline returns the orthogonal path source → trunk → target.
// The path runs right from source to the trunk, along the trunk to the
// target's row, then left to target.
func RoutePolyline(source, target Point, canvasWidth, sectPadding float64) []Point {
	x := TrunkX(source, target, canvasWidth, sectPadding)
	return []Point{
		source,
		Pt(x, source.Y),
		Pt(x, target.Y),
		target,
	}
}
