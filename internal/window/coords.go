package window

// topLeft converts a point in a bottom-left origin space anchored at the
// primary display into the top-left origin space the other backends report.
// primaryHeight must be the primary display's height even when the point
// lies on another display.
func topLeft(x, y, primaryHeight float64) (int, int) {
	return int(x), int(primaryHeight - y)
}
