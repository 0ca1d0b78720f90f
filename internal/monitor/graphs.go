package monitor

import "strings"

// sparklineBlocks are block characters for 8-level vertical resolution (lowest to highest).
var sparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders deltas as one row of block characters, min-max
// normalised over the visible window. Negative deltas (counter resets)
// are floored at zero. When the window is longer than width it is compressed keeping peaks.
func Sparkline(samples []int64, width int) string {
	if len(samples) == 0 || width <= 0 {
		return ""
	}

	data := make([]float64, len(samples))
	for i, s := range samples {
		if s > 0 {
			data[i] = float64(s)
		}
	}
	if len(data) > width {
		data = resampleData(data, width)
	}

	minVal, maxVal := findMinMax(data)
	top := len(sparklineBlocks) - 1

	var b strings.Builder
	for _, v := range data {
		idx := clampInt(int(normalizeValue(v, minVal, maxVal)*float64(top)), top)
		b.WriteRune(sparklineBlocks[idx])
	}
	return b.String()
}

// findMinMax returns the minimum and maximum values in a slice.
func findMinMax(data []float64) (minVal, maxVal float64) {
	if len(data) == 0 {
		return 0, 0
	}
	minVal, maxVal = data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return minVal, maxVal
}

// normalizeValue converts a value to 0-1 range given min/max bounds.
// A flat series sits on the floor.
func normalizeValue(val, minVal, maxVal float64) float64 {
	if maxVal > minVal {
		return (val - minVal) / (maxVal - minVal)
	}
	return 0
}

// clampInt clamps an integer to a range [0, maxVal].
func clampInt(val, maxVal int) int {
	if val < 0 {
		return 0
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// resampleData shrinks data to targetSize using the max of each bucket
// so that short bursts survive compression.
func resampleData(data []float64, targetSize int) []float64 {
	if len(data) == 0 || targetSize <= 0 {
		return nil
	}
	if len(data) <= targetSize {
		return data
	}

	result := make([]float64, targetSize)
	bucketSize := float64(len(data)) / float64(targetSize)
	for i := 0; i < targetSize; i++ {
		start := int(float64(i) * bucketSize)
		end := int(float64(i+1) * bucketSize)
		if end > len(data) {
			end = len(data)
		}
		if start >= end {
			start = end - 1
		}

		maxVal := data[start]
		for j := start + 1; j < end; j++ {
			if data[j] > maxVal {
				maxVal = data[j]
			}
		}
		result[i] = maxVal
	}
	return result
}
