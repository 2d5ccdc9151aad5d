// Package util holds formatting helpers shared by log lines and error messages.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

var byteUnits = []string{"KB", "MB", "GB", "TB", "PB", "EB"}

// ChecksumBytes is the lowercase hex SHA-256 of data. Image object keys are built from it.
func ChecksumBytes(data []byte) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}

// FormatBytes renders a size in binary units, e.g. "512 B" or "10.0 MB".
func FormatBytes(size int64) string {
	if size < 1024 {
		return fmt.Sprintf("%d B", size)
	}

	value := float64(size) / 1024
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}

	return fmt.Sprintf("%.1f %s", value, byteUnits[unit])
}

// FormatDuration renders d rounded to the second with its two largest units,
// e.g. "45s", "2m30s" or "1h30m".
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	hours := int(d / time.Hour)
	minutes := int(d%time.Hour) / int(time.Minute)
	seconds := int(d%time.Minute) / int(time.Second)

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh%dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
