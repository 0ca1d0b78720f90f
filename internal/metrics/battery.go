package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultPowerSupplyRoot is where Linux exposes batteries and adapters.
const DefaultPowerSupplyRoot = "/sys/class/power_supply"

// ReadBattery reads the first BAT* device under root. It returns nil, nil
// when the machine has no battery.
func ReadBattery(root string) (*Battery, error) {
	if root == "" {
		root = DefaultPowerSupplyRoot
	}
	dirs, err := filepath.Glob(filepath.Join(root, "BAT*"))
	if err != nil || len(dirs) == 0 {
		return nil, nil
	}
	dir := dirs[0]

	raw, err := os.ReadFile(filepath.Join(dir, "capacity"))
	if err != nil {
		return nil, fmt.Errorf("read battery capacity: %w", err)
	}
	capacity, err := strconv.ParseFloat(strings.TrimSpace(string(raw)), 64)
	if err != nil {
		return nil, fmt.Errorf("parse battery capacity: %w", err)
	}

	return &Battery{
		Percent: clampRange(capacity, 0, 100),
		Plugged: acOnline(root) || chargingStatus(dir),
	}, nil
}

// acOnline reports whether any mains adapter says it is online.
func acOnline(root string) bool {
	adapters, _ := filepath.Glob(filepath.Join(root, "AC*"))
	more, _ := filepath.Glob(filepath.Join(root, "ADP*"))
	for _, dir := range append(adapters, more...) {
		if readTrimmed(filepath.Join(dir, "online")) == "1" {
			return true
		}
	}
	return false
}

func chargingStatus(batteryDir string) bool {
	switch readTrimmed(filepath.Join(batteryDir, "status")) {
	case "Charging", "Full":
		return true
	}
	return false
}

func readTrimmed(path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(content))
}
