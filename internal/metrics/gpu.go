package metrics

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// DefaultGPUTimeout bounds a single nvidia-smi invocation.
const DefaultGPUTimeout = time.Second

const nvidiaSMIQuery = "--query-gpu=name,utilization.gpu,memory.used,memory.total,temperature.gpu,power.draw"

const mib = 1024 * 1024

// nvidiaSMIFields is the column count of the query above.
const nvidiaSMIFields = 6

// unavailableMarkers are substrings nvidia-smi (or the shell) prints when
// there is no usable GPU.
var unavailableMarkers = []string{
	"no devices",
	"not found",
	"failed",
	"error",
}

// QueryGPU runs nvidia-smi and parses the first device. A missing binary
// is not an error: machines without an NVIDIA GPU simply report nil.
func QueryGPU(ctx context.Context, timeout time.Duration) (*GPU, error) {
	if timeout <= 0 {
		timeout = DefaultGPUTimeout
	}
	path, err := exec.LookPath("nvidia-smi")
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, path, nvidiaSMIQuery, "--format=csv,noheader,nounits")
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("nvidia-smi timed out after %s", timeout)
		}
		return nil, fmt.Errorf("nvidia-smi: %w", err)
	}
	return ParseNvidiaSMI(out.String())
}

// ParseNvidiaSMI parses nvidia-smi CSV output (noheader, nounits). Only the
// first line is used when several GPUs are present.
//
// Returns nil, nil when the output says there is no GPU.
func ParseNvidiaSMI(output string) (*GPU, error) {
	output = strings.TrimSpace(output)
	if output == "" {
		return nil, nil
	}

	lower := strings.ToLower(output)
	for _, marker := range unavailableMarkers {
		if strings.Contains(lower, marker) {
			return nil, nil
		}
	}

	line, _, _ := strings.Cut(output, "\n")
	fields := strings.Split(line, ",")
	if len(fields) < nvidiaSMIFields {
		return nil, fmt.Errorf("nvidia-smi output has insufficient fields: expected %d, got %d", nvidiaSMIFields, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	gpu := &GPU{Name: fields[0]}

	util, err := parseGPUFloat("utilization", fields[1])
	if err != nil {
		return nil, err
	}
	gpu.Utilization = util

	used, err := parseGPUFloat("memory used", fields[2])
	if err != nil {
		return nil, err
	}
	gpu.MemUsed = uint64(used) * mib

	total, err := parseGPUFloat("memory total", fields[3])
	if err != nil {
		return nil, err
	}
	gpu.MemTotal = uint64(total) * mib

	temp, err := parseGPUFloat("temperature", fields[4])
	if err != nil {
		return nil, err
	}
	gpu.Temperature = int(temp)

	// Power draw often carries decimals; whole watts are enough for display.
	power, err := parseGPUFloat("power", fields[5])
	if err != nil {
		return nil, err
	}
	gpu.PowerWatts = int(power)

	return gpu, nil
}

// parseGPUFloat treats blank and "[N/A]" as zero.
func parseGPUFloat(label, s string) (float64, error) {
	if s == "" || s == "[N/A]" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse GPU %s '%s': %w", label, s, err)
	}
	if v < 0 {
		return 0, nil
	}
	return v, nil
}
