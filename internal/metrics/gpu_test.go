package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNvidiaSMI(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    *GPU
		wantErr bool
	}{
		{
			name:   "busy workstation card",
			output: "NVIDIA GeForce RTX 3080, 45, 2048, 10240, 65, 220",
			want: &GPU{
				Name:        "NVIDIA GeForce RTX 3080",
				Utilization: 45,
				MemUsed:     2048 * mib,
				MemTotal:    10240 * mib,
				Temperature: 65,
				PowerWatts:  220,
			},
		},
		{
			name:   "fractional power is truncated",
			output: "NVIDIA RTX 4090, 50, 8192, 24576, 70, 185.50",
			want: &GPU{
				Name:        "NVIDIA RTX 4090",
				Utilization: 50,
				MemUsed:     8192 * mib,
				MemTotal:    24576 * mib,
				Temperature: 70,
				PowerWatts:  185,
			},
		},
		{
			name:   "n/a columns read as zero",
			output: "NVIDIA Tesla T4, 30, 1024, 16384, [N/A], [N/A]",
			want: &GPU{
				Name:        "NVIDIA Tesla T4",
				Utilization: 30,
				MemUsed:     1024 * mib,
				MemTotal:    16384 * mib,
			},
		},
		{
			name:   "padded columns",
			output: "  NVIDIA GeForce RTX 3070 ,  35  ,  4096  ,  8192  ,  58  ,  125  ",
			want: &GPU{
				Name:        "NVIDIA GeForce RTX 3070",
				Utilization: 35,
				MemUsed:     4096 * mib,
				MemTotal:    8192 * mib,
				Temperature: 58,
				PowerWatts:  125,
			},
		},
		{
			name:   "first of several devices",
			output: "NVIDIA A100, 98, 32768, 40960, 78, 350\nNVIDIA A100, 3, 10, 40960, 40, 60",
			want: &GPU{
				Name:        "NVIDIA A100",
				Utilization: 98,
				MemUsed:     32768 * mib,
				MemTotal:    40960 * mib,
				Temperature: 78,
				PowerWatts:  350,
			},
		},
		{name: "empty output", output: ""},
		{name: "no devices", output: "No devices were found"},
		{name: "binary missing", output: "nvidia-smi: command not found"},
		{name: "driver failure", output: "NVIDIA-SMI has failed because it couldn't communicate with the NVIDIA driver"},
		{name: "too few columns", output: "NVIDIA GPU, 45, 2048", wantErr: true},
		{name: "bad utilization", output: "NVIDIA GPU, lots, 2048, 10240, 65, 220", wantErr: true},
		{name: "bad memory", output: "NVIDIA GPU, 45, many, 10240, 65, 220", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gpu, err := ParseNvidiaSMI(tt.output)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, gpu)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, gpu)
		})
	}
}

func TestGPU_MemPercent(t *testing.T) {
	assert.InDelta(t, 25.0, GPU{MemUsed: 1024, MemTotal: 4096}.MemPercent(), 0.001)
	assert.Equal(t, 0.0, GPU{MemUsed: 1024}.MemPercent())
}
