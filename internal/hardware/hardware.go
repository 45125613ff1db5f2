// Package hardware reads host memory and CPU so small models can be marked as runnable locally.
package hardware

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemSpecs holds the detected host resources.
type SystemSpecs struct {
	TotalRAMGB     float64 `json:"total_ram_gb"`
	AvailableRAMGB float64 `json:"available_ram_gb"`
	TotalCPUCores  int     `json:"cpu_cores"`
	CPUName        string  `json:"cpu_name"`
	Arch           string  `json:"arch"`
}

// Fit is how a model's memory footprint compares with available RAM.
type Fit int

const (
	FitUnknown Fit = iota
	FitComfortable
	FitTight
	FitTooLarge
)

func (f Fit) String() string {
	switch f {
	case FitComfortable:
		return "fits"
	case FitTight:
		return "tight"
	case FitTooLarge:
		return "too large"
	default:
		return "unknown"
	}
}

// tightRatio is the share of available RAM above which a model counts as tight.
const tightRatio = 0.8

const gb = 1024 * 1024 * 1024

// Detect returns specs for the current machine.
func Detect() (*SystemSpecs, error) {
	v, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("mem: %w", err)
	}
	totalRAMGB := float64(v.Total) / float64(gb)
	availableRAMGB := float64(v.Available) / float64(gb)
	if v.Available == 0 && v.Total > 0 {
		availableRAMGB = availableRAMFallback(totalRAMGB)
	}

	infos, _ := cpu.Info()
	cpuName := "Unknown CPU"
	if len(infos) > 0 {
		cpuName = infos[0].ModelName
		if cpuName == "" {
			cpuName = infos[0].VendorID
		}
	}

	return &SystemSpecs{
		TotalRAMGB:     totalRAMGB,
		AvailableRAMGB: availableRAMGB,
		TotalCPUCores:  runtime.NumCPU(),
		CPUName:        cpuName,
		Arch:           runtime.GOARCH,
	}, nil
}

// Classify compares a footprint in GB against available RAM. A nil receiver or
// a non-positive footprint yields FitUnknown.
func (s *SystemSpecs) Classify(footprintGB float64) Fit {
	if s == nil || footprintGB <= 0 || s.AvailableRAMGB <= 0 {
		return FitUnknown
	}
	switch {
	case footprintGB > s.AvailableRAMGB:
		return FitTooLarge
	case footprintGB > s.AvailableRAMGB*tightRatio:
		return FitTight
	default:
		return FitComfortable
	}
}

func availableRAMFallback(totalGB float64) float64 {
	if runtime.GOOS == "darwin" {
		if avail := availableFromVMStat(); avail > 0 {
			return avail
		}
	}
	return totalGB * 0.8
}

func availableFromVMStat() float64 {
	out, err := exec.Command("vm_stat").Output()
	if err != nil {
		return 0
	}
	return parseVMStat(out)
}

// parseVMStat sums free, inactive and purgeable pages from vm_stat output.
func parseVMStat(out []byte) float64 {
	var pageSize uint64 = 16384
	var free, inactive, purgeable uint64
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "Mach Virtual Memory Statistics:") {
			if i := strings.Index(line, "page size of "); i >= 0 {
				rest := line[i+13:]
				if j := strings.IndexAny(rest, " "); j >= 0 {
					if n, err := strconv.ParseUint(rest[:j], 10, 64); err == nil {
						pageSize = n
					}
				}
			}
		}
		if strings.HasPrefix(line, "Pages free:") {
			fmt.Sscanf(strings.Trim(strings.TrimPrefix(line, "Pages free:"), " ."), "%d", &free)
		}
		if strings.HasPrefix(line, "Pages inactive:") {
			fmt.Sscanf(strings.Trim(strings.TrimPrefix(line, "Pages inactive:"), " ."), "%d", &inactive)
		}
		if strings.HasPrefix(line, "Pages purgeable:") {
			fmt.Sscanf(strings.Trim(strings.TrimPrefix(line, "Pages purgeable:"), " ."), "%d", &purgeable)
		}
	}
	avail := (free + inactive + purgeable) * pageSize
	if avail == 0 {
		return 0
	}
	return float64(avail) / float64(gb)
}

var (
	wslOnce sync.Once
	wslVal  bool
)

// IsRunningInWSL returns true if running under WSL (Linux only).
func IsRunningInWSL() bool {
	wslOnce.Do(func() {
		if runtime.GOOS != "linux" {
			return
		}
		if os.Getenv("WSL_INTEROP") != "" || os.Getenv("WSL_DISTRO_NAME") != "" {
			wslVal = true
			return
		}
		for _, p := range []string{"/proc/sys/kernel/osrelease", "/proc/version"} {
			b, _ := os.ReadFile(p)
			if strings.Contains(strings.ToLower(string(b)), "microsoft") {
				wslVal = true
				return
			}
		}
	})
	return wslVal
}
