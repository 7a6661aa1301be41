package system

import (
	"fmt"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// Snapshot is a point-in-time view of process and host memory.
type Snapshot struct {
	RSS         uint64  // resident set size of this process in bytes
	HostUsed    uint64  // bytes in use on the host
	HostPercent float64 // host memory usage in percent
	CPUs        int
}

// TakeSnapshot samples memory statistics. Fields that cannot be read on the
// current platform are left zero.
func TakeSnapshot() Snapshot {
	s := Snapshot{CPUs: runtime.NumCPU()}
	if vm, err := mem.VirtualMemory(); err == nil {
		s.HostUsed = vm.Used
		s.HostPercent = vm.UsedPercent
	}
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if mi, err := p.MemoryInfo(); err == nil {
			s.RSS = mi.RSS
		}
	}
	return s
}

func (s Snapshot) String() string {
	return fmt.Sprintf("RSS: %s | Host: %s (%.1f%%) | CPUs: %d",
		FormatBytes(s.RSS), FormatBytes(s.HostUsed), s.HostPercent, s.CPUs)
}

// FormatBytes renders n with a binary unit suffix.
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
