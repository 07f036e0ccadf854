package workload

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/common"
	"github.com/shirou/gopsutil/v4/process"
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/schedsim/sim"
)

// DefaultProcRoot is the mount point of the live process table.
const DefaultProcRoot = "/proc"

// procInfo is what the sampler keeps of one live process.
type procInfo struct {
	pid  int32
	name string
	ppid int32
	nice int64
}

// NicePriority maps a nice value onto the simulator's priority scale
// (higher = more important): negative nice → 10, zero → 5, positive → 1.
func NicePriority(nice int64) int64 {
	switch {
	case nice < 0:
		return 10
	case nice == 0:
		return 5
	default:
		return 1
	}
}

// procContext points gopsutil at the process table mounted at root.
func procContext(root string) context.Context {
	return context.WithValue(context.Background(),
		common.EnvKey, common.EnvMap{common.HostProcEnvKey: root})
}

// SampleProcFS builds up to limit process specs from the process table
// mounted at root, in ascending pid order. Burst and arrival times are
// drawn from the default ranges since the table carries no such values.
// Processes that vanish or cannot be read are skipped; a partial or empty
// set is not an error. A limit of 0 samples every readable process.
func SampleProcFS(root string, limit int, rng *rand.Rand) ([]sim.ProcessSpec, error) {
	if limit < 0 {
		return nil, fmt.Errorf("sample limit must be >= 0, got %d", limit)
	}
	ctx := procContext(root)
	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", root, err)
	}
	slices.Sort(pids)

	specs := make([]sim.ProcessSpec, 0)
	skipped := 0
	for _, pid := range pids {
		if limit > 0 && len(specs) >= limit {
			break
		}
		info, ok := inspectProcess(ctx, root, pid)
		if !ok {
			skipped++
			continue
		}
		specs = append(specs, sim.ProcessSpec{
			PID:         fmt.Sprintf("%s (%d)", info.name, info.pid),
			PPID:        strconv.FormatInt(int64(info.ppid), 10),
			BurstTime:   DefaultBurstRange.Sample(rng),
			ArrivalTime: DefaultArrivalRange.Sample(rng),
			Priority:    NicePriority(info.nice),
		})
	}
	logrus.Infof("Sampled %d processes from %s (%d skipped)", len(specs), root, skipped)
	return specs, nil
}

// inspectProcess reads name, parent and nice value of pid. The stat line is
// checked before gopsutil parses it for the parent pid.
func inspectProcess(ctx context.Context, root string, pid int32) (procInfo, bool) {
	// The pid came from the table itself; process.NewProcess would re-check
	// liveness by signalling, which only works against the host's own /proc.
	p := &process.Process{Pid: pid}
	name, err := p.NameWithContext(ctx)
	if err != nil || name == "" {
		return procInfo{}, false
	}
	nice, err := readNice(root, pid)
	if err != nil {
		logrus.Debugf("Skipping pid %d: %v", pid, err)
		return procInfo{}, false
	}
	ppid, err := p.PpidWithContext(ctx)
	if err != nil {
		return procInfo{}, false
	}
	return procInfo{pid: pid, name: name, ppid: ppid, nice: nice}, true
}

// readNice returns field 19 of <root>/<pid>/stat. gopsutil's Nice asks the
// kernel via getpriority(2) for the live pid instead, which returns 20-nice
// and ignores root.
func readNice(root string, pid int32) (int64, error) {
	data, err := os.ReadFile(filepath.Join(root, strconv.Itoa(int(pid)), "stat"))
	if err != nil {
		return 0, err
	}
	line := strings.TrimSpace(string(data))

	// comm may contain spaces and parentheses: it ends at the last ')'
	l := strings.IndexByte(line, '(')
	r := strings.LastIndexByte(line, ')')
	if l < 0 || r <= l {
		return 0, fmt.Errorf("malformed stat line")
	}
	fields := strings.Fields(line[r+1:])
	// fields[0] is stat field 3 (state); gopsutil reads up to field 22
	if len(fields) < 20 {
		return 0, fmt.Errorf("stat line has %d fields after comm, want >= 20", len(fields))
	}
	return strconv.ParseInt(fields[19-3], 10, 64)
}

// SampleProcFSSeeded draws burst and arrival times from the sampler
// subsystem of a partitioned RNG keyed by seed.
func SampleProcFSSeeded(root string, limit int, seed int64) ([]sim.ProcessSpec, error) {
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed))
	return SampleProcFS(root, limit, rng.ForSubsystem(sim.SubsystemSampler))
}
