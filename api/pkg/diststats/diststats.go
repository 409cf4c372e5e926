package diststats

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/rs/zerolog/log"

	"github.com/Artox/open-build-service/api/pkg/config"
	"github.com/Artox/open-build-service/api/pkg/types"
)

const (
	DefaultHosts     = 40
	DefaultScheduler = "needed"

	builddepinfoFile = "_builddepinfo.xml"
	jobhistoryFile   = "_jobhistory.xml"
	pngFile          = "rebuild.png"
	longestFile      = "longest.xml"
)

// Schedulers are the scheduling strategies mkdiststats can simulate
var Schedulers = []string{
	"fifo",
	"lifo",
	"random",
	"btime",
	"needed",
	"neededb",
	"longest_data",
	"longested_triedread",
	"longest",
}

var (
	ErrInvalidScheduler = errors.New("invalid scheduler type")
	// ErrNoResult means mkdiststats failed or left no output behind
	ErrNoResult = errors.New("rebuild time could not be calculated")
)

type Options struct {
	Project    string
	Repository string
	Arch       string
	Hosts      int
	Scheduler  string
}

// ParseHosts reads the number of simulated build hosts, malformed values give the default
func ParseHosts(value string) int {
	if value == "" {
		return DefaultHosts
	}
	hosts, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return DefaultHosts
	}
	return hosts
}

func ValidateScheduler(scheduler string) (string, error) {
	if scheduler == "" {
		return DefaultScheduler, nil
	}
	if !slices.Contains(Schedulers, scheduler) {
		return "", fmt.Errorf("%w: %s", ErrInvalidScheduler, scheduler)
	}
	return scheduler, nil
}

// PNGKey identifies the rendered image of one parameter set
func PNGKey(opts Options) string {
	sum := md5.Sum([]byte(fmt.Sprintf("project=%s repository=%s arch=%s hosts=%d scheduler=%s",
		opts.Project, opts.Repository, opts.Arch, opts.Hosts, opts.Scheduler)))
	return hex.EncodeToString(sum[:])
}

func pngCacheKey(key string) string {
	return fmt.Sprintf("rebuild-%s.png", key)
}

// Runner estimates rebuild times by running mkdiststats on backend dumps
type Runner struct {
	cfg       config.Diststats
	commander Commander
	pngs      *ristretto.Cache[string, []byte]
}

func NewRunner(cfg config.Diststats, commander Commander) (*Runner, error) {
	pngs, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: 1e4,
		MaxCost:     64 << 20,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create image cache: %w", err)
	}
	if commander == nil {
		commander = &RealCommander{}
	}
	return &Runner{
		cfg:       cfg,
		commander: commander,
		pngs:      pngs,
	}, nil
}

func (r *Runner) Close() {
	r.pngs.Close()
}

// PNG returns a rendered image by key
func (r *Runner) PNG(key string) ([]byte, bool) {
	return r.pngs.Get(pngCacheKey(key))
}

type longestXML struct {
	RebuildTime string `xml:"rebuildtime"`
	Paths       []struct {
		Packages []string `xml:"package"`
	} `xml:"longestpath>path"`
	Timings []struct {
		Name      string `xml:"name,attr"`
		BuildTime int64  `xml:"buildtime,attr"`
		Finished  int64  `xml:"finished,attr"`
	} `xml:"timings>package"`
}

// RebuildTime runs mkdiststats on the dependency info and job history of one
// repository/arch. The working directories are always removed.
func (r *Runner) RebuildTime(ctx context.Context, opts Options, builddepinfo, jobhistory []byte) (*types.RebuildTimeResult, error) {
	scheduler, err := ValidateScheduler(opts.Scheduler)
	if err != nil {
		return nil, err
	}
	opts.Scheduler = scheduler
	if opts.Hosts == 0 {
		opts.Hosts = DefaultHosts
	}

	srcdir, err := os.MkdirTemp(r.cfg.TempRoot, "diststats-src-")
	if err != nil {
		return nil, fmt.Errorf("failed to create source dir: %w", err)
	}
	defer os.RemoveAll(srcdir)

	destdir, err := os.MkdirTemp(r.cfg.TempRoot, "diststats-dest-")
	if err != nil {
		return nil, fmt.Errorf("failed to create destination dir: %w", err)
	}
	defer os.RemoveAll(destdir)

	if err := os.WriteFile(filepath.Join(srcdir, builddepinfoFile), builddepinfo, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", builddepinfoFile, err)
	}
	if err := os.WriteFile(filepath.Join(srcdir, jobhistoryFile), jobhistory, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", jobhistoryFile, err)
	}

	args := []string{
		r.cfg.Script,
		"--srcdir=" + srcdir,
		"--destdir=" + destdir,
		"--outfmt=xml",
		fmt.Sprintf("%s/%s/%s", opts.Project, opts.Repository, opts.Arch),
		fmt.Sprintf("--width=%d", r.cfg.Width),
		fmt.Sprintf("--buildhosts=%d", opts.Hosts),
		"--scheduler=" + opts.Scheduler,
	}
	log.Ctx(ctx).Debug().
		Str("dir", r.cfg.Dir).
		Str("command", r.cfg.Command).
		Strs("args", args).
		Msg("running mkdiststats")

	cmd := r.commander.CommandContext(ctx, r.cfg.Command, args...)
	cmd.Dir = r.cfg.Dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).
			Str("project", opts.Project).
			Str("output", string(output)).
			Msg("mkdiststats failed")
		return nil, fmt.Errorf("%w: %s", ErrNoResult, err)
	}

	png, err := os.ReadFile(filepath.Join(destdir, pngFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoResult, err)
	}
	key := PNGKey(opts)
	r.pngs.SetWithTTL(pngCacheKey(key), png, int64(len(png)), r.cfg.PNGTTL)
	r.pngs.Wait()

	raw, err := os.ReadFile(filepath.Join(destdir, longestFile))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoResult, err)
	}
	var longest longestXML
	if err := xml.Unmarshal(raw, &longest); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", longestFile, err)
	}
	rebuildTime, err := strconv.ParseInt(strings.TrimSpace(longest.RebuildTime), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid rebuild time %q: %w", longest.RebuildTime, err)
	}

	result := &types.RebuildTimeResult{
		Project:     opts.Project,
		Repository:  opts.Repository,
		Arch:        opts.Arch,
		Hosts:       opts.Hosts,
		Scheduler:   opts.Scheduler,
		RebuildTime: rebuildTime,
		Timings:     []types.RebuildTiming{},
		LongestPath: [][]string{},
		PNGKey:      key,
	}
	for _, t := range longest.Timings {
		result.Timings = append(result.Timings, types.RebuildTiming{
			Package:   t.Name,
			BuildTime: t.BuildTime,
			Finished:  t.Finished,
		})
	}
	sort.Slice(result.Timings, func(i, j int) bool {
		return result.Timings[i].Package < result.Timings[j].Package
	})
	for _, path := range longest.Paths {
		result.LongestPath = append(result.LongestPath, append([]string{}, path.Packages...))
	}
	return result, nil
}
