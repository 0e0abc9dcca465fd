// Package batch compresses or decompresses several files in parallel.
// Each file is coded independently and its output is written all-or-nothing.
package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"

	"github.com/woozymasta/lz78"
)

var log = logging.MustGetLogger("lz78/batch")

func init() {
	logging.SetLevel(logging.WARNING, "lz78/batch")
}

// Mode selects the direction of a run.
type Mode int

// Mode constants.
const (
	Decompress Mode = iota // Container -> text (default).
	Compress               // Text -> container.
)

// DefaultCacheSize is the number of coded results kept for identical inputs.
const DefaultCacheSize = 64

// Errors returned by Run before any file is processed.
var (
	ErrOutputCollision = errors.New("output path collision")
	ErrNoOutputDir     = errors.New("output directory does not exist")
)

// Config configures a Runner.
type Config struct {
	Mode    Mode
	OutDir  string // Output directory; "" = current directory.
	Workers int    // Parallel files; 0 = runtime.NumCPU().
	// CacheSize bounds the cache of results for identical input content.
	// 0 = DefaultCacheSize, negative disables the cache.
	CacheSize  int
	Compress   *lz78.CompressOptions // nil = lz78 defaults
	Decompress *lz78.Options         // nil = lz78 defaults
}

// Result describes one processed file.
type Result struct {
	Input   string
	Output  string
	InSize  int
	OutSize int
	Cached  bool // Output reused from an earlier file with the same content.
	Err     error
}

// Runner runs batches with one Config.
type Runner struct {
	cfg   Config
	cache *lru.Cache[cacheKey, cacheEntry]
	sum   func([]byte) uint64 // content hash for cache keys
}

// cacheKey identifies input content for one direction.
type cacheKey struct {
	mode Mode
	sum  uint64
	size int
}

// cacheEntry keeps the input so a hash collision is never served as a hit.
type cacheEntry struct {
	in  []byte
	out []byte
}

// New returns a Runner for cfg.
func New(cfg Config) (*Runner, error) {
	if cfg.OutDir == "" {
		cfg.OutDir = "."
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.CacheSize == 0 {
		cfg.CacheSize = DefaultCacheSize
	}

	r := &Runner{cfg: cfg, sum: xxhash.Sum64}
	if cfg.CacheSize > 0 {
		cache, err := lru.New[cacheKey, cacheEntry](cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("result cache: %w", err)
		}
		r.cache = cache
	}

	return r, nil
}

// OutputPath returns where the result for input is written: the input base
// name without its last extension, plus the extension for mode, in outDir.
func OutputPath(input string, mode Mode, outDir string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if mode == Compress {
		return filepath.Join(outDir, base+lz78.CompressedExt)
	}

	return filepath.Join(outDir, base+lz78.DecodedExt)
}

// Run processes inputs and returns one Result per input, in input order.
// A failing file does not stop the others; the returned error joins all file errors.
func (r *Runner) Run(ctx context.Context, inputs []string) ([]Result, error) {
	info, err := os.Stat(r.cfg.OutDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNoOutputDir, r.cfg.OutDir)
	}

	results := make([]Result, len(inputs))
	if err := r.planOutputs(inputs, results); err != nil {
		return nil, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i := range results {
		res := &results[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				res.Err = err
				return nil
			}
			r.process(res)
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.Input, res.Err))
		}
	}

	return results, errors.Join(errs...)
}

// planOutputs fills Input/Output and rejects runs where two files share an
// output path or an output would overwrite an input.
func (r *Runner) planOutputs(inputs []string, results []Result) error {
	owners := make(map[string]string, len(inputs))
	for _, in := range inputs {
		if abs, err := filepath.Abs(in); err == nil {
			owners[abs] = in
		}
	}

	for i, in := range inputs {
		out := OutputPath(in, r.cfg.Mode, r.cfg.OutDir)
		abs, err := filepath.Abs(out)
		if err != nil {
			return err
		}
		if prev, ok := owners[abs]; ok {
			return fmt.Errorf("%w: %s and %s both map to %s", ErrOutputCollision, prev, in, out)
		}
		owners[abs] = in
		results[i] = Result{Input: in, Output: out}
	}

	return nil
}

func (r *Runner) process(res *Result) {
	data, err := os.ReadFile(res.Input)
	if err != nil {
		res.Err = err
		log.Errorf("%s: %v", res.Input, err)
		return
	}
	res.InSize = len(data)

	out, cached, err := r.code(data)
	if err != nil {
		res.Err = err
		log.Errorf("%s: %v", res.Input, err)
		return
	}

	if err := writeFileAtomic(res.Output, out); err != nil {
		res.Err = err
		log.Errorf("%s: %v", res.Output, err)
		return
	}

	res.OutSize = len(out)
	res.Cached = cached
	log.Infof("%s -> %s (%d -> %d bytes)", res.Input, res.Output, res.InSize, res.OutSize)
}

// code runs the codec on data, reusing a cached result for identical content.
func (r *Runner) code(data []byte) ([]byte, bool, error) {
	key := cacheKey{mode: r.cfg.Mode, sum: r.sum(data), size: len(data)}
	if r.cache != nil {
		if e, ok := r.cache.Get(key); ok && bytes.Equal(e.in, data) {
			return e.out, true, nil
		}
	}

	var (
		out []byte
		err error
	)
	if r.cfg.Mode == Compress {
		out, err = lz78.Compress(data, r.cfg.Compress)
	} else {
		out, err = lz78.Decompress(data, r.cfg.Decompress)
	}
	if err != nil {
		return nil, false, err
	}

	if r.cache != nil {
		r.cache.Add(key, cacheEntry{in: data, out: out})
	}

	return out, false, nil
}
