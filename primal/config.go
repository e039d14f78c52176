package primal

import "time"

// Config configures the primal drive loop (§4.3 "Configuration options").
// Use DefaultConfig() for a sane baseline, then apply Options.
type Config struct {
	// GrowingStrategy selects SingleCluster vs MultipleClusters seeding.
	GrowingStrategy GrowthStrategy

	// RelaxerStrategy selects how a stuck cluster's contradiction is
	// turned into a new or extended dual node.
	RelaxerStrategy RelaxerStrategy

	// Timeout bounds how long a single cluster may keep growing before
	// it is force-Resolved with its current best subgraph.
	Timeout time.Duration

	// ClusterNodeLimit caps the number of dual nodes a single cluster may
	// accumulate before the same force-Resolved fallback applies.
	ClusterNodeLimit int

	// MaxKernelEnumeration is forwarded to every cluster's
	// matrix.Tableau.ExtractSubgraph call (§4.4).
	MaxKernelEnumeration int

	// The following three are accepted and recorded for parity with the
	// reference configuration surface but are not acted upon: this
	// implementation runs single-threaded per solve (§4.2 "Concurrency:
	// single-threaded per solve"), so there is no thread pool to size or
	// pin and no parallel executor to enable.
	EnableParallelExecution bool
	ThreadPoolSize          int
	PinThreadsToCores       bool
}

// Option configures a Config. All Option functions modify the pointed Config.
type Option func(*Config)

// WithGrowingStrategy sets the cluster-activation policy.
func WithGrowingStrategy(s GrowthStrategy) Option {
	return func(c *Config) { c.GrowingStrategy = s }
}

// WithRelaxerStrategy sets the stuck-cluster relaxer policy.
func WithRelaxerStrategy(s RelaxerStrategy) Option {
	return func(c *Config) { c.RelaxerStrategy = s }
}

// WithTimeout sets the per-cluster growth timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) { c.Timeout = d }
}

// WithClusterNodeLimit sets the per-cluster dual-node cap.
func WithClusterNodeLimit(n int) Option {
	return func(c *Config) { c.ClusterNodeLimit = n }
}

// WithMaxKernelEnumeration overrides the exact free-variable enumeration
// cutoff forwarded to matrix.Tableau.ExtractSubgraph.
func WithMaxKernelEnumeration(n int) Option {
	return func(c *Config) { c.MaxKernelEnumeration = n }
}

// WithParallelExecutionRecorded records (without acting on) the dual.
// enable_parallel_execution / primal.thread_pool_size /
// primal.pin_threads_to_cores configuration surface.
func WithParallelExecutionRecorded(enable bool, poolSize int, pinToCores bool) Option {
	return func(c *Config) {
		c.EnableParallelExecution = enable
		c.ThreadPoolSize = poolSize
		c.PinThreadsToCores = pinToCores
	}
}

// DefaultConfig returns the baseline configuration: SingleCluster
// growth (§6 "growing_strategy ... default SingleCluster"), UnionFindVariant
// relaxers, no timeout, no node limit, and the matrix package's default
// kernel-enumeration cutoff.
func DefaultConfig() Config {
	return Config{
		GrowingStrategy:      SingleClusterStrategy{},
		RelaxerStrategy:      UnionFindVariant{},
		Timeout:              0,
		ClusterNodeLimit:     0,
		MaxKernelEnumeration: 0,
	}
}

// New builds a Config from DefaultConfig with opts applied in order.
func New(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
