package chainhashmap

import (
	"fmt"
	"math"

	"github.com/gostonefire/chainhashmap/chain"
	"github.com/gostonefire/chainhashmap/hmerrors"
	"github.com/gostonefire/chainhashmap/internal/conf"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
)

// Conf - Is a struct used in the call to NewFromConf holding configuration for a new hash map.
// Zero values are replaced by defaults.
//   - Capacity is the initial number of buckets, 0 gives the default of 10
//   - LoadFactorThreshold is the load factor that triggers a rehash, 0 gives the default of 1.0
//   - Logger is an optional logger, nil gives a logger that discards everything
type Conf struct {
	Capacity            int
	LoadFactorThreshold float64
	Logger              *zerolog.Logger
}

// Option - Optional setting given to any of the New... functions
type Option func(c *Conf)

// WithLogger - Sets the logger that the hash map reports construction, rehash and clear events to
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Conf) {
		c.Logger = &logger
	}
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of entries stored
//   - Capacity is the number of buckets
//   - LoadFactor is Records divided by Capacity
//   - EmptyBuckets is the number of buckets holding no entries
//   - LongestChain is the number of entries in the most populated bucket
//   - BucketDistribution is the number of entries stored in each bucket, nil unless asked for
type HashMapStat struct {
	Records            int
	Capacity           int
	LoadFactor         float64
	EmptyBuckets       int
	LongestChain       int
	BucketDistribution []int
}

// HashMap - A hash map using separate chaining, one chain.Chain per bucket, that doubles its number of buckets
// whenever the load factor would reach the load factor threshold.
// A HashMap is not safe for concurrent use.
type HashMap[K comparable, V comparable] struct {
	size                int
	capacity            int
	loadFactorThreshold float64
	buckets             []*chain.Chain[K, V]
	logger              zerolog.Logger
}

// New - Returns a new hash map with 10 buckets and a load factor threshold of 1.0
func New[K comparable, V comparable](opts ...Option) (*HashMap[K, V], error) {
	return newHashMap[K, V](conf.DefaultCapacity, conf.DefaultLoadFactorThreshold, opts)
}

// NewWithCapacity - Returns a new hash map with the given number of buckets and a load factor threshold of 1.0
//   - capacity is the initial number of buckets, it must be at least 1
//
// It returns:
//   - hashMap is a pointer to the new HashMap
//   - err is of type hmerrors.InvalidArgument if capacity is invalid
func NewWithCapacity[K comparable, V comparable](capacity int, opts ...Option) (hashMap *HashMap[K, V], err error) {
	return newHashMap[K, V](capacity, conf.DefaultLoadFactorThreshold, opts)
}

// NewWithThreshold - Returns a new hash map with 10 buckets and the given load factor threshold
//   - threshold is the load factor that triggers a rehash, it must be within 0.1 and 1.0 (inclusive)
//
// It returns:
//   - hashMap is a pointer to the new HashMap
//   - err is of type hmerrors.InvalidArgument if threshold is invalid
func NewWithThreshold[K comparable, V comparable](threshold float64, opts ...Option) (hashMap *HashMap[K, V], err error) {
	return newHashMap[K, V](conf.DefaultCapacity, threshold, opts)
}

// NewWithCapacityAndThreshold - Returns a new hash map with the given number of buckets and load factor threshold.
// Both arguments are validated, and if both are invalid the returned error holds both violations.
//   - capacity is the initial number of buckets, it must be at least 1
//   - threshold is the load factor that triggers a rehash, it must be within 0.1 and 1.0 (inclusive)
//
// It returns:
//   - hashMap is a pointer to the new HashMap
//   - err is of type hmerrors.InvalidArgument if any argument is invalid
func NewWithCapacityAndThreshold[K comparable, V comparable](
	capacity int,
	threshold float64,
	opts ...Option,
) (
	hashMap *HashMap[K, V],
	err error,
) {
	return newHashMap[K, V](capacity, threshold, opts)
}

// NewFromConf - Returns a new hash map configured from a Conf struct, see Conf for defaults
func NewFromConf[K comparable, V comparable](c Conf) (hashMap *HashMap[K, V], err error) {
	capacity := c.Capacity
	if capacity == 0 {
		capacity = conf.DefaultCapacity
	}
	threshold := c.LoadFactorThreshold
	if threshold == 0 {
		threshold = conf.DefaultLoadFactorThreshold
	}

	var opts []Option
	if c.Logger != nil {
		opts = append(opts, WithLogger(*c.Logger))
	}

	return newHashMap[K, V](capacity, threshold, opts)
}

// newHashMap - Validates arguments and builds the hash map
func newHashMap[K comparable, V comparable](capacity int, threshold float64, opts []Option) (hashMap *HashMap[K, V], err error) {
	err = validate(capacity, threshold)
	if err != nil {
		return
	}

	c := Conf{Capacity: capacity, LoadFactorThreshold: threshold}
	for _, opt := range opts {
		opt(&c)
	}
	logger := zerolog.Nop()
	if c.Logger != nil {
		logger = *c.Logger
	}

	hashMap = &HashMap[K, V]{
		capacity:            capacity,
		loadFactorThreshold: threshold,
		buckets:             newBuckets[K, V](capacity),
		logger:              logger,
	}

	hashMap.logger.Debug().
		Int("capacity", capacity).
		Float64("loadFactorThreshold", threshold).
		Msg("hash map created")

	return
}

// validate - Checks capacity and threshold, collecting every violation
func validate(capacity int, threshold float64) error {
	var result *multierror.Error

	if capacity < conf.MinCapacity {
		result = multierror.Append(result, hmerrors.NewInvalidArgument(
			fmt.Sprintf("capacity must be larger than 0, got %d", capacity)))
	}

	if math.IsNaN(threshold) || threshold < conf.MinLoadFactorThreshold || threshold > conf.MaxLoadFactorThreshold {
		result = multierror.Append(result, hmerrors.NewInvalidArgument(
			fmt.Sprintf("load factor threshold must be within %.1f and %.1f, got %v",
				conf.MinLoadFactorThreshold, conf.MaxLoadFactorThreshold, threshold)))
	}

	return result.ErrorOrNil()
}

// newBuckets - Returns a bucket array of empty chains
func newBuckets[K comparable, V comparable](capacity int) []*chain.Chain[K, V] {
	buckets := make([]*chain.Chain[K, V], capacity)
	for i := range buckets {
		buckets[i] = chain.New[K, V]()
	}

	return buckets
}
