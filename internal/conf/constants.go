package conf

// DefaultCapacity - Number of buckets used when no capacity is given at construction
const DefaultCapacity int = 10

// MinCapacity - Lowest permitted number of buckets
const MinCapacity int = 1

// DefaultLoadFactorThreshold - Load factor threshold used when none is given at construction
const DefaultLoadFactorThreshold float64 = 1.0

// MinLoadFactorThreshold - Lowest permitted load factor threshold (inclusive)
const MinLoadFactorThreshold float64 = 0.1

// MaxLoadFactorThreshold - Highest permitted load factor threshold (inclusive)
const MaxLoadFactorThreshold float64 = 1.0

// GrowthFactor - Factor by which the bucket array grows at each rehash
const GrowthFactor int = 2
