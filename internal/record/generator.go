package record

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// field ranges, inclusive
const (
	minAge, maxAge           = 1, 99
	minDistance, maxDistance = 0, 999
	minMeat, maxMeat         = 0, 9
	minHeight, maxHeight     = 21, 107
	minWeight, maxWeight     = 7, 1400
	minBaskets, maxBaskets   = 0, 2

	minSpeed, maxSpeed = 0.1, 8.0

	colorsPerRecord = 3
	daysPerYear     = 365

	// upper bound on up-front allocation; larger batches grow by append
	maxPrealloc = 1 << 16
)

// ErrInvalidArgument is returned for a negative record count.
var ErrInvalidArgument = errors.New("invalid argument")

// Generator produces records from its own seeded random source.
// It is not safe for concurrent use.
type Generator struct {
	faker *gofakeit.Faker
	now   func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the time birth dates are derived from.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New creates a generator seeded with seed. A zero seed draws a random one,
// so output is only reproducible for non-zero seeds.
func New(seed int64, opts ...Option) *Generator {
	g := &Generator{
		faker: gofakeit.New(seed),
		now:   time.Now,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Generate produces count records. A count of zero yields an empty slice.
func (g *Generator) Generate(count int) ([]Record, error) {
	if count < 0 {
		return nil, fmt.Errorf("generate %d records: %w", count, ErrInvalidArgument)
	}

	records := make([]Record, 0, preallocFor(count))
	for range count {
		records = append(records, g.Record())
	}
	return records, nil
}

func preallocFor(count int) int {
	return min(count, maxPrealloc)
}

// Record produces a single random record.
func (g *Generator) Record() Record {
	f := g.faker

	// birth date is derived from the age draw, never drawn on its own
	age := f.IntRange(minAge, maxAge)

	return Record{
		Name:                  f.Name(),
		Age:                   age,
		BirthDate:             BirthDate(g.now(), age),
		DistanceFromZoo:       f.IntRange(minDistance, maxDistance),
		MeatObjectsWorn:       f.IntRange(minMeat, maxMeat),
		HoneyRatio:            math.Round(f.Float64Range(0, 1)*100) / 100,
		Height:                f.IntRange(minHeight, maxHeight),
		Weight:                f.IntRange(minWeight, maxWeight),
		CombatTraining:        f.Bool(),
		HasBearSpray:          f.Bool(),
		NumberOfPicnicBaskets: f.IntRange(minBaskets, maxBaskets),
		RunningSpeed:          f.Float64Range(minSpeed, maxSpeed),
		ColorsWorn:            g.colors(),
		EatenByBear:           f.Bool(),
	}
}

// BirthDate returns the calendar date age*365 days before now.
func BirthDate(now time.Time, age int) time.Time {
	d := now.AddDate(0, 0, -age*daysPerYear)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// colors samples without replacement using a partial Fisher-Yates shuffle
// over a copy of the palette. Order is sampling order.
func (g *Generator) colors() []string {
	pool := Palette()
	for i := range colorsPerRecord {
		j := g.faker.IntRange(i, len(pool)-1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	out := make([]string, colorsPerRecord)
	copy(out, pool)
	return out
}
