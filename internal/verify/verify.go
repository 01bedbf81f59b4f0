// Package verify checks the move engine's algebraic properties on random
// samples, one cube size per goroutine.
package verify

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/SeamusWaldron/nxcube"
)

// Options configures a verification run.
type Options struct {
	Sizes    []int
	Samples  int   // random sequences per property and size
	Seed     int64 // 0 means time-based
	Parallel int   // concurrent sizes, 0 means one per size
}

// DefaultOptions returns the options used by the CLI when no flags are set.
func DefaultOptions() Options {
	return Options{
		Sizes:   []int{2, 3, 4, 5},
		Samples: 20,
	}
}

// Check is the outcome of one property on one cube size.
type Check struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Samples int    `json:"samples"`
	Detail  string `json:"detail,omitempty"`
}

// SizeResult holds every check run on one cube size.
type SizeResult struct {
	Size     int           `json:"size"`
	Checks   []Check       `json:"checks"`
	Duration time.Duration `json:"duration"`
}

// Passed reports whether every check on this size passed.
func (r SizeResult) Passed() bool {
	for _, c := range r.Checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

// Report is the result of a verification run, ordered by size.
type Report struct {
	Seed    int64        `json:"seed"`
	Results []SizeResult `json:"results"`
}

// Passed reports whether every check on every size passed.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed() {
			return false
		}
	}
	return true
}

// Failures returns the failing checks as "size/name: detail" lines.
func (r *Report) Failures() []string {
	var out []string
	for _, res := range r.Results {
		for _, c := range res.Checks {
			if !c.Passed {
				out = append(out, fmt.Sprintf("%dx%d/%s: %s", res.Size, res.Size, c.Name, c.Detail))
			}
		}
	}
	return out
}

// Run checks every property on every size. Property failures are recorded
// in the report; the returned error is only set for invalid options or a
// cancelled context.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if len(opts.Sizes) == 0 {
		opts.Sizes = DefaultOptions().Sizes
	}
	if opts.Samples <= 0 {
		opts.Samples = DefaultOptions().Samples
	}
	for _, size := range opts.Sizes {
		if size < 2 {
			return nil, &nxcube.ConstructionError{Size: size}
		}
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	report := &Report{Seed: seed, Results: make([]SizeResult, len(opts.Sizes))}

	g, ctx := errgroup.WithContext(ctx)
	if opts.Parallel > 0 {
		g.SetLimit(opts.Parallel)
	}

	for i, size := range opts.Sizes {
		i, size := i, size
		g.Go(func() error {
			// Each size gets its own stream so results do not depend on scheduling.
			rng := rand.New(rand.NewSource(seed + int64(size)))
			res, err := runSize(ctx, size, opts.Samples, rng)
			if err != nil {
				return fmt.Errorf("size %d: %w", size, err)
			}
			report.Results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return report, nil
}

type property struct {
	name  string
	check func(size int, rng *rand.Rand) error
}

var properties = []property{
	{"new-is-solved", checkNewSolved},
	{"quarter-turn-order", checkQuarterOrder},
	{"double-is-two-quarters", checkDouble},
	{"move-inverse", checkMoveInverse},
	{"sequence-inverse", checkSequenceInverse},
	{"colors-conserved", checkColorsConserved},
	{"shell-preserved", checkShellPreserved},
	{"copy-independent", checkCopyIndependent},
	{"rotation-keeps-solved", checkRotationSolved},
}

func runSize(ctx context.Context, size, samples int, rng *rand.Rand) (SizeResult, error) {
	start := time.Now()
	res := SizeResult{Size: size}

	for _, p := range properties {
		c := Check{Name: p.name, Passed: true}
		for s := 0; s < samples; s++ {
			if err := ctx.Err(); err != nil {
				return res, err
			}
			c.Samples++
			if err := p.check(size, rng); err != nil {
				c.Passed = false
				c.Detail = err.Error()
				break
			}
		}
		res.Checks = append(res.Checks, c)
	}

	res.Duration = time.Since(start)
	return res, nil
}

// Tokens returns every base token a cube of the given size accepts, without
// modifiers.
func Tokens(size int) []string {
	tokens := []string{"M", "E", "S", "X", "Y", "Z"}
	for _, f := range nxcube.Faces {
		tokens = append(tokens, f.String())
		for layer := 2; layer <= size; layer++ {
			tokens = append(tokens, strconv.Itoa(layer)+f.String())
		}
	}
	return tokens
}

func randomToken(size int, rng *rand.Rand) string {
	tokens := Tokens(size)
	mods := [...]string{"", "'", "2"}
	return tokens[rng.Intn(len(tokens))] + mods[rng.Intn(len(mods))]
}

func randomSequence(size, n int, rng *rand.Rand) []string {
	seq := make([]string, n)
	for i := range seq {
		seq[i] = randomToken(size, rng)
	}
	return seq
}

func scrambled(size int, rng *rand.Rand) (*nxcube.Cube, error) {
	c, err := nxcube.New(size, nxcube.WithSeed(rng.Int63()), nxcube.WithMoveHistory(false))
	if err != nil {
		return nil, err
	}
	if _, err := c.Scramble(10 + rng.Intn(20)); err != nil {
		return nil, err
	}
	return c, nil
}

func checkNewSolved(size int, _ *rand.Rand) error {
	c, err := nxcube.New(size)
	if err != nil {
		return err
	}
	if !c.IsSolved() {
		return fmt.Errorf("new cube is not solved")
	}
	return nil
}

func checkQuarterOrder(size int, rng *rand.Rand) error {
	c, err := scrambled(size, rng)
	if err != nil {
		return err
	}
	before := c.Copy()
	tok := randomToken(size, rng)
	for i := 0; i < 4; i++ {
		if err := c.Apply(tok); err != nil {
			return err
		}
	}
	if !c.Equal(before) {
		return fmt.Errorf("%s applied four times changed the cube", tok)
	}
	return nil
}

func checkDouble(size int, rng *rand.Rand) error {
	c, err := scrambled(size, rng)
	if err != nil {
		return err
	}
	base := Tokens(size)[rng.Intn(len(Tokens(size)))]
	other := c.Copy()
	if err := c.ApplyAll([]string{base, base}); err != nil {
		return err
	}
	if err := other.Apply(base + "2"); err != nil {
		return err
	}
	if !c.Equal(other) {
		return fmt.Errorf("%s twice differs from %s2", base, base)
	}
	return nil
}

func checkMoveInverse(size int, rng *rand.Rand) error {
	c, err := scrambled(size, rng)
	if err != nil {
		return err
	}
	before := c.Copy()
	tok := randomToken(size, rng)
	inv, err := nxcube.Inverse(tok)
	if err != nil {
		return err
	}
	if err := c.ApplyAll([]string{tok, inv}); err != nil {
		return err
	}
	if !c.Equal(before) {
		return fmt.Errorf("%s then %s changed the cube", tok, inv)
	}
	return nil
}

func checkSequenceInverse(size int, rng *rand.Rand) error {
	c, err := scrambled(size, rng)
	if err != nil {
		return err
	}
	before := c.Copy()
	seq := randomSequence(size, 1+rng.Intn(30), rng)
	inv, err := nxcube.InverseSequence(seq)
	if err != nil {
		return err
	}
	if err := c.ApplyAll(append(slices.Clone(seq), inv...)); err != nil {
		return err
	}
	if !c.Equal(before) {
		return fmt.Errorf("sequence followed by its inverse changed the cube")
	}
	return nil
}

func checkColorsConserved(size int, rng *rand.Rand) error {
	c, err := scrambled(size, rng)
	if err != nil {
		return err
	}
	if err := c.ApplyAll(randomSequence(size, 20, rng)); err != nil {
		return err
	}
	for _, col := range nxcube.Colors {
		if n := c.ColorCounts()[col]; n != size*size {
			return fmt.Errorf("%d %s stickers, want %d", n, col.Name(), size*size)
		}
	}
	return nil
}

func checkShellPreserved(size int, rng *rand.Rand) error {
	c, err := scrambled(size, rng)
	if err != nil {
		return err
	}
	if c.Len() != nxcube.ShellCount(size) {
		return fmt.Errorf("%d cubies, want %d", c.Len(), nxcube.ShellCount(size))
	}
	counts := map[nxcube.Kind]int{}
	for _, cubie := range c.Cubies() {
		counts[cubie.Kind()]++
	}
	if counts[nxcube.Corner] != 8 {
		return fmt.Errorf("%d corners, want 8", counts[nxcube.Corner])
	}
	return nil
}

func checkCopyIndependent(size int, rng *rand.Rand) error {
	c, err := scrambled(size, rng)
	if err != nil {
		return err
	}
	state := c.StateString()
	cp := c.Copy()
	if err := cp.ApplyAll(randomSequence(size, 5, rng)); err != nil {
		return err
	}
	if c.StateString() != state {
		return fmt.Errorf("moves on a copy changed the original")
	}
	return nil
}

func checkRotationSolved(size int, rng *rand.Rand) error {
	c, err := nxcube.New(size)
	if err != nil {
		return err
	}
	rotations := []string{"X", "Y", "Z", "X'", "Y'", "Z'", "X2", "Y2", "Z2"}
	for i := 0; i < 5; i++ {
		if err := c.Apply(rotations[rng.Intn(len(rotations))]); err != nil {
			return err
		}
	}
	if !c.IsSolved() {
		return fmt.Errorf("whole-cube rotations left the cube unsolved")
	}
	return nil
}
