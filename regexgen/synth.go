// Package regexgen - facade operations.
//
// These are the three calls most users need: tune weights for a config,
// draw one valid expression, draw a batch. Each validates its inputs up
// front, derives parameters once, and never loops without a budget.
package regexgen

import "math/rand"

// TuneWeights runs a full tuning session for cfg and returns only the
// final weight vector. Callers who need the run history or the
// convergence flag use Tune directly.
func TuneWeights(cfg Config, opts Options) (Weights, error) {
	res, err := Tune(cfg, opts)
	if err != nil {
		return Weights{}, err
	}
	return res.Weights, nil
}

// GenerateOne draws candidates under w until one passes the structural
// rules and returns it. The retry loop is bounded by opts.MaxAttempts;
// running it dry returns ErrExhausted instead of spinning forever on
// weights that cannot reach a valid shape.
func GenerateOne(cfg Config, w Weights, opts Options) (string, error) {
	p, o, err := prepare(cfg, w, opts)
	if err != nil {
		return "", err
	}
	return firstValid(p, w, rngFromSeed(o.Seed), o.MaxAttempts)
}

// GenerateMany returns count expressions that all pass the structural
// rules, drawn from one deterministic stream. count < 1 returns
// ErrBadCount; exhausting the attempt budget on any single string
// returns ErrExhausted with no partial batch.
func GenerateMany(cfg Config, w Weights, count int, opts Options) ([]string, error) {
	if count < 1 {
		return nil, ErrBadCount
	}
	p, o, err := prepare(cfg, w, opts)
	if err != nil {
		return nil, err
	}

	rng := rngFromSeed(o.Seed)
	out := make([]string, 0, count)
	for len(out) < count {
		s, err := firstValid(p, w, rng, o.MaxAttempts)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// prepare folds the shared entry-point work: config validation and
// parameter derivation, weight validation, option normalization.
func prepare(cfg Config, w Weights, opts Options) (Params, Options, error) {
	p, err := NewParams(cfg)
	if err != nil {
		return Params{}, Options{}, err
	}
	if err = w.Validate(); err != nil {
		return Params{}, Options{}, err
	}
	o, err := opts.normalized()
	if err != nil {
		return Params{}, Options{}, err
	}
	return p, o, nil
}

// firstValid is the bounded generate-until-valid loop shared by the
// generation facades.
func firstValid(p Params, w Weights, rng *rand.Rand, maxAttempts int) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if s := Generate(p, w, rng); IsValid(p, s) {
			return s, nil
		}
	}
	return "", ErrExhausted
}
