package summarize

import (
	"math/rand/v2"
	"sync"

	"summarizer/backend/internal/config"
	"summarizer/backend/internal/model"
	"summarizer/backend/internal/oracle"
)

// LengthPreset bounds generated output in tokens.
type LengthPreset struct {
	MinTokens int
	MaxTokens int
}

// LengthPresets maps each tier to its output bounds; max grows strictly
// from short to long.
var LengthPresets = map[model.LengthTier]LengthPreset{
	model.LengthShort:  {MinTokens: 20, MaxTokens: 60},
	model.LengthMedium: {MinTokens: 40, MaxTokens: 150},
	model.LengthLong:   {MinTokens: 80, MaxTokens: 300},
}

// Deterministic decoding settings, used whenever sampling is off.
const (
	defaultBeams         = 4
	defaultNoRepeatNgram = 3
	defaultLengthPenalty = 1.0
)

// Draw is one set of randomized generation knobs.
type Draw struct {
	TopK          int
	TopP          float64
	LengthPenalty float64
	NumBeams      int
}

// Sampler draws generation knobs uniformly from configured ranges. It is
// safe for concurrent use.
type Sampler struct {
	mu     sync.Mutex
	rng    *rand.Rand
	ranges config.Sampling
}

// NewSampler builds a sampler over src. A nil src seeds from the runtime.
func NewSampler(src rand.Source, ranges config.Sampling) *Sampler {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Sampler{rng: rand.New(src), ranges: ranges}
}

func (s *Sampler) Draw() Draw {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.ranges
	return Draw{
		TopK:          r.TopKMin + s.rng.IntN(r.TopKMax-r.TopKMin+1),
		TopP:          r.TopPMin + s.rng.Float64()*(r.TopPMax-r.TopPMin),
		LengthPenalty: r.LengthPenaltyMin + s.rng.Float64()*(r.LengthPenaltyMax-r.LengthPenaltyMin),
		NumBeams:      r.BeamsMin + s.rng.IntN(r.BeamsMax-r.BeamsMin+1),
	}
}

// BuildParams maps a validated request onto oracle parameters. With sampler
// nil or temperature 0, decoding is deterministic beam search. Otherwise
// every call draws fresh knobs, so repeated requests may differ.
func BuildParams(tier model.LengthTier, temperature float64, sampler *Sampler) oracle.Params {
	preset, ok := LengthPresets[tier]
	if !ok {
		preset = LengthPresets[model.DefaultLength]
	}

	params := oracle.Params{
		NumBeams:          defaultBeams,
		MinLength:         preset.MinTokens,
		MaxLength:         preset.MaxTokens,
		NoRepeatNgramSize: defaultNoRepeatNgram,
		LengthPenalty:     defaultLengthPenalty,
		EarlyStopping:     true,
	}
	if sampler == nil || temperature == 0 {
		return params
	}

	draw := sampler.Draw()
	params.DoSample = true
	params.Temperature = temperature
	params.TopK = draw.TopK
	params.TopP = draw.TopP
	params.LengthPenalty = draw.LengthPenalty
	params.NumBeams = draw.NumBeams
	return params
}
