// Package plugin exposes the numeric routines of komet as named functions
// over CBOR-encoded bytes, for embedding in a host application.
package plugin

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/supertrianguloid/komet/boxplot"
	"github.com/supertrianguloid/komet/contour"
	"github.com/supertrianguloid/komet/grid"
	"github.com/supertrianguloid/komet/histogram"
	"github.com/supertrianguloid/komet/spectrum"
	"github.com/supertrianguloid/komet/wire"
)

// ErrUnknownFunction is returned by Call for names not in Functions.
var ErrUnknownFunction = errors.New("plugin: unknown function")

type handler func(ctx context.Context, input []byte) ([]byte, error)

// Host dispatches calls by name. The zero value is not usable; use NewHost.
type Host struct {
	logger   *zap.Logger
	workers  int
	handlers map[string]handler
}

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the logger calls are reported to. Nil keeps the no-op
// logger.
func WithLogger(l *zap.Logger) Option {
	return func(h *Host) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithWorkers bounds the number of levels a contour call traces
// concurrently. Values below one are ignored.
func WithWorkers(n int) Option {
	return func(h *Host) {
		if n >= 1 {
			h.workers = n
		}
	}
}

// NewHost returns a Host serving contour, histogram, boxplot, boxplot_alt,
// fft and ifft.
func NewHost(opts ...Option) *Host {
	h := &Host{logger: zap.NewNop(), workers: contour.DefaultWorkers}
	for _, opt := range opts {
		opt(h)
	}
	h.handlers = map[string]handler{
		"contour":     h.contour,
		"histogram":   h.histogram,
		"boxplot":     h.boxplot,
		"boxplot_alt": h.boxplotFlat,
		"fft":         h.fft,
		"ifft":        h.ifft,
	}
	return h
}

// Functions lists the callable names in ascending order.
func (h *Host) Functions() []string {
	names := make([]string, 0, len(h.handlers))
	for name := range h.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call runs the named function on a CBOR request and returns the CBOR
// response. Errors are prefixed with the function name.
func (h *Host) Call(ctx context.Context, name string, input []byte) ([]byte, error) {
	fn, ok := h.handlers[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownFunction)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	start := time.Now()
	out, err := fn(ctx, input)
	fields := []zap.Field{
		zap.String("function", name),
		zap.Int("input_bytes", len(input)),
		zap.Duration("elapsed", time.Since(start)),
	}
	if err != nil {
		h.logger.Warn("plugin call failed", append(fields, zap.Error(err))...)
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	h.logger.Debug("plugin call", append(fields, zap.Int("output_bytes", len(out)))...)
	return out, nil
}

func (h *Host) contour(ctx context.Context, input []byte) ([]byte, error) {
	req, err := wire.DecodeContourRequest(input)
	if err != nil {
		return nil, err
	}
	g, err := grid.New(req.X, req.Y, req.Z)
	if err != nil {
		return nil, err
	}
	contours, err := contour.Generate(ctx, g, req.Levels, contour.WithWorkers(h.workers))
	if err != nil {
		return nil, err
	}
	return wire.EncodeContours(contours)
}

func (h *Host) histogram(_ context.Context, input []byte) ([]byte, error) {
	req, err := wire.DecodeHistogramRequest(input)
	if err != nil {
		return nil, err
	}
	edges := req.Edges
	if edges == nil {
		if req.Bins > math.MaxInt32 {
			return nil, fmt.Errorf("bins=%d: %w", req.Bins, histogram.ErrBadBins)
		}
		if edges, err = histogram.Edges(req.Data, int(req.Bins)); err != nil {
			return nil, err
		}
	}
	counts, err := histogram.Counts(req.Data, edges)
	if err != nil {
		return nil, err
	}
	return wire.EncodeHistogram(counts, edges)
}

func (h *Host) boxplot(_ context.Context, input []byte) ([]byte, error) {
	req, err := wire.DecodeBoxplotRequest(input)
	if err != nil {
		return nil, err
	}
	stats, err := boxplot.Compute(req.Values, req.Whiskers)
	if err != nil {
		return nil, err
	}
	return wire.EncodeBoxplot(stats)
}

// boxplotFlat serves boxplot_alt, the CBOR-free form of boxplot.
func (h *Host) boxplotFlat(_ context.Context, input []byte) ([]byte, error) {
	req, err := wire.DecodeBoxplotFlat(input)
	if err != nil {
		return nil, err
	}
	stats, err := boxplot.Compute(req.Values, req.Whiskers)
	if err != nil {
		return nil, err
	}
	return wire.EncodeBoxplotFlat(stats), nil
}

func (h *Host) fft(_ context.Context, input []byte) ([]byte, error) {
	seq, err := wire.DecodeComplexArray(input)
	if err != nil {
		return nil, err
	}
	return wire.EncodeComplexArray(spectrum.FFT(seq))
}

func (h *Host) ifft(_ context.Context, input []byte) ([]byte, error) {
	coeff, err := wire.DecodeComplexArray(input)
	if err != nil {
		return nil, err
	}
	return wire.EncodeComplexArray(spectrum.IFFT(coeff))
}
