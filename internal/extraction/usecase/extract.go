package usecase

import (
	"context"
	"slices"
	"strings"
	"time"

	"taskboard/internal/extraction"
)

// Extract runs the pipeline: prompt, one completion call, envelope parse and
// per-element validation. Invalid elements are dropped and counted.
func (uc *implUseCase) Extract(ctx context.Context, input extraction.ExtractInput) (out extraction.ExtractOutput, err error) {
	start := time.Now()
	defer func() {
		uc.metrics.requests.WithLabelValues(outcomeOf(err)).Inc()
		if err == nil {
			uc.metrics.duration.Observe(time.Since(start).Seconds())
		}
	}()

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return extraction.ExtractOutput{}, extraction.NewError(extraction.ErrInvalidInput, nil)
	}

	ref := uc.referenceDate(input.ReferenceDate)
	dc := extraction.NewDateContext(ref)

	key := dc.Today + "\x00" + text
	if uc.cache != nil {
		if cached, ok := uc.cache.Get(key); ok {
			uc.metrics.cacheHits.Inc()
			uc.l.Debugf(ctx, "extraction.usecase.Extract: cache hit for %d bytes of text", len(text))
			cached.Tasks = slices.Clone(cached.Tasks)
			return cached, nil
		}
	}

	content, err := uc.provider.Complete(ctx, buildPrompt(dc, text))
	if err != nil {
		uc.l.Errorf(ctx, "extraction.usecase.Extract: provider.Complete: %v", err)
		return extraction.ExtractOutput{}, extraction.NewError(extraction.ErrServiceUnavailable, err)
	}
	if strings.TrimSpace(content) == "" {
		return extraction.ExtractOutput{}, extraction.NewError(extraction.ErrEmptyResponse, nil)
	}

	elements, err := parseEnvelope(content)
	if err != nil {
		uc.l.Errorf(ctx, "extraction.usecase.Extract: parseEnvelope: %v raw=%q", err, content)
		return extraction.ExtractOutput{}, extraction.NewError(extraction.ErrMalformedEnvelope, err)
	}

	out = extraction.ExtractOutput{Tasks: make([]extraction.ExtractedTask, 0, len(elements))}
	for i, raw := range elements {
		task, verr := uc.validateElement(raw, ref)
		if verr != nil {
			out.DroppedCount++
			uc.l.Warn(ctx, "extraction.usecase.Extract: dropped element",
				"index", i,
				"reason", verr.Error(),
			)
			continue
		}
		out.Tasks = append(out.Tasks, task)
	}

	uc.metrics.tasks.Add(float64(len(out.Tasks)))
	uc.metrics.dropped.Add(float64(out.DroppedCount))
	uc.l.Infof(ctx, "extraction.usecase.Extract: %d task(s), %d dropped", len(out.Tasks), out.DroppedCount)

	if uc.cache != nil {
		uc.cache.Add(key, extraction.ExtractOutput{Tasks: slices.Clone(out.Tasks), DroppedCount: out.DroppedCount})
	}
	return out, nil
}

// referenceDate keeps the calendar day of ref, anchored in the parser's
// timezone. A zero ref means the current time there.
func (uc *implUseCase) referenceDate(ref time.Time) time.Time {
	loc := uc.dateMath.Location()
	if ref.IsZero() {
		return uc.now().In(loc)
	}
	return time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc)
}
