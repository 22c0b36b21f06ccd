// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/curator/approval"
	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/gate"
	"github.com/poiesic/curator/novelty"
	"github.com/poiesic/curator/policy"
)

// Outcome names where a record's progress ended.
type Outcome int

const (
	// OutcomeQueued means the record cleared every gate and waits in
	// the approval queue.
	OutcomeQueued Outcome = iota + 1
	// OutcomeLicenseRejected means the license gate terminated the
	// record.
	OutcomeLicenseRejected
	// OutcomeDuplicate means the novelty check found the content
	// already indexed.
	OutcomeDuplicate
	// OutcomeInvalid means the record failed validation.
	OutcomeInvalid
	// OutcomeFailed means an internal error stopped the record.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeQueued:
		return "queued"
	case OutcomeLicenseRejected:
		return "license-rejected"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// RecordResult reports one record's passage through the gates.
type RecordResult struct {
	Key     core.ID
	URL     string
	Outcome Outcome
	Verdict core.Verdict
	Quality float64
	Risk    core.RiskLevel
	Reason  string
	Err     error
}

// Report summarizes a batch run. Partial results always survive
// individual record failures.
type Report struct {
	Processed       int
	Queued          int
	LicenseRejected int
	Duplicates      int
	Invalid         int
	Failed          int
	// AvgQuality averages over the queued records.
	AvgQuality float64
	// RiskDistribution counts queued records per risk level name.
	RiskDistribution map[string]int
	Results          []*RecordResult
	// Errors collects the per-record failures.
	Errors []error
}

// Orchestrator drives records through the gate sequence on a worker
// pool. Gate evaluation runs concurrently per record; the novelty
// index and the queue serialize internally.
type Orchestrator struct {
	policy  *policy.Policy
	license *gate.LicenseGate
	risk    *gate.RiskScanner
	quality *gate.QualityScorer
	dedup   *novelty.Deduplicator
	queue   *approval.Queue
	pool    *ants.Pool
	logger  *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(o *Orchestrator) error {
		if size < 1 {
			size = 1
		}
		if o.pool != nil {
			o.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		o.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) error {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
		return nil
	}
}

// NewOrchestrator wires the gates over a shared policy.
func NewOrchestrator(p *policy.Policy, dedup *novelty.Deduplicator, queue *approval.Queue, opts ...Option) (*Orchestrator, error) {
	if p == nil {
		return nil, ErrPolicyRequired
	}
	if dedup == nil {
		return nil, ErrDeduplicatorRequired
	}
	if queue == nil {
		return nil, ErrQueueRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	o := &Orchestrator{
		policy: p,
		dedup:  dedup,
		queue:  queue,
		pool:   pool,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(o); optErr != nil {
			o.Release()
			return nil, optErr
		}
	}

	o.license = gate.NewLicenseGate(p)
	o.risk, err = gate.NewRiskScanner(p, o.logger)
	if err != nil {
		o.Release()
		return nil, err
	}
	o.quality = gate.NewQualityScorer(p)

	return o, nil
}

// Process runs a batch of records through the gates and reports the
// aggregate outcome. Records are evaluated concurrently; one record's
// failure never aborts the others.
func (o *Orchestrator) Process(ctx context.Context, records []*core.ContentRecord) (*Report, error) {
	batchTitles := make([]string, len(records))
	for i, record := range records {
		batchTitles[i] = record.Title
	}

	results := make([]*RecordResult, len(records))
	var wg sync.WaitGroup

	for i, record := range records {
		wg.Add(1)
		record := record
		slot := i
		err := o.pool.Submit(func() {
			defer wg.Done()
			results[slot] = o.processOne(ctx, record, batchTitles, slot)
		})
		if err != nil {
			// Pool rejection still yields a per-record result.
			results[slot] = &RecordResult{
				Key: record.Key, URL: record.URL,
				Outcome: OutcomeFailed, Err: err,
			}
			wg.Done()
		}
	}
	wg.Wait()

	return buildReport(results), nil
}

// processOne drives a single record through every gate in order.
func (o *Orchestrator) processOne(ctx context.Context, record *core.ContentRecord, batchTitles []string, self int) *RecordResult {
	core.NormalizeRecord(record)
	result := &RecordResult{Key: record.Key, URL: record.URL}

	if err := core.ValidateRecord(record); err != nil {
		result.Outcome = OutcomeInvalid
		result.Err = err
		result.Reason = err.Error()
		return result
	}

	license := o.license.Evaluate(record)
	if !license.Allowed {
		result.Outcome = OutcomeLicenseRejected
		result.Reason = license.Reason
		o.logger.Info("record rejected by license gate",
			"key", record.Key, "reason", license.Reason)
		return result
	}

	risk := o.risk.Scan(record)
	result.Risk = risk.Level

	quality := o.quality.Score(record, batchTitles, self)
	result.Quality = quality.Overall

	nov, err := o.dedup.Process(ctx, record)
	if err != nil && !errors.Is(err, novelty.ErrAlreadyIndexed) {
		// Snapshot persistence failed; the in-memory index carries the
		// record, so the batch continues.
		o.logger.Error("novelty persistence failed", "key", record.Key, "err", err)
	}
	if !nov.IsNovel {
		result.Outcome = OutcomeDuplicate
		result.Reason = "duplicate of indexed content"
		return result
	}

	item, err := o.queue.Add(ctx, record, quality, license, risk, nov)
	if err != nil {
		if errors.Is(err, approval.ErrDuplicatePending) {
			result.Outcome = OutcomeDuplicate
			result.Reason = "already pending approval"
			return result
		}
		result.Outcome = OutcomeFailed
		result.Err = err
		return result
	}

	result.Outcome = OutcomeQueued
	result.Verdict = item.Verdict
	result.Reason = item.Recommendation
	return result
}

func buildReport(results []*RecordResult) *Report {
	report := &Report{
		Processed:        len(results),
		RiskDistribution: make(map[string]int),
		Results:          results,
	}

	totalQuality := 0.0
	for _, result := range results {
		switch result.Outcome {
		case OutcomeQueued:
			report.Queued++
			totalQuality += result.Quality
			report.RiskDistribution[result.Risk.String()]++
		case OutcomeLicenseRejected:
			report.LicenseRejected++
		case OutcomeDuplicate:
			report.Duplicates++
		case OutcomeInvalid:
			report.Invalid++
		case OutcomeFailed:
			report.Failed++
		}
		if result.Err != nil {
			report.Errors = append(report.Errors, result.Err)
		}
	}
	if report.Queued > 0 {
		report.AvgQuality = totalQuality / float64(report.Queued)
	}
	return report
}

// Release releases the worker pool.
// The orchestrator should not be used after calling Release.
func (o *Orchestrator) Release() {
	if o.pool != nil {
		o.pool.Release()
	}
}
