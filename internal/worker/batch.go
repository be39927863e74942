package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/eeatgrade/eeatgrade/internal/model"
)

// Grader grades a single URL end to end
type Grader interface {
	GradeURL(ctx context.Context, url string) (*model.AnalysisReport, error)
}

// GradeJob is one URL to grade
type GradeJob struct {
	URL    string
	Grader Grader
}

// Execute runs the grade job
func (j *GradeJob) Execute(ctx context.Context) Result {
	report, err := j.Grader.GradeURL(ctx, j.URL)
	return &GradeResult{URL: j.URL, Report: report, Error: err}
}

// GradeResult is the outcome for one URL
type GradeResult struct {
	URL    string
	Report *model.AnalysisReport
	Error  error
}

// GetError returns the job error, if any
func (r *GradeResult) GetError() error {
	return r.Error
}

// BatchProcessor grades multiple URLs concurrently
type BatchProcessor struct {
	grader      Grader
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(grader Grader, concurrency int) *BatchProcessor {
	return &BatchProcessor{grader: grader, concurrency: concurrency}
}

// ProcessURLs grades all URLs and returns one result per URL. Result
// order follows completion, not submission.
func (b *BatchProcessor) ProcessURLs(ctx context.Context, urls []string) []*GradeResult {
	if len(urls) == 0 {
		return []*GradeResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	jobs := make([]Job, len(urls))
	for i, url := range urls {
		jobs[i] = &GradeJob{URL: url, Grader: b.grader}
	}

	results := pool.Run(jobs)

	gradeResults := make([]*GradeResult, len(results))
	for i, result := range results {
		gradeResults[i] = result.(*GradeResult)
	}
	return gradeResults
}

// ProcessFile reads URLs from a file and grades them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*GradeResult, error) {
	urls, err := ReadURLsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read URLs: %w", err)
	}
	return b.ProcessURLs(ctx, urls), nil
}

// ReadURLsFromFile reads URLs from a file, one per line. Blank lines
// and # comments are skipped; duplicates are dropped.
func ReadURLsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var urls []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			urls = append(urls, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return urls, nil
}
