package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/eeatgrade/eeatgrade/internal/model"
)

type countingJob struct {
	counter *int32
	fail    bool
}

type countingResult struct {
	err error
}

func (r *countingResult) GetError() error { return r.err }

func (j *countingJob) Execute(ctx context.Context) Result {
	atomic.AddInt32(j.counter, 1)
	if j.fail {
		return &countingResult{err: errors.New("boom")}
	}
	return &countingResult{}
}

func TestPoolRunsAllJobs(t *testing.T) {
	var counter int32
	jobs := make([]Job, 50)
	for i := range jobs {
		jobs[i] = &countingJob{counter: &counter, fail: i%7 == 0}
	}

	pool := NewPool(4)
	pool.Start()
	results := pool.Run(jobs)

	if len(results) != 50 {
		t.Fatalf("results = %d, want 50", len(results))
	}
	if atomic.LoadInt32(&counter) != 50 {
		t.Fatalf("executed %d jobs, want 50", counter)
	}

	failed := 0
	for _, r := range results {
		if r.GetError() != nil {
			failed++
		}
	}
	if failed != 8 {
		t.Fatalf("failed = %d, want 8", failed)
	}
}

type blockingJob struct {
	counter *int32
	started chan struct{}
}

func (j *blockingJob) Execute(ctx context.Context) Result {
	atomic.AddInt32(j.counter, 1)
	select {
	case j.started <- struct{}{}:
	default:
	}
	<-ctx.Done()
	return &countingResult{}
}

func TestPoolShutdownStopsSubmission(t *testing.T) {
	var counter int32
	started := make(chan struct{}, 1)
	jobs := make([]Job, 50)
	for i := range jobs {
		jobs[i] = &blockingJob{counter: &counter, started: started}
	}

	pool := NewPool(1)
	pool.Start()

	done := make(chan []Result, 1)
	go func() { done <- pool.Run(jobs) }()

	<-started
	pool.Shutdown()
	results := <-done

	// worker count 1 and queue capacity 1 bound how many jobs can be
	// in flight when the pool is cancelled
	if n := atomic.LoadInt32(&counter); n > 5 {
		t.Fatalf("executed %d jobs after shutdown, want at most the in-flight few", n)
	}
	if len(results) >= 50 {
		t.Fatalf("results = %d, want fewer than the full batch", len(results))
	}
}

type stubGrader struct {
	calls int32
}

func (g *stubGrader) GradeURL(ctx context.Context, url string) (*model.AnalysisReport, error) {
	atomic.AddInt32(&g.calls, 1)
	if url == "https://bad.example.com" {
		return nil, errors.New("fetch failed")
	}
	return &model.AnalysisReport{Summary: url}, nil
}

func TestBatchProcessor(t *testing.T) {
	g := &stubGrader{}
	b := NewBatchProcessor(g, 3)

	results := b.ProcessURLs(context.Background(), []string{
		"https://a.example.com",
		"https://bad.example.com",
		"https://b.example.com",
	})

	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	errs := 0
	for _, r := range results {
		if r.Error != nil {
			errs++
		}
	}
	if errs != 1 {
		t.Fatalf("errors = %d, want 1", errs)
	}
}

func TestReadURLsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.txt")
	content := "https://a.example.com\n\n# comment\nhttps://b.example.com\nhttps://a.example.com\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	urls, err := ReadURLsFromFile(path)
	if err != nil {
		t.Fatalf("ReadURLsFromFile: %v", err)
	}
	if len(urls) != 2 {
		t.Fatalf("urls = %v, want 2 entries", urls)
	}
}
