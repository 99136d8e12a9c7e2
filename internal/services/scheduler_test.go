package services

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestSchedulerCancelRemovesEntry(t *testing.T) {
	s := NewRefreshScheduler()

	cancel := s.Every(10*time.Second, func() {})
	if n := s.Len(); n != 1 {
		t.Fatalf("Expected 1 entry, got %d", n)
	}

	cancel()
	cancel() // 重复取消不应出错
	if n := s.Len(); n != 0 {
		t.Fatalf("Expected 0 entries after cancel, got %d", n)
	}
}

func TestSchedulerRunsAndStopsAfterCancel(t *testing.T) {
	s := NewRefreshScheduler()
	s.Start()
	defer s.Stop()

	var runs atomic.Int32
	fired := make(chan struct{}, 10)
	cancel := s.Every(time.Second, func() {
		runs.Add(1)
		fired <- struct{}{}
	})

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("Job did not fire within 3s")
	}

	cancel()
	time.Sleep(100 * time.Millisecond)
	after := runs.Load()
	time.Sleep(1500 * time.Millisecond)
	if got := runs.Load(); got != after {
		t.Errorf("Job kept running after cancel: %d -> %d", after, got)
	}
}
