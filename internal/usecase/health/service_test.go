package health

import (
	"context"
	"errors"
	"testing"
)

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(_ context.Context) error { return s.err }

type stubIndex struct {
	ready bool
}

func (s *stubIndex) Ready() bool { return s.ready }

func TestCheck_Healthy(t *testing.T) {
	svc := New(&stubPinger{}, &stubIndex{ready: true})

	report := svc.Check(context.Background())
	if report.Status != Healthy {
		t.Errorf("status = %q, want %q", report.Status, Healthy)
	}
	if report.Checks["index"] != CheckOK || report.Checks["corpus"] != CheckOK {
		t.Errorf("unexpected checks: %v", report.Checks)
	}
}

func TestCheck_NotIndexed(t *testing.T) {
	svc := New(&stubPinger{}, &stubIndex{ready: false})

	report := svc.Check(context.Background())
	if report.Status != Unhealthy {
		t.Errorf("status = %q, want %q", report.Status, Unhealthy)
	}
	if report.Checks["index"] != CheckError {
		t.Errorf("index check = %q, want %q", report.Checks["index"], CheckError)
	}
}

func TestCheck_CorpusDownButIndexed(t *testing.T) {
	svc := New(&stubPinger{err: errors.New("connection refused")}, &stubIndex{ready: true})

	report := svc.Check(context.Background())
	if report.Status != Degraded {
		t.Errorf("status = %q, want %q", report.Status, Degraded)
	}
}

func TestCheck_NilCorpusPinger(t *testing.T) {
	svc := New(nil, &stubIndex{ready: true})

	report := svc.Check(context.Background())
	if report.Status != Healthy {
		t.Errorf("status = %q, want %q", report.Status, Healthy)
	}
	if _, ok := report.Checks["corpus"]; ok {
		t.Error("corpus check should be absent when no pinger is configured")
	}
}
