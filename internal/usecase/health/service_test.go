package health

import (
	"context"
	"errors"
	"testing"
)

// --- Mocks ---

type mockStorePinger struct {
	err error
}

func (m *mockStorePinger) Ping(_ context.Context) error { return m.err }

type mockGeneratorChecker struct {
	err error
}

func (m *mockGeneratorChecker) HealthCheck(_ context.Context) error { return m.err }

// --- Tests ---

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockStorePinger{}, &mockGeneratorChecker{})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["store"] != CheckOK {
		t.Errorf("expected store %q, got %q", CheckOK, r.Checks["store"])
	}
	if r.Checks["generator"] != CheckOK {
		t.Errorf("expected generator %q, got %q", CheckOK, r.Checks["generator"])
	}
}

func TestCheck_GeneratorDownIsDegraded(t *testing.T) {
	svc := New(&mockStorePinger{}, &mockGeneratorChecker{err: errors.New("api down")})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["generator"] != CheckError {
		t.Errorf("expected generator %q, got %q", CheckError, r.Checks["generator"])
	}
}

func TestCheck_StoreDownDominates(t *testing.T) {
	svc := New(&mockStorePinger{err: errors.New("connection refused")}, &mockGeneratorChecker{})
	r := svc.Check(context.Background())

	if r.Status != Unhealthy {
		t.Errorf("expected %q, got %q", Unhealthy, r.Status)
	}
	if r.Checks["store"] != CheckError {
		t.Errorf("expected store %q, got %q", CheckError, r.Checks["store"])
	}
}

func TestCheck_NilGeneratorSkipsCheck(t *testing.T) {
	svc := New(&mockStorePinger{}, nil)
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if _, ok := r.Checks["generator"]; ok {
		t.Error("generator check present without checker")
	}
}
