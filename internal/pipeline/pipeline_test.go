package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/papercloud/papercloud/internal/model"
)

// recordingStep appends its name to a shared trace when executed.
type recordingStep struct {
	name  string
	trace *[]string
	err   error
}

func (s *recordingStep) Name() string { return s.name }

func (s *recordingStep) Do(_ context.Context, _ *model.CloudReport) error {
	*s.trace = append(*s.trace, s.name)
	return s.err
}

func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("runs steps in order", func(t *testing.T) {
		t.Parallel()

		var trace []string
		p := New()
		p.AddSteps(
			&recordingStep{name: "first", trace: &trace},
			&recordingStep{name: "second", trace: &trace},
			&recordingStep{name: "third", trace: &trace},
		)

		report := model.NewCloudReport("papers")
		if err := p.Execute(context.Background(), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"first", "second", "third"}
		if len(trace) != len(want) {
			t.Fatalf("expected trace %v, got %v", want, trace)
		}
		for i := range want {
			if trace[i] != want[i] {
				t.Errorf("trace[%d] = %q, want %q", i, trace[i], want[i])
			}
		}
		if len(report.PerformedSteps) != 3 {
			t.Errorf("expected 3 performed steps, got %v", report.PerformedSteps)
		}
	})

	t.Run("first error halts the pipeline", func(t *testing.T) {
		t.Parallel()

		var trace []string
		boom := errors.New("boom")
		p := New()
		p.AddSteps(
			&recordingStep{name: "ok", trace: &trace},
			&recordingStep{name: "fails", trace: &trace, err: boom},
			&recordingStep{name: "never", trace: &trace},
		)

		report := model.NewCloudReport("papers")
		err := p.Execute(context.Background(), report)
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}

		if len(trace) != 2 {
			t.Errorf("expected execution to stop after failure, trace %v", trace)
		}
		if !errors.Is(report.Error, boom) {
			t.Errorf("expected error recorded in report, got %v", report.Error)
		}
		if report.ErrorMessage != "boom" {
			t.Errorf("expected error message 'boom', got %q", report.ErrorMessage)
		}
	})

	t.Run("cancelled context stops before next step", func(t *testing.T) {
		t.Parallel()

		var trace []string
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		p := New()
		p.AddSteps(&recordingStep{name: "never", trace: &trace})

		err := p.Execute(ctx, model.NewCloudReport("papers"))
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if len(trace) != 0 {
			t.Errorf("expected no step executed, trace %v", trace)
		}
	})
}

func TestPipelineStepNames(t *testing.T) {
	t.Parallel()

	var trace []string
	p := New()
	p.AddSteps(
		&recordingStep{name: "a", trace: &trace},
		&recordingStep{name: "b", trace: &trace},
	)

	if p.StepCount() != 2 {
		t.Errorf("expected 2 steps, got %d", p.StepCount())
	}

	names := p.StepNames()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("expected names [a b], got %v", names)
	}
}
