package stepctrl

import "testing"

func TestDefaultTolerances(t *testing.T) {
	c := Default()
	if c.Atol != 1e-16 || c.Rtol != 1e-16 {
		t.Errorf("expected atol=rtol=1e-16, got atol=%g rtol=%g", c.Atol, c.Rtol)
	}
}

func TestClipFacClampsToRange(t *testing.T) {
	c := Default()
	if got := c.ClipFac(10); got != 5 {
		t.Errorf("expected first-try growth clamped to 5, got %g", got)
	}
	if got := c.ClipFac(0.01); got != 0.1 {
		t.Errorf("expected first-try shrink clamped to 0.1, got %g", got)
	}
}

func TestClipFacRetryNeverGrows(t *testing.T) {
	c := Default()
	if got := c.ClipFacRetry(10); got != 1 {
		t.Errorf("expected retry factor clamped to 1, got %g", got)
	}
}

func TestClipStepEnforcesMinimumProgress(t *testing.T) {
	c := Default()
	h := c.ClipStep(1.0, 0)
	if h == 0 {
		t.Error("expected ClipStep to floor a zero step to a positive minimum near t=1")
	}
	if got := c.ClipStep(1.0, -1e-20); got >= 0 {
		t.Error("expected ClipStep to preserve the sign of a tiny negative step")
	}
}

func TestSc(t *testing.T) {
	c := Control{Atol: 1, Rtol: 2}
	if got := c.Sc(3, 1); got != 7 {
		t.Errorf("expected atol + rtol*max(|y1|,|y2|) = 1+2*3 = 7, got %g", got)
	}
}
