package clock

import (
	"testing"
	"time"
)

var t0 = time.Unix(1_700_000_000, 0)

func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

func TestNormalRateFiresEveryPeriod(t *testing.T) {
	c := New(NormalPeriod, FastPeriod)
	if c.Due(t0) {
		t.Fatalf("unstarted clock fired")
	}
	c.Start(t0)

	fires := 0
	for ms := 0; ms <= 1000; ms += 10 {
		if c.Due(at(ms)) {
			fires++
		}
	}
	if fires != 5 {
		t.Fatalf("fires=%d want=5 in one second at 200ms", fires)
	}
}

func TestFastRateFiresEveryPoll(t *testing.T) {
	c := New(NormalPeriod, FastPeriod)
	c.Start(t0)
	if !c.SetRate(Fast, at(5)) {
		t.Fatalf("SetRate(Fast) reported no change")
	}
	for ms := 5; ms < 50; ms++ {
		if !c.Due(at(ms)) {
			t.Fatalf("fast clock did not fire at %dms", ms)
		}
	}
}

func TestSetRateIsIdempotent(t *testing.T) {
	c := New(100*time.Millisecond, 50*time.Millisecond)
	c.Start(t0)
	c.SetRate(Fast, at(0))
	// A repeated key-down must not push the pending fire back.
	if c.SetRate(Fast, at(40)) {
		t.Fatalf("repeated SetRate(Fast) reported a change")
	}
	if !c.Due(at(50)) {
		t.Fatalf("fast trigger was re-armed by a repeated SetRate")
	}
}

func TestSwitchingRateRearms(t *testing.T) {
	c := New(NormalPeriod, FastPeriod)
	c.Start(t0)
	c.SetRate(Fast, at(10))
	if !c.Due(at(10)) {
		t.Fatalf("fast did not fire")
	}
	c.SetRate(Normal, at(20))
	if c.Rate() != Normal || c.Period() != NormalPeriod {
		t.Fatalf("rate=%v period=%v", c.Rate(), c.Period())
	}
	if c.Due(at(219)) {
		t.Fatalf("normal fired before a full period after switching")
	}
	if !c.Due(at(220)) {
		t.Fatalf("normal did not fire a period after switching")
	}
}

func TestMissedIntervalsAreDropped(t *testing.T) {
	c := New(NormalPeriod, FastPeriod)
	c.Start(t0)
	if !c.Due(at(1000)) {
		t.Fatalf("late poll did not fire")
	}
	if c.Due(at(1001)) {
		t.Fatalf("missed intervals were replayed")
	}
}

func TestStopIsPermanent(t *testing.T) {
	c := New(NormalPeriod, FastPeriod)
	c.Start(t0)
	c.SetRate(Fast, at(0))
	c.Stop()

	if c.Due(at(10_000)) {
		t.Fatalf("stopped clock fired")
	}
	if c.SetRate(Normal, at(10_000)) {
		t.Fatalf("stopped clock accepted SetRate")
	}
	c.Start(at(10_000))
	if c.Armed() || c.Due(at(20_000)) {
		t.Fatalf("stopped clock restarted")
	}
	if !c.Stopped() {
		t.Fatalf("Stopped()=false")
	}
}

func TestNegativePeriodsClamp(t *testing.T) {
	c := New(-time.Second, -time.Second)
	c.Start(t0)
	if !c.Due(t0) {
		t.Fatalf("zero period clock did not fire")
	}
}
