package game

import (
	"context"
	"testing"
	"time"
)

func TestNewCountdownRejectsNegative(t *testing.T) {
	if _, err := NewCountdown(-1); err == nil {
		t.Error("NewCountdown(-1) should return an error")
	}
}

// TestCountdownReachesZeroAfterExactTicks 1500 秒恰好 1500 个节拍后到 0 并保持
func TestCountdownReachesZeroAfterExactTicks(t *testing.T) {
	c, err := NewCountdown(1500)
	if err != nil {
		t.Fatalf("NewCountdown(1500) error: %v", err)
	}

	prev := c.Remaining()
	for i := 1; i <= 1500; i++ {
		got := c.Tick()
		if got > prev {
			t.Fatalf("tick %d: remaining increased from %d to %d", i, prev, got)
		}
		if got < 0 {
			t.Fatalf("tick %d: remaining went negative (%d)", i, got)
		}
		if i < 1500 && got == 0 {
			t.Fatalf("reached 0 early at tick %d", i)
		}
		prev = got
	}

	if !c.Finished() {
		t.Fatalf("after 1500 ticks remaining = %d, want 0", c.Remaining())
	}

	// 继续节拍保持为 0
	for i := 0; i < 10; i++ {
		if got := c.Tick(); got != 0 {
			t.Fatalf("tick after finish: remaining = %d, want 0", got)
		}
	}
}

func TestCountdownString(t *testing.T) {
	c, _ := NewCountdown(65)
	if got := c.String(); got != "01:05" {
		t.Errorf("String() = %q, want 01:05", got)
	}
}

// TestCountdownRunConsumesTicks 使用注入的节拍通道驱动倒计时
func TestCountdownRunConsumesTicks(t *testing.T) {
	c, _ := NewCountdown(3)
	ticks := make(chan time.Time)
	done := make(chan struct{})

	go func() {
		defer close(done)
		c.Run(context.Background(), ticks)
	}()

	for i := 0; i < 5; i++ {
		ticks <- time.Now()
	}
	close(ticks)
	<-done

	if c.Remaining() != 0 {
		t.Errorf("remaining = %d after 5 ticks from 3, want 0", c.Remaining())
	}
}

// TestCountdownRunStopsOnCancel 取消 context 后 Run 返回
func TestCountdownRunStopsOnCancel(t *testing.T) {
	c, _ := NewCountdown(10)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)
		c.Run(ctx, make(chan time.Time))
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after context cancel")
	}
	if c.Remaining() != 10 {
		t.Errorf("remaining = %d, want 10 (no ticks delivered)", c.Remaining())
	}
}

// TestCountdownStartStop Start 幂等，Stop 等待协程退出且可重复调用
func TestCountdownStartStop(t *testing.T) {
	c, _ := NewCountdown(1500)
	c.interval = 5 * time.Millisecond

	c.Start(context.Background())
	c.Start(context.Background())
	if !c.Running() {
		t.Fatal("Running() should be true after Start")
	}

	deadline := time.Now().Add(2 * time.Second)
	for c.Remaining() == 1500 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if c.Remaining() == 1500 {
		t.Fatal("countdown did not tick after Start")
	}

	c.Stop()
	c.Stop()
	if c.Running() {
		t.Error("Running() should be false after Stop")
	}

	frozen := c.Remaining()
	time.Sleep(20 * time.Millisecond)
	if c.Remaining() != frozen {
		t.Errorf("countdown kept ticking after Stop: %d -> %d", frozen, c.Remaining())
	}
}
