package game

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gonewx/cozyroom/pkg/utils"
)

// CountdownInterval 倒计时节拍间隔
const CountdownInterval = time.Second

// Countdown 专注倒计时
//
// 剩余秒数每个节拍减 1，到 0 后保持为 0，不会自动重新开始，也没有暂停接口。
// 节拍运行在独立协程上，与帧循环交错执行，因此计数器使用原子操作。
type Countdown struct {
	remaining atomic.Int64
	interval  time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewCountdown 创建倒计时
//
// 参数：
//   - initialSeconds: 初始秒数，不能为负
//
// 返回：
//   - *Countdown: 尚未启动的倒计时
//   - error: initialSeconds 为负时返回错误
func NewCountdown(initialSeconds int) (*Countdown, error) {
	if initialSeconds < 0 {
		return nil, fmt.Errorf("countdown initial seconds must not be negative, got %d", initialSeconds)
	}
	c := &Countdown{interval: CountdownInterval}
	c.remaining.Store(int64(initialSeconds))
	return c, nil
}

// Tick 执行一次节拍：remaining = max(0, remaining-1)
// 返回节拍后的剩余秒数
func (c *Countdown) Tick() int {
	for {
		cur := c.remaining.Load()
		next := cur - 1
		if next < 0 {
			next = 0
		}
		if c.remaining.CompareAndSwap(cur, next) {
			return int(next)
		}
	}
}

// Remaining 返回剩余秒数
func (c *Countdown) Remaining() int {
	return int(c.remaining.Load())
}

// Finished 是否已经走到 0
func (c *Countdown) Finished() bool {
	return c.remaining.Load() == 0
}

// String 返回 "MM:SS" 格式的剩余时间
func (c *Countdown) String() string {
	return utils.FormatTime(c.Remaining())
}

// Start 启动每秒一次的节拍协程
//
// 重复调用无效果。ctx 被取消或调用 Stop 时协程退出。
func (c *Countdown) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})

	ticker := time.NewTicker(c.interval)
	go func(done chan struct{}) {
		defer close(done)
		defer ticker.Stop()
		c.Run(ctx, ticker.C)
	}(c.done)

	log.Printf("[Countdown] Started at %s", c.String())
}

// Run 在调用方协程中消费节拍，直到 ctx 被取消或节拍通道关闭
func (c *Countdown) Run(ctx context.Context, ticks <-chan time.Time) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ticks:
			if !ok {
				return
			}
			// 到 0 后继续消费节拍，计数保持为 0
			c.Tick()
		}
	}
}

// Stop 取消节拍协程并等待其退出，可重复调用
func (c *Countdown) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	log.Printf("[Countdown] Stopped at %s", c.String())
}

// Running 节拍协程是否在运行
func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancel != nil
}
