package limiter

import (
	"context"
	"sort"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter 对限速器的抽象，rate.Limiter 天然实现了该接口
type RateLimiter interface {
	Wait(ctx context.Context) error
	Limit() rate.Limit
}

// MultiLimiter waits on every layer, slowest first.
type MultiLimiter struct {
	limiters []RateLimiter
}

func NewMultiLimiter(limiters ...RateLimiter) *MultiLimiter {
	kept := make([]RateLimiter, 0, len(limiters))
	for _, l := range limiters {
		if l != nil {
			kept = append(kept, l)
		}
	}
	// 将速率由小到大排序
	sort.Slice(kept, func(i, j int) bool {
		return kept[i].Limit() < kept[j].Limit()
	})
	return &MultiLimiter{limiters: kept}
}

func (l *MultiLimiter) Wait(ctx context.Context) error {
	for _, l := range l.limiters {
		if err := l.Wait(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Limit is the rate of the slowest layer, rate.Inf when there is none.
func (l *MultiLimiter) Limit() rate.Limit {
	if len(l.limiters) == 0 {
		return rate.Inf
	}
	return l.limiters[0].Limit()
}

// Per 把 "duration 内最多 eventCount 次" 换算成速率
func Per(eventCount int, duration time.Duration) rate.Limit {
	if eventCount <= 0 {
		return rate.Inf
	}
	return rate.Every(duration / time.Duration(eventCount))
}

// Config 对应配置文件中的一层限速
type Config struct {
	EventCount int
	EventDur   int // 秒
	Bucket     int // 桶大小
}

// FromConfig builds one limiter per configured layer.
func FromConfig(cfgs []Config) *MultiLimiter {
	limits := make([]RateLimiter, 0, len(cfgs))
	for _, c := range cfgs {
		bucket := c.Bucket
		if bucket <= 0 {
			bucket = 1
		}
		limits = append(limits, rate.NewLimiter(Per(c.EventCount, time.Duration(c.EventDur)*time.Second), bucket))
	}
	return NewMultiLimiter(limits...)
}
