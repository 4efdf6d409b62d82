// Package event 领域事件发布
//
// 书评/图书的变更以事件形式广播到RabbitMQ，供下游（通知、推荐等）消费。
// 发布是尽力而为的：在事务提交之后异步执行，失败只记录日志和指标，
// 绝不影响HTTP请求结果。熔断器保护Broker故障时不拖慢每次请求。
package event

import (
	"log"
	"time"

	"github.com/xiebiao/bookreview/internal/infrastructure/config"
	"github.com/xiebiao/bookreview/pkg/circuitbreaker"
	"github.com/xiebiao/bookreview/pkg/metrics"
	"github.com/xiebiao/bookreview/pkg/mq"
)

// 事件routing key（"实体.动作"命名，消费者可用review.*订阅）
const (
	ReviewCreated = "review.created"
	ReviewUpdated = "review.updated"
	ReviewDeleted = "review.deleted"
	BookCreated   = "book.created"
)

// ReviewEvent 书评事件载荷
type ReviewEvent struct {
	ReviewID   uint      `json:"review_id"`
	BookID     uint      `json:"book_id"`
	UserID     uint      `json:"user_id"`
	Rating     int       `json:"rating,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BookEvent 图书事件载荷
type BookEvent struct {
	BookID     uint      `json:"book_id"`
	Title      string    `json:"title"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher 领域事件发布者
// 未启用时（config events.enabled=false）为nil安全的空实现
type Publisher struct {
	mq       *mq.Publisher
	breaker  *circuitbreaker.CircuitBreaker
	exchange string
}

// NewPublisher 创建事件发布者
// cfg.Events.Enabled=false时返回(nil, nil)，调用方无需区分
func NewPublisher(cfg *config.Config) (*Publisher, error) {
	if !cfg.Events.Enabled {
		log.Println("事件发布未启用")
		return nil, nil
	}

	pub, err := mq.NewPublisher(cfg.Events.URL, cfg.Events.Exchange, cfg.Events.ExchangeType)
	if err != nil {
		return nil, err
	}

	breaker := circuitbreaker.NewCircuitBreaker("event-publisher", circuitbreaker.Config{
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts circuitbreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	breaker.SetStateChangeCallback(func(name string, from, to circuitbreaker.State) {
		log.Printf("熔断器[%s]状态变化: %s -> %s", name, from, to)
		metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
	})

	return &Publisher{
		mq:       pub,
		breaker:  breaker,
		exchange: cfg.Events.Exchange,
	}, nil
}

// Publish 异步发布事件（尽力而为）
// 在新goroutine中执行，调用方（use case）在事务提交后调用，不等待结果
func (p *Publisher) Publish(routingKey string, payload interface{}) {
	if p == nil {
		return
	}

	go func() {
		err := p.breaker.Execute(func() error {
			return p.mq.Publish(routingKey, payload)
		})
		if err != nil {
			metrics.CircuitBreakerRequests.WithLabelValues("event-publisher", "failure").Inc()
			log.Printf("[WARN] 发布事件失败: key=%s, err=%v", routingKey, err)
			return
		}
		metrics.CircuitBreakerRequests.WithLabelValues("event-publisher", "success").Inc()
		metrics.MessagesPublishedTotal.WithLabelValues(p.exchange, routingKey).Inc()
	}()
}

// Close 关闭底层连接
func (p *Publisher) Close() error {
	if p == nil || p.mq == nil {
		return nil
	}
	return p.mq.Close()
}
