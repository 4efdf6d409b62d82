// Package metrics 提供基于Prometheus的指标收集
//
// 指标分三类：
// - Counter（只增不减）：请求总数、书评创建总数
// - Gauge（瞬时值）：正在处理的请求数
// - Histogram（分布）：请求耗时，自动计算P50/P90/P99
//
// 所有指标在包加载时注册完成，任何导入方（包括单元测试）可直接使用，
// 没有初始化顺序要求。暴露方式：
//
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
// 业务代码中：
//
//	metrics.ReviewsCreatedTotal.Inc()
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP请求相关指标
var (
	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（路由模板）、status（200/400/...）
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP请求耗时（秒）",
			// 单次请求即一次数据库往返，桶设置偏小
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)
)

// 书评业务指标
var (
	// BooksCreatedTotal 图书录入总数（Counter）
	BooksCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "books_created_total",
			Help: "图书录入总数",
		},
	)

	// ReviewsCreatedTotal 书评创建总数（Counter）
	ReviewsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reviews_created_total",
			Help: "书评创建总数",
		},
	)

	// ReviewsDeletedTotal 书评删除总数（Counter）
	ReviewsDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reviews_deleted_total",
			Help: "书评删除总数",
		},
	)

	// ReviewConflictsTotal 重复书评被拒绝的次数（Counter）
	// 关注点：唯一索引兜住的并发重复提交也计入此处
	ReviewConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "review_conflicts_total",
			Help: "重复书评被拒绝的次数",
		},
	)

	// RatingRecomputeDuration 评分统计重算耗时（Histogram）
	RatingRecomputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rating_recompute_duration_seconds",
			Help:    "评分统计重算耗时（秒）",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)
)

// 熔断器指标
var (
	// CircuitBreakerState 熔断器状态（Gauge）
	// 0=CLOSED, 1=OPEN, 2=HALF_OPEN
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
		},
		[]string{"name"},
	)

	// CircuitBreakerRequests 熔断器请求总数（Counter）
	// 标签：name（熔断器名称）、result（success/failure/rejected）
	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "熔断器请求总数",
		},
		[]string{"name", "result"},
	)
)

// 消息队列指标
var (
	// MessagesPublishedTotal 消息发布总数（Counter）
	// 标签：exchange（交换机）、routing_key（路由键）
	MessagesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_published_total",
			Help: "消息发布总数",
		},
		[]string{"exchange", "routing_key"},
	)
)
