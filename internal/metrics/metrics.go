// Package metrics holds the Prometheus collectors shared by the API and the services.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fitquest"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_requests_total",
			Help:      "Requests rejected by the per-client rate limiter",
		},
	)
	ChallengeCompletions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "challenge_completions_total",
			Help:      "Challenge entries moved to completed",
		},
		[]string{"kind", "path"},
	)
	AchievementsAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "achievements_awarded_total",
			Help:      "Achievements granted to users",
		},
		[]string{"name"},
	)
	AwardFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "achievement_award_failures_total",
			Help:      "Achievement grants that failed and were skipped",
		},
	)
	ContentGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "content_generated_total",
			Help:      "Personalized content pieces by kind and source (llm or fallback)",
		},
		[]string{"kind", "source"},
	)
)
