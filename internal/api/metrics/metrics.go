// Package metrics defines and registers all custom Prometheus metrics for the
// bookstore API. It is the single source of truth for metric names, labels,
// and help strings. Registration with the default registry happens at import
// time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bookstore"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful account registrations.
// Label:
//   - role: the role assigned at creation ("ADMIN" or "USER")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// BooksCreatedTotal counts books added to the catalog.
// Label:
//   - genre: the genre of the created book
var BooksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "books_created_total",
		Help:      "Total number of books added to the catalog, by genre.",
	},
	[]string{"genre"},
)

// BookCacheTotal counts read-through cache lookups on book reads.
// Label:
//   - result: "hit" or "miss"
var BookCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "book_cache_total",
		Help:      "Total number of book cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
