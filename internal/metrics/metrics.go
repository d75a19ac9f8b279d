package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rocketscienceinc/battleship-backend/internal/entity"
)

type Metrics struct {
	GamesFinished  *prometheus.CounterVec
	ActionsApplied *prometheus.CounterVec
	GameShots      prometheus.Histogram
}

// NewMetrics - builds the collectors and registers them on registerer.
func NewMetrics(namespace string, registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		GamesFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_finished_total",
			Help:      "Number of simulated games by outcome and winner",
		}, []string{"outcome", "winner"}),
		ActionsApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_applied_total",
			Help:      "Number of applied actions by type",
		}, []string{"action_type"}),
		GameShots: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "game_shots",
			Help:      "Shots fired by both players in a finished game",
			Buckets:   prometheus.LinearBuckets(20, 20, 10),
		}),
	}

	registerer.MustRegister(
		m.GamesFinished,
		m.ActionsApplied,
		m.GameShots,
	)

	return m
}

func (that *Metrics) ObserveAction(action entity.Action) {
	that.ActionsApplied.WithLabelValues(string(action.Type())).Inc()
}

func (that *Metrics) ObserveResult(result *entity.MatchResult) {
	winner := "none"
	if result.Winner != nil {
		winner = strconv.Itoa(*result.Winner)
	}

	that.GamesFinished.WithLabelValues(string(result.Outcome), winner).Inc()
	that.GameShots.Observe(float64(result.Shots[0] + result.Shots[1]))
}
