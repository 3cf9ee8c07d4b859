package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "telephysio"

var (
	AssistantAnswers = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assistant_answers_total",
		Help:      "Assistant replies by the rule that produced them.",
	}, []string{"outcome"})

	ChatMessages = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_messages_total",
		Help:      "User messages received over the chat socket.",
	})

	ChatClients = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "chat_clients",
		Help:      "Currently connected chat clients.",
	})

	ExerciseReps = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exercise_reps_total",
		Help:      "Repetitions counted from posted landmark frames.",
	}, []string{"exercise"})

	MailFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mail_failures_total",
		Help:      "Outgoing mail that could not be delivered.",
	}, []string{"kind"})
)

// Handler exposes the default registry in the Prometheus text format.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
