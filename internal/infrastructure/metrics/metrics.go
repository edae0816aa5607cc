package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ExchangeMetrics содержит все метрики обменника
type ExchangeMetrics struct {
	// Офферы
	OffersCreatedTotal       *prometheus.CounterVec
	OffersCreatedAmountTotal *prometheus.CounterVec
	OfferTransitionsTotal    *prometheus.CounterVec
	OffersCompletedTotal     *prometheus.CounterVec
	OffersCancelledTotal     *prometheus.CounterVec
	EscrowReleasedAmount     *prometheus.CounterVec
	OfferLifetime            *prometheus.HistogramVec

	// Диспуты
	DisputesOpenedTotal   prometheus.Counter
	DisputesResolvedTotal *prometheus.CounterVec
	VotesCastTotal        *prometheus.CounterVec
	EvidenceItemsTotal    prometheus.Counter

	// Награды
	RewardsAccruedTotal *prometheus.CounterVec
	RewardsClaimedTotal prometheus.Counter

	// Инструкции
	InstructionErrorsTotal *prometheus.CounterVec
	InstructionDuration    *prometheus.HistogramVec
}

// NewExchangeMetrics регистрирует метрики в reg
func NewExchangeMetrics(reg prometheus.Registerer) *ExchangeMetrics {
	factory := promauto.With(reg)
	return &ExchangeMetrics{
		OffersCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_offers_created_total",
				Help: "Количество созданных офферов",
			},
			[]string{"currency"},
		),
		OffersCreatedAmountTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_offers_created_amount_total",
				Help: "Сумма базового актива в созданных офферах",
			},
			[]string{"currency"},
		),
		OfferTransitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_offer_transitions_total",
				Help: "Переходы офферов по статусам",
			},
			[]string{"status"},
		),
		OffersCompletedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_offers_completed_total",
				Help: "Успешно завершенные офферы",
			},
			[]string{"currency", "via"},
		),
		OffersCancelledTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_offers_cancelled_total",
				Help: "Отмененные офферы",
			},
			[]string{"currency", "by"},
		),
		EscrowReleasedAmount: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_escrow_released_amount_total",
				Help: "Сумма, выплаченная из эскроу",
			},
			[]string{"reason"},
		),
		OfferLifetime: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "exchange_offer_lifetime_seconds",
				Help:    "Время от создания оффера до финального статуса",
				Buckets: []float64{60, 300, 900, 1800, 3600, 4 * 3600, 24 * 3600, 7 * 24 * 3600},
			},
			[]string{"final_status"},
		),
		DisputesOpenedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "exchange_disputes_opened_total",
				Help: "Количество открытых диспутов",
			},
		),
		DisputesResolvedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_disputes_resolved_total",
				Help: "Закрытые диспуты по вердикту",
			},
			[]string{"verdict", "forced"},
		),
		VotesCastTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_votes_cast_total",
				Help: "Голоса присяжных",
			},
			[]string{"choice"},
		),
		EvidenceItemsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "exchange_evidence_items_total",
				Help: "Загруженные доказательства",
			},
		),
		RewardsAccruedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_rewards_accrued_total",
				Help: "Начисленные награды",
			},
			[]string{"reason"},
		),
		RewardsClaimedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "exchange_rewards_claimed_total",
				Help: "Выведенные награды",
			},
		),
		InstructionErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchange_instruction_errors_total",
				Help: "Ошибки инструкций по коду",
			},
			[]string{"instruction", "error"},
		),
		InstructionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "exchange_instruction_duration_seconds",
				Help:    "Длительность выполнения инструкций",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"instruction"},
		),
	}
}

func (m *ExchangeMetrics) RecordOfferCreated(currency string, amount uint64) {
	m.OffersCreatedTotal.WithLabelValues(currency).Inc()
	m.OffersCreatedAmountTotal.WithLabelValues(currency).Add(float64(amount))
	m.OfferTransitionsTotal.WithLabelValues("CREATED").Inc()
}

func (m *ExchangeMetrics) RecordTransition(status string) {
	m.OfferTransitionsTotal.WithLabelValues(status).Inc()
}

// RecordOfferCompleted: via = release | verdict
func (m *ExchangeMetrics) RecordOfferCompleted(currency, via string, released uint64, lifetimeSeconds float64) {
	m.OffersCompletedTotal.WithLabelValues(currency, via).Inc()
	m.EscrowReleasedAmount.WithLabelValues(via).Add(float64(released))
	m.OfferTransitionsTotal.WithLabelValues("COMPLETED").Inc()
	m.OfferLifetime.WithLabelValues("COMPLETED").Observe(lifetimeSeconds)
}

// RecordOfferCancelled: by = seller | buyer | verdict
func (m *ExchangeMetrics) RecordOfferCancelled(currency, by string, refunded uint64, lifetimeSeconds float64) {
	m.OffersCancelledTotal.WithLabelValues(currency, by).Inc()
	m.EscrowReleasedAmount.WithLabelValues("refund").Add(float64(refunded))
	m.OfferTransitionsTotal.WithLabelValues("CANCELLED").Inc()
	m.OfferLifetime.WithLabelValues("CANCELLED").Observe(lifetimeSeconds)
}

func (m *ExchangeMetrics) RecordDisputeOpened() {
	m.DisputesOpenedTotal.Inc()
	m.OfferTransitionsTotal.WithLabelValues("DISPUTE_OPENED").Inc()
}

func (m *ExchangeMetrics) RecordEvidence() {
	m.EvidenceItemsTotal.Inc()
}

func (m *ExchangeMetrics) RecordVote(choice string) {
	m.VotesCastTotal.WithLabelValues(choice).Inc()
}

func (m *ExchangeMetrics) RecordDisputeResolved(verdict string, forced bool) {
	f := "false"
	if forced {
		f = "true"
	}
	m.DisputesResolvedTotal.WithLabelValues(verdict, f).Inc()
}

func (m *ExchangeMetrics) RecordRewardsAccrued(reason string, amount uint64) {
	m.RewardsAccruedTotal.WithLabelValues(reason).Add(float64(amount))
}

func (m *ExchangeMetrics) RecordRewardsClaimed(amount uint64) {
	m.RewardsClaimedTotal.Add(float64(amount))
}

func (m *ExchangeMetrics) RecordError(instruction, errorName string) {
	m.InstructionErrorsTotal.WithLabelValues(instruction, errorName).Inc()
}

func (m *ExchangeMetrics) ObserveInstruction(instruction string, seconds float64) {
	m.InstructionDuration.WithLabelValues(instruction).Observe(seconds)
}
