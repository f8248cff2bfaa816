package messaging_fx

import (
	"go.uber.org/fx"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/config"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/repository"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/infrastructure/messaging"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/logger"
)

var Module = fx.Provide(provideContactNotifier)

func provideContactNotifier(lc fx.Lifecycle, cfg *config.Config, lggr logger.Logger) repository.ContactNotifierRepository {
	if cfg.Kafka.Broker == "" {
		return messaging.NewNopContactNotifier()
	}

	notifier := messaging.NewKafkaContactNotifier(cfg.Kafka.Broker, cfg.Kafka.ContactTopic)
	lc.Append(fx.StopHook(notifier.Close))
	lggr.Named("messaging").Infow("publishing contact messages to Kafka", "broker", cfg.Kafka.Broker, "topic", cfg.Kafka.ContactTopic)
	return notifier
}
