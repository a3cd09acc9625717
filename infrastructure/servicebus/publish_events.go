package servicebus

import (
	"context"
	"encoding/json"

	"pagecaster/domain/model"
	"pagecaster/domain/repository"
	"pagecaster/infrastructure/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
)

// PublishEventServiceBus emits publish events to a Service Bus queue.
type PublishEventServiceBus struct {
	AzservicebusClient *azservicebus.Client
	Queue              string
}

func NewPublishEventServiceBus(azServiceBusClient *azservicebus.Client, queue string) repository.IPublishEvents {
	return &PublishEventServiceBus{AzservicebusClient: azServiceBusClient, Queue: queue}
}

func (s *PublishEventServiceBus) Emit(ctx context.Context, event model.PublishEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	sender, err := s.AzservicebusClient.NewSender(s.Queue, nil)
	if err != nil {
		logger.GetLogger().
			WithField("error", err).
			Error("Error while making new sender service bus.")
		return err
	}
	defer func(sender *azservicebus.Sender, ctx context.Context) {
		if err := sender.Close(ctx); err != nil {
			logger.GetLogger().
				WithField("error", err).
				Error("Error while closing sender.")
		}
	}(sender, ctx)

	if err := sender.SendMessage(ctx, &azservicebus.Message{Body: payload}, nil); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while sending message.")
		return err
	}
	return nil
}
