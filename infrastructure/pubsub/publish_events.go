package pubsub

import (
	"context"
	"encoding/json"
	"log"

	"pagecaster/domain/model"
	"pagecaster/domain/repository"
	"pagecaster/infrastructure/logger"

	"cloud.google.com/go/pubsub"
)

// PublishEventPubSub emits publish events to a Pub/Sub topic. Emission is
// best effort; the caller logs and continues when it fails.
type PublishEventPubSub struct {
	PubSubClient *pubsub.Client
	TopicName    string
}

func NewPublishEventPubSub(pubSubClient *pubsub.Client, topicName string) repository.IPublishEvents {
	return &PublishEventPubSub{PubSubClient: pubSubClient, TopicName: topicName}
}

func (p *PublishEventPubSub) Emit(ctx context.Context, event model.PublishEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	topic := p.PubSubClient.Topic(p.TopicName)

	exists, err := topic.Exists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		log.Printf("Topic %v doesn't exist - creating it", p.TopicName)
		if _, err := p.PubSubClient.CreateTopic(ctx, p.TopicName); err != nil {
			return err
		}
	}

	serverID, err := topic.Publish(ctx, &pubsub.Message{Data: payload}).Get(ctx)
	if err != nil {
		return err
	}
	logger.GetLogger().WithField("server ID", serverID).Info("Publish event emitted")
	return nil
}
