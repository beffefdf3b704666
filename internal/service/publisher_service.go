package service

import (
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"business-chat-be/internal/dto"
)

type IPublisherService interface {
	PublishDocumentIngested(event *dto.DocumentIngestedEvent)
	PublishChatAnswered(event *dto.ChatAnsweredEvent)
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (ps *publisherService) PublishDocumentIngested(event *dto.DocumentIngestedEvent) {
	ps.publish("DOCUMENT_INGESTED", event)
}

func (ps *publisherService) PublishChatAnswered(event *dto.ChatAnsweredEvent) {
	ps.publish("CHAT_ANSWERED", event)
}

// publish is fire-and-forget: the audit trail must never fail a
// request.
func (ps *publisherService) publish(eventType string, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), body)
	msg.Metadata.Set("event_type", eventType)
	_ = ps.pubSub.Publish(ps.topicName, msg)
}
