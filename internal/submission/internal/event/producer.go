package event

import (
	"github.com/ecodeclub/challenge/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

type ReviewedEventProducer mqx.Producer[ReviewedEvent]

func NewReviewedEventProducer(q mq.MQ) (ReviewedEventProducer, error) {
	return mqx.NewGeneralProducer[ReviewedEvent](q, reviewedTopic)
}
