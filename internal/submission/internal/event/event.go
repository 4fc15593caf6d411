package event

const reviewedTopic = "submission_reviewed_events"

// ReviewedEvent 审核出结果之后发出去，通知等下游自行消费
type ReviewedEvent struct {
	Sid      int64  `json:"sid"`
	Uid      int64  `json:"uid"`
	Pid      int64  `json:"pid"`
	Status   uint8  `json:"status"`
	Feedback string `json:"feedback"`
}
