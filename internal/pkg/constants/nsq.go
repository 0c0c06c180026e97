package constants

// NSQ topics published by the dispatch coordinator
const (
	TopicRequestBroadcast = "dispatch.request.broadcast"
	TopicRequestAccepted  = "dispatch.request.accepted"
	TopicRequestCompleted = "dispatch.request.completed"
	TopicRequestCancelled = "dispatch.request.cancelled"
	TopicEmergencyNotify  = "dispatch.emergency.notify"
)

// NSQ topics consumed by the dispatch coordinator
const (
	TopicMechanicPool = "mechanic.pool.update"
)

// NSQ channel used by the coordinator's own consumers
const (
	ChannelDispatch = "dispatch-service"
)
