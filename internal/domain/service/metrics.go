package service

import "time"

// MetricsRecorder receives application-level measurements
type MetricsRecorder interface {
	RecordHTTPRequest(method, route string, status int, elapsed time.Duration)
	RecordReviewMutation(kind string)
	RecordGeocodeCache(operation string, hit bool)
	RecordUpload(size int64)
	RecordReviewEvent(eventType, outcome string)
}
