package types

// InstantAnswer is the parsed payload of an instant-answer search response.
// Only Abstract and Answer are surfaced to callers; RelatedTopics is decoded
// for wire compatibility but carries no product meaning today.
type InstantAnswer struct {
	Abstract      string         `json:"Abstract"`
	Answer        string         `json:"Answer"`
	RelatedTopics []RelatedTopic `json:"RelatedTopics"`
}

// RelatedTopic is a single related-topic snippet from the upstream endpoint.
type RelatedTopic struct {
	Text string `json:"Text"`
}
