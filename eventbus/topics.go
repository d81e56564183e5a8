package eventbus

// Base topics, kept in one place so workers and publishers agree on names.
var (
	TopicBlogEvents = NewTopic("blogger.blog.events")
)

var AllTopics = []Topic{
	TopicBlogEvents,
}
