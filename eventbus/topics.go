package eventbus

// TopicContentEvents carries blog, project and message change events.
// The name can be replaced with events.topic in config.yaml.
var TopicContentEvents = NewTopic("portfolio-blog.content.events")
