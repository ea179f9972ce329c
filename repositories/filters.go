package repositories

import "go.mongodb.org/mongo-driver/bson"

// BlogPostFilter narrows blog listings. Zero values match everything.
type BlogPostFilter struct {
	Category string
	Tag      string
}

func (f BlogPostFilter) bson() bson.M {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Tag != "" {
		filter["tags"] = f.Tag
	}
	return filter
}

// ProjectFilter narrows project listings. A nil Featured matches both.
type ProjectFilter struct {
	Featured   *bool
	Technology string
}

func (f ProjectFilter) bson() bson.M {
	filter := bson.M{}
	if f.Featured != nil {
		filter["featured"] = *f.Featured
	}
	if f.Technology != "" {
		filter["technologies"] = f.Technology
	}
	return filter
}

// MessageFilter narrows message listings. A nil Read matches both.
type MessageFilter struct {
	Read *bool
}

func (f MessageFilter) bson() bson.M {
	filter := bson.M{}
	if f.Read != nil {
		filter["read"] = *f.Read
	}
	return filter
}
