package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentKind selects which content collection an item belongs to.
// Blog posts, infographics and articles share an identical shape and are
// stored in separate collections.
type ContentKind string

const (
	KindBlog        ContentKind = "blog"
	KindInfographic ContentKind = "infographic"
	KindArticle     ContentKind = "article"
)

// Kinds lists all content kinds in a stable order.
var Kinds = []ContentKind{KindBlog, KindInfographic, KindArticle}

// Collection returns the MongoDB collection name for the kind.
func (k ContentKind) Collection() string {
	switch k {
	case KindInfographic:
		return "infographics"
	case KindArticle:
		return "articles"
	default:
		return "blogposts"
	}
}

// Label returns the display name used in responses and error messages.
func (k ContentKind) Label() string {
	switch k {
	case KindInfographic:
		return "Infographic"
	case KindArticle:
		return "Article"
	default:
		return "Blog post"
	}
}

// ContentItem is a blog post, infographic or article document.
type ContentItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Category  string             `bson:"category" json:"category"`
	Content   string             `bson:"content" json:"content"`
	ImageURL  string             `bson:"imageUrl" json:"imageUrl"`
	Author    string             `bson:"author" json:"author"`
	ImagePath string             `bson:"imagePath" json:"imagePath"`
	Date      time.Time          `bson:"date" json:"date"`
}

// ContentUpdate carries the full-replace payload for an update.
// Fields left empty by the caller overwrite the stored values with empty
// strings; update is replace, not merge.
type ContentUpdate struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	ImagePath string `json:"imagePath"`
}
