// Package domain defines the persistence models for categories, users,
// reviews, and comments. These types are mapped with GORM and form the core
// data layer of the board-game review API.
package domain

import "time"

// Category is a board-game genre. Categories are reference data: they are
// seeded at deploy time and never mutated through the API.
//
// Fields:
//   - Slug: unique human-readable key, e.g. "social deduction".
//   - Description: short text describing the genre.
type Category struct {
	Slug        string `json:"slug"        gorm:"column:slug;type:varchar(128);primaryKey"`
	Description string `json:"description" gorm:"column:description;type:text;not null"`
}

// TableName returns the database table name for Category.
func (Category) TableName() string { return "categories" }

// User is a registered reviewer. Users are read-only through the API.
//
// Fields:
//   - Username: unique key referenced by reviews.owner and comments.author.
//   - Name: display name.
//   - AvatarURL: profile image location.
type User struct {
	Username  string `json:"username"   gorm:"column:username;type:varchar(64);primaryKey"`
	Name      string `json:"name"       gorm:"column:name;type:varchar(128);not null"`
	AvatarURL string `json:"avatar_url" gorm:"column:avatar_url;type:text"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Review is a board-game review. Reviews are read, filtered, sorted, and
// vote-patched through the API; they are never created or deleted by it.
//
// Fields:
//   - ID: surrogate integer key exposed as review_id.
//   - Owner: author username (FK → users.username).
//   - Category: genre slug (FK → categories.slug).
//   - Votes: running vote tally; may go negative, no floor enforced.
//   - CommentCount: derived per request by aggregation over comments; it is
//     never stored, so the column is excluded from migration.
type Review struct {
	ID           int       `json:"review_id"      gorm:"column:review_id;primaryKey;autoIncrement"`
	Title        string    `json:"title"          gorm:"column:title;type:varchar(255);not null"`
	Designer     string    `json:"designer"       gorm:"column:designer;type:varchar(128)"`
	Owner        string    `json:"owner"          gorm:"column:owner;type:varchar(64);not null;index"`
	ReviewImgURL string    `json:"review_img_url" gorm:"column:review_img_url;type:text"`
	ReviewBody   string    `json:"review_body"    gorm:"column:review_body;type:text;not null"`
	Category     string    `json:"category"       gorm:"column:category;type:varchar(128);not null;index"`
	CreatedAt    time.Time `json:"created_at"     gorm:"column:created_at"`
	Votes        int       `json:"votes"          gorm:"column:votes;not null;default:0"`
	CommentCount int       `json:"comment_count"  gorm:"column:comment_count;->;-:migration"`

	// FK associations; a review cannot reference an unknown user or category.
	OwnerUser   User     `json:"-" gorm:"foreignKey:Owner;references:Username;constraint:OnUpdate:CASCADE"`
	CategoryRef Category `json:"-" gorm:"foreignKey:Category;references:Slug;constraint:OnUpdate:CASCADE"`
}

// TableName returns the database table name for Review.
func (Review) TableName() string { return "reviews" }

// Comment is a remark left on a review. Comments are the only entity with a
// full create/delete lifecycle through the API; they are never updated in
// place and are listed newest first.
//
// Fields:
//   - ID: surrogate integer key exposed as comment_id.
//   - Author: commenter username (FK → users.username).
//   - ReviewID: parent review (FK → reviews.review_id). The store rejects
//     inserts against a missing parent; that rejection is classified upstream.
//   - CreatedAt: server-assigned on insert.
type Comment struct {
	ID        int       `json:"comment_id" gorm:"column:comment_id;primaryKey;autoIncrement"`
	Author    string    `json:"author"     gorm:"column:author;type:varchar(64);not null;index"`
	Body      string    `json:"body"       gorm:"column:body;type:text;not null"`
	ReviewID  int       `json:"review_id"  gorm:"column:review_id;not null;index"`
	Votes     int       `json:"votes"      gorm:"column:votes;not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`

	// Comments are cascade-deleted when their parent review is removed.
	Review     Review `json:"-" gorm:"foreignKey:ReviewID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	AuthorUser User   `json:"-" gorm:"foreignKey:Author;references:Username;constraint:OnUpdate:CASCADE"`
}

// TableName returns the database table name for Comment.
func (Comment) TableName() string { return "comments" }
