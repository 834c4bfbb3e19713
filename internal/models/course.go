package models

type Course struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

type CourseCreate struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}
