package models

import "fmt"

// Section type tags. Exactly one payload field is meaningful per tag:
// text/image carry inline Content, 3d carries GLBID, quiz carries QuizID.
const (
	SectionText  = "text"
	SectionImage = "image"
	SectionModel = "3d"
	SectionQuiz  = "quiz"
)

type ChapterSection struct {
	Type    string `bson:"type" json:"type"`
	Content string `bson:"content,omitempty" json:"content,omitempty"`
	GLBID   string `bson:"glb_id,omitempty" json:"glb_id,omitempty"`
	QuizID  string `bson:"quiz_id,omitempty" json:"quiz_id,omitempty"`
}

// Validate checks that the type tag is known and its payload field is set.
func (s *ChapterSection) Validate() error {
	switch s.Type {
	case SectionText, SectionImage:
		if s.Content == "" {
			return fmt.Errorf("section type %q requires content", s.Type)
		}
	case SectionModel:
		if s.GLBID == "" {
			return fmt.Errorf("section type %q requires glb_id", s.Type)
		}
	case SectionQuiz:
		if s.QuizID == "" {
			return fmt.Errorf("section type %q requires quiz_id", s.Type)
		}
	default:
		return fmt.Errorf("unknown section type %q", s.Type)
	}
	return nil
}

type Chapter struct {
	ID       string           `bson:"_id,omitempty" json:"id"`
	CourseID string           `bson:"course_id" json:"course_id"`
	Title    string           `bson:"title" json:"title"`
	Order    int              `bson:"order" json:"order"`
	Sections []ChapterSection `bson:"sections" json:"sections"`
}

type ChapterCreate struct {
	CourseID string           `json:"course_id" binding:"required"`
	Title    string           `json:"title" binding:"required"`
	Order    int              `json:"order"`
	Sections []ChapterSection `json:"sections"`
}
