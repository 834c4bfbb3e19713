package models

import "testing"

func TestChapterSectionValidate(t *testing.T) {
	testCases := []struct {
		name    string
		section ChapterSection
		wantErr bool
	}{
		{"text with content", ChapterSection{Type: SectionText, Content: "# Bab 1"}, false},
		{"text without content", ChapterSection{Type: SectionText}, true},
		{"image with content", ChapterSection{Type: SectionImage, Content: "aGVsbG8="}, false},
		{"image without content", ChapterSection{Type: SectionImage}, true},
		{"3d with glb id", ChapterSection{Type: SectionModel, GLBID: "glb-123"}, false},
		{"3d without glb id", ChapterSection{Type: SectionModel, Content: "ignored"}, true},
		{"quiz with quiz id", ChapterSection{Type: SectionQuiz, QuizID: "quiz-123"}, false},
		{"quiz without quiz id", ChapterSection{Type: SectionQuiz}, true},
		{"unknown type", ChapterSection{Type: "video", Content: "x"}, true},
		{"empty type", ChapterSection{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.section.Validate()
			if tc.wantErr && err == nil {
				t.Errorf("Validate() = nil, want error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}
