package models

type QuizOption struct {
	Key  string `bson:"key" json:"key"`
	Text string `bson:"text" json:"text"`
}

type QuizQuestion struct {
	ID         string       `bson:"id" json:"id"`
	Question   string       `bson:"question" json:"question"`
	Options    []QuizOption `bson:"options" json:"options"`
	CorrectKey string       `bson:"correct_key" json:"correct_key"`
}

type Quiz struct {
	ID        string         `bson:"_id,omitempty" json:"id"`
	Title     string         `bson:"title" json:"title"`
	Questions []QuizQuestion `bson:"questions" json:"questions"`
}

type QuizCreate struct {
	Title     string         `json:"title" binding:"required"`
	Questions []QuizQuestion `json:"questions"`
}

type QuizAnswer struct {
	QuestionID string `json:"question_id" binding:"required"`
	ChoiceKey  string `json:"choice_key" binding:"required"`
}

type QuizAttemptRequest struct {
	Answers []QuizAnswer `json:"answers"`
}

type QuizAttemptResult struct {
	Score        int `json:"score"`
	CorrectCount int `json:"correct_count"`
	Total        int `json:"total"`
}

// Grade scores a set of submitted answers against the quiz. Later answers
// for the same question id override earlier ones. Answers for question ids
// not in the quiz are ignored. The score is truncated, not rounded.
func (q *Quiz) Grade(answers []QuizAnswer) QuizAttemptResult {
	total := len(q.Questions)

	answerMap := make(map[string]string, len(answers))
	for _, a := range answers {
		answerMap[a.QuestionID] = a.ChoiceKey
	}

	correct := 0
	for _, question := range q.Questions {
		if choice, ok := answerMap[question.ID]; ok && choice == question.CorrectKey {
			correct++
		}
	}

	score := 0
	if total > 0 {
		score = correct * 100 / total
	}

	return QuizAttemptResult{Score: score, CorrectCount: correct, Total: total}
}
