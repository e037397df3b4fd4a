package service

import (
	"strings"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"

	questionModel "academylms_backend/internals/features/exams/questions/model"
)

// answerPayload is the shape auto-gradable answers arrive in:
// {"selected": "B"} for choices, {"text": "..."} for short answers.
type answerPayload struct {
	Selected string `json:"selected"`
	Text     string `json:"text"`
}

// AutoGrade scores one answer against the question's answer key.
// Returns (nil, nil) when the answer needs manual grading: essays,
// questions without a key, or payloads that don't parse.
func AutoGrade(q *questionModel.QuestionModel, payload datatypes.JSON) (*float64, *bool) {
	if q.QuestionType == "essay" || q.QuestionAnswerKey == nil || len(payload) == 0 {
		return nil, nil
	}

	var p answerPayload
	if err := sonic.Unmarshal(payload, &p); err != nil {
		return nil, nil
	}
	given := p.Selected
	if given == "" {
		given = p.Text
	}
	if strings.TrimSpace(given) == "" {
		return nil, nil
	}

	correct := strings.EqualFold(strings.TrimSpace(given), strings.TrimSpace(*q.QuestionAnswerKey))
	points := 0.0
	if correct {
		points = q.QuestionPoints
	}
	return &points, &correct
}
