package service

import (
	"testing"

	"gorm.io/datatypes"

	questionModel "academylms_backend/internals/features/exams/questions/model"
)

func mcQuestion(key string, points float64) *questionModel.QuestionModel {
	return &questionModel.QuestionModel{
		QuestionType:      "multiple_choice",
		QuestionAnswerKey: &key,
		QuestionPoints:    points,
	}
}

func TestAutoGradeMultipleChoice(t *testing.T) {
	q := mcQuestion("B", 5)

	points, correct := AutoGrade(q, datatypes.JSON(`{"selected": "B"}`))
	if points == nil || *points != 5 || correct == nil || !*correct {
		t.Fatalf("correct choice: points=%v correct=%v", points, correct)
	}

	points, correct = AutoGrade(q, datatypes.JSON(`{"selected": "C"}`))
	if points == nil || *points != 0 || correct == nil || *correct {
		t.Fatalf("wrong choice: points=%v correct=%v", points, correct)
	}
}

func TestAutoGradeShortAnswerIsCaseInsensitive(t *testing.T) {
	key := "Jakarta"
	q := &questionModel.QuestionModel{
		QuestionType:      "short_answer",
		QuestionAnswerKey: &key,
		QuestionPoints:    2,
	}

	points, correct := AutoGrade(q, datatypes.JSON(`{"text": "  jakarta "}`))
	if points == nil || *points != 2 || correct == nil || !*correct {
		t.Fatalf("case/space-insensitive match failed: points=%v correct=%v", points, correct)
	}
}

func TestAutoGradeEssayNeedsManualGrading(t *testing.T) {
	key := "anything"
	q := &questionModel.QuestionModel{
		QuestionType:      "essay",
		QuestionAnswerKey: &key,
		QuestionPoints:    10,
	}

	points, correct := AutoGrade(q, datatypes.JSON(`{"text": "my essay"}`))
	if points != nil || correct != nil {
		t.Fatalf("essay must stay ungraded: points=%v correct=%v", points, correct)
	}
}

func TestAutoGradeNoKeyOrEmptyPayload(t *testing.T) {
	q := &questionModel.QuestionModel{QuestionType: "multiple_choice", QuestionPoints: 1}
	if points, correct := AutoGrade(q, datatypes.JSON(`{"selected": "A"}`)); points != nil || correct != nil {
		t.Fatalf("no answer key must stay ungraded")
	}

	q2 := mcQuestion("A", 1)
	if points, correct := AutoGrade(q2, nil); points != nil || correct != nil {
		t.Fatalf("empty payload must stay ungraded")
	}
	if points, correct := AutoGrade(q2, datatypes.JSON(`{"selected": ""}`)); points != nil || correct != nil {
		t.Fatalf("blank answer must stay ungraded")
	}
}
