package domain

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"
)

func TestPipelineFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "pipeline",
		ScenarioInitializer: initializePipelineScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{filepath.Join("testdata", "features")},
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("pipeline feature scenarios failed")
	}
}

type pipelineState struct {
	pages     []string
	chapters  *ChapterSet
	questions []Question
	quiz      *Quiz
	answers   map[string]string
	times     map[string]float64
	result    *Result
}

func (s *pipelineState) reset() {
	*s = pipelineState{
		answers: map[string]string{},
		times:   map[string]float64{},
	}
}

func initializePipelineScenario(ctx *godog.ScenarioContext) {
	state := &pipelineState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.Step(`^the following pages:$`, state.theFollowingPages)
	ctx.Step(`^the document is segmented$`, state.theDocumentIsSegmented)
	ctx.Step(`^there (?:is|are) (\d+) chapters?$`, state.thereAreChapters)
	ctx.Step(`^chapter (\d+) is titled "([^"]*)"$`, state.chapterIsTitled)
	ctx.Step(`^chapter "([^"]*)" contains all pages joined by newlines$`, state.chapterContainsAllPages)
	ctx.Step(`^questions are synthesized for chapter "([^"]*)" with a cap of (\d+)$`, state.questionsAreSynthesized)
	ctx.Step(`^(\d+) questions? (?:is|are) produced$`, state.questionsAreProduced)
	ctx.Step(`^every question has 4 options including its answer$`, state.everyQuestionIsWellFormed)
	ctx.Step(`^a quiz of (\d+) questions with a (\d+) minute limit is assembled$`, state.aQuizIsAssembled)
	ctx.Step(`^assembling a quiz fails with "([^"]*)"$`, state.assemblingFailsWith)
	ctx.Step(`^the student answers question (\d+) with "([^"]*)"$`, state.theStudentAnswers)
	ctx.Step(`^the student spends (\d+) seconds on question "([^"]*)"$`, state.theStudentSpends)
	ctx.Step(`^the submission is graded$`, state.theSubmissionIsGraded)
	ctx.Step(`^the quiz has (\d+) questions$`, state.theQuizHasQuestions)
	ctx.Step(`^the score is ([\d.]+)$`, state.theScoreIs)
	ctx.Step(`^the time taken is ([\d.]+) seconds$`, state.theTimeTakenIs)
}

var repeatPattern = regexp.MustCompile(`\{(.)\*(\d+)\}`)

// expandPage turns "{x*60}" into sixty x characters and "\n" into a newline.
func expandPage(s string) string {
	s = strings.ReplaceAll(s, `\n`, "\n")
	return repeatPattern.ReplaceAllStringFunc(s, func(m string) string {
		parts := repeatPattern.FindStringSubmatch(m)
		n, _ := strconv.Atoi(parts[2])
		return strings.Repeat(parts[1], n)
	})
}

func (s *pipelineState) theFollowingPages(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue
		}
		s.pages = append(s.pages, expandPage(row.Cells[0].Value))
	}
	return nil
}

func (s *pipelineState) theDocumentIsSegmented() error {
	s.chapters = Segment(s.pages)
	return nil
}

func (s *pipelineState) thereAreChapters(n int) error {
	if s.chapters.Len() != n {
		return fmt.Errorf("expected %d chapters, got %d: %q", n, s.chapters.Len(), s.chapters.Titles())
	}
	return nil
}

func (s *pipelineState) chapterIsTitled(number int, title string) error {
	titles := s.chapters.Titles()
	if number < 1 || number > len(titles) {
		return fmt.Errorf("no chapter %d in %q", number, titles)
	}
	if titles[number-1] != title {
		return fmt.Errorf("chapter %d is titled %q, want %q", number, titles[number-1], title)
	}
	return nil
}

func (s *pipelineState) chapterContainsAllPages(title string) error {
	text, ok := s.chapters.Text(title)
	if !ok {
		return fmt.Errorf("no chapter %q", title)
	}
	want := strings.TrimSpace(strings.Join(s.pages, "\n") + "\n")
	if text != want {
		return fmt.Errorf("chapter text %q, want %q", text, want)
	}
	return nil
}

func (s *pipelineState) questionsAreSynthesized(title string, max int) error {
	text, ok := s.chapters.Text(title)
	if !ok {
		return fmt.Errorf("no chapter %q", title)
	}
	s.questions = Synthesize(text, max)
	for i := range s.questions {
		s.questions[i].ID = fmt.Sprintf("q%d", i+1)
		s.questions[i].ChapterID = title
	}
	return nil
}

func (s *pipelineState) questionsAreProduced(n int) error {
	if len(s.questions) != n {
		return fmt.Errorf("expected %d questions, got %d", n, len(s.questions))
	}
	return nil
}

func (s *pipelineState) everyQuestionIsWellFormed() error {
	for _, q := range s.questions {
		if len(q.Options) != 4 {
			return fmt.Errorf("question %s has %d options", q.ID, len(q.Options))
		}
		if err := q.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (s *pipelineState) chapterID() string {
	if len(s.questions) > 0 {
		return s.questions[0].ChapterID
	}
	return "unknown"
}

func (s *pipelineState) aQuizIsAssembled(count, minutes int) error {
	quiz, err := Assemble(s.chapterID(), s.questions, count, minutes)
	if err != nil {
		return err
	}
	quiz.ID = "quiz"
	s.quiz = quiz
	return nil
}

func (s *pipelineState) assemblingFailsWith(code string) error {
	_, err := Assemble(s.chapterID(), s.questions, DefaultQuizQuestionCount, DefaultTimeLimitMinutes)
	var de *DomainError
	if !errors.As(err, &de) {
		return fmt.Errorf("expected a domain error, got %v", err)
	}
	if string(de.Code) != code {
		return fmt.Errorf("expected code %s, got %s", code, de.Code)
	}
	return nil
}

func (s *pipelineState) theStudentAnswers(order int, answer string) error {
	if s.quiz == nil || order < 1 || order > len(s.quiz.Questions) {
		return fmt.Errorf("no question at position %d", order)
	}
	s.answers[s.quiz.Questions[order-1].Question.ID] = answer
	return nil
}

func (s *pipelineState) theStudentSpends(seconds int, questionKey string) error {
	s.times[questionKey] = float64(seconds)
	return nil
}

func (s *pipelineState) theSubmissionIsGraded() error {
	result, err := Grade(s.quiz, s.answers, s.times)
	if err != nil {
		return err
	}
	s.result = result
	return nil
}

func (s *pipelineState) theQuizHasQuestions(n int) error {
	if len(s.quiz.Questions) != n {
		return fmt.Errorf("quiz has %d questions, want %d", len(s.quiz.Questions), n)
	}
	return nil
}

func (s *pipelineState) theScoreIs(score float64) error {
	if s.result.Score != score {
		return fmt.Errorf("score %v, want %v", s.result.Score, score)
	}
	return nil
}

func (s *pipelineState) theTimeTakenIs(seconds float64) error {
	if s.result.TimeTaken != seconds {
		return fmt.Errorf("time taken %v, want %v", s.result.TimeTaken, seconds)
	}
	return nil
}
