package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"underwrite/adapters/memory"
	"underwrite/domain/catalog"
	"underwrite/domain/core"
	"underwrite/domain/tier"
	"underwrite/domain/underwriting"
	"underwrite/internal"
	"underwrite/models"

	"github.com/google/uuid"
)

func newService() *SessionService {
	return NewSessionService(memory.NewSessionRepository(), internal.NewLogger(internal.LogLevelError))
}

func TestStartSessionSetsCursor(t *testing.T) {
	svc := newService()

	session, err := svc.StartSession(context.Background())
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	if session.State.CurrentQuestion == nil || *session.State.CurrentQuestion != catalog.Sex {
		t.Errorf("CurrentQuestion = %v, want sex", session.State.CurrentQuestion)
	}
	if session.State.PlanFloor != tier.Outcome(tier.Day1) {
		t.Errorf("PlanFloor = %v, want Day1", session.State.PlanFloor)
	}
}

func TestSubmitAnswerPersists(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	updated, err := svc.SubmitAnswer(ctx, session.ID, catalog.Sex, []byte(`{"sex":"male"}`))
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if updated.State.CurrentQuestion == nil || *updated.State.CurrentQuestion != catalog.Tobacco {
		t.Errorf("CurrentQuestion = %v, want q1", updated.State.CurrentQuestion)
	}

	loaded, err := svc.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if !loaded.State.HasAnswered(catalog.Sex) {
		t.Error("answer not persisted")
	}
	if loaded.Version != 2 {
		t.Errorf("Version = %d, want 2", loaded.Version)
	}
}

func TestSubmitAnswerDomainErrors(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	if _, err := svc.SubmitAnswer(ctx, session.ID, "q99", []byte(`{}`)); !errors.Is(err, core.ErrUnknownQuestion) {
		t.Errorf("unknown question err = %v, want ErrUnknownQuestion", err)
	}
	if _, err := svc.SubmitAnswer(ctx, session.ID, catalog.Treatment, []byte(`{"counselling":false}`)); !errors.Is(err, core.ErrPrerequisitesUnmet) {
		t.Errorf("prereq err = %v, want ErrPrerequisitesUnmet", err)
	}
	if _, err := svc.SubmitAnswer(ctx, uuid.New(), catalog.Sex, []byte(`{"sex":"male"}`)); !errors.Is(err, core.ErrSessionNotFound) {
		t.Errorf("missing session err = %v, want ErrSessionNotFound", err)
	}

	// A failed answer must not bump the stored version
	loaded, err := svc.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if loaded.Version != 1 {
		t.Errorf("Version = %d, want 1 after rejected answers", loaded.Version)
	}
}

func TestDeclineIsPersistedNotReturned(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	steps := []struct {
		id      catalog.ID
		payload string
	}{
		{catalog.Sex, `{"sex":"male"}`},
		{catalog.Tobacco, `{"tobacco":false}`},
		{catalog.BodyMass, `{"bmi":44.0}`},
		{catalog.Cardiovascular, `{"heartDisease":true,"stable":false}`},
	}
	for _, step := range steps {
		if _, err := svc.SubmitAnswer(ctx, session.ID, step.id, []byte(step.payload)); err != nil {
			t.Fatalf("SubmitAnswer(%s): %v", step.id, err)
		}
	}

	loaded, err := svc.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if !loaded.State.Declined {
		t.Fatal("session not declined")
	}
	if loaded.State.DeclineReason == "" {
		t.Error("decline reason missing")
	}

	if _, err := svc.SubmitAnswer(ctx, session.ID, catalog.Occupation, []byte(`{"working":true}`)); !errors.Is(err, core.ErrSessionClosed) {
		t.Errorf("post-decline err = %v, want ErrSessionClosed", err)
	}
}

func TestUpdateDemographicsThenRecompute(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	if _, err := svc.SubmitAnswer(ctx, session.ID, catalog.Sex, []byte(`{"sex":"female"}`)); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	age := 35
	height := 160.0
	weight := 120.0
	updated, err := svc.UpdateDemographics(ctx, session.ID, underwriting.Demographics{Age: &age, HeightCM: &height, WeightKG: &weight})
	if err != nil {
		t.Fatalf("UpdateDemographics: %v", err)
	}
	if updated.State.BMI == nil || *updated.State.BMI != 46.9 {
		t.Errorf("BMI = %v, want 46.9", updated.State.BMI)
	}
	// Demographics alone never move the lattice
	if updated.State.PlanFloor != tier.Outcome(tier.Day1) {
		t.Errorf("PlanFloor = %v, want Day1", updated.State.PlanFloor)
	}

	recomputed, err := svc.RecomputeSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("RecomputeSession: %v", err)
	}
	if recomputed.State.PlanFloor != tier.Outcome(tier.Day1) {
		t.Errorf("PlanFloor after recompute = %v, want Day1", recomputed.State.PlanFloor)
	}
}

func TestApplyIntakePersists(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	_, application, err := svc.ApplyIntake(ctx, session.ID, "I am 30, male, non smoker, 175cm and 75kg, working as a designer.")
	if err != nil {
		t.Fatalf("ApplyIntake: %v", err)
	}
	if len(application.Answered) == 0 {
		t.Fatal("intake answered nothing")
	}

	loaded, err := svc.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if !loaded.State.HasAnswered(catalog.Tobacco) {
		t.Error("intake answer not persisted")
	}
	if loaded.State.CurrentQuestion == nil || *loaded.State.CurrentQuestion != catalog.Alcohol {
		t.Errorf("CurrentQuestion = %v, want q4", loaded.State.CurrentQuestion)
	}
}

func TestAvailableQuestionsCarryText(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	views, err := svc.AvailableQuestions(ctx, session.ID)
	if err != nil {
		t.Fatalf("AvailableQuestions: %v", err)
	}
	if len(views) == 0 {
		t.Fatal("no available questions on a fresh session")
	}
	if views[0].ID != catalog.Sex || !views[0].Mandatory {
		t.Errorf("first view = %+v, want mandatory sex", views[0])
	}
	for _, v := range views {
		if v.Text == "" {
			t.Errorf("question %s has no display text", v.ID)
		}
	}
}

func TestRecomputeAllTouchesOnlyOpenSessions(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	var open []uuid.UUID
	for i := 0; i < 3; i++ {
		session, err := svc.StartSession(ctx)
		if err != nil {
			t.Fatalf("StartSession: %v", err)
		}
		open = append(open, session.ID)
	}

	declined, err := svc.StartSession(ctx)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	for _, step := range []struct {
		id      catalog.ID
		payload string
	}{
		{catalog.Sex, `{"sex":"male"}`},
		{catalog.Tobacco, `{"tobacco":false}`},
		{catalog.BodyMass, `{"bmi":44.0}`},
		{catalog.Cardiovascular, `{"heartDisease":true,"stable":false}`},
	} {
		if _, err := svc.SubmitAnswer(ctx, declined.ID, step.id, []byte(step.payload)); err != nil {
			t.Fatalf("SubmitAnswer(%s): %v", step.id, err)
		}
	}

	n, err := svc.RecomputeAll(ctx)
	if err != nil {
		t.Fatalf("RecomputeAll: %v", err)
	}
	if n != len(open) {
		t.Errorf("recomputed %d sessions, want %d", n, len(open))
	}

	for i, id := range open {
		loaded, err := svc.GetSession(ctx, id)
		if err != nil {
			t.Fatalf("GetSession(%s): %v", id, err)
		}
		if loaded.Version != 2 {
			t.Errorf("open session %d version = %d, want 2", i, loaded.Version)
		}
	}
}

func TestConcurrentAnswersSerialize(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if _, err := svc.SubmitAnswer(ctx, session.ID, catalog.Sex, []byte(`{"sex":"male"}`)); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if _, err := svc.SubmitAnswer(ctx, session.ID, catalog.Tobacco, []byte(`{"tobacco":false}`)); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	done := make(chan error, 2)
	for i := 0; i < 2; i++ {
		bmi := 24.0 + float64(i)
		go func() {
			_, err := svc.SubmitAnswer(ctx, session.ID, catalog.BodyMass, []byte(fmt.Sprintf(`{"bmi":%.1f}`, bmi)))
			done <- err
		}()
	}

	var failures int
	for i := 0; i < 2; i++ {
		if err := <-done; err != nil {
			failures++
			if !errors.Is(err, core.ErrAlreadyAnswered) {
				t.Errorf("concurrent answer err = %v, want ErrAlreadyAnswered", err)
			}
		}
	}
	if failures != 1 {
		t.Errorf("failures = %d, want exactly 1 of 2 concurrent answers rejected", failures)
	}
}

type capturingPublisher struct {
	events []models.SessionEvent
}

func (p *capturingPublisher) Publish(event models.SessionEvent) {
	p.events = append(p.events, event)
}

func TestSessionEventsPublished(t *testing.T) {
	svc := newService()
	pub := &capturingPublisher{}
	svc.SetEventPublisher(pub)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if _, err := svc.SubmitAnswer(ctx, session.ID, catalog.Sex, []byte(`{"sex":"male"}`)); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	if len(pub.events) != 2 {
		t.Fatalf("events = %d, want 2", len(pub.events))
	}
	if pub.events[0].EventType != models.EventSessionStarted {
		t.Errorf("first event = %s, want %s", pub.events[0].EventType, models.EventSessionStarted)
	}
	if pub.events[1].EventType != models.EventAnswerRecorded {
		t.Errorf("second event = %s, want %s", pub.events[1].EventType, models.EventAnswerRecorded)
	}
	if pub.events[1].QuestionID != string(catalog.Sex) {
		t.Errorf("event question = %s, want sex", pub.events[1].QuestionID)
	}
	if pub.events[1].SessionID != session.ID.String() {
		t.Errorf("event session = %s, want %s", pub.events[1].SessionID, session.ID)
	}
}
