package usecase

import (
	"context"
	"fmt"
	"strings"

	"chatmate-assistant/internal/chat"
	"chatmate-assistant/internal/chat/dialogue"
	"chatmate-assistant/internal/chat/pending"
	"chatmate-assistant/internal/model"
	"chatmate-assistant/pkg/gemini"
)

// Answer routes one visitor message through the meeting dialogue, task
// detection and persona answering.
func (uc *implUseCase) Answer(ctx context.Context, sc model.Scope, input chat.AnswerInput) (chat.AnswerOutput, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return chat.AnswerOutput{}, chat.ErrEmptyQuestion
	}
	if input.Owner.Username == "" {
		return chat.AnswerOutput{}, chat.ErrMissingOwner
	}

	urls := extractURLs(question)
	historyContext := formatHistory(lastN(input.History, HistoryWindow))
	topic := uc.extractTopic(ctx, input.History, question)

	pm := uc.pending.Get(sc)
	state := dialogue.Process(question, input.History)
	uc.l.Debugf(ctx, "%s: session=%s state=%s", LogPrefixAnswer, sc.SessionKey(), state)

	// A "no" mid-negotiation abandons the pending meeting.
	if state == dialogue.StateNone && uc.negotiating(pm) && dialogue.IsNegative(question) {
		uc.pending.Clear(sc)
		return reply(MsgMeetingCancelled, model.IntentNone), nil
	}

	switch state {
	case dialogue.StateDetailsProvided:
		return uc.handleDetailsProvided(ctx, sc, input, pm, question, topic)
	case dialogue.StateConfirmed:
		return uc.handleConfirmed(ctx, sc, input, pm, question, topic)
	case dialogue.StateFinalConfirmation:
		return uc.handleFinalConfirmation(ctx, sc, input, pm, topic, urls)
	}

	det, err := uc.detector.Detect(ctx, question, historyContext)
	if err != nil {
		uc.l.Warnf(ctx, "%s: detection failed: %v", LogPrefixAnswer, err)
	}

	if det.IsTask && det.IsMeetingRequest {
		meetingTopic := orDefault(topic, DefaultTopic)
		pm = &pending.Meeting{
			OriginalQuestion: question,
			Details: model.MeetingDetails{
				Title:       meetingTopic,
				Description: "Meeting about " + meetingTopic,
			},
		}
		pm.Details.Merge(uc.extractMeetingDetails(ctx, question))
		uc.pending.Put(sc, pm)
		return reply(fmt.Sprintf(MsgInitialConfirm, input.Owner.Name, meetingTopic), model.IntentAwaitingConfirm), nil
	}

	if det.IsTask {
		if input.Visitor == nil {
			return reply(MsgNotRegistered, model.IntentNone), nil
		}
		taskID, err := uc.submitTask(ctx, input.Owner, input.Visitor, question, det, topic)
		if err != nil {
			uc.l.Errorf(ctx, "%s: %v", LogPrefixAnswer, err)
			return reply(MsgTaskFailed, model.IntentNone), nil
		}
		out := reply(fmt.Sprintf(MsgTaskAdded, input.Owner.Name, taskID, input.Owner.Name), model.IntentNone)
		out.TaskID = taskID
		return out, nil
	}

	return reply(uc.generateReply(ctx, input, historyContext, topic, question), model.IntentNone), nil
}

// handleDetailsProvided merges newly supplied meeting fields into the
// pending negotiation and either re-asks for what is still missing or
// moves to final confirmation.
func (uc *implUseCase) handleDetailsProvided(ctx context.Context, sc model.Scope, input chat.AnswerInput, pm *pending.Meeting, question, topic string) (chat.AnswerOutput, error) {
	pm.Details.Merge(uc.extractMeetingDetails(ctx, question))
	if pm.OriginalQuestion == "" {
		pm.OriginalQuestion = orDefault(lastUserMessage(input.History, question), question)
	}

	if missing := pm.Details.Missing(); len(missing) > 0 {
		uc.pending.Put(sc, pm)
		return reply(fmt.Sprintf(MsgMissingDetails, strings.Join(missing, ", ")), model.IntentAwaitingDetails), nil
	}

	if pm.Details.InPast(uc.now(), uc.dateMath.Location()) {
		pm.Details.ClearSchedule()
		uc.pending.Put(sc, pm)
		return reply(MsgPastTime, model.IntentAwaitingDetails), nil
	}

	uc.pending.Put(sc, pm)
	return uc.askFinalConfirmation(input.Owner, pm, topic), nil
}

// handleConfirmed reacts to the visitor agreeing to the initial meeting
// question: seed the negotiation from the request that started it and
// ask for whatever is still missing.
func (uc *implUseCase) handleConfirmed(ctx context.Context, sc model.Scope, input chat.AnswerInput, pm *pending.Meeting, question, topic string) (chat.AnswerOutput, error) {
	source := orDefault(lastUserMessage(input.History, question), question)
	if pm.OriginalQuestion == "" {
		pm.OriginalQuestion = source
	}

	meetingTopic := orDefault(topic, DefaultTopic)
	if pm.Details.Title == "" {
		pm.Details.Title = meetingTopic
		pm.Details.Description = "Meeting about " + meetingTopic
	}
	pm.Details.Merge(uc.extractMeetingDetails(ctx, source))
	uc.pending.Put(sc, pm)

	if missing := pm.Details.Missing(); len(missing) > 0 {
		return reply(fmt.Sprintf(MsgMissingDetails, strings.Join(missing, ", ")), model.IntentAwaitingDetails), nil
	}
	return uc.askFinalConfirmation(input.Owner, pm, topic), nil
}

// handleFinalConfirmation schedules the fully negotiated meeting.
func (uc *implUseCase) handleFinalConfirmation(ctx context.Context, sc model.Scope, input chat.AnswerInput, pm *pending.Meeting, topic string, urls []string) (chat.AnswerOutput, error) {
	if missing := pm.Details.Missing(); len(missing) > 0 {
		// Negotiation state expired between turns; restart collection.
		uc.pending.Put(sc, pm)
		return reply(fmt.Sprintf(MsgMissingDetails, strings.Join(missing, ", ")), model.IntentAwaitingDetails), nil
	}

	if pm.Details.InPast(uc.now(), uc.dateMath.Location()) {
		pm.Details.ClearSchedule()
		uc.pending.Put(sc, pm)
		return reply(MsgPastTimeFinal, model.IntentAwaitingDetails), nil
	}

	if input.Visitor == nil || input.Visitor.IsGuest {
		return reply(MsgGuestMeeting, model.IntentNone), nil
	}

	meetingContext := orDefault(pm.Details.Title, orDefault(topic, DefaultTopic))
	date, tm, duration := pm.Details.Date, pm.Details.Time, pm.Details.Duration

	taskID, err := uc.submitMeeting(ctx, input.Owner, input.Visitor, pm, topic, urls)
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", LogPrefixAnswer, err)
		return reply(MsgMeetingFailed, model.IntentNone), nil
	}

	uc.pending.Clear(sc)
	out := reply(fmt.Sprintf(MsgMeetingScheduled, input.Owner.Name, meetingContext, date, tm, duration, taskID, input.Owner.Name), model.IntentNone)
	out.TaskID = taskID
	return out, nil
}

// askFinalConfirmation renders the summary the visitor must approve
// before the meeting is scheduled.
func (uc *implUseCase) askFinalConfirmation(owner model.OwnerProfile, pm *pending.Meeting, topic string) chat.AnswerOutput {
	meetingContext := orDefault(pm.Details.Title, orDefault(topic, DefaultTopic))
	return reply(
		fmt.Sprintf(MsgFinalConfirm, owner.Name, meetingContext, pm.Details.Date, pm.Details.Time, pm.Details.Duration),
		model.IntentAwaitingFinalConfirm,
	)
}

// generateReply answers conversationally in the owner's persona.
func (uc *implUseCase) generateReply(ctx context.Context, input chat.AnswerInput, historyContext, topic, question string) string {
	historySection := ""
	if historyContext != "" {
		historySection = "RECENT CONVERSATION HISTORY:\n" + historyContext + "\n\n"
	}
	topicSection := ""
	if topic != "" {
		topicSection = "Current conversation topic: " + topic + "\n\n"
	}

	name := input.Owner.Name
	prompt := fmt.Sprintf(PromptPersona,
		name, name, name, name,
		name, orDefault(input.Owner.Prompt, "No specific context provided"),
		name, input.Owner.DailyTasks,
		historySection, topicSection, question,
		approvedKnowledgeBase(input.Owner.Contributions),
		input.Owner.UserPrompt,
	)

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: prompt}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     AnswerTemperature,
			MaxOutputTokens: AnswerMaxTokens,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: persona answer failed: %v", LogPrefixAnswer, err)
		return MsgAnswerUnavailable
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return MsgAnswerUnavailable
	}
	return text
}

// negotiating reports whether any meeting state has accumulated for
// the session.
func (uc *implUseCase) negotiating(pm *pending.Meeting) bool {
	return pm.OriginalQuestion != "" || pm.Details != (model.MeetingDetails{})
}

func reply(text string, intent model.BotIntent) chat.AnswerOutput {
	return chat.AnswerOutput{Reply: text, Intent: intent}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
