package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"chatmate-assistant/internal/chat/pending"
	"chatmate-assistant/internal/detect"
	"chatmate-assistant/internal/model"
	"chatmate-assistant/pkg/gcalendar"
	"chatmate-assistant/pkg/taskapi"
)

// submitTask sends a plain follow-up task to the backend and returns
// its tracking ID.
func (uc *implUseCase) submitTask(ctx context.Context, owner model.OwnerProfile, visitor *model.VisitorProfile, question string, det detect.Detection, topic string) (string, error) {
	github, deployment, other := groupLinks(det.URLs)

	var b strings.Builder
	b.WriteString(det.TaskDescription)
	b.WriteString("\n\n")
	if len(github) > 0 {
		fmt.Fprintf(&b, "GitHub Repository: %s\n", strings.Join(github, ", "))
	}
	if len(deployment) > 0 {
		fmt.Fprintf(&b, "Project Deployed Link: %s\n", strings.Join(deployment, ", "))
	}
	if len(other) > 0 {
		fmt.Fprintf(&b, "Additional Links: %s\n", strings.Join(other, ", "))
	}
	if topic != "" {
		fmt.Fprintf(&b, "\nContext: %s", topic)
	}

	resp, err := uc.backend.CreateTask(ctx, taskapi.CreateTaskRequest{
		UserID:          owner.Username,
		TaskQuestion:    question,
		TaskDescription: b.String(),
		UniqueTaskID:    uuid.NewString(),
		Status:          taskapi.StatusInProgress,
		PresentUserData: visitorRecord(visitor),
		TopicContext:    topic,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", LogPrefixSubmit, err)
	}
	return resp.Task.UniqueTaskID, nil
}

// submitMeeting sends a confirmed meeting to the backend, then syncs it
// to the owner's calendar on a best-effort basis.
func (uc *implUseCase) submitMeeting(ctx context.Context, owner model.OwnerProfile, visitor *model.VisitorProfile, pm *pending.Meeting, topic string, urls []string) (string, error) {
	meetingContext := pm.Details.Title
	if meetingContext == "" {
		meetingContext = topic
	}
	if meetingContext == "" {
		meetingContext = DefaultTopic
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Meeting request about %s\n\n", meetingContext)
	fmt.Fprintf(&b, "Date: %s\n", pm.Details.Date)
	fmt.Fprintf(&b, "Time: %s\n", pm.Details.Time)
	fmt.Fprintf(&b, "Duration: %d minutes\n", pm.Details.Duration)
	if len(urls) > 0 {
		fmt.Fprintf(&b, "\nRelevant links: %s\n", strings.Join(urls, ", "))
	}
	description := b.String()

	meetingDescription := pm.Details.Description
	if meetingDescription == "" {
		meetingDescription = description
	}

	question := pm.OriginalQuestion
	if question == "" {
		question = meetingContext
	}

	resp, err := uc.backend.CreateTask(ctx, taskapi.CreateTaskRequest{
		UserID:          owner.Username,
		TaskQuestion:    question,
		TaskDescription: description,
		UniqueTaskID:    uuid.NewString(),
		Status:          taskapi.StatusInProgress,
		PresentUserData: visitorRecord(visitor),
		TopicContext:    meetingContext,
		IsMeeting: &taskapi.MeetingRecord{
			Date:        pm.Details.Date,
			Time:        pm.Details.Time,
			Duration:    pm.Details.Duration,
			Title:       meetingContext,
			Description: meetingDescription,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", LogPrefixSubmit, err)
	}

	uc.syncCalendar(ctx, meetingContext, meetingDescription, &pm.Details)

	return resp.Task.UniqueTaskID, nil
}

// syncCalendar creates the calendar event for a scheduled meeting.
// Failures are logged, never surfaced; the task is already recorded.
func (uc *implUseCase) syncCalendar(ctx context.Context, title, description string, details *model.MeetingDetails) {
	if uc.calendar == nil {
		return
	}

	start, err := details.StartTime(uc.dateMath.Location())
	if err != nil {
		uc.l.Warnf(ctx, "%s: calendar sync skipped: %v", LogPrefixSubmit, err)
		return
	}
	end := start.Add(time.Duration(details.Duration) * time.Minute)

	if _, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:     title,
		Description: description,
		StartTime:   start,
		EndTime:     end,
		Timezone:    uc.dateMath.Location().String(),
	}); err != nil {
		uc.l.Warnf(ctx, "%s: calendar sync failed: %v", LogPrefixSubmit, err)
	}
}

func visitorRecord(visitor *model.VisitorProfile) *taskapi.VisitorRecord {
	if visitor == nil {
		return nil
	}
	return &taskapi.VisitorRecord{
		Name:     visitor.Name,
		Email:    visitor.Email,
		MobileNo: visitor.MobileNo,
		Prompt:   visitor.Prompt,
		Username: visitor.Username,
	}
}
