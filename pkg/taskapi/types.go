package taskapi

// MeetingRecord is the meeting block attached to a task when the task
// represents a confirmed meeting.
type MeetingRecord struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	Duration    int    `json:"duration"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// VisitorRecord is the minimized visitor profile stored with a task.
type VisitorRecord struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	MobileNo string `json:"mobileNo,omitempty"`
	Prompt   string `json:"prompt,omitempty"`
	Username string `json:"username"`
}

// CreateTaskRequest is the body for POST /create-task.
type CreateTaskRequest struct {
	UserID          string         `json:"userId"`
	TaskQuestion    string         `json:"taskQuestion"`
	TaskDescription string         `json:"taskDescription"`
	UniqueTaskID    string         `json:"uniqueTaskId"`
	Status          string         `json:"status"`
	PresentUserData *VisitorRecord `json:"presentUserData,omitempty"`
	TopicContext    string         `json:"topicContext,omitempty"`
	IsMeeting       *MeetingRecord `json:"isMeeting,omitempty"`
}

// CreatedTask is the task echo returned by the backend.
type CreatedTask struct {
	UniqueTaskID string `json:"uniqueTaskId"`
	Status       string `json:"status"`
}

// CreateTaskResponse is the response body from POST /create-task.
type CreateTaskResponse struct {
	Task CreatedTask `json:"task"`
}

// UpdatePromptRequest is the body for POST /update-prompt.
type UpdatePromptRequest struct {
	Content string `json:"content"`
	UserID  string `json:"userId"`
}

// StatusInProgress is the initial status of every created task.
const StatusInProgress = "inprogress"
