package detect

// Log prefixes
const (
	LogPrefixDetect = "internal.detect.Detect"
)

// Detection prompt. The message is analysed for a future task, follow-up
// or reminder; the first line of the answer must be YES or NO.
const (
	PromptDetectTask = `Analyze the following text and determine if it contains a request for a future task, follow-up, or reminder.
First, respond with "YES" if it's a task request or "NO" if it's not.

If it is a task request, on a new line after "YES", provide a specific and detailed description of the task (maximum 1/3 the original task asked).
Be precise about the exact nature of the task - including specific technical issues mentioned (like CORS errors, deployment issues, etc.)
If the message mentions scheduling a meeting or call, indicate this is a meeting request.

PRESERVE ALL URLs AND LINKS EXACTLY AS THEY APPEAR IN THE ORIGINAL REQUEST. Do not replace URLs with generic text like "Link".

Examples of task requests:
- "When you get time ping me about the cosmos deployment"
- "Remind me to check on the server status tomorrow"
- "I need you to follow up with me about this issue later"
- "Once you're free, let's discuss the project timeline"
- "Let's have a call tomorrow"
- "Can we schedule a meeting next week?"
- "Ok let's have a meet on this"

`

	PromptHistoryPrefix = "Recent conversation context:\n"
)

// Detection configuration
const (
	DetectTemperature      = 0.1
	DefaultTaskDescription = "Task request"
)
