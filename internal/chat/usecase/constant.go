package usecase

// Log prefixes
const (
	LogPrefixAnswer       = "internal.chat.usecase.Answer"
	LogPrefixExtract      = "internal.chat.usecase.extractMeetingDetails"
	LogPrefixTopic        = "internal.chat.usecase.extractTopic"
	LogPrefixSubmit       = "internal.chat.usecase.submitTask"
	LogPrefixUpdatePrompt = "internal.chat.usecase.UpdatePrompt"
)

// Generation settings
const (
	ExtractTemperature = 0.1
	TopicTemperature   = 0.2
	AnswerTemperature  = 0.8
	AnswerMaxTokens    = 512
)

// DefaultTopic is used when no conversation topic could be extracted.
const DefaultTopic = "the discussed topic"

// HistoryWindow is how many trailing messages feed prompts.
const HistoryWindow = 6

// Visitor-facing reply templates.
const (
	MsgMissingDetails = "Please provide the following details for your meeting: %s."

	MsgInitialConfirm = `Are you sure you want to have a meeting with %s about %s? (Please respond with "yes" to confirm)`

	MsgFinalConfirm = "I will be scheduling a meeting with %s about %s on %s at %s for %d minutes. Do you want to confirm this? Press yes to confirm."

	MsgMeetingScheduled = "Great! I've scheduled a meeting with %s about %s on %s at %s for %d minutes. Tracking ID: %s. %s will be in touch with you soon."

	MsgTaskAdded = "I've added this to %s's to-do list with tracking ID %s. %s will follow up with you about this task later."

	MsgPastTime = "I'm not a time traveler who can go to the past for meetings! 🚀⏰ Please provide a future date and time for our meeting."

	MsgPastTimeFinal = "Oops! Looks like you're trying to schedule a meeting in the past. Unless you have a flux capacitor and 1.21 gigawatts of power, we'll need a future time! 🕰️ Please provide a new date and time."

	MsgMeetingCancelled = "No problem, I've dropped that meeting request. Just ask again if you change your mind."

	MsgGuestMeeting = "You are a Guest User as you are not registered on ChatMate, so I can't schedule meetings for you. Please register at https://chat-matee.vercel.app/ and then login with your username to use this feature."

	MsgNotRegistered = "You are not a registered user of ChatMate, so I can't schedule tasks for you. Please register at https://chatmatefrontend.vercel.app/ and then login with your username to use this feature."

	MsgTaskFailed = "I noticed this is a task request, but there was an issue scheduling it."

	MsgMeetingFailed = "I tried to schedule the meeting, but there was an issue. Please try again later."

	MsgAnswerUnavailable = "Sorry, I couldn't generate a response at this time."
)

// Meeting detail extraction prompt. Fed with current date, current time
// and the message; constrained JSON output keeps the reply parseable.
const PromptExtractMeeting = `Extract meeting details from the following text, converting natural language including relative time expressions into structured data.
Be flexible with format and phrasing - the goal is to successfully extract the information no matter how it's expressed.

CURRENT DATE AND TIME: %s %s

Relative time expressions to handle:
- "tomorrow" = the day after the current date
- "next hour" = 1 hour from current time
- "few minutes" = around 10 minutes
- "few hours" = around 2-3 hours
- "next week" = 7 days from current date
- "anytime" = 12 hours from current time
- "whenever you are free" = next day 11:00 AM

Text: %q

Return a valid JSON object with these fields:
{
  "title": "Meeting title or null if not specified",
  "description": "Meeting description or null if not specified",
  "date": "Date in YYYY-MM-DD format or null if not specified",
  "time": "Time in HH:MM format (24 hour) or null if not specified",
  "duration": "Duration in minutes (as a number) or null if not specified"
}

IMPORTANT: Return only the raw JSON object without any markdown code blocks or additional text.`

// Conversation topic extraction prompt.
const PromptExtractTopic = `Based on the following conversation snippet and the current question,
extract the SPECIFIC AND DETAILED main topic or context of discussion in 5-10 words.

Be PRECISE and TECHNICALLY SPECIFIC. If there are technical issues mentioned (like CORS errors,
deployment problems, specific bugs), include those specific details.

DO NOT use generic descriptions like "project discussion" when more specific details are available.

Recent conversation:
%s

Current question: %q
%s
Main topic (5-10 words, be specific about technical details):`

// Persona answering prompt. The assistant speaks as the owner, grounded
// on the owner's prompt data, daily tasks and approved contributions.
const PromptPersona = `You are %s's personal AI assistant. Answer based on the following details. Answer the questions in person, as if %s is answering instead of an AI.
If you don't have data for any information say "I don't have that information. If you have answers to this, please contribute."
Answer questions in a slightly elaborate manner and add light humour where it fits.
Note: if a question sounds like "Do you know about this CORS issue in deployment", it is asked of %s, not of the AI, so answer from %s's data rather than general AI knowledge.

Here's %s's latest data:
%s

And this is the daily task list of %s:
%s

%s%s Current question: %s

%s

When providing links, give plain URLs like https://github.com/xxxx/

This is the way I want the responses to be: %s

IMPORTANT: Maintain context from the conversation history when answering follow-up questions. If the question seems like a follow-up to previous messages, make sure your response builds on the earlier conversation.`
