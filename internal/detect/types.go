package detect

// Detection is the structured result of analysing one user message.
type Detection struct {
	IsTask           bool
	IsMeetingRequest bool
	// TaskDescription is the LLM's condensed summary of the request,
	// with any URLs from the original message appended when the
	// summary dropped them.
	TaskDescription string
	// URLs found in the original message, in order of appearance.
	URLs []string
}
