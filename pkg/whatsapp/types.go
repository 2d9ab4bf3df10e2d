package whatsapp

// SendRequest is the payload for the Unipile send-message endpoint.
// Either AttendeeIDs (direct chat) or GroupName (group chat) is set.
type SendRequest struct {
	AccountID   string   `json:"account_id"`
	AttendeeIDs []string `json:"attendees_ids,omitempty"`
	GroupName   string   `json:"group_name,omitempty"`
	Text        string   `json:"text"`
}
