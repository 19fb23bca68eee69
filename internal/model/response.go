package model

const (
	// LeadAcceptedMessage is returned once a lead row has been written.
	LeadAcceptedMessage = "Lead data successfully processed. Initial and refined scope of work generation simulated."
	leadFailedPrefix    = "An error occurred during lead processing: "
)

// ProcessLeadResponse acknowledges a lead submission.
// Build it with LeadAccepted or LeadFailed rather than by hand.
type ProcessLeadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LeadAccepted is the result of a successful write.
func LeadAccepted() ProcessLeadResponse {
	return ProcessLeadResponse{Success: true, Message: LeadAcceptedMessage}
}

// LeadFailed carries the store error's text back to the caller.
func LeadFailed(err error) ProcessLeadResponse {
	return ProcessLeadResponse{Success: false, Message: leadFailedPrefix + err.Error()}
}
