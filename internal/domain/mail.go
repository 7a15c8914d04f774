package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type SchedulePublishedMailData struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	AssignmentCount int    `json:"assignmentCount"`
	GuardCount      int    `json:"guardCount"`
}
