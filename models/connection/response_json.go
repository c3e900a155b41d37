package connection

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespCorner struct {
	IsInCorner bool   `json:"isInCorner"`
	Direction  string `json:"direction"`
}

type RespDecide struct {
	Action string `json:"action"`
	Name   string `json:"name"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
