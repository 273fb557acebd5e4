package common

type ErrorCode string
type ErrorMessage string

const (
	ErrCodeConfigLoadFailed    ErrorCode = "CONFIG_LOAD_FAILED"
	ErrCodeAPIRequestFailed    ErrorCode = "API_REQUEST_FAILED"
	ErrCodeAPIUnexpectedStatus ErrorCode = "API_UNEXPECTED_STATUS"
	ErrCodeAPIDecodeFailed     ErrorCode = "API_DECODE_FAILED"
	ErrCodeProbeAborted        ErrorCode = "PROBE_ABORTED"
)

const (
	ErrMsgConfigLoadFailed    ErrorMessage = "Failed to load configuration"
	ErrMsgAPIRequestFailed    ErrorMessage = "Failed to reach the token-data API"
	ErrMsgAPIUnexpectedStatus ErrorMessage = "Token-data API returned a non-success status"
	ErrMsgAPIDecodeFailed     ErrorMessage = "Failed to decode token-data API response"
	ErrMsgProbeAborted        ErrorMessage = "Probe stopped at the first failing check"
)

func (e ErrorCode) String() string {
	return string(e)
}

func (m ErrorMessage) String() string {
	return string(m)
}
