package clients

const (
	USER_AGENT          = "intentai-client/1.0 (+https://github.com/spacesedan/intentai)"
	MAX_RESPONSE_BYTES  = 4 << 20
	HEALTHCHECK_TIMEOUT = 3
	PREVIEW_BYTES       = 50
)
