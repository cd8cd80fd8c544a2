package server

import "fmt"

type ResponseCode int

const (
	CONTENT_READY ResponseCode = iota
	CONTENT_NOT_FOUND
	CONTENT_INVALID
)

func (h ResponseCode) ToHttp() int {
	switch h {
	case CONTENT_READY:
		return 200
	case CONTENT_NOT_FOUND:
		return 404
	case CONTENT_INVALID:
		return 400
	default:
		panic(h)
	}
}

type ClientSessionState int32

const (
	CS_NEW ClientSessionState = iota + 1
	CS_OPEN
	CS_CLOSED
	CS_ERR
)

func (s ClientSessionState) Name() string {
	switch s {
	case CS_NEW:
		return "NEW"
	case CS_OPEN:
		return "OPEN"
	case CS_CLOSED:
		return "CLOSED"
	case CS_ERR:
		return "ERR"
	default:
		return fmt.Sprintf("n/a:%d", s)
	}
}
