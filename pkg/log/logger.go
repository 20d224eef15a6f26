package clog

import (
	"context"
	"fmt"
	"log"
	"strings"
)

type contextKey string

const (
	ConnIDKey    contextKey = "conn-id"
	ChannelIDKey contextKey = "channel-id"
)

// Loggable is implemented by things which carry a logging context.
type Loggable interface {
	Ctx() context.Context
}

func ctxToString(ctx context.Context) string {
	var tags []string
	if connID, ok := ctx.Value(ConnIDKey).(int); ok {
		tags = append(tags, fmt.Sprintf("conn=%d", connID))
	}
	if channelID, ok := ctx.Value(ChannelIDKey).(int); ok {
		tags = append(tags, fmt.Sprintf("stmt=%d", channelID))
	}
	if len(tags) == 0 {
		return ""
	}
	return "[" + strings.Join(tags, " ") + "] "
}

func Println(l Loggable, args ...interface{}) {
	log.Println(ctxToString(l.Ctx()) + fmt.Sprint(args...))
}

func Printf(l Loggable, format string, args ...interface{}) {
	log.Println(ctxToString(l.Ctx()) + fmt.Sprintf(format, args...))
}
