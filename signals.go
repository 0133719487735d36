package ecv1

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for envelope events.
var (
	SignalEncodeStart    = capitan.NewSignal("ecv1.encode.start", "Encode operation beginning")
	SignalEncodeComplete = capitan.NewSignal("ecv1.encode.complete", "Encode operation finished")
	SignalDecodeStart    = capitan.NewSignal("ecv1.decode.start", "Decode operation beginning")
	SignalDecodeComplete = capitan.NewSignal("ecv1.decode.complete", "Decode operation finished")
)

// Keys for typed event data.
var (
	KeyChain       = capitan.NewStringKey("chain")
	KeyContentType = capitan.NewStringKey("content_type")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitEncodeStart emits an event when encode begins.
func emitEncodeStart(ctx context.Context, chain, contentType string) {
	capitan.Emit(ctx, SignalEncodeStart,
		KeyChain.Field(chain),
		KeyContentType.Field(contentType),
	)
}

// emitEncodeComplete emits an event when encode finishes.
// size is the length of the framed envelope text.
func emitEncodeComplete(ctx context.Context, chain, contentType string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyChain.Field(chain),
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitDecodeStart emits an event when decode begins.
// size is the length of the input text.
func emitDecodeStart(ctx context.Context, size int) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeySize.Field(size),
	)
}

// emitDecodeComplete emits an event when decode finishes.
// chain and contentType are empty when the envelope could not be read.
func emitDecodeComplete(ctx context.Context, chain, contentType string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyChain.Field(chain),
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}
