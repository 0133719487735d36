package ecv1

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEmitEncodeStart(_ *testing.T) {
	// Should not panic
	emitEncodeStart(context.Background(), "gz>b64", "json")
}

func TestEmitEncodeComplete_Success(_ *testing.T) {
	emitEncodeComplete(context.Background(), "gz>b64", "json", 64, 100*time.Microsecond, nil)
}

func TestEmitEncodeComplete_Error(_ *testing.T) {
	emitEncodeComplete(context.Background(), "gz>aes", "json", 0, 100*time.Microsecond, errors.New("test error"))
}

func TestEmitDecodeStart(_ *testing.T) {
	emitDecodeStart(context.Background(), 64)
}

func TestEmitDecodeComplete_Success(_ *testing.T) {
	emitDecodeComplete(context.Background(), "none", "text", 32, 100*time.Microsecond, nil)
}

func TestEmitDecodeComplete_Error(_ *testing.T) {
	emitDecodeComplete(context.Background(), "", "", 5, 100*time.Microsecond, errors.New("test error"))
}

func TestSignalVariables(t *testing.T) {
	signals := []struct {
		name   string
		signal interface{}
	}{
		{"SignalEncodeStart", SignalEncodeStart},
		{"SignalEncodeComplete", SignalEncodeComplete},
		{"SignalDecodeStart", SignalDecodeStart},
		{"SignalDecodeComplete", SignalDecodeComplete},
	}

	for _, s := range signals {
		if s.signal == nil {
			t.Errorf("%s is nil", s.name)
		}
	}
}

func TestKeyVariables(t *testing.T) {
	keys := []struct {
		name string
		key  interface{}
	}{
		{"KeyChain", KeyChain},
		{"KeyContentType", KeyContentType},
		{"KeySize", KeySize},
		{"KeyDuration", KeyDuration},
		{"KeyError", KeyError},
	}

	for _, k := range keys {
		if k.key == nil {
			t.Errorf("%s is nil", k.name)
		}
	}
}
