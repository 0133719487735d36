package integration

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/zoobzio/ecv1"
	ectest "github.com/zoobzio/ecv1/testing"
)

func TestRoundTrip_AllChains(t *testing.T) {
	for _, chain := range ectest.TextSafeChains() {
		for name, value := range ectest.SampleValues() {
			t.Run(chain+"/"+name, func(t *testing.T) {
				text := ectest.MustEncode(t, value, ecv1.Options{Chain: chain, ContentType: "json"})

				msg, err := ecv1.Decode(context.Background(), text)
				if err != nil {
					t.Fatalf("Decode error: %v", err)
				}
				if msg.Chain.String() != chain {
					t.Errorf("Chain = %q, want %q", msg.Chain.String(), chain)
				}
				ectest.AssertJSONEqual(t, msg.Value, value)
			})
		}
	}
}

type order struct {
	ID    string   `json:"id"`
	Items []string `json:"items"`
	Total float64  `json:"total"`
}

func TestRoundTrip_TypedValue(t *testing.T) {
	original := order{ID: "o-1", Items: []string{"apple", "pear"}, Total: 12.5}

	text := ectest.MustEncode(t, original, ecv1.DefaultOptions())

	var restored order
	if err := ecv1.DecodeInto(context.Background(), text, &restored); err != nil {
		t.Fatalf("DecodeInto error: %v", err)
	}
	if restored.ID != original.ID || restored.Total != original.Total || len(restored.Items) != 2 {
		t.Errorf("restored = %+v, want %+v", restored, original)
	}
}

func TestRoundTrip_OpaqueText(t *testing.T) {
	original := "plain text\n\nwith an internal blank line"

	for _, chain := range []string{"none", "b64", "gz>b64"} {
		t.Run(chain, func(t *testing.T) {
			text := ectest.MustEncode(t, original, ecv1.Options{Chain: chain, ContentType: "text"})

			var restored string
			if err := ecv1.DecodeInto(context.Background(), text, &restored); err != nil {
				t.Fatalf("DecodeInto error: %v", err)
			}
			if restored != original {
				t.Errorf("restored = %q, want %q", restored, original)
			}
		})
	}
}

func TestRoundTrip_CRLFTransport(t *testing.T) {
	value := map[string]any{"k": "v"}
	text := ectest.MustEncode(t, value, ecv1.DefaultOptions())

	// Simulate a transport that rewrites line endings and pads with blank lines.
	mangled := "\r\n" + replaceNewlines(text) + "\r\n\r\n"

	msg, err := ecv1.Decode(context.Background(), mangled)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	ectest.AssertJSONEqual(t, msg.Value, value)
}

func replaceNewlines(s string) string {
	out := make([]byte, 0, len(s)+8)
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, '\r')
		}
		out = append(out, s[i])
	}
	return string(out)
}

func TestConcurrentEncodeDecode(t *testing.T) {
	const workers = 16

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			value := map[string]any{"worker": float64(i)}
			text, err := ecv1.Encode(context.Background(), value, ecv1.DefaultOptions())
			if err != nil {
				errs <- err
				return
			}
			msg, err := ecv1.Decode(context.Background(), text)
			if err != nil {
				errs <- err
				return
			}
			got := msg.Value.(map[string]any)["worker"]
			if fmt.Sprint(got) != fmt.Sprint(i) {
				errs <- fmt.Errorf("worker %d decoded %v", i, got)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestMismatchedChain_NeverSilent(t *testing.T) {
	value := map[string]any{"a": 1}

	tests := []struct {
		name     string
		produced string
		declared string
	}{
		{"b64 declared as gz>b64", "b64", "gz>b64"},
		{"gz>b64 declared reversed", "gz>b64", "b64>gz"},
		{"none declared as b64", "none", "b64"},
		{"b64 declared as gz", "b64", "gz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := ectest.MustEncode(t, value, ecv1.Options{Chain: tt.produced})
			frame, err := ecv1.Read(text)
			if err != nil {
				t.Fatalf("Read error: %v", err)
			}
			forged := fmt.Sprintf("EC v1\nt=%s;ct=json\n%s", tt.declared, frame.Payload)

			_, err = ecv1.Decode(context.Background(), forged)
			if !errors.Is(err, ecv1.ErrBase64Decode) && !errors.Is(err, ecv1.ErrDecompression) {
				t.Errorf("Decode error = %v, want ErrBase64Decode or ErrDecompression", err)
			}
		})
	}
}
