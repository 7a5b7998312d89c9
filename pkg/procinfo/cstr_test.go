package procinfo

import (
	"bytes"
	"errors"
	"testing"
	"unicode/utf8"
)

func TestTextField(t *testing.T) {
	for name, tc := range map[string]struct {
		in      []byte
		want    string
		wantErr bool
	}{
		"terminated":     {in: []byte("launchd\x00\x00\x00"), want: "launchd"},
		"unterminated":   {in: []byte("exactly_full_buf"), want: "exactly_full_buf"},
		"empty":          {in: []byte{}, want: ""},
		"leading nul":    {in: []byte("\x00garbage after"), want: ""},
		"nul then junk":  {in: []byte("ps\x00\xff\xff"), want: "ps"},
		"multibyte":      {in: []byte("caf\xc3\xa9\x00"), want: "café"},
		"invalid utf8":   {in: []byte("\xff\xfe\x00"), wantErr: true},
		"truncated rune": {in: []byte("caf\xc3"), wantErr: true},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := textField(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidString) {
					t.Fatalf("textField(%q) error = %v, want ErrInvalidString", tc.in, err)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("textField(%q) = (%q, %v), want (%q, nil)", tc.in, got, err, tc.want)
			}
		})
	}
}

func TestPathFieldAcceptsArbitraryBytes(t *testing.T) {
	t.Parallel()
	in := []byte("/tmp/\xff\xfe/file\x00junk")
	got := pathField(in)
	if got != "/tmp/\xff\xfe/file" {
		t.Fatalf("pathField(%q) = %q, want the NUL-bounded prefix", in, got)
	}
}

func FuzzTextField(f *testing.F) {
	f.Add([]byte("launchd\x00\x00"))
	f.Add([]byte("no terminator"))
	f.Add([]byte{0})
	f.Add([]byte{0xff, 0x00})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, in []byte) {
		got, err := textField(in)
		again, errAgain := textField(in)
		if got != again || (err == nil) != (errAgain == nil) {
			t.Fatalf("textField(%q) is not deterministic", in)
		}

		want := in
		if i := bytes.IndexByte(in, 0); i >= 0 {
			want = in[:i]
		}
		if err != nil {
			if utf8.Valid(want) {
				t.Fatalf("textField(%q) = error %v on valid UTF-8 prefix %q", in, err, want)
			}
			return
		}
		if got != string(want) {
			t.Fatalf("textField(%q) = %q, want NUL-bounded prefix %q", in, got, want)
		}
		// the decoder must never read past the declared array
		if len(got) > len(in) {
			t.Fatalf("textField(%q) returned %d bytes from a %d byte field", in, len(got), len(in))
		}
	})
}
