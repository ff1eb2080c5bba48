package datadome

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNormalizeObjectLiteral(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		want    map[string]string
	}{
		{
			name:    "already strict json",
			literal: `{"t":"it","s":3}`,
			want:    map[string]string{"t": "it", "s": "3"},
		},
		{
			name:    "single quoted keys and values",
			literal: `{'rt':'c','cid':'abc','qp':'','s':42}`,
			want:    map[string]string{"rt": "c", "cid": "abc", "qp": "", "s": "42"},
		},
		{
			name:    "bare keys",
			literal: `{t:'fe', s: 7, e:'x'}`,
			want:    map[string]string{"t": "fe", "s": "7", "e": "x"},
		},
		{
			name:    "escaped single quote",
			literal: `{'e':'it\'s'}`,
			want:    map[string]string{"e": "it's"},
		},
		{
			name:    "double quote inside single quoted value",
			literal: `{'e':'say "hi"'}`,
			want:    map[string]string{"e": `say "hi"`},
		},
		{
			name:    "single quotes inside a double quoted value",
			literal: `{"t":"it","cid":"c","e":"a:'b'"}`,
			want:    map[string]string{"t": "it", "cid": "c", "e": "a:'b'"},
		},
		{
			name:    "mixed quoting with single quote inside double quotes",
			literal: `{t:'fe',"e":"it's",s:1}`,
			want:    map[string]string{"t": "fe", "e": "it's", "s": "1"},
		},
		{
			name:    "key-like text inside a value is untouched",
			literal: `{t:'it',e:'a,b:c'}`,
			want:    map[string]string{"t": "it", "e": "a,b:c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := normalizeObjectLiteral(tt.literal)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var got map[string]looseString
			if err := json.Unmarshal([]byte(out), &got); err != nil {
				t.Fatalf("normalized output is not json: %v (%s)", err, out)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("field count: got %d, want %d (%s)", len(got), len(tt.want), out)
			}
			for k, v := range tt.want {
				if string(got[k]) != v {
					t.Errorf("%s: got %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestNormalizeObjectLiteralFailure(t *testing.T) {
	for _, literal := range []string{
		`{t:it}`,
		`{'t':'it',}`,
		`{'t':'it' 'e':'x'}`,
	} {
		if _, err := normalizeObjectLiteral(literal); !errors.Is(err, ErrUnparsableBody) {
			t.Errorf("%s: expected ErrUnparsableBody, got %v", literal, err)
		}
	}
}

func TestLooseString(t *testing.T) {
	tests := map[string]string{
		`"abc"`:  "abc",
		`17434`:  "17434",
		`1.50`:   "1.5",
		`1.7e4`:  "17000",
		`-42`:    "-42",
		`true`:   "true",
		`null`:   "",
		`"1\"2"`: `1"2`,
	}
	for in, want := range tests {
		var l looseString
		if err := json.Unmarshal([]byte(in), &l); err != nil {
			t.Fatalf("%s: unexpected error: %v", in, err)
		}
		if string(l) != want {
			t.Errorf("%s: got %q, want %q", in, l, want)
		}
	}
}
