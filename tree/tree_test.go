// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree_test

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/creachadair/jstream"
	"github.com/creachadair/jstream/tree"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2.5
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": null,
    "q": false
  }
}`

func mustParse(t *testing.T, input string) tree.Value {
	t.Helper()
	v, err := tree.Parse(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("Parse %#q: unexpected error: %v", input, err)
	}
	return v
}

func TestJSON(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`[]`, `[]`},
		{` { } `, `{}`},
		{`[1, 2.5, -0.125, 1e3, 12345678901234567890]`,
			`[1,2.5,-0.125,1000,1.2345678901234567e+19]`},
		{`["a\nb", "\u00e9", "\ud834\udd1e", "\u2028"]`,
			`["a\nb","é","𝄞","\u2028"]`},
		{`{"a": [true, false, null, {}], "b": {"c": "d"}}`,
			`{"a":[true,false,null,{}],"b":{"c":"d"}}`},
		{`{"dup": 1, "dup": 2}`, `{"dup":1,"dup":2}`},
	}
	for _, test := range tests {
		v := mustParse(t, test.input)
		if got := v.JSON(); got != test.want {
			t.Errorf("JSON %#q:\ngot  %#q\nwant %#q", test.input, got, test.want)
		}
	}
}

// normalize converts the numbers in a value decoded by encoding/json to the
// types reported by tree.Interface.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for key, elt := range t {
			t[key] = normalize(elt)
		}
	case []any:
		for i, elt := range t {
			t[i] = normalize(elt)
		}
	case json.Number:
		if !strings.ContainsAny(string(t), ".eE") {
			if z, err := strconv.ParseInt(string(t), 10, 64); err == nil {
				return z
			}
		}
		f, _ := strconv.ParseFloat(string(t), 64)
		return f
	}
	return v
}

func TestInterface(t *testing.T) {
	inputs := []string{
		testJSON,
		`[]`,
		`[[[]], {}, [{}]]`,
		`{"numbers": [0, -1, 9223372036854775807, 9223372036854775808, 0.1, 6.02e23, -1E-7]}`,
		`{"strings": ["", "\"quoted\"", "tab\there", "\u0041\u00df\u6771\ud800\udf48", "\/"]}`,
		`{"a": {"b": {"c": {"d": [1, [2, [3, [4]]]]}}}}`,
	}
	for _, input := range inputs {
		dec := json.NewDecoder(strings.NewReader(input))
		dec.UseNumber()
		var want any
		if err := dec.Decode(&want); err != nil {
			t.Fatalf("Decode %#q: %v", input, err)
		}
		got := tree.Interface(mustParse(t, input))
		if diff := cmp.Diff(normalize(want), got); diff != "" {
			t.Errorf("Input: %#q\nValue: (-want, +got)\n%s", input, diff)
		}
	}
}

func TestParseChunked(t *testing.T) {
	want := mustParse(t, testJSON).JSON()
	v, err := tree.Parse(iotest.OneByteReader(strings.NewReader(testJSON)), &jstream.Options{BufferSize: 1})
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	if got := v.JSON(); got != want {
		t.Errorf("Parse one byte at a time:\ngot  %s\nwant %s", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{``, `[`, `{"a":}`, `[1,]`, `"x"`, `[] []`} {
		v, err := tree.Parse(strings.NewReader(input), nil)
		if err == nil {
			t.Errorf("Parse %#q: got %v, want error", input, v.JSON())
		} else if v != nil {
			t.Errorf("Parse %#q: got value %v with error", input, v)
		}
	}

	// Options are passed through to the parser.
	opts := &jstream.Options{AllowTrailingCommas: true}
	v, err := tree.Parse(strings.NewReader(`[1,]`), opts)
	if err != nil {
		t.Fatalf("Parse with trailing comma: unexpected error: %v", err)
	}
	if got := v.JSON(); got != `[1]` {
		t.Errorf("Parse with trailing comma: got %#q, want %#q", got, `[1]`)
	}
}

func TestBuilder(t *testing.T) {
	var b tree.Builder
	if v, err := b.Root(); err == nil {
		t.Errorf("Root before parsing: got %v, want error", v)
	}

	// Deliver an incomplete document.
	p, err := jstream.NewPushParser(&b, nil)
	if err != nil {
		t.Fatalf("NewPushParser: %v", err)
	}
	if _, err := p.Write([]byte(`[1, [2`)); err != nil {
		t.Fatalf("Write: unexpected error: %v", err)
	}
	if v, err := b.Root(); err == nil {
		t.Errorf("Root of partial document: got %v, want error", v)
	}

	// A builder may be reused for another document.
	for _, input := range []string{`{"a": 1}`, `[true]`} {
		p, err := jstream.NewParser(strings.NewReader(input), &b, nil)
		if err != nil {
			t.Fatalf("NewParser: %v", err)
		}
		if err := p.Parse(); err != nil {
			t.Fatalf("Parse %#q: unexpected error: %v", input, err)
		}
		v, err := b.Root()
		if err != nil {
			t.Fatalf("Root: unexpected error: %v", err)
		}
		if got, want := v.JSON(), mustParse(t, input).JSON(); got != want {
			t.Errorf("Root: got %#q, want %#q", got, want)
		}
	}
}

func TestPath(t *testing.T) {
	v := mustParse(t, testJSON)
	obj := v.(*tree.Object)

	tests := []struct {
		name string
		path []any
		want tree.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, nil, true},
		{"WrongType", []any{11}, nil, true},

		{"ArrayPos", []any{"list", 1},
			obj.Find("list").Value.(tree.Array)[1],
			false,
		},
		{"ArrayNeg", []any{"list", -1},
			obj.Find("list").Value.(tree.Array)[1],
			false,
		},
		{"ArrayRange", []any{"o", 25}, nil, true},
		{"ArrayNegRange", []any{"o", -3}, nil, true},
		{"ObjPath", []any{"xyz", "d"}, tree.Null{}, false},
		{"Deep", []any{"list", 0, "x"}, tree.Integer(1), false},
		{"DeepFloat", []any{"list", -1, "x"}, tree.Float(2.5), false},
		{"ScalarKey", []any{"y", "hello", "there"}, nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tree.Path[tree.Value](v, tc.path...)
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
				} else {
					t.Fatalf("Path %v: unexpected error: %v", tc.path, err)
				}
				return
			} else if tc.fail {
				t.Fatalf("Path %v: got %v, want error", tc.path, got.JSON())
			}
			if got.JSON() != tc.want.JSON() {
				t.Errorf("Path %v: got %s, want %s", tc.path, got.JSON(), tc.want.JSON())
			}
		})
	}

	t.Run("Typed", func(t *testing.T) {
		s, err := tree.Path[tree.String](v, "o", 0)
		if err != nil {
			t.Fatalf("Path: unexpected error: %v", err)
		} else if s != "hi" {
			t.Errorf("Path: got %q, want %q", s, "hi")
		}
		if b, err := tree.Path[tree.Bool](v, "y", "hello"); err == nil {
			t.Errorf("Path: got %v, want type error", b)
		}
	})

	t.Run("BadElement", func(t *testing.T) {
		mtest.MustPanic(t, func() { tree.Path[tree.Value](v, 1.5) })
		mtest.MustPanic(t, func() { tree.Path[tree.Value](v, "list", true) })
	})
}

func TestObjectFind(t *testing.T) {
	obj := mustParse(t, `{"a": 1, "b": 2, "a": 3}`).(*tree.Object)
	if m := obj.Find("a"); m == nil || m.Value != tree.Integer(1) {
		t.Errorf("Find a: got %+v, want first member", m)
	}
	if m := obj.Find("c"); m != nil {
		t.Errorf("Find c: got %+v, want nil", m)
	}
	if got := tree.Interface(obj).(map[string]any)["a"]; got != int64(3) {
		t.Errorf("Interface duplicate key: got %v, want 3", got)
	}
}

func TestMember(t *testing.T) {
	obj := mustParse(t, `{"a b": [1, {"c": null}], "d": "\u00e9"}`).(*tree.Object)
	tests := []struct {
		key, want string
	}{
		{"a b", `"a b":[1,{"c":null}]`},
		{"d", `"d":"é"`},
	}
	for _, test := range tests {
		m := obj.Find(test.key)
		if m == nil {
			t.Fatalf("Find %q: not found", test.key)
		}
		if got := m.JSON(); got != test.want {
			t.Errorf("Member %q: got %#q, want %#q", test.key, got, test.want)
		}
	}

	// A member satisfies Value.
	var v tree.Value = obj.Find("d")
	if got := v.JSON(); got != `"d":"é"` {
		t.Errorf("Member as Value: got %#q", got)
	}
	if got := (&tree.Member{Key: "x"}).JSON(); got != `"x":null` {
		t.Errorf("Empty member: got %#q, want %#q", got, `"x":null`)
	}
}
