package util_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/jrfom/corsfilter/internal/util"
)

func TestSortedSet(t *testing.T) {
	cases := []struct {
		desc    string
		elems   []string
		removed []string
		// expectations
		size   int
		slice  []string
		joined string
	}{
		{
			desc:   "empty set",
			size:   0,
			joined: "",
		}, {
			desc:   "singleton set",
			elems:  []string{"x-foo"},
			size:   1,
			slice:  []string{"x-foo"},
			joined: "x-foo",
		}, {
			desc:   "no dupes",
			elems:  []string{"x-foo", "x-bar", "x-baz"},
			size:   3,
			slice:  []string{"x-bar", "x-baz", "x-foo"},
			joined: "x-bar,x-baz,x-foo",
		}, {
			desc:   "some dupes",
			elems:  []string{"x-foo", "x-bar", "x-foo"},
			size:   2,
			slice:  []string{"x-bar", "x-foo"},
			joined: "x-bar,x-foo",
		}, {
			desc:   "case-sensitive",
			elems:  []string{"GET", "get", "Get"},
			size:   3,
			slice:  []string{"GET", "Get", "get"},
			joined: "GET,Get,get",
		}, {
			desc:    "some removed",
			elems:   []string{"x-foo", "x-bar", "x-baz"},
			removed: []string{"x-bar", "x-qux", "x-bar"},
			size:    2,
			slice:   []string{"x-baz", "x-foo"},
			joined:  "x-baz,x-foo",
		}, {
			desc:    "all removed",
			elems:   []string{"x-foo"},
			removed: []string{"x-foo"},
			size:    0,
			joined:  "",
		},
	}
	for _, tc := range cases {
		f := func(t *testing.T) {
			var set util.SortedSet
			for _, elem := range tc.elems {
				set.Add(elem)
			}
			for _, elem := range tc.removed {
				set.Remove(elem)
			}
			if size := set.Size(); size != tc.size {
				const tmpl = "Size(): got %d; want %d"
				t.Errorf(tmpl, size, tc.size)
			}
			s := set.ToSlice()
			if !slices.Equal(s, tc.slice) {
				const tmpl = "ToSlice(): got %q; want %q"
				t.Errorf(tmpl, s, tc.slice)
			}
			if got := set.String(); got != tc.joined {
				const tmpl = "String(): got %q; want %q"
				t.Errorf(tmpl, got, tc.joined)
			}
			for _, e := range tc.slice {
				if !set.Contains(e) {
					const tmpl = "%q does not contain %q, but should"
					t.Errorf(tmpl, s, e)
				}
			}
			for _, e := range tc.removed {
				if set.Contains(e) {
					const tmpl = "%q contains %q, but should not"
					t.Errorf(tmpl, s, e)
				}
			}
		}
		t.Run(tc.desc, f)
	}
}

func TestNewSortedSetDoesNotRetainItsArgument(t *testing.T) {
	elems := []string{"b", "a"}
	set := util.NewSortedSet(elems...)
	elems[0] = "z"
	if got, want := set.String(), "a,b"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestToSliceReturnsACopy(t *testing.T) {
	set := util.NewSortedSet("a", "b")
	s := set.ToSlice()
	s[0] = "mutated!"
	if !set.Contains("a") {
		t.Error("mutating the result of ToSlice altered the set")
	}
}

func TestIsSingleton(t *testing.T) {
	cases := []struct {
		elems []string
		want  bool
	}{
		{elems: nil, want: false},
		{elems: []string{"*"}, want: true},
		{elems: []string{"*", "*"}, want: true},
		{elems: []string{"*", "https://example.com"}, want: false},
		{elems: []string{"https://example.com"}, want: false},
	}
	for _, tc := range cases {
		set := util.NewSortedSet(tc.elems...)
		if got := set.IsSingleton("*"); got != tc.want {
			const tmpl = "%q: got %t; want %t"
			t.Errorf(tmpl, tc.elems, got, tc.want)
		}
	}
}

func TestStringSplitRoundTrip(t *testing.T) {
	elems := []string{"a", "b", "c", "d", "e", "f"}
	set := util.NewSortedSet(elems...)
	joined := set.String()
	if strings.HasPrefix(joined, ",") || strings.HasSuffix(joined, ",") {
		t.Errorf("%q has a leading or trailing comma", joined)
	}
	split := strings.Split(joined, ",")
	if slices.Contains(split, "") {
		t.Errorf("%q has empty segments", joined)
	}
	slices.Sort(split)
	if !slices.Equal(split, elems) {
		t.Errorf("got %q; want %q", split, elems)
	}
}
