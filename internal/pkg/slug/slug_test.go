package slug

import "testing"

func TestMake(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"Go 1.24 Released!", "go-124-released"},
		{"  spaces  everywhere ", "--spaces--everywhere-"},
		{"ALLCAPS", "allcaps"},
		{"中文标题 with ascii", "-with-ascii"},
		{"already-a-slug", "already-a-slug"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := Make(tc.title); got != tc.want {
			t.Errorf("Make(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestMakeDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if Make("Some Title 42") != "some-title-42" {
			t.Fatal("slug generation must be deterministic")
		}
	}
}
